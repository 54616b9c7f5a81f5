package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/gen/ent"
	entjob "github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	entbatch "github.com/billfold/invoice-ingest/gen/ent/jobbatch"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/entity"
)

type IngestJobRepository interface {
	Create(ctx context.Context, profileID uuid.UUID, folder, criteria string) (*entity.IngestJob, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestJob, error)
	SetPhase(ctx context.Context, id uuid.UUID, phase constants.JobPhase) (*entity.IngestJob, error)
	RecordScanProgress(ctx context.Context, id uuid.UUID, cursor uint32, scanned, matched uint32) error
	AddExtractCounts(ctx context.Context, id uuid.UUID, extracted, duplicates, failed uint32) error
	AppendErrors(ctx context.Context, id uuid.UUID, items []entity.ItemError) error
	RequestCancel(ctx context.Context, id uuid.UUID) (*entity.IngestJob, error)
	FindResumable(ctx context.Context, profileID uuid.UUID) (*entity.IngestJob, error)

	CreateBatches(ctx context.Context, jobID uuid.UUID, startSeq int, uidBatches [][]uint32) ([]*entity.JobBatch, error)
	ListBatches(ctx context.Context, jobID uuid.UUID, status constants.BatchStatus) ([]*entity.JobBatch, error)
	SetBatchStatus(ctx context.Context, batchID uuid.UUID, status constants.BatchStatus, counters entity.JobCounters) error
}

type ingestJobRepo struct {
	client *ent.Client
	logger *slog.Logger
}

func NewIngestJobRepository(client *ent.Client, logger *slog.Logger) IngestJobRepository {
	return &ingestJobRepo{
		client: client,
		logger: logger,
	}
}

func (r *ingestJobRepo) Create(ctx context.Context, profileID uuid.UUID, folder, criteria string) (*entity.IngestJob, error) {
	row, err := r.client.IngestJob.Create().
		SetProfileID(profileID).
		SetFolder(folder).
		SetCriteria(criteria).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create ingest job", "profile_id", profileID, "error", err)
		return nil, err
	}
	r.logger.Info("job.created", "job_id", row.ID, "profile_id", profileID, "folder", folder)
	return toIngestJob(row), nil
}

func (r *ingestJobRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.IngestJob, error) {
	row, err := r.client.IngestJob.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toIngestJob(row), nil
}

// SetPhase persists a phase transition. Terminal phases also stamp
// finished_at. Transition legality is the orchestrator's concern.
func (r *ingestJobRepo) SetPhase(ctx context.Context, id uuid.UUID, phase constants.JobPhase) (*entity.IngestJob, error) {
	upd := r.client.IngestJob.UpdateOneID(id).SetPhase(string(phase))
	if phase.Terminal() {
		upd = upd.SetFinishedAt(time.Now())
	}
	row, err := upd.Save(ctx)
	if err != nil {
		r.logger.Error("failed to set job phase", "job_id", id, "phase", phase, "error", err)
		return nil, err
	}
	r.logger.Info("job.phase", "job_id", id, "phase", phase)
	return toIngestJob(row), nil
}

// RecordScanProgress advances the cursor and adds scan counter deltas in
// one write, so a crash cannot observe a cursor ahead of its counters.
func (r *ingestJobRepo) RecordScanProgress(ctx context.Context, id uuid.UUID, cursor uint32, scanned, matched uint32) error {
	err := r.client.IngestJob.UpdateOneID(id).
		SetCursor(cursor).
		AddScanned(int32(scanned)).
		AddMatched(int32(matched)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to record scan progress", "job_id", id, "cursor", cursor, "error", err)
	}
	return err
}

func (r *ingestJobRepo) AddExtractCounts(ctx context.Context, id uuid.UUID, extracted, duplicates, failed uint32) error {
	err := r.client.IngestJob.UpdateOneID(id).
		AddExtracted(int32(extracted)).
		AddDuplicates(int32(duplicates)).
		AddFailed(int32(failed)).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to add extract counts", "job_id", id, "error", err)
	}
	return err
}

func (r *ingestJobRepo) AppendErrors(ctx context.Context, id uuid.UUID, items []entity.ItemError) error {
	if len(items) == 0 {
		return nil
	}
	row, err := r.client.IngestJob.Get(ctx, id)
	if err != nil {
		return err
	}
	var log []entity.ItemError
	if len(row.ErrorLog) > 0 {
		_ = json.Unmarshal(row.ErrorLog, &log)
	}
	log = append(log, items...)
	raw, err := json.Marshal(log)
	if err != nil {
		return err
	}
	return r.client.IngestJob.UpdateOneID(id).SetErrorLog(raw).Exec(ctx)
}

// RequestCancel flips the cancellation flag. The running invocation sees
// it at the next batch boundary; the phase moves to CANCELLED there.
func (r *ingestJobRepo) RequestCancel(ctx context.Context, id uuid.UUID) (*entity.IngestJob, error) {
	row, err := r.client.IngestJob.UpdateOneID(id).
		SetCancelled(true).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to request job cancel", "job_id", id, "error", err)
		return nil, err
	}
	r.logger.Info("job.cancel_requested", "job_id", id)
	return toIngestJob(row), nil
}

// CreateBatches appends extraction batches starting at startSeq. Scans
// that span several invocations keep seq monotonic by passing the count
// of batches already created.
func (r *ingestJobRepo) CreateBatches(ctx context.Context, jobID uuid.UUID, startSeq int, uidBatches [][]uint32) ([]*entity.JobBatch, error) {
	builders := make([]*ent.JobBatchCreate, len(uidBatches))
	for i, uids := range uidBatches {
		raw, err := json.Marshal(uids)
		if err != nil {
			return nil, err
		}
		builders[i] = r.client.JobBatch.Create().
			SetJobID(jobID).
			SetSeq(startSeq + i).
			SetUids(raw)
	}
	rows, err := r.client.JobBatch.CreateBulk(builders...).Save(ctx)
	if err != nil {
		r.logger.Error("failed to create job batches", "job_id", jobID, "count", len(uidBatches), "error", err)
		return nil, err
	}
	batches := make([]*entity.JobBatch, len(rows))
	for i, row := range rows {
		batches[i] = toJobBatch(row)
	}
	return batches, nil
}

// ListBatches returns batches in seq order. An empty status lists all.
func (r *ingestJobRepo) ListBatches(ctx context.Context, jobID uuid.UUID, status constants.BatchStatus) ([]*entity.JobBatch, error) {
	q := r.client.JobBatch.Query().Where(entbatch.JobID(jobID))
	if status != "" {
		q = q.Where(entbatch.Status(string(status)))
	}
	rows, err := q.Order(entbatch.BySeq()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list job batches", "job_id", jobID, "error", err)
		return nil, err
	}
	batches := make([]*entity.JobBatch, len(rows))
	for i, row := range rows {
		batches[i] = toJobBatch(row)
	}
	return batches, nil
}

func (r *ingestJobRepo) SetBatchStatus(ctx context.Context, batchID uuid.UUID, status constants.BatchStatus, counters entity.JobCounters) error {
	err := r.client.JobBatch.UpdateOneID(batchID).
		SetStatus(string(status)).
		SetExtracted(counters.Extracted).
		SetDuplicates(counters.Duplicates).
		SetFailed(counters.Failed).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to set batch status", "batch_id", batchID, "status", status, "error", err)
	}
	return err
}

// FindResumable returns the most recent non-terminal job for a profile,
// nil when none exists. Used by schedulers that re-invoke stalled jobs.
func (r *ingestJobRepo) FindResumable(ctx context.Context, profileID uuid.UUID) (*entity.IngestJob, error) {
	row, err := r.client.IngestJob.Query().
		Where(
			entjob.ProfileID(profileID),
			entjob.PhaseIn(
				string(constants.JobPhasePending),
				string(constants.JobPhaseScanning),
				string(constants.JobPhaseScanComplete),
				string(constants.JobPhaseExtracting),
			),
		).
		Order(entjob.ByStartedAt(entsql.OrderDesc())).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return toIngestJob(row), nil
}
