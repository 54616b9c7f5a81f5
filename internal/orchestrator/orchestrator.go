package orchestrator

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/entity"
	"github.com/billfold/invoice-ingest/internal/ingest"
	"github.com/billfold/invoice-ingest/internal/mailbox"
	"github.com/billfold/invoice-ingest/internal/repository"
)

// Pipeline is the per-document ingestion the orchestrator drives.
// *ingest.Service satisfies it.
type Pipeline interface {
	Ingest(ctx context.Context, profileID uuid.UUID, content []byte, filename string, source constants.InvoiceSource) (*ingest.Result, error)
}

// Orchestrator advances ingestion jobs through their phases under a
// per-invocation time budget. All progress lives in the job row and its
// batches, so any invocation can pick up where the last one stopped.
type Orchestrator struct {
	jobs      repository.IngestJobRepository
	mail      mailbox.Mailbox
	extractor *mailbox.Extractor
	mailCfg   mailbox.Config
	pipeline  Pipeline
	cfg       common.ScanConfig
	now       func() time.Time
	logger    *slog.Logger
}

func New(
	jobs repository.IngestJobRepository,
	mail mailbox.Mailbox,
	extractor *mailbox.Extractor,
	mailCfg mailbox.Config,
	pipeline Pipeline,
	cfg common.ScanConfig,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		jobs:      jobs,
		mail:      mail,
		extractor: extractor,
		mailCfg:   mailCfg,
		pipeline:  pipeline,
		cfg:       cfg,
		now:       time.Now,
		logger:    logger,
	}
}

// StartJob creates a new pending job. The first invocation begins the scan.
func (o *Orchestrator) StartJob(ctx context.Context, profileID uuid.UUID, folder, criteria string) (*entity.IngestJob, error) {
	if folder == "" {
		folder = "INBOX"
	}
	return o.jobs.Create(ctx, profileID, folder, criteria)
}

// budgetClock tracks the invocation's time box. Admission stops once the
// reserve fraction is all that remains, leaving room to persist progress
// and return cleanly.
type budgetClock struct {
	start  time.Time
	cutoff time.Duration
	now    func() time.Time
}

func (o *Orchestrator) newClock() *budgetClock {
	cutoff := time.Duration(float64(o.cfg.InvocationBudget) * (1 - o.cfg.BudgetReserve))
	return &budgetClock{start: o.now(), cutoff: cutoff, now: o.now}
}

func (b *budgetClock) expired() bool {
	return b.now().Sub(b.start) >= b.cutoff
}

// RunInvocation performs one time-boxed unit of work on the job and
// returns its state afterwards. Non-terminal phases mean "invoke again".
func (o *Orchestrator) RunInvocation(ctx context.Context, jobID uuid.UUID) (*entity.IngestJob, error) {
	job, err := o.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Phase.Terminal() {
		return job, nil
	}
	if job.Cancelled {
		return o.jobs.SetPhase(ctx, jobID, constants.JobPhaseCancelled)
	}

	clock := o.newClock()
	switch job.Phase {
	case constants.JobPhasePending, constants.JobPhaseScanning:
		job, err = o.runScan(ctx, job, clock)
		if err != nil || job.Phase != constants.JobPhaseScanComplete || clock.expired() {
			return job, err
		}
		// budget remains; roll straight into extraction
		fallthrough
	case constants.JobPhaseScanComplete, constants.JobPhaseExtracting:
		return o.runExtract(ctx, job, clock)
	default:
		return job, nil
	}
}

// Cancel requests cooperative cancellation. A running invocation honors
// it at the next batch boundary; an idle job flips on its next invocation.
func (o *Orchestrator) Cancel(ctx context.Context, jobID uuid.UUID) (*entity.IngestJob, error) {
	return o.jobs.RequestCancel(ctx, jobID)
}

// runScan walks the mailbox from the job's cursor. Progress is persisted
// per fetch chunk: the batch for the chunk's matches first, then the
// cursor, so a crash can at worst re-create a batch whose items the
// dedup index will absorb.
func (o *Orchestrator) runScan(ctx context.Context, job *entity.IngestJob, clock *budgetClock) (*entity.IngestJob, error) {
	if job.Phase == constants.JobPhasePending {
		var err error
		job, err = o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseScanning)
		if err != nil {
			return job, err
		}
	}

	if err := o.mail.Connect(ctx, o.mailCfg); err != nil {
		if common.IsTransient(err) {
			o.logger.Warn("scan.connect_retry_later", "job_id", job.ID, "error", err)
			return job, err
		}
		// credentials or protocol rejection; retrying will not help
		o.logger.Error("scan.connect_failed", "job_id", job.ID, "error", err)
		if _, perr := o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseScanFailed); perr != nil {
			return job, perr
		}
		return o.jobs.GetByID(ctx, job.ID)
	}
	defer func() { _ = o.mail.Close() }()

	uids, err := o.mail.Search(ctx, mailbox.SearchCriteria{
		Folder:   job.Folder,
		Subject:  job.Criteria,
		AfterUID: job.Cursor,
	})
	if err != nil {
		if common.IsTransient(err) {
			return job, err
		}
		if _, perr := o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseScanFailed); perr != nil {
			return job, perr
		}
		return o.jobs.GetByID(ctx, job.ID)
	}

	existing, err := o.jobs.ListBatches(ctx, job.ID, "")
	if err != nil {
		return job, err
	}
	nextSeq := len(existing)

	for start := 0; start < len(uids); start += o.cfg.BatchSize {
		if clock.expired() {
			o.logger.Info("scan.budget_exhausted", "job_id", job.ID, "cursor", job.Cursor)
			return o.jobs.GetByID(ctx, job.ID)
		}
		fresh, err := o.jobs.GetByID(ctx, job.ID)
		if err != nil {
			return job, err
		}
		if fresh.Cancelled {
			return o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseCancelled)
		}

		end := min(start+o.cfg.BatchSize, len(uids))
		chunk := uids[start:end]
		records, err := o.mail.Fetch(ctx, chunk)
		if err != nil {
			if common.IsTransient(err) {
				return job, err
			}
			if _, perr := o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseScanFailed); perr != nil {
				return job, perr
			}
			return o.jobs.GetByID(ctx, job.ID)
		}

		var matched []uint32
		var diagErrs []entity.ItemError
		for _, rec := range records {
			cands, diag := o.extractor.ExtractAttachments(rec)
			switch {
			case len(cands) > 0:
				if diag != nil {
					o.logger.Warn("scan.descriptor_recovered",
						"job_id", job.ID, "uid", rec.UID, "reason", diag.Reason)
				}
				matched = append(matched, rec.UID)
			case diag != nil:
				// unrecoverable descriptor; the message is dropped here,
				// so the job log is the only place the reason survives
				diagErrs = append(diagErrs, entity.ItemError{
					Item:   uidItemName(rec.UID),
					Reason: diag.Reason,
				})
			}
		}
		if len(matched) > 0 {
			if _, err := o.jobs.CreateBatches(ctx, job.ID, nextSeq, [][]uint32{matched}); err != nil {
				return job, err
			}
			nextSeq++
		}
		if err := o.jobs.AppendErrors(ctx, job.ID, diagErrs); err != nil {
			return job, err
		}
		cursor := chunk[len(chunk)-1]
		if err := o.jobs.RecordScanProgress(ctx, job.ID, cursor, uint32(len(chunk)), uint32(len(matched))); err != nil {
			return job, err
		}
	}

	return o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseScanComplete)
}

// runExtract drains pending batches. Item failures are isolated to their
// item; a quota rejection parks the whole invocation instead, leaving the
// job resumable once the quota window resets.
func (o *Orchestrator) runExtract(ctx context.Context, job *entity.IngestJob, clock *budgetClock) (*entity.IngestJob, error) {
	if job.Phase != constants.JobPhaseExtracting {
		var err error
		job, err = o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseExtracting)
		if err != nil {
			return job, err
		}
	}

	// RUNNING batches are leftovers from a crashed invocation; dedup
	// makes reprocessing them safe.
	pending, err := o.jobs.ListBatches(ctx, job.ID, constants.BatchStatusRunning)
	if err != nil {
		return job, err
	}
	queued, err := o.jobs.ListBatches(ctx, job.ID, constants.BatchStatusPending)
	if err != nil {
		return job, err
	}
	pending = append(pending, queued...)

	connected := false
	for _, batch := range pending {
		if clock.expired() {
			o.logger.Info("extract.budget_exhausted", "job_id", job.ID, "batch_seq", batch.Seq)
			return o.jobs.GetByID(ctx, job.ID)
		}
		fresh, err := o.jobs.GetByID(ctx, job.ID)
		if err != nil {
			return job, err
		}
		if fresh.Cancelled {
			return o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseCancelled)
		}

		if !connected {
			if err := o.mail.Connect(ctx, o.mailCfg); err != nil {
				if common.IsTransient(err) {
					return job, err
				}
				if _, perr := o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseExtractFailed); perr != nil {
					return job, perr
				}
				return o.jobs.GetByID(ctx, job.ID)
			}
			connected = true
			defer func() { _ = o.mail.Close() }()
		}

		halted, err := o.processBatch(ctx, job, batch)
		if err != nil {
			return job, err
		}
		if halted {
			return o.jobs.GetByID(ctx, job.ID)
		}
	}

	return o.jobs.SetPhase(ctx, job.ID, constants.JobPhaseComplete)
}

// processBatch extracts every attachment in one batch with bounded
// concurrency. Returns halted=true when the engine quota was exhausted;
// the batch goes back to PENDING in that case.
func (o *Orchestrator) processBatch(ctx context.Context, job *entity.IngestJob, batch *entity.JobBatch) (bool, error) {
	if err := o.jobs.SetBatchStatus(ctx, batch.ID, constants.BatchStatusRunning, entity.JobCounters{}); err != nil {
		return false, err
	}

	records, err := o.mail.Fetch(ctx, batch.UIDs)
	if err != nil {
		if common.IsTransient(err) {
			// back to PENDING so the next invocation retries the batch
			_ = o.jobs.SetBatchStatus(ctx, batch.ID, constants.BatchStatusPending, entity.JobCounters{})
			return false, err
		}
		_ = o.jobs.SetBatchStatus(ctx, batch.ID, constants.BatchStatusFailed, entity.JobCounters{})
		return false, o.jobs.AppendErrors(ctx, job.ID, []entity.ItemError{
			{Item: batchItemName(batch), Reason: err.Error()},
		})
	}

	var (
		mu       sync.Mutex
		counters entity.JobCounters
		itemErrs []entity.ItemError
		quotaHit bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.BatchWorkers)
	for _, rec := range records {
		cands, diag := o.extractor.ExtractAttachments(rec)
		if diag != nil {
			// recovered descriptor; surface the low-confidence reason
			// alongside whatever its candidates produce
			mu.Lock()
			itemErrs = append(itemErrs, entity.ItemError{
				Item:   uidItemName(rec.UID),
				Reason: diag.Reason,
			})
			mu.Unlock()
		}
		for _, cand := range cands {
			g.Go(func() error {
				mu.Lock()
				halted := quotaHit
				mu.Unlock()
				if halted {
					return nil
				}
				err := o.processCandidate(gctx, job, cand, &mu, &counters, &itemErrs)
				if common.IsQuota(err) {
					mu.Lock()
					quotaHit = true
					mu.Unlock()
				}
				return nil
			})
		}
	}
	_ = g.Wait()

	if quotaHit {
		// partial work is not counted; the re-run lands on the dedup
		// index and reports those items as duplicates instead
		o.logger.Warn("extract.quota_exhausted", "job_id", job.ID, "batch_seq", batch.Seq)
		_ = o.jobs.SetBatchStatus(ctx, batch.ID, constants.BatchStatusPending, entity.JobCounters{})
		return true, nil
	}

	if err := o.jobs.SetBatchStatus(ctx, batch.ID, constants.BatchStatusDone, counters); err != nil {
		return false, err
	}
	return false, o.flushBatchResults(ctx, job, counters, itemErrs)
}

func (o *Orchestrator) flushBatchResults(ctx context.Context, job *entity.IngestJob, counters entity.JobCounters, itemErrs []entity.ItemError) error {
	if err := o.jobs.AddExtractCounts(ctx, job.ID, counters.Extracted, counters.Duplicates, counters.Failed); err != nil {
		return err
	}
	return o.jobs.AppendErrors(ctx, job.ID, itemErrs)
}

// processCandidate runs one attachment through the pipeline and folds the
// outcome into the shared batch counters. Only a quota error escapes;
// everything else is absorbed as an item result.
func (o *Orchestrator) processCandidate(ctx context.Context, job *entity.IngestJob, cand mailbox.AttachmentCandidate, mu *sync.Mutex, counters *entity.JobCounters, itemErrs *[]entity.ItemError) error {
	content, err := o.mail.FetchAttachment(ctx, cand)
	if err != nil {
		mu.Lock()
		counters.Failed++
		*itemErrs = append(*itemErrs, entity.ItemError{Item: candidateName(cand), Reason: err.Error()})
		mu.Unlock()
		return nil
	}

	res, err := o.pipeline.Ingest(ctx, job.ProfileID, content, cand.Filename, constants.SourceMailbox)
	mu.Lock()
	defer mu.Unlock()
	switch {
	case err == nil && res.Deduplicated:
		counters.Duplicates++
	case err == nil:
		counters.Extracted++
	case common.IsQuota(err):
		return err
	default:
		counters.Failed++
		*itemErrs = append(*itemErrs, entity.ItemError{Item: candidateName(cand), Reason: err.Error()})
	}
	return nil
}

func candidateName(cand mailbox.AttachmentCandidate) string {
	if cand.Filename != "" {
		return cand.Filename
	}
	return uidItemName(cand.SourceUID)
}

func uidItemName(uid uint32) string {
	return "uid:" + strconv.FormatUint(uint64(uid), 10)
}

func batchItemName(batch *entity.JobBatch) string {
	return "batch:" + strconv.Itoa(batch.Seq)
}
