package repository

import (
	"encoding/json"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/gen/ent"
	"github.com/billfold/invoice-ingest/internal/entity"
)

func toContentBlob(row *ent.ContentBlob) *entity.ContentBlob {
	return &entity.ContentBlob{
		ID:          row.ID,
		ProfileID:   row.ProfileID,
		Hash:        row.Hash,
		ByteSize:    row.ByteSize,
		StorageRef:  row.StorageRef,
		FirstSeenAt: row.FirstSeenAt,
	}
}

func toInvoice(row *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:               row.ID,
		ProfileID:        row.ProfileID,
		ContentHash:      row.ContentHash,
		InvoiceType:      constants.ParseInvoiceType(row.InvoiceType),
		CanonicalFields:  row.CanonicalFields,
		RawEngineOutput:  row.RawEngineOutput,
		ConfidenceScores: row.ConfidenceScores,
		Validation:       row.Validation,
		Source:           constants.InvoiceSource(row.Source),
		LifecycleState:   constants.LifecycleState(row.LifecycleState),
		DeletedAt:        row.DeletedAt,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}
}

func toIngestJob(row *ent.IngestJob) *entity.IngestJob {
	job := &entity.IngestJob{
		ID:        row.ID,
		ProfileID: row.ProfileID,
		Phase:     constants.JobPhase(row.Phase),
		Folder:    row.Folder,
		Criteria:  row.Criteria,
		Cursor:    row.Cursor,
		Counters: entity.JobCounters{
			Scanned:    row.Scanned,
			Matched:    row.Matched,
			Extracted:  row.Extracted,
			Duplicates: row.Duplicates,
			Failed:     row.Failed,
		},
		Cancelled:  row.Cancelled,
		StartedAt:  row.StartedAt,
		FinishedAt: row.FinishedAt,
	}
	if len(row.ErrorLog) > 0 {
		// a corrupt log is dropped rather than failing the read
		_ = json.Unmarshal(row.ErrorLog, &job.ErrorLog)
	}
	return job
}

func toJobBatch(row *ent.JobBatch) *entity.JobBatch {
	batch := &entity.JobBatch{
		ID:     row.ID,
		JobID:  row.JobID,
		Seq:    row.Seq,
		Status: constants.BatchStatus(row.Status),
		Counters: entity.JobCounters{
			Extracted:  row.Extracted,
			Duplicates: row.Duplicates,
			Failed:     row.Failed,
		},
	}
	if len(row.Uids) > 0 {
		_ = json.Unmarshal(row.Uids, &batch.UIDs)
	}
	return batch
}
