package server

import (
	"time"

	"github.com/billfold/invoice-ingest/gen/ent"
	v1 "github.com/billfold/invoice-ingest/gen/proto/ingest/v1"
	"github.com/billfold/invoice-ingest/internal/entity"
)

func toPBProfile(p *ent.Profile) *v1.Profile {
	return &v1.Profile{
		Id:        p.ID.String(),
		Name:      p.Name,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toPBInvoice(inv *entity.Invoice) *v1.Invoice {
	return &v1.Invoice{
		Id:               inv.ID.String(),
		ProfileId:        inv.ProfileID.String(),
		InvoiceType:      string(inv.InvoiceType),
		CanonicalFields:  string(inv.CanonicalFields),
		ConfidenceScores: string(inv.ConfidenceScores),
		Validation:       string(inv.Validation),
		Source:           string(inv.Source),
		LifecycleState:   string(inv.LifecycleState),
		CreatedAt:        inv.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toPBJobStatus(job *entity.IngestJob) *v1.GetJobStatusResponse {
	resp := &v1.GetJobStatusResponse{
		JobId: job.ID.String(),
		Phase: string(job.Phase),
		Counters: &v1.JobCounters{
			Scanned:    job.Counters.Scanned,
			Matched:    job.Counters.Matched,
			Extracted:  job.Counters.Extracted,
			Duplicates: job.Counters.Duplicates,
			Failed:     job.Counters.Failed,
		},
		StartedAt: job.StartedAt.UTC().Format(time.RFC3339),
		Cancelled: job.Cancelled,
	}
	if job.FinishedAt != nil {
		resp.FinishedAt = job.FinishedAt.UTC().Format(time.RFC3339)
	}
	for _, ie := range job.ErrorLog {
		resp.Errors = append(resp.Errors, &v1.ItemError{Item: ie.Item, Reason: ie.Reason})
	}
	return resp
}
