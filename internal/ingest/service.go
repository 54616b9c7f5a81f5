package ingest

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/adapters"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/dedup"
	"github.com/billfold/invoice-ingest/internal/detect"
	"github.com/billfold/invoice-ingest/internal/engine"
	"github.com/billfold/invoice-ingest/internal/entity"
	"github.com/billfold/invoice-ingest/internal/repository"
)

// Result is the outcome of ingesting one document. Deduplicated results
// carry the pre-existing record and are a success, not an error.
type Result struct {
	Invoice      *entity.Invoice
	Deduplicated bool
}

// Service runs the full normalization pipeline for one document:
// dedup check, engine recognition, type detection, field adaptation,
// validation, persistence. The dedup check comes first so known bytes
// never consume an engine call.
type Service struct {
	index    *dedup.Index
	engine   engine.Recognizer
	detector *detect.Detector
	registry *adapters.Registry
	invoices repository.InvoiceRepository
	policy   dedup.Policy
	schema   map[string]any
	logger   *slog.Logger
}

func NewService(
	index *dedup.Index,
	recognizer engine.Recognizer,
	detector *detect.Detector,
	registry *adapters.Registry,
	invoices repository.InvoiceRepository,
	policy dedup.Policy,
	logger *slog.Logger,
) *Service {
	if policy == "" {
		policy = dedup.PolicySkip
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		index:    index,
		engine:   recognizer,
		detector: detector,
		registry: registry,
		invoices: invoices,
		policy:   policy,
		schema:   adapters.BuildCanonicalJSONSchema(),
		logger:   logger,
	}
}

// Ingest processes one document's raw bytes. Engine failures propagate
// with their transient or permanent classification intact so callers can
// decide between retry and recording the failure.
func (s *Service) Ingest(ctx context.Context, profileID uuid.UUID, content []byte, filename string, source constants.InvoiceSource) (*Result, error) {
	outcome, err := s.index.Register(ctx, profileID, content)
	if err != nil {
		return nil, err
	}
	if outcome.Deduplicated {
		return &Result{Invoice: outcome.Existing, Deduplicated: true}, nil
	}
	if outcome.SoftDeleted {
		return s.handleSoftDeleted(ctx, profileID, content, filename, source, outcome.Existing)
	}

	out, err := s.engine.Recognize(ctx, content, filename)
	if err != nil {
		return nil, err
	}
	req := s.adapt(profileID, out, source)
	req.BlobID = outcome.Blob.ID
	req.ContentHash = outcome.Blob.Hash

	inv, err := s.invoices.Create(ctx, req)
	if err != nil {
		if common.IsDuplicate(err) {
			// concurrent writer won the unique index; return its record
			existing, lookupErr := s.invoices.FindByProfileAndHash(ctx, profileID, outcome.Blob.Hash)
			if lookupErr == nil && existing != nil {
				return &Result{Invoice: existing, Deduplicated: true}, nil
			}
		}
		return nil, err
	}
	s.logger.Info("ingest.stored",
		"profile_id", profileID,
		"invoice_id", inv.ID,
		"invoice_type", inv.InvoiceType,
		"source", source,
	)
	return &Result{Invoice: inv}, nil
}

// handleSoftDeleted applies the configured policy when content matches a
// soft-deleted record. Skip reports a duplicate; merge restores the old
// record untouched; replace re-extracts and overwrites its fields.
func (s *Service) handleSoftDeleted(ctx context.Context, profileID uuid.UUID, content []byte, filename string, source constants.InvoiceSource, existing *entity.Invoice) (*Result, error) {
	switch s.policy {
	case dedup.PolicyMerge:
		inv, err := s.invoices.Restore(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		s.logger.Info("ingest.restored", "profile_id", profileID, "invoice_id", inv.ID)
		return &Result{Invoice: inv, Deduplicated: true}, nil
	case dedup.PolicyReplace:
		out, err := s.engine.Recognize(ctx, content, filename)
		if err != nil {
			return nil, err
		}
		req := s.adapt(profileID, out, source)
		inv, err := s.invoices.ReplaceFields(ctx, existing.ID, req)
		if err != nil {
			return nil, err
		}
		s.logger.Info("ingest.replaced", "profile_id", profileID, "invoice_id", inv.ID)
		return &Result{Invoice: inv}, nil
	default:
		return &Result{Invoice: existing, Deduplicated: true}, nil
	}
}

// adapt runs detection, field adaptation, and validation over engine
// output and assembles the persistence request.
func (s *Service) adapt(profileID uuid.UUID, out engine.Output, source constants.InvoiceSource) *repository.CreateInvoiceRequest {
	invoiceType, confidence := s.detector.Detect(out)
	adapter := s.registry.ForType(invoiceType)
	fields := adapter.ExtractFields(out)
	validation := adapter.Validate(fields)
	canonical := adapter.ToCanonical(fields)

	canonicalRaw, _ := json.Marshal(canonical)
	// schema violations are advisory: they join the validation report as
	// warnings and never block storage
	if err := adapters.ValidateJSONAgainstSchema(s.schema, canonicalRaw); err != nil {
		validation.Errors = append(validation.Errors, adapters.FieldError{
			Field:  "canonical",
			Reason: err.Error(),
		})
		s.logger.Warn("ingest.schema_warning",
			"profile_id", profileID,
			"invoice_type", invoiceType,
			"error", err,
		)
	}
	validationRaw, _ := json.Marshal(validation)
	scores := map[string]any{"overall": confidence}
	if len(out.FieldConfidence) > 0 {
		scores["fields"] = out.FieldConfidence
	}
	scoresRaw, _ := json.Marshal(scores)

	return &repository.CreateInvoiceRequest{
		ProfileID:        profileID,
		InvoiceType:      invoiceType,
		CanonicalFields:  canonicalRaw,
		RawEngineOutput:  out.Raw,
		ConfidenceScores: scoresRaw,
		Validation:       validationRaw,
		Source:           source,
	}
}
