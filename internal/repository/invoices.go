package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/gen/ent"
	entinvoice "github.com/billfold/invoice-ingest/gen/ent/invoice"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/entity"
)

// CreateInvoiceRequest wraps parameters for persisting one normalized record.
type CreateInvoiceRequest struct {
	ProfileID        uuid.UUID
	BlobID           uuid.UUID
	ContentHash      []byte
	InvoiceType      constants.InvoiceType
	CanonicalFields  json.RawMessage
	RawEngineOutput  json.RawMessage
	ConfidenceScores json.RawMessage
	Validation       json.RawMessage
	Source           constants.InvoiceSource
}

// ListInvoicesFilter narrows ListInvoices. Zero values mean "no filter".
// Soft-deleted records are excluded unless IncludeDeleted is set.
type ListInvoicesFilter struct {
	InvoiceType    constants.InvoiceType
	FromDate       *time.Time
	ToDate         *time.Time
	IncludeDeleted bool
}

type InvoiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	FindByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*entity.Invoice, error)
	Create(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error)
	ReplaceFields(ctx context.Context, id uuid.UUID, req *CreateInvoiceRequest) (*entity.Invoice, error)
	ListInvoices(ctx context.Context, profileID uuid.UUID, filter ListInvoicesFilter) ([]*entity.Invoice, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	Restore(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	PurgeExpired(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toInvoice(row), nil
}

// FindByProfileAndHash includes soft-deleted records; deletion does not
// release the content identity. A nil invoice means no match.
func (r *invoiceRepository) FindByProfileAndHash(ctx context.Context, profileID uuid.UUID, hash []byte) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Query().
		Where(
			entinvoice.ProfileID(profileID),
			entinvoice.ContentHash(hash),
		).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		r.logger.Error("failed to find invoice by hash", "profile_id", profileID, "error", err)
		return nil, err
	}
	return toInvoice(row), nil
}

func (r *invoiceRepository) Create(ctx context.Context, req *CreateInvoiceRequest) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Create().
		SetProfileID(req.ProfileID).
		SetBlobID(req.BlobID).
		SetContentHash(req.ContentHash).
		SetInvoiceType(string(req.InvoiceType)).
		SetCanonicalFields(req.CanonicalFields).
		SetRawEngineOutput(req.RawEngineOutput).
		SetConfidenceScores(req.ConfidenceScores).
		SetValidation(req.Validation).
		SetSource(string(req.Source)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// a concurrent writer got there first; report as duplicate
			return nil, common.ErrDuplicateContent
		}
		r.logger.Error("failed to create invoice", "profile_id", req.ProfileID, "error", err)
		return nil, err
	}
	return toInvoice(row), nil
}

// ReplaceFields overwrites the extraction payload of an existing record,
// used by the replace policy when re-ingesting soft-deleted content.
func (r *invoiceRepository) ReplaceFields(ctx context.Context, id uuid.UUID, req *CreateInvoiceRequest) (*entity.Invoice, error) {
	row, err := r.client.Invoice.UpdateOneID(id).
		SetInvoiceType(string(req.InvoiceType)).
		SetCanonicalFields(req.CanonicalFields).
		SetRawEngineOutput(req.RawEngineOutput).
		SetConfidenceScores(req.ConfidenceScores).
		SetValidation(req.Validation).
		SetSource(string(req.Source)).
		SetLifecycleState(string(constants.LifecycleActive)).
		ClearDeletedAt().
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to replace invoice fields", "invoice_id", id, "error", err)
		return nil, err
	}
	return toInvoice(row), nil
}

func (r *invoiceRepository) ListInvoices(ctx context.Context, profileID uuid.UUID, filter ListInvoicesFilter) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query().Where(entinvoice.ProfileID(profileID))
	if !filter.IncludeDeleted {
		q = q.Where(entinvoice.LifecycleState(string(constants.LifecycleActive)))
	}
	if filter.InvoiceType != "" {
		q = q.Where(entinvoice.InvoiceType(string(filter.InvoiceType)))
	}
	if filter.FromDate != nil {
		q = q.Where(entinvoice.CreatedAtGTE(*filter.FromDate))
	}
	if filter.ToDate != nil {
		q = q.Where(entinvoice.CreatedAtLTE(*filter.ToDate))
	}
	rows, err := q.Order(entinvoice.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "profile_id", profileID, "error", err)
		return nil, err
	}
	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = toInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.UpdateOneID(id).
		SetLifecycleState(string(constants.LifecycleSoftDeleted)).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to soft-delete invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	return toInvoice(row), nil
}

func (r *invoiceRepository) Restore(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.UpdateOneID(id).
		SetLifecycleState(string(constants.LifecycleActive)).
		ClearDeletedAt().
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to restore invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	return toInvoice(row), nil
}

// PurgeExpired hard-deletes records soft-deleted before the cutoff and
// returns their blob ids so the caller can reap storage.
func (r *invoiceRepository) PurgeExpired(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	rows, err := r.client.Invoice.Query().
		Where(
			entinvoice.LifecycleState(string(constants.LifecycleSoftDeleted)),
			entinvoice.DeletedAtLTE(cutoff),
		).All(ctx)
	if err != nil {
		r.logger.Error("failed to query expired invoices", "error", err)
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(rows))
	blobIDs := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		blobIDs[i] = row.BlobID
	}
	if _, err := r.client.Invoice.Delete().Where(entinvoice.IDIn(ids...)).Exec(ctx); err != nil {
		r.logger.Error("failed to purge expired invoices", "count", len(ids), "error", err)
		return nil, err
	}
	r.logger.Info("purged expired invoices", "count", len(ids), "cutoff", cutoff)
	return blobIDs, nil
}
