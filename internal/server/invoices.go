package server

import (
	"context"
	"errors"
	"strings"
	"time"

	"log/slog"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/billfold/invoice-ingest/constants"
	v1 "github.com/billfold/invoice-ingest/gen/proto/ingest/v1"
	"github.com/billfold/invoice-ingest/internal/common"
	"github.com/billfold/invoice-ingest/internal/repository"
)

type InvoiceServer struct {
	v1.UnimplementedInvoicesServiceServer
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewInvoiceServer(invoices repository.InvoiceRepository, logger *slog.Logger) *InvoiceServer {
	return &InvoiceServer{
		invoices: invoices,
		logger:   logger,
	}
}

// ListInvoices returns the profile's records, optionally filtered by type
// and an inclusive date window on ingestion time.
func (s *InvoiceServer) ListInvoices(ctx context.Context, req *v1.ListInvoicesRequest) (*v1.ListInvoicesResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	filter := repository.ListInvoicesFilter{IncludeDeleted: req.GetIncludeDeleted()}
	if t := strings.TrimSpace(req.GetInvoiceType()); t != "" {
		it, err := parseInvoiceType(t)
		if err != nil {
			return nil, err
		}
		filter.InvoiceType = it
	}
	if filter.FromDate, err = parseDate(req.GetFromDate(), "from_date", false); err != nil {
		return nil, err
	}
	if filter.ToDate, err = parseDate(req.GetToDate(), "to_date", true); err != nil {
		return nil, err
	}

	invs, err := s.invoices.ListInvoices(ctx, profileID, filter)
	if err != nil {
		s.logger.Error("list invoices failed", "profile_id", profileID, "error", err)
		return nil, status.Error(codes.Internal, "list invoices failed")
	}
	out := make([]*v1.Invoice, 0, len(invs))
	for _, inv := range invs {
		out = append(out, toPBInvoice(inv))
	}
	return &v1.ListInvoicesResponse{Invoices: out}, nil
}

// DeleteInvoice soft-deletes a record. The content hash stays registered
// so re-ingesting the same bytes is still treated as a duplicate.
func (s *InvoiceServer) DeleteInvoice(ctx context.Context, req *v1.DeleteInvoiceRequest) (*v1.DeleteInvoiceResponse, error) {
	id, err := parseInvoiceID(req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "invoice not found")
		}
		s.logger.Error("delete invoice failed", "invoice_id", id, "error", err)
		return nil, status.Error(codes.Internal, "delete invoice failed")
	}
	return &v1.DeleteInvoiceResponse{Invoice: toPBInvoice(inv)}, nil
}

func (s *InvoiceServer) RestoreInvoice(ctx context.Context, req *v1.RestoreInvoiceRequest) (*v1.RestoreInvoiceResponse, error) {
	id, err := parseInvoiceID(req.GetInvoiceId())
	if err != nil {
		return nil, err
	}
	inv, err := s.invoices.Restore(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "invoice not found")
		}
		s.logger.Error("restore invoice failed", "invoice_id", id, "error", err)
		return nil, status.Error(codes.Internal, "restore invoice failed")
	}
	return &v1.RestoreInvoiceResponse{Invoice: toPBInvoice(inv)}, nil
}

func parseInvoiceID(raw string) (uuid.UUID, error) {
	iid := strings.TrimSpace(raw)
	if iid == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "invoice_id is required")
	}
	id, err := uuid.Parse(iid)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "invoice_id must be a UUID")
	}
	return id, nil
}

func parseInvoiceType(raw string) (constants.InvoiceType, error) {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	for _, known := range constants.InvoiceTypesAsStrings() {
		if normalized == known {
			return constants.InvoiceType(known), nil
		}
	}
	return "", status.Errorf(codes.InvalidArgument, "unknown invoice_type %q, expected one of %s",
		raw, strings.Join(constants.InvoiceTypesAsStrings(), ", "))
}

// parseDate accepts YYYY-MM-DD. endOfDay pushes the boundary to 23:59:59
// so to_date is inclusive.
func parseDate(raw, field string, endOfDay bool) (*time.Time, error) {
	d := strings.TrimSpace(raw)
	if d == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be YYYY-MM-DD", field)
	}
	if endOfDay {
		t = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, time.UTC)
	}
	return &t, nil
}
