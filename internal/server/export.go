package server

import (
	"context"
	"strings"

	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/billfold/invoice-ingest/constants"
	v1 "github.com/billfold/invoice-ingest/gen/proto/ingest/v1"
	"github.com/billfold/invoice-ingest/internal/export"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	exporter *export.Service
	logger   *slog.Logger
}

func NewExportServer(exporter *export.Service, logger *slog.Logger) *ExportServer {
	return &ExportServer{
		exporter: exporter,
		logger:   logger,
	}
}

// ExportInvoices builds an XLSX workbook for the profile. Date semantics
// match the export service: a lone from_date extends through today.
func (s *ExportServer) ExportInvoices(ctx context.Context, req *v1.ExportInvoicesRequest) (*v1.ExportInvoicesResponse, error) {
	profileID, err := parseProfileID(req.GetProfileId())
	if err != nil {
		return nil, err
	}

	var invoiceType constants.InvoiceType
	if t := strings.TrimSpace(req.GetInvoiceType()); t != "" {
		if invoiceType, err = parseInvoiceType(t); err != nil {
			return nil, err
		}
	}
	from, err := parseDate(req.GetFromDate(), "from_date", false)
	if err != nil {
		return nil, err
	}
	to, err := parseDate(req.GetToDate(), "to_date", false)
	if err != nil {
		return nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, status.Error(codes.InvalidArgument, "to_date precedes from_date")
	}

	xlsx, err := s.exporter.ExportInvoicesXLSX(ctx, profileID, invoiceType, from, to)
	if err != nil {
		s.logger.Error("export invoices failed", "profile_id", profileID, "error", err)
		return nil, status.Error(codes.Internal, "export invoices failed")
	}
	return &v1.ExportInvoicesResponse{Xlsx: xlsx}, nil
}
