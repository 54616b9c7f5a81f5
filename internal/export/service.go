package export

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/billfold/invoice-ingest/constants"
	"github.com/billfold/invoice-ingest/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// exportColumns is the flat projection of the canonical field set used in
// the workbook. Values come from the snake_case keys only; the aliases
// exist for API consumers, not for exports.
var exportColumns = []struct {
	header string
	key    string
}{
	{"Invoice Date", "invoice_date"},
	{"Invoice Number", "invoice_number"},
	{"Seller", "seller_name"},
	{"Buyer", "buyer_name"},
	{"Amount (net)", "amount_without_tax"},
	{"Tax", "tax_amount"},
	{"Total", "total_amount"},
}

// ExportInvoicesXLSX returns an XLSX workbook for the given profile and
// optional type/date filters.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices for profile.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, profileID uuid.UUID, invoiceType constants.InvoiceType, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	invs, err := s.invoices.ListInvoices(ctx, profileID, repository.ListInvoicesFilter{
		InvoiceType: invoiceType,
		FromDate:    fromDate,
		ToDate:      toDate,
	})
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	write := func(col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	write(1, 1, "Type")
	for i, c := range exportColumns {
		write(i+2, 1, c.header)
	}
	write(len(exportColumns)+2, 1, "Source")
	write(len(exportColumns)+3, 1, "Ingested At")

	row := 2
	for _, inv := range invs {
		var fields map[string]any
		if len(inv.CanonicalFields) > 0 {
			_ = json.Unmarshal(inv.CanonicalFields, &fields)
		}
		write(1, row, string(inv.InvoiceType))
		for i, c := range exportColumns {
			v, _ := fields[c.key].(string)
			write(i+2, row, v)
		}
		write(len(exportColumns)+2, row, string(inv.Source))
		write(len(exportColumns)+3, row, inv.CreatedAt.Format("2006-01-02 15:04:05"))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 16) // type
	_ = f.SetColWidth(sheet, "B", "B", 14) // date
	_ = f.SetColWidth(sheet, "C", "C", 20) // number
	_ = f.SetColWidth(sheet, "D", "E", 30) // parties
	_ = f.SetColWidth(sheet, "F", "H", 14) // amounts
	_ = f.SetColWidth(sheet, "I", "J", 20) // source, ingested

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"profile_id", profileID.String(),
		"rows", len(invs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
