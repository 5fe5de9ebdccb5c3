package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/procurehq/procurement-tracker/internal/suppliers"
)

// Service produces XLSX bytes for supplier spend reports.
type Service struct {
	store  suppliers.Store
	logger *slog.Logger
}

func NewService(store suppliers.Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

// ExportSuppliersXLSX returns an XLSX workbook (as bytes) with every supplier
// of the tenant, ordered by name, with contact and spend columns.
func (s *Service) ExportSuppliersXLSX(ctx context.Context, tenantID uuid.UUID) ([]byte, error) {
	start := time.Now()

	rows, err := s.store.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("query suppliers: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Suppliers"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Supplier",
		"Status",
		"Contact Email",
		"Contact Phone",
		"Address",
		"Tax ID",
		"Total Spend",
		"Rating",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, sup := range rows {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, truncate(sup.Name, 80))
		write(2, string(sup.Status))
		write(3, deref(sup.ContactEmail))
		write(4, deref(sup.ContactPhone))
		write(5, truncate(deref(sup.ContactAddress), 140))
		write(6, deref(sup.TaxID))
		write(7, sup.TotalSpend)
		write(8, sup.PerformanceRating)

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 32) // name
	_ = f.SetColWidth(sheet, "B", "B", 12) // status
	_ = f.SetColWidth(sheet, "C", "C", 28) // email
	_ = f.SetColWidth(sheet, "D", "D", 18) // phone
	_ = f.SetColWidth(sheet, "E", "E", 48) // address
	_ = f.SetColWidth(sheet, "F", "G", 16) // tax id, spend
	_ = f.SetColWidth(sheet, "H", "H", 10) // rating

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"tenant_id", tenantID.String(),
		"rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
