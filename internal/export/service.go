package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/katiyar-electronics/bill-engine/internal/repository"
	"github.com/katiyar-electronics/bill-engine/internal/tax"
)

// Service produces XLSX bytes for the bills register.
type Service struct {
	bills  repository.BillRepository
	logger *slog.Logger
}

func NewService(bills repository.BillRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{bills: bills, logger: logger}
}

// ExportBillsXLSX returns an XLSX workbook (as bytes) listing every stored
// bill with its GST decomposition.
func (s *Service) ExportBillsXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	bills, err := s.bills.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("query bills: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Bills"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Invoice No.",
		"Date",
		"Customer Name",
		"Asset Category",
		"Manufacturer",
		"Model",
		"Serial Number",
		"Asset Cost",
		"Taxable Value",
		"CGST",
		"SGST",
		"Total Tax",
		"Finance",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, b := range bills {
		breakdown := tax.Compute(b.Record.AssetCost, b.Record.AssetCategory)

		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, b.InvoiceNumber)
		write(2, b.Record.Date)
		write(3, b.Record.CustomerName)
		write(4, b.Record.AssetCategory)
		write(5, b.Record.Manufacturer)
		write(6, b.Record.Model)
		write(7, b.Record.SerialNumber)
		write(8, b.Record.AssetCost)
		write(9, breakdown.TaxableValue.InexactFloat64())
		write(10, breakdown.CGST.InexactFloat64())
		write(11, breakdown.SGST.InexactFloat64())
		write(12, breakdown.TotalTaxAmount.InexactFloat64())
		if b.Record.FinanceFlag {
			write(13, "HDBFS")
		}
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.bills.ok", "rows", len(bills), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}
