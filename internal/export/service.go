package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/cardkeep/cardkeep/internal/repository"
)

// Service is a tiny façade over the contact repository that produces XLSX
// bytes for exports.
type Service struct {
	contacts repository.ContactRepository
	logger   *slog.Logger
}

func NewService(contacts repository.ContactRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{contacts: contacts, logger: logger}
}

// ExportContactsXLSX returns an XLSX workbook (as bytes) for all contacts,
// optionally narrowed by a case-insensitive search term.
func (s *Service) ExportContactsXLSX(ctx context.Context, search string) ([]byte, error) {
	start := time.Now()

	recs, err := s.contacts.ListContacts(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Contacts"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Full Name",
		"Organization",
		"Job Title",
		"Contact Number",
		"Business Email",
		"Business URL",
		"Street Address",
		"City",
		"State",
		"Postal Code",
		"Added",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, c := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, c.FullName)
		write(2, c.Organization)
		write(3, c.JobTitle)
		write(4, c.ContactNumber)
		write(5, c.BusinessEmail)
		write(6, c.BusinessURL)
		write(7, truncate(c.StreetAddress, 140))
		write(8, c.LocationCity)
		write(9, c.LocationState)
		write(10, c.PostalCode)
		if !c.CreatedAt.IsZero() {
			write(11, c.CreatedAt.UTC().Format("2006-01-02"))
		} else {
			write(11, "")
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 24) // name
	_ = f.SetColWidth(sheet, "B", "B", 26) // organization
	_ = f.SetColWidth(sheet, "C", "C", 24) // title
	_ = f.SetColWidth(sheet, "D", "D", 18) // phone
	_ = f.SetColWidth(sheet, "E", "F", 30) // email, url
	_ = f.SetColWidth(sheet, "G", "G", 44) // address
	_ = f.SetColWidth(sheet, "H", "J", 14) // city/state/postal
	_ = f.SetColWidth(sheet, "K", "K", 12) // added

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(recs),
		"search", search,
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
