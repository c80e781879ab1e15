package export

import (
	"fmt"

	"github.com/ikkim/cinestream-backend/internal/app/service"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// WriteXLSX renders a report document into a single-sheet XLSX file.
// Sections are written top to bottom in document order, separated by a
// blank row, so identical documents yield identical workbooks.
func WriteXLSX(doc *service.Document) (*excelize.File, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil report document")
	}

	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	row := 1
	if err := setRow(f, row, doc.Title); err != nil {
		return nil, err
	}
	row++
	if err := setRow(f, row, "Generated on: "+doc.GeneratedAt.Format("2006-01-02 15:04:05")); err != nil {
		return nil, err
	}
	row += 2

	for _, section := range doc.Sections {
		if err := setRow(f, row, section.Title); err != nil {
			return nil, err
		}
		row++

		for _, field := range section.Fields {
			if err := setRow(f, row, field.Label, field.Value); err != nil {
				return nil, err
			}
			row++
		}

		if section.Table != nil {
			if err := setRow(f, row, section.Table.Headers...); err != nil {
				return nil, err
			}
			row++
			for _, cells := range section.Table.Rows {
				if err := setRow(f, row, cells...); err != nil {
					return nil, err
				}
				row++
			}
		}

		// Blank separator row between sections
		row++
	}

	return f, nil
}

// setRow writes the given values into consecutive columns of one row.
func setRow(f *excelize.File, row int, values ...string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell coordinate: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}
