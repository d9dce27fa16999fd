// =============================================================================
// Point-of-Sale Invoice Generator - PDF Conversion Module
// =============================================================================
//
// Converts a filled invoice workbook into the distributable PDF. The
// workbook's cell grid is rendered row by row: single-cell rows become
// full-width lines, multi-cell rows become four-column table lines. The
// layout is fixed; everything variable was already substituted during the
// template fill.
//
// =============================================================================

package invoice

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// pdf layout constants (A4 portrait, millimetres).
const (
	pdfColWidth   = 47.5
	pdfLineHeight = 7.0
)

// RenderPDF reads the filled workbook and writes the invoice PDF to outPath.
func RenderPDF(filledPath, outPath string) error {
	f, err := excelize.OpenFile(filledPath)
	if err != nil {
		return fmt.Errorf("failed to open filled workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read filled workbook: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)

	for r, row := range rows {
		if len(row) == 0 {
			pdf.Ln(pdfLineHeight / 2)
			continue
		}

		// First row is the business name banner; the rest of the document
		// uses the body font.
		if r == 1 {
			pdf.SetFont("Arial", "", 11)
		}

		if len(row) == 1 {
			pdf.CellFormat(4*pdfColWidth, pdfLineHeight, row[0], "", 1, "L", false, 0, "")
			continue
		}

		for c := 0; c < 4; c++ {
			value := ""
			if c < len(row) {
				value = row[c]
			}
			pdf.CellFormat(pdfColWidth, pdfLineHeight, value, "", 0, "L", false, 0, "")
		}
		pdf.Ln(pdfLineHeight)
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("failed to write invoice PDF: %w", err)
	}
	return nil
}
