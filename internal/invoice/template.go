// =============================================================================
// Point-of-Sale Invoice Generator - Template Fill Module
// =============================================================================
//
// The invoice document starts from an XLSX template workbook containing
// [Name] placeholder tokens and a one-row line-item table marker. Filling
// happens in two steps, mirroring the document flow:
//
//   1. The line-item marker row ([Item1] .. [Full Price1]) is cloned once
//      per additional cart line, producing [Item2]..[ItemN] token rows.
//   2. Every cell of every sheet is scanned and each [Name] token replaced
//      from the replacement map.
//
// The filled workbook is written under the temp directory with a unique
// name; PDF conversion reads it from there.
//
// =============================================================================

package invoice

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Patel-Smit/InvoicePDFGenerator/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// lineItemMarker identifies the template row to clone per cart line.
const lineItemMarker = "[Item1]"

// lineItemTokens are the per-line token columns, in table column order.
var lineItemTokens = []string{"[Item%d]", "[Quantity%d]", "[Amount%d]", "[Full Price%d]"}

// FillTemplate expands the template's line-item table to lineCount rows,
// substitutes every placeholder, and writes the filled workbook into
// tempDir. It returns the path of the filled workbook.
func FillTemplate(templatePath, tempDir string, replacements map[string]string, lineCount int) (string, error) {
	f, err := excelize.OpenFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to open invoice template: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetList()[0]

	if err := expandLineItems(f, sheet, lineCount); err != nil {
		return "", err
	}
	if err := substitute(f, replacements); err != nil {
		return "", err
	}

	filledPath := filepath.Join(tempDir, utils.UniqueFileName("filled_invoice", ".xlsx"))
	if err := f.SaveAs(filledPath); err != nil {
		return "", fmt.Errorf("failed to save filled workbook: %w", err)
	}
	return filledPath, nil
}

// expandLineItems clones the marker row so the table has one token row per
// cart line.
func expandLineItems(f *excelize.File, sheet string, lineCount int) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read template rows: %w", err)
	}

	markerRow := -1
	for r, row := range rows {
		for _, cell := range row {
			if strings.Contains(cell, lineItemMarker) {
				markerRow = r + 1 // excelize rows are 1-based
				break
			}
		}
		if markerRow > 0 {
			break
		}
	}
	if markerRow < 0 {
		return fmt.Errorf("invoice template has no %s line-item marker row", lineItemMarker)
	}

	for i := 2; i <= lineCount; i++ {
		if err := f.InsertRows(sheet, markerRow+1, 1); err != nil {
			return fmt.Errorf("failed to insert line-item row: %w", err)
		}
		for col, token := range lineItemTokens {
			cell, err := excelize.CoordinatesToCellName(col+1, markerRow+1)
			if err != nil {
				return fmt.Errorf("failed to address line-item cell: %w", err)
			}
			if err := f.SetCellStr(sheet, cell, fmt.Sprintf(token, i)); err != nil {
				return fmt.Errorf("failed to write line-item token: %w", err)
			}
		}
		markerRow++
	}

	return nil
}

// substitute replaces every [Name] token across all sheets and cells.
func substitute(f *excelize.File, replacements map[string]string) error {
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}

		for r, row := range rows {
			for c, value := range row {
				if !strings.Contains(value, "[") {
					continue
				}
				for token, replacement := range replacements {
					value = strings.ReplaceAll(value, token, replacement)
				}

				cell, err := excelize.CoordinatesToCellName(c+1, r+1)
				if err != nil {
					return fmt.Errorf("failed to address cell: %w", err)
				}
				if err := f.SetCellStr(sheet, cell, value); err != nil {
					return fmt.Errorf("failed to write cell %s: %w", cell, err)
				}
			}
		}
	}
	return nil
}

// EnsureTemplate creates a default invoice template workbook at path if one
// does not already exist, so a fresh checkout works without a hand-built
// template.
func EnsureTemplate(path string) error {
	if utils.FileExists(path) {
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetList()[0]

	layout := [][]string{
		{"[Business Name]"},
		{"[Business Address]"},
		{"[Business City Province]"},
		{"[Business Email]", "", "", "[Business Contact]"},
		{},
		{"INVOICE", "", "", "[Invoice Number]"},
		{"Date:", "[Date]"},
		{},
		{"Bill To:"},
		{"[Partner]"},
		{"[Partner Street]"},
		{"[Partner City]", "[Partner Province]", "[Partner Postal]"},
		{},
		{"Item", "Quantity", "Unit Price", "Amount"},
		{"[Item1]", "[Quantity1]", "[Amount1]", "[Full Price1]"},
		{},
		{"", "", "Subtotal:", "[Subtotal]"},
		{"", "", "Tax ([Tax]%):", "[Total Tax]"},
		{"", "", "Balance Due:", "[Balance Due]"},
		{},
		{"Payment Details"},
		{"Recipient:", "[Recipient]"},
		{"Bank:", "[Bank]"},
		{"IBAN:", "[IBAN]"},
		{"BIC:", "[BIC]"},
	}

	for r, row := range layout {
		for c, value := range row {
			if value == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return fmt.Errorf("failed to address template cell: %w", err)
			}
			if err := f.SetCellStr(sheet, cell, value); err != nil {
				return fmt.Errorf("failed to write template cell: %w", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save default template: %w", err)
	}
	return nil
}
