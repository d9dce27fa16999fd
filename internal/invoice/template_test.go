package invoice

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Patel-Smit/InvoicePDFGenerator/internal/cart"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestFillTemplateSubstitutesEveryToken(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "invoice_template.xlsx")
	require.NoError(t, EnsureTemplate(tpl))

	lines := []cart.Line{
		{Service: "Oil Change", UnitPrice: decimal.RequireFromString("49.99"), Quantity: 1},
		{Service: "Tire Rotation", UnitPrice: decimal.RequireFromString("29.99"), Quantity: 2},
	}
	repl, _, err := BuildReplacements(testProfile, testCustomer, lines, "000042", decimal.RequireFromString("0.15"), time.Now())
	require.NoError(t, err)

	filled, err := FillTemplate(tpl, dir, repl, len(lines))
	require.NoError(t, err)

	f, err := excelize.OpenFile(filled)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)

	var all []string
	for _, row := range rows {
		all = append(all, row...)
	}
	joined := strings.Join(all, "\n")

	assert.Contains(t, joined, "Oil Change")
	assert.Contains(t, joined, "Tire Rotation")
	assert.Contains(t, joined, "000042")
	assert.Contains(t, joined, "Jane Doe")
	for _, cell := range all {
		assert.NotContains(t, cell, "[", "unsubstituted token in cell %q", cell)
	}
}

func TestFillTemplateExpandsLineItemRows(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "invoice_template.xlsx")
	require.NoError(t, EnsureTemplate(tpl))

	lines := []cart.Line{
		{Service: "Oil Change", UnitPrice: decimal.RequireFromString("49.99"), Quantity: 1},
		{Service: "Tire Rotation", UnitPrice: decimal.RequireFromString("29.99"), Quantity: 2},
		{Service: "Coolant Flush", UnitPrice: decimal.RequireFromString("79.99"), Quantity: 1},
	}
	repl, _, err := BuildReplacements(testProfile, testCustomer, lines, "000042", decimal.RequireFromString("0.15"), time.Now())
	require.NoError(t, err)

	filled, err := FillTemplate(tpl, dir, repl, len(lines))
	require.NoError(t, err)

	f, err := excelize.OpenFile(filled)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)

	// Items appear on consecutive table rows in cart order.
	var items []string
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		for _, line := range lines {
			if row[0] == line.Service {
				items = append(items, row[0])
			}
		}
	}
	assert.Equal(t, []string{"Oil Change", "Tire Rotation", "Coolant Flush"}, items)
}

func TestFillTemplateMissingMarker(t *testing.T) {
	dir := t.TempDir()
	tpl := filepath.Join(dir, "bare.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetCellStr(f.GetSheetList()[0], "A1", "[Business Name]"))
	require.NoError(t, f.SaveAs(tpl))
	require.NoError(t, f.Close())

	_, err := FillTemplate(tpl, dir, map[string]string{"[Business Name]": "Test"}, 2)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line-item marker")
}
