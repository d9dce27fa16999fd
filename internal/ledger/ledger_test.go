package ledger

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/Patel-Smit/InvoicePDFGenerator/internal/cart"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return records
}

func TestAppendWritesHeaderOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales_data.csv")
	w := NewWriter(path)

	require.NoError(t, w.Append(Row{
		InvoiceNumber: "000042",
		DateTime:      "01-02-2026 03:04 PM",
		CustomerName:  "Jane Doe",
		Cart:          "Oil Change x1 @ 49.99",
		Total:         "$ 57.49",
	}))
	require.NoError(t, w.Append(Row{
		InvoiceNumber: "000043",
		DateTime:      "01-02-2026 03:10 PM",
		CustomerName:  "John Roe",
		Cart:          "Tire Rotation x2 @ 29.99",
		Total:         "$ 68.98",
	}))

	records := readAll(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"invoice_number", "date_time", "cx_name", "cx_address", "cart", "total"}, records[0])
	assert.Equal(t, "000042", records[1][0])
	assert.Equal(t, "000043", records[2][0])
}

func TestAppendNeverTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales_data.csv")
	w := NewWriter(path)
	require.NoError(t, w.Append(Row{InvoiceNumber: "000001"}))

	before := readAll(t, path)

	// A second writer for the same file must append, not rewrite.
	require.NoError(t, NewWriter(path).Append(Row{InvoiceNumber: "000002"}))

	after := readAll(t, path)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
}

func TestFormatCart(t *testing.T) {
	lines := []cart.Line{
		{Service: "Oil Change", UnitPrice: decimal.RequireFromString("49.99"), Quantity: 1},
		{Service: "Tire Rotation", UnitPrice: decimal.RequireFromString("29.99"), Quantity: 2},
	}

	got := FormatCart(lines)

	assert.Equal(t, "Oil Change x1 @ 49.99; Tire Rotation x2 @ 29.99", got)
}
