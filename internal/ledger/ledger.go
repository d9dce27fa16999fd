// =============================================================================
// Point-of-Sale Invoice Generator - Sales Ledger Module
// =============================================================================
//
// The ledger is an append-only CSV of completed checkouts. A header row is
// written only when the file does not yet exist; existing content is never
// rewritten or truncated.
//
// COLUMNS:
//   invoice_number, date_time, cx_name, cx_address, cart, total
//
// =============================================================================

package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/Patel-Smit/InvoicePDFGenerator/internal/cart"
)

// header is the ledger's column set, written once on file creation.
var header = []string{"invoice_number", "date_time", "cx_name", "cx_address", "cart", "total"}

// Row is one completed checkout. Rows are write-once.
type Row struct {
	InvoiceNumber   string
	DateTime        string
	CustomerName    string
	CustomerAddress string
	Cart            string
	Total           string
}

// Writer appends rows to the sales ledger file.
type Writer struct {
	path string
}

// NewWriter creates a ledger writer for the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Append writes one row to the ledger, creating the file (with its header)
// on first use.
func (w *Writer) Append(row Row) error {
	_, statErr := os.Stat(w.path)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open sales ledger: %w", err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if writeHeader {
		if err := cw.Write(header); err != nil {
			return fmt.Errorf("failed to write ledger header: %w", err)
		}
	}

	record := []string{
		row.InvoiceNumber,
		row.DateTime,
		row.CustomerName,
		row.CustomerAddress,
		row.Cart,
		row.Total,
	}
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("failed to write ledger row: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush sales ledger: %w", err)
	}
	return nil
}

// FormatCart renders a cart snapshot as a compact single-field string,
// e.g. "Oil Change x1 @ 49.99; Tire Rotation x2 @ 29.99".
func FormatCart(lines []cart.Line) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		parts = append(parts, fmt.Sprintf("%s x%d @ %s", line.Service, line.Quantity, line.UnitPrice.StringFixed(2)))
	}
	return strings.Join(parts, "; ")
}
