// =============================================================================
// Point-of-Sale Invoice Generator - Checkout Transaction Module
// =============================================================================
//
// The Generator runs the full checkout transaction for a confirmed cart:
//
//   read counter -> fill template -> render PDF -> append ledger row
//                -> persist counter + 1
//
// The counter only advances after everything else succeeded; a failure at
// any earlier step leaves both the counter and the ledger untouched, so the
// same invoice number is reused on the next attempt.
//
// =============================================================================

package invoice

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/Patel-Smit/InvoicePDFGenerator/internal/cart"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/config"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/customer"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/ledger"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Receipt summarises a completed checkout.
type Receipt struct {
	InvoiceNumber string
	PDFPath       string
	Totals        Totals
	IssuedAt      time.Time
}

// Generator produces invoices and records them in the sales ledger.
type Generator struct {
	cfg    *config.Config
	ledger *ledger.Writer

	// now is injectable for tests; defaults to time.Now.
	now func() time.Time
}

// New creates a Generator backed by the given configuration and ledger.
func New(cfg *config.Config, lw *ledger.Writer) *Generator {
	return &Generator{cfg: cfg, ledger: lw, now: time.Now}
}

// Checkout generates the invoice PDF for the cart, appends the sales ledger
// row, and advances the invoice counter. On error nothing is recorded and
// the counter keeps its current value.
func (g *Generator) Checkout(rec customer.Record, crt *cart.Cart) (Receipt, error) {
	number := g.cfg.InvoiceNumber()
	issuedAt := g.now()
	lines := crt.Lines()

	replacements, totals, err := BuildReplacements(
		g.cfg.Business,
		rec,
		lines,
		number,
		decimal.NewFromFloat(g.cfg.Settings.TaxRate),
		issuedAt,
	)
	if err != nil {
		return Receipt{}, fmt.Errorf("failed to compute invoice fields: %w", err)
	}

	if err := EnsureTemplate(g.cfg.Settings.TemplateFile); err != nil {
		return Receipt{}, err
	}

	filledPath, err := FillTemplate(g.cfg.Settings.TemplateFile, g.cfg.Settings.TempDir, replacements, len(lines))
	if err != nil {
		return Receipt{}, err
	}

	pdfPath := filepath.Join(g.cfg.Settings.InvoiceDir, number+".pdf")
	if err := RenderPDF(filledPath, pdfPath); err != nil {
		return Receipt{}, err
	}

	row := ledger.Row{
		InvoiceNumber:   number,
		DateTime:        issuedAt.Format(timestampLayout),
		CustomerName:    rec.Name,
		CustomerAddress: rec.Address.String(),
		Cart:            ledger.FormatCart(lines),
		Total:           "$ " + totals.BalanceDue.StringFixed(2),
	}
	if err := g.ledger.Append(row); err != nil {
		return Receipt{}, err
	}

	if err := g.cfg.AdvanceInvoiceNumber(); err != nil {
		return Receipt{}, err
	}

	log.WithFields(log.Fields{
		"invoice_number": number,
		"customer":       rec.Name,
		"items":          len(lines),
		"balance_due":    totals.BalanceDue.StringFixed(2),
		"pdf":            pdfPath,
	}).Info("invoice generated")

	return Receipt{
		InvoiceNumber: number,
		PDFPath:       pdfPath,
		Totals:        totals,
		IssuedAt:      issuedAt,
	}, nil
}
