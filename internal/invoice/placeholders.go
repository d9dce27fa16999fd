// =============================================================================
// Point-of-Sale Invoice Generator - Placeholder Substitution Module
// =============================================================================
//
// The invoice template carries placeholder tokens of the form [Name]. This
// module computes the full replacement map for one invoice: business
// profile fields, the date/time stamp, customer fields, per-line item
// fields, and the computed totals.
//
// Per-line keys ([Item1], [Quantity1], ...) are built with plain string
// formatting into an ordinary map. Cart content is data and is only ever
// used as data; nothing derived from it is evaluated.
//
// =============================================================================

package invoice

import (
	"fmt"
	"time"

	"github.com/Patel-Smit/InvoicePDFGenerator/internal/cart"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/config"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/customer"
	"github.com/shopspring/decimal"
)

// timestampLayout is the invoice date/time stamp format.
const timestampLayout = "01-02-2006 03:04 PM"

// Totals holds the computed money amounts for one invoice.
type Totals struct {
	Subtotal   decimal.Decimal
	Tax        decimal.Decimal
	BalanceDue decimal.Decimal
}

// BuildReplacements computes the placeholder map and totals for one invoice.
// taxRate is a fraction (0.15 = 15%); the printed percentage is derived from
// it.
func BuildReplacements(
	profile config.BusinessProfile,
	rec customer.Record,
	lines []cart.Line,
	invoiceNumber string,
	taxRate decimal.Decimal,
	now time.Time,
) (map[string]string, Totals, error) {
	if len(lines) == 0 {
		return nil, Totals{}, fmt.Errorf("cannot build an invoice without line items")
	}
	if taxRate.IsNegative() {
		return nil, Totals{}, fmt.Errorf("tax rate %s must not be negative", taxRate)
	}

	replacements := map[string]string{
		"[Business Name]":          profile.Name,
		"[Business Address]":       profile.StreetAddress,
		"[Business City Province]": profile.CityProvince,
		"[Business Email]":         profile.Email,
		"[Business Contact]":       profile.Contact,
		"[Date]":                   now.Format(timestampLayout),
		"[Partner]":                rec.Name,
		"[Partner Street]":         rec.Address.StreetLine(),
		"[Partner City]":           rec.Address.City,
		"[Partner Province]":       rec.Address.Province,
		"[Partner Postal]":         rec.Address.Postal,
		"[Invoice Number]":         invoiceNumber,
		"[Tax]":                    taxRate.Mul(decimal.NewFromInt(100)).StringFixed(2),
		"[Recipient]":              profile.PaymentRecipient,
		"[Bank]":                   profile.PaymentBank,
		"[IBAN]":                   profile.PaymentIBAN,
		"[BIC]":                    profile.PaymentBIC,
	}

	subtotal := decimal.Zero
	for i, line := range lines {
		n := i + 1
		replacements[fmt.Sprintf("[Item%d]", n)] = line.Service
		replacements[fmt.Sprintf("[Quantity%d]", n)] = fmt.Sprintf("%d", line.Quantity)
		replacements[fmt.Sprintf("[Amount%d]", n)] = "$ " + line.UnitPrice.StringFixed(2)
		replacements[fmt.Sprintf("[Full Price%d]", n)] = "$ " + line.Extended().StringFixed(2)
		subtotal = subtotal.Add(line.Extended())
	}

	totals := Totals{
		Subtotal: subtotal,
		Tax:      subtotal.Mul(taxRate),
	}
	totals.BalanceDue = totals.Subtotal.Add(totals.Tax)

	replacements["[Subtotal]"] = "$ " + totals.Subtotal.StringFixed(2)
	replacements["[Total Tax]"] = "$ " + totals.Tax.StringFixed(2)
	replacements["[Balance Due]"] = "$ " + totals.BalanceDue.StringFixed(2)

	return replacements, totals, nil
}
