// =============================================================================
// Point-of-Sale Invoice Generator - Cart Module
// =============================================================================
//
// The cart is an ordered list of line items owned by the active session.
// Lines are unique per service name: adding a service that is already in the
// cart merges quantities into the existing line instead of appending a
// duplicate. Removal supports both partial (decrement) and full (delete)
// semantics.
//
// =============================================================================

package cart

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a removal names a service not in the cart.
var ErrNotFound = errors.New("item not found in cart")

// ErrEmptyName is returned when a removal names nothing at all.
var ErrEmptyName = errors.New("empty selection")

// ErrBadQuantity is returned when a removal count is negative or exceeds the
// quantity currently in the cart.
var ErrBadQuantity = errors.New("incorrect quantity")

// Line is one catalog service plus the requested quantity.
type Line struct {
	Service   string
	UnitPrice decimal.Decimal
	Quantity  int
}

// Extended returns the extended amount for the line (unit price x quantity).
func (l Line) Extended() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the ordered collection of line items for one session.
// Insertion order is first-add order and is preserved across merges.
type Cart struct {
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts a service into the cart. A quantity below 1 is coerced to 1.
// If a line with the same service name already exists its quantity is
// incremented; otherwise a new line is appended. It returns the resulting
// line and whether the add merged into an existing one.
func (c *Cart) Add(service string, unitPrice decimal.Decimal, quantity int) (Line, bool) {
	if quantity < 1 {
		quantity = 1
	}

	if i := c.index(service); i >= 0 {
		c.lines[i].Quantity += quantity
		return c.lines[i], true
	}

	line := Line{Service: service, UnitPrice: unitPrice, Quantity: quantity}
	c.lines = append(c.lines, line)
	return line, false
}

// Get looks up a line by service name, case-insensitively.
func (c *Cart) Get(service string) (Line, bool) {
	if i := c.index(service); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// RemoveQuantity removes count units of a service from the cart.
//
// An empty name yields ErrEmptyName and an unknown name ErrNotFound; the
// cart is left unchanged in both cases. A negative count, or a count above
// the current quantity, yields ErrBadQuantity. A count equal to the current
// quantity deletes the line; a smaller count decrements it. It returns the
// affected line (post-removal quantity) and whether the line was deleted.
func (c *Cart) RemoveQuantity(service string, count int) (Line, bool, error) {
	if strings.TrimSpace(service) == "" {
		return Line{}, false, ErrEmptyName
	}

	i := c.index(service)
	if i < 0 {
		return Line{}, false, ErrNotFound
	}

	if count < 0 || count > c.lines[i].Quantity {
		return Line{}, false, ErrBadQuantity
	}

	if count == c.lines[i].Quantity {
		removed := c.lines[i]
		removed.Quantity = 0
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		return removed, true, nil
	}

	c.lines[i].Quantity -= count
	return c.lines[i], false, nil
}

// Subtotal returns the sum of all extended line amounts.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Extended())
	}
	return subtotal
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// index returns the position of the line whose service name matches
// case-insensitively, or -1.
func (c *Cart) index(service string) int {
	for i, line := range c.lines {
		if strings.EqualFold(line.Service, service) {
			return i
		}
	}
	return -1
}
