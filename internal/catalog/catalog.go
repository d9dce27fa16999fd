// =============================================================================
// Point-of-Sale Invoice Generator - Catalog Module
// =============================================================================
//
// This module loads the service catalog from a CSV file at startup. The
// catalog is the flat list of services the business offers, each with a
// price. It is loaded once per session and immutable thereafter.
//
// FILE FORMAT:
//   service,price
//   Oil Change,49.99
//   Tire Rotation,29.99
//
// A missing or malformed catalog file is a fatal startup condition: the
// session cannot run without it.
//
// =============================================================================

package catalog

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser normalizes service names for case-insensitive comparison.
var titleCaser = cases.Title(language.Und)

// Entry is one offered service with its unit price.
type Entry struct {
	Name  string
	Price decimal.Decimal
}

// Catalog is the ordered, immutable list of offered services.
type Catalog struct {
	entries []Entry
	names   []string
}

// Load reads the catalog CSV. The file must have a header row followed by
// (service, price) records with a decimal price.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open services file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse services file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("services file %s is empty", path)
	}
	if len(records[0]) < 2 {
		return nil, fmt.Errorf("services file %s: header must have service and price columns", path)
	}

	cat := &Catalog{}
	for i, record := range records[1:] {
		price, err := decimal.NewFromString(record[1])
		if err != nil {
			return nil, fmt.Errorf("services file %s row %d: invalid price %q: %w", path, i+2, record[1], err)
		}
		cat.entries = append(cat.entries, Entry{Name: record[0], Price: price})
		cat.names = append(cat.names, record[0])
	}

	return cat, nil
}

// Find looks up a service by name. Matching is case-insensitive via
// title-cased comparison.
func (c *Catalog) Find(name string) (Entry, bool) {
	want := titleCaser.String(name)
	for _, entry := range c.entries {
		if titleCaser.String(entry.Name) == want {
			return entry, true
		}
	}
	return Entry{}, false
}

// Entries returns the catalog entries in file order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Names returns the service names in file order.
func (c *Catalog) Names() []string {
	return c.names
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}
