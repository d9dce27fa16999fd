// =============================================================================
// Point-of-Sale Invoice Generator - Customer Module
// =============================================================================
//
// This module collects and validates a customer's identity and address at
// session start. Each field is prompted in a loop until it validates;
// entering "Q" at any prompt aborts the whole session.
//
// Validation rules:
//   - Name:           letters and spaces only, non-empty
//   - Unit/Apt:       alphanumeric, may be empty
//   - Street:         letters, digits and spaces, non-empty
//   - City, Province: exactly one comma, both sides alphabetic and non-empty
//   - Postal code:    alphanumeric, 6-7 characters ignoring inner spaces
//
// Provinces shorter than 3 runes are upper-cased: short inputs are taken to
// be abbreviation codes ("on" -> "ON").
//
// =============================================================================

package customer

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/Patel-Smit/InvoicePDFGenerator/internal/prompt"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// Address holds the customer's structured address fields. Unit may be empty.
type Address struct {
	Unit     string
	Street   string
	City     string
	Province string
	Postal   string
}

// Record is the per-session customer identity. Immutable after collection.
type Record struct {
	Name    string
	Address Address
}

// StreetLine renders the street address as printed on the invoice,
// prefixing the unit number when one was given.
func (a Address) StreetLine() string {
	if a.Unit == "" {
		return a.Street
	}
	return a.Unit + " - " + a.Street
}

// String renders the full address on one line for the sales ledger.
func (a Address) String() string {
	return fmt.Sprintf("%s, %s, %s %s", a.StreetLine(), a.City, a.Province, a.Postal)
}

// Collect interactively gathers a validated customer record. It returns
// prompt.ErrQuit if the operator enters the quit sentinel at any field.
func Collect(p *prompt.Prompter) (Record, error) {
	name, err := askField(p, "Name of Customer: ", func(s string) (string, error) {
		s = titleCaser.String(s)
		if err := ValidateName(s); err != nil {
			return "", err
		}
		return s, nil
	})
	if err != nil {
		return Record{}, err
	}

	p.Printf("%s\n", centerLine("Address of Customer"))

	unit, err := askField(p, "Unit/Apt: ", func(s string) (string, error) {
		s = strings.ToUpper(s)
		if err := ValidateUnit(s); err != nil {
			return "", err
		}
		return s, nil
	})
	if err != nil {
		return Record{}, err
	}

	street, err := askField(p, "Street: ", func(s string) (string, error) {
		s = titleCaser.String(s)
		if err := ValidateStreet(s); err != nil {
			return "", err
		}
		return s, nil
	})
	if err != nil {
		return Record{}, err
	}

	var city, province string
	_, err = askField(p, "City, Province: ", func(s string) (string, error) {
		c, pr, err := ParseCityProvince(titleCaser.String(s))
		if err != nil {
			return "", err
		}
		city, province = c, pr
		return s, nil
	})
	if err != nil {
		return Record{}, err
	}

	postal, err := askField(p, "Postal Code: ", func(s string) (string, error) {
		s = strings.ToUpper(s)
		if err := ValidatePostal(s); err != nil {
			return "", err
		}
		return s, nil
	})
	if err != nil {
		return Record{}, err
	}

	return Record{
		Name: name,
		Address: Address{
			Unit:     unit,
			Street:   street,
			City:     city,
			Province: province,
			Postal:   postal,
		},
	}, nil
}

// askField loops a single prompt until validate accepts the input, surfacing
// prompt.ErrQuit on the quit sentinel.
func askField(p *prompt.Prompter, label string, validate func(string) (string, error)) (string, error) {
	for {
		input, err := p.Ask(label)
		if err != nil {
			return "", err
		}
		if prompt.IsQuit(input) {
			return "", prompt.ErrQuit
		}

		value, err := validate(input)
		if err != nil {
			p.Printf("⚠️ %v\n", err)
			continue
		}
		return value, nil
	}
}

// ValidateName checks that a customer name is letters and spaces only.
func ValidateName(s string) error {
	if stripSpaces(s) == "" || !isAlpha(stripSpaces(s)) {
		return errors.New("please enter a valid name (letters only)")
	}
	return nil
}

// ValidateUnit checks a unit/apartment value. Empty is allowed.
func ValidateUnit(s string) error {
	if s == "" {
		return nil
	}
	if strings.ContainsRune(s, ' ') || !isAlphanumeric(s) {
		return errors.New("please enter a valid unit/apt (alphanumeric only)")
	}
	return nil
}

// ValidateStreet checks that a street address is non-empty letters, digits
// and spaces.
func ValidateStreet(s string) error {
	if stripSpaces(s) == "" || !isAlphanumeric(stripSpaces(s)) {
		return errors.New("please enter a valid street address (letters and numbers only)")
	}
	return nil
}

// ParseCityProvince splits a "City, Province" input into its validated
// parts. Provinces shorter than 3 runes are upper-cased.
func ParseCityProvince(s string) (string, string, error) {
	if strings.Count(s, ",") != 1 {
		return "", "", errors.New(`please enter your city and province (format: "City, Province")`)
	}
	compact := strings.ReplaceAll(stripSpaces(s), ",", "")
	if compact == "" || !isAlpha(compact) {
		return "", "", errors.New("please enter a valid city and province (letters only)")
	}

	parts := strings.SplitN(s, ",", 2)
	city := strings.TrimSpace(parts[0])
	province := strings.TrimSpace(parts[1])
	if city == "" || province == "" {
		return "", "", errors.New(`please enter a valid city and province (format: "City, Province")`)
	}

	if len([]rune(province)) < 3 {
		province = strings.ToUpper(province)
	}
	return city, province, nil
}

// ValidatePostal checks a postal code: alphanumeric ignoring inner spaces,
// 6-7 characters total.
func ValidatePostal(s string) error {
	if n := len([]rune(s)); n < 6 || n > 7 {
		return errors.New("please enter a valid postal code (6-7 characters)")
	}
	if !isAlphanumeric(stripSpaces(s)) {
		return errors.New("please enter a valid postal code (letters and numbers only)")
	}
	return nil
}

// centerLine centers a heading in the session's console width.
func centerLine(s string) string {
	const width = 50
	pad := width - len(s)
	if pad < 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return s != ""
}

func isAlphanumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
