package customer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Patel-Smit/InvoicePDFGenerator/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		input string
		ok    bool
	}{
		{"Jane Doe", true},
		{"Jane", true},
		{"Jane D0e", false},
		{"", false},
		{"   ", false},
		{"Jane-Doe", false},
	}

	for _, tt := range tests {
		err := ValidateName(tt.input)
		if tt.ok {
			assert.NoError(t, err, "input %q", tt.input)
		} else {
			assert.Error(t, err, "input %q", tt.input)
		}
	}
}

func TestValidateUnit(t *testing.T) {
	assert.NoError(t, ValidateUnit(""))
	assert.NoError(t, ValidateUnit("12A"))
	assert.NoError(t, ValidateUnit("B4"))
	assert.Error(t, ValidateUnit("12-A"))
	assert.Error(t, ValidateUnit("12 A"))
}

func TestValidateStreet(t *testing.T) {
	assert.NoError(t, ValidateStreet("5 Main Street"))
	assert.NoError(t, ValidateStreet("Main"))
	assert.Error(t, ValidateStreet(""))
	assert.Error(t, ValidateStreet("Main St."))
}

func TestParseCityProvince(t *testing.T) {
	city, province, err := ParseCityProvince("Toronto, Ontario")
	require.NoError(t, err)
	assert.Equal(t, "Toronto", city)
	assert.Equal(t, "Ontario", province)
}

func TestParseCityProvinceShortProvinceUppercased(t *testing.T) {
	_, province, err := ParseCityProvince("Toronto, On")
	require.NoError(t, err)
	assert.Equal(t, "ON", province)
}

func TestParseCityProvinceRejections(t *testing.T) {
	bad := []string{
		"Toronto",            // no comma
		"Toronto, ON, CA",    // two commas
		"Toronto, ",          // empty province
		", ON",               // empty city
		"T0ronto, ON",        // digit
	}
	for _, input := range bad {
		_, _, err := ParseCityProvince(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestValidatePostal(t *testing.T) {
	assert.NoError(t, ValidatePostal("M5V1A1"))
	assert.NoError(t, ValidatePostal("M5V 1A1"))
	assert.Error(t, ValidatePostal("M5V"))
	assert.Error(t, ValidatePostal("M5V 1A1X9"))
	assert.Error(t, ValidatePostal("M5V-1A1"))
}

func TestAddressStreetLine(t *testing.T) {
	withUnit := Address{Unit: "12A", Street: "5 Main Street"}
	assert.Equal(t, "12A - 5 Main Street", withUnit.StreetLine())

	noUnit := Address{Street: "5 Main Street"}
	assert.Equal(t, "5 Main Street", noUnit.StreetLine())
}

func TestCollect(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"jane doe",
		"12a",
		"5 main street",
		"toronto, on",
		"m5v 1a1",
	}, "\n") + "\n")
	var out bytes.Buffer

	rec, err := Collect(prompt.New(in, &out))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "12A", rec.Address.Unit)
	assert.Equal(t, "5 Main Street", rec.Address.Street)
	assert.Equal(t, "Toronto", rec.Address.City)
	assert.Equal(t, "ON", rec.Address.Province)
	assert.Equal(t, "M5V 1A1", rec.Address.Postal)
}

func TestCollectRepromptsUntilValid(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		"j4ne",       // rejected: digit in name
		"jane doe",
		"",           // unit may be empty
		"5 main street",
		"toronto on", // rejected: no comma
		"toronto, on",
		"m5",         // rejected: too short
		"m5v1a1",
	}, "\n") + "\n")
	var out bytes.Buffer

	rec, err := Collect(prompt.New(in, &out))

	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "", rec.Address.Unit)
	assert.Equal(t, "M5V1A1", rec.Address.Postal)
	assert.Contains(t, out.String(), "valid name")
}

func TestCollectQuitSentinel(t *testing.T) {
	for _, sentinel := range []string{"Q", "q"} {
		in := strings.NewReader(sentinel + "\n")
		var out bytes.Buffer

		_, err := Collect(prompt.New(in, &out))

		assert.ErrorIs(t, err, prompt.ErrQuit)
	}
}

func TestCollectQuitMidway(t *testing.T) {
	in := strings.NewReader("jane doe\n12a\nQ\n")
	var out bytes.Buffer

	_, err := Collect(prompt.New(in, &out))

	assert.ErrorIs(t, err, prompt.ErrQuit)
}
