package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig writes a config file whose paths all live under dir.
func writeConfig(t *testing.T, dir, invoiceNumber string) string {
	t.Helper()
	content := `business:
  name: Test Garage
settings:
  invoice_number: "` + invoiceNumber + `"
  tax_rate: 0.15
  services_file: ` + filepath.Join(dir, "services_list.csv") + `
  sales_file: ` + filepath.Join(dir, "sales_data.csv") + `
  template_file: ` + filepath.Join(dir, "templates", "invoice_template.xlsx") + `
  invoice_dir: ` + filepath.Join(dir, "invoices") + `
  temp_dir: ` + filepath.Join(dir, "temp_files") + `
  log_file: ` + filepath.Join(dir, "logs", "pos.log") + `
`
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "000042")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Test Garage", cfg.Business.Name)
	assert.Equal(t, "000042", cfg.InvoiceNumber())
	assert.Equal(t, 0.15, cfg.Settings.TaxRate)

	// Output directories are created on load.
	assert.DirExists(t, filepath.Join(dir, "invoices"))
	assert.DirExists(t, filepath.Join(dir, "temp_files"))
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("business:\n  name: Test Garage\n"), 0644))

	// Defaults are relative paths; run from the temp dir so the created
	// directories stay contained.
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "000001", cfg.InvoiceNumber())
	assert.Equal(t, 0.15, cfg.Settings.TaxRate)
	assert.Equal(t, "services_list.csv", cfg.Settings.ServicesFile)
	assert.Equal(t, "sales_data.csv", cfg.Settings.SalesFile)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadCounter(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "not-a-number")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoice_number")
}

func TestAdvanceInvoiceNumber(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "000042")
	cfg, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, cfg.AdvanceInvoiceNumber())
	assert.Equal(t, "000043", cfg.InvoiceNumber())

	// The new value must be persisted, not just in memory.
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "000043", reloaded.InvoiceNumber())
}

func TestAdvanceInvoiceNumberKeepsPadding(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "000009")
	cfg, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, cfg.AdvanceInvoiceNumber())

	assert.Equal(t, "000010", cfg.InvoiceNumber())
}

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "000001", FormatInvoiceNumber(1))
	assert.Equal(t, "000042", FormatInvoiceNumber(42))
	assert.Equal(t, "123456", FormatInvoiceNumber(123456))
	assert.Equal(t, "1234567", FormatInvoiceNumber(1234567))
}
