// =============================================================================
// Point-of-Sale Invoice Generator - Configuration Module
// =============================================================================
//
// This module loads and manages the application configuration. The config
// file is the system's key/value store: it holds the business profile used
// on every invoice and the persisted invoice counter.
//
// CONFIGURATION FILE (config.yaml):
//   business: business profile fields (name, address, contact, bank details)
//   settings: invoice counter, tax rate, file paths
//
// The invoice counter is a zero-padded 6-digit string. It is read before
// invoice generation and written back incremented by exactly one only after
// a successful generation; see AdvanceInvoiceNumber.
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Patel-Smit/InvoicePDFGenerator/pkg/utils"
	"gopkg.in/yaml.v3"
)

// invoiceNumberWidth is the fixed width of the persisted invoice counter.
const invoiceNumberWidth = 6

// Config holds the full application configuration.
type Config struct {
	// Business is the business profile stamped onto every invoice.
	Business BusinessProfile `yaml:"business"`

	// Settings holds the invoice counter, tax rate and file locations.
	Settings Settings `yaml:"settings"`

	// path is the file this configuration was loaded from. The invoice
	// counter is persisted back to the same file.
	path string
}

// BusinessProfile holds the business identity, contact and payment fields
// substituted into the invoice template.
type BusinessProfile struct {
	Name             string `yaml:"name"`
	StreetAddress    string `yaml:"street_address"`
	CityProvince     string `yaml:"city_province"`
	Email            string `yaml:"email"`
	Contact          string `yaml:"contact"`
	PaymentRecipient string `yaml:"payment_recipient"`
	PaymentBank      string `yaml:"payment_bank"`
	PaymentIBAN      string `yaml:"payment_iban"`
	PaymentBIC       string `yaml:"payment_bic"`
}

// Settings holds per-installation settings and file locations.
type Settings struct {
	// InvoiceNumber is the persisted invoice counter, zero-padded to 6
	// digits. It never resets.
	InvoiceNumber string `yaml:"invoice_number"`

	// TaxRate is the sales tax rate as a fraction (0.15 = 15%). The
	// percentage printed on invoices is derived from this value.
	TaxRate float64 `yaml:"tax_rate"`

	// ServicesFile is the CSV catalog of offered services and prices.
	ServicesFile string `yaml:"services_file"`

	// SalesFile is the append-only sales ledger CSV.
	SalesFile string `yaml:"sales_file"`

	// TemplateFile is the XLSX invoice template workbook.
	TemplateFile string `yaml:"template_file"`

	// InvoiceDir is where generated PDF invoices are written.
	InvoiceDir string `yaml:"invoice_dir"`

	// TempDir is where intermediate filled workbooks are written.
	TempDir string `yaml:"temp_dir"`

	// LogFile is the path to the application log file.
	LogFile string `yaml:"log_file"`
}

// Load reads the configuration from a YAML file, applies defaults and
// validates it. Output directories are created on demand.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.path = path
	applyDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Settings.InvoiceNumber == "" {
		cfg.Settings.InvoiceNumber = FormatInvoiceNumber(1)
	}
	if cfg.Settings.TaxRate == 0 {
		cfg.Settings.TaxRate = 0.15
	}
	if cfg.Settings.ServicesFile == "" {
		cfg.Settings.ServicesFile = "services_list.csv"
	}
	if cfg.Settings.SalesFile == "" {
		cfg.Settings.SalesFile = "sales_data.csv"
	}
	if cfg.Settings.TemplateFile == "" {
		cfg.Settings.TemplateFile = filepath.Join("templates", "invoice_template.xlsx")
	}
	if cfg.Settings.InvoiceDir == "" {
		cfg.Settings.InvoiceDir = "invoices"
	}
	if cfg.Settings.TempDir == "" {
		cfg.Settings.TempDir = "temp_files"
	}
	if cfg.Settings.LogFile == "" {
		cfg.Settings.LogFile = filepath.Join("logs", "pos.log")
	}
}

// validate checks the configuration and creates required directories.
func validate(cfg *Config) error {
	if _, err := parseInvoiceNumber(cfg.Settings.InvoiceNumber); err != nil {
		return err
	}
	if cfg.Settings.TaxRate < 0 || cfg.Settings.TaxRate >= 1 {
		return fmt.Errorf("tax_rate %v is not a fraction between 0 and 1", cfg.Settings.TaxRate)
	}

	dirs := []string{
		cfg.Settings.InvoiceDir,
		cfg.Settings.TempDir,
		filepath.Dir(cfg.Settings.TemplateFile),
		filepath.Dir(cfg.Settings.LogFile),
	}
	for _, dir := range dirs {
		if err := utils.EnsureDir(dir); err != nil {
			return err
		}
	}

	return nil
}

// InvoiceNumber returns the current (not yet assigned) invoice number.
func (c *Config) InvoiceNumber() string {
	return c.Settings.InvoiceNumber
}

// AdvanceInvoiceNumber increments the persisted invoice counter by exactly
// one and writes the configuration back to disk. Callers must only invoke
// this after the invoice for the current number was generated successfully.
func (c *Config) AdvanceInvoiceNumber() error {
	n, err := parseInvoiceNumber(c.Settings.InvoiceNumber)
	if err != nil {
		return err
	}

	c.Settings.InvoiceNumber = FormatInvoiceNumber(n + 1)
	if err := c.Save(); err != nil {
		// Roll back the in-memory value so a retry reuses the same number.
		c.Settings.InvoiceNumber = FormatInvoiceNumber(n)
		return fmt.Errorf("failed to persist invoice counter: %w", err)
	}

	return nil
}

// Save writes the configuration back to the file it was loaded from.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// FormatInvoiceNumber renders a counter value as a zero-padded 6-digit string.
func FormatInvoiceNumber(n int) string {
	return fmt.Sprintf("%0*d", invoiceNumberWidth, n)
}

// parseInvoiceNumber parses the persisted counter string.
func parseInvoiceNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid invoice_number %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid invoice_number %q: must not be negative", s)
	}
	return n, nil
}
