// =============================================================================
// Point-of-Sale Invoice Generator - Main Entry Point
// =============================================================================
//
// This is the main entry point for the point-of-sale CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   pos start         - Run an interactive point-of-sale session
//   pos version       - Display the application version
//
// ARCHITECTURE:
//   cmd/           : CLI command definitions (Cobra)
//   internal/      : Core business logic (not for external import)
//   pkg/           : Shared utilities
//   templates/     : Invoice template workbook (created on demand)
//   invoices/      : Generated PDF invoices, one per invoice number
//
// =============================================================================

package main

import (
	"github.com/Patel-Smit/InvoicePDFGenerator/cmd"
)

func main() {
	cmd.Execute()
}
