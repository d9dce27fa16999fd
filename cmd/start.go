// =============================================================================
// Point-of-Sale Invoice Generator - Start Command
// =============================================================================
//
// This file defines the 'start' command, which runs an interactive
// point-of-sale session.
//
// SESSION PIPELINE:
//   1. Load configuration (business profile, invoice counter, paths)
//   2. Set up logging
//   3. Load the service catalog (fatal if missing or malformed)
//   4. Per customer:
//      a. Collect and validate name + address
//      b. Run the menu state machine (shop, view, remove, checkout)
//      c. On checkout: generate the PDF invoice, append the sales ledger
//         row, advance the invoice counter
//   5. Repeat from 4 while the operator chooses to continue
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Patel-Smit/InvoicePDFGenerator/internal/catalog"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/config"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/customer"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/invoice"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/ledger"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/prompt"
	"github.com/Patel-Smit/InvoicePDFGenerator/internal/session"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// bannerWidth is the width of the welcome banner.
const bannerWidth = 50

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run an interactive point-of-sale session",
	Long: `The start command runs the interactive point-of-sale session. It collects
the customer's details, then loops a menu for shopping, cart review, item
removal and checkout. Checkout writes a PDF invoice named by the invoice
number, appends a row to the sales ledger, and advances the invoice counter.

Entering "Q" at a customer prompt, or selecting option 6 from the menu,
ends the session.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runStart()
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}

// runStart loads everything the session needs and loops one session per
// customer until the operator stops.
func runStart() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	setupLogging(cfg)

	cat, err := catalog.Load(cfg.Settings.ServicesFile)
	if err != nil {
		log.WithError(err).Error("catalog load failed")
		return fmt.Errorf("failed to load service catalog: %w", err)
	}
	log.WithFields(log.Fields{"services": cat.Len(), "file": cfg.Settings.ServicesFile}).Info("catalog loaded")

	p := prompt.New(os.Stdin, os.Stdout)
	generator := invoice.New(cfg, ledger.NewWriter(cfg.Settings.SalesFile))

	for {
		printBanner(p, cfg.Business.Name)

		rec, err := customer.Collect(p)
		if err != nil {
			if errors.Is(err, prompt.ErrQuit) {
				p.Println(session.Farewell)
				return nil
			}
			return err
		}
		p.Printf("\nWelcome, %s 😎\n", rec.Name)

		sess := session.New(p, cat, rec, generator)
		restart, err := sess.Run()
		if err != nil {
			return err
		}
		if !restart {
			return nil
		}
	}
}

// setupLogging routes operational logs to the configured log file as JSON.
// The console is reserved for the interactive UI.
func setupLogging(cfg *config.Config) {
	log.SetFormatter(&log.JSONFormatter{})
	if verbose {
		log.SetLevel(log.DebugLevel)
	}

	file, err := os.OpenFile(cfg.Settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		log.SetOutput(file)
	}
}

// printBanner prints the business name banner shown at session start.
func printBanner(p *prompt.Prompter, businessName string) {
	p.Println(strings.Repeat("*", bannerWidth))
	pad := bannerWidth - 2 - len(businessName)
	if pad < 0 {
		pad = 0
	}
	p.Printf("*%s%s%s*\n", strings.Repeat(" ", pad/2), businessName, strings.Repeat(" ", pad-pad/2))
	p.Println(strings.Repeat("*", bannerWidth))
	p.Printf("%s Q. Quit *\n", strings.Repeat("*", bannerWidth-10))
}
