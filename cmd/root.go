// =============================================================================
// Point-of-Sale Invoice Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// ('start', 'version') are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (pos)
//   ├── startCmd (pos start)
//   └── versionCmd (pos version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the main configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables verbose logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pos",
	Short: "Point-of-sale invoice generator for a single-operator service business",
	Long: `A point-of-sale CLI for a single-operator service business.

It collects the customer's name and address, lets the operator add catalog
services to a cart, supports cart review and item removal, and on checkout
produces a PDF invoice plus an append-only sales ledger record with an
auto-incrementing invoice number.

Example Usage:
  pos start                       # Run an interactive session
  pos start --config ./my.yaml    # Use a custom configuration file`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the main configuration file (default is config.yaml)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
