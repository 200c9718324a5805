// Package cli implements the escrowsim command tree: capture ledger state
// from a live node, inspect a snapshot, and replay a finish function against
// it.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	scenarioFile string
	verbose      bool
)

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "escrowsim",
	Short: "escrowsim - off-ledger smart escrow simulator",
	Long: `escrowsim captures ledger state from a live XRPL node into a local
snapshot and replays smart-escrow finish functions against it, with the same
host semantics the contract sees on-ledger.`,
	Version: "0.1.0-dev",
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
	rootCmd.PersistentFlags().StringVar(&scenarioFile, "scenario", "", "scenario file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
