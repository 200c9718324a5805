package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLwasm/internal/capture"
	"github.com/LeJamon/goXRPLwasm/internal/simconfig"
	"github.com/LeJamon/goXRPLwasm/internal/snapshot"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Snapshot ledger state from a live node",
	Long: `Capture connects to the scenario's websocket endpoint, pins the
latest validated ledger, and stores the scenario's entries (the escrow under
test, its owner's account root, and any extra keylets) in the snapshot
database.

Example:
    escrowsim capture --scenario swap.yaml`,
	RunE: runCapture,
}

func init() {
	rootCmd.AddCommand(captureCmd)
}

func runCapture(cmd *cobra.Command, args []string) error {
	cfg, err := simconfig.Load(scenarioFile)
	if err != nil {
		return err
	}
	keylets, err := cfg.CaptureKeylets()
	if err != nil {
		return err
	}

	store, err := snapshot.Open(cfg.Snapshot)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Printf("Capturing %d entries from %s\n", len(keylets), cfg.Endpoint)
	if err := capture.Capture(ctx, cfg.Endpoint, keylets, store); err != nil {
		return err
	}

	header, err := store.GetHeader()
	if err != nil {
		return err
	}
	n, err := store.Len()
	if err != nil {
		return err
	}
	fmt.Printf("Ledger %d captured: %d of %d entries held, snapshot %s\n",
		header.LedgerSeq, n, len(keylets), cfg.Snapshot)
	return nil
}
