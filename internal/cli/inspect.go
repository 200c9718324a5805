package cli

import (
	"encoding/binary"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLwasm/internal/simconfig"
	"github.com/LeJamon/goXRPLwasm/internal/snapshot"
	"github.com/LeJamon/goXRPLwasm/sfield"
)

// entryTypeNames renders the LedgerEntryType codes the simulator works with.
var entryTypeNames = map[uint16]string{
	0x0061: "AccountRoot",
	0x0064: "DirectoryNode",
	0x0072: "RippleState",
	0x006F: "Offer",
	0x0075: "Escrow",
	0x0078: "PayChannel",
	0x0043: "Check",
	0x0054: "Ticket",
	0x0053: "SignerList",
	0x0070: "DepositPreauth",
	0x0050: "NFTokenPage",
	0x0080: "Oracle",
	0x0081: "Credential",
	0x0049: "DID",
	0x0079: "AMM",
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List the contents of the snapshot",
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := simconfig.Load(scenarioFile)
	if err != nil {
		return err
	}
	store, err := snapshot.Open(cfg.Snapshot)
	if err != nil {
		return err
	}
	defer store.Close()

	header, err := store.GetHeader()
	if err != nil {
		return err
	}
	fmt.Printf("Snapshot %s\n", cfg.Snapshot)
	fmt.Printf("  Ledger:            %d\n", header.LedgerSeq)
	fmt.Printf("  Parent hash:       %s\n", header.ParentHash)
	fmt.Printf("  Parent close time: %d\n", header.ParentCloseTime)
	fmt.Printf("  Base fee:          %d drops\n", header.BaseFee)
	fmt.Println()

	count := 0
	err = store.ForEach(func(rec *snapshot.Record) error {
		count++
		fmt.Printf("  %s  %-14s %d fields\n", rec.Keylet, recordTypeName(rec), len(rec.Fields))
		if verbose {
			for _, code := range fieldCodes(rec) {
				fmt.Printf("      field %d:%d\n", code>>16, code&0xFFFF)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("\n%d entries\n", count)
	return nil
}

func fieldCodes(rec *snapshot.Record) []int32 {
	codes := make([]int32, 0, len(rec.Fields))
	for code := range rec.Fields {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

func recordTypeName(rec *snapshot.Record) string {
	value, ok := rec.Fields[int32(sfield.LedgerEntryType.Code())]
	if !ok || len(value.Leaf) != 2 {
		return "unknown"
	}
	code := binary.LittleEndian.Uint16(value.Leaf)
	if name, ok := entryTypeNames[code]; ok {
		return name
	}
	return fmt.Sprintf("0x%04X", code)
}
