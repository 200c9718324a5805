package cli

import (
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/LeJamon/goXRPLwasm/contract"
	"github.com/LeJamon/goXRPLwasm/examples/atomicswap"
	"github.com/LeJamon/goXRPLwasm/examples/timelock"
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/host/hosttest"
	"github.com/LeJamon/goXRPLwasm/internal/simconfig"
	"github.com/LeJamon/goXRPLwasm/internal/simhost"
	"github.com/LeJamon/goXRPLwasm/internal/snapshot"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// contracts are the finish functions the simulator can replay.
var contracts = map[string]func(host.Host) int32{
	"timelock":   timelock.Finish,
	"atomicswap": atomicswap.Finish,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a finish function against the snapshot",
	Long: `Run loads the snapshot, selects the scenario's escrow as the current
ledger object, presents the scenario's EscrowFinish fixture as the current
transaction, and executes the named finish function.

The exit status is 0 for a permit, non-zero for a deny.

Example:
    escrowsim run --scenario swap.yaml`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := simconfig.Load(scenarioFile)
	if err != nil {
		return err
	}
	finish, ok := contracts[cfg.Contract]
	if !ok {
		return fmt.Errorf("unknown contract %q (have %v)", cfg.Contract, contractNames())
	}

	store, err := snapshot.Open(cfg.Snapshot)
	if err != nil {
		return err
	}
	defer store.Close()

	env, err := simhost.Load(store)
	if err != nil {
		return err
	}
	keylet, err := cfg.EscrowKeylet()
	if err != nil {
		return err
	}
	if err := simhost.SelectEscrow(env, keylet); err != nil {
		return err
	}
	if err := applyTxFixture(env, cfg); err != nil {
		return err
	}

	fmt.Printf("Replaying %s against escrow %s at ledger %d\n",
		cfg.Contract, keylet, env.GetLedgerSqn())

	decision := finish(env)

	for _, line := range env.Traces {
		fmt.Printf("  trace: %s\n", line)
	}
	switch decision {
	case contract.Permit:
		fmt.Println("Decision: PERMIT")
	default:
		fmt.Println("Decision: DENY")
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return deniedErr{}
	}
	return nil
}

// applyTxFixture builds the EscrowFinish transaction the contract reads.
func applyTxFixture(env *hosttest.Env, cfg *simconfig.Config) error {
	tx := env.Tx
	tx.SetUint16(sfield.TransactionType.Code(), 2) // EscrowFinish
	tx.SetUint32(sfield.ComputationAllowance.Code(), cfg.Tx.ComputationAllowance)

	if cfg.Tx.Account != "" {
		account, err := types.AccountIDFromAddress(cfg.Tx.Account)
		if err != nil {
			return err
		}
		tx.SetAccount(sfield.Account.Code(), account)
	}
	if cfg.Escrow.Owner != "" {
		owner, err := types.AccountIDFromAddress(cfg.Escrow.Owner)
		if err != nil {
			return err
		}
		tx.SetAccount(sfield.Owner.Code(), owner)
		tx.SetUint32(sfield.OfferSequence.Code(), cfg.Escrow.Sequence)
	}

	if len(cfg.Tx.Memos) > 0 {
		memos := make([]*hosttest.Fixture, len(cfg.Tx.Memos))
		for i, memo := range cfg.Tx.Memos {
			data, err := hex.DecodeString(memo.Data)
			if err != nil {
				return fmt.Errorf("memo %d: %w", i, err)
			}
			inner := hosttest.NewFixture().
				SetBytes(sfield.MemoType.Code(), []byte(memo.Type)).
				SetBytes(sfield.MemoData.Code(), data)
			memos[i] = hosttest.NewFixture().SetObject(sfield.Memo, inner)
		}
		tx.SetArray(sfield.Memos, memos...)
	}
	return nil
}

func contractNames() []string {
	names := make([]string, 0, len(contracts))
	for name := range contracts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// deniedErr carries the deny decision out as a non-zero exit status.
type deniedErr struct{}

func (deniedErr) Error() string { return "contract denied the finish" }
