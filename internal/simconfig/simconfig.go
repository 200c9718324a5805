// Package simconfig loads simulator scenario files. A scenario names the
// node to capture from, the snapshot database, the escrow under test and the
// finish transaction to replay against it.
package simconfig

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/LeJamon/goXRPLwasm/internal/simkeylet"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Config is one simulator scenario.
type Config struct {
	// Endpoint is the websocket URL of the node to capture from.
	Endpoint string `mapstructure:"endpoint"`

	// Snapshot is the path of the snapshot database.
	Snapshot string `mapstructure:"snapshot"`

	// Contract names the finish function to replay.
	Contract string `mapstructure:"contract"`

	Escrow  EscrowConfig  `mapstructure:"escrow"`
	Tx      TxConfig      `mapstructure:"tx"`
	Capture CaptureConfig `mapstructure:"capture"`
}

// EscrowConfig identifies the escrow under test by its owner and the
// sequence of the transaction that created it.
type EscrowConfig struct {
	Owner    string `mapstructure:"owner"`
	Sequence uint32 `mapstructure:"sequence"`
}

// TxConfig describes the EscrowFinish fixture presented to the contract.
type TxConfig struct {
	Account              string       `mapstructure:"account"`
	ComputationAllowance uint32       `mapstructure:"computation_allowance"`
	Memos                []MemoConfig `mapstructure:"memos"`
}

// MemoConfig is one memo on the finish transaction. Data is hex.
type MemoConfig struct {
	Type string `mapstructure:"type"`
	Data string `mapstructure:"data"`
}

// CaptureConfig lists extra entries to snapshot beyond the escrow itself,
// as hex keylets.
type CaptureConfig struct {
	Keylets []string `mapstructure:"keylets"`
}

// Load reads a scenario file, applying defaults and ESCROWSIM_ environment
// overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("simconfig: scenario file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("simconfig: read %s: %w", path, err)
		}
	}

	v.SetEnvPrefix("ESCROWSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("simconfig: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint", "wss://s.altnet.rippletest.net:51233")
	v.SetDefault("snapshot", "escrowsim.db")
	v.SetDefault("contract", "timelock")
	v.SetDefault("tx.computation_allowance", 100_000)
}

// Validate checks the parts every command relies on.
func (c *Config) Validate() error {
	if c.Snapshot == "" {
		return fmt.Errorf("simconfig: snapshot path is required")
	}
	if c.Escrow.Owner != "" {
		if _, err := types.AccountIDFromAddress(c.Escrow.Owner); err != nil {
			return fmt.Errorf("simconfig: escrow owner %q: %w", c.Escrow.Owner, err)
		}
	}
	if c.Tx.Account != "" {
		if _, err := types.AccountIDFromAddress(c.Tx.Account); err != nil {
			return fmt.Errorf("simconfig: tx account %q: %w", c.Tx.Account, err)
		}
	}
	for i, memo := range c.Tx.Memos {
		if _, err := hex.DecodeString(memo.Data); err != nil {
			return fmt.Errorf("simconfig: memo %d data: %w", i, err)
		}
	}
	for i, keylet := range c.Capture.Keylets {
		if _, err := parseKeylet(keylet); err != nil {
			return fmt.Errorf("simconfig: capture keylet %d: %w", i, err)
		}
	}
	return nil
}

// EscrowKeylet derives the keylet of the escrow under test.
func (c *Config) EscrowKeylet() (types.Hash256, error) {
	owner, err := types.AccountIDFromAddress(c.Escrow.Owner)
	if err != nil {
		return types.Hash256{}, fmt.Errorf("simconfig: escrow owner: %w", err)
	}
	return simkeylet.Escrow(owner, c.Escrow.Sequence), nil
}

// CaptureKeylets resolves the full set of entries to snapshot: the escrow,
// its owner's account root, and any explicitly listed keylets.
func (c *Config) CaptureKeylets() ([]types.Hash256, error) {
	escrow, err := c.EscrowKeylet()
	if err != nil {
		return nil, err
	}
	owner, err := types.AccountIDFromAddress(c.Escrow.Owner)
	if err != nil {
		return nil, err
	}

	keylets := []types.Hash256{escrow, simkeylet.Account(owner)}
	for _, s := range c.Capture.Keylets {
		keylet, err := parseKeylet(s)
		if err != nil {
			return nil, err
		}
		keylets = append(keylets, keylet)
	}
	return keylets, nil
}

func parseKeylet(s string) (types.Hash256, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return types.Hash256{}, err
	}
	return types.DecodeHash256(raw)
}
