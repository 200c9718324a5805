package simconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/internal/simkeylet"
	"github.com/LeJamon/goXRPLwasm/types"
)

const genesisAddress = "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh"

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, `
endpoint: ws://localhost:6006
snapshot: /tmp/snap.db
contract: atomicswap
escrow:
  owner: `+genesisAddress+`
  sequence: 7
tx:
  account: `+genesisAddress+`
  memos:
    - type: swap
      data: "BEEF"
capture:
  keylets:
    - "2b6ac232aa4c4be41bf49d2459fa4a0347e1b543a4c92fcee0821c0201e2e9a8"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:6006", cfg.Endpoint)
	assert.Equal(t, "/tmp/snap.db", cfg.Snapshot)
	assert.Equal(t, "atomicswap", cfg.Contract)
	assert.Equal(t, uint32(7), cfg.Escrow.Sequence)
	require.Len(t, cfg.Tx.Memos, 1)
	assert.Equal(t, "BEEF", cfg.Tx.Memos[0].Data)

	// Defaults still apply to anything the file leaves out.
	assert.Equal(t, uint32(100_000), cfg.Tx.ComputationAllowance)
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "wss://s.altnet.rippletest.net:51233", cfg.Endpoint)
	assert.Equal(t, "escrowsim.db", cfg.Snapshot)
	assert.Equal(t, "timelock", cfg.Contract)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("ESCROWSIM_CONTRACT", "atomicswap")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "atomicswap", cfg.Contract)
}

func TestValidateRejectsBadInputs(t *testing.T) {
	tests := []struct {
		description string
		body        string
	}{
		{
			description: "malformed escrow owner",
			body:        "escrow:\n  owner: notanaddress\n",
		},
		{
			description: "malformed memo data",
			body:        "tx:\n  memos:\n    - data: \"zz\"\n",
		},
		{
			description: "short capture keylet",
			body:        "capture:\n  keylets:\n    - \"beef\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, err := Load(writeScenario(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestEscrowKeylet(t *testing.T) {
	owner, err := types.AccountIDFromAddress(genesisAddress)
	require.NoError(t, err)

	cfg := &Config{Escrow: EscrowConfig{Owner: genesisAddress, Sequence: 7}}
	keylet, err := cfg.EscrowKeylet()
	require.NoError(t, err)
	assert.Equal(t, simkeylet.Escrow(owner, 7), keylet)

	keylets, err := cfg.CaptureKeylets()
	require.NoError(t, err)
	assert.Contains(t, keylets, keylet)
	assert.Contains(t, keylets, simkeylet.Account(owner))
}
