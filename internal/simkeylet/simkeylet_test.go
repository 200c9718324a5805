package simkeylet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/types"
)

func TestGenesisAccountRootIndex(t *testing.T) {
	// Index of the genesis AccountRoot, as reported by any mainnet
	// ledger_data dump.
	genesis, err := types.AccountIDFromAddress("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)

	key := Account(genesis)
	assert.Equal(t,
		"2b6ac232aa4c4be41bf49d2459fa4a0347e1b543a4c92fcee0821c0201e2e9a8",
		key.String())
}

func TestFamiliesAreDisjoint(t *testing.T) {
	var a, b types.AccountID
	a[0], b[0] = 1, 2

	keys := []types.Hash256{
		Account(a),
		Escrow(a, 1),
		Offer(a, 1),
		Check(a, 1),
		Ticket(a, 1),
		NFTokenOffer(a, 1),
		Oracle(a, 1),
		PermissionedDomain(a, 1),
		Vault(a, 1),
		DID(a),
		SignerList(a),
		DepositPreauth(a, b),
		Delegate(a, b),
		PayChannel(a, b, 1),
	}

	seen := make(map[types.Hash256]bool, len(keys))
	for i, k := range keys {
		assert.False(t, seen[k], "key %d collides", i)
		seen[k] = true
	}
}

func TestLineIsOrderInsensitive(t *testing.T) {
	var a, b types.AccountID
	a[0], b[0] = 1, 2
	var usd types.Currency
	copy(usd[12:], "USD")

	assert.Equal(t, Line(a, b, usd), Line(b, a, usd))

	var eur types.Currency
	copy(eur[12:], "EUR")
	assert.NotEqual(t, Line(a, b, usd), Line(a, b, eur))
}

func TestAMMIsOrderInsensitive(t *testing.T) {
	var issuer types.AccountID
	issuer[0] = 3
	var usd types.Currency
	copy(usd[12:], "USD")

	xrp := types.XRPIssue()
	iou := types.IOUIssue(usd, issuer)

	assert.Equal(t, AMM(xrp, iou), AMM(iou, xrp))
	assert.NotEqual(t, AMM(xrp, iou), AMM(iou, iou))
}

func TestMPTIssuanceUsesDerivedID(t *testing.T) {
	var issuer types.AccountID
	issuer[0] = 4

	id := types.NewMptID(7, issuer)
	assert.Equal(t, indexHash(spaceMPTIssu, id[:]), MPTIssuance(issuer, 7))
	assert.NotEqual(t, MPTIssuance(issuer, 7), MPTIssuance(issuer, 8))
}
