package keylet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/host/hosttest"
	"github.com/LeJamon/goXRPLwasm/internal/simkeylet"
	"github.com/LeJamon/goXRPLwasm/keylet"
	"github.com/LeJamon/goXRPLwasm/types"
)

func account(b byte) types.AccountID {
	var a types.AccountID
	for i := range a {
		a[i] = b
	}
	return a
}

func TestKeyletsMatchLocalDerivation(t *testing.T) {
	env := hosttest.New()
	a := account(0x91)
	b := account(0x92)

	var currency types.Currency
	copy(currency[12:], "USD")

	t.Run("account", func(t *testing.T) {
		k, err := keylet.Account(env, a)
		require.NoError(t, err)
		assert.Equal(t, simkeylet.Account(a), k)
	})

	t.Run("escrow", func(t *testing.T) {
		k, err := keylet.Escrow(env, a, 7)
		require.NoError(t, err)
		assert.Equal(t, simkeylet.Escrow(a, 7), k)
	})

	t.Run("offer", func(t *testing.T) {
		k, err := keylet.Offer(env, a, 7)
		require.NoError(t, err)
		assert.Equal(t, simkeylet.Offer(a, 7), k)
		assert.NotEqual(t, simkeylet.Escrow(a, 7), k)
	})

	t.Run("line", func(t *testing.T) {
		k, err := keylet.Line(env, a, b, currency)
		require.NoError(t, err)
		assert.Equal(t, simkeylet.Line(a, b, currency), k)

		reversed, err := keylet.Line(env, b, a, currency)
		require.NoError(t, err)
		assert.Equal(t, k, reversed)
	})

	t.Run("credential", func(t *testing.T) {
		credType := types.Blob("kyc")
		k, err := keylet.Credential(env, a, b, credType)
		require.NoError(t, err)
		assert.Equal(t, simkeylet.Credential(a, b, credType), k)
	})

	t.Run("oracle", func(t *testing.T) {
		k, err := keylet.Oracle(env, a, 3)
		require.NoError(t, err)
		assert.Equal(t, simkeylet.Oracle(a, 3), k)
	})

	t.Run("paychan", func(t *testing.T) {
		k, err := keylet.Paychan(env, a, b, 5)
		require.NoError(t, err)
		assert.Equal(t, simkeylet.PayChannel(a, b, 5), k)
	})

	t.Run("delegate", func(t *testing.T) {
		k, err := keylet.Delegate(env, a, b)
		require.NoError(t, err)
		assert.Equal(t, simkeylet.Delegate(a, b), k)
	})

	t.Run("signers", func(t *testing.T) {
		k, err := keylet.Signers(env, a)
		require.NoError(t, err)
		assert.Equal(t, simkeylet.SignerList(a), k)
	})
}

func TestAmmKeyletIsUnordered(t *testing.T) {
	env := hosttest.New()

	var usd types.Currency
	copy(usd[12:], "USD")
	xrp := types.XRPIssue()
	iou := types.IOUIssue(usd, account(0xA1))

	k1, err := keylet.Amm(env, xrp, iou)
	require.NoError(t, err)
	k2, err := keylet.Amm(env, iou, xrp)
	require.NoError(t, err)
	assert.Equal(t, k1, k2)
	assert.Equal(t, simkeylet.AMM(xrp, iou), k1)
}

func TestKeyletRejectsShortAccount(t *testing.T) {
	env := hosttest.New()
	short := types.AccountID{}

	_, err := keylet.Account(env, short)
	require.NoError(t, err, "a zero account is still a well-formed account")

	var out [16]byte
	assert.Equal(t, host.CodeBufferTooSmall, env.AccountKeylet(short[:], out[:]))
}
