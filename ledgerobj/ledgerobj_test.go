package ledgerobj_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/host/hosttest"
	"github.com/LeJamon/goXRPLwasm/ledgerobj"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

func account(b byte) types.AccountID {
	var a types.AccountID
	for i := range a {
		a[i] = b
	}
	return a
}

func currency(iso string) types.Currency {
	var c types.Currency
	copy(c[12:], iso)
	return c
}

func escrowFixture(owner, dest types.AccountID, drops uint64) *hosttest.Fixture {
	return hosttest.NewFixture().
		SetUint16(sfield.LedgerEntryType.Code(), ledgerobj.LedgerEntryTypeEscrow).
		SetUint32(sfield.Flags.Code(), 0).
		SetAccount(sfield.Account.Code(), owner).
		SetAccount(sfield.Destination.Code(), dest).
		SetAmount(sfield.Amount.Code(), types.XRPAmount(drops)).
		SetUint64(sfield.OwnerNode.Code(), 0).
		SetHash256(sfield.PreviousTxnID.Code(), types.Hash256{0x01}).
		SetUint32(sfield.PreviousTxnLgrSeq.Code(), 12)
}

func TestCurrentEscrow(t *testing.T) {
	env := hosttest.New()
	owner := account(0x31)
	dest := account(0x32)

	env.CurrentObj = escrowFixture(owner, dest, 5_000_000).
		SetUint32(sfield.FinishAfter.Code(), 700_000_000).
		SetBytes(sfield.Condition.Code(), []byte{0xA0, 0x25})

	esc := ledgerobj.CurrentEscrowObject(env)

	got, err := esc.Account()
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	amount, err := esc.Amount()
	require.NoError(t, err)
	assert.Equal(t, types.AmountXRP, amount.Kind)
	assert.Equal(t, uint64(5_000_000), amount.Drops)

	finishAfter, present, err := esc.FinishAfter()
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, uint32(700_000_000), finishAfter)

	_, present, err = esc.CancelAfter()
	require.NoError(t, err)
	assert.False(t, present)

	cond, present, err := esc.Condition()
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, types.Blob{0xA0, 0x25}, cond)
}

func TestCurrentEscrowData(t *testing.T) {
	env := hosttest.New()
	env.CurrentObj = escrowFixture(account(1), account(2), 1)
	esc := ledgerobj.CurrentEscrowObject(env)

	data, err := esc.Data()
	require.NoError(t, err)
	assert.Zero(t, data.Len, "missing Data field reads as empty state")

	next, err := types.NewContractData([]byte{7, 8})
	require.NoError(t, err)
	require.NoError(t, esc.UpdateData(next))

	data, err = esc.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte{7, 8}, data.Bytes())
}

func TestCacheEscrow(t *testing.T) {
	env := hosttest.New()
	owner := account(0x41)

	var keylet [32]byte
	require.Equal(t, int32(32), env.EscrowKeylet(owner[:], 3, keylet[:]))
	env.PutObject(types.Hash256(keylet), escrowFixture(owner, account(0x42), 99))

	esc, err := ledgerobj.CacheEscrow(env, types.Hash256(keylet))
	require.NoError(t, err)
	assert.Equal(t, int32(1), esc.Slot())

	entryType, err := esc.LedgerEntryType()
	require.NoError(t, err)
	assert.Equal(t, ledgerobj.LedgerEntryTypeEscrow, entryType)

	got, err := esc.Account()
	require.NoError(t, err)
	assert.Equal(t, owner, got)

	t.Run("missing entry", func(t *testing.T) {
		_, err := ledgerobj.CacheEscrow(env, types.Hash256{0xFF})
		assert.ErrorIs(t, err, host.ErrLedgerObjNotFound)
	})
}

func TestAccountRoot(t *testing.T) {
	env := hosttest.New()
	acct := account(0x51)

	var keylet [32]byte
	require.Equal(t, int32(32), env.AccountKeylet(acct[:], keylet[:]))
	env.PutObject(types.Hash256(keylet), hosttest.NewFixture().
		SetUint16(sfield.LedgerEntryType.Code(), ledgerobj.LedgerEntryTypeAccountRoot).
		SetAccount(sfield.Account.Code(), acct).
		SetAmount(sfield.Balance.Code(), types.XRPAmount(20_000_000)).
		SetUint32(sfield.Sequence.Code(), 9).
		SetUint32(sfield.OwnerCount.Code(), 2))

	root, err := ledgerobj.CacheAccountRoot(env, acct)
	require.NoError(t, err)

	balance, present, err := root.Balance()
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, uint64(20_000_000), balance.Drops)

	seq, err := root.Sequence()
	require.NoError(t, err)
	assert.Equal(t, uint32(9), seq)

	_, present, err = root.RegularKey()
	require.NoError(t, err)
	assert.False(t, present)

	t.Run("balance of a missing account", func(t *testing.T) {
		_, present, err := ledgerobj.AccountBalance(env, account(0x52))
		require.NoError(t, err)
		assert.False(t, present)
	})
}

func pricePoint(base, quote string, price uint64, scale uint8) *hosttest.Fixture {
	b, q := currency(base), currency(quote)
	inner := hosttest.NewFixture().
		SetBytes(sfield.BaseAsset.Code(), b[:]).
		SetBytes(sfield.QuoteAsset.Code(), q[:]).
		SetUint64(sfield.AssetPrice.Code(), price).
		SetUint8(sfield.Scale.Code(), scale)
	return hosttest.NewFixture().SetObject(sfield.PriceData, inner)
}

func stalePricePoint(base, quote string) *hosttest.Fixture {
	b, q := currency(base), currency(quote)
	inner := hosttest.NewFixture().
		SetBytes(sfield.BaseAsset.Code(), b[:]).
		SetBytes(sfield.QuoteAsset.Code(), q[:])
	return hosttest.NewFixture().SetObject(sfield.PriceData, inner)
}

func TestOracleObject(t *testing.T) {
	env := hosttest.New()
	owner := account(0x61)

	var keylet [32]byte
	require.Equal(t, int32(32), env.OracleKeylet(owner[:], 1, keylet[:]))
	env.PutObject(types.Hash256(keylet), hosttest.NewFixture().
		SetUint16(sfield.LedgerEntryType.Code(), ledgerobj.LedgerEntryTypeOracle).
		SetAccount(sfield.Owner.Code(), owner).
		SetBytes(sfield.Provider.Code(), []byte("provider")).
		SetBytes(sfield.AssetClass.Code(), []byte("currency")).
		SetUint32(sfield.LastUpdateTime.Code(), 1_700_000_000).
		SetArray(sfield.PriceDataSeries,
			pricePoint("USD", "EUR", 920, 3),
			stalePricePoint("USD", "JPY"),
		))

	oracle, err := ledgerobj.CacheOracle(env, types.Hash256(keylet))
	require.NoError(t, err)

	gotOwner, err := oracle.Owner()
	require.NoError(t, err)
	assert.Equal(t, owner, gotOwner)

	provider, err := oracle.Provider()
	require.NoError(t, err)
	assert.Equal(t, "provider", string(provider))

	count, err := oracle.PriceCount()
	require.NoError(t, err)
	require.Equal(t, 2, count)

	t.Run("quoted pair", func(t *testing.T) {
		p, err := oracle.PricePoint(0)
		require.NoError(t, err)
		assert.Equal(t, currency("USD"), p.BaseAsset)
		assert.Equal(t, currency("EUR"), p.QuoteAsset)
		require.True(t, p.HasPrice)
		assert.Equal(t, uint64(920), p.AssetPrice)
		assert.Equal(t, uint8(3), p.Scale)
	})

	t.Run("stale pair carries no price", func(t *testing.T) {
		p, err := oracle.PricePoint(1)
		require.NoError(t, err)
		assert.Equal(t, currency("JPY"), p.QuoteAsset)
		assert.False(t, p.HasPrice)
	})

	t.Run("index past the series", func(t *testing.T) {
		_, err := oracle.PricePoint(5)
		assert.ErrorIs(t, err, host.ErrIndexOutOfBounds)
	})
}

func TestCredentialObject(t *testing.T) {
	env := hosttest.New()
	subject := account(0x71)
	issuer := account(0x72)
	credType := []byte("kyc")

	var keylet [32]byte
	require.Equal(t, int32(32), env.CredentialKeylet(subject[:], issuer[:], credType, keylet[:]))
	env.PutObject(types.Hash256(keylet), hosttest.NewFixture().
		SetUint16(sfield.LedgerEntryType.Code(), ledgerobj.LedgerEntryTypeCredential).
		SetUint32(sfield.Flags.Code(), ledgerobj.CredentialAccepted).
		SetAccount(sfield.Subject.Code(), subject).
		SetAccount(sfield.Issuer.Code(), issuer).
		SetBytes(sfield.CredentialType.Code(), credType).
		SetUint32(sfield.Expiration.Code(), 800_000_000))

	cred, err := ledgerobj.CacheCredential(env, types.Hash256(keylet))
	require.NoError(t, err)

	gotSubject, err := cred.Subject()
	require.NoError(t, err)
	assert.Equal(t, subject, gotSubject)

	gotType, err := cred.CredentialType()
	require.NoError(t, err)
	assert.Equal(t, types.Blob(credType), gotType)

	expiration, present, err := cred.Expiration()
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, uint32(800_000_000), expiration)

	accepted, err := cred.Accepted()
	require.NoError(t, err)
	assert.True(t, accepted)

	t.Run("unaccepted credential", func(t *testing.T) {
		env.Objects[types.Hash256(keylet)].SetUint32(sfield.Flags.Code(), 0)
		accepted, err := cred.Accepted()
		require.NoError(t, err)
		assert.False(t, accepted)
	})
}
