package txn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host/hosttest"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/txn"
	"github.com/LeJamon/goXRPLwasm/types"
)

func account(b byte) types.AccountID {
	var a types.AccountID
	for i := range a {
		a[i] = b
	}
	return a
}

func finishEnv() (*hosttest.Env, types.AccountID, types.AccountID) {
	sender := account(0x81)
	owner := account(0x82)

	var pub types.PublicKey
	pub[0] = types.Ed25519Prefix

	env := hosttest.New()
	env.Tx = hosttest.NewFixture().
		SetUint16(sfield.TransactionType.Code(), txn.TransactionTypeEscrowFinish).
		SetAccount(sfield.Account.Code(), sender).
		SetAccount(sfield.Owner.Code(), owner).
		SetUint32(sfield.OfferSequence.Code(), 11).
		SetUint32(sfield.Sequence.Code(), 30).
		SetUint32(sfield.ComputationAllowance.Code(), 1_000_000).
		SetAmount(sfield.Fee.Code(), types.XRPAmount(10)).
		SetBytes(sfield.SigningPubKey.Code(), pub[:]).
		SetBytes(sfield.TxnSignature.Code(), []byte{0x30, 0x44, 0x02})
	return env, sender, owner
}

func TestEscrowFinishFields(t *testing.T) {
	env, sender, owner := finishEnv()
	tx := txn.Current(env)

	txType, err := tx.TransactionType()
	require.NoError(t, err)
	assert.Equal(t, txn.TransactionTypeEscrowFinish, txType)

	gotSender, err := tx.Account()
	require.NoError(t, err)
	assert.Equal(t, sender, gotSender)

	gotOwner, err := tx.Owner()
	require.NoError(t, err)
	assert.Equal(t, owner, gotOwner)

	offerSeq, err := tx.OfferSequence()
	require.NoError(t, err)
	assert.Equal(t, uint32(11), offerSeq)

	allowance, err := tx.ComputationAllowance()
	require.NoError(t, err)
	assert.Equal(t, uint32(1_000_000), allowance)

	fee, err := tx.Fee()
	require.NoError(t, err)
	assert.Equal(t, uint64(10), fee.Drops)

	sig, err := tx.TxnSignature()
	require.NoError(t, err)
	assert.Equal(t, types.Blob{0x30, 0x44, 0x02}, sig)

	pub, err := tx.SigningPubKey()
	require.NoError(t, err)
	require.Len(t, pub, types.PublicKeySize)
	assert.Equal(t, byte(types.Ed25519Prefix), pub[0])
}

func TestOptionalFields(t *testing.T) {
	env, _, _ := finishEnv()
	tx := txn.Current(env)

	_, present, err := tx.Condition()
	require.NoError(t, err)
	assert.False(t, present)

	env.Tx.SetBytes(sfield.Condition.Code(), []byte{0xA0, 0x25, 0x80})
	cond, present, err := tx.Condition()
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, types.Blob{0xA0, 0x25, 0x80}, cond)

	_, present, err = tx.SourceTag()
	require.NoError(t, err)
	assert.False(t, present)

	env.Tx.SetUint32(sfield.SourceTag.Code(), 77)
	tag, present, err := tx.SourceTag()
	require.NoError(t, err)
	require.True(t, present)
	assert.Equal(t, uint32(77), tag)
}

func TestMemos(t *testing.T) {
	env, _, _ := finishEnv()
	tx := txn.Current(env)

	t.Run("absent array counts zero", func(t *testing.T) {
		n, err := tx.MemoCount()
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	memo := func(memoType, memoData string) *hosttest.Fixture {
		inner := hosttest.NewFixture().
			SetBytes(sfield.MemoType.Code(), []byte(memoType)).
			SetBytes(sfield.MemoData.Code(), []byte(memoData))
		return hosttest.NewFixture().SetObject(sfield.Memo, inner)
	}
	env.Tx.SetArray(sfield.Memos,
		memo("text/plain", "hello"),
		memo("text/plain", "world"),
	)

	n, err := tx.MemoCount()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	m, err := tx.Memo(1)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", string(m.Type))
	assert.Equal(t, "world", string(m.Data))
	assert.Nil(t, m.Format)
}
