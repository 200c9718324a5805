package hosttest

import (
	"crypto/sha512"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/ledgerobj"
	"github.com/LeJamon/goXRPLwasm/locator"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

func seededAccount(b byte) types.AccountID {
	var a types.AccountID
	for i := range a {
		a[i] = b
	}
	return a
}

func TestTxLeafFields(t *testing.T) {
	env := New()
	env.Tx.SetUint32(sfield.Sequence.Code(), 42)
	env.Tx.SetAccount(sfield.Account.Code(), seededAccount(0xAA))
	env.Tx.SetArray(sfield.Memos, NewFixture())

	t.Run("present leaf", func(t *testing.T) {
		out := make([]byte, 4)
		rc := env.GetTxField(int32(sfield.Sequence.Code()), out)
		require.Equal(t, int32(4), rc)
		assert.Equal(t, []byte{42, 0, 0, 0}, out)
	})

	t.Run("absent field", func(t *testing.T) {
		out := make([]byte, 4)
		rc := env.GetTxField(int32(sfield.DestinationTag.Code()), out)
		assert.Equal(t, host.CodeFieldNotFound, rc)
	})

	t.Run("buffer too small", func(t *testing.T) {
		out := make([]byte, 8)
		rc := env.GetTxField(int32(sfield.Account.Code()), out)
		assert.Equal(t, host.CodeBufferTooSmall, rc)
	})

	t.Run("array read as leaf", func(t *testing.T) {
		out := make([]byte, 64)
		rc := env.GetTxField(int32(sfield.Memos), out)
		assert.Equal(t, host.CodeNotLeafField, rc)
	})

	t.Run("leaf read as array", func(t *testing.T) {
		rc := env.GetTxArrayLen(int32(sfield.Sequence.Code()))
		assert.Equal(t, host.CodeNoArray, rc)
	})
}

func memoFixture(memoType, memoData string) *Fixture {
	inner := NewFixture().
		SetBytes(sfield.MemoType.Code(), []byte(memoType)).
		SetBytes(sfield.MemoData.Code(), []byte(memoData))
	return NewFixture().SetObject(sfield.Memo, inner)
}

func TestNestedLocatorWalk(t *testing.T) {
	env := New()
	env.Tx.SetArray(sfield.Memos,
		memoFixture("text", "first"),
		memoFixture("text", "second"),
	)

	path := func(steps func(l *locator.Locator)) []byte {
		l := locator.New()
		steps(l)
		return l.Bytes()
	}

	t.Run("array length", func(t *testing.T) {
		rc := env.GetTxNestedArrayLen(path(func(l *locator.Locator) {
			l.Pack(sfield.Memos)
		}))
		assert.Equal(t, int32(2), rc)
	})

	t.Run("descend into second memo", func(t *testing.T) {
		out := make([]byte, 64)
		rc := env.GetTxNestedField(path(func(l *locator.Locator) {
			l.Pack(sfield.Memos)
			l.PackIndex(1)
			l.Pack(sfield.Memo)
			l.Pack(sfield.MemoData.Code())
		}), out)
		require.Equal(t, int32(6), rc)
		assert.Equal(t, "second", string(out[:rc]))
	})

	t.Run("index out of bounds", func(t *testing.T) {
		out := make([]byte, 64)
		rc := env.GetTxNestedField(path(func(l *locator.Locator) {
			l.Pack(sfield.Memos)
			l.PackIndex(5)
			l.Pack(sfield.Memo)
		}), out)
		assert.Equal(t, host.CodeIndexOutOfBounds, rc)
	})

	t.Run("path ends on an object", func(t *testing.T) {
		out := make([]byte, 64)
		rc := env.GetTxNestedField(path(func(l *locator.Locator) {
			l.Pack(sfield.Memos)
			l.PackIndex(0)
			l.Pack(sfield.Memo)
		}), out)
		assert.Equal(t, host.CodeNotLeafField, rc)
	})

	t.Run("empty locator", func(t *testing.T) {
		out := make([]byte, 64)
		rc := env.GetTxNestedField(nil, out)
		assert.Equal(t, host.CodeLocatorMalformed, rc)
	})

	t.Run("ragged locator", func(t *testing.T) {
		out := make([]byte, 64)
		rc := env.GetTxNestedField([]byte{1, 2, 3}, out)
		assert.Equal(t, host.CodeLocatorMalformed, rc)
	})
}

func TestSlotLifecycle(t *testing.T) {
	env := New()
	owner := seededAccount(0x11)

	var keylet [32]byte
	rc := env.EscrowKeylet(owner[:], 7, keylet[:])
	require.Equal(t, int32(32), rc)

	obj := NewFixture().SetUint32(sfield.Sequence.Code(), 7)
	env.PutObject(types.Hash256(keylet), obj)

	t.Run("failed lookup consumes no slot", func(t *testing.T) {
		missing := make([]byte, 32)
		rc := env.CacheLedgerObj(missing, 0)
		require.Equal(t, host.CodeLedgerObjNotFound, rc)

		rc = env.CacheLedgerObj(keylet[:], 0)
		assert.Equal(t, int32(1), rc)
	})

	t.Run("read through the slot", func(t *testing.T) {
		out := make([]byte, 4)
		rc := env.GetLedgerObjField(1, int32(sfield.Sequence.Code()), out)
		require.Equal(t, int32(4), rc)
		assert.Equal(t, []byte{7, 0, 0, 0}, out)
	})

	t.Run("empty slot", func(t *testing.T) {
		out := make([]byte, 4)
		rc := env.GetLedgerObjField(9, int32(sfield.Sequence.Code()), out)
		assert.Equal(t, host.CodeEmptySlot, rc)
	})

	t.Run("slot out of range", func(t *testing.T) {
		out := make([]byte, 4)
		assert.Equal(t, host.CodeSlotOutRange, env.GetLedgerObjField(0, int32(sfield.Sequence.Code()), out))
		assert.Equal(t, host.CodeSlotOutRange, env.GetLedgerObjField(ledgerobj.MaxSlots+1, int32(sfield.Sequence.Code()), out))
		assert.Equal(t, host.CodeSlotOutRange, env.CacheLedgerObj(keylet[:], ledgerobj.MaxSlots+1))
	})

	t.Run("slots exhaust at the cap", func(t *testing.T) {
		fresh := New()
		fresh.PutObject(types.Hash256(keylet), obj)
		for i := int32(1); i <= ledgerobj.MaxSlots; i++ {
			require.Equal(t, i, fresh.CacheLedgerObj(keylet[:], 0))
		}
		assert.Equal(t, host.CodeSlotsFull, fresh.CacheLedgerObj(keylet[:], 0))
	})
}

func TestUpdateData(t *testing.T) {
	env := New()
	env.CurrentObj.SetBytes(sfield.Data.Code(), []byte{1})

	rc := env.UpdateData([]byte{9, 9, 9})
	require.Equal(t, int32(0), rc)

	out := make([]byte, types.ContractDataSize)
	rc = env.GetCurrentLedgerObjField(int32(sfield.Data.Code()), out)
	require.Equal(t, int32(3), rc)
	assert.Equal(t, []byte{9, 9, 9}, out[:3])

	rc = env.UpdateData(make([]byte, types.ContractDataSize+1))
	assert.Equal(t, host.CodeDataFieldTooLarge, rc)
}

func TestAmendmentEnabled(t *testing.T) {
	env := New()
	var amendment types.Hash256
	amendment[0] = 0xFE
	env.Amendments[amendment] = true

	assert.Equal(t, int32(1), env.AmendmentEnabled(amendment[:]))

	var other types.Hash256
	assert.Equal(t, int32(0), env.AmendmentEnabled(other[:]))
	assert.Equal(t, host.CodeInvalidParams, env.AmendmentEnabled([]byte("short")))
}

func TestComputeSha512Half(t *testing.T) {
	env := New()
	msg := []byte("escrow release")

	out := make([]byte, 32)
	rc := env.ComputeSha512Half(msg, out)
	require.Equal(t, int32(32), rc)

	full := sha512.Sum512(msg)
	assert.Equal(t, full[:32], out)

	assert.Equal(t, host.CodeBufferTooSmall, env.ComputeSha512Half(msg, make([]byte, 16)))
}

func TestCheckSigEd25519(t *testing.T) {
	env := New()
	signer := NewEd25519Signer([32]byte{1, 2, 3})
	msg := []byte("finish condition")
	sig := signer.Sign(msg)
	pub := signer.PublicKey()

	assert.Equal(t, int32(1), env.CheckSig(msg, sig, pub[:]))
	assert.Equal(t, int32(0), env.CheckSig([]byte("tampered"), sig, pub[:]))
	assert.Equal(t, host.CodeInvalidParams, env.CheckSig(msg, sig, pub[:10]))
}

func TestCheckSigSecp256k1(t *testing.T) {
	env := New()
	signer := NewSecp256k1Signer([32]byte{4, 5, 6})
	msg := []byte("finish condition")
	sig := signer.Sign(msg)
	pub := signer.PublicKey()

	assert.Equal(t, int32(1), env.CheckSig(msg, sig, pub[:]))
	assert.Equal(t, int32(0), env.CheckSig([]byte("tampered"), sig, pub[:]))
	assert.Equal(t, int32(0), env.CheckSig(msg, []byte{0x30, 0x00}, pub[:]))
}

func TestKeyletDerivation(t *testing.T) {
	env := New()
	a := seededAccount(0x21)
	b := seededAccount(0x22)

	var accountKey, escrowKey, offerKey [32]byte
	require.Equal(t, int32(32), env.AccountKeylet(a[:], accountKey[:]))
	require.Equal(t, int32(32), env.EscrowKeylet(a[:], 1, escrowKey[:]))
	require.Equal(t, int32(32), env.OfferKeylet(a[:], 1, offerKey[:]))

	// Different namespaces over the same inputs land on different keys.
	assert.NotEqual(t, escrowKey, offerKey)
	assert.NotEqual(t, accountKey, escrowKey)

	t.Run("deterministic", func(t *testing.T) {
		var again [32]byte
		require.Equal(t, int32(32), env.AccountKeylet(a[:], again[:]))
		assert.Equal(t, accountKey, again)
	})

	t.Run("trust lines are unordered", func(t *testing.T) {
		currency := make([]byte, types.CurrencySize)
		copy(currency[12:], "USD")

		var ab, ba [32]byte
		require.Equal(t, int32(32), env.LineKeylet(a[:], b[:], currency, ab[:]))
		require.Equal(t, int32(32), env.LineKeylet(b[:], a[:], currency, ba[:]))
		assert.Equal(t, ab, ba)
	})

	t.Run("invalid account", func(t *testing.T) {
		var out [32]byte
		assert.Equal(t, host.CodeInvalidAccount, env.AccountKeylet(a[:10], out[:]))
	})

	t.Run("short output buffer", func(t *testing.T) {
		out := make([]byte, 16)
		assert.Equal(t, host.CodeBufferTooSmall, env.AccountKeylet(a[:], out))
	})
}

func TestTraceRecording(t *testing.T) {
	env := New()
	env.Trace("note", []byte("plain"), false)
	env.Trace("blob", []byte{0xDE, 0xAD}, true)
	env.TraceNum("count", 3)

	require.Len(t, env.Traces, 3)
	assert.Equal(t, "note plain", env.Traces[0])
	assert.Equal(t, "blob DEAD", env.Traces[1])
	assert.Equal(t, "count 3", env.Traces[2])
}
