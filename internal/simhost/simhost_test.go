package simhost

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/contract"
	"github.com/LeJamon/goXRPLwasm/examples/timelock"
	"github.com/LeJamon/goXRPLwasm/host/hosttest"
	"github.com/LeJamon/goXRPLwasm/internal/snapshot"
	"github.com/LeJamon/goXRPLwasm/ledgerobj"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/txn"
	"github.com/LeJamon/goXRPLwasm/types"
)

func leafUint32(v uint32) *snapshot.Value {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return snapshot.LeafValue(buf)
}

func escrowRecord(keylet types.Hash256, finishAfter uint32) *snapshot.Record {
	account := types.AccountID{0xA0}
	destination := types.AccountID{0xB0}
	amount := types.XRPAmount(1_000_000)
	wire, n := amount.Bytes()

	return &snapshot.Record{
		Keylet: keylet,
		Fields: map[int32]*snapshot.Value{
			int32(sfield.Account.Code()):     snapshot.LeafValue(account[:]),
			int32(sfield.Destination.Code()): snapshot.LeafValue(destination[:]),
			int32(sfield.Amount.Code()):      snapshot.LeafValue(wire[:n]),
			int32(sfield.FinishAfter.Code()): leafUint32(finishAfter),
			int32(sfield.Memos): snapshot.ArrayValue(map[int32]*snapshot.Value{
				int32(sfield.Memo): snapshot.ObjectValue(map[int32]*snapshot.Value{
					int32(sfield.MemoData.Code()): snapshot.LeafValue([]byte("hi")),
				}),
			}),
		},
	}
}

func loadedEnv(t *testing.T, finishAfter uint32, closeTime uint32) (*hosttest.Env, types.Hash256) {
	t.Helper()
	store, err := snapshot.OpenMem()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	keylet := types.Hash256{0x42}
	require.NoError(t, store.PutHeader(&snapshot.Header{
		LedgerSeq:       90_000_001,
		ParentCloseTime: closeTime,
		ParentHash:      types.Hash256{0xAA},
		BaseFee:         10,
	}))
	require.NoError(t, store.Put(escrowRecord(keylet, finishAfter)))

	env, err := Load(store)
	require.NoError(t, err)
	return env, keylet
}

func TestLoadAppliesHeader(t *testing.T) {
	env, _ := loadedEnv(t, 2000, 1000)
	assert.Equal(t, int32(90_000_001), env.GetLedgerSqn())
	assert.Equal(t, int32(1000), env.GetParentLedgerTime())
	assert.Equal(t, int32(10), env.GetBaseFee())
	assert.Equal(t, types.Hash256{0xAA}, env.ParentHash)
}

func TestSelectEscrowExposesFields(t *testing.T) {
	env, keylet := loadedEnv(t, 2000, 1000)
	require.NoError(t, SelectEscrow(env, keylet))

	esc := ledgerobj.CurrentEscrowObject(env)
	releaseAt, present, err := esc.FinishAfter()
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, uint32(2000), releaseAt)

	account, err := esc.Account()
	require.NoError(t, err)
	assert.Equal(t, types.AccountID{0xA0}, account)

	assert.Error(t, SelectEscrow(env, types.Hash256{0xEE}))
}

func TestArrayFieldsSurviveTheRoundTrip(t *testing.T) {
	env, keylet := loadedEnv(t, 2000, 1000)
	require.NoError(t, SelectEscrow(env, keylet))

	// The memo array lands on the transaction fixture in real runs, but the
	// locator machinery is the same; read it back through the object getters.
	env.Tx = env.CurrentObj
	n, err := txn.Current(env).MemoCount()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	memo, err := txn.Current(env).Memo(0)
	require.NoError(t, err)
	assert.Equal(t, types.Blob("hi"), memo.Data)
}

func TestReplayedTimelockDecision(t *testing.T) {
	tests := []struct {
		description string
		finishAfter uint32
		closeTime   uint32
		want        int32
	}{
		{"still locked", 2000, 1000, contract.Deny},
		{"release time reached", 2000, 3000, contract.Permit},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			env, keylet := loadedEnv(t, tt.finishAfter, tt.closeTime)
			require.NoError(t, SelectEscrow(env, keylet))
			assert.Equal(t, tt.want, timelock.Finish(env))
		})
	}
}
