package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/host/hosttest"
	"github.com/LeJamon/goXRPLwasm/ledger"
	"github.com/LeJamon/goXRPLwasm/types"
)

func TestHeaderValues(t *testing.T) {
	env := hosttest.New()
	env.LedgerSeq = 81_000_000
	env.ParentCloseTime = 771_000_123
	env.ParentHash = types.Hash256{0xAB}
	env.BaseFee = 12

	seq, err := ledger.Sequence(env)
	require.NoError(t, err)
	assert.Equal(t, uint32(81_000_000), seq)

	closeTime, err := ledger.ParentTime(env)
	require.NoError(t, err)
	assert.Equal(t, uint32(771_000_123), closeTime)

	parent, err := ledger.ParentHash(env)
	require.NoError(t, err)
	assert.Equal(t, env.ParentHash, parent)

	fee, err := ledger.BaseFee(env)
	require.NoError(t, err)
	assert.Equal(t, uint32(12), fee)
}

func TestAmendmentEnabled(t *testing.T) {
	env := hosttest.New()
	amendment := types.Hash256{0x5C}
	env.Amendments[amendment] = true

	on, err := ledger.AmendmentEnabled(env, amendment)
	require.NoError(t, err)
	assert.True(t, on)

	off, err := ledger.AmendmentEnabled(env, types.Hash256{0x5D})
	require.NoError(t, err)
	assert.False(t, off)
}

func TestHeaderErrorSurfaces(t *testing.T) {
	env := hosttest.New()
	env.LedgerSeq = host.CodeInternalError

	_, err := ledger.Sequence(env)
	assert.ErrorIs(t, err, host.ErrInternal)
}
