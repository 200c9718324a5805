package rng_test

import (
	"crypto/sha512"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host/hosttest"
	"github.com/LeJamon/goXRPLwasm/rng"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

func contractEnv(parent, prevTxn byte) *hosttest.Env {
	env := hosttest.New()
	env.ParentHash = types.Hash256{parent}
	env.CurrentObj.SetHash256(sfield.PreviousTxnID.Code(), types.Hash256{prevTxn})
	return env
}

func TestStreamIsDeterministic(t *testing.T) {
	a, err := rng.New(contractEnv(1, 2), []byte("lottery"))
	require.NoError(t, err)
	b, err := rng.New(contractEnv(1, 2), []byte("lottery"))
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		va, err := a.NextU64()
		require.NoError(t, err)
		vb, err := b.NextU64()
		require.NoError(t, err)
		assert.Equal(t, va, vb, "draw %d", i)
	}
}

// TestFirstDrawMatchesHashConstruction recomputes the stream by hand: the
// seed is SHA512Half(parentHash, prevTxnID, 64-byte domain, 8-byte zero
// counter), and draw n is SHA512Half(seed, n as little-endian uint64).
func TestFirstDrawMatchesHashConstruction(t *testing.T) {
	r, err := rng.New(contractEnv(1, 2), []byte("lottery"))
	require.NoError(t, err)

	var preimage [136]byte
	preimage[0] = 1  // parent ledger hash
	preimage[32] = 2 // escrow PreviousTxnID
	copy(preimage[64:128], "lottery")
	seed := sha512.Sum512(preimage[:])

	var draw [40]byte
	copy(draw[:32], seed[:32])
	binary.LittleEndian.PutUint64(draw[32:], 1)
	first := sha512.Sum512(draw[:])

	v, err := r.NextU64()
	require.NoError(t, err)
	assert.Equal(t, binary.LittleEndian.Uint64(first[:8]), v)

	next, err := r.NextBytes()
	require.NoError(t, err)
	binary.LittleEndian.PutUint64(draw[32:], 2)
	second := sha512.Sum512(draw[:])
	assert.Equal(t, [32]byte(second[:32]), next)
}

func TestStreamsDivergeBySeed(t *testing.T) {
	base, err := rng.New(contractEnv(1, 2), []byte("lottery"))
	require.NoError(t, err)
	baseBlock, err := base.NextBytes()
	require.NoError(t, err)

	tests := []struct {
		name string
		r    func() (*rng.Rng, error)
	}{
		{"different domain", func() (*rng.Rng, error) {
			return rng.New(contractEnv(1, 2), []byte("raffle"))
		}},
		{"different parent ledger", func() (*rng.Rng, error) {
			return rng.New(contractEnv(9, 2), []byte("lottery"))
		}},
		{"different escrow history", func() (*rng.Rng, error) {
			return rng.New(contractEnv(1, 9), []byte("lottery"))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other, err := tt.r()
			require.NoError(t, err)
			block, err := other.NextBytes()
			require.NoError(t, err)
			assert.NotEqual(t, baseBlock, block)
		})
	}
}

func TestDomainPaddingBoundary(t *testing.T) {
	// Domains are padded to 64 bytes, so a domain and the same domain with a
	// trailing zero byte seed identically. Callers that need distinct streams
	// must differ within the first 64 bytes.
	env := contractEnv(1, 2)
	short, err := rng.New(env, []byte("tag"))
	require.NoError(t, err)
	padded, err := rng.New(env, append([]byte("tag"), 0))
	require.NoError(t, err)

	a, err := short.NextU64()
	require.NoError(t, err)
	b, err := padded.NextU64()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNextRange(t *testing.T) {
	r, err := rng.New(contractEnv(3, 4), []byte("range"))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		v, err := r.NextRange(10)
		require.NoError(t, err)
		assert.Less(t, v, uint64(10))
	}

	v, err := r.NextRange(0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestNextBoolVaries(t *testing.T) {
	r, err := rng.New(contractEnv(5, 6), []byte("coin"))
	require.NoError(t, err)

	seen := map[bool]bool{}
	for i := 0; i < 64; i++ {
		v, err := r.NextBool()
		require.NoError(t, err)
		seen[v] = true
	}
	assert.Len(t, seen, 2, "64 flips should land on both sides")
}
