package types

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host"
)

func TestAccountIDFromAddress(t *testing.T) {
	id, err := AccountIDFromAddress("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh")
	require.NoError(t, err)
	assert.Equal(t, "b5f762798a53d543a014caf8b297cff8f2f937e8", id.String())
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", id.Address())

	_, err = AccountIDFromAddress("rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTi")
	assert.ErrorIs(t, err, host.ErrInvalidAccount)
}

func TestAccountIDFromPublicKey(t *testing.T) {
	pubKey, err := hex.DecodeString("0330E7FC9D56BB25D6893BA3F317AE5BCF33B3291BD63DB32654A313222F7FD020")
	require.NoError(t, err)

	id, err := AccountIDFromPublicKey(pubKey)
	require.NoError(t, err)
	assert.Equal(t, "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh", id.Address())

	_, err = AccountIDFromPublicKey(pubKey[:16])
	assert.ErrorIs(t, err, host.ErrInvalidParams)
}

func TestDecodeAccountID(t *testing.T) {
	raw := make([]byte, AccountIDSize)
	raw[19] = 1
	id, err := DecodeAccountID(raw)
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.True(t, AccountID{}.IsZero())

	_, err = DecodeAccountID(raw[:10])
	assert.ErrorIs(t, err, host.ErrInvalidField)
}
