package nft_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/host/hosttest"
	"github.com/LeJamon/goXRPLwasm/nft"
	"github.com/LeJamon/goXRPLwasm/types"
)

// mintID packs a token ID the way NFTokenMint does, scrambling the taxon
// with the mint sequence.
func mintID(flags, fee uint16, issuer types.AccountID, taxon, sequence uint32) types.NftID {
	var id types.NftID
	binary.BigEndian.PutUint16(id[0:2], flags)
	binary.BigEndian.PutUint16(id[2:4], fee)
	copy(id[4:24], issuer[:])
	binary.BigEndian.PutUint32(id[24:28], taxon^(384160001*sequence+2459))
	binary.BigEndian.PutUint32(id[28:32], sequence)
	return id
}

func TestTokenAttributes(t *testing.T) {
	env := hosttest.New()
	var issuer types.AccountID
	issuer[0] = 0xB1
	var owner types.AccountID
	owner[0] = 0xB2

	id := mintID(types.NftFlagBurnable|types.NftFlagTransferable, 250, issuer, 9876, 41)
	env.PutNFT(owner, id, types.Blob("ipfs://metadata"))

	uri, err := nft.URI(env, owner, id)
	require.NoError(t, err)
	assert.Equal(t, "ipfs://metadata", string(uri))

	gotIssuer, err := nft.Issuer(env, id)
	require.NoError(t, err)
	assert.Equal(t, issuer, gotIssuer)

	taxon, err := nft.Taxon(env, id)
	require.NoError(t, err)
	assert.Equal(t, uint32(9876), taxon, "taxon unscrambles with the mint sequence")

	serial, err := nft.Serial(env, id)
	require.NoError(t, err)
	assert.Equal(t, uint32(41), serial)

	flags, err := nft.Flags(env, id)
	require.NoError(t, err)
	assert.True(t, flags.IsBurnable())
	assert.True(t, flags.IsTransferable())
	assert.False(t, flags.IsOnlyXRP())

	fee, err := nft.TransferFee(env, id)
	require.NoError(t, err)
	assert.Equal(t, uint16(250), fee)
}

func TestURIOfUnheldToken(t *testing.T) {
	env := hosttest.New()
	var owner types.AccountID
	owner[0] = 0xB3

	id := mintID(0, 0, owner, 1, 1)
	_, err := nft.URI(env, owner, id)
	assert.ErrorIs(t, err, host.ErrLedgerObjNotFound)
}
