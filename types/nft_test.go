package types

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host"
)

func buildNftID(flags uint16, fee uint16, issuer AccountID, taxon, sequence uint32) NftID {
	var id NftID
	binary.BigEndian.PutUint16(id[0:2], flags)
	binary.BigEndian.PutUint16(id[2:4], fee)
	copy(id[4:24], issuer[:])
	binary.BigEndian.PutUint32(id[24:28], unscrambleTaxon(taxon, sequence))
	binary.BigEndian.PutUint32(id[28:32], sequence)
	return id
}

func TestNftIDFields(t *testing.T) {
	var issuer AccountID
	for i := range issuer {
		issuer[i] = byte(0xA0 + i)
	}

	id := buildNftID(NftFlagBurnable|NftFlagTransferable, 314, issuer, 146999694, 12)

	assert.Equal(t, uint16(314), id.TransferFee())
	assert.Equal(t, issuer, id.Issuer())
	assert.Equal(t, uint32(12), id.Sequence())
	assert.Equal(t, uint32(146999694), id.Taxon())

	flags := id.Flags()
	assert.True(t, flags.IsBurnable())
	assert.True(t, flags.IsTransferable())
	assert.False(t, flags.IsOnlyXRP())
	assert.False(t, flags.IsTrustLine())
}

// Scrambling is an involution: the stored taxon differs from the plain one
// for a nonzero sequence, and unscrambling recovers it exactly.
func TestTaxonScramble(t *testing.T) {
	tests := []struct {
		description string
		taxon       uint32
		sequence    uint32
	}{
		{description: "zero taxon zero sequence", taxon: 0, sequence: 0},
		{description: "small values", taxon: 7, sequence: 3},
		{description: "large taxon", taxon: 0xFFFFFFFF, sequence: 1},
		{description: "large sequence", taxon: 1234, sequence: 0xFFFFFFF0},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			scrambled := unscrambleTaxon(tt.taxon, tt.sequence)
			assert.Equal(t, tt.taxon, unscrambleTaxon(scrambled, tt.sequence))
		})
	}
}

func TestDecodeNftID(t *testing.T) {
	_, err := DecodeNftID(make([]byte, 31))
	assert.ErrorIs(t, err, host.ErrInvalidField)

	buf := make([]byte, NftIDSize)
	buf[31] = 0x05
	id, err := DecodeNftID(buf)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), id.Sequence())
}
