package types

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/LeJamon/goXRPLwasm/host"
)

// NftIDSize is the width of an NFTokenID.
const NftIDSize = 32

// NFToken flag bits.
const (
	NftFlagBurnable     uint16 = 0x0001
	NftFlagOnlyXRP      uint16 = 0x0002
	NftFlagTrustLine    uint16 = 0x0004
	NftFlagTransferable uint16 = 0x0008
)

// NftFlags is the 16-bit flag field packed into an NFTokenID.
type NftFlags uint16

func (f NftFlags) IsBurnable() bool     { return uint16(f)&NftFlagBurnable != 0 }
func (f NftFlags) IsOnlyXRP() bool      { return uint16(f)&NftFlagOnlyXRP != 0 }
func (f NftFlags) IsTrustLine() bool    { return uint16(f)&NftFlagTrustLine != 0 }
func (f NftFlags) IsTransferable() bool { return uint16(f)&NftFlagTransferable != 0 }

// NftID is a 32-byte NFTokenID. The ID packs the token's flags, transfer
// fee, issuer, scrambled taxon, and mint sequence:
//
//	bytes 0..2   flags (big-endian)
//	bytes 2..4   transfer fee (big-endian)
//	bytes 4..24  issuer account
//	bytes 24..28 taxon, scrambled with the mint sequence
//	bytes 28..32 mint sequence (big-endian)
type NftID [NftIDSize]byte

// DecodeNftID rejects any buffer that is not exactly 32 bytes.
func DecodeNftID(buf []byte) (NftID, error) {
	var id NftID
	if len(buf) != NftIDSize {
		return id, host.ErrInvalidField
	}
	copy(id[:], buf)
	return id, nil
}

// Flags returns the flag bits packed into the ID.
func (id NftID) Flags() NftFlags {
	return NftFlags(binary.BigEndian.Uint16(id[0:2]))
}

// TransferFee returns the transfer fee in units of 0.001%.
func (id NftID) TransferFee() uint16 {
	return binary.BigEndian.Uint16(id[2:4])
}

// Issuer returns the minting account packed into the ID.
func (id NftID) Issuer() AccountID {
	var a AccountID
	copy(a[:], id[4:24])
	return a
}

// Sequence returns the per-issuer mint sequence number.
func (id NftID) Sequence() uint32 {
	return binary.BigEndian.Uint32(id[28:32])
}

// Taxon returns the issuer-chosen taxon, unscrambling the stored value with
// the same affine cipher the ledger applies at mint time.
func (id NftID) Taxon() uint32 {
	scrambled := binary.BigEndian.Uint32(id[24:28])
	return unscrambleTaxon(scrambled, id.Sequence())
}

// unscrambleTaxon reverses the ledger's taxon cipher. The cipher XORs the
// taxon with an LCG keyed by the mint sequence; applying it twice is the
// identity, so scramble and unscramble are the same operation.
func unscrambleTaxon(taxon, sequence uint32) uint32 {
	return taxon ^ (384160001*sequence + 2459)
}

func (id NftID) String() string { return hex.EncodeToString(id[:]) }
