package types

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/LeJamon/goXRPLwasm/host"
)

// MptIDSize is the width of a Multi-Purpose Token identifier.
const MptIDSize = 24

// MptID identifies a multi-purpose token: a 4-byte big-endian sequence
// number followed by the 20-byte issuer account.
type MptID [MptIDSize]byte

// NewMptID builds an MptID from its sequence number and issuer.
func NewMptID(sequence uint32, issuer AccountID) MptID {
	var id MptID
	binary.BigEndian.PutUint32(id[:4], sequence)
	copy(id[4:], issuer[:])
	return id
}

// DecodeMptID rejects any buffer that is not exactly 24 bytes.
func DecodeMptID(buf []byte) (MptID, error) {
	var id MptID
	if len(buf) != MptIDSize {
		return id, host.ErrInvalidField
	}
	copy(id[:], buf)
	return id, nil
}

// Sequence returns the 32-bit sequence number part.
func (id MptID) Sequence() uint32 {
	return binary.BigEndian.Uint32(id[:4])
}

// Issuer returns the issuer account part.
func (id MptID) Issuer() AccountID {
	var a AccountID
	copy(a[:], id[4:])
	return a
}

func (id MptID) String() string {
	return hex.EncodeToString(id[:])
}
