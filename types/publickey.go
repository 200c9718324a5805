package types

import (
	"encoding/hex"

	"github.com/LeJamon/goXRPLwasm/host"
)

// PublicKeySize is the width of a compressed XRPL public key.
const PublicKeySize = 33

// Ed25519Prefix is the leading byte distinguishing ed25519 keys from
// compressed secp256k1 keys (0x02 or 0x03).
const Ed25519Prefix = 0xED

// PublicKey is a 33-byte compressed public key as stored in SigningPubKey
// and similar fields.
type PublicKey [PublicKeySize]byte

// DecodePublicKey rejects any buffer that is not exactly 33 bytes.
func DecodePublicKey(buf []byte) (PublicKey, error) {
	var k PublicKey
	if len(buf) != PublicKeySize {
		return k, host.ErrInvalidField
	}
	copy(k[:], buf)
	return k, nil
}

// IsEd25519 reports whether the key carries the ed25519 prefix byte.
func (k PublicKey) IsEd25519() bool { return k[0] == Ed25519Prefix }

func (k PublicKey) String() string { return hex.EncodeToString(k[:]) }
