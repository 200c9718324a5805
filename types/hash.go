package types

import (
	"encoding/hex"

	"github.com/LeJamon/goXRPLwasm/host"
)

// Sizes of the fixed-width hash types, in bytes.
const (
	Hash128Size = 16
	Hash160Size = 20
	Hash192Size = 24
	Hash256Size = 32
)

// Hash128 is a 128-bit value (EmailHash and friends).
type Hash128 [Hash128Size]byte

// Hash160 is a 160-bit value (currency codes, taker pays/gets issuers).
type Hash160 [Hash160Size]byte

// Hash192 is a 192-bit value (MPTokenIssuanceID).
type Hash192 [Hash192Size]byte

// Hash256 is a 256-bit value: ledger hashes, transaction IDs, keylet keys.
type Hash256 [Hash256Size]byte

func (h Hash128) String() string { return hex.EncodeToString(h[:]) }
func (h Hash160) String() string { return hex.EncodeToString(h[:]) }
func (h Hash192) String() string { return hex.EncodeToString(h[:]) }
func (h Hash256) String() string { return hex.EncodeToString(h[:]) }

// IsZero reports whether every byte of the hash is zero.
func (h Hash256) IsZero() bool {
	for _, b := range h {
		if b != 0 {
			return false
		}
	}
	return true
}

// DecodeHash128 rejects any buffer that is not exactly 16 bytes.
func DecodeHash128(buf []byte) (Hash128, error) {
	var h Hash128
	if len(buf) != Hash128Size {
		return h, host.ErrInvalidField
	}
	copy(h[:], buf)
	return h, nil
}

func DecodeHash160(buf []byte) (Hash160, error) {
	var h Hash160
	if len(buf) != Hash160Size {
		return h, host.ErrInvalidField
	}
	copy(h[:], buf)
	return h, nil
}

func DecodeHash192(buf []byte) (Hash192, error) {
	var h Hash192
	if len(buf) != Hash192Size {
		return h, host.ErrInvalidField
	}
	copy(h[:], buf)
	return h, nil
}

func DecodeHash256(buf []byte) (Hash256, error) {
	var h Hash256
	if len(buf) != Hash256Size {
		return h, host.ErrInvalidField
	}
	copy(h[:], buf)
	return h, nil
}
