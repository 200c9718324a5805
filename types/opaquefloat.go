package types

import (
	"encoding/hex"

	"github.com/LeJamon/goXRPLwasm/host"
)

// OpaqueFloatSize is the width of a host decimal float handle.
const OpaqueFloatSize = 8

// OpaqueFloat is an 8-byte handle to a host-side decimal value. Contracts
// never interpret the bytes; all arithmetic and comparison goes through the
// host float calls.
type OpaqueFloat [OpaqueFloatSize]byte

// DecodeOpaqueFloat rejects any buffer that is not exactly 8 bytes.
func DecodeOpaqueFloat(buf []byte) (OpaqueFloat, error) {
	var f OpaqueFloat
	if len(buf) != OpaqueFloatSize {
		return f, host.ErrInvalidField
	}
	copy(f[:], buf)
	return f, nil
}

func (f OpaqueFloat) String() string { return hex.EncodeToString(f[:]) }
