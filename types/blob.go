package types

import "github.com/LeJamon/goXRPLwasm/host"

// Capacity ceilings for variable-length blob fields. These mirror the fixed
// read buffers the host protocol assumes; no field of the given family may
// exceed its ceiling.
const (
	DefaultBlobSize     = 1024
	MemoBlobSize        = DefaultBlobSize
	DomainBlobSize      = 256
	ConditionBlobSize   = 128
	FulfillmentBlobSize = 256
	SignatureBlobSize   = 72
	URIBlobSize         = 256
)

// Blob is a variable-length field value bounded by DefaultBlobSize. A
// zero-length blob is a valid, present value and is distinct from an absent
// field.
type Blob []byte

// DecodeBlob bounds-checks the buffer against the blob ceiling and copies it.
func DecodeBlob(buf []byte) (Blob, error) {
	if len(buf) > DefaultBlobSize {
		return nil, host.ErrDataFieldTooLarge
	}
	out := make(Blob, len(buf))
	copy(out, buf)
	return out, nil
}

// IsEmpty reports whether the blob holds no bytes.
func (b Blob) IsEmpty() bool { return len(b) == 0 }
