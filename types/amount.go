package types

import (
	"encoding/binary"
	"fmt"

	"github.com/LeJamon/goXRPLwasm/host"
)

// AmountSize is the largest wire form of an STAmount (the issued-currency
// encoding). Buffers passed to amount field reads are sized to this.
const AmountSize = 48

// The three wire forms selected by the discriminant bits of byte 0.
const (
	xrpAmountSize = 8
	mptAmountSize = 33

	amountTypeBit  = 0x80 // 1 = issued currency
	amountSignBit  = 0x40 // 1 = positive
	amountIsMPTBit = 0x20 // 1 = MPT (only when type bit is 0)
)

// maskDrops clears the three discriminant bits plus reserved bits, leaving
// the 57-bit drop count.
const maskDrops = 0x01FFFFFFFFFFFFFF

// AmountKind discriminates the three STAmount representations.
type AmountKind uint8

const (
	AmountXRP AmountKind = iota
	AmountIOU
	AmountMPT
)

// Amount is a decoded STAmount. Exactly one representation is populated,
// selected by Kind:
//
//   - AmountXRP: Drops (native amounts are unsigned here; a cleared sign bit
//     on the wire is a malformed field)
//   - AmountIOU: Float, Currency, Issuer
//   - AmountMPT: Units, Positive, MptID
type Amount struct {
	Kind AmountKind

	Drops uint64

	Float    OpaqueFloat
	Currency Currency
	Issuer   AccountID

	Units    uint64
	Positive bool
	MptID    MptID
}

// XRPAmount builds a native amount from a drop count.
func XRPAmount(drops uint64) Amount {
	return Amount{Kind: AmountXRP, Drops: drops}
}

// IOUAmount builds an issued-currency amount.
func IOUAmount(f OpaqueFloat, currency Currency, issuer AccountID) Amount {
	return Amount{Kind: AmountIOU, Float: f, Currency: currency, Issuer: issuer}
}

// MPTAmount builds a multi-purpose-token amount.
func MPTAmount(units uint64, positive bool, id MptID) Amount {
	return Amount{Kind: AmountMPT, Units: units, Positive: positive, MptID: id}
}

// DecodeAmount interprets an STAmount wire buffer. The top bits of byte 0
// pick the representation: bit 7 set is an issued currency (48 bytes), bit 7
// clear with bit 5 set is an MPT (33 bytes), bit 7 and bit 5 clear is native
// XRP (8 bytes). Bit 6 is the sign, 1 for positive. A buffer whose length
// does not match its discriminant is malformed, as is a native amount with
// the sign bit cleared: XRP amounts are unsigned in this context.
func DecodeAmount(buf []byte) (Amount, error) {
	if len(buf) == 0 {
		return Amount{}, host.ErrInvalidField
	}
	byte0 := buf[0]
	isIOU := byte0&amountTypeBit != 0
	isMPT := !isIOU && byte0&amountIsMPTBit != 0
	positive := byte0&amountSignBit != 0

	switch {
	case isIOU:
		if len(buf) != AmountSize {
			return Amount{}, host.ErrInvalidField
		}
		var f OpaqueFloat
		copy(f[:], buf[:8])
		currency, err := DecodeCurrency(buf[8:28])
		if err != nil {
			return Amount{}, err
		}
		issuer, err := DecodeAccountID(buf[28:48])
		if err != nil {
			return Amount{}, err
		}
		return IOUAmount(f, currency, issuer), nil

	case isMPT:
		if len(buf) != mptAmountSize {
			return Amount{}, host.ErrInvalidField
		}
		units := binary.BigEndian.Uint64(buf[1:9])
		id, err := DecodeMptID(buf[9:33])
		if err != nil {
			return Amount{}, err
		}
		return MPTAmount(units, positive, id), nil

	default:
		if len(buf) != xrpAmountSize {
			return Amount{}, host.ErrInvalidField
		}
		if !positive {
			// Negative native amounts cannot appear in escrow context.
			return Amount{}, host.ErrInvalidField
		}
		drops := binary.BigEndian.Uint64(buf[:8]) & maskDrops
		return XRPAmount(drops), nil
	}
}

// Bytes returns the 48-byte padded STAmount form together with the length of
// the meaningful prefix. The padded form is what the trace and host calls
// expect regardless of representation.
func (a Amount) Bytes() ([AmountSize]byte, int) {
	var out [AmountSize]byte
	switch a.Kind {
	case AmountIOU:
		copy(out[0:8], a.Float[:])
		copy(out[8:28], a.Currency[:])
		copy(out[28:48], a.Issuer[:])
		return out, AmountSize
	case AmountMPT:
		control := byte(amountIsMPTBit)
		if a.Positive {
			control |= amountSignBit
		}
		out[0] = control
		binary.BigEndian.PutUint64(out[1:9], a.Units)
		copy(out[9:33], a.MptID[:])
		return out, mptAmountSize
	default:
		binary.BigEndian.PutUint64(out[:8], a.Drops&maskDrops|amountSignBit<<56)
		return out, xrpAmountSize
	}
}

func (a Amount) String() string {
	switch a.Kind {
	case AmountIOU:
		return fmt.Sprintf("%s/%s", a.Currency, a.Issuer)
	case AmountMPT:
		sign := ""
		if !a.Positive {
			sign = "-"
		}
		return fmt.Sprintf("%s%d units of %s", sign, a.Units, a.MptID)
	default:
		return fmt.Sprintf("%d drops", a.Drops)
	}
}
