// Package xfloat wraps the host's decimal float operations. Values are
// opaque 8-byte handles; the host owns the representation and the rounding.
package xfloat

import (
	"encoding/binary"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/types"
)

func out(h func(out []byte) int32) (types.OpaqueFloat, error) {
	var buf [types.OpaqueFloatSize]byte
	if err := host.ResultExact(h(buf[:]), types.OpaqueFloatSize); err != nil {
		return types.OpaqueFloat{}, err
	}
	return types.OpaqueFloat(buf), nil
}

// FromInt converts a signed integer.
func FromInt(h host.Host, v int64, mode int32) (types.OpaqueFloat, error) {
	return out(func(b []byte) int32 { return h.FloatFromInt(v, b, mode) })
}

// FromUint converts an unsigned integer. The host takes the value as an
// 8-byte little-endian buffer.
func FromUint(h host.Host, v uint64, mode int32) (types.OpaqueFloat, error) {
	var in [8]byte
	binary.LittleEndian.PutUint64(in[:], v)
	return out(func(b []byte) int32 { return h.FloatFromUint(in[:], b, mode) })
}

// Set builds a float from a decimal mantissa and exponent.
func Set(h host.Host, exponent int32, mantissa int64, mode int32) (types.OpaqueFloat, error) {
	return out(func(b []byte) int32 { return h.FloatSet(exponent, mantissa, b, mode) })
}

// Compare orders two floats. The result is one of host.FloatEqual,
// host.FloatGreater (a > b), or host.FloatLess.
func Compare(h host.Host, a, b types.OpaqueFloat) (int32, error) {
	rc := h.FloatCompare(a[:], b[:])
	if rc < 0 {
		return 0, host.ErrFromCode(rc)
	}
	return rc, nil
}

// Equal reports a == b under host comparison semantics.
func Equal(h host.Host, a, b types.OpaqueFloat) (bool, error) {
	rc, err := Compare(h, a, b)
	return rc == host.FloatEqual, err
}

// Greater reports a > b.
func Greater(h host.Host, a, b types.OpaqueFloat) (bool, error) {
	rc, err := Compare(h, a, b)
	return rc == host.FloatGreater, err
}

// Less reports a < b.
func Less(h host.Host, a, b types.OpaqueFloat) (bool, error) {
	rc, err := Compare(h, a, b)
	return rc == host.FloatLess, err
}

// Add returns a + b.
func Add(h host.Host, a, b types.OpaqueFloat, mode int32) (types.OpaqueFloat, error) {
	return out(func(o []byte) int32 { return h.FloatAdd(a[:], b[:], o, mode) })
}

// Subtract returns a - b.
func Subtract(h host.Host, a, b types.OpaqueFloat, mode int32) (types.OpaqueFloat, error) {
	return out(func(o []byte) int32 { return h.FloatSubtract(a[:], b[:], o, mode) })
}

// Multiply returns a * b.
func Multiply(h host.Host, a, b types.OpaqueFloat, mode int32) (types.OpaqueFloat, error) {
	return out(func(o []byte) int32 { return h.FloatMultiply(a[:], b[:], o, mode) })
}

// Divide returns a / b. Division by zero fails with an invalid-computation
// error from the host.
func Divide(h host.Host, a, b types.OpaqueFloat, mode int32) (types.OpaqueFloat, error) {
	return out(func(o []byte) int32 { return h.FloatDivide(a[:], b[:], o, mode) })
}

// Pow returns f raised to the integer power n.
func Pow(h host.Host, f types.OpaqueFloat, n int32, mode int32) (types.OpaqueFloat, error) {
	return out(func(o []byte) int32 { return h.FloatPow(f[:], n, o, mode) })
}

// Root returns the nth root of f.
func Root(h host.Host, f types.OpaqueFloat, n int32, mode int32) (types.OpaqueFloat, error) {
	return out(func(o []byte) int32 { return h.FloatRoot(f[:], n, o, mode) })
}

// Log returns the base-10 logarithm of f.
func Log(h host.Host, f types.OpaqueFloat, mode int32) (types.OpaqueFloat, error) {
	return out(func(o []byte) int32 { return h.FloatLog(f[:], o, mode) })
}
