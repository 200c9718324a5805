// Package fieldcodec is the shared decode layer behind the transaction and
// ledger-object field getters. It sizes the read buffer for a field's Go
// type, interprets the host result code, and converts the raw bytes.
//
// Integer fields arrive in the guest's native byte order, which is little
// endian on wasm32. Everything else is a defined wire form handled by the
// corresponding types decoder.
package fieldcodec

import (
	"encoding/binary"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// GetFunc is a host field getter with its source already bound: the current
// transaction, the current ledger object, or a cache slot.
type GetFunc func(field int32, out []byte) int32

// Get reads a mandatory field. A missing field surfaces as FieldNotFound.
func Get[T any](get GetFunc, field sfield.Field[T]) (T, error) {
	var zero T
	size, exact := wireSize(&zero)
	buf := make([]byte, size)
	rc := get(int32(field), buf)

	if exact {
		if err := host.ResultExact(rc, size); err != nil {
			return zero, err
		}
		return decode[T](buf)
	}
	n, err := host.ResultLen(rc)
	if err != nil {
		return zero, err
	}
	return decode[T](buf[:n])
}

// GetOptional reads a field that may legitimately be absent. Absence is not
// an error; every other failure is.
func GetOptional[T any](get GetFunc, field sfield.Field[T]) (T, bool, error) {
	var zero T
	size, exact := wireSize(&zero)
	buf := make([]byte, size)
	rc := get(int32(field), buf)

	if exact {
		present, err := host.ResultExactOptional(rc, size)
		if err != nil || !present {
			return zero, false, err
		}
		v, err := decode[T](buf)
		return v, err == nil, err
	}
	n, present, err := host.ResultLenOptional(rc)
	if err != nil || !present {
		return zero, false, err
	}
	v, err := decode[T](buf[:n])
	return v, err == nil, err
}

// GetNested decodes the value produced by a locator-based getter, which
// carries its path instead of a field code.
func GetNested[T any](get func(out []byte) int32) (T, error) {
	var f sfield.Field[T]
	return Get(func(_ int32, out []byte) int32 { return get(out) }, f)
}

// GetNestedOptional is GetNested for paths that may not resolve.
func GetNestedOptional[T any](get func(out []byte) int32) (T, bool, error) {
	var f sfield.Field[T]
	return GetOptional(func(_ int32, out []byte) int32 { return get(out) }, f)
}

// GetBlob reads a variable-length field into a buffer of the given capacity.
// Fields with a known tighter ceiling (conditions, signatures, URIs) pass it
// here instead of paying for the default 1 KiB buffer.
func GetBlob(get GetFunc, field sfield.Field[types.Blob], capacity int) (types.Blob, error) {
	buf := make([]byte, capacity)
	n, err := host.ResultLen(get(int32(field), buf))
	if err != nil {
		return nil, err
	}
	return types.Blob(buf[:n]), nil
}

// GetBlobOptional is GetBlob for fields that may be absent. A present but
// empty blob returns (non-nil empty, true, nil), which callers must not
// conflate with absence.
func GetBlobOptional(get GetFunc, field sfield.Field[types.Blob], capacity int) (types.Blob, bool, error) {
	buf := make([]byte, capacity)
	n, present, err := host.ResultLenOptional(get(int32(field), buf))
	if err != nil || !present {
		return nil, false, err
	}
	return types.Blob(buf[:n]), true, nil
}

// wireSize returns the read-buffer size for a type and whether the host must
// fill it exactly.
func wireSize(p any) (int, bool) {
	switch p.(type) {
	case *uint8:
		return 1, true
	case *uint16:
		return 2, true
	case *uint32:
		return 4, true
	case *uint64:
		return 8, true
	case *types.Hash128:
		return types.Hash128Size, true
	case *types.Hash160:
		return types.Hash160Size, true
	case *types.Hash192:
		return types.Hash192Size, true
	case *types.Hash256:
		return types.Hash256Size, true
	case *types.AccountID:
		return types.AccountIDSize, true
	case *types.PublicKey:
		return types.PublicKeySize, true
	case *types.OpaqueFloat:
		return types.OpaqueFloatSize, true
	case *types.NftID:
		return types.NftIDSize, true
	case *types.MptID:
		return types.MptIDSize, true
	case *types.Currency:
		return types.CurrencySize, true
	case *types.Amount:
		return types.AmountSize, false
	case *types.Issue:
		return types.CurrencySize + types.AccountIDSize, false
	case *types.Blob:
		return types.DefaultBlobSize, false
	default:
		return 0, true
	}
}

func decode[T any](buf []byte) (T, error) {
	var v T
	var err error
	switch p := any(&v).(type) {
	case *uint8:
		*p = buf[0]
	case *uint16:
		*p = binary.LittleEndian.Uint16(buf)
	case *uint32:
		*p = binary.LittleEndian.Uint32(buf)
	case *uint64:
		*p = binary.LittleEndian.Uint64(buf)
	case *types.Hash128:
		*p, err = types.DecodeHash128(buf)
	case *types.Hash160:
		*p, err = types.DecodeHash160(buf)
	case *types.Hash192:
		*p, err = types.DecodeHash192(buf)
	case *types.Hash256:
		*p, err = types.DecodeHash256(buf)
	case *types.AccountID:
		*p, err = types.DecodeAccountID(buf)
	case *types.PublicKey:
		*p, err = types.DecodePublicKey(buf)
	case *types.OpaqueFloat:
		*p, err = types.DecodeOpaqueFloat(buf)
	case *types.NftID:
		*p, err = types.DecodeNftID(buf)
	case *types.MptID:
		*p, err = types.DecodeMptID(buf)
	case *types.Currency:
		*p, err = types.DecodeCurrency(buf)
	case *types.Amount:
		*p, err = types.DecodeAmount(buf)
	case *types.Issue:
		*p, err = types.DecodeIssue(buf)
	case *types.Blob:
		*p, err = types.DecodeBlob(buf)
	default:
		// A Field descriptor exists for every decodable type; reaching
		// this arm means a descriptor was declared with an unsupported
		// type parameter.
		err = host.ErrInternal
	}
	return v, err
}
