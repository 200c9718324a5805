package hosttest

import (
	"encoding/binary"

	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

type entryKind uint8

const (
	kindLeaf entryKind = iota
	kindObject
	kindArray
)

type entry struct {
	kind entryKind
	leaf []byte
	obj  *Fixture
	arr  []*Fixture
}

// Fixture is a scriptable serialized object: a transaction, a ledger entry,
// or any inner object of either. Fields hold leaf bytes, nested objects, or
// arrays of objects, keyed by field code.
type Fixture struct {
	fields map[int32]entry
}

// NewFixture returns an empty object.
func NewFixture() *Fixture {
	return &Fixture{fields: make(map[int32]entry)}
}

// SetBytes stores raw leaf bytes under a field code. All other setters
// funnel through it.
func (f *Fixture) SetBytes(field sfield.Code, b []byte) *Fixture {
	cp := make([]byte, len(b))
	copy(cp, b)
	f.fields[int32(field)] = entry{kind: kindLeaf, leaf: cp}
	return f
}

// SetUint8 stores a 1-byte integer field.
func (f *Fixture) SetUint8(field sfield.Code, v uint8) *Fixture {
	return f.SetBytes(field, []byte{v})
}

// SetUint16 stores a 2-byte integer field in guest byte order.
func (f *Fixture) SetUint16(field sfield.Code, v uint16) *Fixture {
	b := make([]byte, 2)
	binary.LittleEndian.PutUint16(b, v)
	return f.SetBytes(field, b)
}

// SetUint32 stores a 4-byte integer field in guest byte order.
func (f *Fixture) SetUint32(field sfield.Code, v uint32) *Fixture {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return f.SetBytes(field, b)
}

// SetUint64 stores an 8-byte integer field in guest byte order.
func (f *Fixture) SetUint64(field sfield.Code, v uint64) *Fixture {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return f.SetBytes(field, b)
}

// SetAccount stores a 20-byte account field.
func (f *Fixture) SetAccount(field sfield.Code, a types.AccountID) *Fixture {
	return f.SetBytes(field, a[:])
}

// SetHash256 stores a 32-byte hash field.
func (f *Fixture) SetHash256(field sfield.Code, h types.Hash256) *Fixture {
	return f.SetBytes(field, h[:])
}

// SetAmount stores an amount field in its wire form.
func (f *Fixture) SetAmount(field sfield.Code, a types.Amount) *Fixture {
	wire, n := a.Bytes()
	return f.SetBytes(field, wire[:n])
}

// SetObject stores a nested object field.
func (f *Fixture) SetObject(field sfield.Code, obj *Fixture) *Fixture {
	f.fields[int32(field)] = entry{kind: kindObject, obj: obj}
	return f
}

// SetArray stores an array field.
func (f *Fixture) SetArray(field sfield.Code, items ...*Fixture) *Fixture {
	f.fields[int32(field)] = entry{kind: kindArray, arr: items}
	return f
}

// Delete removes a field, making it absent rather than empty.
func (f *Fixture) Delete(field sfield.Code) *Fixture {
	delete(f.fields, int32(field))
	return f
}
