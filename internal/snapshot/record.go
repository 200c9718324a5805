// Package snapshot persists captured ledger state for offline contract runs.
// Entries are keyed by keylet and stored CBOR-encoded in a pebble database,
// lz4-compressed when that pays for itself.
package snapshot

import (
	"github.com/LeJamon/goXRPLwasm/types"
)

// Value is one field of a captured entry: a leaf byte string, a nested
// object, or an array of objects. Exactly one arm is set.
type Value struct {
	Leaf   []byte           `codec:"l,omitempty"`
	Object map[int32]*Value `codec:"o,omitempty"`
	Array  []map[int32]*Value `codec:"a,omitempty"`
}

// Record is a captured ledger entry: its keylet and its field tree, keyed by
// serialized field code.
type Record struct {
	Keylet types.Hash256    `codec:"k"`
	Fields map[int32]*Value `codec:"f"`
}

// Header carries the captured ledger's execution context.
type Header struct {
	LedgerSeq       uint32        `codec:"seq"`
	ParentCloseTime uint32        `codec:"pct"`
	ParentHash      types.Hash256 `codec:"ph"`
	BaseFee         uint32        `codec:"fee"`
}

// LeafValue builds a leaf field.
func LeafValue(b []byte) *Value {
	cp := make([]byte, len(b))
	copy(cp, b)
	return &Value{Leaf: cp}
}

// ObjectValue builds a nested-object field.
func ObjectValue(fields map[int32]*Value) *Value {
	return &Value{Object: fields}
}

// ArrayValue builds an array field.
func ArrayValue(items ...map[int32]*Value) *Value {
	return &Value{Array: items}
}
