package hosttest

import (
	"encoding/binary"

	"github.com/LeJamon/goXRPLwasm/host"
)

// leafInto copies a leaf field into out under the host buffer rules.
func leafInto(f *Fixture, field int32, out []byte) int32 {
	if f == nil {
		return host.CodeInternalError
	}
	e, ok := f.fields[field]
	if !ok {
		return host.CodeFieldNotFound
	}
	if e.kind != kindLeaf {
		return host.CodeNotLeafField
	}
	if len(e.leaf) > len(out) {
		return host.CodeBufferTooSmall
	}
	copy(out, e.leaf)
	return int32(len(e.leaf))
}

func arrayLen(f *Fixture, field int32) int32 {
	if f == nil {
		return host.CodeInternalError
	}
	e, ok := f.fields[field]
	if !ok {
		return host.CodeFieldNotFound
	}
	if e.kind != kindArray {
		return host.CodeNoArray
	}
	return int32(len(e.arr))
}

// walk resolves a locator path against a root object and returns the entry
// it lands on. The error return is a host code, zero on success.
func walk(root *Fixture, loc []byte) (entry, int32) {
	if root == nil {
		return entry{}, host.CodeInternalError
	}
	if len(loc) == 0 || len(loc)%4 != 0 {
		return entry{}, host.CodeLocatorMalformed
	}

	cur := entry{kind: kindObject, obj: root}
	for off := 0; off < len(loc); off += 4 {
		step := int32(binary.LittleEndian.Uint32(loc[off:]))
		switch cur.kind {
		case kindObject:
			next, ok := cur.obj.fields[step]
			if !ok {
				return entry{}, host.CodeFieldNotFound
			}
			cur = next
		case kindArray:
			if step < 0 || int(step) >= len(cur.arr) {
				return entry{}, host.CodeIndexOutOfBounds
			}
			cur = entry{kind: kindObject, obj: cur.arr[step]}
		default:
			// Descending into a leaf.
			return entry{}, host.CodeNotLeafField
		}
	}
	return cur, 0
}

func nestedInto(root *Fixture, loc, out []byte) int32 {
	e, code := walk(root, loc)
	if code != 0 {
		return code
	}
	if e.kind != kindLeaf {
		return host.CodeNotLeafField
	}
	if len(e.leaf) > len(out) {
		return host.CodeBufferTooSmall
	}
	copy(out, e.leaf)
	return int32(len(e.leaf))
}

func nestedArrayLen(root *Fixture, loc []byte) int32 {
	e, code := walk(root, loc)
	if code != 0 {
		return code
	}
	if e.kind != kindArray {
		return host.CodeNoArray
	}
	return int32(len(e.arr))
}

// Transaction getters.

func (e *Env) GetTxField(field int32, out []byte) int32 {
	return leafInto(e.Tx, field, out)
}

func (e *Env) GetTxNestedField(locator, out []byte) int32 {
	return nestedInto(e.Tx, locator, out)
}

func (e *Env) GetTxArrayLen(field int32) int32 {
	return arrayLen(e.Tx, field)
}

func (e *Env) GetTxNestedArrayLen(locator []byte) int32 {
	return nestedArrayLen(e.Tx, locator)
}

// Current-object getters.

func (e *Env) GetCurrentLedgerObjField(field int32, out []byte) int32 {
	return leafInto(e.CurrentObj, field, out)
}

func (e *Env) GetCurrentLedgerObjNestedField(locator, out []byte) int32 {
	return nestedInto(e.CurrentObj, locator, out)
}

func (e *Env) GetCurrentLedgerObjArrayLen(field int32) int32 {
	return arrayLen(e.CurrentObj, field)
}

func (e *Env) GetCurrentLedgerObjNestedArrayLen(locator []byte) int32 {
	return nestedArrayLen(e.CurrentObj, locator)
}

// Slot getters.

func (e *Env) GetLedgerObjField(cacheNum int32, field int32, out []byte) int32 {
	obj, code := e.slotObj(cacheNum)
	if code != 0 {
		return code
	}
	return leafInto(obj, field, out)
}

func (e *Env) GetLedgerObjNestedField(cacheNum int32, locator, out []byte) int32 {
	obj, code := e.slotObj(cacheNum)
	if code != 0 {
		return code
	}
	return nestedInto(obj, locator, out)
}

func (e *Env) GetLedgerObjArrayLen(cacheNum int32, field int32) int32 {
	obj, code := e.slotObj(cacheNum)
	if code != 0 {
		return code
	}
	return arrayLen(obj, field)
}

func (e *Env) GetLedgerObjNestedArrayLen(cacheNum int32, locator []byte) int32 {
	obj, code := e.slotObj(cacheNum)
	if code != 0 {
		return code
	}
	return nestedArrayLen(obj, locator)
}
