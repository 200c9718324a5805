// Package locator builds nested-field paths for the host's locator-based
// getters. A locator encodes a walk through objects and arrays, for example
// Memos[0].MemoType, as a flat byte string the host parses.
package locator

import (
	"encoding/binary"

	"github.com/LeJamon/goXRPLwasm/sfield"
)

// BufferSize bounds the packed path. Each step takes 4 bytes, so a locator
// holds at most 16 steps (15 after a slot prefix).
const BufferSize = 64

// Locator accumulates a nested-field path. The zero value is an empty path;
// use NewWithSlot when the path starts inside a cached ledger object slot.
type Locator struct {
	buffer [BufferSize]byte
	n      int
}

// New returns an empty locator.
func New() *Locator {
	return &Locator{}
}

// NewWithSlot returns a locator whose first byte addresses a cache slot.
func NewWithSlot(slot uint8) *Locator {
	l := &Locator{}
	l.buffer[0] = slot
	l.n = 1
	return l
}

// Pack appends a field code to the path. It reports false when the buffer
// is full, leaving the locator unchanged.
func (l *Locator) Pack(field sfield.Code) bool {
	return l.packRaw(int32(field))
}

// PackIndex appends an array index to the path.
func (l *Locator) PackIndex(index int32) bool {
	return l.packRaw(index)
}

func (l *Locator) packRaw(v int32) bool {
	if l.n+4 > BufferSize {
		return false
	}
	binary.LittleEndian.PutUint32(l.buffer[l.n:], uint32(v))
	l.n += 4
	return true
}

// RepackLast overwrites the most recently packed step. Stepping through the
// elements of an array repacks the index in place instead of rebuilding the
// whole path. It reports false when nothing has been packed yet.
func (l *Locator) RepackLast(field sfield.Code) bool {
	return l.repackRaw(int32(field))
}

// RepackLastIndex overwrites the most recently packed step with an array
// index.
func (l *Locator) RepackLastIndex(index int32) bool {
	return l.repackRaw(index)
}

func (l *Locator) repackRaw(v int32) bool {
	if l.n < 4 {
		return false
	}
	binary.LittleEndian.PutUint32(l.buffer[l.n-4:], uint32(v))
	return true
}

// Bytes returns the packed path as passed to the host.
func (l *Locator) Bytes() []byte { return l.buffer[:l.n] }

// Len returns the number of packed bytes.
func (l *Locator) Len() int { return l.n }

// IsEmpty reports whether nothing has been packed.
func (l *Locator) IsEmpty() bool { return l.n == 0 }
