// Package rng derives deterministic pseudo-randomness for contracts. The
// stream is a function of the parent ledger hash, the escrow's previous
// transaction ID, and a caller-chosen domain string, so every validator
// replaying the transaction draws the same values, while different escrows
// and different ledgers draw different ones.
package rng

import (
	"encoding/binary"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/ledger"
	"github.com/LeJamon/goXRPLwasm/ledgerobj"
	"github.com/LeJamon/goXRPLwasm/types"
)

// domainSize is the fixed width the domain is padded or truncated to before
// seeding, keeping the seed preimage a constant 136 bytes.
const domainSize = 64

// Rng is a deterministic generator. It is not cryptographically secure
// against an observer who knows the ledger state; its purpose is consensus
// reproducibility, not secrecy.
type Rng struct {
	h       host.Host
	seed    [types.Hash256Size]byte
	counter uint64
}

// New seeds a generator from the execution context: the parent ledger hash
// and the current escrow's PreviousTxnID. Distinct domains yield independent
// streams within one execution.
func New(h host.Host, domain []byte) (*Rng, error) {
	parent, err := ledger.ParentHash(h)
	if err != nil {
		return nil, err
	}
	prev, err := ledgerobj.CurrentEscrowObject(h).PreviousTxnID()
	if err != nil {
		return nil, err
	}
	return NewFromSeeds(h, parent, prev, domain)
}

// NewFromSeeds seeds a generator from explicit hashes. The seed preimage is
// parentHash, prevTxnID, the domain padded or truncated to 64 bytes, and a
// zero 8-byte counter.
func NewFromSeeds(h host.Host, parentHash, prevTxnID types.Hash256, domain []byte) (*Rng, error) {
	var preimage [types.Hash256Size*2 + domainSize + 8]byte
	copy(preimage[0:32], parentHash[:])
	copy(preimage[32:64], prevTxnID[:])
	copy(preimage[64:64+domainSize], domain)

	r := &Rng{h: h}
	if err := host.ResultExact(
		h.ComputeSha512Half(preimage[:], r.seed[:]),
		types.Hash256Size,
	); err != nil {
		return nil, err
	}
	return r, nil
}

// NextBytes draws the next 32-byte block.
func (r *Rng) NextBytes() ([types.Hash256Size]byte, error) {
	r.counter++

	var preimage [types.Hash256Size + 8]byte
	copy(preimage[:types.Hash256Size], r.seed[:])
	binary.LittleEndian.PutUint64(preimage[types.Hash256Size:], r.counter)

	var block [types.Hash256Size]byte
	if err := host.ResultExact(
		r.h.ComputeSha512Half(preimage[:], block[:]),
		types.Hash256Size,
	); err != nil {
		return block, err
	}
	return block, nil
}

// NextU64 draws a uniform 64-bit value.
func (r *Rng) NextU64() (uint64, error) {
	block, err := r.NextBytes()
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(block[:8]), nil
}

// NextBool draws a fair coin flip.
func (r *Rng) NextBool() (bool, error) {
	v, err := r.NextU64()
	return v&1 == 1, err
}

// NextRange draws a value in [0, max). A max of zero draws zero. The modulo
// bias is negligible for any max far below 2^64 and identical on every
// validator either way.
func (r *Rng) NextRange(max uint64) (uint64, error) {
	if max == 0 {
		return 0, nil
	}
	v, err := r.NextU64()
	return v % max, err
}
