// Package simhost turns a captured ledger snapshot into a live host.Host
// backend. Records become fixture trees in an in-memory environment, so a
// contract replayed off-ledger sees the same field bytes it would read
// on-ledger.
package simhost

import (
	"fmt"

	"github.com/LeJamon/goXRPLwasm/host/hosttest"
	"github.com/LeJamon/goXRPLwasm/internal/snapshot"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Fixture rebuilds a fixture tree from a snapshot field tree.
func Fixture(fields map[int32]*snapshot.Value) *hosttest.Fixture {
	f := hosttest.NewFixture()
	for code, value := range fields {
		field := sfield.Code(code)
		switch {
		case value.Object != nil:
			f.SetObject(field, Fixture(value.Object))
		case value.Array != nil:
			elements := make([]*hosttest.Fixture, len(value.Array))
			for i, element := range value.Array {
				elements[i] = Fixture(element)
			}
			f.SetArray(field, elements...)
		default:
			f.SetBytes(field, value.Leaf)
		}
	}
	return f
}

// Load builds an environment holding every record in the store, with the
// ledger header applied. The current escrow and transaction fixtures start
// empty; see SelectEscrow.
func Load(store *snapshot.Store) (*hosttest.Env, error) {
	header, err := store.GetHeader()
	if err != nil {
		return nil, err
	}

	env := hosttest.New()
	env.LedgerSeq = int32(header.LedgerSeq)
	env.ParentCloseTime = int32(header.ParentCloseTime)
	env.ParentHash = header.ParentHash
	env.BaseFee = int32(header.BaseFee)

	err = store.ForEach(func(rec *snapshot.Record) error {
		env.PutObject(rec.Keylet, Fixture(rec.Fields))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return env, nil
}

// SelectEscrow makes the entry under keylet the current ledger object, the
// one the finish function is running against.
func SelectEscrow(env *hosttest.Env, keylet types.Hash256) error {
	obj, ok := env.Objects[keylet]
	if !ok {
		return fmt.Errorf("simhost: escrow %s not in snapshot", keylet)
	}
	env.CurrentObj = obj
	return nil
}
