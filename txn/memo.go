package txn

import (
	"errors"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/fieldcodec"
	"github.com/LeJamon/goXRPLwasm/locator"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Memo is one entry of the Memos array. Every part is optional on the
// ledger; an absent part is a nil Blob.
type Memo struct {
	Type   types.Blob
	Data   types.Blob
	Format types.Blob
}

// MemoCount returns the number of memos attached to the transaction, zero
// when the Memos array is absent.
func (t Transaction) MemoCount() (int, error) {
	n, err := t.ArrayLen(sfield.Memos)
	if errors.Is(err, host.ErrNoArray) || errors.Is(err, host.ErrFieldNotFound) {
		return 0, nil
	}
	return n, err
}

// Memo reads the memo at the given array index.
func (t Transaction) Memo(index int) (Memo, error) {
	var m Memo
	part := func(field sfield.Field[types.Blob]) (types.Blob, bool, error) {
		loc := locator.New()
		loc.Pack(sfield.Memos)
		loc.PackIndex(int32(index))
		loc.Pack(sfield.Memo)
		loc.Pack(sfield.Code(field))
		return fieldcodec.GetNestedOptional[types.Blob](func(out []byte) int32 {
			return t.h.GetTxNestedField(loc.Bytes(), out)
		})
	}

	var err error
	if m.Type, _, err = part(sfield.MemoType); err != nil {
		return Memo{}, err
	}
	if m.Data, _, err = part(sfield.MemoData); err != nil {
		return Memo{}, err
	}
	if m.Format, _, err = part(sfield.MemoFormat); err != nil {
		return Memo{}, err
	}
	return m, nil
}
