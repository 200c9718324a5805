// Package ledgerobj reads fields of ledger objects: the current object the
// contract is attached to, and arbitrary objects cached into slots by
// keylet.
package ledgerobj

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/fieldcodec"
	"github.com/LeJamon/goXRPLwasm/locator"
	"github.com/LeJamon/goXRPLwasm/sfield"
)

// Current is the ledger object the executing contract lives on.
type Current struct {
	h host.Host
}

// CurrentObject binds the current-object accessor to a host.
func CurrentObject(h host.Host) Current {
	return Current{h: h}
}

func (c Current) get(field int32, out []byte) int32 {
	return c.h.GetCurrentLedgerObjField(field, out)
}

// GetCurrentField reads a mandatory typed field from the current object.
func GetCurrentField[T any](c Current, field sfield.Field[T]) (T, error) {
	return fieldcodec.Get(c.get, field)
}

// GetCurrentFieldOptional reads an optional typed field from the current
// object.
func GetCurrentFieldOptional[T any](c Current, field sfield.Field[T]) (T, bool, error) {
	return fieldcodec.GetOptional(c.get, field)
}

// GetCurrentNestedField reads the nested field addressed by loc.
func GetCurrentNestedField[T any](c Current, loc *locator.Locator) (T, error) {
	return fieldcodec.GetNested[T](func(out []byte) int32 {
		return c.h.GetCurrentLedgerObjNestedField(loc.Bytes(), out)
	})
}

// ArrayLen returns the element count of a top-level array field.
func (c Current) ArrayLen(field sfield.Code) (int, error) {
	return host.ResultLen(c.h.GetCurrentLedgerObjArrayLen(int32(field)))
}

// NestedArrayLen returns the element count of the array addressed by loc.
func (c Current) NestedArrayLen(loc *locator.Locator) (int, error) {
	return host.ResultLen(c.h.GetCurrentLedgerObjNestedArrayLen(loc.Bytes()))
}

// Fields common to every ledger object.

func (c Current) Flags() (uint32, error) {
	return GetCurrentField(c, sfield.Flags)
}

func (c Current) LedgerEntryType() (uint16, error) {
	return GetCurrentField(c, sfield.LedgerEntryType)
}
