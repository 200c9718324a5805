package ledgerobj

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/fieldcodec"
	"github.com/LeJamon/goXRPLwasm/locator"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// MaxSlots is the number of cache slots the host provides. Slot numbers are
// 1-based.
const MaxSlots = 255

// Object is a ledger object cached into a host slot.
type Object struct {
	h    host.Host
	slot int32
}

// Cache resolves a keylet and caches the object it names into a fresh slot.
func Cache(h host.Host, keylet types.Hash256) (Object, error) {
	slot := h.CacheLedgerObj(keylet[:], 0)
	if slot < 0 {
		return Object{}, host.ErrFromCode(slot)
	}
	return Object{h: h, slot: slot}, nil
}

// CacheInto resolves a keylet into a specific slot, replacing its previous
// occupant.
func CacheInto(h host.Host, keylet types.Hash256, slot int32) (Object, error) {
	got := h.CacheLedgerObj(keylet[:], slot)
	if got < 0 {
		return Object{}, host.ErrFromCode(got)
	}
	return Object{h: h, slot: got}, nil
}

// Slot returns the cache slot holding the object.
func (o Object) Slot() int32 { return o.slot }

func (o Object) get(field int32, out []byte) int32 {
	return o.h.GetLedgerObjField(o.slot, field, out)
}

// GetObjField reads a mandatory typed field from a cached object.
func GetObjField[T any](o Object, field sfield.Field[T]) (T, error) {
	return fieldcodec.Get(o.get, field)
}

// GetObjFieldOptional reads an optional typed field from a cached object.
func GetObjFieldOptional[T any](o Object, field sfield.Field[T]) (T, bool, error) {
	return fieldcodec.GetOptional(o.get, field)
}

// GetObjNestedField reads the nested field addressed by loc. The locator's
// slot prefix is ignored; the object's own slot is used.
func GetObjNestedField[T any](o Object, loc *locator.Locator) (T, error) {
	return fieldcodec.GetNested[T](func(out []byte) int32 {
		return o.h.GetLedgerObjNestedField(o.slot, loc.Bytes(), out)
	})
}

// GetObjNestedFieldOptional is GetObjNestedField for paths that may not
// resolve.
func GetObjNestedFieldOptional[T any](o Object, loc *locator.Locator) (T, bool, error) {
	return fieldcodec.GetNestedOptional[T](func(out []byte) int32 {
		return o.h.GetLedgerObjNestedField(o.slot, loc.Bytes(), out)
	})
}

// ArrayLen returns the element count of a top-level array field.
func (o Object) ArrayLen(field sfield.Code) (int, error) {
	return host.ResultLen(o.h.GetLedgerObjArrayLen(o.slot, int32(field)))
}

// NestedArrayLen returns the element count of the array addressed by loc.
func (o Object) NestedArrayLen(loc *locator.Locator) (int, error) {
	return host.ResultLen(o.h.GetLedgerObjNestedArrayLen(o.slot, loc.Bytes()))
}

// Fields common to every ledger object.

func (o Object) Flags() (uint32, error) {
	return GetObjField(o, sfield.Flags)
}

func (o Object) LedgerEntryType() (uint16, error) {
	return GetObjField(o, sfield.LedgerEntryType)
}
