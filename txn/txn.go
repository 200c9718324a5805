// Package txn reads fields of the transaction being executed. The host keeps
// exactly one current transaction, an EscrowFinish, so the accessor is a
// plain value bound to a Host rather than a handle that must be looked up.
package txn

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/fieldcodec"
	"github.com/LeJamon/goXRPLwasm/locator"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// EscrowFinish transaction type code.
const TransactionTypeEscrowFinish uint16 = 2

// Transaction is the current transaction.
type Transaction struct {
	h host.Host
}

// Current binds the current-transaction accessor to a host.
func Current(h host.Host) Transaction {
	return Transaction{h: h}
}

func (t Transaction) get(field int32, out []byte) int32 {
	return t.h.GetTxField(field, out)
}

// GetField reads a mandatory typed field from the current transaction.
func GetField[T any](t Transaction, field sfield.Field[T]) (T, error) {
	return fieldcodec.Get(t.get, field)
}

// GetFieldOptional reads an optional typed field from the current
// transaction. The second return reports presence.
func GetFieldOptional[T any](t Transaction, field sfield.Field[T]) (T, bool, error) {
	return fieldcodec.GetOptional(t.get, field)
}

// GetNestedField reads the nested field addressed by loc and decodes it as T.
func GetNestedField[T any](t Transaction, loc *locator.Locator) (T, error) {
	return fieldcodec.GetNested[T](func(out []byte) int32 {
		return t.h.GetTxNestedField(loc.Bytes(), out)
	})
}

// GetNestedFieldOptional is GetNestedField for paths that may not resolve.
func GetNestedFieldOptional[T any](t Transaction, loc *locator.Locator) (T, bool, error) {
	return fieldcodec.GetNestedOptional[T](func(out []byte) int32 {
		return t.h.GetTxNestedField(loc.Bytes(), out)
	})
}

// ArrayLen returns the element count of a top-level array field.
func (t Transaction) ArrayLen(field sfield.Code) (int, error) {
	return host.ResultLen(t.h.GetTxArrayLen(int32(field)))
}

// NestedArrayLen returns the element count of the array addressed by loc.
func (t Transaction) NestedArrayLen(loc *locator.Locator) (int, error) {
	return host.ResultLen(t.h.GetTxNestedArrayLen(loc.Bytes()))
}

// Common fields present on every transaction.

func (t Transaction) Account() (types.AccountID, error) {
	return GetField(t, sfield.Account)
}

func (t Transaction) TransactionType() (uint16, error) {
	return GetField(t, sfield.TransactionType)
}

// ComputationAllowance returns the gas budget granted to this execution.
func (t Transaction) ComputationAllowance() (uint32, error) {
	return GetField(t, sfield.ComputationAllowance)
}

func (t Transaction) Fee() (types.Amount, error) {
	return GetField(t, sfield.Fee)
}

func (t Transaction) Sequence() (uint32, error) {
	return GetField(t, sfield.Sequence)
}

func (t Transaction) AccountTxnID() (types.Hash256, bool, error) {
	return GetFieldOptional(t, sfield.AccountTxnID)
}

func (t Transaction) Flags() (uint32, bool, error) {
	return GetFieldOptional(t, sfield.Flags)
}

func (t Transaction) LastLedgerSequence() (uint32, bool, error) {
	return GetFieldOptional(t, sfield.LastLedgerSequence)
}

func (t Transaction) NetworkID() (uint32, bool, error) {
	return GetFieldOptional(t, sfield.NetworkID)
}

func (t Transaction) SourceTag() (uint32, bool, error) {
	return GetFieldOptional(t, sfield.SourceTag)
}

// SigningPubKey is the wire blob, not a types.PublicKey: multi-signed
// transactions carry it empty.
func (t Transaction) SigningPubKey() (types.Blob, error) {
	return fieldcodec.GetBlob(t.get, sfield.SigningPubKey, types.PublicKeySize)
}

func (t Transaction) TicketSequence() (uint32, bool, error) {
	return GetFieldOptional(t, sfield.TicketSequence)
}

func (t Transaction) TxnSignature() (types.Blob, error) {
	return fieldcodec.GetBlob(t.get, sfield.TxnSignature, types.SignatureBlobSize)
}

// EscrowFinish-specific fields.

// Owner is the account that funded the escrow being finished.
func (t Transaction) Owner() (types.AccountID, error) {
	return GetField(t, sfield.Owner)
}

// OfferSequence is the sequence number of the EscrowCreate transaction.
func (t Transaction) OfferSequence() (uint32, error) {
	return GetField(t, sfield.OfferSequence)
}

// Condition returns the PREIMAGE-SHA-256 crypto-condition, when present.
func (t Transaction) Condition() (types.Blob, bool, error) {
	return fieldcodec.GetBlobOptional(t.get, sfield.Condition, types.ConditionBlobSize)
}

// Fulfillment returns the condition fulfillment, when present.
func (t Transaction) Fulfillment() (types.Blob, bool, error) {
	return fieldcodec.GetBlobOptional(t.get, sfield.Fulfillment, types.FulfillmentBlobSize)
}
