// Package hosttest is an in-memory host for exercising contracts without a
// ledger. An Env scripts the current transaction, the current ledger object,
// and a keyed store of further objects; everything else (hashing, signature
// checks, keylets, floats) is computed for real so contract logic behaves as
// it would on a live host.
package hosttest

import (
	"fmt"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/addresscodec"
	"github.com/LeJamon/goXRPLwasm/internal/xhash"
	"github.com/LeJamon/goXRPLwasm/ledgerobj"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Env implements host.Host against scripted state. The zero value is not
// usable; call New.
type Env struct {
	// Tx is the current transaction.
	Tx *Fixture
	// CurrentObj is the escrow entry the contract is attached to.
	CurrentObj *Fixture
	// Objects maps keylets to further ledger entries reachable through
	// CacheLedgerObj.
	Objects map[types.Hash256]*Fixture

	LedgerSeq       int32
	ParentCloseTime int32
	ParentHash      types.Hash256
	BaseFee         int32
	Amendments      map[types.Hash256]bool

	// NFTs maps owner accounts to the URIs of tokens they hold.
	NFTs map[types.AccountID]map[types.NftID]types.Blob

	// Traces records every trace call, already formatted.
	Traces []string

	slots [ledgerobj.MaxSlots + 1]*Fixture // slot 0 unused
}

var _ host.Host = (*Env)(nil)

// New returns an Env with empty transaction and object state.
func New() *Env {
	return &Env{
		Tx:         NewFixture(),
		CurrentObj: NewFixture(),
		Objects:    make(map[types.Hash256]*Fixture),
		Amendments: make(map[types.Hash256]bool),
		NFTs:       make(map[types.AccountID]map[types.NftID]types.Blob),
		BaseFee:    10,
		LedgerSeq:  1,
	}
}

// PutObject stores a ledger entry under its keylet.
func (e *Env) PutObject(keylet types.Hash256, obj *Fixture) {
	e.Objects[keylet] = obj
}

// PutNFT records a token with its URI under an owner.
func (e *Env) PutNFT(owner types.AccountID, id types.NftID, uri types.Blob) {
	if e.NFTs[owner] == nil {
		e.NFTs[owner] = make(map[types.NftID]types.Blob)
	}
	e.NFTs[owner][id] = uri
}

// Ledger header.

func (e *Env) GetLedgerSqn() int32        { return e.LedgerSeq }
func (e *Env) GetParentLedgerTime() int32 { return e.ParentCloseTime }
func (e *Env) GetBaseFee() int32          { return e.BaseFee }

func (e *Env) GetParentLedgerHash(out []byte) int32 {
	if len(out) < types.Hash256Size {
		return host.CodeBufferTooSmall
	}
	copy(out, e.ParentHash[:])
	return types.Hash256Size
}

func (e *Env) AmendmentEnabled(amendment []byte) int32 {
	if len(amendment) != types.Hash256Size {
		return host.CodeInvalidParams
	}
	if e.Amendments[types.Hash256([32]byte(amendment))] {
		return 1
	}
	return 0
}

// Slots.

func (e *Env) CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	if len(keylet) != types.Hash256Size {
		return host.CodeInvalidParams
	}
	obj, ok := e.Objects[types.Hash256([32]byte(keylet))]
	if !ok {
		// A failed lookup consumes no slot.
		return host.CodeLedgerObjNotFound
	}

	if cacheNum == 0 {
		for i := int32(1); i <= ledgerobj.MaxSlots; i++ {
			if e.slots[i] == nil {
				e.slots[i] = obj
				return i
			}
		}
		return host.CodeSlotsFull
	}
	if cacheNum < 0 || cacheNum > ledgerobj.MaxSlots {
		return host.CodeSlotOutRange
	}
	e.slots[cacheNum] = obj
	return cacheNum
}

func (e *Env) slotObj(cacheNum int32) (*Fixture, int32) {
	if cacheNum < 1 || cacheNum > ledgerobj.MaxSlots {
		return nil, host.CodeSlotOutRange
	}
	if e.slots[cacheNum] == nil {
		return nil, host.CodeEmptySlot
	}
	return e.slots[cacheNum], 0
}

// UpdateData rewrites the current object's Data field in place, so reads
// issued after the update observe the new value.
func (e *Env) UpdateData(data []byte) int32 {
	if len(data) > types.ContractDataSize {
		return host.CodeDataFieldTooLarge
	}
	if e.CurrentObj == nil {
		return host.CodeInternalError
	}
	e.CurrentObj.SetBytes(sfield.Data.Code(), data)
	return 0
}

// Hashing.

func (e *Env) ComputeSha512Half(data, out []byte) int32 {
	if len(out) < types.Hash256Size {
		return host.CodeBufferTooSmall
	}
	sum := xhash.Sha512Half(data)
	copy(out, sum[:])
	return types.Hash256Size
}

// Trace.

func (e *Env) Trace(msg string, data []byte, asHex bool) int32 {
	if asHex {
		e.Traces = append(e.Traces, fmt.Sprintf("%s %X", msg, data))
	} else {
		e.Traces = append(e.Traces, fmt.Sprintf("%s %s", msg, data))
	}
	return int32(len(msg) + len(data))
}

func (e *Env) TraceNum(msg string, number int64) int32 {
	e.Traces = append(e.Traces, fmt.Sprintf("%s %d", msg, number))
	return int32(len(msg))
}

func (e *Env) TraceAccount(msg string, account []byte) int32 {
	if len(account) != types.AccountIDSize {
		return host.CodeInvalidParams
	}
	address := addresscodec.Encode([types.AccountIDSize]byte(account))
	e.Traces = append(e.Traces, fmt.Sprintf("%s %s", msg, address))
	return int32(len(msg))
}

func (e *Env) TraceOpaqueFloat(msg string, opaqueFloat []byte) int32 {
	e.Traces = append(e.Traces, fmt.Sprintf("%s %X", msg, opaqueFloat))
	return int32(len(msg))
}

func (e *Env) TraceAmount(msg string, amount []byte) int32 {
	e.Traces = append(e.Traces, fmt.Sprintf("%s %X", msg, amount))
	return int32(len(msg))
}
