package ledgerobj

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/fieldcodec"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Escrow ledger entry type code.
const LedgerEntryTypeEscrow uint16 = 0x0075

// CurrentEscrow is the escrow entry the executing contract is the
// FinishFunction of. Its field set mirrors the Escrow ledger entry.
type CurrentEscrow struct {
	Current
}

// CurrentEscrowObject binds the current-escrow accessor to a host.
func CurrentEscrowObject(h host.Host) CurrentEscrow {
	return CurrentEscrow{Current{h: h}}
}

// Account is the account that funded the escrow.
func (e CurrentEscrow) Account() (types.AccountID, error) {
	return GetCurrentField(e.Current, sfield.Account)
}

// Amount is the escrowed value.
func (e CurrentEscrow) Amount() (types.Amount, error) {
	return GetCurrentField(e.Current, sfield.Amount)
}

func (e CurrentEscrow) CancelAfter() (uint32, bool, error) {
	return GetCurrentFieldOptional(e.Current, sfield.CancelAfter)
}

func (e CurrentEscrow) Condition() (types.Blob, bool, error) {
	return fieldcodec.GetBlobOptional(e.get, sfield.Condition, types.ConditionBlobSize)
}

func (e CurrentEscrow) Destination() (types.AccountID, error) {
	return GetCurrentField(e.Current, sfield.Destination)
}

func (e CurrentEscrow) DestinationNode() (uint64, bool, error) {
	return GetCurrentFieldOptional(e.Current, sfield.DestinationNode)
}

func (e CurrentEscrow) DestinationTag() (uint32, bool, error) {
	return GetCurrentFieldOptional(e.Current, sfield.DestinationTag)
}

func (e CurrentEscrow) FinishAfter() (uint32, bool, error) {
	return GetCurrentFieldOptional(e.Current, sfield.FinishAfter)
}

func (e CurrentEscrow) OwnerNode() (uint64, error) {
	return GetCurrentField(e.Current, sfield.OwnerNode)
}

func (e CurrentEscrow) PreviousTxnID() (types.Hash256, error) {
	return GetCurrentField(e.Current, sfield.PreviousTxnID)
}

func (e CurrentEscrow) PreviousTxnLgrSeq() (uint32, error) {
	return GetCurrentField(e.Current, sfield.PreviousTxnLgrSeq)
}

func (e CurrentEscrow) SourceTag() (uint32, bool, error) {
	return GetCurrentFieldOptional(e.Current, sfield.SourceTag)
}

// FinishFunction is the WASM module guarding this escrow.
func (e CurrentEscrow) FinishFunction() (types.Blob, bool, error) {
	return fieldcodec.GetBlobOptional(e.get, sfield.FinishFunction, types.DefaultBlobSize)
}

// Data returns the contract's scratch state. An escrow with no Data field
// yields an empty ContractData.
func (e CurrentEscrow) Data() (types.ContractData, error) {
	blob, present, err := fieldcodec.GetBlobOptional(e.get, sfield.Data, types.ContractDataSize)
	if err != nil {
		return types.ContractData{}, err
	}
	if !present {
		return types.ContractData{}, nil
	}
	return types.NewContractData(blob)
}

// UpdateData replaces the escrow's Data field. The new value is visible to
// subsequent reads within the same execution.
func (e CurrentEscrow) UpdateData(data types.ContractData) error {
	return host.ResultOK(e.h.UpdateData(data.Bytes()))
}

// EscrowObject wraps a cached ledger object known to be an escrow entry.
type EscrowObject struct {
	Object
}

// CacheEscrow caches the escrow at the given keylet.
func CacheEscrow(h host.Host, keylet types.Hash256) (EscrowObject, error) {
	o, err := Cache(h, keylet)
	if err != nil {
		return EscrowObject{}, err
	}
	return EscrowObject{o}, nil
}

func (e EscrowObject) Account() (types.AccountID, error) {
	return GetObjField(e.Object, sfield.Account)
}

func (e EscrowObject) Amount() (types.Amount, error) {
	return GetObjField(e.Object, sfield.Amount)
}

func (e EscrowObject) CancelAfter() (uint32, bool, error) {
	return GetObjFieldOptional(e.Object, sfield.CancelAfter)
}

func (e EscrowObject) Condition() (types.Blob, bool, error) {
	return fieldcodec.GetBlobOptional(e.get, sfield.Condition, types.ConditionBlobSize)
}

func (e EscrowObject) Destination() (types.AccountID, error) {
	return GetObjField(e.Object, sfield.Destination)
}

func (e EscrowObject) FinishAfter() (uint32, bool, error) {
	return GetObjFieldOptional(e.Object, sfield.FinishAfter)
}

func (e EscrowObject) PreviousTxnID() (types.Hash256, error) {
	return GetObjField(e.Object, sfield.PreviousTxnID)
}

func (e EscrowObject) Data() (types.ContractData, error) {
	blob, present, err := fieldcodec.GetBlobOptional(e.get, sfield.Data, types.ContractDataSize)
	if err != nil {
		return types.ContractData{}, err
	}
	if !present {
		return types.ContractData{}, nil
	}
	return types.NewContractData(blob)
}
