// Package emptyhost is the stub backend of host.Host. Every call succeeds
// without touching ledger state: buffer-filling calls report the full buffer
// length as written and leave the buffer zeroed, scalar getters return zero.
// It exists so pure glue code can be exercised outside a WASM host.
package emptyhost

import "github.com/LeJamon/goXRPLwasm/host"

// Host is the always-empty backend. The zero value is ready to use.
type Host struct{}

var _ host.Host = Host{}

func (Host) GetLedgerSqn() int32                   { return 0 }
func (Host) GetParentLedgerTime() int32            { return 0 }
func (Host) GetParentLedgerHash(out []byte) int32  { return int32(len(out)) }
func (Host) GetBaseFee() int32                     { return 0 }
func (Host) AmendmentEnabled(_ []byte) int32       { return 0 }

func (Host) CacheLedgerObj(_ []byte, _ int32) int32 { return 0 }

func (Host) GetTxField(_ int32, out []byte) int32                      { return int32(len(out)) }
func (Host) GetCurrentLedgerObjField(_ int32, out []byte) int32        { return int32(len(out)) }
func (Host) GetLedgerObjField(_, _ int32, out []byte) int32            { return int32(len(out)) }
func (Host) GetTxNestedField(_, out []byte) int32                      { return int32(len(out)) }
func (Host) GetCurrentLedgerObjNestedField(_, out []byte) int32        { return int32(len(out)) }
func (Host) GetLedgerObjNestedField(_ int32, _, out []byte) int32      { return int32(len(out)) }
func (Host) GetTxArrayLen(_ int32) int32                               { return 0 }
func (Host) GetCurrentLedgerObjArrayLen(_ int32) int32                 { return 0 }
func (Host) GetLedgerObjArrayLen(_, _ int32) int32                     { return 0 }
func (Host) GetTxNestedArrayLen(_ []byte) int32                        { return 0 }
func (Host) GetCurrentLedgerObjNestedArrayLen(_ []byte) int32          { return 0 }
func (Host) GetLedgerObjNestedArrayLen(_ int32, _ []byte) int32        { return 0 }

func (Host) UpdateData(_ []byte) int32 { return 0 }

func (Host) ComputeSha512Half(_, out []byte) int32 { return int32(len(out)) }
func (Host) CheckSig(_, _, _ []byte) int32         { return 0 }

func (Host) AccountKeylet(_, out []byte) int32                         { return int32(len(out)) }
func (Host) AmmKeylet(_, _, out []byte) int32                          { return int32(len(out)) }
func (Host) CheckKeylet(_ []byte, _ int32, out []byte) int32           { return int32(len(out)) }
func (Host) CredentialKeylet(_, _, _, out []byte) int32                { return int32(len(out)) }
func (Host) DelegateKeylet(_, _, out []byte) int32                     { return int32(len(out)) }
func (Host) DepositPreauthKeylet(_, _, out []byte) int32               { return int32(len(out)) }
func (Host) DidKeylet(_, out []byte) int32                             { return int32(len(out)) }
func (Host) EscrowKeylet(_ []byte, _ int32, out []byte) int32          { return int32(len(out)) }
func (Host) LineKeylet(_, _, _, out []byte) int32                      { return int32(len(out)) }
func (Host) MptIssuanceKeylet(_ []byte, _ int32, out []byte) int32     { return int32(len(out)) }
func (Host) MptokenKeylet(_, _, out []byte) int32                      { return int32(len(out)) }
func (Host) NftOfferKeylet(_ []byte, _ int32, out []byte) int32        { return int32(len(out)) }
func (Host) OfferKeylet(_ []byte, _ int32, out []byte) int32           { return int32(len(out)) }
func (Host) OracleKeylet(_ []byte, _ int32, out []byte) int32          { return int32(len(out)) }
func (Host) PaychanKeylet(_, _ []byte, _ int32, out []byte) int32      { return int32(len(out)) }
func (Host) PermissionedDomainKeylet(_ []byte, _ int32, out []byte) int32 {
	return int32(len(out))
}
func (Host) SignersKeylet(_, out []byte) int32                { return int32(len(out)) }
func (Host) TicketKeylet(_ []byte, _ int32, out []byte) int32 { return int32(len(out)) }
func (Host) VaultKeylet(_ []byte, _ int32, out []byte) int32  { return int32(len(out)) }

func (Host) GetNFT(_, _, out []byte) int32       { return int32(len(out)) }
func (Host) GetNFTIssuer(_, out []byte) int32    { return int32(len(out)) }
func (Host) GetNFTTaxon(_, out []byte) int32     { return int32(len(out)) }
func (Host) GetNFTFlags(_ []byte) int32          { return 0 }
func (Host) GetNFTTransferFee(_ []byte) int32    { return 0 }
func (Host) GetNFTSerial(_, out []byte) int32    { return int32(len(out)) }

func (Host) FloatFromInt(_ int64, out []byte, _ int32) int32            { return int32(len(out)) }
func (Host) FloatFromUint(_, out []byte, _ int32) int32                 { return int32(len(out)) }
func (Host) FloatSet(_ int32, _ int64, out []byte, _ int32) int32       { return int32(len(out)) }
func (Host) FloatCompare(_, _ []byte) int32                             { return host.FloatEqual }
func (Host) FloatAdd(_, _, out []byte, _ int32) int32                   { return int32(len(out)) }
func (Host) FloatSubtract(_, _, out []byte, _ int32) int32              { return int32(len(out)) }
func (Host) FloatMultiply(_, _, out []byte, _ int32) int32              { return int32(len(out)) }
func (Host) FloatDivide(_, _, out []byte, _ int32) int32                { return int32(len(out)) }
func (Host) FloatPow(_ []byte, _ int32, out []byte, _ int32) int32      { return int32(len(out)) }
func (Host) FloatRoot(_ []byte, _ int32, out []byte, _ int32) int32     { return int32(len(out)) }
func (Host) FloatLog(_, out []byte, _ int32) int32                      { return int32(len(out)) }

func (Host) Trace(msg string, _ []byte, _ bool) int32      { return int32(len(msg)) }
func (Host) TraceNum(msg string, _ int64) int32            { return int32(len(msg)) }
func (Host) TraceAccount(msg string, _ []byte) int32       { return int32(len(msg)) }
func (Host) TraceOpaqueFloat(msg string, _ []byte) int32   { return int32(len(msg)) }
func (Host) TraceAmount(msg string, _ []byte) int32        { return int32(len(msg)) }
