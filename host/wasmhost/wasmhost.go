//go:build wasip1

// Package wasmhost binds host.Host to the real host functions a deployed
// contract runs against. Each method forwards its byte slices as the
// (pointer, length) pairs of the WASM ABI; the host writes results directly
// into the caller's buffers.
package wasmhost

import (
	"unsafe"

	"github.com/LeJamon/goXRPLwasm/host"
)

// Host issues real host imports. The zero value is ready to use.
type Host struct{}

var _ host.Host = Host{}

// zero backs the pointer handed to the host for empty slices.
var zero byte

func ptr(b []byte) unsafe.Pointer {
	if len(b) == 0 {
		return unsafe.Pointer(&zero)
	}
	return unsafe.Pointer(unsafe.SliceData(b))
}

func strPtr(s string) unsafe.Pointer {
	if len(s) == 0 {
		return unsafe.Pointer(&zero)
	}
	return unsafe.Pointer(unsafe.StringData(s))
}

//go:wasmimport host_lib get_ledger_sqn
func getLedgerSqn() int32

//go:wasmimport host_lib get_parent_ledger_time
func getParentLedgerTime() int32

//go:wasmimport host_lib get_parent_ledger_hash
func getParentLedgerHash(outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_base_fee
func getBaseFee() int32

//go:wasmimport host_lib amendment_enabled
func amendmentEnabled(amendmentPtr unsafe.Pointer, amendmentLen uint32) int32

//go:wasmimport host_lib cache_ledger_obj
func cacheLedgerObj(keyletPtr unsafe.Pointer, keyletLen uint32, cacheNum int32) int32

//go:wasmimport host_lib get_tx_field
func getTxField(field int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_field
func getCurrentLedgerObjField(field int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_field
func getLedgerObjField(cacheNum int32, field int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_tx_nested_field
func getTxNestedField(locPtr unsafe.Pointer, locLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_nested_field
func getCurrentLedgerObjNestedField(locPtr unsafe.Pointer, locLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_nested_field
func getLedgerObjNestedField(cacheNum int32, locPtr unsafe.Pointer, locLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_tx_array_len
func getTxArrayLen(field int32) int32

//go:wasmimport host_lib get_current_ledger_obj_array_len
func getCurrentLedgerObjArrayLen(field int32) int32

//go:wasmimport host_lib get_ledger_obj_array_len
func getLedgerObjArrayLen(cacheNum int32, field int32) int32

//go:wasmimport host_lib get_tx_nested_array_len
func getTxNestedArrayLen(locPtr unsafe.Pointer, locLen uint32) int32

//go:wasmimport host_lib get_current_ledger_obj_nested_array_len
func getCurrentLedgerObjNestedArrayLen(locPtr unsafe.Pointer, locLen uint32) int32

//go:wasmimport host_lib get_ledger_obj_nested_array_len
func getLedgerObjNestedArrayLen(cacheNum int32, locPtr unsafe.Pointer, locLen uint32) int32

//go:wasmimport host_lib update_data
func updateData(dataPtr unsafe.Pointer, dataLen uint32) int32

//go:wasmimport host_lib compute_sha512_half
func computeSha512Half(dataPtr unsafe.Pointer, dataLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib check_sig
func checkSig(msgPtr unsafe.Pointer, msgLen uint32, sigPtr unsafe.Pointer, sigLen uint32, keyPtr unsafe.Pointer, keyLen uint32) int32

//go:wasmimport host_lib account_keylet
func accountKeylet(acctPtr unsafe.Pointer, acctLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib amm_keylet
func ammKeylet(i1Ptr unsafe.Pointer, i1Len uint32, i2Ptr unsafe.Pointer, i2Len uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib check_keylet
func checkKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib credential_keylet
func credentialKeylet(subjPtr unsafe.Pointer, subjLen uint32, issPtr unsafe.Pointer, issLen uint32, typePtr unsafe.Pointer, typeLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib delegate_keylet
func delegateKeylet(acctPtr unsafe.Pointer, acctLen uint32, authPtr unsafe.Pointer, authLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib deposit_preauth_keylet
func depositPreauthKeylet(acctPtr unsafe.Pointer, acctLen uint32, authPtr unsafe.Pointer, authLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib did_keylet
func didKeylet(acctPtr unsafe.Pointer, acctLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib escrow_keylet
func escrowKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib line_keylet
func lineKeylet(a1Ptr unsafe.Pointer, a1Len uint32, a2Ptr unsafe.Pointer, a2Len uint32, curPtr unsafe.Pointer, curLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib mpt_issuance_keylet
func mptIssuanceKeylet(issPtr unsafe.Pointer, issLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib mptoken_keylet
func mptokenKeylet(idPtr unsafe.Pointer, idLen uint32, holderPtr unsafe.Pointer, holderLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib nft_offer_keylet
func nftOfferKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib offer_keylet
func offerKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib oracle_keylet
func oracleKeylet(acctPtr unsafe.Pointer, acctLen uint32, documentID int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib paychan_keylet
func paychanKeylet(acctPtr unsafe.Pointer, acctLen uint32, dstPtr unsafe.Pointer, dstLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib permissioned_domain_keylet
func permissionedDomainKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib signers_keylet
func signersKeylet(acctPtr unsafe.Pointer, acctLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib ticket_keylet
func ticketKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib vault_keylet
func vaultKeylet(acctPtr unsafe.Pointer, acctLen uint32, sequence int32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft
func getNFT(acctPtr unsafe.Pointer, acctLen uint32, idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft_issuer
func getNFTIssuer(idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft_taxon
func getNFTTaxon(idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib get_nft_flags
func getNFTFlags(idPtr unsafe.Pointer, idLen uint32) int32

//go:wasmimport host_lib get_nft_transfer_fee
func getNFTTransferFee(idPtr unsafe.Pointer, idLen uint32) int32

//go:wasmimport host_lib get_nft_serial
func getNFTSerial(idPtr unsafe.Pointer, idLen uint32, outPtr unsafe.Pointer, outLen uint32) int32

//go:wasmimport host_lib float_from_int
func floatFromInt(value int64, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_from_uint
func floatFromUint(inPtr unsafe.Pointer, inLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_set
func floatSet(exponent int32, mantissa int64, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_compare
func floatCompare(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32) int32

//go:wasmimport host_lib float_add
func floatAdd(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_subtract
func floatSubtract(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_multiply
func floatMultiply(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_divide
func floatDivide(aPtr unsafe.Pointer, aLen uint32, bPtr unsafe.Pointer, bLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_pow
func floatPow(inPtr unsafe.Pointer, inLen uint32, n int32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_root
func floatRoot(inPtr unsafe.Pointer, inLen uint32, n int32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib float_log
func floatLog(inPtr unsafe.Pointer, inLen uint32, outPtr unsafe.Pointer, outLen uint32, roundingMode int32) int32

//go:wasmimport host_lib trace
func hostTrace(msgPtr unsafe.Pointer, msgLen uint32, dataPtr unsafe.Pointer, dataLen uint32, asHex int32) int32

//go:wasmimport host_lib trace_num
func hostTraceNum(msgPtr unsafe.Pointer, msgLen uint32, number int64) int32

//go:wasmimport host_lib trace_account
func hostTraceAccount(msgPtr unsafe.Pointer, msgLen uint32, acctPtr unsafe.Pointer, acctLen uint32) int32

//go:wasmimport host_lib trace_opaque_float
func hostTraceOpaqueFloat(msgPtr unsafe.Pointer, msgLen uint32, fPtr unsafe.Pointer, fLen uint32) int32

//go:wasmimport host_lib trace_amount
func hostTraceAmount(msgPtr unsafe.Pointer, msgLen uint32, amtPtr unsafe.Pointer, amtLen uint32) int32

func (Host) GetLedgerSqn() int32        { return getLedgerSqn() }
func (Host) GetParentLedgerTime() int32 { return getParentLedgerTime() }
func (Host) GetBaseFee() int32          { return getBaseFee() }

func (Host) GetParentLedgerHash(out []byte) int32 {
	return getParentLedgerHash(ptr(out), uint32(len(out)))
}

func (Host) AmendmentEnabled(amendment []byte) int32 {
	return amendmentEnabled(ptr(amendment), uint32(len(amendment)))
}

func (Host) CacheLedgerObj(keylet []byte, cacheNum int32) int32 {
	return cacheLedgerObj(ptr(keylet), uint32(len(keylet)), cacheNum)
}

func (Host) GetTxField(field int32, out []byte) int32 {
	return getTxField(field, ptr(out), uint32(len(out)))
}

func (Host) GetCurrentLedgerObjField(field int32, out []byte) int32 {
	return getCurrentLedgerObjField(field, ptr(out), uint32(len(out)))
}

func (Host) GetLedgerObjField(cacheNum int32, field int32, out []byte) int32 {
	return getLedgerObjField(cacheNum, field, ptr(out), uint32(len(out)))
}

func (Host) GetTxNestedField(locator, out []byte) int32 {
	return getTxNestedField(ptr(locator), uint32(len(locator)), ptr(out), uint32(len(out)))
}

func (Host) GetCurrentLedgerObjNestedField(locator, out []byte) int32 {
	return getCurrentLedgerObjNestedField(ptr(locator), uint32(len(locator)), ptr(out), uint32(len(out)))
}

func (Host) GetLedgerObjNestedField(cacheNum int32, locator, out []byte) int32 {
	return getLedgerObjNestedField(cacheNum, ptr(locator), uint32(len(locator)), ptr(out), uint32(len(out)))
}

func (Host) GetTxArrayLen(field int32) int32 {
	return getTxArrayLen(field)
}

func (Host) GetCurrentLedgerObjArrayLen(field int32) int32 {
	return getCurrentLedgerObjArrayLen(field)
}

func (Host) GetLedgerObjArrayLen(cacheNum int32, field int32) int32 {
	return getLedgerObjArrayLen(cacheNum, field)
}

func (Host) GetTxNestedArrayLen(locator []byte) int32 {
	return getTxNestedArrayLen(ptr(locator), uint32(len(locator)))
}

func (Host) GetCurrentLedgerObjNestedArrayLen(locator []byte) int32 {
	return getCurrentLedgerObjNestedArrayLen(ptr(locator), uint32(len(locator)))
}

func (Host) GetLedgerObjNestedArrayLen(cacheNum int32, locator []byte) int32 {
	return getLedgerObjNestedArrayLen(cacheNum, ptr(locator), uint32(len(locator)))
}

func (Host) UpdateData(data []byte) int32 {
	return updateData(ptr(data), uint32(len(data)))
}

func (Host) ComputeSha512Half(data, out []byte) int32 {
	return computeSha512Half(ptr(data), uint32(len(data)), ptr(out), uint32(len(out)))
}

func (Host) CheckSig(message, signature, pubkey []byte) int32 {
	return checkSig(ptr(message), uint32(len(message)), ptr(signature), uint32(len(signature)), ptr(pubkey), uint32(len(pubkey)))
}

func (Host) AccountKeylet(account, out []byte) int32 {
	return accountKeylet(ptr(account), uint32(len(account)), ptr(out), uint32(len(out)))
}

func (Host) AmmKeylet(issue1, issue2, out []byte) int32 {
	return ammKeylet(ptr(issue1), uint32(len(issue1)), ptr(issue2), uint32(len(issue2)), ptr(out), uint32(len(out)))
}

func (Host) CheckKeylet(account []byte, sequence int32, out []byte) int32 {
	return checkKeylet(ptr(account), uint32(len(account)), sequence, ptr(out), uint32(len(out)))
}

func (Host) CredentialKeylet(subject, issuer, credType, out []byte) int32 {
	return credentialKeylet(ptr(subject), uint32(len(subject)), ptr(issuer), uint32(len(issuer)), ptr(credType), uint32(len(credType)), ptr(out), uint32(len(out)))
}

func (Host) DelegateKeylet(account, authorize, out []byte) int32 {
	return delegateKeylet(ptr(account), uint32(len(account)), ptr(authorize), uint32(len(authorize)), ptr(out), uint32(len(out)))
}

func (Host) DepositPreauthKeylet(account, authorize, out []byte) int32 {
	return depositPreauthKeylet(ptr(account), uint32(len(account)), ptr(authorize), uint32(len(authorize)), ptr(out), uint32(len(out)))
}

func (Host) DidKeylet(account, out []byte) int32 {
	return didKeylet(ptr(account), uint32(len(account)), ptr(out), uint32(len(out)))
}

func (Host) EscrowKeylet(account []byte, sequence int32, out []byte) int32 {
	return escrowKeylet(ptr(account), uint32(len(account)), sequence, ptr(out), uint32(len(out)))
}

func (Host) LineKeylet(account1, account2, currency, out []byte) int32 {
	return lineKeylet(ptr(account1), uint32(len(account1)), ptr(account2), uint32(len(account2)), ptr(currency), uint32(len(currency)), ptr(out), uint32(len(out)))
}

func (Host) MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	return mptIssuanceKeylet(ptr(issuer), uint32(len(issuer)), sequence, ptr(out), uint32(len(out)))
}

func (Host) MptokenKeylet(mptID, holder, out []byte) int32 {
	return mptokenKeylet(ptr(mptID), uint32(len(mptID)), ptr(holder), uint32(len(holder)), ptr(out), uint32(len(out)))
}

func (Host) NftOfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return nftOfferKeylet(ptr(account), uint32(len(account)), sequence, ptr(out), uint32(len(out)))
}

func (Host) OfferKeylet(account []byte, sequence int32, out []byte) int32 {
	return offerKeylet(ptr(account), uint32(len(account)), sequence, ptr(out), uint32(len(out)))
}

func (Host) OracleKeylet(account []byte, documentID int32, out []byte) int32 {
	return oracleKeylet(ptr(account), uint32(len(account)), documentID, ptr(out), uint32(len(out)))
}

func (Host) PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32 {
	return paychanKeylet(ptr(account), uint32(len(account)), ptr(destination), uint32(len(destination)), sequence, ptr(out), uint32(len(out)))
}

func (Host) PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32 {
	return permissionedDomainKeylet(ptr(account), uint32(len(account)), sequence, ptr(out), uint32(len(out)))
}

func (Host) SignersKeylet(account, out []byte) int32 {
	return signersKeylet(ptr(account), uint32(len(account)), ptr(out), uint32(len(out)))
}

func (Host) TicketKeylet(account []byte, sequence int32, out []byte) int32 {
	return ticketKeylet(ptr(account), uint32(len(account)), sequence, ptr(out), uint32(len(out)))
}

func (Host) VaultKeylet(account []byte, sequence int32, out []byte) int32 {
	return vaultKeylet(ptr(account), uint32(len(account)), sequence, ptr(out), uint32(len(out)))
}

func (Host) GetNFT(account, nftID, out []byte) int32 {
	return getNFT(ptr(account), uint32(len(account)), ptr(nftID), uint32(len(nftID)), ptr(out), uint32(len(out)))
}

func (Host) GetNFTIssuer(nftID, out []byte) int32 {
	return getNFTIssuer(ptr(nftID), uint32(len(nftID)), ptr(out), uint32(len(out)))
}

func (Host) GetNFTTaxon(nftID, out []byte) int32 {
	return getNFTTaxon(ptr(nftID), uint32(len(nftID)), ptr(out), uint32(len(out)))
}

func (Host) GetNFTFlags(nftID []byte) int32 {
	return getNFTFlags(ptr(nftID), uint32(len(nftID)))
}

func (Host) GetNFTTransferFee(nftID []byte) int32 {
	return getNFTTransferFee(ptr(nftID), uint32(len(nftID)))
}

func (Host) GetNFTSerial(nftID, out []byte) int32 {
	return getNFTSerial(ptr(nftID), uint32(len(nftID)), ptr(out), uint32(len(out)))
}

func (Host) FloatFromInt(value int64, out []byte, roundingMode int32) int32 {
	return floatFromInt(value, ptr(out), uint32(len(out)), roundingMode)
}

func (Host) FloatFromUint(value, out []byte, roundingMode int32) int32 {
	return floatFromUint(ptr(value), uint32(len(value)), ptr(out), uint32(len(out)), roundingMode)
}

func (Host) FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32 {
	return floatSet(exponent, mantissa, ptr(out), uint32(len(out)), roundingMode)
}

func (Host) FloatCompare(a, b []byte) int32 {
	return floatCompare(ptr(a), uint32(len(a)), ptr(b), uint32(len(b)))
}

func (Host) FloatAdd(a, b, out []byte, roundingMode int32) int32 {
	return floatAdd(ptr(a), uint32(len(a)), ptr(b), uint32(len(b)), ptr(out), uint32(len(out)), roundingMode)
}

func (Host) FloatSubtract(a, b, out []byte, roundingMode int32) int32 {
	return floatSubtract(ptr(a), uint32(len(a)), ptr(b), uint32(len(b)), ptr(out), uint32(len(out)), roundingMode)
}

func (Host) FloatMultiply(a, b, out []byte, roundingMode int32) int32 {
	return floatMultiply(ptr(a), uint32(len(a)), ptr(b), uint32(len(b)), ptr(out), uint32(len(out)), roundingMode)
}

func (Host) FloatDivide(a, b, out []byte, roundingMode int32) int32 {
	return floatDivide(ptr(a), uint32(len(a)), ptr(b), uint32(len(b)), ptr(out), uint32(len(out)), roundingMode)
}

func (Host) FloatPow(in []byte, n int32, out []byte, roundingMode int32) int32 {
	return floatPow(ptr(in), uint32(len(in)), n, ptr(out), uint32(len(out)), roundingMode)
}

func (Host) FloatRoot(in []byte, n int32, out []byte, roundingMode int32) int32 {
	return floatRoot(ptr(in), uint32(len(in)), n, ptr(out), uint32(len(out)), roundingMode)
}

func (Host) FloatLog(in, out []byte, roundingMode int32) int32 {
	return floatLog(ptr(in), uint32(len(in)), ptr(out), uint32(len(out)), roundingMode)
}

func (Host) Trace(msg string, data []byte, asHex bool) int32 {
	hex := int32(0)
	if asHex {
		hex = 1
	}
	return hostTrace(strPtr(msg), uint32(len(msg)), ptr(data), uint32(len(data)), hex)
}

func (Host) TraceNum(msg string, number int64) int32 {
	return hostTraceNum(strPtr(msg), uint32(len(msg)), number)
}

func (Host) TraceAccount(msg string, account []byte) int32 {
	return hostTraceAccount(strPtr(msg), uint32(len(msg)), ptr(account), uint32(len(account)))
}

func (Host) TraceOpaqueFloat(msg string, opaqueFloat []byte) int32 {
	return hostTraceOpaqueFloat(strPtr(msg), uint32(len(msg)), ptr(opaqueFloat), uint32(len(opaqueFloat)))
}

func (Host) TraceAmount(msg string, amount []byte) int32 {
	return hostTraceAmount(strPtr(msg), uint32(len(msg)), ptr(amount), uint32(len(amount)))
}
