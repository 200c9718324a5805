// Package host declares the raw import surface a smart-escrow contract sees.
//
// Every method mirrors one host function by name and parameter order. Byte
// slices stand in for the (pointer, length) pairs of the WASM ABI. The return
// value follows the host convention: non-negative means success (usually the
// number of bytes written to the output buffer), negative selects one of the
// error codes in errors.go.
//
// Implementations of Host must not block, retry, or have side effects beyond
// the documented one. Four interchangeable backends exist: the live wasmhost
// backend that issues real imports, the emptyhost stub, the scriptable
// hosttest environment, and the generated hostmock mock. Callers never name
// a backend.
package host

// Host is the full set of functions the ledger host exposes to a contract.
type Host interface {
	// Ledger and transaction metadata.

	// GetLedgerSqn returns the current ledger sequence number.
	GetLedgerSqn() int32
	// GetParentLedgerTime returns the parent ledger close time.
	GetParentLedgerTime() int32
	// GetParentLedgerHash writes the 32-byte parent ledger hash into out.
	GetParentLedgerHash(out []byte) int32
	// GetBaseFee returns the current base fee in drops.
	GetBaseFee() int32
	// AmendmentEnabled reports whether the amendment, given as a 32-byte hash
	// or its name, is enabled. Returns 0 or 1.
	AmendmentEnabled(amendment []byte) int32

	// Ledger-object caching.

	// CacheLedgerObj resolves keylet to a ledger object and caches it. A
	// cacheNum of 0 allocates the next free slot; a non-zero cacheNum
	// replaces that slot. Returns the slot number used.
	CacheLedgerObj(keylet []byte, cacheNum int32) int32

	// Field getters.

	GetTxField(field int32, out []byte) int32
	GetCurrentLedgerObjField(field int32, out []byte) int32
	GetLedgerObjField(cacheNum int32, field int32, out []byte) int32
	GetTxNestedField(locator, out []byte) int32
	GetCurrentLedgerObjNestedField(locator, out []byte) int32
	GetLedgerObjNestedField(cacheNum int32, locator, out []byte) int32
	GetTxArrayLen(field int32) int32
	GetCurrentLedgerObjArrayLen(field int32) int32
	GetLedgerObjArrayLen(cacheNum int32, field int32) int32
	GetTxNestedArrayLen(locator []byte) int32
	GetCurrentLedgerObjNestedArrayLen(locator []byte) int32
	GetLedgerObjNestedArrayLen(cacheNum int32, locator []byte) int32

	// UpdateData replaces the Data field of the current ledger object. This
	// is the only mutation a contract may perform. Returns 0 on success.
	UpdateData(data []byte) int32

	// Hashing and signatures.

	// ComputeSha512Half writes the first 32 bytes of SHA-512(data) into out.
	ComputeSha512Half(data, out []byte) int32
	// CheckSig verifies signature over message with pubkey. Returns 1 for a
	// valid signature, 0 for an invalid one.
	CheckSig(message, signature, pubkey []byte) int32

	// Keylet derivation. Each call writes a 32-byte keylet into out and
	// returns the number of bytes written.

	AccountKeylet(account, out []byte) int32
	AmmKeylet(issue1, issue2, out []byte) int32
	CheckKeylet(account []byte, sequence int32, out []byte) int32
	CredentialKeylet(subject, issuer, credType, out []byte) int32
	DelegateKeylet(account, authorize, out []byte) int32
	DepositPreauthKeylet(account, authorize, out []byte) int32
	DidKeylet(account, out []byte) int32
	EscrowKeylet(account []byte, sequence int32, out []byte) int32
	LineKeylet(account1, account2, currency, out []byte) int32
	MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32
	MptokenKeylet(mptID, holder, out []byte) int32
	NftOfferKeylet(account []byte, sequence int32, out []byte) int32
	OfferKeylet(account []byte, sequence int32, out []byte) int32
	OracleKeylet(account []byte, documentID int32, out []byte) int32
	PaychanKeylet(account, destination []byte, sequence int32, out []byte) int32
	PermissionedDomainKeylet(account []byte, sequence int32, out []byte) int32
	SignersKeylet(account, out []byte) int32
	TicketKeylet(account []byte, sequence int32, out []byte) int32
	VaultKeylet(account []byte, sequence int32, out []byte) int32

	// NFT.

	// GetNFT writes the URI of the NFT owned by account into out.
	GetNFT(account, nftID, out []byte) int32
	GetNFTIssuer(nftID, out []byte) int32
	GetNFTTaxon(nftID, out []byte) int32
	GetNFTFlags(nftID []byte) int32
	GetNFTTransferFee(nftID []byte) int32
	GetNFTSerial(nftID, out []byte) int32

	// Host-backed decimal float arithmetic. Values are opaque 8-byte
	// handles; roundingMode is one of the Round* constants.

	FloatFromInt(value int64, out []byte, roundingMode int32) int32
	FloatFromUint(value, out []byte, roundingMode int32) int32
	FloatSet(exponent int32, mantissa int64, out []byte, roundingMode int32) int32
	FloatCompare(a, b []byte) int32
	FloatAdd(a, b, out []byte, roundingMode int32) int32
	FloatSubtract(a, b, out []byte, roundingMode int32) int32
	FloatMultiply(a, b, out []byte, roundingMode int32) int32
	FloatDivide(a, b, out []byte, roundingMode int32) int32
	FloatPow(in []byte, n int32, out []byte, roundingMode int32) int32
	FloatRoot(in []byte, n int32, out []byte, roundingMode int32) int32
	FloatLog(in, out []byte, roundingMode int32) int32

	// Trace logging. Visible on hosts running at trace log level.

	// Trace logs msg followed by data, rendered as hex when asHex is true.
	Trace(msg string, data []byte, asHex bool) int32
	TraceNum(msg string, number int64) int32
	TraceAccount(msg string, account []byte) int32
	TraceOpaqueFloat(msg string, opaqueFloat []byte) int32
	TraceAmount(msg string, amount []byte) int32
}

// Rounding modes for the float operations.
const (
	RoundToNearest int32 = iota
	RoundTowardsZero
	RoundDownward
	RoundUpward
)

// FloatCompare results.
const (
	FloatEqual   int32 = 0
	FloatGreater int32 = 1
	FloatLess    int32 = 2
)
