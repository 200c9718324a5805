// Package sfield defines the serialized-field descriptors of the ledger
// protocol. A field code packs a serialization-type tag and a per-type
// ordinal into one sortable 32-bit key; ordering descriptors by code
// reproduces the canonical on-wire field order.
package sfield

import "github.com/LeJamon/goXRPLwasm/types"

// Code is a raw 32-bit field code: type tag in the high 16 bits, ordinal in
// the low 16.
type Code int32

// TypeTag returns the serialization-type part of the code.
func (c Code) TypeTag() int32 { return int32(c) >> 16 }

// Ordinal returns the per-type ordinal part of the code.
func (c Code) Ordinal() int32 { return int32(c) & 0xFFFF }

// Field binds a decoded Go type to a field code at compile time. Requesting
// a field through a descriptor of the wrong type does not compile, which
// keeps the "asked for an Amount as a Hash256" class of bug out of runtime.
type Field[T any] Code

// Code returns the raw field code.
func (f Field[T]) Code() Code { return Code(f) }

// UInt16 fields.
const (
	LedgerEntryType Field[uint16] = 65537
	TransactionType Field[uint16] = 65538
	SignerWeight    Field[uint16] = 65539
	TransferFee     Field[uint16] = 65540
	TradingFee      Field[uint16] = 65541
	DiscountedFee   Field[uint16] = 65542
	Version         Field[uint16] = 65552
	LedgerFixType   Field[uint16] = 65557
)

// UInt32 fields.
const (
	NetworkID            Field[uint32] = 131073
	Flags                Field[uint32] = 131074
	SourceTag            Field[uint32] = 131075
	Sequence             Field[uint32] = 131076
	PreviousTxnLgrSeq    Field[uint32] = 131077
	LedgerSequence       Field[uint32] = 131078
	CloseTime            Field[uint32] = 131079
	ParentCloseTime      Field[uint32] = 131080
	SigningTime          Field[uint32] = 131081
	Expiration           Field[uint32] = 131082
	TransferRate         Field[uint32] = 131083
	WalletSize           Field[uint32] = 131084
	OwnerCount           Field[uint32] = 131085
	DestinationTag       Field[uint32] = 131086
	LastUpdateTime       Field[uint32] = 131087
	HighQualityIn        Field[uint32] = 131088
	HighQualityOut       Field[uint32] = 131089
	LowQualityIn         Field[uint32] = 131090
	LowQualityOut        Field[uint32] = 131091
	QualityIn            Field[uint32] = 131092
	QualityOut           Field[uint32] = 131093
	OfferSequence        Field[uint32] = 131097
	FirstLedgerSequence  Field[uint32] = 131098
	LastLedgerSequence   Field[uint32] = 131099
	TransactionIndex     Field[uint32] = 131100
	OperationLimit       Field[uint32] = 131101
	ReferenceFeeUnits    Field[uint32] = 131102
	ReserveBase          Field[uint32] = 131103
	ReserveIncrement     Field[uint32] = 131104
	SetFlag              Field[uint32] = 131105
	ClearFlag            Field[uint32] = 131106
	SignerQuorum         Field[uint32] = 131107
	CancelAfter          Field[uint32] = 131108
	FinishAfter          Field[uint32] = 131109
	SignerListID         Field[uint32] = 131110
	SettleDelay          Field[uint32] = 131111
	TicketCount          Field[uint32] = 131112
	TicketSequence       Field[uint32] = 131113
	NFTokenTaxon         Field[uint32] = 131114
	MintedNFTokens       Field[uint32] = 131115
	BurnedNFTokens       Field[uint32] = 131116
	EmitGeneration       Field[uint32] = 131118
	VoteWeight           Field[uint32] = 131120
	FirstNFTokenSequence Field[uint32] = 131122
	OracleDocumentID     Field[uint32] = 131123
	PermissionValue      Field[uint32] = 131124
	MutableFlags         Field[uint32] = 131125
	ExtensionComputeLimit Field[uint32] = 131126
	ExtensionSizeLimit   Field[uint32] = 131127
	GasPrice             Field[uint32] = 131128
	ComputationAllowance Field[uint32] = 131129
	GasUsed              Field[uint32] = 131130
)

// UInt64 fields.
const (
	IndexNext         Field[uint64] = 196609
	IndexPrevious     Field[uint64] = 196610
	BookNode          Field[uint64] = 196611
	OwnerNode         Field[uint64] = 196612
	BaseFee           Field[uint64] = 196613
	ExchangeRate      Field[uint64] = 196614
	LowNode           Field[uint64] = 196615
	HighNode          Field[uint64] = 196616
	DestinationNode   Field[uint64] = 196617
	Cookie            Field[uint64] = 196618
	ServerVersion     Field[uint64] = 196619
	NFTokenOfferNode  Field[uint64] = 196620
	XChainClaimID     Field[uint64] = 196628
	AssetPrice        Field[uint64] = 196631
	MaximumAmount     Field[uint64] = 196632
	OutstandingAmount Field[uint64] = 196633
	MPTAmount         Field[uint64] = 196634
	IssuerNode        Field[uint64] = 196635
	SubjectNode       Field[uint64] = 196636
	LockedAmount      Field[uint64] = 196637
)

// Hash fields.
const (
	EmailHash Field[types.Hash128] = 262145

	LedgerHash      Field[types.Hash256] = 327681
	ParentHash      Field[types.Hash256] = 327682
	TransactionHash Field[types.Hash256] = 327683
	AccountHash     Field[types.Hash256] = 327684
	PreviousTxnID   Field[types.Hash256] = 327685
	LedgerIndex     Field[types.Hash256] = 327686
	WalletLocator   Field[types.Hash256] = 327687
	RootIndex       Field[types.Hash256] = 327688
	AccountTxnID    Field[types.Hash256] = 327689
	NFTokenID       Field[types.Hash256] = 327690
	AMMID           Field[types.Hash256] = 327694
	BookDirectory   Field[types.Hash256] = 327696
	InvoiceID       Field[types.Hash256] = 327697
	Digest          Field[types.Hash256] = 327701
	Channel         Field[types.Hash256] = 327702
	CheckID         Field[types.Hash256] = 327704
	PreviousPageMin Field[types.Hash256] = 327706
	NextPageMin     Field[types.Hash256] = 327707
	NFTokenBuyOffer  Field[types.Hash256] = 327708
	NFTokenSellOffer Field[types.Hash256] = 327709
	DomainID        Field[types.Hash256] = 327714
	VaultID         Field[types.Hash256] = 327715
	ParentBatchID   Field[types.Hash256] = 327716

	TakerPaysCurrency Field[types.Hash160] = 1114113
	TakerPaysIssuer   Field[types.Hash160] = 1114114
	TakerGetsCurrency Field[types.Hash160] = 1114115
	TakerGetsIssuer   Field[types.Hash160] = 1114116

	MPTokenIssuanceID Field[types.Hash192] = 1376257
	ShareMPTID        Field[types.Hash192] = 1376258
)

// Amount fields.
const (
	Amount                Field[types.Amount] = 393217
	Balance               Field[types.Amount] = 393218
	LimitAmount           Field[types.Amount] = 393219
	TakerPays             Field[types.Amount] = 393220
	TakerGets             Field[types.Amount] = 393221
	LowLimit              Field[types.Amount] = 393222
	HighLimit             Field[types.Amount] = 393223
	Fee                   Field[types.Amount] = 393224
	SendMax               Field[types.Amount] = 393225
	DeliverMin            Field[types.Amount] = 393226
	Amount2               Field[types.Amount] = 393227
	BidMin                Field[types.Amount] = 393228
	BidMax                Field[types.Amount] = 393229
	MinimumOffer          Field[types.Amount] = 393232
	RippleEscrow          Field[types.Amount] = 393233
	DeliveredAmount       Field[types.Amount] = 393234
	NFTokenBrokerFee      Field[types.Amount] = 393235
	BaseFeeDrops          Field[types.Amount] = 393238
	ReserveBaseDrops      Field[types.Amount] = 393239
	ReserveIncrementDrops Field[types.Amount] = 393240
	EPrice                Field[types.Amount] = 393243
	Price                 Field[types.Amount] = 393244
	SignatureReward       Field[types.Amount] = 393245
	MinAccountCreateAmount Field[types.Amount] = 393246
	LPTokenBalance        Field[types.Amount] = 393247
)

// Blob fields.
const (
	PublicKey       Field[types.Blob] = 458753
	MessageKey      Field[types.Blob] = 458754
	SigningPubKey   Field[types.Blob] = 458755
	TxnSignature    Field[types.Blob] = 458756
	URI             Field[types.Blob] = 458757
	Signature       Field[types.Blob] = 458758
	Domain          Field[types.Blob] = 458759
	CreateCode      Field[types.Blob] = 458763
	MemoType        Field[types.Blob] = 458764
	MemoData        Field[types.Blob] = 458765
	MemoFormat      Field[types.Blob] = 458766
	Fulfillment     Field[types.Blob] = 458768
	Condition       Field[types.Blob] = 458769
	MasterSignature Field[types.Blob] = 458770
	DIDDocument     Field[types.Blob] = 458778
	Data            Field[types.Blob] = 458779
	AssetClass      Field[types.Blob] = 458780
	Provider        Field[types.Blob] = 458781
	MPTokenMetadata Field[types.Blob] = 458782
	CredentialType  Field[types.Blob] = 458783
	FinishFunction  Field[types.Blob] = 458784
)

// AccountID fields.
const (
	Account       Field[types.AccountID] = 524289
	Owner         Field[types.AccountID] = 524290
	Destination   Field[types.AccountID] = 524291
	Issuer        Field[types.AccountID] = 524292
	Authorize     Field[types.AccountID] = 524293
	Unauthorize   Field[types.AccountID] = 524294
	RegularKey    Field[types.AccountID] = 524296
	NFTokenMinter Field[types.AccountID] = 524297
	Holder        Field[types.AccountID] = 524299
	Delegate      Field[types.AccountID] = 524300
	Subject       Field[types.AccountID] = 524312
)

// UInt8 fields.
const (
	CloseResolution   Field[uint8] = 1048577
	Method            Field[uint8] = 1048578
	TransactionResult Field[uint8] = 1048579
	Scale             Field[uint8] = 1048580
	AssetScale        Field[uint8] = 1048581
	TickSize          Field[uint8] = 1048592
	HookResult        Field[uint8] = 1048594
	WithdrawalPolicy  Field[uint8] = 1048596
)

// Issue and Currency fields.
const (
	LockingChainIssue Field[types.Issue] = 1572865
	IssuingChainIssue Field[types.Issue] = 1572866
	Asset             Field[types.Issue] = 1572867
	Asset2            Field[types.Issue] = 1572868

	BaseAsset  Field[types.Currency] = 1703937
	QuoteAsset Field[types.Currency] = 1703938
)

// Object markers. No decoder exists for these; they are presence-only keys
// used in locators for nested access.
const (
	TransactionMetaData Code = 917506
	CreatedNode         Code = 917507
	DeletedNode         Code = 917508
	ModifiedNode        Code = 917509
	PreviousFields      Code = 917510
	FinalFields         Code = 917511
	NewFields           Code = 917512
	Memo                Code = 917514
	SignerEntry         Code = 917515
	NFToken             Code = 917516
	Permission          Code = 917519
	Signer              Code = 917520
	PriceData           Code = 917536
	Credential          Code = 917537
)

// Array markers.
const (
	Signers               Code = 983043
	SignerEntries         Code = 983044
	AffectedNodes         Code = 983048
	Memos                 Code = 983049
	NFTokens              Code = 983050
	Majorities            Code = 983056
	PriceDataSeries       Code = 983064
	AuthAccounts          Code = 983065
	AuthorizeCredentials  Code = 983066
	UnauthorizeCredentials Code = 983067
	AcceptedCredentials   Code = 983068
	Permissions           Code = 983069
)
