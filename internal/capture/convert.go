package capture

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/LeJamon/goXRPLwasm/internal/snapshot"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// fieldKind selects the JSON-to-wire conversion for one field.
type fieldKind int

const (
	kindUInt8 fieldKind = iota
	kindUInt16
	kindUInt32
	kindUInt64Hex
	kindHash128
	kindHash256
	kindAccount
	kindBlob
	kindAmount
	kindCurrency
	kindEntryType
	kindArray
)

type fieldSpec struct {
	code sfield.Code
	kind fieldKind

	// Array fields only: the wrapper object each element carries.
	wrapperName string
	wrapperCode sfield.Code
}

// fieldTable maps the JSON field names of captured entries to their wire
// form. Names the table does not list are dropped; the simulator host only
// serves what it can re-encode.
var fieldTable = map[string]fieldSpec{
	"LedgerEntryType": {code: sfield.LedgerEntryType.Code(), kind: kindEntryType},
	"TransferFee":     {code: sfield.TransferFee.Code(), kind: kindUInt16},

	"Flags":             {code: sfield.Flags.Code(), kind: kindUInt32},
	"SourceTag":         {code: sfield.SourceTag.Code(), kind: kindUInt32},
	"Sequence":          {code: sfield.Sequence.Code(), kind: kindUInt32},
	"PreviousTxnLgrSeq": {code: sfield.PreviousTxnLgrSeq.Code(), kind: kindUInt32},
	"Expiration":        {code: sfield.Expiration.Code(), kind: kindUInt32},
	"OwnerCount":        {code: sfield.OwnerCount.Code(), kind: kindUInt32},
	"DestinationTag":    {code: sfield.DestinationTag.Code(), kind: kindUInt32},
	"LastUpdateTime":    {code: sfield.LastUpdateTime.Code(), kind: kindUInt32},
	"CancelAfter":       {code: sfield.CancelAfter.Code(), kind: kindUInt32},
	"FinishAfter":       {code: sfield.FinishAfter.Code(), kind: kindUInt32},
	"SettleDelay":       {code: sfield.SettleDelay.Code(), kind: kindUInt32},
	"TicketCount":       {code: sfield.TicketCount.Code(), kind: kindUInt32},
	"MintedNFTokens":    {code: sfield.MintedNFTokens.Code(), kind: kindUInt32},
	"BurnedNFTokens":    {code: sfield.BurnedNFTokens.Code(), kind: kindUInt32},
	"OracleDocumentID":  {code: sfield.OracleDocumentID.Code(), kind: kindUInt32},

	"OwnerNode":       {code: sfield.OwnerNode.Code(), kind: kindUInt64Hex},
	"BookNode":        {code: sfield.BookNode.Code(), kind: kindUInt64Hex},
	"LowNode":         {code: sfield.LowNode.Code(), kind: kindUInt64Hex},
	"HighNode":        {code: sfield.HighNode.Code(), kind: kindUInt64Hex},
	"DestinationNode": {code: sfield.DestinationNode.Code(), kind: kindUInt64Hex},
	"IssuerNode":      {code: sfield.IssuerNode.Code(), kind: kindUInt64Hex},
	"SubjectNode":     {code: sfield.SubjectNode.Code(), kind: kindUInt64Hex},
	"AssetPrice":      {code: sfield.AssetPrice.Code(), kind: kindUInt64Hex},

	"EmailHash": {code: sfield.EmailHash.Code(), kind: kindHash128},

	"PreviousTxnID": {code: sfield.PreviousTxnID.Code(), kind: kindHash256},
	"AccountTxnID":  {code: sfield.AccountTxnID.Code(), kind: kindHash256},
	"BookDirectory": {code: sfield.BookDirectory.Code(), kind: kindHash256},
	"RootIndex":     {code: sfield.RootIndex.Code(), kind: kindHash256},
	"NFTokenID":     {code: sfield.NFTokenID.Code(), kind: kindHash256},
	"AMMID":         {code: sfield.AMMID.Code(), kind: kindHash256},
	"WalletLocator": {code: sfield.WalletLocator.Code(), kind: kindHash256},

	"Account":     {code: sfield.Account.Code(), kind: kindAccount},
	"Owner":       {code: sfield.Owner.Code(), kind: kindAccount},
	"Destination": {code: sfield.Destination.Code(), kind: kindAccount},
	"Issuer":      {code: sfield.Issuer.Code(), kind: kindAccount},
	"Subject":     {code: sfield.Subject.Code(), kind: kindAccount},
	"RegularKey":  {code: sfield.RegularKey.Code(), kind: kindAccount},

	"Amount":      {code: sfield.Amount.Code(), kind: kindAmount},
	"Balance":     {code: sfield.Balance.Code(), kind: kindAmount},
	"LowLimit":    {code: sfield.LowLimit.Code(), kind: kindAmount},
	"HighLimit":   {code: sfield.HighLimit.Code(), kind: kindAmount},
	"SendMax":     {code: sfield.SendMax.Code(), kind: kindAmount},
	"TakerPays":   {code: sfield.TakerPays.Code(), kind: kindAmount},
	"TakerGets":   {code: sfield.TakerGets.Code(), kind: kindAmount},

	"PublicKey":       {code: sfield.PublicKey.Code(), kind: kindBlob},
	"MessageKey":      {code: sfield.MessageKey.Code(), kind: kindBlob},
	"SigningPubKey":   {code: sfield.SigningPubKey.Code(), kind: kindBlob},
	"URI":             {code: sfield.URI.Code(), kind: kindBlob},
	"Domain":          {code: sfield.Domain.Code(), kind: kindBlob},
	"Condition":       {code: sfield.Condition.Code(), kind: kindBlob},
	"Data":            {code: sfield.Data.Code(), kind: kindBlob},
	"FinishFunction":  {code: sfield.FinishFunction.Code(), kind: kindBlob},
	"AssetClass":      {code: sfield.AssetClass.Code(), kind: kindBlob},
	"Provider":        {code: sfield.Provider.Code(), kind: kindBlob},
	"CredentialType":  {code: sfield.CredentialType.Code(), kind: kindBlob},
	"MemoType":        {code: sfield.MemoType.Code(), kind: kindBlob},
	"MemoData":        {code: sfield.MemoData.Code(), kind: kindBlob},
	"MemoFormat":      {code: sfield.MemoFormat.Code(), kind: kindBlob},

	"Scale": {code: sfield.Scale.Code(), kind: kindUInt8},

	"BaseAsset":  {code: sfield.BaseAsset.Code(), kind: kindCurrency},
	"QuoteAsset": {code: sfield.QuoteAsset.Code(), kind: kindCurrency},

	"Memos":           {code: sfield.Memos, kind: kindArray, wrapperName: "Memo", wrapperCode: sfield.Memo},
	"PriceDataSeries": {code: sfield.PriceDataSeries, kind: kindArray, wrapperName: "PriceData", wrapperCode: sfield.PriceData},
}

// entryTypes maps ledger_entry JSON type names to the LedgerEntryType code.
var entryTypes = map[string]uint16{
	"AccountRoot":   0x0061,
	"DirectoryNode": 0x0064,
	"RippleState":   0x0072,
	"Offer":         0x006F,
	"Escrow":        0x0075,
	"PayChannel":    0x0078,
	"Check":         0x0043,
	"Ticket":        0x0054,
	"SignerList":    0x0053,
	"DepositPreauth": 0x0070,
	"NFTokenPage":   0x0050,
	"Oracle":        0x0080,
	"Credential":    0x0081,
	"DID":           0x0049,
	"AMM":           0x0079,
}

// convertNode turns a ledger_entry JSON node into a snapshot field tree.
func convertNode(node json.RawMessage) (map[int32]*snapshot.Value, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(node, &raw); err != nil {
		return nil, err
	}
	return convertObject(raw)
}

func convertObject(raw map[string]json.RawMessage) (map[int32]*snapshot.Value, error) {
	fields := make(map[int32]*snapshot.Value, len(raw))
	for name, value := range raw {
		spec, ok := fieldTable[name]
		if !ok {
			continue
		}
		v, err := convertField(spec, value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		fields[int32(spec.code)] = v
	}
	return fields, nil
}

func convertField(spec fieldSpec, value json.RawMessage) (*snapshot.Value, error) {
	switch spec.kind {
	case kindUInt8:
		n, err := parseUint(value, 8)
		if err != nil {
			return nil, err
		}
		return snapshot.LeafValue([]byte{byte(n)}), nil

	case kindUInt16:
		n, err := parseUint(value, 16)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, uint16(n))
		return snapshot.LeafValue(buf), nil

	case kindUInt32:
		n, err := parseUint(value, 32)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, 4)
		binary.LittleEndian.PutUint32(buf, uint32(n))
		return snapshot.LeafValue(buf), nil

	case kindUInt64Hex:
		s, err := parseString(value)
		if err != nil {
			return nil, err
		}
		n, err := strconv.ParseUint(s, 16, 64)
		if err != nil {
			return nil, err
		}
		buf := make([]byte, 8)
		binary.LittleEndian.PutUint64(buf, n)
		return snapshot.LeafValue(buf), nil

	case kindHash128:
		return hexLeaf(value, 16)

	case kindHash256:
		return hexLeaf(value, 32)

	case kindAccount:
		s, err := parseString(value)
		if err != nil {
			return nil, err
		}
		account, err := types.AccountIDFromAddress(s)
		if err != nil {
			return nil, err
		}
		return snapshot.LeafValue(account[:]), nil

	case kindBlob:
		return hexLeaf(value, -1)

	case kindAmount:
		amount, err := convertAmount(value)
		if err != nil {
			return nil, err
		}
		wire, n := amount.Bytes()
		return snapshot.LeafValue(wire[:n]), nil

	case kindCurrency:
		currency, err := convertCurrency(value)
		if err != nil {
			return nil, err
		}
		return snapshot.LeafValue(currency[:]), nil

	case kindEntryType:
		s, err := parseString(value)
		if err != nil {
			return nil, err
		}
		code, ok := entryTypes[s]
		if !ok {
			return nil, fmt.Errorf("unknown entry type %q", s)
		}
		buf := make([]byte, 2)
		binary.LittleEndian.PutUint16(buf, code)
		return snapshot.LeafValue(buf), nil

	case kindArray:
		var items []map[string]json.RawMessage
		if err := json.Unmarshal(value, &items); err != nil {
			return nil, err
		}
		elements := make([]map[int32]*snapshot.Value, 0, len(items))
		for i, item := range items {
			inner, ok := item[spec.wrapperName]
			if !ok {
				return nil, fmt.Errorf("element %d: missing %s wrapper", i, spec.wrapperName)
			}
			var innerRaw map[string]json.RawMessage
			if err := json.Unmarshal(inner, &innerRaw); err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			converted, err := convertObject(innerRaw)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			elements = append(elements, map[int32]*snapshot.Value{
				int32(spec.wrapperCode): snapshot.ObjectValue(converted),
			})
		}
		return snapshot.ArrayValue(elements...), nil
	}
	return nil, fmt.Errorf("unhandled field kind %d", spec.kind)
}

// convertAmount handles both JSON amount forms: a decimal-drops string for
// XRP and a {currency, issuer, value} object for issued currencies.
func convertAmount(value json.RawMessage) (types.Amount, error) {
	var drops string
	if err := json.Unmarshal(value, &drops); err == nil {
		n, err := strconv.ParseUint(drops, 10, 64)
		if err != nil {
			return types.Amount{}, fmt.Errorf("drops %q: %w", drops, err)
		}
		return types.XRPAmount(n), nil
	}

	var iou struct {
		Currency string `json:"currency"`
		Issuer   string `json:"issuer"`
		Value    string `json:"value"`
	}
	if err := json.Unmarshal(value, &iou); err != nil {
		return types.Amount{}, err
	}
	currency, err := parseCurrency(iou.Currency)
	if err != nil {
		return types.Amount{}, err
	}
	issuer, err := types.AccountIDFromAddress(iou.Issuer)
	if err != nil {
		return types.Amount{}, err
	}
	mantissa, err := encodeIOUValue(iou.Value)
	if err != nil {
		return types.Amount{}, fmt.Errorf("value %q: %w", iou.Value, err)
	}
	return types.IOUAmount(mantissa, currency, issuer), nil
}

func convertCurrency(value json.RawMessage) (types.Currency, error) {
	s, err := parseString(value)
	if err != nil {
		return types.Currency{}, err
	}
	return parseCurrency(s)
}

// parseCurrency accepts the three-letter ISO form and the 160-bit hex form.
func parseCurrency(s string) (types.Currency, error) {
	if len(s) == 40 {
		raw, err := hex.DecodeString(s)
		if err == nil {
			return types.DecodeCurrency(raw)
		}
	}
	return types.CurrencyFromISO(s)
}

// encodeIOUValue renders a decimal string in the 64-bit issued-amount form:
// top bit set, sign bit, exponent biased by 97, 54-bit mantissa normalized
// to [1e15, 1e16).
func encodeIOUValue(s string) (types.OpaqueFloat, error) {
	var out types.OpaqueFloat

	negative := false
	switch {
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	mantissaStr := s
	exponent := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		e, err := strconv.Atoi(s[i+1:])
		if err != nil {
			return out, err
		}
		exponent = e
		mantissaStr = s[:i]
	}
	if i := strings.IndexByte(mantissaStr, '.'); i >= 0 {
		exponent -= len(mantissaStr) - i - 1
		mantissaStr = mantissaStr[:i] + mantissaStr[i+1:]
	}
	mantissaStr = strings.TrimLeft(mantissaStr, "0")
	if mantissaStr == "" {
		// Zero has a dedicated encoding.
		binary.BigEndian.PutUint64(out[:], 1<<63)
		return out, nil
	}

	mantissa, err := strconv.ParseUint(mantissaStr, 10, 64)
	if err != nil {
		return out, err
	}
	const (
		minMantissa = 1_000_000_000_000_000
		maxMantissa = 9_999_999_999_999_999
	)
	for mantissa < minMantissa {
		mantissa *= 10
		exponent--
	}
	for mantissa > maxMantissa {
		mantissa /= 10
		exponent++
	}
	if exponent < -96 || exponent > 80 {
		return out, fmt.Errorf("exponent %d out of range", exponent)
	}

	bits := uint64(1)<<63 | uint64(exponent+97)<<54 | mantissa
	if !negative {
		bits |= 1 << 62
	}
	binary.BigEndian.PutUint64(out[:], bits)
	return out, nil
}

func parseUint(value json.RawMessage, bits int) (uint64, error) {
	var n uint64
	if err := json.Unmarshal(value, &n); err != nil {
		return 0, err
	}
	if bits < 64 && n >= 1<<bits {
		return 0, fmt.Errorf("%d overflows uint%d", n, bits)
	}
	return n, nil
}

func parseString(value json.RawMessage) (string, error) {
	var s string
	err := json.Unmarshal(value, &s)
	return s, err
}

func hexLeaf(value json.RawMessage, size int) (*snapshot.Value, error) {
	s, err := parseString(value)
	if err != nil {
		return nil, err
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if size >= 0 && len(raw) != size {
		return nil, fmt.Errorf("expected %d bytes, got %d", size, len(raw))
	}
	return snapshot.LeafValue(raw), nil
}

func parseHash256(s string) (types.Hash256, error) {
	raw, err := hex.DecodeString(s)
	if err != nil {
		return types.Hash256{}, err
	}
	return types.DecodeHash256(raw)
}

// isEntryNotFound recognizes the rippled entryNotFound error from call's
// formatted error text.
func isEntryNotFound(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled) &&
		strings.Contains(err.Error(), "entryNotFound")
}
