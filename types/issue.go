package types

import "github.com/LeJamon/goXRPLwasm/host"

// IssueKind discriminates the three asset families an Issue can name.
type IssueKind uint8

const (
	IssueXRP IssueKind = iota
	IssueIOU
	IssueMPT
)

// Issue names an asset without a value, as read from fields like Asset and
// Asset2 on an AMM entry. The wire form is distinguished by length alone:
// 20 bytes is XRP (an all-zero currency), 40 bytes is an issued currency
// (currency then issuer), 24 bytes is an MPT identifier.
type Issue struct {
	Kind     IssueKind
	Currency Currency  // IOU only
	Issuer   AccountID // IOU only
	MptID    MptID     // MPT only
}

// XRPIssue is the native asset.
func XRPIssue() Issue {
	return Issue{Kind: IssueXRP}
}

// IOUIssue names an issued currency.
func IOUIssue(currency Currency, issuer AccountID) Issue {
	return Issue{Kind: IssueIOU, Currency: currency, Issuer: issuer}
}

// MPTIssue names a multi-purpose token.
func MPTIssue(id MptID) Issue {
	return Issue{Kind: IssueMPT, MptID: id}
}

// DecodeIssue selects the variant by buffer length. Any other length is a
// malformed field.
func DecodeIssue(buf []byte) (Issue, error) {
	switch len(buf) {
	case CurrencySize:
		// XRP is encoded as the zero currency alone.
		c, err := DecodeCurrency(buf)
		if err != nil {
			return Issue{}, err
		}
		if !c.IsXRP() {
			return Issue{Kind: IssueIOU, Currency: c}, nil
		}
		return XRPIssue(), nil
	case MptIDSize:
		id, err := DecodeMptID(buf)
		if err != nil {
			return Issue{}, err
		}
		return MPTIssue(id), nil
	case CurrencySize + AccountIDSize:
		c, err := DecodeCurrency(buf[:CurrencySize])
		if err != nil {
			return Issue{}, err
		}
		issuer, err := DecodeAccountID(buf[CurrencySize:])
		if err != nil {
			return Issue{}, err
		}
		return IOUIssue(c, issuer), nil
	default:
		return Issue{}, host.ErrInvalidField
	}
}

// Bytes returns the wire form matching DecodeIssue.
func (i Issue) Bytes() []byte {
	switch i.Kind {
	case IssueIOU:
		out := make([]byte, CurrencySize+AccountIDSize)
		copy(out[:CurrencySize], i.Currency[:])
		copy(out[CurrencySize:], i.Issuer[:])
		return out
	case IssueMPT:
		out := make([]byte, MptIDSize)
		copy(out, i.MptID[:])
		return out
	default:
		return make([]byte, CurrencySize)
	}
}
