package ledgerobj

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/fieldcodec"
	"github.com/LeJamon/goXRPLwasm/locator"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Oracle ledger entry type code.
const LedgerEntryTypeOracle uint16 = 0x0080

// Field ceilings from the Oracle entry definition.
const (
	MaxProviderSize   = 256
	MaxAssetClassSize = 16
	MaxOracleURISize  = 256
)

// PricePoint is one entry of an oracle's PriceDataSeries. AssetPrice and
// Scale are absent when the oracle has no fresh quote for the pair.
type PricePoint struct {
	BaseAsset  types.Currency
	QuoteAsset types.Currency
	AssetPrice uint64
	Scale      uint8
	HasPrice   bool
}

// OracleObject wraps a cached ledger object known to be a price oracle entry.
type OracleObject struct {
	Object
}

// CacheOracle caches the oracle at the given keylet.
func CacheOracle(h host.Host, keylet types.Hash256) (OracleObject, error) {
	o, err := Cache(h, keylet)
	if err != nil {
		return OracleObject{}, err
	}
	return OracleObject{o}, nil
}

func (o OracleObject) Owner() (types.AccountID, error) {
	return GetObjField(o.Object, sfield.Owner)
}

func (o OracleObject) Provider() (types.Blob, error) {
	return fieldcodec.GetBlob(o.get, sfield.Provider, MaxProviderSize)
}

func (o OracleObject) AssetClass() (types.Blob, error) {
	return fieldcodec.GetBlob(o.get, sfield.AssetClass, MaxAssetClassSize)
}

func (o OracleObject) LastUpdateTime() (uint32, error) {
	return GetObjField(o.Object, sfield.LastUpdateTime)
}

func (o OracleObject) URI() (types.Blob, bool, error) {
	return fieldcodec.GetBlobOptional(o.get, sfield.URI, MaxOracleURISize)
}

func (o OracleObject) OwnerNode() (uint64, error) {
	return GetObjField(o.Object, sfield.OwnerNode)
}

func (o OracleObject) PreviousTxnID() (types.Hash256, error) {
	return GetObjField(o.Object, sfield.PreviousTxnID)
}

func (o OracleObject) PreviousTxnLgrSeq() (uint32, error) {
	return GetObjField(o.Object, sfield.PreviousTxnLgrSeq)
}

// PriceCount returns the number of entries in the PriceDataSeries.
func (o OracleObject) PriceCount() (int, error) {
	return o.ArrayLen(sfield.PriceDataSeries)
}

func (o OracleObject) priceLoc(i int, field sfield.Code) *locator.Locator {
	l := locator.New()
	l.Pack(sfield.PriceDataSeries)
	l.PackIndex(int32(i))
	l.Pack(sfield.PriceData)
	l.Pack(field)
	return l
}

// PricePoint reads the i'th entry of the PriceDataSeries.
func (o OracleObject) PricePoint(i int) (PricePoint, error) {
	var p PricePoint
	var err error

	p.BaseAsset, err = GetObjNestedField[types.Currency](o.Object, o.priceLoc(i, sfield.BaseAsset.Code()))
	if err != nil {
		return PricePoint{}, err
	}
	p.QuoteAsset, err = GetObjNestedField[types.Currency](o.Object, o.priceLoc(i, sfield.QuoteAsset.Code()))
	if err != nil {
		return PricePoint{}, err
	}

	p.AssetPrice, p.HasPrice, err = GetObjNestedFieldOptional[uint64](o.Object, o.priceLoc(i, sfield.AssetPrice.Code()))
	if err != nil {
		return PricePoint{}, err
	}
	if p.HasPrice {
		scale, present, err := GetObjNestedFieldOptional[uint8](o.Object, o.priceLoc(i, sfield.Scale.Code()))
		if err != nil {
			return PricePoint{}, err
		}
		if present {
			p.Scale = scale
		}
	}
	return p, nil
}
