// Package nft reads minted-token attributes through the host. The scalar
// attributes are also recoverable from the token ID itself (types.NftID);
// these calls let the host resolve tokens the contract only knows by owner.
package nft

import (
	"encoding/binary"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/types"
)

// URI returns the URI of a token held by owner.
func URI(h host.Host, owner types.AccountID, id types.NftID) (types.Blob, error) {
	buf := make([]byte, types.URIBlobSize)
	n, err := host.ResultLen(h.GetNFT(owner[:], id[:], buf))
	if err != nil {
		return nil, err
	}
	return types.Blob(buf[:n]), nil
}

// Issuer returns the token's minting account.
func Issuer(h host.Host, id types.NftID) (types.AccountID, error) {
	var buf [types.AccountIDSize]byte
	if err := host.ResultExact(h.GetNFTIssuer(id[:], buf[:]), types.AccountIDSize); err != nil {
		return types.AccountID{}, err
	}
	return types.AccountID(buf), nil
}

// Taxon returns the token's unscrambled taxon.
func Taxon(h host.Host, id types.NftID) (uint32, error) {
	var buf [4]byte
	if err := host.ResultExact(h.GetNFTTaxon(id[:], buf[:]), len(buf)); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// Flags returns the token's flag bits.
func Flags(h host.Host, id types.NftID) (types.NftFlags, error) {
	rc := h.GetNFTFlags(id[:])
	if rc < 0 {
		return 0, host.ErrFromCode(rc)
	}
	return types.NftFlags(rc), nil
}

// TransferFee returns the token's transfer fee in units of 0.001%.
func TransferFee(h host.Host, id types.NftID) (uint16, error) {
	rc := h.GetNFTTransferFee(id[:])
	if rc < 0 {
		return 0, host.ErrFromCode(rc)
	}
	return uint16(rc), nil
}

// Serial returns the token's mint sequence number.
func Serial(h host.Host, id types.NftID) (uint32, error) {
	var buf [4]byte
	if err := host.ResultExact(h.GetNFTSerial(id[:], buf[:]), len(buf)); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}
