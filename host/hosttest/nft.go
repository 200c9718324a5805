package hosttest

import (
	"encoding/binary"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/types"
)

func nftID(b []byte) (types.NftID, bool) {
	id, err := types.DecodeNftID(b)
	return id, err == nil
}

// GetNFT resolves a token's URI from the scripted holdings.
func (e *Env) GetNFT(acct, id, out []byte) int32 {
	owner, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	token, ok := nftID(id)
	if !ok {
		return host.CodeInvalidParams
	}
	uri, ok := e.NFTs[owner][token]
	if !ok {
		return host.CodeLedgerObjNotFound
	}
	if len(uri) > len(out) {
		return host.CodeBufferTooSmall
	}
	copy(out, uri)
	return int32(len(uri))
}

// The remaining attributes are packed into the token ID itself, so they are
// decoded rather than looked up.

func (e *Env) GetNFTIssuer(id, out []byte) int32 {
	token, ok := nftID(id)
	if !ok {
		return host.CodeInvalidParams
	}
	if len(out) < types.AccountIDSize {
		return host.CodeBufferTooSmall
	}
	issuer := token.Issuer()
	copy(out, issuer[:])
	return types.AccountIDSize
}

func (e *Env) GetNFTTaxon(id, out []byte) int32 {
	token, ok := nftID(id)
	if !ok {
		return host.CodeInvalidParams
	}
	if len(out) < 4 {
		return host.CodeBufferTooSmall
	}
	binary.BigEndian.PutUint32(out, token.Taxon())
	return 4
}

func (e *Env) GetNFTSerial(id, out []byte) int32 {
	token, ok := nftID(id)
	if !ok {
		return host.CodeInvalidParams
	}
	if len(out) < 4 {
		return host.CodeBufferTooSmall
	}
	binary.BigEndian.PutUint32(out, token.Sequence())
	return 4
}

func (e *Env) GetNFTFlags(id []byte) int32 {
	token, ok := nftID(id)
	if !ok {
		return host.CodeInvalidParams
	}
	return int32(token.Flags())
}

func (e *Env) GetNFTTransferFee(id []byte) int32 {
	token, ok := nftID(id)
	if !ok {
		return host.CodeInvalidParams
	}
	return int32(token.TransferFee())
}
