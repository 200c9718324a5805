// Package simkeylet computes ledger-entry keys locally, for host backends
// that have no ledger process behind them. The derivations match the ledger
// implementation: half-SHA-512 over a 2-byte namespace identifier followed
// by the entry's identifying inputs.
package simkeylet

import (
	"bytes"
	"encoding/binary"

	"github.com/LeJamon/goXRPLwasm/internal/xhash"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Namespace identifiers, one per entry family.
const (
	spaceAccount     uint16 = 'a'
	spaceRippleState uint16 = 'r'
	spaceOffer       uint16 = 'o'
	spaceEscrow      uint16 = 'u'
	spaceTicket      uint16 = 'T'
	spaceSignerList  uint16 = 'S'
	spaceCheck       uint16 = 'C'
	spaceDepPreauth  uint16 = 'p'
	spaceNFTokenOff  uint16 = 'q'
	spacePayChannel  uint16 = 'x'
	spaceAMM         uint16 = 'A'
	spaceDID         uint16 = 'I'
	spaceOracle      uint16 = 'R'
	spaceMPTIssu     uint16 = '~'
	spaceMPToken     uint16 = 't'
	spaceCredential  uint16 = 'D'
	spacePermDomain  uint16 = 'b'
	spaceVault       uint16 = 'V'
	spaceDelegate    uint16 = 'E'
)

func indexHash(space uint16, data ...[]byte) types.Hash256 {
	spaceBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(spaceBytes, space)

	inputs := make([][]byte, 0, len(data)+1)
	inputs = append(inputs, spaceBytes)
	inputs = append(inputs, data...)

	return xhash.Sha512Half(inputs...)
}

func seqBytes(sequence uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, sequence)
	return b
}

// Account returns the AccountRoot key.
func Account(account types.AccountID) types.Hash256 {
	return indexHash(spaceAccount, account[:])
}

// Escrow returns the Escrow key for an owner and create sequence.
func Escrow(owner types.AccountID, sequence uint32) types.Hash256 {
	return indexHash(spaceEscrow, owner[:], seqBytes(sequence))
}

// Offer returns the Offer key.
func Offer(account types.AccountID, sequence uint32) types.Hash256 {
	return indexHash(spaceOffer, account[:], seqBytes(sequence))
}

// Line returns the RippleState key. The two accounts hash in sorted order,
// so the key is the same whichever side asks.
func Line(a, b types.AccountID, currency types.Currency) types.Hash256 {
	low, high := a, b
	if bytes.Compare(a[:], b[:]) > 0 {
		low, high = b, a
	}
	return indexHash(spaceRippleState, low[:], high[:], currency[:])
}

// Check returns the Check key.
func Check(account types.AccountID, sequence uint32) types.Hash256 {
	return indexHash(spaceCheck, account[:], seqBytes(sequence))
}

// Ticket returns the Ticket key.
func Ticket(account types.AccountID, ticketSeq uint32) types.Hash256 {
	return indexHash(spaceTicket, account[:], seqBytes(ticketSeq))
}

// SignerList returns the SignerList key. The list lives on page zero.
func SignerList(account types.AccountID) types.Hash256 {
	return indexHash(spaceSignerList, account[:], seqBytes(0))
}

// DepositPreauth returns the DepositPreauth key.
func DepositPreauth(owner, authorized types.AccountID) types.Hash256 {
	return indexHash(spaceDepPreauth, owner[:], authorized[:])
}

// NFTokenOffer returns the NFTokenOffer key.
func NFTokenOffer(account types.AccountID, sequence uint32) types.Hash256 {
	return indexHash(spaceNFTokenOff, account[:], seqBytes(sequence))
}

// PayChannel returns the PayChannel key.
func PayChannel(src, dst types.AccountID, sequence uint32) types.Hash256 {
	return indexHash(spacePayChannel, src[:], dst[:], seqBytes(sequence))
}

// DID returns the DID key.
func DID(account types.AccountID) types.Hash256 {
	return indexHash(spaceDID, account[:])
}

// Oracle returns the Oracle key.
func Oracle(account types.AccountID, documentID uint32) types.Hash256 {
	return indexHash(spaceOracle, account[:], seqBytes(documentID))
}

// Credential returns the Credential key.
func Credential(subject, issuer types.AccountID, credType []byte) types.Hash256 {
	return indexHash(spaceCredential, subject[:], issuer[:], credType)
}

// Delegate returns the Delegate key.
func Delegate(account, authorize types.AccountID) types.Hash256 {
	return indexHash(spaceDelegate, account[:], authorize[:])
}

// MPTIssuance returns the MPTokenIssuance key for the issuance identified by
// its create sequence and issuer.
func MPTIssuance(issuer types.AccountID, sequence uint32) types.Hash256 {
	id := types.NewMptID(sequence, issuer)
	return indexHash(spaceMPTIssu, id[:])
}

// MPToken returns the MPToken key for a holder of an issuance.
func MPToken(id types.MptID, holder types.AccountID) types.Hash256 {
	return indexHash(spaceMPToken, id[:], holder[:])
}

// PermissionedDomain returns the PermissionedDomain key.
func PermissionedDomain(account types.AccountID, sequence uint32) types.Hash256 {
	return indexHash(spacePermDomain, account[:], seqBytes(sequence))
}

// Vault returns the Vault key.
func Vault(account types.AccountID, sequence uint32) types.Hash256 {
	return indexHash(spaceVault, account[:], seqBytes(sequence))
}

// AMM returns the AMM key for an asset pair. The two assets hash in sorted
// order of their 40-byte issue form, so argument order does not matter.
func AMM(issue1, issue2 types.Issue) types.Hash256 {
	a := issueForm(issue1)
	b := issueForm(issue2)
	if bytes.Compare(a, b) > 0 {
		a, b = b, a
	}
	return indexHash(spaceAMM, a, b)
}

// issueForm widens an issue to the full currency-plus-issuer form so both
// sides of the pair hash with the same width.
func issueForm(i types.Issue) []byte {
	out := make([]byte, types.CurrencySize+types.AccountIDSize)
	switch i.Kind {
	case types.IssueIOU:
		copy(out[:types.CurrencySize], i.Currency[:])
		copy(out[types.CurrencySize:], i.Issuer[:])
	case types.IssueMPT:
		copy(out, i.MptID[:])
	}
	return out
}
