// Package keylet derives ledger-entry keys. Every function asks the host for
// the 32-byte keylet of one entry family; the result feeds ledgerobj.Cache.
package keylet

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/types"
)

func fill(out *[types.Hash256Size]byte, rc int32) (types.Hash256, error) {
	if err := host.ResultExact(rc, types.Hash256Size); err != nil {
		return types.Hash256{}, err
	}
	return types.Hash256(*out), nil
}

// Account returns the AccountRoot keylet.
func Account(h host.Host, account types.AccountID) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.AccountKeylet(account[:], k[:]))
}

// Amm returns the AMM keylet for an asset pair.
func Amm(h host.Host, issue1, issue2 types.Issue) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.AmmKeylet(issue1.Bytes(), issue2.Bytes(), k[:]))
}

// Check returns the Check keylet.
func Check(h host.Host, account types.AccountID, sequence uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.CheckKeylet(account[:], int32(sequence), k[:]))
}

// Credential returns the Credential keylet.
func Credential(h host.Host, subject, issuer types.AccountID, credType types.Blob) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.CredentialKeylet(subject[:], issuer[:], credType, k[:]))
}

// Delegate returns the Delegate keylet.
func Delegate(h host.Host, account, authorize types.AccountID) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.DelegateKeylet(account[:], authorize[:], k[:]))
}

// DepositPreauth returns the DepositPreauth keylet.
func DepositPreauth(h host.Host, account, authorize types.AccountID) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.DepositPreauthKeylet(account[:], authorize[:], k[:]))
}

// Did returns the DID keylet.
func Did(h host.Host, account types.AccountID) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.DidKeylet(account[:], k[:]))
}

// Escrow returns the Escrow keylet for an owner and create sequence.
func Escrow(h host.Host, owner types.AccountID, sequence uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.EscrowKeylet(owner[:], int32(sequence), k[:]))
}

// Line returns the RippleState keylet for a trust line.
func Line(h host.Host, a, b types.AccountID, currency types.Currency) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.LineKeylet(a[:], b[:], currency[:], k[:]))
}

// MptIssuance returns the MPTokenIssuance keylet.
func MptIssuance(h host.Host, issuer types.AccountID, sequence uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.MptIssuanceKeylet(issuer[:], int32(sequence), k[:]))
}

// Mptoken returns the MPToken keylet for a holder of an issuance.
func Mptoken(h host.Host, id types.MptID, holder types.AccountID) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.MptokenKeylet(id[:], holder[:], k[:]))
}

// NftOffer returns the NFTokenOffer keylet.
func NftOffer(h host.Host, account types.AccountID, sequence uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.NftOfferKeylet(account[:], int32(sequence), k[:]))
}

// Offer returns the Offer keylet.
func Offer(h host.Host, account types.AccountID, sequence uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.OfferKeylet(account[:], int32(sequence), k[:]))
}

// Oracle returns the Oracle keylet.
func Oracle(h host.Host, account types.AccountID, documentID uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.OracleKeylet(account[:], int32(documentID), k[:]))
}

// Paychan returns the PayChannel keylet.
func Paychan(h host.Host, account, destination types.AccountID, sequence uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.PaychanKeylet(account[:], destination[:], int32(sequence), k[:]))
}

// PermissionedDomain returns the PermissionedDomain keylet.
func PermissionedDomain(h host.Host, account types.AccountID, sequence uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.PermissionedDomainKeylet(account[:], int32(sequence), k[:]))
}

// Signers returns the SignerList keylet.
func Signers(h host.Host, account types.AccountID) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.SignersKeylet(account[:], k[:]))
}

// Ticket returns the Ticket keylet.
func Ticket(h host.Host, account types.AccountID, sequence uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.TicketKeylet(account[:], int32(sequence), k[:]))
}

// Vault returns the Vault keylet.
func Vault(h host.Host, account types.AccountID, sequence uint32) (types.Hash256, error) {
	var k [types.Hash256Size]byte
	return fill(&k, h.VaultKeylet(account[:], int32(sequence), k[:]))
}
