package hosttest

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/simkeylet"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Keylet derivation is pure, so the test host computes keys locally with the
// same construction the ledger uses.

func account(b []byte) (types.AccountID, bool) {
	if len(b) != types.AccountIDSize {
		return types.AccountID{}, false
	}
	return types.AccountID([20]byte(b)), true
}

func keyInto(out []byte, key types.Hash256) int32 {
	if len(out) < types.Hash256Size {
		return host.CodeBufferTooSmall
	}
	copy(out, key[:])
	return types.Hash256Size
}

func (e *Env) AccountKeylet(acct, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.Account(a))
}

func (e *Env) AmmKeylet(issue1, issue2, out []byte) int32 {
	i1, err := types.DecodeIssue(issue1)
	if err != nil {
		return host.CodeInvalidParams
	}
	i2, err := types.DecodeIssue(issue2)
	if err != nil {
		return host.CodeInvalidParams
	}
	return keyInto(out, simkeylet.AMM(i1, i2))
}

func (e *Env) CheckKeylet(acct []byte, sequence int32, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.Check(a, uint32(sequence)))
}

func (e *Env) CredentialKeylet(subject, issuer, credType, out []byte) int32 {
	s, ok := account(subject)
	if !ok {
		return host.CodeInvalidAccount
	}
	i, ok := account(issuer)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.Credential(s, i, credType))
}

func (e *Env) DelegateKeylet(acct, authorize, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	auth, ok := account(authorize)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.Delegate(a, auth))
}

func (e *Env) DepositPreauthKeylet(acct, authorize, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	auth, ok := account(authorize)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.DepositPreauth(a, auth))
}

func (e *Env) DidKeylet(acct, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.DID(a))
}

func (e *Env) EscrowKeylet(acct []byte, sequence int32, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.Escrow(a, uint32(sequence)))
}

func (e *Env) LineKeylet(account1, account2, currency, out []byte) int32 {
	a1, ok := account(account1)
	if !ok {
		return host.CodeInvalidAccount
	}
	a2, ok := account(account2)
	if !ok {
		return host.CodeInvalidAccount
	}
	c, err := types.DecodeCurrency(currency)
	if err != nil {
		return host.CodeInvalidParams
	}
	return keyInto(out, simkeylet.Line(a1, a2, c))
}

func (e *Env) MptIssuanceKeylet(issuer []byte, sequence int32, out []byte) int32 {
	a, ok := account(issuer)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.MPTIssuance(a, uint32(sequence)))
}

func (e *Env) MptokenKeylet(mptID, holder, out []byte) int32 {
	id, err := types.DecodeMptID(mptID)
	if err != nil {
		return host.CodeInvalidParams
	}
	h, ok := account(holder)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.MPToken(id, h))
}

func (e *Env) NftOfferKeylet(acct []byte, sequence int32, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.NFTokenOffer(a, uint32(sequence)))
}

func (e *Env) OfferKeylet(acct []byte, sequence int32, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.Offer(a, uint32(sequence)))
}

func (e *Env) OracleKeylet(acct []byte, documentID int32, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.Oracle(a, uint32(documentID)))
}

func (e *Env) PaychanKeylet(acct, destination []byte, sequence int32, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	d, ok := account(destination)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.PayChannel(a, d, uint32(sequence)))
}

func (e *Env) PermissionedDomainKeylet(acct []byte, sequence int32, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.PermissionedDomain(a, uint32(sequence)))
}

func (e *Env) SignersKeylet(acct, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.SignerList(a))
}

func (e *Env) TicketKeylet(acct []byte, sequence int32, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.Ticket(a, uint32(sequence)))
}

func (e *Env) VaultKeylet(acct []byte, sequence int32, out []byte) int32 {
	a, ok := account(acct)
	if !ok {
		return host.CodeInvalidAccount
	}
	return keyInto(out, simkeylet.Vault(a, uint32(sequence)))
}
