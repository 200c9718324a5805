package ledgerobj

import (
	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/fieldcodec"
	"github.com/LeJamon/goXRPLwasm/sfield"
	"github.com/LeJamon/goXRPLwasm/types"
)

// Credential ledger entry type code.
const LedgerEntryTypeCredential uint16 = 0x0081

// CredentialAccepted is the lsfAccepted flag: the subject has accepted the
// credential issued to it.
const CredentialAccepted uint32 = 0x00010000

// Field ceilings from the Credential entry definition.
const (
	MaxCredentialTypeSize = 64
	MaxCredentialURISize  = 256
)

// CredentialObject wraps a cached ledger object known to be a credential
// entry.
type CredentialObject struct {
	Object
}

// CacheCredential caches the credential at the given keylet.
func CacheCredential(h host.Host, keylet types.Hash256) (CredentialObject, error) {
	o, err := Cache(h, keylet)
	if err != nil {
		return CredentialObject{}, err
	}
	return CredentialObject{o}, nil
}

func (c CredentialObject) Subject() (types.AccountID, error) {
	return GetObjField(c.Object, sfield.Subject)
}

func (c CredentialObject) Issuer() (types.AccountID, error) {
	return GetObjField(c.Object, sfield.Issuer)
}

func (c CredentialObject) CredentialType() (types.Blob, error) {
	return fieldcodec.GetBlob(c.get, sfield.CredentialType, MaxCredentialTypeSize)
}

func (c CredentialObject) Expiration() (uint32, bool, error) {
	return GetObjFieldOptional(c.Object, sfield.Expiration)
}

func (c CredentialObject) URI() (types.Blob, bool, error) {
	return fieldcodec.GetBlobOptional(c.get, sfield.URI, MaxCredentialURISize)
}

func (c CredentialObject) SubjectNode() (uint64, error) {
	return GetObjField(c.Object, sfield.SubjectNode)
}

func (c CredentialObject) IssuerNode() (uint64, error) {
	return GetObjField(c.Object, sfield.IssuerNode)
}

func (c CredentialObject) PreviousTxnID() (types.Hash256, error) {
	return GetObjField(c.Object, sfield.PreviousTxnID)
}

func (c CredentialObject) PreviousTxnLgrSeq() (uint32, error) {
	return GetObjField(c.Object, sfield.PreviousTxnLgrSeq)
}

// Accepted reports whether the subject has accepted the credential. An
// unaccepted credential must not satisfy an authorization check.
func (c CredentialObject) Accepted() (bool, error) {
	flags, err := c.Flags()
	if err != nil {
		return false, err
	}
	return flags&CredentialAccepted != 0, nil
}
