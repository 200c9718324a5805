package types

import (
	"encoding/hex"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/addresscodec"
)

// AccountIDSize is the width of an XRPL account identifier.
const AccountIDSize = 20

// AccountID is the 160-bit identifier of an XRPL account, the RIPEMD-160 of
// the SHA-256 of the account's master public key.
type AccountID [AccountIDSize]byte

// DecodeAccountID rejects any buffer that is not exactly 20 bytes.
func DecodeAccountID(buf []byte) (AccountID, error) {
	var a AccountID
	if len(buf) != AccountIDSize {
		return a, host.ErrInvalidField
	}
	copy(a[:], buf)
	return a, nil
}

// IsZero reports whether the account is the all-zero (ACCOUNT_ZERO) value.
func (a AccountID) IsZero() bool {
	for _, b := range a {
		if b != 0 {
			return false
		}
	}
	return true
}

// AccountIDFromAddress parses a classic base58check address, for example
// "rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh".
func AccountIDFromAddress(address string) (AccountID, error) {
	raw, err := addresscodec.Decode(address)
	if err != nil {
		return AccountID{}, host.ErrInvalidAccount
	}
	return AccountID(raw), nil
}

// AccountIDFromPublicKey derives the account of a 33-byte public key.
func AccountIDFromPublicKey(pubKey []byte) (AccountID, error) {
	if len(pubKey) != PublicKeySize {
		return AccountID{}, host.ErrInvalidParams
	}
	return AccountID(addresscodec.AccountIDFromPublicKey(pubKey)), nil
}

// Address renders the account in classic base58check form.
func (a AccountID) Address() string {
	return addresscodec.Encode(a)
}

func (a AccountID) String() string {
	return hex.EncodeToString(a[:])
}
