package hosttest

import (
	"crypto/ed25519"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	secpecdsa "github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/LeJamon/goXRPLwasm/host"
	"github.com/LeJamon/goXRPLwasm/internal/xhash"
	"github.com/LeJamon/goXRPLwasm/types"
)

// CheckSig verifies a signature the way the ledger does: ed25519 keys
// (0xED prefix) sign the raw message, secp256k1 keys sign its half-SHA-512
// digest with a DER-encoded signature.
func (e *Env) CheckSig(message, signature, pubkey []byte) int32 {
	if len(pubkey) != types.PublicKeySize {
		return host.CodeInvalidParams
	}

	if pubkey[0] == types.Ed25519Prefix {
		if len(signature) != ed25519.SignatureSize {
			return 0
		}
		if ed25519.Verify(ed25519.PublicKey(pubkey[1:]), message, signature) {
			return 1
		}
		return 0
	}

	pub, err := btcec.ParsePubKey(pubkey)
	if err != nil {
		return host.CodeInvalidParams
	}
	sig, err := btcecdsa.ParseDERSignature(signature)
	if err != nil {
		return 0
	}
	digest := xhash.Sha512Half(message)
	if sig.Verify(digest[:], pub) {
		return 1
	}
	return 0
}

// Secp256k1Signer produces signatures CheckSig accepts, for scripting
// fixtures.
type Secp256k1Signer struct {
	priv *secp256k1.PrivateKey
}

// NewSecp256k1Signer derives a deterministic keypair from 32 bytes of seed
// material.
func NewSecp256k1Signer(seed [32]byte) *Secp256k1Signer {
	return &Secp256k1Signer{priv: secp256k1.PrivKeyFromBytes(seed[:])}
}

// PublicKey returns the compressed 33-byte public key.
func (s *Secp256k1Signer) PublicKey() types.PublicKey {
	var k types.PublicKey
	copy(k[:], s.priv.PubKey().SerializeCompressed())
	return k
}

// Sign returns a DER signature over the half-SHA-512 digest of message.
func (s *Secp256k1Signer) Sign(message []byte) []byte {
	digest := xhash.Sha512Half(message)
	return secpecdsa.Sign(s.priv, digest[:]).Serialize()
}

// Ed25519Signer produces ed25519 signatures with the ledger's key prefix.
type Ed25519Signer struct {
	priv ed25519.PrivateKey
}

// NewEd25519Signer derives a deterministic keypair from 32 bytes of seed
// material.
func NewEd25519Signer(seed [32]byte) *Ed25519Signer {
	return &Ed25519Signer{priv: ed25519.NewKeyFromSeed(seed[:])}
}

// PublicKey returns the 0xED-prefixed 33-byte public key.
func (s *Ed25519Signer) PublicKey() types.PublicKey {
	var k types.PublicKey
	k[0] = types.Ed25519Prefix
	copy(k[1:], s.priv.Public().(ed25519.PublicKey))
	return k
}

// Sign returns a 64-byte signature over the raw message.
func (s *Ed25519Signer) Sign(message []byte) []byte {
	return ed25519.Sign(s.priv, message)
}
