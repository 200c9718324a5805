// Package xhash provides the half-SHA-512 digest the ledger uses for every
// index and identifier.
package xhash

import "crypto/sha512"

// Sha512Half concatenates the inputs and returns the first 32 bytes of
// their SHA-512 digest.
func Sha512Half(inputs ...[]byte) [32]byte {
	h := sha512.New()
	for _, in := range inputs {
		h.Write(in)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
