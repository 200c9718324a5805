// Package addresscodec converts between 20-byte account IDs and the classic
// base58check address form. The alphabet and the double-SHA-256 checksum
// follow the rippled reference implementation.
package addresscodec

import (
	"crypto/sha256"
	"errors"

	"github.com/decred/dcrd/crypto/ripemd160"
)

// alphabet is the XRPL base58 dictionary. Position zero is 'r', which is why
// leading zero bytes render as leading 'r' characters.
const alphabet = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"

// accountPrefix is the version byte of a classic account address.
const accountPrefix = 0x00

const (
	accountIDSize = 20
	checksumSize  = 4
	payloadSize   = 1 + accountIDSize + checksumSize
)

var (
	ErrInvalidAddress = errors.New("addresscodec: invalid classic address")
	ErrChecksum       = errors.New("addresscodec: checksum mismatch")
)

var alphabetIndex = func() [256]int8 {
	var idx [256]int8
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		idx[alphabet[i]] = int8(i)
	}
	return idx
}()

func checksum(payload []byte) [checksumSize]byte {
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	var c [checksumSize]byte
	copy(c[:], second[:checksumSize])
	return c
}

func encodeBase58(input []byte) string {
	zeros := 0
	for zeros < len(input) && input[zeros] == 0 {
		zeros++
	}

	// Repeated big-endian division by 58 over a working copy.
	work := make([]byte, len(input))
	copy(work, input)

	var digits []byte
	for start := zeros; start < len(work); {
		rem := 0
		for i := start; i < len(work); i++ {
			cur := rem*256 + int(work[i])
			work[i] = byte(cur / 58)
			rem = cur % 58
		}
		digits = append(digits, alphabet[rem])
		for start < len(work) && work[start] == 0 {
			start++
		}
	}

	out := make([]byte, 0, zeros+len(digits))
	for i := 0; i < zeros; i++ {
		out = append(out, alphabet[0])
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}

func decodeBase58(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == alphabet[0] {
		zeros++
	}

	var out []byte
	for i := zeros; i < len(s); i++ {
		d := alphabetIndex[s[i]]
		if d < 0 {
			return nil, ErrInvalidAddress
		}
		carry := int(d)
		for j := 0; j < len(out); j++ {
			carry += int(out[j]) * 58
			out[j] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			out = append(out, byte(carry))
			carry >>= 8
		}
	}

	res := make([]byte, zeros+len(out))
	for i, b := range out {
		res[len(res)-1-i] = b
	}
	return res, nil
}

// Encode renders an account ID as a classic address.
func Encode(account [accountIDSize]byte) string {
	payload := make([]byte, 0, payloadSize)
	payload = append(payload, accountPrefix)
	payload = append(payload, account[:]...)
	sum := checksum(payload)
	return encodeBase58(append(payload, sum[:]...))
}

// Decode parses a classic address back into its account ID. The version byte
// and checksum are both verified.
func Decode(address string) ([accountIDSize]byte, error) {
	var account [accountIDSize]byte

	raw, err := decodeBase58(address)
	if err != nil {
		return account, err
	}
	if len(raw) != payloadSize || raw[0] != accountPrefix {
		return account, ErrInvalidAddress
	}

	body, sum := raw[:1+accountIDSize], raw[1+accountIDSize:]
	want := checksum(body)
	for i := range want {
		if sum[i] != want[i] {
			return account, ErrChecksum
		}
	}
	copy(account[:], body[1:])
	return account, nil
}

// AccountIDFromPublicKey derives the account ID of a 33-byte public key:
// RIPEMD-160 over SHA-256, per rippled's AccountID.cpp.
func AccountIDFromPublicKey(pubKey []byte) [accountIDSize]byte {
	sha := sha256.Sum256(pubKey)
	h := ripemd160.New()
	h.Write(sha[:])

	var account [accountIDSize]byte
	copy(account[:], h.Sum(nil))
	return account
}
