package types

import (
	"encoding/hex"

	"github.com/LeJamon/goXRPLwasm/host"
)

// CurrencySize is the width of a 160-bit currency code.
const CurrencySize = 20

// Currency is a 20-byte currency code. Standard three-letter codes occupy
// bytes 12..14 with every other byte zero; anything else is a non-standard
// code rendered as hex.
type Currency [CurrencySize]byte

// XRP is the native currency: all twenty bytes zero.
var XRP = Currency{}

// CurrencyFromISO builds the standard 20-byte form of a three-character code.
func CurrencyFromISO(code string) (Currency, error) {
	var c Currency
	if len(code) != 3 {
		return c, host.ErrInvalidParams
	}
	c[12], c[13], c[14] = code[0], code[1], code[2]
	return c, nil
}

// DecodeCurrency rejects any buffer that is not exactly 20 bytes.
func DecodeCurrency(buf []byte) (Currency, error) {
	var c Currency
	if len(buf) != CurrencySize {
		return c, host.ErrInvalidField
	}
	copy(c[:], buf)
	return c, nil
}

// IsXRP reports whether the code is the native all-zero currency.
func (c Currency) IsXRP() bool {
	return c == XRP
}

// IsStandard reports whether the code is a standard three-letter code:
// printable ASCII in bytes 12..14, zero everywhere else.
func (c Currency) IsStandard() bool {
	for i, b := range c {
		if i >= 12 && i <= 14 {
			if b < 0x21 || b > 0x7e {
				return false
			}
		} else if b != 0 {
			return false
		}
	}
	return true
}

// ISO returns the three-letter code, or the empty string for non-standard
// currencies and XRP.
func (c Currency) ISO() string {
	if !c.IsStandard() {
		return ""
	}
	return string(c[12:15])
}

func (c Currency) String() string {
	if c.IsXRP() {
		return "XRP"
	}
	if iso := c.ISO(); iso != "" {
		return iso
	}
	return hex.EncodeToString(c[:])
}
