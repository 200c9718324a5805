package types

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host"
)

func xrpWire(drops uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, drops&maskDrops|uint64(amountSignBit)<<56)
	return buf
}

func mustCurrency(t *testing.T, iso string) Currency {
	t.Helper()
	c, err := CurrencyFromISO(iso)
	require.NoError(t, err)
	return c
}

func TestDecodeAmountXRP(t *testing.T) {
	tests := []struct {
		description string
		input       []byte
		wantDrops   uint64
		wantErr     error
	}{
		{
			description: "positive drops",
			input:       xrpWire(1_000_000),
			wantDrops:   1_000_000,
		},
		{
			description: "zero drops",
			input:       xrpWire(0),
			wantDrops:   0,
		},
		{
			description: "maximum 57-bit value",
			input:       xrpWire(maskDrops),
			wantDrops:   maskDrops,
		},
		{
			description: "negative native amount is rejected",
			input:       []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x0F, 0x42, 0x40},
			wantErr:     host.ErrInvalidField,
		},
		{
			description: "empty buffer",
			input:       nil,
			wantErr:     host.ErrInvalidField,
		},
		{
			description: "truncated native amount",
			input:       []byte{0x40, 0x00, 0x00},
			wantErr:     host.ErrInvalidField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			a, err := DecodeAmount(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, AmountXRP, a.Kind)
			assert.Equal(t, tt.wantDrops, a.Drops)
		})
	}
}

func TestDecodeAmountIOU(t *testing.T) {
	cur := mustCurrency(t, "USD")
	var issuer AccountID
	for i := range issuer {
		issuer[i] = byte(i + 1)
	}

	buf := make([]byte, AmountSize)
	buf[0] = amountTypeBit | amountSignBit
	buf[1] = 0x12
	copy(buf[8:28], cur[:])
	copy(buf[28:48], issuer[:])

	a, err := DecodeAmount(buf)
	require.NoError(t, err)
	assert.Equal(t, AmountIOU, a.Kind)
	assert.Equal(t, cur, a.Currency)
	assert.Equal(t, issuer, a.Issuer)
	assert.Equal(t, buf[:8], a.Float[:])

	// The 48-byte form is mandatory for issued amounts.
	_, err = DecodeAmount(buf[:40])
	assert.ErrorIs(t, err, host.ErrInvalidField)
}

func TestDecodeAmountMPT(t *testing.T) {
	var issuer AccountID
	issuer[0] = 0xAA
	id := NewMptID(42, issuer)

	buf := make([]byte, mptAmountSize)
	buf[0] = amountIsMPTBit | amountSignBit
	binary.BigEndian.PutUint64(buf[1:9], 500)
	copy(buf[9:33], id[:])

	a, err := DecodeAmount(buf)
	require.NoError(t, err)
	assert.Equal(t, AmountMPT, a.Kind)
	assert.Equal(t, uint64(500), a.Units)
	assert.True(t, a.Positive)
	assert.Equal(t, id, a.MptID)

	// Negative MPT amounts decode with Positive false.
	buf[0] = amountIsMPTBit
	a, err = DecodeAmount(buf)
	require.NoError(t, err)
	assert.False(t, a.Positive)
}

func TestAmountRoundTrip(t *testing.T) {
	var issuer AccountID
	issuer[5] = 0x33

	tests := []struct {
		description string
		amount      Amount
		wantLen     int
	}{
		{
			description: "native",
			amount:      XRPAmount(123_456_789),
			wantLen:     xrpAmountSize,
		},
		{
			description: "issued",
			amount:      IOUAmount(OpaqueFloat{0xD4, 0x83, 0x8D, 0x7E, 0xA4, 0xC6, 0x80, 0x00}, mustCurrency(t, "EUR"), issuer),
			wantLen:     AmountSize,
		},
		{
			description: "multi purpose token",
			amount:      MPTAmount(999, true, NewMptID(7, issuer)),
			wantLen:     mptAmountSize,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			wire, n := tt.amount.Bytes()
			require.Equal(t, tt.wantLen, n)

			back, err := DecodeAmount(wire[:n])
			require.NoError(t, err)
			assert.Equal(t, tt.amount, back)
		})
	}
}

// A buffer whose length does not match its discriminant must be rejected
// rather than silently treated as native.
func TestDecodeAmountLengthMismatch(t *testing.T) {
	buf := make([]byte, AmountSize)
	buf[0] = amountTypeBit | amountSignBit
	for n := 1; n < AmountSize; n++ {
		_, err := DecodeAmount(buf[:n])
		assert.ErrorIs(t, err, host.ErrInvalidField, "length %d", n)
	}
}
