package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goXRPLwasm/host"
)

func TestCurrencyFromISO(t *testing.T) {
	c, err := CurrencyFromISO("USD")
	require.NoError(t, err)
	assert.True(t, c.IsStandard())
	assert.Equal(t, "USD", c.ISO())
	assert.Equal(t, "USD", c.String())

	_, err = CurrencyFromISO("USDX")
	assert.ErrorIs(t, err, host.ErrInvalidParams)
}

func TestCurrencyClassification(t *testing.T) {
	var nonstd Currency
	nonstd[0] = 0x01

	tests := []struct {
		description  string
		currency     Currency
		wantXRP      bool
		wantStandard bool
	}{
		{
			description: "all zero is the native currency",
			currency:    XRP,
			wantXRP:     true,
		},
		{
			description:  "three letter code",
			currency:     Currency{12: 'E', 13: 'U', 14: 'R'},
			wantStandard: true,
		},
		{
			description: "nonzero byte outside the code window",
			currency:    nonstd,
		},
		{
			description: "non-printable code bytes",
			currency:    Currency{12: 0x01, 13: 'U', 14: 'R'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			assert.Equal(t, tt.wantXRP, tt.currency.IsXRP())
			assert.Equal(t, tt.wantStandard, tt.currency.IsStandard())
		})
	}
}

func TestDecodeCurrency(t *testing.T) {
	_, err := DecodeCurrency(make([]byte, 19))
	assert.ErrorIs(t, err, host.ErrInvalidField)

	c, err := DecodeCurrency(make([]byte, CurrencySize))
	require.NoError(t, err)
	assert.True(t, c.IsXRP())
}
