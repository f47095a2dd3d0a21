package scrape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizePrice(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"czech thousands and comma", "1 234,50 Kč", "1234.50"},
		{"nbsp thousands", "1 999 Kč", "1999.00"},
		{"plain integer with currency", "129 Kč", "129.00"},
		{"dollar prefix", "$49.99", "49.99"},
		{"euro prefix", "€15,90", "15.90"},
		{"currency code suffix", "2 500 CZK", "2500.00"},
		{"bare number", "42", "42.00"},
		{"negative number", "-10,5", "-10.50"},
		{"unparseable passthrough", "call us", "call us"},
		{"surrounding whitespace", "  99 Kč  ", "99.00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizePrice(tc.input)
			require.NotNil(t, got)
			require.Equal(t, tc.want, *got)
		})
	}
}

func TestNormalizePriceEmpty(t *testing.T) {
	require.Nil(t, NormalizePrice(""))
	require.Nil(t, NormalizePrice("   "))
	require.Nil(t, NormalizePrice("\t\n"))
}
