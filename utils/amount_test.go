package utils

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTokenAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int
		want     int64
	}{
		{"integer", "100", 6, 100_000_000},
		{"one fractional digit", "100.5", 6, 100_500_000},
		{"full precision", "100.123456", 6, 100_123_456},
		{"sub unit", "0.000001", 6, 1},
		{"zero", "0", 6, 0},
		{"scale zero", "42", 0, 42},
		{"two decimals", "19.99", 2, 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTokenAmount(tt.amount, tt.decimals)
			require.NoError(t, err)
			require.Equal(t, tt.want, got.Int64())
		})
	}
}

func TestParseTokenAmountLargeValue(t *testing.T) {
	// Exceeds uint64; must stay exact in the big.Int domain.
	got, err := ParseTokenAmount("123456789012345678901234567890.123456", 6)
	require.NoError(t, err)

	want, ok := new(big.Int).SetString("123456789012345678901234567890123456", 10)
	require.True(t, ok)
	require.Zero(t, got.Cmp(want))
}

func TestParseTokenAmountRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int
	}{
		{"over precision", "100.1234567", 6},
		{"negative", "-100", 6},
		{"non numeric", "abc", 6},
		{"empty fraction", "100.", 6},
		{"empty integer", ".5", 6},
		{"double dot", "1.2.3", 6},
		{"empty", "", 6},
		{"negative decimals", "100", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTokenAmount(tt.amount, tt.decimals)
			require.Error(t, err)
		})
	}
}

func TestFormatTokenAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		decimals int
		want     string
	}{
		{"whole units", 100_000_000, 6, "100"},
		{"fractional", 100_500_000, 6, "100.5"},
		{"full precision", 100_123_456, 6, "100.123456"},
		{"sub unit", 1, 6, "0.000001"},
		{"zero", 0, 6, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatTokenAmount(big.NewInt(tt.value), tt.decimals))
		})
	}
}

func TestAmountRoundTrip(t *testing.T) {
	// decode(encode(s)) equals s up to trailing-zero normalization.
	for _, s := range []string{"1", "100.5", "0.000001", "12.340000", "999999.999999"} {
		v, err := ParseTokenAmount(s, 6)
		require.NoError(t, err)

		back, err := ParseTokenAmount(FormatTokenAmount(v, 6), 6)
		require.NoError(t, err)
		require.Zero(t, v.Cmp(back), "round trip changed value for %s", s)
	}
}

func TestConvertDecimals(t *testing.T) {
	amount := big.NewInt(1_500_000) // 1.5 at scale 6

	up := ConvertDecimals(amount, 6, 18)
	want, _ := new(big.Int).SetString("1500000000000000000", 10)
	require.Zero(t, up.Cmp(want))

	down := ConvertDecimals(up, 18, 6)
	require.Zero(t, down.Cmp(amount))

	same := ConvertDecimals(amount, 6, 6)
	require.Zero(t, same.Cmp(amount))
	require.NotSame(t, amount, same)

	// Downscaling truncates toward zero.
	require.Equal(t, int64(1), ConvertDecimals(big.NewInt(1_999_999), 6, 0).Int64())
}
