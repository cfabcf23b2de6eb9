package utils

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/stxpay/paylink/types"
)

// ParseTokenAmount converts a decimal amount string into a fixed-point
// integer at the given scale: the integer part is multiplied by
// 10^decimals and the fractional part is right-padded with zeros to
// exactly decimals digits. All arithmetic stays in the big.Int domain;
// amounts never pass through binary floating point.
//
//	ParseTokenAmount("100.5", 6) == 100500000
//
// Validation normally happens upstream (ValidateAmount), but the codec
// still rejects malformed or over-precision input when called directly.
func ParseTokenAmount(amount string, decimals int) (*big.Int, error) {
	if decimals < 0 || decimals > 77 {
		return nil, types.NewValidationError(types.ErrInvalidAmount,
			"decimals out of range: %d", decimals)
	}

	intPart, fracPart, hasFrac := strings.Cut(amount, ".")
	if !isDigits(intPart) {
		return nil, types.NewValidationError(types.ErrInvalidAmount,
			"invalid amount format: %s", amount)
	}
	if hasFrac {
		if !isDigits(fracPart) {
			return nil, types.NewValidationError(types.ErrInvalidAmount,
				"invalid amount format: %s", amount)
		}
		if len(fracPart) > decimals {
			return nil, types.NewValidationError(types.ErrInvalidAmount,
				"amount has more than %d decimal places", decimals)
		}
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	result, _ := new(big.Int).SetString(intPart, 10)
	result.Mul(result, scale)

	if hasFrac {
		// Right-pad to exactly `decimals` digits before parsing.
		padded := fracPart + strings.Repeat("0", decimals-len(fracPart))
		frac, _ := new(big.Int).SetString(padded, 10)
		result.Add(result, frac)
	}

	return result, nil
}

// FormatTokenAmount renders a fixed-point integer back into a decimal
// string at the given scale, trimming trailing fractional zeros. The
// represented value is never altered.
func FormatTokenAmount(amount *big.Int, decimals int) string {
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}

// ConvertDecimals rescales a fixed-point amount from one decimal
// convention to another, e.g. between a 6-decimal stablecoin and an
// 18-decimal wrapped representation. Downscaling truncates toward zero.
func ConvertDecimals(amount *big.Int, fromDecimals, toDecimals int) *big.Int {
	if fromDecimals == toDecimals {
		return new(big.Int).Set(amount)
	}

	result := new(big.Int).Set(amount)

	if fromDecimals > toDecimals {
		divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(fromDecimals-toDecimals)), nil)
		result.Div(result, divisor)
	} else {
		multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(toDecimals-fromDecimals)), nil)
		result.Mul(result, multiplier)
	}

	return result
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
