package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/stxpay/paylink/types"
)

// StacksAddressLength is the total length of a c32check-encoded Stacks
// address: the two-character version prefix plus a 39-character body.
const StacksAddressLength = 41

var (
	evmAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

	// Crockford base32 alphabet used by c32check: 0-9 and A-Z minus I, L, O, U.
	stacksBodyRe = regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{39}$`)

	amountRe = regexp.MustCompile(`^\d+(\.\d{1,6})?$`)
)

// ValidateEVMAddress checks that address is a 0x-prefixed 20-byte hex
// address. Hex case is not significant.
func ValidateEVMAddress(address string) error {
	if address == "" {
		return types.NewValidationError(types.ErrInvalidAddress, "address cannot be empty")
	}
	if !evmAddressRe.MatchString(address) {
		return types.NewValidationError(types.ErrInvalidAddress, "invalid EVM address: %s", address)
	}
	return nil
}

// ValidateStacksAddress checks that address is a mainnet (SP) or testnet
// (ST) Stacks address of the fixed c32check length.
func ValidateStacksAddress(address string) error {
	if address == "" {
		return types.NewValidationError(types.ErrInvalidAddress, "address cannot be empty")
	}
	if len(address) != StacksAddressLength {
		return types.NewValidationError(types.ErrInvalidAddress,
			"Stacks address must be %d characters long", StacksAddressLength)
	}
	prefix := types.StacksAddressPrefix(address[:2])
	if prefix != types.StacksMainnetPrefix && prefix != types.StacksTestnetPrefix {
		return types.NewValidationError(types.ErrInvalidAddress,
			"Stacks address must start with %s or %s", types.StacksMainnetPrefix, types.StacksTestnetPrefix)
	}
	if !stacksBodyRe.MatchString(address[2:]) {
		return types.NewValidationError(types.ErrInvalidAddress,
			"Stacks address body must be valid c32: %s", address)
	}
	return nil
}

// ParseAddress validates address against both families and returns the
// tagged result. Callers downstream of a successful parse never
// re-validate.
func ParseAddress(address string) (types.Address, error) {
	if ValidateEVMAddress(address) == nil {
		return types.Address{Family: types.FamilyEVM, Raw: address}, nil
	}
	if ValidateStacksAddress(address) == nil {
		return types.Address{Family: types.FamilyStacks, Raw: address}, nil
	}
	return types.Address{}, types.NewValidationError(types.ErrInvalidAddress,
		"address is neither a valid EVM nor Stacks address: %s", address)
}

// ValidateAmount checks that amount is a strictly positive decimal string
// with at most six fractional digits. Over-precision input is rejected,
// not rounded.
func ValidateAmount(amount string) (decimal.Decimal, error) {
	if amount == "" {
		return decimal.Decimal{}, types.NewValidationError(types.ErrInvalidAmount, "amount cannot be empty")
	}
	if !amountRe.MatchString(amount) {
		return decimal.Decimal{}, types.NewValidationError(types.ErrInvalidAmount,
			"invalid amount format: %s", amount)
	}
	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, types.NewValidationError(types.ErrInvalidAmount,
			"invalid amount format: %s", amount)
	}
	if !dec.IsPositive() {
		return decimal.Decimal{}, types.NewValidationError(types.ErrInvalidAmount,
			"amount must be greater than zero")
	}
	return dec, nil
}

// ValidateMemo bounds a memo to types.MaxMemoLength runes. Content is
// otherwise unrestricted.
func ValidateMemo(memo string) error {
	if utf8.RuneCountInString(memo) > types.MaxMemoLength {
		return types.NewValidationError(types.ErrInvalidMemo,
			"memo must be at most %d characters", types.MaxMemoLength)
	}
	return nil
}

// ValidateNetwork checks that network names a supported settlement network.
func ValidateNetwork(network string) error {
	switch types.Network(network) {
	case types.NetworkEthereum, types.NetworkStacks:
		return nil
	}
	return &types.PaylinkError{
		Code:    types.ErrUnsupportedNetwork,
		Message: "unsupported network: " + network,
	}
}

// NormalizeEVMAddress returns the EIP-55 checksummed form of a valid EVM
// address, or the empty string for invalid input.
func NormalizeEVMAddress(address string) string {
	if !strings.HasPrefix(address, "0x") || !common.IsHexAddress(address) {
		return ""
	}
	return common.HexToAddress(address).Hex()
}
