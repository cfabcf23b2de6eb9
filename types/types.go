package types

import (
	"fmt"
	"strings"
)

// AddressFamily classifies an address into its source-chain encoding.
type AddressFamily string

const (
	FamilyEVM    AddressFamily = "evm"
	FamilyStacks AddressFamily = "stacks"
)

// Address is a blockchain address tagged with its family. Values are
// constructed through the validators in the utils package; once built,
// downstream consumers treat them as well-formed and never re-validate.
type Address struct {
	Family AddressFamily `json:"family"`
	Raw    string        `json:"raw"`
}

func (a Address) String() string {
	return a.Raw
}

// Network returns the network an address of this family settles on.
func (a Address) Network() Network {
	if a.Family == FamilyEVM {
		return NetworkEthereum
	}
	return NetworkStacks
}

// IsTestnet reports whether the address belongs to a test environment.
// Only Stacks addresses encode their environment in the version prefix;
// EVM addresses carry no environment marker and report false.
func (a Address) IsTestnet() bool {
	return a.Family == FamilyStacks && strings.HasPrefix(a.Raw, string(StacksTestnetPrefix))
}

// Token amount conventions.
const (
	// DefaultTokenDecimals is the fixed-point scale used for USDC-style
	// stablecoin amounts.
	DefaultTokenDecimals = 6

	// MaxAmountDecimals is the largest number of fractional digits the
	// amount grammar accepts. Inputs beyond this are rejected, not rounded.
	MaxAmountDecimals = 6

	// MaxMemoLength bounds invoice memos, counted in runes.
	MaxMemoLength = 50
)

// Invoice is a payment request: who gets paid, how much, and optional
// token, memo and network hints. Encode/decode always produce fresh
// values; an Invoice is never mutated after construction.
type Invoice struct {
	// Recipient is the payee address, either an EVM address or a Stacks
	// address. Validated against both families on encode and decode.
	Recipient string `json:"recipient" validate:"required,payaddress"`

	// Amount is a positive decimal string with at most six fractional
	// digits (e.g. "100.5").
	Amount string `json:"amount" validate:"required,payamount"`

	// Token is an optional token symbol or contract identifier.
	Token string `json:"token,omitempty"`

	// Memo is an optional free-form note, at most MaxMemoLength runes.
	Memo string `json:"memo,omitempty" validate:"omitempty,max=50"`

	// Network pins the invoice to a settlement network.
	Network string `json:"network,omitempty" validate:"omitempty,oneof=stacks ethereum"`
}

// PaylinkError is the structured error returned across the library's
// public surface.
type PaylinkError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func (e PaylinkError) Error() string {
	return e.Message
}

// Common error codes
const (
	ErrInvalidAddress     = "INVALID_ADDRESS"
	ErrInvalidAmount      = "INVALID_AMOUNT"
	ErrInvalidMemo        = "INVALID_MEMO"
	ErrInvalidInvoice     = "INVALID_INVOICE"
	ErrInvalidCanonical   = "INVALID_CANONICAL"
	ErrUnsupportedNetwork = "UNSUPPORTED_NETWORK"
)

// NewValidationError builds a PaylinkError for a schema failure on user
// input. These are always recoverable and returned as values, never panics.
func NewValidationError(code, format string, args ...interface{}) *PaylinkError {
	return &PaylinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
