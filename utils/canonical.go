package utils

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/stxpay/paylink/types"
)

// CanonicalLength is the size of the cross-chain address slot in bytes.
const CanonicalLength = 32

// EVMAddressToBytes32 left-pads a 20-byte EVM address with 12 zero bytes
// into the 32-byte canonical slot, matching big-endian word layout on
// chain. The mapping is round-trippable: the low 20 bytes recover the
// original address.
func EVMAddressToBytes32(address string) (string, error) {
	if err := ValidateEVMAddress(address); err != nil {
		return "", err
	}
	return common.BytesToHash(common.HexToAddress(address).Bytes()).Hex(), nil
}

// StacksAddressToBytes32 maps the full checksummed address text through
// Keccak-256 into the canonical slot. The mapping is deterministic but
// one-way: the slot serves as an opaque routing key, not a recoverable
// encoding.
func StacksAddressToBytes32(address string) (string, error) {
	if err := ValidateStacksAddress(address); err != nil {
		return "", err
	}
	return hexutil.Encode(crypto.Keccak256([]byte(address))), nil
}

// AddressToBytes32 canonicalizes a validated Address of either family.
// All canonical values render as 0x followed by exactly 64 lowercase hex
// characters. Calling it with an unvalidated or malformed address fails
// with an INVALID_ADDRESS error; it never truncates or pads bad input.
func AddressToBytes32(addr types.Address) (string, error) {
	switch addr.Family {
	case types.FamilyEVM:
		return EVMAddressToBytes32(addr.Raw)
	case types.FamilyStacks:
		return StacksAddressToBytes32(addr.Raw)
	default:
		return "", &types.PaylinkError{
			Code:    types.ErrInvalidAddress,
			Message: "unknown address family: " + string(addr.Family),
		}
	}
}

// Bytes32ToEVMAddress recovers the EVM address carried in the low 20
// bytes of a canonical value, checksummed. It fails if the value is not
// 32 bytes or if the 12 high padding bytes are nonzero, which means the
// canonical value did not originate from an EVM address.
func Bytes32ToEVMAddress(canonical string) (string, error) {
	b, err := hexutil.Decode(canonical)
	if err != nil || len(b) != CanonicalLength {
		return "", &types.PaylinkError{
			Code:    types.ErrInvalidCanonical,
			Message: "canonical value must be 0x followed by 64 hex characters",
		}
	}
	for _, pad := range b[:CanonicalLength-common.AddressLength] {
		if pad != 0 {
			return "", &types.PaylinkError{
				Code:    types.ErrInvalidCanonical,
				Message: "canonical value does not carry an EVM address",
			}
		}
	}
	return common.BytesToAddress(b).Hex(), nil
}
