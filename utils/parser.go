package utils

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/stxpay/paylink/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators used by the Invoice struct tags.
	_ = validate.RegisterValidation("payaddress", validateAddressTag)
	_ = validate.RegisterValidation("payamount", validateAmountTag)
}

func validateAddressTag(fl validator.FieldLevel) bool {
	_, err := ParseAddress(fl.Field().String())
	return err == nil
}

func validateAmountTag(fl validator.FieldLevel) bool {
	_, err := ValidateAmount(fl.Field().String())
	return err == nil
}

// ValidateInvoice runs the full invoice schema: struct tags plus the
// address, amount and memo validators.
func ValidateInvoice(inv *types.Invoice) error {
	if inv == nil {
		return types.NewValidationError(types.ErrInvalidInvoice, "invoice is required")
	}
	if err := validate.Struct(inv); err != nil {
		return &types.PaylinkError{
			Code:    types.ErrInvalidInvoice,
			Message: fmt.Sprintf("validation failed: %v", err),
		}
	}
	return nil
}

// ParseInvoice parses and validates an Invoice from JSON.
func ParseInvoice(data []byte) (*types.Invoice, error) {
	var inv types.Invoice

	if err := json.Unmarshal(data, &inv); err != nil {
		return nil, &types.PaylinkError{
			Code:    types.ErrInvalidInvoice,
			Message: fmt.Sprintf("failed to parse invoice: %v", err),
		}
	}

	if err := ValidateInvoice(&inv); err != nil {
		return nil, err
	}

	return &inv, nil
}

// SerializeInvoice validates an Invoice and converts it to compact JSON.
// Memo content is emitted as UTF-8, so non-ASCII memos survive the round
// trip unchanged.
func SerializeInvoice(inv *types.Invoice) ([]byte, error) {
	if err := ValidateInvoice(inv); err != nil {
		return nil, err
	}
	return json.Marshal(inv)
}
