// Package invoice serializes payment requests into short URL-safe tokens
// and back. Integrity comes from schema re-validation on decode; the
// token is an opaque carrier, not a signed credential.
package invoice

import (
	"encoding/base64"
	"net/url"
	"strings"

	"github.com/stxpay/paylink/types"
	"github.com/stxpay/paylink/utils"
)

// PaymentPath is the route payment URLs resolve to.
const PaymentPath = "/pay"

// TokenParam is the query parameter carrying the encoded invoice.
const TokenParam = "i"

// Encode validates an invoice and serializes it into an unpadded URL-safe
// base64 token. Memos are encoded as UTF-8 bytes, so non-ASCII content
// survives the round trip.
func Encode(inv *types.Invoice) (string, error) {
	data, err := utils.SerializeInvoice(inv)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// Decode reverses Encode. It is total over untrusted input: an invalid
// base64 alphabet, malformed JSON, or a payload failing the invoice
// schema all yield nil, never an error. Decode commonly runs on
// attacker-controlled URL query values.
func Decode(token string) *types.Invoice {
	if token == "" {
		return nil
	}
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil
	}
	inv, err := utils.ParseInvoice(data)
	if err != nil {
		return nil
	}
	return inv
}

// CreatePaymentURL builds a shareable payment link embedding the encoded
// invoice: {baseURL}/pay?i={token}, or a bare /pay?i={token} when no base
// URL is supplied. Pure string construction; the token alphabet needs no
// further escaping.
func CreatePaymentURL(inv *types.Invoice, baseURL string) (string, error) {
	token, err := Encode(inv)
	if err != nil {
		return "", err
	}
	base := strings.TrimSuffix(baseURL, "/")
	return base + PaymentPath + "?" + TokenParam + "=" + token, nil
}

// ParsePaymentURL extracts and decodes the invoice token from a payment
// URL. Like Decode it is total: any malformed input yields nil.
func ParsePaymentURL(raw string) *types.Invoice {
	u, err := url.Parse(raw)
	if err != nil {
		return nil
	}
	return Decode(u.Query().Get(TokenParam))
}
