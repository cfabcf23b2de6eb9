// Package paylink normalizes heterogeneous blockchain addresses and
// decimal token amounts into canonical, byte-exact representations for
// cross-chain messaging, and encodes payment requests into shareable
// URL-safe tokens.
package paylink

import (
	"math/big"
	"time"

	"github.com/stxpay/paylink/invoice"
	"github.com/stxpay/paylink/logger"
	"github.com/stxpay/paylink/metrics"
	"github.com/stxpay/paylink/registry"
	"github.com/stxpay/paylink/types"
	"github.com/stxpay/paylink/utils"
)

// Paylink is the main entry point. All operations are pure, synchronous
// computations over immutable inputs; a single instance is safe for
// concurrent use from any number of goroutines.
type Paylink struct {
	logger  logger.Logger
	metrics metrics.Recorder
}

// New creates a Paylink instance. Logging and metrics default to no-ops.
func New(opts ...Option) *Paylink {
	p := &Paylink{
		logger:  logger.NoopLogger{},
		metrics: metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseAddress validates an address string against both supported
// families and returns the tagged result.
func (p *Paylink) ParseAddress(address string) (types.Address, error) {
	addr, err := utils.ParseAddress(address)
	if err != nil {
		p.metrics.IncCounter("address_rejected", nil)
		return types.Address{}, err
	}
	return addr, nil
}

// CanonicalAddress validates an address of either family and returns its
// 32-byte canonical form as 0x + 64 lowercase hex characters.
func (p *Paylink) CanonicalAddress(address string) (string, error) {
	start := time.Now()

	addr, err := utils.ParseAddress(address)
	if err != nil {
		p.metrics.IncCounter("address_rejected", nil)
		return "", err
	}

	canonical, err := utils.AddressToBytes32(addr)
	if err != nil {
		return "", err
	}

	labels := map[string]string{"network": addr.Network().String()}
	p.metrics.IncCounter("address_canonicalized", labels)
	p.metrics.ObserveLatency("canonicalize", time.Since(start), labels)
	p.logger.Debug("canonicalized address", map[string]any{
		"family":    string(addr.Family),
		"canonical": canonical,
	})

	return canonical, nil
}

// ParseTokenAmount converts a decimal amount string to a fixed-point
// integer at the given scale without floating-point arithmetic.
func (p *Paylink) ParseTokenAmount(amount string, decimals int) (*big.Int, error) {
	if _, err := utils.ValidateAmount(amount); err != nil {
		p.metrics.IncCounter("amount_rejected", nil)
		return nil, err
	}
	return utils.ParseTokenAmount(amount, decimals)
}

// FormatTokenAmount renders a fixed-point integer back to a decimal string.
func (p *Paylink) FormatTokenAmount(amount *big.Int, decimals int) string {
	return utils.FormatTokenAmount(amount, decimals)
}

// EncodeInvoice serializes a payment request into a URL-safe token.
func (p *Paylink) EncodeInvoice(inv *types.Invoice) (string, error) {
	start := time.Now()

	token, err := invoice.Encode(inv)
	if err != nil {
		p.metrics.IncCounter("invoice_rejected", nil)
		p.logger.Warn("invoice failed validation", map[string]any{"error": err.Error()})
		return "", err
	}

	labels := map[string]string{"network": inv.Network}
	p.metrics.IncCounter("invoice_encoded", labels)
	p.metrics.ObserveLatency("encode_invoice", time.Since(start), labels)

	return token, nil
}

// DecodeInvoice reverses EncodeInvoice. It is total over untrusted input
// and returns nil for any malformed or schema-invalid token.
func (p *Paylink) DecodeInvoice(token string) *types.Invoice {
	inv := invoice.Decode(token)
	if inv == nil {
		p.metrics.IncCounter("invoice_decode_failed", nil)
		return nil
	}
	p.metrics.IncCounter("invoice_decoded", map[string]string{"network": inv.Network})
	return inv
}

// CreatePaymentURL builds {baseURL}/pay?i={token} for a validated invoice.
func (p *Paylink) CreatePaymentURL(inv *types.Invoice, baseURL string) (string, error) {
	return invoice.CreatePaymentURL(inv, baseURL)
}

// ParsePaymentURL extracts and decodes the invoice carried by a payment
// URL, returning nil for any malformed input.
func (p *Paylink) ParsePaymentURL(raw string) *types.Invoice {
	return invoice.ParsePaymentURL(raw)
}

// DomainID returns the cross-chain messaging domain for a network.
// Unknown networks are a programmer error and panic.
func (p *Paylink) DomainID(network types.Network) uint32 {
	return registry.DomainID(network)
}

// BridgeContract returns the deployed bridge contract for a network and
// purpose. Unknown keys are a programmer error and panic.
func (p *Paylink) BridgeContract(network types.Network, purpose registry.ContractPurpose) registry.Contract {
	return registry.BridgeContract(network, purpose)
}

// Version information
const (
	Version = "1.0.0"
)

// GetVersion returns version information
func GetVersion() map[string]interface{} {
	return map[string]interface{}{
		"library_version": Version,
		"supported_networks": []string{
			string(types.NetworkEthereum),
			string(types.NetworkStacks),
		},
		"canonical_bytes": utils.CanonicalLength,
		"amount_decimals": types.DefaultTokenDecimals,
	}
}
