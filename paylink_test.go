package paylink

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stxpay/paylink/logger"
	"github.com/stxpay/paylink/metrics"
	"github.com/stxpay/paylink/registry"
	"github.com/stxpay/paylink/types"
)

const (
	evmAddr    = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"
	stacksAddr = "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7"
)

func TestNewWithOptions(t *testing.T) {
	p := New(
		WithLogger(logger.NoopLogger{}),
		WithMetrics(metrics.NoopRecorder{}),
	)
	require.NotNil(t, p)
}

func TestCanonicalAddress(t *testing.T) {
	p := New()

	evm, err := p.CanonicalAddress(evmAddr)
	require.NoError(t, err)
	require.Len(t, evm, 66)
	require.Equal(t, strings.ToLower(evmAddr[2:]), evm[26:])

	stx, err := p.CanonicalAddress(stacksAddr)
	require.NoError(t, err)
	require.Len(t, stx, 66)

	again, err := p.CanonicalAddress(stacksAddr)
	require.NoError(t, err)
	require.Equal(t, stx, again)

	_, err = p.CanonicalAddress("not-an-address")
	require.Error(t, err)
}

func TestParseAddress(t *testing.T) {
	p := New()

	addr, err := p.ParseAddress(evmAddr)
	require.NoError(t, err)
	require.Equal(t, types.FamilyEVM, addr.Family)

	_, err = p.ParseAddress("")
	require.Error(t, err)
}

func TestTokenAmounts(t *testing.T) {
	p := New()

	v, err := p.ParseTokenAmount("100.5", types.DefaultTokenDecimals)
	require.NoError(t, err)
	require.Equal(t, int64(100_500_000), v.Int64())
	require.Equal(t, "100.5", p.FormatTokenAmount(v, types.DefaultTokenDecimals))

	// Zero passes the codec grammar but not the validation boundary.
	_, err = p.ParseTokenAmount("0", types.DefaultTokenDecimals)
	require.Error(t, err)

	_, err = p.ParseTokenAmount("1.2345678", types.DefaultTokenDecimals)
	require.Error(t, err)
}

func TestInvoiceSurface(t *testing.T) {
	p := New()

	inv := &types.Invoice{
		Recipient: stacksAddr,
		Amount:    "12.34",
		Memo:      "déjeuner ☀",
		Network:   "stacks",
	}

	token, err := p.EncodeInvoice(inv)
	require.NoError(t, err)

	decoded := p.DecodeInvoice(token)
	require.NotNil(t, decoded)
	require.Equal(t, inv, decoded)

	require.Nil(t, p.DecodeInvoice("!!not base64!!"))

	u, err := p.CreatePaymentURL(inv, "https://pay.example.com")
	require.NoError(t, err)
	require.Equal(t, inv, p.ParsePaymentURL(u))

	_, err = p.EncodeInvoice(&types.Invoice{Recipient: stacksAddr, Amount: "0"})
	require.Error(t, err)
}

func TestRegistrySurface(t *testing.T) {
	p := New()

	require.Equal(t, uint32(0), p.DomainID(types.NetworkEthereum))
	require.NotZero(t, p.DomainID(types.NetworkStacks))

	c := p.BridgeContract(types.NetworkEthereum, registry.PurposeTokenMessenger)
	require.NotEmpty(t, c.Address)
}

func TestGetVersion(t *testing.T) {
	info := GetVersion()
	require.Equal(t, Version, info["library_version"])
	require.Contains(t, info["supported_networks"], "stacks")
}
