package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNetworkClassification(t *testing.T) {
	require.True(t, NetworkEthereum.IsEVM())
	require.False(t, NetworkEthereum.IsStacks())
	require.True(t, NetworkStacks.IsStacks())
	require.False(t, NetworkStacks.IsEVM())
	require.Equal(t, "stacks", NetworkStacks.String())
}

func TestAddressNetwork(t *testing.T) {
	evm := Address{Family: FamilyEVM, Raw: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"}
	require.Equal(t, NetworkEthereum, evm.Network())

	stx := Address{Family: FamilyStacks, Raw: "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7"}
	require.Equal(t, NetworkStacks, stx.Network())
}

func TestAddressIsTestnet(t *testing.T) {
	tests := []struct {
		name string
		addr Address
		want bool
	}{
		{
			name: "stacks mainnet",
			addr: Address{Family: FamilyStacks, Raw: "SP2J6ZY48GV1EZ5V2V5RB9MP66SW86PYKKNRV9EJ7"},
			want: false,
		},
		{
			name: "stacks testnet",
			addr: Address{Family: FamilyStacks, Raw: "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"},
			want: true,
		},
		{
			name: "evm carries no environment marker",
			addr: Address{Family: FamilyEVM, Raw: "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.addr.IsTestnet())
		})
	}
}
