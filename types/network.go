package types

// Network represents supported blockchain networks.
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkStacks   Network = "stacks"
)

// StacksAddressPrefix marks the environment a Stacks address belongs to.
type StacksAddressPrefix string

const (
	// StacksMainnetPrefix starts every mainnet Stacks address.
	StacksMainnetPrefix StacksAddressPrefix = "SP"
	// StacksTestnetPrefix starts every testnet Stacks address.
	StacksTestnetPrefix StacksAddressPrefix = "ST"
)

// Helper functions for network classification
func (n Network) IsEVM() bool {
	return n == NetworkEthereum
}

func (n Network) IsStacks() bool {
	return n == NetworkStacks
}

func (n Network) String() string {
	return string(n)
}
