// Package registry holds the frozen deployment constants for cross-chain
// routing: CCTP-style domain IDs and bridge contract addresses. Entries
// are populated at init and read-only for the process lifetime, so
// concurrent reads need no locking. Looking up an unknown key is a
// programmer error and panics.
package registry

import (
	"fmt"

	"github.com/stxpay/paylink/types"
)

// CCTP-style domain numbering. Ethereum is the home domain.
const (
	DomainEthereum uint32 = 0
	DomainStacks   uint32 = 10
)

// ContractPurpose names the role a bridge contract plays on its network.
type ContractPurpose string

const (
	PurposeTokenMessenger     ContractPurpose = "token-messenger"
	PurposeMessageTransmitter ContractPurpose = "message-transmitter"
	PurposeBridgeRouter       ContractPurpose = "bridge-router"
)

// Contract is a deployed bridge contract entry.
type Contract struct {
	Address string
	Name    string
}

type contractKey struct {
	network types.Network
	purpose ContractPurpose
}

var domainIDs = map[types.Network]uint32{
	types.NetworkEthereum: DomainEthereum,
	types.NetworkStacks:   DomainStacks,
}

var bridgeContracts = map[contractKey]Contract{
	{types.NetworkEthereum, PurposeTokenMessenger}: {
		Address: "0xBd3fa81B58Ba92a82136038B25aDec7066af3155",
		Name:    "TokenMessenger",
	},
	{types.NetworkEthereum, PurposeMessageTransmitter}: {
		Address: "0x0a992d191DEeC32aFe36203Ad87D7d289a738F81",
		Name:    "MessageTransmitter",
	},
	{types.NetworkStacks, PurposeBridgeRouter}: {
		Address: "SP3Y2ZSH8P7D50B0VBTSX11S7XSG24M1VB9YFQA4K.bridge-router",
		Name:    "BridgeRouter",
	},
}

// DomainID returns the cross-chain messaging domain for a network.
func DomainID(network types.Network) uint32 {
	id, ok := domainIDs[network]
	if !ok {
		panic(fmt.Sprintf("registry: unknown network %q", network))
	}
	return id
}

// BridgeContract returns the deployed contract serving the given purpose
// on the given network.
func BridgeContract(network types.Network, purpose ContractPurpose) Contract {
	c, ok := bridgeContracts[contractKey{network, purpose}]
	if !ok {
		panic(fmt.Sprintf("registry: no %s contract on network %q", purpose, network))
	}
	return c
}

// Networks returns the networks with a registered domain ID.
func Networks() []types.Network {
	return []types.Network{types.NetworkEthereum, types.NetworkStacks}
}
