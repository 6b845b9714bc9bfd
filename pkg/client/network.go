package client

// Network represents a channel on the Fabric network that the connecting
// Gateway can interact with. Applications obtain a Network from a Gateway
// using GetNetwork; it holds no state of its own beyond the channel name
// and a non-owning reference back to the Gateway.
type Network struct {
	gateway   *Gateway
	signingID *signingIdentity
	name      string
}

func newNetwork(gateway *Gateway, name string) *Network {
	return &Network{gateway: gateway, signingID: gateway.signingID, name: name}
}

// Name returns the name of the channel this Network represents.
func (n *Network) Name() string {
	return n.name
}

// GetContract returns a Contract representing the default smart contract
// within the named chaincode.
func (n *Network) GetContract(chaincodeName string) *Contract {
	return n.GetContractWithName(chaincodeName, "")
}

// GetContractWithName returns a Contract representing a specific named
// smart contract within a chaincode that hosts more than one.
func (n *Network) GetContractWithName(chaincodeName, contractName string) *Contract {
	return newContract(n, chaincodeName, contractName)
}
