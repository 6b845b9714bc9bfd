package client

import (
	"testing"

	"example.com/fabric-gateway-client/pkg/identity"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// testIdentity is a minimal Identity used across this package's tests, in
// place of a real X.509 certificate.
type testIdentity struct {
	mspID       string
	credentials []byte
}

func (i *testIdentity) MspID() string      { return i.mspID }
func (i *testIdentity) Credentials() []byte { return i.credentials }

// testCredentials bundles the identity and signer used by default across
// this package's tests.
type testCredentials struct {
	identity identity.Identity
	sign     identity.Sign
}

// TestCredentials is the default identity and signer supplied to every
// Gateway built by AssertNewTestGateway, unless overridden.
var TestCredentials = testCredentials{
	identity: &testIdentity{mspID: "MSP_ID", credentials: []byte("CREDENTIALS")},
	sign: func(digest []byte) ([]byte, error) {
		return []byte("SIGNATURE"), nil
	},
}

// NewStatusError builds a gRPC status error with the given code and
// message, as returned by a failing RPC.
func NewStatusError(t *testing.T, code codes.Code, message string) error {
	t.Helper()
	return status.Error(code, message)
}

// AssertNewTestGateway builds a Gateway using TestCredentials, overridable
// by options, failing t if Connect returns an error.
func AssertNewTestGateway(t *testing.T, options ...ConnectOption) *Gateway {
	t.Helper()
	options = append([]ConnectOption{WithSign(TestCredentials.sign)}, options...)
	gw, err := Connect(TestCredentials.identity, options...)
	require.NoError(t, err)
	return gw
}

// AssertNewTestNetwork builds a Network named name from a test Gateway.
func AssertNewTestNetwork(t *testing.T, name string, options ...ConnectOption) *Network {
	t.Helper()
	gw := AssertNewTestGateway(t, options...)
	return gw.GetNetwork(name)
}

// AssertNewTestContract builds a Contract for the default, unnamed contract
// in chaincodeName on a test network.
func AssertNewTestContract(t *testing.T, chaincodeName string, options ...ConnectOption) *Contract {
	t.Helper()
	return AssertNewTestNetwork(t, "NETWORK", options...).GetContract(chaincodeName)
}

// AssertNewTestContractWithName builds a Contract for the named contract in
// chaincodeName on a test network.
func AssertNewTestContractWithName(t *testing.T, chaincodeName, contractName string, options ...ConnectOption) *Contract {
	t.Helper()
	return AssertNewTestNetwork(t, "NETWORK", options...).GetContractWithName(chaincodeName, contractName)
}

func bytesAsStrings(values [][]byte) []string {
	result := make([]string, len(values))
	for i, value := range values {
		result[i] = string(value)
	}
	return result
}
