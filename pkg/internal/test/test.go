// Package test holds protobuf unmarshalling helpers shared by tests across
// the module, so that a test asserting on a signed proposal's contents does
// not have to repeat the proposal -> header -> channel header decode chain
// inline.
package test

import (
	"testing"

	"example.com/fabric-gateway-client/pkg/internal/util"
	"github.com/hyperledger/fabric-protos-go/common"
	"github.com/hyperledger/fabric-protos-go/gateway"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/runtime/protoiface"
)

// AssertUnmarshall unmarshals data into message, failing t on error.
func AssertUnmarshall(t *testing.T, data []byte, message protoiface.MessageV1) {
	err := util.Unmarshal(data, message)
	require.NoError(t, err, "failed to unmarshal %T", message)
}

func assertUnmarshallProposal(t *testing.T, signedProposal *gateway.SignedProposal) *peer.Proposal {
	proposal := &peer.Proposal{}
	AssertUnmarshall(t, signedProposal.GetProposalBytes(), proposal)
	return proposal
}

func assertUnmarshallHeader(t *testing.T, signedProposal *gateway.SignedProposal) *common.Header {
	header := &common.Header{}
	AssertUnmarshall(t, assertUnmarshallProposal(t, signedProposal).GetHeader(), header)
	return header
}

// AssertUnmarshallChannelheader decodes the channel header nested inside a
// signed proposal's header.
func AssertUnmarshallChannelheader(t *testing.T, signedProposal *gateway.SignedProposal) *common.ChannelHeader {
	channelHeader := &common.ChannelHeader{}
	AssertUnmarshall(t, assertUnmarshallHeader(t, signedProposal).GetChannelHeader(), channelHeader)
	return channelHeader
}

// AssertUnmarshallProposalPayload decodes the chaincode proposal payload
// nested inside a signed proposal.
func AssertUnmarshallProposalPayload(t *testing.T, signedProposal *gateway.SignedProposal) *peer.ChaincodeProposalPayload {
	payload := &peer.ChaincodeProposalPayload{}
	AssertUnmarshall(t, assertUnmarshallProposal(t, signedProposal).GetPayload(), payload)
	return payload
}

// AssertUnmarshallInvocationSpec decodes the chaincode invocation spec
// nested inside a signed proposal's payload.
func AssertUnmarshallInvocationSpec(t *testing.T, signedProposal *gateway.SignedProposal) *peer.ChaincodeInvocationSpec {
	invocationSpec := &peer.ChaincodeInvocationSpec{}
	AssertUnmarshall(t, AssertUnmarshallProposalPayload(t, signedProposal).GetInput(), invocationSpec)
	return invocationSpec
}
