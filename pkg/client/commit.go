package client

import (
	"context"

	"example.com/fabric-gateway-client/pkg/internal/util"
	"github.com/hyperledger/fabric-protos-go/gateway"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
)

// Status is the terminal outcome of a submitted transaction: the
// validation code assigned by the committing peer, the block it landed in,
// and whether that code was VALID.
type Status struct {
	Code        peer.TxValidationCode
	Successful  bool
	BlockNumber uint64
}

// Commit polls for the terminal status of a previously submitted
// transaction. Status is resolved at most once; repeated calls after
// resolution return the same cached Status without re-issuing the RPC.
type Commit struct {
	client        *gatewayClient
	signingID     *signingIdentity
	channelName   string
	transactionID string
	signedRequest *gateway.SignedCommitStatusRequest
	status        *Status
}

func newCommit(client *gatewayClient, signingID *signingIdentity, channelName, transactionID string) (*Commit, error) {
	creator, err := signingID.Creator()
	if err != nil {
		return nil, err
	}

	requestBytes, err := util.Marshal(&gateway.CommitStatusRequest{
		ChannelId:     channelName,
		TransactionId: transactionID,
		Identity:      creator,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal commit status request")
	}

	return &Commit{
		client:        client,
		signingID:     signingID,
		channelName:   channelName,
		transactionID: transactionID,
		signedRequest: &gateway.SignedCommitStatusRequest{Request: requestBytes},
	}, nil
}

// TransactionID returns the transaction ID this Commit tracks.
func (c *Commit) TransactionID() string {
	return c.transactionID
}

// Digest returns the signing surface for this commit status request:
// hash(requestBytes).
func (c *Commit) Digest() []byte {
	return c.signingID.Hash(c.signedRequest.GetRequest())
}

// Bytes returns the marshalled, unsigned commit status request bytes for
// export to an out-of-process signer.
func (c *Commit) Bytes() ([]byte, error) {
	return c.signedRequest.GetRequest(), nil
}

func (c *Commit) sign() error {
	if len(c.signedRequest.GetSignature()) > 0 {
		return nil
	}

	signature, err := c.signingID.Sign(c.Digest())
	if err != nil {
		return err
	}

	c.signedRequest.Signature = signature
	return nil
}

// Status blocks until the transaction's terminal commit status is
// available. A non-VALID code is reported in the returned Status without
// itself being an error. The Gateway's configured commit-status timeout
// applies.
func (c *Commit) Status() (*Status, error) {
	ctx, cancel := defaultTimeoutContext(context.Background(), c.client.commitStatusTimeout)
	defer cancel()

	return c.StatusWithContext(ctx)
}

// StatusWithContext is Status with an explicit context in place of the
// Gateway's configured commit-status timeout.
func (c *Commit) StatusWithContext(ctx context.Context) (*Status, error) {
	if c.status != nil {
		return c.status, nil
	}

	if err := c.sign(); err != nil {
		return nil, err
	}

	response, err := c.client.grpcClient.CommitStatus(ctx, c.signedRequest)
	if err != nil {
		return nil, newCommitStatusError(c.transactionID, err)
	}

	c.status = &Status{
		Code:        response.GetResult(),
		Successful:  response.GetResult() == peer.TxValidationCode_VALID,
		BlockNumber: response.GetBlockNumber(),
	}

	return c.status, nil
}

// newSignedCommit decodes a previously exported commit status request,
// fills its signature and reconstructs the transaction ID by re-parsing
// the embedded CommitStatusRequest. As with newSignedTransaction, a
// mismatch between the caller's expectation and the decoded bytes is not
// independently checked; see the open design question this preserves.
func newSignedCommit(client *gatewayClient, signingID *signingIdentity, requestBytes, signature []byte) (*Commit, error) {
	request := &gateway.CommitStatusRequest{}
	if err := util.Unmarshal(requestBytes, request); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal commit status request")
	}

	return &Commit{
		client:        client,
		signingID:     signingID,
		channelName:   request.GetChannelId(),
		transactionID: request.GetTransactionId(),
		signedRequest: &gateway.SignedCommitStatusRequest{Request: requestBytes, Signature: signature},
	}, nil
}
