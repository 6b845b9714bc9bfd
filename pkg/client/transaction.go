package client

import (
	"context"

	"example.com/fabric-gateway-client/pkg/internal/util"
	"github.com/hyperledger/fabric-protos-go/common"
	"github.com/hyperledger/fabric-protos-go/gateway"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
)

// Transaction holds the endorsed, not yet submitted, envelope produced by
// Proposal.Endorse. Its result is already known; Submit only forwards the
// envelope to the ordering service.
type Transaction struct {
	client              *gatewayClient
	signingID           *signingIdentity
	channelName         string
	transactionID       string
	preparedTransaction *common.Envelope
	result              []byte
}

// TransactionID returns the transaction ID inherited from the originating
// Proposal.
func (t *Transaction) TransactionID() string {
	return t.transactionID
}

// Result returns the contract return value extracted from the endorsement
// response.
func (t *Transaction) Result() []byte {
	return t.result
}

// Digest returns the signing surface for this transaction: hash(envelope.Payload).
func (t *Transaction) Digest() []byte {
	return t.signingID.Hash(t.preparedTransaction.GetPayload())
}

// Bytes returns the marshalled envelope for export to an out-of-process
// signer.
func (t *Transaction) Bytes() ([]byte, error) {
	envelopeBytes, err := util.Marshal(t.preparedTransaction)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal prepared transaction")
	}
	return envelopeBytes, nil
}

func (t *Transaction) sign() error {
	if len(t.preparedTransaction.GetSignature()) > 0 {
		return nil
	}

	signature, err := t.signingID.Sign(t.Digest())
	if err != nil {
		return err
	}

	t.preparedTransaction.Signature = signature
	return nil
}

// Submit sends the endorsed, signed envelope to the Gateway's Submit RPC
// and, on success, returns a Commit for polling the eventual validation
// outcome. The Gateway's configured submit timeout applies.
func (t *Transaction) Submit() (*Commit, error) {
	ctx, cancel := defaultTimeoutContext(context.Background(), t.client.submitTimeout)
	defer cancel()

	return t.SubmitWithContext(ctx)
}

// SubmitWithContext is Submit with an explicit context in place of the
// Gateway's configured submit timeout.
func (t *Transaction) SubmitWithContext(ctx context.Context) (*Commit, error) {
	if err := t.sign(); err != nil {
		return nil, err
	}

	request := &gateway.SubmitRequest{
		TransactionId:        t.transactionID,
		ChannelId:            t.channelName,
		PreparedTransaction:  t.preparedTransaction,
	}

	if _, err := t.client.grpcClient.Submit(ctx, request); err != nil {
		return nil, newSubmitError(t.transactionID, err)
	}

	return newCommit(t.client, t.signingID, t.channelName, t.transactionID)
}

// newSignedTransaction decodes a previously exported envelope, fills its
// signature and reconstructs the transaction ID by re-parsing the
// ChannelHeader embedded in the payload. Per the upstream implementation
// this library mirrors, a transaction ID embedded in the decoded bytes that
// disagrees with the one the caller expects is not independently
// validated; see the design note on newSignedCommit for the same caveat.
func newSignedTransaction(client *gatewayClient, signingID *signingIdentity, envelopeBytes, signature []byte) (*Transaction, error) {
	envelope := &common.Envelope{}
	if err := util.Unmarshal(envelopeBytes, envelope); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal envelope")
	}
	envelope.Signature = signature

	channelName, transactionID, err := unmarshalPayloadHeader(envelope.GetPayload())
	if err != nil {
		return nil, err
	}

	result, err := extractResult(envelope)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		client:              client,
		signingID:           signingID,
		channelName:         channelName,
		transactionID:       transactionID,
		preparedTransaction: envelope,
		result:              result,
	}, nil
}

func unmarshalPayloadHeader(payloadBytes []byte) (channelName, transactionID string, err error) {
	payload := &common.Payload{}
	if err := util.Unmarshal(payloadBytes, payload); err != nil {
		return "", "", errors.Wrap(err, "failed to unmarshal payload")
	}

	channelHeader := &common.ChannelHeader{}
	if err := util.Unmarshal(payload.GetHeader().GetChannelHeader(), channelHeader); err != nil {
		return "", "", errors.Wrap(err, "failed to unmarshal channel header")
	}

	return channelHeader.ChannelId, channelHeader.TxId, nil
}

// extractResult decodes, in order, Payload.Data -> peer.Transaction ->
// Actions[0].Payload -> ChaincodeActionPayload.Action.ProposalResponsePayload
// -> ChaincodeAction.Response.Payload.
func extractResult(envelope *common.Envelope) ([]byte, error) {
	payload := &common.Payload{}
	if err := util.Unmarshal(envelope.GetPayload(), payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal payload")
	}

	transaction := &peer.Transaction{}
	if err := util.Unmarshal(payload.GetData(), transaction); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal transaction")
	}

	if len(transaction.GetActions()) == 0 {
		return nil, errors.New("transaction contains no actions")
	}

	actionPayload := &peer.ChaincodeActionPayload{}
	if err := util.Unmarshal(transaction.Actions[0].GetPayload(), actionPayload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal chaincode action payload")
	}

	responsePayload := &peer.ProposalResponsePayload{}
	if err := util.Unmarshal(actionPayload.GetAction().GetProposalResponsePayload(), responsePayload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal proposal response payload")
	}

	chaincodeAction := &peer.ChaincodeAction{}
	if err := util.Unmarshal(responsePayload.GetExtension(), chaincodeAction); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal chaincode action")
	}

	return chaincodeAction.GetResponse().GetPayload(), nil
}
