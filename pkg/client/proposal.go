package client

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"example.com/fabric-gateway-client/pkg/internal/util"
	"github.com/hyperledger/fabric-protos-go/common"
	"github.com/hyperledger/fabric-protos-go/gateway"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const nonceLength = 24

// ProposalBuilder accumulates the arguments, transient data and endorsing
// organizations for a single transaction invocation. A new builder must be
// obtained for each invocation; it is not reusable once Build is called.
type ProposalBuilder struct {
	contract        *Contract
	transactionName string
	arguments       [][]byte
	transient       map[string][]byte
	endorsingOrgs   []string
	err             error
}

func newProposalBuilder(contract *Contract, transactionName string, arguments ...[]byte) *ProposalBuilder {
	builder := &ProposalBuilder{
		contract:        contract,
		transactionName: transactionName,
		arguments:       arguments,
	}

	if transactionName == "" {
		builder.err = newInvalidArgumentError("transaction name")
	}

	return builder
}

// WithArguments sets the byte arguments passed to the transaction function,
// replacing any arguments given to NewProposal.
func (b *ProposalBuilder) WithArguments(arguments ...[]byte) *ProposalBuilder {
	b.arguments = arguments
	return b
}

// WithTransient attaches private transient data, never written to the
// ledger, to the resulting proposal.
func (b *ProposalBuilder) WithTransient(transient map[string][]byte) *ProposalBuilder {
	b.transient = transient
	return b
}

// WithEndorsingOrganizations restricts endorsement to peers belonging to
// the named organizations.
func (b *ProposalBuilder) WithEndorsingOrganizations(organizations ...string) *ProposalBuilder {
	b.endorsingOrgs = organizations
	return b
}

// Build assembles the proposal's header, payload and transaction ID. The
// returned Proposal still has an unsigned SignedProposal; the signature is
// filled by Endorse, Evaluate or an explicit offline-signing call.
func (b *ProposalBuilder) Build() (*Proposal, error) {
	if b.err != nil {
		return nil, b.err
	}

	contract := b.contract
	network := contract.network
	signingID := network.signingID

	creator, err := signingID.Creator()
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceLength)
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}

	transactionID := computeTransactionID(nonce, creator, signingID.Hash)

	proposedTransaction, err := b.build(network.name, transactionID, creator, nonce)
	if err != nil {
		return nil, err
	}

	return &Proposal{
		client:              network.gateway.client,
		signingID:           signingID,
		channelName:         network.name,
		transactionID:       transactionID,
		proposedTransaction: proposedTransaction,
		endorsingOrgs:       b.endorsingOrgs,
	}, nil
}

func (b *ProposalBuilder) qualifiedTransactionName() string {
	if b.contract.name == "" {
		return b.transactionName
	}
	return b.contract.name + ":" + b.transactionName
}

func (b *ProposalBuilder) build(channelName, transactionID string, creator, nonce []byte) (*gateway.SignedProposal, error) {
	args := append([][]byte{[]byte(b.qualifiedTransactionName())}, b.arguments...)

	invocationSpec := &peer.ChaincodeInvocationSpec{
		ChaincodeSpec: &peer.ChaincodeSpec{
			Type:        peer.ChaincodeSpec_GOLANG,
			ChaincodeId: &peer.ChaincodeID{Name: b.contract.chaincodeName},
			Input:       &peer.ChaincodeInput{Args: args},
		},
	}
	invocationSpecBytes, err := util.Marshal(invocationSpec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal chaincode invocation spec")
	}

	proposalPayload := &peer.ChaincodeProposalPayload{
		Input:        invocationSpecBytes,
		TransientMap: b.transient,
	}
	proposalPayloadBytes, err := util.Marshal(proposalPayload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal chaincode proposal payload")
	}

	headerExtensionBytes, err := util.Marshal(&peer.ChaincodeHeaderExtension{
		ChaincodeId: &peer.ChaincodeID{Name: b.contract.chaincodeName},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal chaincode header extension")
	}

	channelHeaderBytes, err := util.Marshal(&common.ChannelHeader{
		Type:      int32(common.HeaderType_ENDORSER_TRANSACTION),
		TxId:      transactionID,
		ChannelId: channelName,
		Epoch:     0,
		Timestamp: timestamppb.Now(),
		Extension: headerExtensionBytes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal channel header")
	}

	signatureHeaderBytes, err := util.Marshal(&common.SignatureHeader{
		Creator: creator,
		Nonce:   nonce,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal signature header")
	}

	headerBytes, err := util.Marshal(&common.Header{
		ChannelHeader:   channelHeaderBytes,
		SignatureHeader: signatureHeaderBytes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal header")
	}

	proposalBytes, err := util.Marshal(&peer.Proposal{
		Header:  headerBytes,
		Payload: proposalPayloadBytes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal proposal")
	}

	return &gateway.SignedProposal{ProposalBytes: proposalBytes}, nil
}

func computeTransactionID(nonce, creator []byte, hash func([]byte) []byte) string {
	message := append(append([]byte{}, nonce...), creator...)
	return hex.EncodeToString(hash(message))
}

// Proposal is a built, possibly unsigned, invocation proposal. It carries
// the transaction ID derived at build time through every later stage.
type Proposal struct {
	client              *gatewayClient
	signingID           *signingIdentity
	channelName         string
	transactionID       string
	proposedTransaction *gateway.SignedProposal
	endorsingOrgs       []string
}

// TransactionID returns the transaction ID derived when the proposal was
// built, or when it was re-hydrated by newSignedProposal.
func (p *Proposal) TransactionID() string {
	return p.transactionID
}

// Digest returns the signing surface for this proposal: hash(ProposalBytes).
func (p *Proposal) Digest() []byte {
	return p.signingID.Hash(p.proposedTransaction.ProposalBytes)
}

// Bytes returns the marshalled, currently unsigned or signed, proposal
// payload for export to an out-of-process signer.
func (p *Proposal) Bytes() ([]byte, error) {
	proposalBytes, err := util.Marshal(p.proposedTransaction)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal signed proposal")
	}
	return proposalBytes, nil
}

func (p *Proposal) sign() error {
	if len(p.proposedTransaction.Signature) > 0 {
		return nil
	}

	signature, err := p.signingID.Sign(p.Digest())
	if err != nil {
		return err
	}

	p.proposedTransaction.Signature = signature
	return nil
}

// Evaluate invokes the transaction function on a single endorsing peer and
// returns its response without submitting anything to the ordering
// service. The Gateway's configured evaluate timeout applies.
func (p *Proposal) Evaluate() ([]byte, error) {
	ctx, cancel := defaultTimeoutContext(context.Background(), p.client.evaluateTimeout)
	defer cancel()

	return p.EvaluateWithContext(ctx)
}

// EvaluateWithContext is Evaluate with an explicit context in place of the
// Gateway's configured evaluate timeout.
func (p *Proposal) EvaluateWithContext(ctx context.Context) ([]byte, error) {
	if err := p.sign(); err != nil {
		return nil, err
	}

	request := &gateway.EvaluateRequest{
		TransactionId:       p.transactionID,
		ChannelId:           p.channelName,
		ProposedTransaction: p.proposedTransaction,
		TargetOrganizations: p.endorsingOrgs,
	}

	response, err := p.client.grpcClient.Evaluate(ctx, request)
	if err != nil {
		return nil, newEndorseError(p.transactionID, err)
	}

	return response.GetResult().GetPayload(), nil
}

// Endorse sends the proposal to the Gateway's Endorse RPC and, on success,
// returns the resulting Transaction built from the assembled, endorsed
// envelope. The Gateway's configured endorse timeout applies.
func (p *Proposal) Endorse() (*Transaction, error) {
	ctx, cancel := defaultTimeoutContext(context.Background(), p.client.endorseTimeout)
	defer cancel()

	return p.EndorseWithContext(ctx)
}

// EndorseWithContext is Endorse with an explicit context in place of the
// Gateway's configured endorse timeout.
func (p *Proposal) EndorseWithContext(ctx context.Context) (*Transaction, error) {
	if err := p.sign(); err != nil {
		return nil, err
	}

	request := &gateway.EndorseRequest{
		TransactionId:          p.transactionID,
		ChannelId:              p.channelName,
		ProposedTransaction:    p.proposedTransaction,
		EndorsingOrganizations: p.endorsingOrgs,
	}

	response, err := p.client.grpcClient.Endorse(ctx, request)
	if err != nil {
		return nil, newEndorseError(p.transactionID, err)
	}

	preparedTransaction := response.GetPreparedTransaction()
	result, err := extractResult(preparedTransaction)
	if err != nil {
		return nil, err
	}

	return &Transaction{
		client:              p.client,
		signingID:           p.signingID,
		channelName:         p.channelName,
		transactionID:       p.transactionID,
		preparedTransaction: preparedTransaction,
		result:              result,
	}, nil
}

// newSignedProposal decodes a previously exported SignedProposal, fills its
// Signature and reconstructs the transaction ID and channel name by
// re-parsing the embedded proposal header, rather than trusting a caller to
// supply them again. The endorsing-organizations restriction, which has no
// place on the wire, does not survive the round trip.
func newSignedProposal(gw *Gateway, proposalBytes, signature []byte) (*Proposal, error) {
	signedProposal := &gateway.SignedProposal{}
	if err := util.Unmarshal(proposalBytes, signedProposal); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal signed proposal")
	}
	signedProposal.Signature = signature

	channelName, transactionID, err := unmarshalProposalHeader(signedProposal.ProposalBytes)
	if err != nil {
		return nil, err
	}

	return &Proposal{
		client:              gw.client,
		signingID:           gw.signingID,
		channelName:         channelName,
		transactionID:       transactionID,
		proposedTransaction: signedProposal,
	}, nil
}

func unmarshalProposalHeader(proposalBytes []byte) (channelName, transactionID string, err error) {
	proposal := &peer.Proposal{}
	if err := util.Unmarshal(proposalBytes, proposal); err != nil {
		return "", "", errors.Wrap(err, "failed to unmarshal proposal")
	}

	header := &common.Header{}
	if err := util.Unmarshal(proposal.Header, header); err != nil {
		return "", "", errors.Wrap(err, "failed to unmarshal header")
	}

	channelHeader := &common.ChannelHeader{}
	if err := util.Unmarshal(header.ChannelHeader, channelHeader); err != nil {
		return "", "", errors.Wrap(err, "failed to unmarshal channel header")
	}

	return channelHeader.ChannelId, channelHeader.TxId, nil
}
