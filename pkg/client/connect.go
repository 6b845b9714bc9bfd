package client

import (
	"context"
	"time"

	"example.com/fabric-gateway-client/internal/logging"
	"example.com/fabric-gateway-client/pkg/identity"
	"github.com/hyperledger/fabric-protos-go/gateway"
	"github.com/pkg/errors"
	"google.golang.org/grpc"
)

var logger = logging.MustGetLogger("client")

const (
	defaultEvaluateTimeout     = 30 * time.Second
	defaultEndorseTimeout      = 30 * time.Second
	defaultSubmitTimeout       = 5 * time.Second
	defaultCommitStatusTimeout = 1 * time.Minute
	noChaincodeEventsTimeout   = 0
)

// gatewayClient is the thin adapter over the five Gateway RPCs. It owns the
// gRPC connection only when Connect created it; a caller-supplied connection
// is never closed by this library.
type gatewayClient struct {
	grpcClient gateway.GatewayClient
	connection *grpc.ClientConn
	closer     func() error

	evaluateTimeout        time.Duration
	endorseTimeout         time.Duration
	submitTimeout          time.Duration
	commitStatusTimeout    time.Duration
	chaincodeEventsTimeout time.Duration
}

// Gateway represents the connection of a specific identity to a Fabric
// network through a Gateway endpoint. All interaction with the network
// originates from a Gateway instance.
type Gateway struct {
	client    *gatewayClient
	signingID *signingIdentity
}

// ConnectOption configures a Gateway at Connect time. Options are applied
// in the order supplied; an option returning an error aborts Connect with
// that error.
type ConnectOption func(gateway *Gateway) error

// Connect creates a Gateway connection for use with a specific identity.
// The connection must be supplied with either WithClientConnection or
// WithEndpoint.
func Connect(id identity.Identity, options ...ConnectOption) (*Gateway, error) {
	gw := &Gateway{
		client: &gatewayClient{
			evaluateTimeout:        defaultEvaluateTimeout,
			endorseTimeout:         defaultEndorseTimeout,
			submitTimeout:          defaultSubmitTimeout,
			commitStatusTimeout:    defaultCommitStatusTimeout,
			chaincodeEventsTimeout: noChaincodeEventsTimeout,
		},
		signingID: newSigningIdentity(id),
	}

	for _, option := range options {
		if err := option(gw); err != nil {
			return nil, errors.Wrap(err, "failed to apply connect option")
		}
	}

	if gw.client.grpcClient == nil {
		return nil, errors.New("no client connection or endpoint supplied; use WithClientConnection or WithEndpoint")
	}

	return gw, nil
}

// WithSign supplies the signing implementation used to sign proposals,
// transactions, commit status requests and events requests in-process.
// Omitting this option requires every terminal operation to be invoked via
// its offline-signing counterpart.
func WithSign(sign identity.Sign) ConnectOption {
	return func(gw *Gateway) error {
		gw.signingID.sign = sign
		return nil
	}
}

// WithHash overrides the default SHA-256 digest function.
func WithHash(hash identity.Hash) ConnectOption {
	return func(gw *Gateway) error {
		gw.signingID.hash = hash
		return nil
	}
}

// WithClientConnection uses an already-established gRPC connection. Close
// will not close a connection supplied this way.
func WithClientConnection(clientConnection grpc.ClientConnInterface) ConnectOption {
	return func(gw *Gateway) error {
		gw.client.grpcClient = gateway.NewGatewayClient(clientConnection)
		return nil
	}
}

// WithEndpoint dials the Gateway endpoint, taking ownership of the
// resulting connection; Close will tear it down.
func WithEndpoint(target string, dialOptions ...grpc.DialOption) ConnectOption {
	return func(gw *Gateway) error {
		conn, err := grpc.Dial(target, dialOptions...)
		if err != nil {
			return errors.Wrapf(err, "failed to dial %s", target)
		}

		gw.client.connection = conn
		gw.client.grpcClient = gateway.NewGatewayClient(conn)
		gw.client.closer = conn.Close
		return nil
	}
}

// WithEvaluateTimeout overrides the default timeout applied to Evaluate
// calls made with no explicit context.
func WithEvaluateTimeout(timeout time.Duration) ConnectOption {
	return func(gw *Gateway) error {
		gw.client.evaluateTimeout = timeout
		return nil
	}
}

// WithEndorseTimeout overrides the default timeout applied to Endorse
// calls made with no explicit context. A zero timeout cancels immediately.
func WithEndorseTimeout(timeout time.Duration) ConnectOption {
	return func(gw *Gateway) error {
		gw.client.endorseTimeout = timeout
		return nil
	}
}

// WithSubmitTimeout overrides the default timeout applied to Submit calls
// made with no explicit context. A zero timeout cancels immediately.
func WithSubmitTimeout(timeout time.Duration) ConnectOption {
	return func(gw *Gateway) error {
		gw.client.submitTimeout = timeout
		return nil
	}
}

// WithCommitStatusTimeout overrides the default timeout applied to
// CommitStatus calls made with no explicit context. A zero timeout cancels
// immediately.
func WithCommitStatusTimeout(timeout time.Duration) ConnectOption {
	return func(gw *Gateway) error {
		gw.client.commitStatusTimeout = timeout
		return nil
	}
}

// WithChaincodeEventsTimeout overrides the timeout applied to chaincode and
// block event reads made with no explicit context. The default, zero,
// means no timeout is applied.
func WithChaincodeEventsTimeout(timeout time.Duration) ConnectOption {
	return func(gw *Gateway) error {
		gw.client.chaincodeEventsTimeout = timeout
		return nil
	}
}

// Identity returns the identity used to connect this Gateway.
func (gw *Gateway) Identity() identity.Identity {
	return gw.signingID.id
}

// GetNetwork returns a Network representing the named channel.
func (gw *Gateway) GetNetwork(name string) *Network {
	return newNetwork(gw, name)
}

// NewSignedProposal rebuilds a Proposal from the bytes previously exported
// by Proposal.Bytes and a signature obtained out-of-process, preserving the
// original transaction ID and digest.
func (gw *Gateway) NewSignedProposal(proposalBytes, signature []byte) (*Proposal, error) {
	return newSignedProposal(gw, proposalBytes, signature)
}

// NewSignedTransaction rebuilds a Transaction from the bytes previously
// exported by Transaction.Bytes and a signature obtained out-of-process.
func (gw *Gateway) NewSignedTransaction(envelopeBytes, signature []byte) (*Transaction, error) {
	return newSignedTransaction(gw.client, gw.signingID, envelopeBytes, signature)
}

// NewSignedCommit rebuilds a Commit from the bytes previously exported by
// Commit.Bytes and a signature obtained out-of-process.
func (gw *Gateway) NewSignedCommit(requestBytes, signature []byte) (*Commit, error) {
	return newSignedCommit(gw.client, gw.signingID, requestBytes, signature)
}

// Close releases resources held by the Gateway. If Connect dialed the
// connection itself (WithEndpoint), Close tears it down; a connection
// supplied via WithClientConnection is left open for the caller to manage.
func (gw *Gateway) Close() error {
	if gw.client.closer == nil {
		return nil
	}
	return gw.client.closer()
}

// defaultTimeoutContext derives a context bounded by timeout from parent.
// A timeout of zero still applies: the deadline is already past, so the
// call fails immediately with context.DeadlineExceeded. Used by Evaluate,
// Endorse, Submit and CommitStatus when invoked without an explicit
// WithContext call.
func defaultTimeoutContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// optionalTimeoutContext is the events-stream counterpart: a timeout of
// zero means no deadline at all, since a long-lived event stream has no
// natural default duration.
func optionalTimeoutContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return parent, func() {}
	}
	return context.WithTimeout(parent, timeout)
}
