package client

import (
	"context"

	"example.com/fabric-gateway-client/pkg/internal/util"
	"github.com/hyperledger/fabric-protos-go/gateway"
	"github.com/hyperledger/fabric-protos-go/orderer"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
)

// ChaincodeEvent is a single event emitted by a chaincode during
// transaction execution.
type ChaincodeEvent struct {
	BlockNumber   uint64
	ChaincodeName string
	EventName     string
	Payload       []byte
	TransactionID string
}

type eventsRequestOptions struct {
	startBlock   *uint64
	checkpointer Checkpointer

	passedCheckpointTx bool
}

// ChaincodeEventsOption configures the start position of a call to
// Network.ChaincodeEvents.
type ChaincodeEventsOption func(*eventsRequestOptions)

// WithStartBlock requests that the event stream begin at blockNumber
// rather than the next block the orderer commits.
func WithStartBlock(blockNumber uint64) ChaincodeEventsOption {
	return func(o *eventsRequestOptions) {
		o.startBlock = &blockNumber
	}
}

// WithCheckpoint resumes the event stream from checkpointer's recorded
// position. A checkpoint with a recorded transaction ID additionally
// skips every event at or before that transaction within its block.
func WithCheckpoint(checkpointer Checkpointer) ChaincodeEventsOption {
	return func(o *eventsRequestOptions) {
		o.checkpointer = checkpointer
	}
}

func (o *eventsRequestOptions) resolveStartPosition() *orderer.SeekPosition {
	if o.checkpointer != nil {
		if blockNumber := o.checkpointer.BlockNumber(); blockNumber != unsetBlockNumber {
			return &orderer.SeekPosition{Type: &orderer.SeekPosition_Specified{
				Specified: &orderer.SeekSpecified{Number: blockNumber},
			}}
		}
	}

	if o.startBlock != nil {
		return &orderer.SeekPosition{Type: &orderer.SeekPosition_Specified{
			Specified: &orderer.SeekSpecified{Number: *o.startBlock},
		}}
	}

	return &orderer.SeekPosition{Type: &orderer.SeekPosition_NextCommit{
		NextCommit: &orderer.SeekNextCommit{},
	}}
}

// shouldDeliver reports whether (blockNumber, transactionID) is at or
// after the checkpointed resume position: every event in a block beyond
// the resume block is delivered; within the resume block, every event up
// to and including the checkpointed transaction is skipped.
func (o *eventsRequestOptions) shouldDeliver(blockNumber uint64, transactionID string) bool {
	if o.checkpointer == nil {
		return true
	}

	resumeBlock := o.checkpointer.BlockNumber()
	if resumeBlock == unsetBlockNumber || blockNumber > resumeBlock {
		return true
	}
	if blockNumber < resumeBlock {
		return false
	}

	checkpointTx := o.checkpointer.TransactionID()
	if checkpointTx == "" || o.passedCheckpointTx {
		return true
	}
	if transactionID == checkpointTx {
		o.passedCheckpointTx = true
	}
	return false
}

// ChaincodeEvents opens a server-streamed read of events emitted by
// chaincodeName. The returned channel is closed when ctx is cancelled or
// the server stream ends; it is safe to range over until then.
func (n *Network) ChaincodeEvents(ctx context.Context, chaincodeName string, opts ...ChaincodeEventsOption) (<-chan *ChaincodeEvent, error) {
	options := &eventsRequestOptions{}
	for _, opt := range opts {
		opt(options)
	}

	signingID := n.signingID
	creator, err := signingID.Creator()
	if err != nil {
		return nil, err
	}

	requestBytes, err := util.Marshal(&gateway.ChaincodeEventsRequest{
		ChannelId:     n.name,
		ChaincodeId:   chaincodeName,
		Identity:      creator,
		StartPosition: options.resolveStartPosition(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal chaincode events request")
	}

	signature, err := signingID.Sign(signingID.Hash(requestBytes))
	if err != nil {
		return nil, err
	}

	ctx, cancel := optionalTimeoutContext(ctx, n.gateway.client.chaincodeEventsTimeout)

	stream, err := n.gateway.client.grpcClient.ChaincodeEvents(ctx, &gateway.SignedChaincodeEventsRequest{
		Request:   requestBytes,
		Signature: signature,
	})
	if err != nil {
		cancel()
		return nil, err
	}

	events := make(chan *ChaincodeEvent)
	go func() {
		defer cancel()
		defer close(events)

		for {
			response, err := stream.Recv()
			if err != nil {
				logger.Debugw("chaincode events stream closed", "chaincode", chaincodeName, "error", err)
				return
			}

			for _, event := range response.GetEvents() {
				if !options.shouldDeliver(response.GetBlockNumber(), event.GetTxId()) {
					continue
				}

				select {
				case events <- chaincodeEventFromProto(response.GetBlockNumber(), event):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return events, nil
}

func chaincodeEventFromProto(blockNumber uint64, event *peer.ChaincodeEvent) *ChaincodeEvent {
	return &ChaincodeEvent{
		BlockNumber:   blockNumber,
		ChaincodeName: event.GetChaincodeId(),
		EventName:     event.GetEventName(),
		Payload:       event.GetPayload(),
		TransactionID: event.GetTxId(),
	}
}
