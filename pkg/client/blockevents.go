package client

import (
	"context"

	"example.com/fabric-gateway-client/pkg/internal/util"
	"github.com/hyperledger/fabric-protos-go/common"
	"github.com/hyperledger/fabric-protos-go/gateway"
	"github.com/hyperledger/fabric-protos-go/peer"
	"github.com/pkg/errors"
)

// blockEventsReceiver is satisfied structurally by each of
// gateway.Gateway_BlockEventsClient, Gateway_FilteredBlockEventsClient and
// Gateway_BlockAndPrivateDataEventsClient, which all stream the same
// peer.DeliverResponse wrapper and differ only in which oneof field is set.
type blockEventsReceiver interface {
	Recv() (*peer.DeliverResponse, error)
}

func (n *Network) newSignedBlockEventsRequest(opts []ChaincodeEventsOption) (*gateway.SignedBlockEventsRequest, *eventsRequestOptions, error) {
	options := &eventsRequestOptions{}
	for _, opt := range opts {
		opt(options)
	}

	signingID := n.signingID
	creator, err := signingID.Creator()
	if err != nil {
		return nil, nil, err
	}

	requestBytes, err := util.Marshal(&gateway.BlockEventsRequest{
		ChannelId:     n.name,
		Identity:      creator,
		StartPosition: options.resolveStartPosition(),
	})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to marshal block events request")
	}

	signature, err := signingID.Sign(signingID.Hash(requestBytes))
	if err != nil {
		return nil, nil, err
	}

	return &gateway.SignedBlockEventsRequest{Request: requestBytes, Signature: signature}, options, nil
}

// blockNumberFromCheckpoint reports whether blockNumber is at or after the
// checkpointed resume position. Block streams checkpoint at block
// granularity only: a block is either delivered whole or skipped whole.
func blockNumberFromCheckpoint(options *eventsRequestOptions, blockNumber uint64) bool {
	if options.checkpointer == nil {
		return true
	}
	resumeBlock := options.checkpointer.BlockNumber()
	return resumeBlock == unsetBlockNumber || blockNumber >= resumeBlock
}

// runBlockEventStream drains receiver on a background goroutine, applying
// extract to each response and delivering the decoded value unless extract
// or the checkpoint filter rejects it. The returned channel closes when the
// stream ends or ctx is cancelled.
func runBlockEventStream[T any](ctx context.Context, cancel context.CancelFunc, options *eventsRequestOptions, receiver blockEventsReceiver, blockNumberOf func(T) uint64, extract func(*peer.DeliverResponse) (T, bool)) <-chan T {
	out := make(chan T)

	go func() {
		defer cancel()
		defer close(out)

		for {
			response, err := receiver.Recv()
			if err != nil {
				logger.Debugw("block events stream closed", "error", err)
				return
			}

			value, ok := extract(response)
			if !ok {
				continue
			}
			if !blockNumberFromCheckpoint(options, blockNumberOf(value)) {
				continue
			}

			select {
			case out <- value:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// BlockEvents opens a server-streamed read of every block committed to the
// network's channel, undecoded.
func (n *Network) BlockEvents(ctx context.Context, opts ...ChaincodeEventsOption) (<-chan *common.Block, error) {
	request, options, err := n.newSignedBlockEventsRequest(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := optionalTimeoutContext(ctx, n.gateway.client.chaincodeEventsTimeout)

	stream, err := n.gateway.client.grpcClient.BlockEvents(ctx, request)
	if err != nil {
		cancel()
		return nil, err
	}

	return runBlockEventStream(ctx, cancel, options, stream,
		func(block *common.Block) uint64 { return block.GetHeader().GetNumber() },
		func(response *peer.DeliverResponse) (*common.Block, bool) {
			block := response.GetBlock()
			return block, block != nil
		},
	), nil
}

// FilteredBlockEvents opens a server-streamed read of every block committed
// to the network's channel, filtered to transaction validation outcomes
// without chaincode read/write sets.
func (n *Network) FilteredBlockEvents(ctx context.Context, opts ...ChaincodeEventsOption) (<-chan *peer.FilteredBlock, error) {
	request, options, err := n.newSignedBlockEventsRequest(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := optionalTimeoutContext(ctx, n.gateway.client.chaincodeEventsTimeout)

	stream, err := n.gateway.client.grpcClient.FilteredBlockEvents(ctx, request)
	if err != nil {
		cancel()
		return nil, err
	}

	return runBlockEventStream(ctx, cancel, options, stream,
		func(block *peer.FilteredBlock) uint64 { return block.GetNumber() },
		func(response *peer.DeliverResponse) (*peer.FilteredBlock, bool) {
			block := response.GetFilteredBlock()
			return block, block != nil
		},
	), nil
}

// BlockAndPrivateDataEvents opens a server-streamed read of every block
// committed to the network's channel, including private data collections
// the caller's organization is a member of. The gateway only grants this
// stream to clients authorized to see the requested collections.
func (n *Network) BlockAndPrivateDataEvents(ctx context.Context, opts ...ChaincodeEventsOption) (<-chan *peer.BlockAndPrivateData, error) {
	request, options, err := n.newSignedBlockEventsRequest(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := optionalTimeoutContext(ctx, n.gateway.client.chaincodeEventsTimeout)

	stream, err := n.gateway.client.grpcClient.BlockAndPrivateDataEvents(ctx, request)
	if err != nil {
		cancel()
		return nil, err
	}

	return runBlockEventStream(ctx, cancel, options, stream,
		func(block *peer.BlockAndPrivateData) uint64 { return block.GetBlock().GetHeader().GetNumber() },
		func(response *peer.DeliverResponse) (*peer.BlockAndPrivateData, bool) {
			block := response.GetBlockAndPrivateData()
			return block, block != nil
		},
	), nil
}
