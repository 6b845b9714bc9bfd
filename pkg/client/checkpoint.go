package client

import "sync"

// unsetBlockNumber marks a checkpoint that has not yet observed any block,
// so that the next event stream opened against it starts from the
// configured start position rather than skipping anything.
const unsetBlockNumber = ^uint64(0)

// Checkpointer records the block number and transaction ID of the most
// recently processed event, so that an event stream opened with
// WithCheckpoint resumes immediately after that point instead of
// replaying events the application already handled.
type Checkpointer interface {
	BlockNumber() uint64
	TransactionID() string
	CheckpointBlock(blockNumber uint64) error
	CheckpointTransaction(blockNumber uint64, transactionID string) error
	CheckpointChaincodeEvent(event *ChaincodeEvent) error
}

// InMemoryCheckpointer is a Checkpointer with no persistence, useful for
// resuming a stream across reconnects within a single process lifetime.
type InMemoryCheckpointer struct {
	mu            sync.Mutex
	blockNumber   uint64
	transactionID string
}

// NewInMemoryCheckpointer creates a Checkpointer with no recorded
// position; an event stream opened with it starts from its configured
// start position.
func NewInMemoryCheckpointer() *InMemoryCheckpointer {
	return &InMemoryCheckpointer{blockNumber: unsetBlockNumber}
}

// BlockNumber returns the block number a resumed stream starts from: one
// past the block given to CheckpointBlock, or the block given to
// CheckpointTransaction. It returns unsetBlockNumber if nothing has been
// checkpointed yet.
func (c *InMemoryCheckpointer) BlockNumber() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blockNumber
}

// TransactionID returns the transaction ID checkpointed within the
// current block, or the empty string if the checkpoint is at a block
// boundary.
func (c *InMemoryCheckpointer) TransactionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transactionID
}

// CheckpointBlock records that blockNumber has been fully processed; the
// next stream resumes at blockNumber+1.
func (c *InMemoryCheckpointer) CheckpointBlock(blockNumber uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blockNumber = blockNumber + 1
	c.transactionID = ""
	return nil
}

// CheckpointTransaction records that transactionID, within blockNumber,
// has been processed; the next stream skips everything up to and
// including it within that block.
func (c *InMemoryCheckpointer) CheckpointTransaction(blockNumber uint64, transactionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.blockNumber = blockNumber
	c.transactionID = transactionID
	return nil
}

// CheckpointChaincodeEvent is CheckpointTransaction applied to the block
// number and transaction ID carried by event.
func (c *InMemoryCheckpointer) CheckpointChaincodeEvent(event *ChaincodeEvent) error {
	return c.CheckpointTransaction(event.BlockNumber, event.TransactionID)
}
