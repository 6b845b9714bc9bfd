package client

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

const fileCheckpointVersion = 1

type fileCheckpointState struct {
	Version       int    `json:"version"`
	BlockNumber   uint64 `json:"blockNumber"`
	TransactionID string `json:"transactionId"`
}

// FileCheckpointer is a Checkpointer backed by a JSON file on disk,
// allowing an event stream to resume across process restarts. Every
// checkpoint call rewrites the file; concurrent use of one instance is
// safe.
type FileCheckpointer struct {
	mu    sync.Mutex
	path  string
	state fileCheckpointState
}

// NewFileCheckpointer opens or creates the checkpoint file at path. An
// existing file is loaded as the starting position; a missing one is
// created holding an unset position.
func NewFileCheckpointer(path string) (*FileCheckpointer, error) {
	cleanPath := filepath.Clean(path)
	checkpointer := &FileCheckpointer{
		path:  cleanPath,
		state: fileCheckpointState{Version: fileCheckpointVersion, BlockNumber: unsetBlockNumber},
	}

	if _, err := os.Stat(cleanPath); err == nil {
		if err := checkpointer.load(); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to stat checkpoint file %s", cleanPath)
	} else if err := checkpointer.save(); err != nil {
		return nil, err
	}

	return checkpointer, nil
}

func (c *FileCheckpointer) load() error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return errors.Wrapf(err, "failed to read checkpoint file %s", c.path)
	}

	state := fileCheckpointState{}
	if err := json.Unmarshal(data, &state); err != nil {
		return errors.Wrapf(err, "failed to parse checkpoint file %s", c.path)
	}

	c.state = state
	return nil
}

func (c *FileCheckpointer) save() error {
	data, err := json.MarshalIndent(c.state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal checkpoint state")
	}

	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write checkpoint file %s", c.path)
	}

	return nil
}

// BlockNumber returns the block number a resumed stream starts from: one
// past the block given to CheckpointBlock, or the block given to
// CheckpointTransaction. It returns unsetBlockNumber if the checkpoint file
// holds no position yet.
func (c *FileCheckpointer) BlockNumber() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.BlockNumber
}

// TransactionID returns the transaction ID checkpointed within the
// current block, or the empty string if the checkpoint is at a block
// boundary.
func (c *FileCheckpointer) TransactionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.TransactionID
}

// CheckpointBlock records that blockNumber has been fully processed and
// persists the new state.
func (c *FileCheckpointer) CheckpointBlock(blockNumber uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.BlockNumber = blockNumber + 1
	c.state.TransactionID = ""
	return c.save()
}

// CheckpointTransaction records that transactionID, within blockNumber,
// has been processed and persists the new state.
func (c *FileCheckpointer) CheckpointTransaction(blockNumber uint64, transactionID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.BlockNumber = blockNumber
	c.state.TransactionID = transactionID
	return c.save()
}

// CheckpointChaincodeEvent is CheckpointTransaction applied to the block
// number and transaction ID carried by event.
func (c *FileCheckpointer) CheckpointChaincodeEvent(event *ChaincodeEvent) error {
	return c.CheckpointTransaction(event.BlockNumber, event.TransactionID)
}
