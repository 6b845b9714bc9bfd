package client

import (
	"fmt"

	"github.com/hyperledger/fabric-protos-go/gateway"
	"github.com/hyperledger/fabric-protos-go/peer"
	"google.golang.org/grpc/status"
)

// ErrInvalidArgument is wrapped by errors returned for locally-detected
// invalid input, such as a nil transaction name.
var ErrInvalidArgument = fmt.Errorf("invalid argument")

// ErrUnsupported is wrapped by errors returned when a terminal operation is
// attempted on a proposal, transaction, commit or events request that has
// neither an in-process signer nor an offline signature.
var ErrUnsupported = fmt.Errorf("unsupported")

func newInvalidArgumentError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalidArgument}, args...)...)
}

func newUnsupportedError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrUnsupported}, args...)...)
}

// EndorseError indicates a failure invoking the Gateway's Endorse RPC, and
// is also returned for a failed Evaluate RPC. The underlying gRPC status
// code is preserved and each endorsing peer that failed is described in
// Details.
type EndorseError struct {
	TransactionID string
	Details       []*gateway.ErrorDetail
	err           error
}

func (e *EndorseError) Error() string {
	return fmt.Sprintf("transaction %s: %s", e.TransactionID, e.err)
}

// Unwrap exposes the underlying gRPC status error so that status.Code(err)
// and errors.Is/As continue to work on the wrapped error.
func (e *EndorseError) Unwrap() error {
	return e.err
}

func newEndorseError(transactionID string, err error) *EndorseError {
	endorseError := &EndorseError{
		TransactionID: transactionID,
		err:           err,
	}

	if s, ok := status.FromError(err); ok {
		for _, detail := range s.Details() {
			if errDetail, ok := detail.(*gateway.ErrorDetail); ok {
				endorseError.Details = append(endorseError.Details, errDetail)
			}
		}
	}

	return endorseError
}

// SubmitError indicates a failure invoking the Gateway's Submit RPC.
type SubmitError struct {
	TransactionID string
	err           error
}

func (e *SubmitError) Error() string {
	return fmt.Sprintf("transaction %s: %s", e.TransactionID, e.err)
}

func (e *SubmitError) Unwrap() error {
	return e.err
}

func newSubmitError(transactionID string, err error) *SubmitError {
	return &SubmitError{TransactionID: transactionID, err: err}
}

// CommitStatusError indicates a failure invoking the Gateway's CommitStatus
// RPC, as distinct from the transaction itself committing unsuccessfully
// (see CommitError).
type CommitStatusError struct {
	TransactionID string
	err           error
}

func (e *CommitStatusError) Error() string {
	return fmt.Sprintf("transaction %s: %s", e.TransactionID, e.err)
}

func (e *CommitStatusError) Unwrap() error {
	return e.err
}

func newCommitStatusError(transactionID string, err error) *CommitStatusError {
	return &CommitStatusError{TransactionID: transactionID, err: err}
}

// CommitError indicates that a transaction committed to the ledger with a
// non-VALID validation code. It is raised only by the synchronous
// Contract.Submit and Contract.SubmitTransaction conveniences; a direct
// call to Commit.Status
// reports the same code without error.
type CommitError struct {
	TransactionID string
	Code          peer.TxValidationCode
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("transaction %s failed to commit with status code %s (%d)", e.TransactionID, e.Code, int32(e.Code))
}

func newCommitError(transactionID string, code peer.TxValidationCode) *CommitError {
	return &CommitError{TransactionID: transactionID, Code: code}
}
