package txn

import (
	"github.com/nikmy/txnkit/pkg/errors"
)

var (
	// ErrNotConfigured is returned when a Runner cannot be built or has
	// no way to start a transaction, usually because the context lacks
	// accessors or a transactable for the requested transaction type.
	ErrNotConfigured = errors.Error("txn: not configured")

	// ErrMissingCallback is returned when a nil callback or action is
	// supplied.
	ErrMissingCallback = errors.Error("txn: missing callback")

	// ErrNested is returned by Run when the context already carries a
	// transaction that cannot start child transactions.
	ErrNested = errors.Error("txn: nested transactions not supported")

	// ErrCompleted is returned on any use of an already committed or
	// rolled back change set.
	ErrCompleted = errors.Error("txn: already completed")
)

// FailedError reports that a unit of work did not commit and the
// transaction was rolled back. The cause is available via Unwrap, so
// callers can classify it with errors.Is and errors.As.
type FailedError struct {
	cause error
}

func failed(cause error) *FailedError {
	return &FailedError{cause: cause}
}

func (e *FailedError) Error() string {
	if e.cause == nil {
		return "txn: transaction failed"
	}
	return "txn: transaction failed: " + e.cause.Error()
}

func (e *FailedError) Unwrap() error {
	return e.cause
}

// Cause returns the error the transaction failed with, if any.
func (e *FailedError) Cause() error {
	return e.cause
}
