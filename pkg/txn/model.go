// Package txn runs units of work inside transactions without binding
// callers to a concrete transaction technology.
//
// A Runner opens a transaction, hands it to a callback through the
// context and commits or rolls back depending on the outcome. The
// concrete transaction type is supplied via an Accessors bundle, so the
// same machinery drives database transactions and the in-memory
// ChangeSet / TxnChangeSet types from this package alike.
package txn

import "context"

// Transaction is a unit of work with exactly two terminal operations.
// After either of them has been called the transaction must not be
// used again.
//
// A Transaction belongs to the call chain that opened it and must not
// be shared between goroutines.
type Transaction interface {
	// Commit makes all changes of the transaction durable.
	Commit(ctx context.Context) error

	// Rollback discards all changes of the transaction.
	Rollback(ctx context.Context) error
}

// Transactable starts transactions of a concrete type T.
//
// A Transaction may implement Transactable as well: Runner probes for
// this capability to open child transactions instead of failing on
// nested Run calls.
type Transactable[T Transaction] interface {
	BeginTxn(ctx context.Context, opts Options) (T, error)
}

// Callback is a unit of work executed by Runner. ctx carries the open
// transaction, so code deeper in the call chain can rejoin it.
type Callback[T Transaction] func(ctx context.Context, txn T) error

// Action is a single deferred step of a ChangeSet.
type Action func(ctx context.Context) error

// Accessors bind Runner to a concrete transaction type. The three
// functions must agree on how a transaction travels through contexts:
// whatever WithTxn stored, Txn must find in any derived context.
type Accessors[T Transaction] struct {
	// Transactable extracts something able to start a transaction.
	Transactable func(ctx context.Context) (Transactable[T], bool)

	// Txn extracts an already open transaction.
	Txn func(ctx context.Context) (T, bool)

	// WithTxn derives a context carrying an open transaction.
	WithTxn func(ctx context.Context, txn T) context.Context
}
