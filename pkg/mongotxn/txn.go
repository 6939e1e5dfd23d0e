// Package mongotxn adapts MongoDB multi-document transactions to the
// txn package. Every transaction runs in its own session, and the
// session rides the context, so collection operations made with the
// callback context automatically join the transaction.
package mongotxn

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readconcern"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	"github.com/nikmy/txnkit/pkg/errors"
	"github.com/nikmy/txnkit/pkg/txn"
)

var (
	// ErrUnsupportedIsolation is returned for isolation levels that
	// have no MongoDB read concern counterpart.
	ErrUnsupportedIsolation = errors.Error("mongotxn: unsupported isolation level")

	// ErrReadOnly is returned when a read-only transaction is
	// requested. MongoDB transactions are always writable.
	ErrReadOnly = errors.Error("mongotxn: read-only transactions are not supported")
)

// NewSource wraps a connected client into a transaction source.
func NewSource(client *mongo.Client) *Source {
	return &Source{client: client}
}

// Source starts MongoDB transactions, one fresh session per
// transaction. MongoDB cannot nest transactions, so Txn is not a
// Transactable and nested Run calls fail.
type Source struct {
	client *mongo.Client
}

func (s *Source) BeginTxn(ctx context.Context, opts txn.Options) (*Txn, error) {
	txnOpts, err := transactionOptions(opts)
	if err != nil {
		return nil, err
	}

	sess, err := s.client.StartSession(options.Session())
	if err != nil {
		return nil, errors.WrapFail(err, "start session")
	}

	if err = sess.StartTransaction(txnOpts); err != nil {
		sess.EndSession(ctx)
		return nil, errors.WrapFail(err, "start transaction")
	}

	return &Txn{session: sess}, nil
}

// transactionOptions maps generic options onto read and write concerns.
// Writes always require majority acknowledgement.
func transactionOptions(opts txn.Options) (*options.TransactionOptions, error) {
	if opts.ReadOnly {
		return nil, ErrReadOnly
	}

	readCon := readconcern.Local()
	switch opts.Isolation {
	case txn.DefaultIsolation:
	case txn.ReadUncommitted:
		readCon = readconcern.Available()
	case txn.ReadCommitted, txn.WriteCommitted:
		readCon = readconcern.Majority()
	case txn.Snapshot:
		readCon = readconcern.Snapshot()
	case txn.Linearizable:
		readCon = readconcern.Linearizable()
	default:
		return nil, errors.Wrapf(ErrUnsupportedIsolation, "%s", opts.Isolation)
	}

	return options.Transaction().
		SetReadConcern(readCon).
		SetWriteConcern(writeconcern.Majority()), nil
}

// Txn is a single MongoDB transaction bound to its own session.
type Txn struct {
	session mongo.Session
}

// Commit commits the transaction and, on success, ends the session.
// After a failed commit the session stays open, so that Rollback can
// still abort the transaction.
func (t *Txn) Commit(ctx context.Context) error {
	if err := t.session.CommitTransaction(ctx); err != nil {
		return errors.WrapFail(err, "commit transaction")
	}

	t.session.EndSession(ctx)
	return nil
}

// Rollback aborts the transaction and always ends the session.
func (t *Txn) Rollback(ctx context.Context) error {
	defer t.session.EndSession(ctx)

	return errors.WrapFail(t.session.AbortTransaction(ctx), "abort transaction")
}
