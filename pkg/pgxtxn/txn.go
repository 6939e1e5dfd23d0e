// Package pgxtxn adapts PostgreSQL transactions over pgx pools to the
// txn package. Transactions are nestable: a child transaction is a
// savepoint inside its parent, so runners may open transactions within
// transactions.
package pgxtxn

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/nikmy/txnkit/pkg/errors"
	"github.com/nikmy/txnkit/pkg/txn"
)

var tracer = otel.Tracer("txnkit/pgxtxn")

var (
	// ErrUnsupportedIsolation is returned for isolation levels that
	// have no PostgreSQL counterpart.
	ErrUnsupportedIsolation = errors.Error("pgxtxn: unsupported isolation level")

	// ErrNestedOptions is returned when a nested transaction requests
	// non-default options. Savepoints inherit the characteristics of
	// the surrounding transaction and cannot change them.
	ErrNestedOptions = errors.Error("pgxtxn: nested transactions inherit options")
)

var (
	_ txn.Transactable[*Txn] = (*Source)(nil)
	_ txn.Transactable[*Txn] = (*Txn)(nil)
)

// NewSource wraps a connection pool into a transaction source.
func NewSource(pool *pgxpool.Pool) *Source {
	return &Source{pool: pool}
}

// Source starts PostgreSQL transactions on a pgx pool.
type Source struct {
	pool *pgxpool.Pool
}

func (s *Source) BeginTxn(ctx context.Context, opts txn.Options) (*Txn, error) {
	txOpts, err := txOptions(opts)
	if err != nil {
		return nil, err
	}

	_, span := tracer.Start(ctx, "pgx.transaction",
		trace.WithAttributes(
			attribute.String("tx.isolation", opts.Isolation.String()),
			attribute.Bool("tx.read_only", opts.ReadOnly),
		))

	tx, err := s.pool.BeginTx(ctx, txOpts)
	if err != nil {
		span.End()
		return nil, errors.WrapFail(err, "begin transaction")
	}

	return &Txn{tx: tx, span: span}, nil
}

// Querier returns the open transaction when ctx carries one and the
// pool otherwise, so repositories work the same inside and outside
// transactions.
func (s *Source) Querier(ctx context.Context) Querier {
	if cur, ok := TxnFromContext(ctx); ok {
		return cur.tx
	}

	return s.pool
}

// Querier is the part of pgx shared by pools and transactions.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// txOptions maps generic options onto pgx transaction options.
// PostgreSQL implements snapshot isolation as repeatable read.
func txOptions(opts txn.Options) (pgx.TxOptions, error) {
	var txOpts pgx.TxOptions

	switch opts.Isolation {
	case txn.DefaultIsolation:
	case txn.ReadUncommitted:
		txOpts.IsoLevel = pgx.ReadUncommitted
	case txn.ReadCommitted:
		txOpts.IsoLevel = pgx.ReadCommitted
	case txn.RepeatableRead, txn.Snapshot:
		txOpts.IsoLevel = pgx.RepeatableRead
	case txn.Serializable:
		txOpts.IsoLevel = pgx.Serializable
	default:
		return pgx.TxOptions{}, errors.Wrapf(ErrUnsupportedIsolation, "%s", opts.Isolation)
	}

	if opts.ReadOnly {
		txOpts.AccessMode = pgx.ReadOnly
	}

	return txOpts, nil
}

// Txn is a PostgreSQL transaction or, when nested, a savepoint.
type Txn struct {
	tx   pgx.Tx
	span trace.Span
}

// BeginTxn opens a savepoint inside the transaction. Only default
// options are accepted, a savepoint cannot change isolation or access
// mode.
func (t *Txn) BeginTxn(ctx context.Context, opts txn.Options) (*Txn, error) {
	if opts != txn.NoOptions {
		return nil, ErrNestedOptions
	}

	_, span := tracer.Start(ctx, "pgx.savepoint")

	child, err := t.tx.Begin(ctx)
	if err != nil {
		span.End()
		return nil, errors.WrapFail(err, "begin nested transaction")
	}

	return &Txn{tx: child, span: span}, nil
}

// Commit commits the transaction, or releases the savepoint for nested
// transactions. After a failed commit the transaction stays open for
// Rollback.
func (t *Txn) Commit(ctx context.Context) error {
	if err := t.tx.Commit(ctx); err != nil {
		return errors.WrapFail(err, "commit transaction")
	}

	t.span.End()
	return nil
}

// Rollback discards the transaction. A transaction already closed by
// the server counts as rolled back.
func (t *Txn) Rollback(ctx context.Context) error {
	defer t.span.End()

	err := t.tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		t.span.RecordError(err)
		return errors.WrapFail(err, "roll back transaction")
	}

	return nil
}
