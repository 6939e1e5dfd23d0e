package txn

import (
	"context"

	"github.com/nikmy/txnkit/pkg/errors"
)

// NewRunner binds a Runner to an explicit accessors bundle.
func NewRunner[T Transaction](acc Accessors[T]) Runner[T] {
	return Runner[T]{acc: acc}
}

// Runner drives complete transaction lifecycles around callbacks.
// Construct it with NewRunner or RunnerFromContext, the zero value has
// no accessors and fails every call with ErrNotConfigured.
//
// Runner is cheap to copy and safe to reuse, but a single transaction
// produced by it must stay within one call chain.
type Runner[T Transaction] struct {
	acc Accessors[T]
}

// Run executes fn within a fresh transaction and completes it: commit
// when fn succeeds, rollback when fn or the commit fails. Any failure
// after the transaction was opened is reported as *FailedError wrapping
// the cause.
//
// If the context already carries a transaction of the same type, it
// must be able to start children, otherwise Run fails with ErrNested.
func (r Runner[T]) Run(ctx context.Context, opts Options, fn Callback[T]) error {
	if fn == nil {
		return ErrMissingCallback
	}

	src, err := r.source(ctx)
	if err != nil {
		return err
	}

	txn, err := src.BeginTxn(ctx, opts)
	if err != nil {
		return errors.WrapFail(err, "begin transaction")
	}

	return r.complete(r.acc.WithTxn(ctx, txn), txn, fn)
}

// In executes fn within the transaction already carried by ctx, leaving
// its lifecycle to whoever opened it. Without one, In is equivalent to
// Run.
func (r Runner[T]) In(ctx context.Context, opts Options, fn Callback[T]) error {
	if fn == nil {
		return ErrMissingCallback
	}

	if r.acc.Txn != nil {
		if cur, ok := r.acc.Txn(ctx); ok {
			return fn(ctx, cur)
		}
	}

	return r.Run(ctx, opts, fn)
}

// source resolves what will start the next transaction: the bundle's
// transactable or, when ctx already carries an open transaction, that
// transaction itself if it is capable of children.
func (r Runner[T]) source(ctx context.Context) (Transactable[T], error) {
	if r.acc.Transactable == nil || r.acc.Txn == nil || r.acc.WithTxn == nil {
		return nil, errors.Wrap(ErrNotConfigured, "incomplete accessors")
	}

	src, ok := r.acc.Transactable(ctx)
	if !ok {
		return nil, errors.Wrap(ErrNotConfigured, "no transactable")
	}

	cur, ok := r.acc.Txn(ctx)
	if !ok {
		return src, nil
	}

	nested, ok := any(cur).(Transactable[T])
	if !ok {
		return nil, ErrNested
	}

	return nested, nil
}

// complete runs fn and finishes txn. A panic inside fn still rolls the
// transaction back before being reported as a failure.
func (r Runner[T]) complete(ctx context.Context, txn T, fn Callback[T]) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = r.fail(ctx, txn, panicCause(p))
		}
	}()

	err = fn(ctx, txn)
	if err != nil {
		return r.fail(ctx, txn, err)
	}

	err = txn.Commit(ctx)
	if err != nil {
		return r.fail(ctx, txn, err)
	}

	return nil
}

// fail rolls txn back and reports cause. A rollback error never shadows
// the cause, both are kept in the result.
func (r Runner[T]) fail(ctx context.Context, txn T, cause error) error {
	if rbErr := txn.Rollback(ctx); rbErr != nil {
		cause = errors.Collapse([]error{cause, errors.WrapFail(rbErr, "roll back")})
	}

	return failed(cause)
}

func panicCause(p any) error {
	if err, ok := p.(error); ok {
		return err
	}

	return errors.Errorf("panic: %v", p)
}
