package txn

import (
	"context"
)

// TxnChangeSet is a ChangeSet that can additionally defer actions into
// a real backend transaction. On Commit the transactional actions run
// first, all inside one transaction opened through the runner the set
// was built with. The plain deferred actions run only after that
// transaction has committed. When no transactional actions were
// deferred, no backend transaction is opened at all.
//
// Rollback is inherited from ChangeSet: failure actions only, the
// backend is never touched.
type TxnChangeSet struct {
	ChangeSet

	inTxn []Action
	run   func(ctx context.Context, fn Action) error
}

// NewTxnChangeSet builds an open set whose transactional phase will run
// through r with the given options.
func NewTxnChangeSet[T Transaction](r Runner[T], opts Options) *TxnChangeSet {
	return &TxnChangeSet{
		run: func(ctx context.Context, fn Action) error {
			return r.Run(ctx, opts, func(ctx context.Context, _ T) error {
				return fn(ctx)
			})
		},
	}
}

// DeferTxn schedules fn to run inside the backend transaction on
// Commit, after all transactional actions deferred before it.
func (ts *TxnChangeSet) DeferTxn(fn Action) error {
	if fn == nil {
		return ErrMissingCallback
	}
	if ts.completed {
		return ErrCompleted
	}

	ts.inTxn = append(ts.inTxn, fn)
	return nil
}

// Commit runs the transactional actions inside one backend transaction
// and then the plain deferred actions. When the backend transaction
// fails, the plain actions do not run and exactly one Rollback call
// remains permitted, same as after a plain ChangeSet commit failure.
func (ts *TxnChangeSet) Commit(ctx context.Context) error {
	if ts.completed {
		return ErrCompleted
	}

	if len(ts.inTxn) > 0 {
		if err := ts.run(ctx, ts.applyTxnActions); err != nil {
			ts.completed = true
			ts.commitFailed = true
			return err
		}
	}

	return ts.ChangeSet.Commit(ctx)
}

func (ts *TxnChangeSet) applyTxnActions(ctx context.Context) error {
	for _, fn := range ts.inTxn {
		if err := fn(ctx); err != nil {
			return err
		}
	}

	return nil
}

// NewTxnChangeSetRunner returns a Runner managing change sets bound to
// transactions of type T. The options passed to its Run are applied to
// the backend transaction each set opens at commit time.
func NewTxnChangeSetRunner[T Transaction](acc Accessors[T]) Runner[*TxnChangeSet] {
	inner := NewRunner(acc)

	return NewRunner(Accessors[*TxnChangeSet]{
		Transactable: func(context.Context) (Transactable[*TxnChangeSet], bool) {
			return txnChangeSetSource[T]{inner: inner}, true
		},
		Txn:     TxnChangeSetFromContext,
		WithTxn: withTxnChangeSet,
	})
}

// TxnChangeSetRunnerFromContext is NewTxnChangeSetRunner over the
// bundle previously attached with WithAccessors. Fails with
// ErrNotConfigured when the context carries no bundle for T.
func TxnChangeSetRunnerFromContext[T Transaction](ctx context.Context) (Runner[*TxnChangeSet], error) {
	inner, err := RunnerFromContext[T](ctx)
	if err != nil {
		return Runner[*TxnChangeSet]{}, err
	}

	return NewTxnChangeSetRunner(inner.acc), nil
}

// TxnChangeSetFromContext extracts the set opened by the innermost
// transactional change set runner.
func TxnChangeSetFromContext(ctx context.Context) (*TxnChangeSet, bool) {
	ts, ok := ctx.Value(txnChangeSetKey{}).(*TxnChangeSet)
	return ts, ok
}

func withTxnChangeSet(ctx context.Context, ts *TxnChangeSet) context.Context {
	return context.WithValue(ctx, txnChangeSetKey{}, ts)
}

type txnChangeSetSource[T Transaction] struct {
	inner Runner[T]
}

func (s txnChangeSetSource[T]) BeginTxn(_ context.Context, opts Options) (*TxnChangeSet, error) {
	return NewTxnChangeSet(s.inner, opts), nil
}
