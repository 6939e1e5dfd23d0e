package txn

import (
	"context"

	"github.com/nikmy/txnkit/pkg/errors"
)

// ChangeSet is an in-memory transaction assembled from deferred
// actions. Nothing runs until the set completes: Commit executes the
// deferred actions in registration order, Rollback executes the
// registered failure actions instead.
//
// A ChangeSet is single-use and, like any Transaction, must stay
// within one call chain.
type ChangeSet struct {
	completed    bool
	commitFailed bool

	deferred []Action
	onFail   []Action
}

// NewChangeSet returns an empty open change set.
func NewChangeSet() *ChangeSet {
	return &ChangeSet{}
}

// Defer schedules fn to run on Commit, after all actions deferred
// before it.
func (cs *ChangeSet) Defer(fn Action) error {
	if fn == nil {
		return ErrMissingCallback
	}
	if cs.completed {
		return ErrCompleted
	}

	cs.deferred = append(cs.deferred, fn)
	return nil
}

// DeferFail schedules fn to run on Rollback, after all failure actions
// registered before it.
func (cs *ChangeSet) DeferFail(fn Action) error {
	if fn == nil {
		return ErrMissingCallback
	}
	if cs.completed {
		return ErrCompleted
	}

	cs.onFail = append(cs.onFail, fn)
	return nil
}

// Commit marks the set completed and runs the deferred actions in
// registration order. The first failing action aborts the rest. After
// such a failure exactly one Rollback call is still permitted, so the
// caller can run the failure actions for cleanup.
func (cs *ChangeSet) Commit(ctx context.Context) error {
	if cs.completed {
		return ErrCompleted
	}
	cs.completed = true

	for _, fn := range cs.deferred {
		if err := fn(ctx); err != nil {
			cs.commitFailed = true
			return errors.WrapFail(err, "apply deferred actions")
		}
	}

	return nil
}

// Rollback marks the set completed and runs every failure action in
// registration order. Failure actions are best-effort: one failing
// does not stop the rest, all errors are collected into the result.
func (cs *ChangeSet) Rollback(ctx context.Context) error {
	if cs.completed && !cs.commitFailed {
		return ErrCompleted
	}
	cs.completed = true
	cs.commitFailed = false

	var errs []error
	for _, fn := range cs.onFail {
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Collapse(errs)
}

// NewChangeSetRunner returns a Runner managing in-memory change sets.
// It is self-contained: every Run opens a fresh ChangeSet, In joins
// the one already on the context.
func NewChangeSetRunner() Runner[*ChangeSet] {
	return NewRunner(ChangeSetAccessors())
}

// ChangeSetAccessors is the bundle behind NewChangeSetRunner. It is
// exported so that change sets can also back a TxnChangeSet when no
// real backend is involved.
func ChangeSetAccessors() Accessors[*ChangeSet] {
	return Accessors[*ChangeSet]{
		Transactable: func(context.Context) (Transactable[*ChangeSet], bool) {
			return changeSetSource{}, true
		},
		Txn:     ChangeSetFromContext,
		WithTxn: withChangeSet,
	}
}

// ChangeSetFromContext extracts the change set opened by the innermost
// change set runner.
func ChangeSetFromContext(ctx context.Context) (*ChangeSet, bool) {
	cs, ok := ctx.Value(changeSetKey{}).(*ChangeSet)
	return cs, ok
}

func withChangeSet(ctx context.Context, cs *ChangeSet) context.Context {
	return context.WithValue(ctx, changeSetKey{}, cs)
}

// changeSetSource opens a fresh set per transaction. Options are
// accepted for interface compatibility only, there is no backend to
// configure.
type changeSetSource struct{}

func (changeSetSource) BeginTxn(context.Context, Options) (*ChangeSet, error) {
	return NewChangeSet(), nil
}
