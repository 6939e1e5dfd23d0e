package txn

import (
	"context"

	"github.com/nikmy/txnkit/pkg/errors"
)

// The package owns three context keys: one for the accessors bundle
// and one for each change set flavor. Backend transactions travel
// under keys owned by their own packages, via the Accessors bundle.
type (
	accessorsKey    struct{}
	changeSetKey    struct{}
	txnChangeSetKey struct{}
)

// WithAccessors derives a context carrying acc, so that runners for T
// can later be built anywhere below with RunnerFromContext.
func WithAccessors[T Transaction](ctx context.Context, acc Accessors[T]) context.Context {
	return context.WithValue(ctx, accessorsKey{}, acc)
}

// RunnerFromContext builds a Runner from the bundle previously attached
// with WithAccessors. Fails with ErrNotConfigured when the context
// carries no bundle for T.
func RunnerFromContext[T Transaction](ctx context.Context) (Runner[T], error) {
	acc, ok := accessorsFromContext[T](ctx)
	if !ok {
		return Runner[T]{}, errors.Wrap(ErrNotConfigured, "no accessors on context")
	}

	return NewRunner(acc), nil
}

func accessorsFromContext[T Transaction](ctx context.Context) (Accessors[T], bool) {
	acc, ok := ctx.Value(accessorsKey{}).(Accessors[T])
	return acc, ok
}
