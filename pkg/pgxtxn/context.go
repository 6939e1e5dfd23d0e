package pgxtxn

import (
	"context"

	"github.com/nikmy/txnkit/pkg/txn"
)

type txnKey struct{}

// Accessors bind runners to PostgreSQL transactions started by src.
func Accessors(src *Source) txn.Accessors[*Txn] {
	return txn.Accessors[*Txn]{
		Transactable: func(context.Context) (txn.Transactable[*Txn], bool) {
			if src == nil {
				return nil, false
			}
			return src, true
		},
		Txn:     TxnFromContext,
		WithTxn: withTxn,
	}
}

// NewRunner returns a runner executing callbacks in PostgreSQL
// transactions started by src.
func NewRunner(src *Source) txn.Runner[*Txn] {
	return txn.NewRunner(Accessors(src))
}

// TxnFromContext extracts the transaction opened by the innermost
// runner.
func TxnFromContext(ctx context.Context) (*Txn, bool) {
	cur, ok := ctx.Value(txnKey{}).(*Txn)
	return cur, ok
}

func withTxn(ctx context.Context, cur *Txn) context.Context {
	return context.WithValue(ctx, txnKey{}, cur)
}
