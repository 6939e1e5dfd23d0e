package mongotxn

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nikmy/txnkit/pkg/txn"
)

type txnKey struct{}

// Accessors bind runners to MongoDB transactions started by src.
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

// NewRunner returns a runner executing callbacks in MongoDB
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

// withTxn stores the transaction and binds its session to the context,
// so driver operations made with the derived context join the
// transaction.
func withTxn(ctx context.Context, cur *Txn) context.Context {
	ctx = context.WithValue(ctx, txnKey{}, cur)
	return mongo.NewSessionContext(ctx, cur.session)
}
