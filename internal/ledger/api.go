package ledger

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nikmy/txnkit/pkg/txn"
)

type API interface {
	// CreateAccount registers an account with an initial balance.
	CreateAccount(ctx context.Context, owner string, initial decimal.Decimal) (*Account, error)

	GetAccount(ctx context.Context, id string) (*Account, error)

	ListAccounts(ctx context.Context) ([]Account, error)

	// Deposit adds amount to the account balance and returns the
	// updated account.
	Deposit(ctx context.Context, id string, amount decimal.Decimal) (*Account, error)

	// Transfer atomically moves amount between two accounts.
	Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error

	// ListTransfers returns the audit records involving the account,
	// newest first.
	ListTransfers(ctx context.Context, accountID string) ([]Transfer, error)

	Close(ctx context.Context) error
}

// Storage is the persistence boundary of the ledger. Write operations
// performed with a transaction-carrying context join that transaction.
type Storage interface {
	// ChangeSets returns a runner whose change sets commit their
	// transactional actions on this storage's backend.
	ChangeSets() txn.Runner[*txn.TxnChangeSet]

	InsertAccount(ctx context.Context, acc Account) error
	GetAccount(ctx context.Context, id string) (*Account, error)
	ListAccounts(ctx context.Context) ([]Account, error)

	// UpdateBalance applies a signed delta to the account balance,
	// failing with ErrInsufficientFunds when the result would be
	// negative.
	UpdateBalance(ctx context.Context, id string, delta decimal.Decimal) error

	InsertTransfer(ctx context.Context, t Transfer) error
	ListTransfers(ctx context.Context, accountID string) ([]Transfer, error)

	Close(ctx context.Context) error
}
