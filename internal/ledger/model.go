package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nikmy/txnkit/pkg/errors"
)

type Account struct {
	ID      string          `json:"id"      bson:"_id"`
	Owner   string          `json:"owner"   bson:"owner"`
	Balance decimal.Decimal `json:"balance" bson:"-"`
}

// Transfer is the audit record of a committed transfer. It is written
// outside the balance transaction, after that transaction commits.
type Transfer struct {
	ID     string          `json:"id"     bson:"_id"`
	From   string          `json:"from"   bson:"from"`
	To     string          `json:"to"     bson:"to"`
	Amount decimal.Decimal `json:"amount" bson:"-"`
	At     time.Time       `json:"at"     bson:"at"`
}

var (
	ErrAccountNotFound = errors.Error("ledger: account not found")
	ErrAccountExists   = errors.Error("ledger: account already exists")

	// ErrInsufficientFunds is returned when a withdrawal would make a
	// balance negative.
	ErrInsufficientFunds = errors.Error("ledger: insufficient funds")

	ErrBadAmount   = errors.Error("ledger: amount must be positive")
	ErrSameAccount = errors.Error("ledger: transfer within one account")
	ErrNoOwner     = errors.Error("ledger: account owner must be set")
)
