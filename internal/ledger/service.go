package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nikmy/txnkit/pkg/errors"
	"github.com/nikmy/txnkit/pkg/logger"
	"github.com/nikmy/txnkit/pkg/txn"
)

func New(log logger.Logger, storage Storage) API {
	return &service{
		log:     log.With("ledger"),
		storage: storage,
	}
}

type service struct {
	log     logger.Logger
	storage Storage
}

func (s *service) CreateAccount(ctx context.Context, owner string, initial decimal.Decimal) (*Account, error) {
	if owner == "" {
		return nil, ErrNoOwner
	}
	if initial.IsNegative() {
		return nil, ErrBadAmount
	}

	acc := Account{
		ID:      uuid.NewString(),
		Owner:   owner,
		Balance: initial,
	}

	err := s.storage.InsertAccount(ctx, acc)
	if err != nil {
		return nil, errors.WrapFail(err, "insert account")
	}

	s.log.Infof("account %s created for %s", acc.ID, owner)
	return &acc, nil
}

func (s *service) GetAccount(ctx context.Context, id string) (*Account, error) {
	return s.storage.GetAccount(ctx, id)
}

func (s *service) ListAccounts(ctx context.Context) ([]Account, error) {
	return s.storage.ListAccounts(ctx)
}

func (s *service) Deposit(ctx context.Context, id string, amount decimal.Decimal) (*Account, error) {
	if !amount.IsPositive() {
		return nil, ErrBadAmount
	}

	err := s.storage.UpdateBalance(ctx, id, amount)
	if err != nil {
		return nil, errors.WrapFail(err, "update balance")
	}

	return s.storage.GetAccount(ctx, id)
}

// Transfer moves amount between two accounts through a transactional
// change set: both balance updates are deferred into one backend
// transaction, and the audit record is written only after that
// transaction commits.
func (s *service) Transfer(ctx context.Context, from, to string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrBadAmount
	}
	if from == to {
		return ErrSameAccount
	}

	rec := Transfer{
		ID:     uuid.NewString(),
		From:   from,
		To:     to,
		Amount: amount,
		At:     time.Now().UTC(),
	}

	return s.storage.ChangeSets().Run(
		ctx,
		txn.Options{Isolation: txn.Snapshot},
		func(_ context.Context, cs *txn.TxnChangeSet) error {
			err := cs.DeferTxn(func(ctx context.Context) error {
				return s.storage.UpdateBalance(ctx, from, amount.Neg())
			})
			if err != nil {
				return errors.WrapFail(err, "defer withdrawal")
			}

			err = cs.DeferTxn(func(ctx context.Context) error {
				return s.storage.UpdateBalance(ctx, to, amount)
			})
			if err != nil {
				return errors.WrapFail(err, "defer deposit")
			}

			err = cs.Defer(func(ctx context.Context) error {
				err := s.storage.InsertTransfer(ctx, rec)
				if err != nil {
					return errors.WrapFail(err, "insert transfer record")
				}

				s.log.Infof("transfer %s: %s from %s to %s", rec.ID, amount, from, to)
				return nil
			})
			if err != nil {
				return errors.WrapFail(err, "defer transfer record")
			}

			err = cs.DeferFail(func(context.Context) error {
				s.log.Warnf("transfer %s from %s to %s failed", rec.ID, from, to)
				return nil
			})
			return errors.WrapFail(err, "defer failure log")
		},
	)
}

func (s *service) ListTransfers(ctx context.Context, accountID string) ([]Transfer, error) {
	return s.storage.ListTransfers(ctx, accountID)
}

func (s *service) Close(ctx context.Context) error {
	return errors.WrapFail(s.storage.Close(ctx), "close storage")
}
