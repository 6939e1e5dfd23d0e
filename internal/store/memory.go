package store

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/nikmy/txnkit/internal/ledger"
	"github.com/nikmy/txnkit/pkg/txn"
)

// NewMemory returns storage holding the ledger in process memory.
//
// Writes made with a change-set context are staged and applied
// all-or-nothing when the change set commits. Writes made outside any
// change set apply immediately.
func NewMemory() *Memory {
	return &Memory{
		state:   memState{accounts: map[string]ledger.Account{}},
		pending: map[*txn.ChangeSet][]memOp{},
	}
}

type Memory struct {
	mu      sync.RWMutex
	state   memState
	pending map[*txn.ChangeSet][]memOp
}

type memState struct {
	accounts  map[string]ledger.Account
	transfers []ledger.Transfer
}

func (s memState) clone() memState {
	return memState{
		accounts:  maps.Clone(s.accounts),
		transfers: slices.Clone(s.transfers),
	}
}

// memOp validates and applies one write against a state snapshot.
type memOp func(s *memState) error

func (m *Memory) ChangeSets() txn.Runner[*txn.TxnChangeSet] {
	return txn.NewTxnChangeSetRunner(txn.ChangeSetAccessors())
}

func (m *Memory) InsertAccount(ctx context.Context, acc ledger.Account) error {
	return m.write(ctx, func(s *memState) error {
		if _, exists := s.accounts[acc.ID]; exists {
			return ledger.ErrAccountExists
		}

		s.accounts[acc.ID] = acc
		return nil
	})
}

func (m *Memory) GetAccount(_ context.Context, id string) (*ledger.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	acc, ok := m.state.accounts[id]
	if !ok {
		return nil, ledger.ErrAccountNotFound
	}

	return &acc, nil
}

func (m *Memory) ListAccounts(context.Context) ([]ledger.Account, error) {
	m.mu.RLock()
	accs := make([]ledger.Account, 0, len(m.state.accounts))
	for _, acc := range m.state.accounts {
		accs = append(accs, acc)
	}
	m.mu.RUnlock()

	slices.SortFunc(accs, func(a, b ledger.Account) int {
		return strings.Compare(a.ID, b.ID)
	})

	return accs, nil
}

func (m *Memory) UpdateBalance(ctx context.Context, id string, delta decimal.Decimal) error {
	return m.write(ctx, func(s *memState) error {
		acc, ok := s.accounts[id]
		if !ok {
			return ledger.ErrAccountNotFound
		}

		next := acc.Balance.Add(delta)
		if next.IsNegative() {
			return ledger.ErrInsufficientFunds
		}

		acc.Balance = next
		s.accounts[id] = acc
		return nil
	})
}

func (m *Memory) InsertTransfer(ctx context.Context, t ledger.Transfer) error {
	return m.write(ctx, func(s *memState) error {
		s.transfers = append(s.transfers, t)
		return nil
	})
}

// ListTransfers walks the records backwards: they are appended in
// commit order, so the result comes out newest first.
func (m *Memory) ListTransfers(_ context.Context, accountID string) ([]ledger.Transfer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var ts []ledger.Transfer
	for i := len(m.state.transfers) - 1; i >= 0; i-- {
		t := m.state.transfers[i]
		if t.From == accountID || t.To == accountID {
			ts = append(ts, t)
		}
	}

	return ts, nil
}

func (m *Memory) Close(context.Context) error {
	return nil
}

// write applies op now, or stages it on the change set carried by ctx.
// Staged ops are validated and applied together on commit, so a change
// set either changes the store completely or not at all.
func (m *Memory) write(ctx context.Context, op memOp) error {
	cs, ok := txn.ChangeSetFromContext(ctx)
	if !ok {
		m.mu.Lock()
		defer m.mu.Unlock()
		return op(&m.state)
	}

	m.mu.Lock()
	_, staged := m.pending[cs]
	m.pending[cs] = append(m.pending[cs], op)
	m.mu.Unlock()

	if staged {
		return nil
	}

	if err := cs.Defer(func(context.Context) error { return m.apply(cs) }); err != nil {
		return err
	}

	return cs.DeferFail(func(context.Context) error {
		m.drop(cs)
		return nil
	})
}

// apply runs the change set's staged ops on a copy of the state and
// swaps the copy in only when all of them succeed.
func (m *Memory) apply(cs *txn.ChangeSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ops := m.pending[cs]
	delete(m.pending, cs)

	next := m.state.clone()
	for _, op := range ops {
		if err := op(&next); err != nil {
			return err
		}
	}

	m.state = next
	return nil
}

func (m *Memory) drop(cs *txn.ChangeSet) {
	m.mu.Lock()
	delete(m.pending, cs)
	m.mu.Unlock()
}
