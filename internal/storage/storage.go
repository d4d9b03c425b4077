// Package storage owns the canonical budget state: income, budget items and
// savings goals. All reads go through Snapshot, all writes through a Writer
// obtained from Write. Snapshots are copies; mutating one never touches the
// store.
package storage

import (
	"sync"

	"github.com/shopspring/decimal"
)

type state struct {
	income  decimal.Decimal
	items   []BudgetItem
	goals   []SavingsGoal
	version uint64
}

// Store is the sole owner of budget state. Writers commit whole-state swaps,
// so readers observe either the pre- or post-mutation state, never anything
// in between.
type Store struct {
	mu sync.Mutex
	st state
}

// Snapshot is an immutable view of the store at a point in time. Version
// increments on every committed write.
type Snapshot struct {
	Income       decimal.Decimal
	BudgetItems  []BudgetItem
	SavingsGoals []SavingsGoal
	Version      uint64
}

func NewStore() *Store {
	return &Store{
		st: state{income: decimal.Zero},
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Income:       s.st.income,
		BudgetItems:  copyItems(s.st.items),
		SavingsGoals: copyGoals(s.st.goals),
		Version:      s.st.version,
	}
}

// Write starts a mutation against a copy of the current state. Nothing is
// visible to readers until Commit. Writers are not safe to use concurrently
// with each other; the operator serializes them.
func (s *Store) Write() *Writer {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &Writer{
		store: s,
		st: state{
			income:  s.st.income,
			items:   copyItems(s.st.items),
			goals:   copyGoals(s.st.goals),
			version: s.st.version,
		},
	}
}

func copyItems(items []BudgetItem) []BudgetItem {
	out := make([]BudgetItem, len(items))
	copy(out, items)
	return out
}

func copyGoals(goals []SavingsGoal) []SavingsGoal {
	out := make([]SavingsGoal, len(goals))
	copy(out, goals)
	return out
}
