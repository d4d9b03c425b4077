package storage

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Writer mutates a working copy of the store state. Commit publishes the copy
// as the new current state in one swap; Rollback discards it.
type Writer struct {
	store *Store
	st    state
	done  bool
}

// SetIncome replaces income with the given value. The store does not clamp
// or reject; validation of user input happens at the view.
func (w *Writer) SetIncome(value decimal.Decimal) {
	w.st.income = value
}

// AddBudgetItem assigns a fresh ID, appends the item and returns it.
func (w *Writer) AddBudgetItem(create BudgetItemCreate) BudgetItem {
	item := BudgetItem{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     create.Name,
		Category: create.Category,
		Amount:   create.Amount,
		Color:    create.Color,
	}
	w.st.items = append(w.st.items, item)
	return item
}

// UpdateBudgetItem merges the patch into the item with the given ID. Returns
// false without changing anything when no item matches.
func (w *Writer) UpdateBudgetItem(id uuid.UUID, patch BudgetItemPatch) bool {
	for i := range w.st.items {
		if w.st.items[i].ID != id {
			continue
		}
		if patch.Name.IsSet() {
			w.st.items[i].Name = patch.Name.MustGet()
		}
		if patch.Category.IsSet() {
			w.st.items[i].Category = patch.Category.MustGet()
		}
		if patch.Amount.IsSet() {
			w.st.items[i].Amount = patch.Amount.MustGet()
		}
		if patch.Color.IsSet() {
			w.st.items[i].Color = patch.Color.MustGet()
		}
		return true
	}
	return false
}

// DeleteBudgetItem removes the item with the given ID. Returns false when no
// item matches; calling it again for the same ID is a no-op.
func (w *Writer) DeleteBudgetItem(id uuid.UUID) bool {
	for i := range w.st.items {
		if w.st.items[i].ID == id {
			w.st.items = append(w.st.items[:i], w.st.items[i+1:]...)
			return true
		}
	}
	return false
}

// AddSavingsGoal assigns a fresh ID and appends the goal with CurrentAmount
// zero. Returns ErrGoalLimit when MaxSavingsGoals goals already exist.
func (w *Writer) AddSavingsGoal(create SavingsGoalCreate) (SavingsGoal, error) {
	if len(w.st.goals) >= MaxSavingsGoals {
		return SavingsGoal{}, ErrGoalLimit
	}
	goal := SavingsGoal{
		ID:            uuid.Must(uuid.NewV4()),
		Name:          create.Name,
		TargetAmount:  create.TargetAmount,
		CurrentAmount: decimal.Zero,
	}
	w.st.goals = append(w.st.goals, goal)
	return goal, nil
}

// UpdateSavingsGoal merges the patch into the goal with the given ID. Returns
// false without changing anything when no goal matches.
func (w *Writer) UpdateSavingsGoal(id uuid.UUID, patch SavingsGoalPatch) bool {
	for i := range w.st.goals {
		if w.st.goals[i].ID != id {
			continue
		}
		if patch.Name.IsSet() {
			w.st.goals[i].Name = patch.Name.MustGet()
		}
		if patch.TargetAmount.IsSet() {
			w.st.goals[i].TargetAmount = patch.TargetAmount.MustGet()
		}
		if patch.CurrentAmount.IsSet() {
			w.st.goals[i].CurrentAmount = patch.CurrentAmount.MustGet()
		}
		return true
	}
	return false
}

// DeleteSavingsGoal removes the goal with the given ID if present.
func (w *Writer) DeleteSavingsGoal(id uuid.UUID) bool {
	for i := range w.st.goals {
		if w.st.goals[i].ID == id {
			w.st.goals = append(w.st.goals[:i], w.st.goals[i+1:]...)
			return true
		}
	}
	return false
}

// SavingsGoals returns a copy of the working goal collection, including any
// uncommitted changes made through this writer.
func (w *Writer) SavingsGoals() []SavingsGoal {
	return copyGoals(w.st.goals)
}

// ReplaceSavingsGoals swaps the whole goal collection in one transition.
// Used when every goal changes together (distributing a savings deposit) so
// intermediate states are never observable.
func (w *Writer) ReplaceSavingsGoals(goals []SavingsGoal) {
	w.st.goals = copyGoals(goals)
}

// Commit publishes the working state as the new current state.
func (w *Writer) Commit() error {
	if w.done {
		return nil
	}
	w.done = true

	w.store.mu.Lock()
	defer w.store.mu.Unlock()
	w.st.version = w.store.st.version + 1
	w.store.st = w.st
	return nil
}

// Rollback discards the working state.
func (w *Writer) Rollback() error {
	w.done = true
	return nil
}
