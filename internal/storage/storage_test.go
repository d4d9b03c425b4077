package storage

import (
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commit(t *testing.T, w *Writer) {
	t.Helper()
	require.NoError(t, w.Commit())
}

func addItem(t *testing.T, s *Store, name, category, amount string) BudgetItem {
	t.Helper()
	w := s.Write()
	item := w.AddBudgetItem(BudgetItemCreate{
		Name:     name,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	})
	commit(t, w)
	return item
}

func addGoal(t *testing.T, s *Store, name, target string) SavingsGoal {
	t.Helper()
	w := s.Write()
	goal, err := w.AddSavingsGoal(SavingsGoalCreate{
		Name:         name,
		TargetAmount: decimal.RequireFromString(target),
	})
	require.NoError(t, err)
	commit(t, w)
	return goal
}

func TestAddBudgetItem_UniqueIDs(t *testing.T) {
	store := NewStore()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 10; i++ {
		item := addItem(t, store, "Groceries", "Food", "25.00")
		assert.False(t, seen[item.ID], "duplicate id assigned")
		seen[item.ID] = true
	}

	snap := store.Snapshot()
	assert.Len(t, snap.BudgetItems, 10)
}

func TestAddBudgetItem_PreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	addItem(t, store, "Rent", "Housing", "1200.00")
	addItem(t, store, "Groceries", "Food", "300.00")
	addItem(t, store, "Bus pass", "Transport", "50.00")

	snap := store.Snapshot()
	require.Len(t, snap.BudgetItems, 3)
	assert.Equal(t, "Rent", snap.BudgetItems[0].Name)
	assert.Equal(t, "Groceries", snap.BudgetItems[1].Name)
	assert.Equal(t, "Bus pass", snap.BudgetItems[2].Name)
}

func TestUpdateBudgetItem_PartialPatch(t *testing.T) {
	store := NewStore()
	item := addItem(t, store, "Groceries", "Food", "300.00")
	other := addItem(t, store, "Rent", "Housing", "1200.00")

	w := store.Write()
	found := w.UpdateBudgetItem(item.ID, BudgetItemPatch{
		Amount: omit.From(decimal.RequireFromString("275.50")),
	})
	assert.True(t, found)
	commit(t, w)

	snap := store.Snapshot()
	require.Len(t, snap.BudgetItems, 2)

	updated := snap.BudgetItems[0]
	assert.Equal(t, item.ID, updated.ID)
	assert.Equal(t, "Groceries", updated.Name)
	assert.Equal(t, "Food", updated.Category)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("275.50")))

	untouched := snap.BudgetItems[1]
	assert.Equal(t, other.ID, untouched.ID)
	assert.Equal(t, "Rent", untouched.Name)
	assert.True(t, untouched.Amount.Equal(other.Amount))
}

func TestUpdateBudgetItem_EmptyPatchLeavesItemUnchanged(t *testing.T) {
	store := NewStore()
	item := addItem(t, store, "Groceries", "Food", "300.00")

	w := store.Write()
	assert.True(t, w.UpdateBudgetItem(item.ID, BudgetItemPatch{}))
	commit(t, w)

	snap := store.Snapshot()
	require.Len(t, snap.BudgetItems, 1)
	got := snap.BudgetItems[0]
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.Name, got.Name)
	assert.Equal(t, item.Category, got.Category)
	assert.True(t, got.Amount.Equal(item.Amount))
	assert.Equal(t, item.Color, got.Color)
}

func TestUpdateBudgetItem_MissingIDIsNoOp(t *testing.T) {
	store := NewStore()
	addItem(t, store, "Groceries", "Food", "300.00")

	w := store.Write()
	found := w.UpdateBudgetItem(uuid.Must(uuid.NewV4()), BudgetItemPatch{
		Name: omit.From("Something"),
	})
	assert.False(t, found)
	commit(t, w)

	snap := store.Snapshot()
	require.Len(t, snap.BudgetItems, 1)
	assert.Equal(t, "Groceries", snap.BudgetItems[0].Name)
}

func TestDeleteBudgetItem_Idempotent(t *testing.T) {
	store := NewStore()
	item := addItem(t, store, "Groceries", "Food", "300.00")
	addItem(t, store, "Rent", "Housing", "1200.00")

	w := store.Write()
	assert.True(t, w.DeleteBudgetItem(item.ID))
	commit(t, w)
	assert.Len(t, store.Snapshot().BudgetItems, 1)

	w = store.Write()
	assert.False(t, w.DeleteBudgetItem(item.ID))
	commit(t, w)
	assert.Len(t, store.Snapshot().BudgetItems, 1)
}

func TestAddSavingsGoal_StartsAtZero(t *testing.T) {
	store := NewStore()
	goal := addGoal(t, store, "Vacation", "2000.00")

	assert.True(t, goal.CurrentAmount.IsZero())
	assert.True(t, goal.TargetAmount.Equal(decimal.RequireFromString("2000.00")))

	snap := store.Snapshot()
	require.Len(t, snap.SavingsGoals, 1)
	assert.True(t, snap.SavingsGoals[0].CurrentAmount.IsZero())
}

func TestAddSavingsGoal_LimitEnforced(t *testing.T) {
	store := NewStore()
	for i := 0; i < MaxSavingsGoals; i++ {
		addGoal(t, store, "Goal", "100.00")
	}

	w := store.Write()
	_, err := w.AddSavingsGoal(SavingsGoalCreate{
		Name:         "One too many",
		TargetAmount: decimal.RequireFromString("100.00"),
	})
	assert.ErrorIs(t, err, ErrGoalLimit)
	commit(t, w)

	assert.Len(t, store.Snapshot().SavingsGoals, MaxSavingsGoals)
}

func TestUpdateSavingsGoal_MergeIfFound(t *testing.T) {
	store := NewStore()
	goal := addGoal(t, store, "Vacation", "2000.00")

	w := store.Write()
	assert.True(t, w.UpdateSavingsGoal(goal.ID, SavingsGoalPatch{
		CurrentAmount: omit.From(decimal.RequireFromString("150.00")),
	}))
	commit(t, w)

	snap := store.Snapshot()
	require.Len(t, snap.SavingsGoals, 1)
	got := snap.SavingsGoals[0]
	assert.Equal(t, goal.ID, got.ID)
	assert.Equal(t, "Vacation", got.Name)
	assert.True(t, got.CurrentAmount.Equal(decimal.RequireFromString("150.00")))

	w = store.Write()
	assert.False(t, w.UpdateSavingsGoal(uuid.Must(uuid.NewV4()), SavingsGoalPatch{
		Name: omit.From("Ghost"),
	}))
	commit(t, w)
}

func TestDeleteSavingsGoal(t *testing.T) {
	store := NewStore()
	goal := addGoal(t, store, "Vacation", "2000.00")
	addGoal(t, store, "Emergency fund", "5000.00")

	w := store.Write()
	assert.True(t, w.DeleteSavingsGoal(goal.ID))
	commit(t, w)

	snap := store.Snapshot()
	require.Len(t, snap.SavingsGoals, 1)
	assert.Equal(t, "Emergency fund", snap.SavingsGoals[0].Name)
}

func TestReplaceSavingsGoals_AtomicSwap(t *testing.T) {
	store := NewStore()
	first := addGoal(t, store, "Vacation", "2000.00")
	second := addGoal(t, store, "Emergency fund", "5000.00")

	deposit := decimal.RequireFromString("50.00")
	snap := store.Snapshot()
	replacement := make([]SavingsGoal, len(snap.SavingsGoals))
	for i, g := range snap.SavingsGoals {
		g.CurrentAmount = g.CurrentAmount.Add(deposit)
		replacement[i] = g
	}

	w := store.Write()
	w.ReplaceSavingsGoals(replacement)
	commit(t, w)

	snap = store.Snapshot()
	require.Len(t, snap.SavingsGoals, 2)
	assert.Equal(t, first.ID, snap.SavingsGoals[0].ID)
	assert.Equal(t, second.ID, snap.SavingsGoals[1].ID)
	assert.True(t, snap.SavingsGoals[0].CurrentAmount.Equal(deposit))
	assert.True(t, snap.SavingsGoals[1].CurrentAmount.Equal(deposit))
}

func TestSetIncome_AbsoluteReplacement(t *testing.T) {
	store := NewStore()

	w := store.Write()
	w.SetIncome(decimal.RequireFromString("3000.00"))
	commit(t, w)
	assert.True(t, store.Snapshot().Income.Equal(decimal.RequireFromString("3000.00")))

	w = store.Write()
	w.SetIncome(decimal.RequireFromString("-100.00"))
	commit(t, w)
	assert.True(t, store.Snapshot().Income.Equal(decimal.RequireFromString("-100.00")), "income is replaced as given, not clamped")
}

func TestRollback_DiscardsChanges(t *testing.T) {
	store := NewStore()

	w := store.Write()
	w.AddBudgetItem(BudgetItemCreate{Name: "Rent", Category: "Housing", Amount: decimal.RequireFromString("1200.00")})
	w.SetIncome(decimal.RequireFromString("9999.00"))
	require.NoError(t, w.Rollback())

	snap := store.Snapshot()
	assert.Empty(t, snap.BudgetItems)
	assert.True(t, snap.Income.IsZero())
}

func TestSnapshot_IsACopy(t *testing.T) {
	store := NewStore()
	addItem(t, store, "Groceries", "Food", "300.00")
	addGoal(t, store, "Vacation", "2000.00")

	snap := store.Snapshot()
	snap.BudgetItems[0].Name = "Tampered"
	snap.SavingsGoals[0].CurrentAmount = decimal.RequireFromString("999.00")

	fresh := store.Snapshot()
	assert.Equal(t, "Groceries", fresh.BudgetItems[0].Name)
	assert.True(t, fresh.SavingsGoals[0].CurrentAmount.IsZero())
}

func TestSnapshot_VersionAdvancesPerCommit(t *testing.T) {
	store := NewStore()
	v0 := store.Snapshot().Version

	addItem(t, store, "Groceries", "Food", "300.00")
	v1 := store.Snapshot().Version
	assert.Equal(t, v0+1, v1)

	w := store.Write()
	w.SetIncome(decimal.RequireFromString("100.00"))
	require.NoError(t, w.Rollback())
	assert.Equal(t, v1, store.Snapshot().Version)
}
