package storage

import (
	"errors"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// MaxSavingsGoals is the hard cap on concurrently tracked goals.
const MaxSavingsGoals = 4

// ErrGoalLimit is returned when adding a goal would exceed MaxSavingsGoals.
var ErrGoalLimit = errors.New("savings goal limit reached")

// BudgetItem is a single categorized expense.
type BudgetItem struct {
	ID       uuid.UUID
	Name     string
	Category string
	Amount   decimal.Decimal
	Color    string
}

// BudgetItemCreate is the input for creating a new budget item.
// The ID is assigned by the store.
type BudgetItemCreate struct {
	Name     string
	Category string
	Amount   decimal.Decimal
	Color    string
}

// BudgetItemPatch is a partial update. Unset fields are left untouched;
// the ID is never patchable.
type BudgetItemPatch struct {
	Name     omit.Val[string]
	Category omit.Val[string]
	Amount   omit.Val[decimal.Decimal]
	Color    omit.Val[string]
}

// SavingsGoal tracks progress toward a savings target.
type SavingsGoal struct {
	ID            uuid.UUID
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
}

// SavingsGoalCreate is the input for creating a new goal. The ID is assigned
// by the store and CurrentAmount always starts at zero.
type SavingsGoalCreate struct {
	Name         string
	TargetAmount decimal.Decimal
}

// SavingsGoalPatch is a partial update with the same semantics as
// BudgetItemPatch.
type SavingsGoalPatch struct {
	Name          omit.Val[string]
	TargetAmount  omit.Val[decimal.Decimal]
	CurrentAmount omit.Val[decimal.Decimal]
}
