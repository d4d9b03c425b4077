// Package service exposes the operation surface the view layer talks to:
// mutations dispatched through the operator, and pure derived figures
// computed from store snapshots.
package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-buddy/internal/storage"
)

// Category is a derived per-category summary. Categories are inferred from
// the item set, never stored.
type Category struct {
	Name        string
	TotalAmount decimal.Decimal
	Percentage  float64
}

// TotalExpenses sums the amounts of all budget items.
func TotalExpenses(items []storage.BudgetItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

// Leftover is income minus total expenses. The sign is meaningful and is
// never clamped; formatting a negative balance is the view's problem.
func Leftover(income decimal.Decimal, items []storage.BudgetItem) decimal.Decimal {
	return income.Sub(TotalExpenses(items))
}

// CategoryBreakdown groups items by exact category string, in order of first
// appearance, with each category's share of total expenses as a percentage.
// An empty item set yields an empty slice. When the total is zero the
// percentages are zero rather than a division artifact.
func CategoryBreakdown(items []storage.BudgetItem) []Category {
	categories := make([]Category, 0, len(items))
	index := make(map[string]int)

	for _, item := range items {
		if i, ok := index[item.Category]; ok {
			categories[i].TotalAmount = categories[i].TotalAmount.Add(item.Amount)
			continue
		}
		index[item.Category] = len(categories)
		categories = append(categories, Category{
			Name:        item.Category,
			TotalAmount: item.Amount,
		})
	}

	total := TotalExpenses(items)
	if total.IsZero() {
		return categories
	}
	for i := range categories {
		categories[i].Percentage = categories[i].TotalAmount.InexactFloat64() / total.InexactFloat64() * 100
	}
	return categories
}

// TotalSavings sums CurrentAmount across all goals.
func TotalSavings(goals []storage.SavingsGoal) decimal.Decimal {
	total := decimal.Zero
	for _, goal := range goals {
		total = total.Add(goal.CurrentAmount)
	}
	return total
}

// GoalProgress is CurrentAmount over TargetAmount as a percentage, unclamped
// so callers can tell exactly-complete from overshot. TargetAmount is
// positive by the store's creation contract.
func GoalProgress(goal storage.SavingsGoal) float64 {
	return goal.CurrentAmount.InexactFloat64() / goal.TargetAmount.InexactFloat64() * 100
}
