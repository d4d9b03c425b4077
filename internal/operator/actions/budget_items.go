package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-buddy/internal/storage"
)

// SetIncome replaces the stored income with an absolute value.
type SetIncome struct {
	Income decimal.Decimal

	IAction
}

func (a *SetIncome) Perform(ctx context.Context, writer *storage.Writer) error {
	writer.SetIncome(a.Income)
	return nil
}

// AddBudgetItem appends a new expense item. The created entity, with its
// assigned ID, is available in Created after the action completes.
type AddBudgetItem struct {
	Create  storage.BudgetItemCreate
	Created storage.BudgetItem

	IAction
}

func (a *AddBudgetItem) Perform(ctx context.Context, writer *storage.Writer) error {
	a.Created = writer.AddBudgetItem(a.Create)
	return nil
}

// UpdateBudgetItem merges a partial patch into an existing item. A missing
// ID leaves the store untouched; Found reports the outcome.
type UpdateBudgetItem struct {
	ID    uuid.UUID
	Patch storage.BudgetItemPatch
	Found bool

	IAction
}

func (a *UpdateBudgetItem) Perform(ctx context.Context, writer *storage.Writer) error {
	a.Found = writer.UpdateBudgetItem(a.ID, a.Patch)
	return nil
}

// DeleteBudgetItem removes an item if present.
type DeleteBudgetItem struct {
	ID    uuid.UUID
	Found bool

	IAction
}

func (a *DeleteBudgetItem) Perform(ctx context.Context, writer *storage.Writer) error {
	a.Found = writer.DeleteBudgetItem(a.ID)
	return nil
}
