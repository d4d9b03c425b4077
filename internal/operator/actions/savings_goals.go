package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-buddy/internal/storage"
)

// AddSavingsGoal appends a new goal with CurrentAmount zero. Fails with
// storage.ErrGoalLimit when the goal cap is reached.
type AddSavingsGoal struct {
	Create  storage.SavingsGoalCreate
	Created storage.SavingsGoal

	IAction
}

func (a *AddSavingsGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	goal, err := writer.AddSavingsGoal(a.Create)
	if err != nil {
		return err
	}
	a.Created = goal
	return nil
}

// UpdateSavingsGoal merges a partial patch into an existing goal.
type UpdateSavingsGoal struct {
	ID    uuid.UUID
	Patch storage.SavingsGoalPatch
	Found bool

	IAction
}

func (a *UpdateSavingsGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	a.Found = writer.UpdateSavingsGoal(a.ID, a.Patch)
	return nil
}

// DeleteSavingsGoal removes a goal if present.
type DeleteSavingsGoal struct {
	ID    uuid.UUID
	Found bool

	IAction
}

func (a *DeleteSavingsGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	a.Found = writer.DeleteSavingsGoal(a.ID)
	return nil
}

// DistributeSavings adds the same deposit to every existing goal's
// CurrentAmount as one atomic replacement of the goal collection.
type DistributeSavings struct {
	Amount decimal.Decimal

	IAction
}

func (a *DistributeSavings) Perform(ctx context.Context, writer *storage.Writer) error {
	goals := writer.SavingsGoals()
	if len(goals) == 0 {
		return nil
	}
	for i := range goals {
		goals[i].CurrentAmount = goals[i].CurrentAmount.Add(a.Amount)
	}
	writer.ReplaceSavingsGoals(goals)
	return nil
}
