package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-buddy/internal/logging"
	"github.com/carson-networks/budget-buddy/internal/operator"
	"github.com/carson-networks/budget-buddy/internal/operator/actions"
	"github.com/carson-networks/budget-buddy/internal/storage"
)

// BudgetService is the mutation surface the view layer calls. Every write is
// dispatched as an action through the operator so mutations commit in
// dispatch order.
type BudgetService struct {
	store    *storage.Store
	operator *operator.OperatorDelegator
	logger   *logrus.Logger
}

// NewBudgetService creates a new BudgetService.
func NewBudgetService(store *storage.Store, op *operator.OperatorDelegator, logger *logrus.Logger) *BudgetService {
	return &BudgetService{
		store:    store,
		operator: op,
		logger:   logger,
	}
}

// Snapshot returns the store's latest committed state.
func (s *BudgetService) Snapshot() storage.Snapshot {
	return s.store.Snapshot()
}

// SetIncome replaces income with an absolute value.
func (s *BudgetService) SetIncome(ctx context.Context, income decimal.Decimal) error {
	return logging.OperationWrapper("SetIncome", s.logger, func(logData *logging.LogData) error {
		logData.AddData("income", income.String())
		return s.operator.Process(ctx, &actions.SetIncome{Income: income})
	})
}

// AddIncome accumulates additional income onto the current value.
func (s *BudgetService) AddIncome(ctx context.Context, delta decimal.Decimal) error {
	return logging.OperationWrapper("AddIncome", s.logger, func(logData *logging.LogData) error {
		logData.AddData("delta", delta.String())
		income := s.store.Snapshot().Income.Add(delta)
		return s.operator.Process(ctx, &actions.SetIncome{Income: income})
	})
}

// AddBudgetItem creates a new expense item and returns it with its assigned ID.
func (s *BudgetService) AddBudgetItem(ctx context.Context, create storage.BudgetItemCreate) (storage.BudgetItem, error) {
	action := &actions.AddBudgetItem{Create: create}
	err := logging.OperationWrapper("AddBudgetItem", s.logger, func(logData *logging.LogData) error {
		logData.AddData("name", create.Name)
		logData.AddData("category", create.Category)
		logData.AddData("amount", create.Amount.String())
		return s.operator.Process(ctx, action)
	})
	if err != nil {
		return storage.BudgetItem{}, err
	}
	return action.Created, nil
}

// UpdateBudgetItem merges a partial patch into an existing item. An unknown
// ID is a benign no-op; the returned flag reports whether anything matched.
func (s *BudgetService) UpdateBudgetItem(ctx context.Context, id uuid.UUID, patch storage.BudgetItemPatch) (bool, error) {
	action := &actions.UpdateBudgetItem{ID: id, Patch: patch}
	err := logging.OperationWrapper("UpdateBudgetItem", s.logger, func(logData *logging.LogData) error {
		logData.AddData("id", id.String())
		return s.operator.Process(ctx, action)
	})
	return action.Found, err
}

// DeleteBudgetItem removes an item if present. Idempotent.
func (s *BudgetService) DeleteBudgetItem(ctx context.Context, id uuid.UUID) (bool, error) {
	action := &actions.DeleteBudgetItem{ID: id}
	err := logging.OperationWrapper("DeleteBudgetItem", s.logger, func(logData *logging.LogData) error {
		logData.AddData("id", id.String())
		return s.operator.Process(ctx, action)
	})
	return action.Found, err
}

// AddSavingsGoal creates a new goal with CurrentAmount zero. Returns
// storage.ErrGoalLimit when the goal cap is already reached.
func (s *BudgetService) AddSavingsGoal(ctx context.Context, create storage.SavingsGoalCreate) (storage.SavingsGoal, error) {
	action := &actions.AddSavingsGoal{Create: create}
	err := logging.OperationWrapper("AddSavingsGoal", s.logger, func(logData *logging.LogData) error {
		logData.AddData("name", create.Name)
		logData.AddData("target", create.TargetAmount.String())
		return s.operator.Process(ctx, action)
	})
	if err != nil {
		return storage.SavingsGoal{}, err
	}
	return action.Created, nil
}

// UpdateSavingsGoal merges a partial patch into an existing goal.
func (s *BudgetService) UpdateSavingsGoal(ctx context.Context, id uuid.UUID, patch storage.SavingsGoalPatch) (bool, error) {
	action := &actions.UpdateSavingsGoal{ID: id, Patch: patch}
	err := logging.OperationWrapper("UpdateSavingsGoal", s.logger, func(logData *logging.LogData) error {
		logData.AddData("id", id.String())
		return s.operator.Process(ctx, action)
	})
	return action.Found, err
}

// DeleteSavingsGoal removes a goal if present.
func (s *BudgetService) DeleteSavingsGoal(ctx context.Context, id uuid.UUID) (bool, error) {
	action := &actions.DeleteSavingsGoal{ID: id}
	err := logging.OperationWrapper("DeleteSavingsGoal", s.logger, func(logData *logging.LogData) error {
		logData.AddData("id", id.String())
		return s.operator.Process(ctx, action)
	})
	return action.Found, err
}

// DistributeSavings adds the amount to every existing goal's CurrentAmount
// as one atomic state transition.
func (s *BudgetService) DistributeSavings(ctx context.Context, amount decimal.Decimal) error {
	return logging.OperationWrapper("DistributeSavings", s.logger, func(logData *logging.LogData) error {
		logData.AddData("amount", amount.String())
		return s.operator.Process(ctx, &actions.DistributeSavings{Amount: amount})
	})
}
