// Package service implements the application operations between the HTTP
// layer and storage: credential handling and the expense lifecycle.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dailyexpense/internal/models"
	"dailyexpense/internal/storage"
)

// ErrValidation marks a request with missing required fields.
var ErrValidation = errors.New("missing required fields")

// ExpenseInput carries the client-settable expense fields. The numeric
// fields are pointers so that an absent field is distinguishable from an
// explicit zero; zero and negative values are accepted as-is.
type ExpenseInput struct {
	Date      string   `json:"date"`
	ItemName  string   `json:"item_name"`
	UnitPrice *float64 `json:"unit_price"`
	Quantity  *float64 `json:"quantity"`
}

// ExpenseService implements the expense operations. TotalPrice is derived
// here, at every call site that sets UnitPrice or Quantity, rather than in
// a storage hook.
type ExpenseService struct {
	store  storage.Store
	logger *slog.Logger
}

// NewExpenseService creates a new expense service.
func NewExpenseService(store storage.Store, logger *slog.Logger) *ExpenseService {
	return &ExpenseService{
		store:  store,
		logger: logger,
	}
}

// Add validates the input, derives the total and persists a new expense
// owned by userID.
func (s *ExpenseService) Add(ctx context.Context, userID string, in ExpenseInput) (*models.Expense, error) {
	if in.Date == "" || in.ItemName == "" || in.UnitPrice == nil || in.Quantity == nil {
		return nil, ErrValidation
	}

	expense := &models.Expense{
		UserID:     userID,
		Date:       in.Date,
		ItemName:   in.ItemName,
		UnitPrice:  *in.UnitPrice,
		Quantity:   *in.Quantity,
		TotalPrice: *in.UnitPrice * *in.Quantity,
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to add expense: %w", err)
	}

	s.logger.Info("Expense added", "user_id", userID, "expense_id", expense.ID, "date", expense.Date)
	return expense, nil
}

// ListByDate returns all of userID's expenses on the given date.
// An empty result is not an error.
func (s *ExpenseService) ListByDate(ctx context.Context, userID, date string) ([]models.Expense, error) {
	expenses, err := s.store.ListExpensesByDate(ctx, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// Update overwrites the client-settable fields of an expense owned by
// userID and recomputes the total. All three fields must be supplied
// together; partial updates are rejected and leave the record unchanged.
func (s *ExpenseService) Update(ctx context.Context, userID, expenseID string, in ExpenseInput) (*models.Expense, error) {
	if in.ItemName == "" || in.UnitPrice == nil || in.Quantity == nil {
		return nil, ErrValidation
	}

	expense := &models.Expense{
		ID:         expenseID,
		UserID:     userID,
		ItemName:   in.ItemName,
		UnitPrice:  *in.UnitPrice,
		Quantity:   *in.Quantity,
		TotalPrice: *in.UnitPrice * *in.Quantity,
	}

	updated, err := s.store.UpdateExpense(ctx, expense)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	s.logger.Info("Expense updated", "user_id", userID, "expense_id", expenseID)
	return updated, nil
}

// Delete removes an expense owned by userID.
func (s *ExpenseService) Delete(ctx context.Context, userID, expenseID string) error {
	if err := s.store.DeleteExpense(ctx, userID, expenseID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	s.logger.Info("Expense deleted", "user_id", userID, "expense_id", expenseID)
	return nil
}

// DistinctDates returns every date on which userID has at least one
// expense, duplicates collapsed.
func (s *ExpenseService) DistinctDates(ctx context.Context, userID string) ([]string, error) {
	dates, err := s.store.ListExpenseDates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense dates: %w", err)
	}
	return dates, nil
}
