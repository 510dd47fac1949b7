package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"dailyexpense/internal/models"
	"dailyexpense/internal/storage"
)

// CreateExpense persists a new expense, generating an ID if not set.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}

	query := `
		INSERT INTO expenses (id, user_id, date, item_name, unit_price, quantity, total_price)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		expense.ID,
		expense.UserID,
		expense.Date,
		expense.ItemName,
		expense.UnitPrice,
		expense.Quantity,
		expense.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// ListExpensesByDate returns all of userID's expenses on the given date.
func (s *SQLiteStore) ListExpensesByDate(ctx context.Context, userID, date string) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, date, item_name, unit_price, quantity, total_price
		FROM expenses
		WHERE user_id = ? AND date = ?
	`

	rows, err := s.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0)
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.ItemName, &e.UnitPrice, &e.Quantity, &e.TotalPrice); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense overwrites the mutable fields of an expense owned by
// expense.UserID and returns the updated record.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error) {
	query := `
		UPDATE expenses
		SET item_name = ?, unit_price = ?, quantity = ?, total_price = ?
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		expense.ItemName,
		expense.UnitPrice,
		expense.Quantity,
		expense.TotalPrice,
		expense.ID,
		expense.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return nil, storage.ErrNotFound
	}

	return s.getExpense(ctx, expense.UserID, expense.ID)
}

// DeleteExpense removes an expense owned by userID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE id = ? AND user_id = ?",
		expenseID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// ListExpenseDates returns the distinct dates on which userID has expenses.
func (s *SQLiteStore) ListExpenseDates(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT date FROM expenses WHERE user_id = ?",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense dates: %w", err)
	}
	defer rows.Close()

	dates := make([]string, 0)
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan date: %w", err)
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate dates: %w", err)
	}

	return dates, nil
}

// getExpense retrieves a single expense scoped to its owner.
func (s *SQLiteStore) getExpense(ctx context.Context, userID, expenseID string) (*models.Expense, error) {
	query := `
		SELECT id, user_id, date, item_name, unit_price, quantity, total_price
		FROM expenses
		WHERE id = ? AND user_id = ?
	`

	e := &models.Expense{}
	err := s.db.QueryRowContext(ctx, query, expenseID, userID).Scan(
		&e.ID, &e.UserID, &e.Date, &e.ItemName, &e.UnitPrice, &e.Quantity, &e.TotalPrice,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}
