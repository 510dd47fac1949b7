// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"dailyexpense/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist, or exists but
	// is not owned by the requesting user. Callers cannot distinguish the
	// two cases.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint (e.g. a taken username).
	ErrDuplicate = errors.New("record already exists")
)

// Store defines the interface for user and expense persistence.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreateUser persists a new user. Returns ErrDuplicate if the
	// username is already taken; the check and the insert are atomic.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by login name.
	// Returns ErrNotFound if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns ErrNotFound if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateExpense persists a new expense. The expense.ID field is
	// populated by the store when empty.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpensesByDate returns all expenses owned by userID whose date
	// matches exactly. An empty slice is not an error.
	ListExpensesByDate(ctx context.Context, userID, date string) ([]models.Expense, error)

	// UpdateExpense overwrites the client-settable fields and TotalPrice
	// of the expense identified by expense.ID and expense.UserID, and
	// returns the full updated record. Returns ErrNotFound if no expense
	// with that ID is owned by that user.
	UpdateExpense(ctx context.Context, expense *models.Expense) (*models.Expense, error)

	// DeleteExpense removes the expense identified by expenseID if it is
	// owned by userID. Returns ErrNotFound otherwise.
	DeleteExpense(ctx context.Context, userID, expenseID string) error

	// ListExpenseDates returns every date on which userID has at least
	// one expense, each date at most once. Order is not guaranteed.
	ListExpenseDates(ctx context.Context, userID string) ([]string, error)

	// Close releases any resources held by the store.
	Close() error
}
