package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"dailyexpense/internal/models"
	"dailyexpense/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := New(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, username string) *models.User {
	t.Helper()

	user := models.NewUser(username, "hash-"+username)
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestSQLiteStoreUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("create and retrieve user", func(t *testing.T) {
		user := createTestUser(t, store, "alice")

		byName, err := store.GetUserByUsername(ctx, "alice")
		if err != nil {
			t.Fatalf("GetUserByUsername failed: %v", err)
		}
		if byName.ID != user.ID || byName.PasswordHash != user.PasswordHash {
			t.Errorf("retrieved user mismatch: got %+v, want %+v", byName, user)
		}

		byID, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if byID.Username != "alice" {
			t.Errorf("Username mismatch: got %s, want alice", byID.Username)
		}
	})

	t.Run("duplicate username returns ErrDuplicate", func(t *testing.T) {
		createTestUser(t, store, "bob")

		err := store.CreateUser(ctx, models.NewUser("bob", "other-hash"))
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Errorf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("unknown username returns ErrNotFound", func(t *testing.T) {
		if _, err := store.GetUserByUsername(ctx, "nobody"); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestSQLiteStoreExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice")
	bob := createTestUser(t, store, "bob")

	t.Run("create generates ID", func(t *testing.T) {
		expense := &models.Expense{
			UserID:     alice.ID,
			Date:       "2024-01-01",
			ItemName:   "Coffee",
			UnitPrice:  5,
			Quantity:   2,
			TotalPrice: 10,
		}

		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" {
			t.Error("expected expense ID to be generated")
		}
	})

	t.Run("list filters by owner and date", func(t *testing.T) {
		for _, e := range []*models.Expense{
			{UserID: alice.ID, Date: "2024-02-01", ItemName: "Tea", UnitPrice: 3, Quantity: 1, TotalPrice: 3},
			{UserID: alice.ID, Date: "2024-02-02", ItemName: "Bread", UnitPrice: 2, Quantity: 2, TotalPrice: 4},
			{UserID: bob.ID, Date: "2024-02-01", ItemName: "Milk", UnitPrice: 1, Quantity: 1, TotalPrice: 1},
		} {
			if err := store.CreateExpense(ctx, e); err != nil {
				t.Fatalf("CreateExpense failed: %v", err)
			}
		}

		expenses, err := store.ListExpensesByDate(ctx, alice.ID, "2024-02-01")
		if err != nil {
			t.Fatalf("ListExpensesByDate failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("expected 1 expense, got %d", len(expenses))
		}
		if expenses[0].ItemName != "Tea" {
			t.Errorf("ItemName mismatch: got %s, want Tea", expenses[0].ItemName)
		}
	})

	t.Run("list with no matches returns empty slice", func(t *testing.T) {
		expenses, err := store.ListExpensesByDate(ctx, alice.ID, "1999-12-31")
		if err != nil {
			t.Fatalf("ListExpensesByDate failed: %v", err)
		}
		if expenses == nil || len(expenses) != 0 {
			t.Errorf("expected empty slice, got %v", expenses)
		}
	})

	t.Run("update overwrites fields and keeps date", func(t *testing.T) {
		expense := &models.Expense{
			UserID: alice.ID, Date: "2024-03-01", ItemName: "Pen", UnitPrice: 1, Quantity: 1, TotalPrice: 1,
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		updated, err := store.UpdateExpense(ctx, &models.Expense{
			ID: expense.ID, UserID: alice.ID, ItemName: "Pencil", UnitPrice: 2, Quantity: 3, TotalPrice: 6,
		})
		if err != nil {
			t.Fatalf("UpdateExpense failed: %v", err)
		}
		if updated.ItemName != "Pencil" || updated.TotalPrice != 6 {
			t.Errorf("update not applied: %+v", updated)
		}
		if updated.Date != "2024-03-01" {
			t.Errorf("date changed on update: got %s", updated.Date)
		}
	})

	t.Run("update by non-owner returns ErrNotFound", func(t *testing.T) {
		expense := &models.Expense{
			UserID: alice.ID, Date: "2024-03-02", ItemName: "Book", UnitPrice: 10, Quantity: 1, TotalPrice: 10,
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		_, err := store.UpdateExpense(ctx, &models.Expense{
			ID: expense.ID, UserID: bob.ID, ItemName: "Stolen", UnitPrice: 1, Quantity: 1, TotalPrice: 1,
		})
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete by non-owner returns ErrNotFound", func(t *testing.T) {
		expense := &models.Expense{
			UserID: alice.ID, Date: "2024-03-03", ItemName: "Cup", UnitPrice: 4, Quantity: 1, TotalPrice: 4,
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if err := store.DeleteExpense(ctx, bob.ID, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}

		// Owner can still delete it.
		if err := store.DeleteExpense(ctx, alice.ID, expense.ID); err != nil {
			t.Fatalf("DeleteExpense by owner failed: %v", err)
		}
		if err := store.DeleteExpense(ctx, alice.ID, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("expected ErrNotFound on second delete, got %v", err)
		}
	})

	t.Run("dates are distinct per user", func(t *testing.T) {
		carol := createTestUser(t, store, "carol")
		for _, e := range []*models.Expense{
			{UserID: carol.ID, Date: "2024-01-01", ItemName: "A", UnitPrice: 1, Quantity: 1, TotalPrice: 1},
			{UserID: carol.ID, Date: "2024-01-01", ItemName: "B", UnitPrice: 1, Quantity: 1, TotalPrice: 1},
			{UserID: carol.ID, Date: "2024-01-01", ItemName: "C", UnitPrice: 1, Quantity: 1, TotalPrice: 1},
			{UserID: carol.ID, Date: "2024-01-02", ItemName: "D", UnitPrice: 1, Quantity: 1, TotalPrice: 1},
		} {
			if err := store.CreateExpense(ctx, e); err != nil {
				t.Fatalf("CreateExpense failed: %v", err)
			}
		}

		dates, err := store.ListExpenseDates(ctx, carol.ID)
		if err != nil {
			t.Fatalf("ListExpenseDates failed: %v", err)
		}
		if len(dates) != 2 {
			t.Fatalf("expected 2 distinct dates, got %d: %v", len(dates), dates)
		}
	})
}
