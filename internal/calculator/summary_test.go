package calculator

import (
	"testing"

	"dailyexpense/internal/models"
)

func TestSummarize(t *testing.T) {
	t.Run("sums totals and counts records", func(t *testing.T) {
		expenses := []models.Expense{
			{Date: "2024-01-01", TotalPrice: 10},
			{Date: "2024-01-01", TotalPrice: 2.5},
			{Date: "2024-01-01", TotalPrice: -3},
		}

		summary := Summarize("2024-01-01", expenses)
		if summary.Count != 3 {
			t.Errorf("Count: got %d, want 3", summary.Count)
		}
		if summary.Total != 9.5 {
			t.Errorf("Total: got %v, want 9.5", summary.Total)
		}
		if summary.Date != "2024-01-01" {
			t.Errorf("Date: got %s", summary.Date)
		}
	})

	t.Run("empty day", func(t *testing.T) {
		summary := Summarize("2024-01-02", nil)
		if summary.Count != 0 || summary.Total != 0 {
			t.Errorf("expected zero summary, got %+v", summary)
		}
	})
}
