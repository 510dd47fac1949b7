// Package calculator derives aggregate spending figures from expense
// records.
package calculator

import "dailyexpense/internal/models"

// DateSummary aggregates one day's spending for a single user.
type DateSummary struct {
	Date  string  `json:"date"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// Summarize computes the expense count and summed total for one date's
// expenses.
func Summarize(date string, expenses []models.Expense) DateSummary {
	summary := DateSummary{Date: date, Count: len(expenses)}
	for i := range expenses {
		summary.Total += expenses[i].TotalPrice
	}
	return summary
}
