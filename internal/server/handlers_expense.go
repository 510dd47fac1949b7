package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"dailyexpense/internal/calculator"
	"dailyexpense/internal/middleware"
	"dailyexpense/internal/service"
	"dailyexpense/internal/storage"
)

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	var in service.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	expense, err := s.expenses.Add(r.Context(), middleware.GetUserID(r.Context()), in)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			writeError(w, http.StatusBadRequest, "missing expense fields")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to add expense")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"expense": expense,
	})
}

func (s *Server) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	expenses, err := s.expenses.ListByDate(r.Context(), middleware.GetUserID(r.Context()), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"expenses": expenses,
	})
}

func (s *Server) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in service.ExpenseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := s.expenses.Update(r.Context(), middleware.GetUserID(r.Context()), id, in)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			writeError(w, http.StatusBadRequest, "missing update fields")
		case errors.Is(err, storage.ErrNotFound):
			writeError(w, http.StatusNotFound, "expense not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update expense")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"updated": updated,
	})
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := s.expenses.Delete(r.Context(), middleware.GetUserID(r.Context()), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "expense not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Expense deleted",
	})
}

func (s *Server) handleListDates(w http.ResponseWriter, r *http.Request) {
	dates, err := s.expenses.DistinctDates(r.Context(), middleware.GetUserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list expense dates")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"dates": dates,
	})
}

func (s *Server) handleDateSummary(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]

	expenses, err := s.expenses.ListByDate(r.Context(), middleware.GetUserID(r.Context()), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to summarize expenses")
		return
	}

	summary := calculator.Summarize(date, expenses)
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"date":    summary.Date,
		"count":   summary.Count,
		"total":   summary.Total,
	})
}
