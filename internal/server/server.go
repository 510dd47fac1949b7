// Package server wires the HTTP surface: routing, request decoding, field
// validation and the mapping from service outcomes to status codes.
//
// Every handler performs exactly one store-backed service call and
// translates its result into a JSON response; no error propagates past
// the handler boundary.
package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"dailyexpense/internal/auth"
	"dailyexpense/internal/middleware"
	"dailyexpense/internal/service"
)

// Server holds the handler dependencies.
type Server struct {
	auth     *service.AuthService
	expenses *service.ExpenseService
}

// New creates a new Server.
func New(authSvc *service.AuthService, expenseSvc *service.ExpenseService) *Server {
	return &Server{
		auth:     authSvc,
		expenses: expenseSvc,
	}
}

// Router builds the route table. Protected routes sit behind the bearer
// token gate, which short-circuits with 401 before any handler runs;
// register, login, health and metrics are public.
func (s *Server) Router(jwtManager *auth.JWTManager) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Logging, middleware.Metrics)

	r.Handle("/metrics", middleware.MetricsHandler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/register", s.handleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/login", s.handleLogin).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.RequireAuth(jwtManager))
	api.HandleFunc("/expenses", s.handleAddExpense).Methods(http.MethodPost)
	api.HandleFunc("/expenses/{date}", s.handleListExpenses).Methods(http.MethodGet)
	api.HandleFunc("/expenses/{id}", s.handleUpdateExpense).Methods(http.MethodPut)
	api.HandleFunc("/expenses/{id}", s.handleDeleteExpense).Methods(http.MethodDelete)
	api.HandleFunc("/expenses-calendar/get-all-dates", s.handleListDates).Methods(http.MethodGet)
	api.HandleFunc("/expenses-summary/{date}", s.handleDateSummary).Methods(http.MethodGet)

	return middleware.CORS(r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
