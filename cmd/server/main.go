package main

import (
	"log/slog"
	"net/http"
	"os"

	"dailyexpense/internal/auth"
	"dailyexpense/internal/config"
	"dailyexpense/internal/server"
	"dailyexpense/internal/service"
	"dailyexpense/internal/storage/sqlite"
	"dailyexpense/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	authSvc := service.NewAuthService(authenticator, jwtManager, slog.Default())
	expenseSvc := service.NewExpenseService(store, slog.Default())

	srv := server.New(authSvc, expenseSvc)
	handler := srv.Router(jwtManager)

	addr := ":" + cfg.Port
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
