package service

import (
	"context"
	"log/slog"

	"dailyexpense/internal/auth"
)

// AuthService implements registration and login on top of an
// Authenticator and a token issuer.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		logger:        logger,
	}
}

// Register creates a new user account. Registration does not log the user
// in; a separate login is required to obtain a token.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrValidation
	}

	user, err := s.authenticator.Register(ctx, username, password)
	if err != nil {
		s.logger.Warn("Registration failed", "username", username, "error", err)
		return err
	}

	s.logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	return nil
}

// Login authenticates a user and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", ErrValidation
	}

	user, err := s.authenticator.Authenticate(ctx, username, password)
	if err != nil {
		s.logger.Warn("Login failed", "username", username)
		return "", err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		s.logger.Error("Failed to generate token", "user_id", user.ID, "error", err)
		return "", err
	}

	s.logger.Info("User logged in", "user_id", user.ID, "username", user.Username)
	return token, nil
}
