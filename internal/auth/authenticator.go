package auth

import (
	"context"

	"dailyexpense/internal/models"
)

// Authenticator defines the interface for credential verification.
// This abstraction allows swapping auth methods without changing the
// service layer.
type Authenticator interface {
	// Register creates a new account for username with the given
	// credential. Returns ErrUsernameExists if the name is taken.
	Register(ctx context.Context, username, credential string) (*models.User, error)

	// Authenticate verifies username and credential, returning the user
	// on success. Returns ErrInvalidCredentials on any mismatch, without
	// distinguishing an unknown user from a wrong credential.
	Authenticate(ctx context.Context, username, credential string) (*models.User, error)
}
