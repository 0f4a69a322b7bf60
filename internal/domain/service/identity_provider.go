// Package service defines interfaces for core, stateless domain logic and external capabilities.
package service

import (
	"context"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"
)

// Identity provider errors.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// IdentityProvider is the hosted auth service that owns user credentials.
type IdentityProvider interface {
	// SignUp registers a user. The session is nil when email confirmation is pending.
	SignUp(ctx context.Context, email, password string, metadata map[string]any) (*entity.Identity, *entity.AuthSession, error)

	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*entity.Identity, *entity.AuthSession, error)

	// Refresh exchanges a refresh token for a new session.
	Refresh(ctx context.Context, refreshToken string) (*entity.Identity, *entity.AuthSession, error)

	// SignOut revokes the session behind the access token.
	SignOut(ctx context.Context, accessToken string) error
}
