package usecase

import (
	"context"

	"dcars/internal/domain/entity"
)

// AuthUsecase passes credentials through to the identity provider and keeps profiles in sync.
type AuthUsecase interface {
	// SignUp registers the user and creates the profile. The session is nil when email confirmation is pending.
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Profile, *entity.AuthSession, error)

	// SignIn exchanges email and password for a session.
	SignIn(ctx context.Context, email, password string) (*entity.AuthSession, error)

	// Refresh exchanges a refresh token for a new session.
	Refresh(ctx context.Context, refreshToken string) (*entity.AuthSession, error)

	// SignOut revokes the session behind the access token.
	SignOut(ctx context.Context, accessToken string) error

	// Authenticate verifies an access token and loads the caller's profile.
	Authenticate(ctx context.Context, accessToken string) (*entity.Profile, error)
}

// SignUpInput defines the data required to register.
type SignUpInput struct {
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	FullName string      `json:"full_name" validate:"required,max=120"`
	Role     entity.Role `json:"role" validate:"omitempty,oneof=buyer seller dealer"`
	// DealerName is required when signing up as a dealer.
	DealerName string `json:"dealer_name" validate:"required_if=Role dealer,max=120"`
}
