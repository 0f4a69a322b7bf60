package entity

import (
	"time"

	"github.com/google/uuid"
)

// Identity is an auth user as reported by the identity provider.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// AuthSession is a token pair issued by the identity provider.
type AuthSession struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	ExpiresIn    int       `json:"expires_in"`
	ExpiresAt    time.Time `json:"expires_at"`
	Profile      *Profile  `json:"profile,omitempty"`
}

// TokenClaims are the claims the API trusts from a verified access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}
