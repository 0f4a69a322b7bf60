package service

import (
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
)

// ErrInvalidToken is returned for malformed, expired or wrongly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier validates access tokens issued by the identity provider.
type TokenVerifier interface {
	Verify(token string) (*entity.TokenClaims, error)
}
