// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"dcars/config"
	"dcars/internal/domain/entity"
	"dcars/internal/domain/service"
	"dcars/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultLeeway = 30 * time.Second

// supabaseClaims are the access token claims Supabase Auth issues.
type supabaseClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// jwtVerifier validates Supabase access tokens signed with the project's HS256 secret.
type jwtVerifier struct {
	secret []byte
	parser *jwt.Parser
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Supabase == nil || cfg.Supabase.JWTSecret == "" {
		return nil, errors.New("supabase jwt secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(defaultLeeway),
	}
	if cfg.Supabase.JWTAudience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Supabase.JWTAudience))
	}

	return &jwtVerifier{
		secret: []byte(cfg.Supabase.JWTSecret),
		parser: jwt.NewParser(opts...),
	}, nil
}

// Verify parses the token and returns the trusted claims.
func (v *jwtVerifier) Verify(tokenString string) (*entity.TokenClaims, error) {
	claims := &supabaseClaims{}

	token, err := v.parser.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Wrap(service.ErrInvalidToken, errMessage(err))
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, "subject is not a user id")
	}

	result := &entity.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}

	return result, nil
}

func errMessage(err error) string {
	if err == nil {
		return "token is not valid"
	}

	return err.Error()
}
