package auth

import (
	"testing"
	"time"

	"dcars/config"
	"dcars/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-jwt-token-with-at-least-32-characters-long"

func newTestVerifier(t *testing.T) service.TokenVerifier {
	t.Helper()

	verifier, err := NewJWTVerifier(&config.Config{
		Supabase: &config.SupabaseConfig{
			JWTSecret:   testSecret,
			JWTAudience: "authenticated",
		},
	})
	require.NoError(t, err)

	return verifier
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func validClaims(userID uuid.UUID) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":   userID.String(),
		"email": "seller@example.com",
		"aud":   "authenticated",
		"role":  "authenticated",
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	}
}

func TestNewJWTVerifier_RequiresSecret(t *testing.T) {
	_, err := NewJWTVerifier(&config.Config{Supabase: &config.SupabaseConfig{}})
	assert.Error(t, err)

	_, err = NewJWTVerifier(&config.Config{})
	assert.Error(t, err)
}

func TestJWTVerifier_Verify(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	claims, err := verifier.Verify(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID)))

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "seller@example.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt, 5*time.Second)
}

func TestJWTVerifier_Rejects(t *testing.T) {
	verifier := newTestVerifier(t)
	userID := uuid.New()

	expired := validClaims(userID)
	expired["exp"] = time.Now().Add(-time.Hour).Unix()

	wrongAudience := validClaims(userID)
	wrongAudience["aud"] = "anon"

	noExpiry := validClaims(userID)
	delete(noExpiry, "exp")

	badSubject := validClaims(userID)
	badSubject["sub"] = "not-a-uuid"

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt"},
		{name: "wrong secret", token: signToken(t, jwt.SigningMethodHS256, []byte("another-secret-of-sufficient-length-123"), validClaims(userID))},
		{name: "expired", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)},
		{name: "wrong audience", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), wrongAudience)},
		{name: "missing expiry", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry)},
		{name: "non uuid subject", token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), badSubject)},
		{name: "other hmac algorithm", token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(userID))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := verifier.Verify(tt.token)

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, service.ErrInvalidToken)
		})
	}
}
