package supabase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/domain/service"
	"dcars/internal/errors"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

type identityProvider struct {
	auth   gotrue.Client
	logger *slog.Logger
}

// NewIdentityProvider creates an IdentityProvider backed by Supabase Auth.
func NewIdentityProvider(auth gotrue.Client, logger *slog.Logger) service.IdentityProvider {
	return &identityProvider{
		auth:   auth,
		logger: logger,
	}
}

// SignUp registers a user with email and password.
func (p *identityProvider) SignUp(ctx context.Context, email, password string, metadata map[string]any) (*entity.Identity, *entity.AuthSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	resp, err := p.auth.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     metadata,
	})
	if err != nil {
		return nil, nil, p.classify(err, "signup")
	}

	identity := &entity.Identity{ID: resp.User.ID, Email: resp.User.Email}
	if resp.Session.AccessToken == "" {
		return identity, nil, nil
	}

	return identity, toSession(resp.Session), nil
}

// SignIn exchanges email and password for a session.
func (p *identityProvider) SignIn(ctx context.Context, email, password string) (*entity.Identity, *entity.AuthSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	resp, err := p.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, nil, p.classify(err, "sign in")
	}

	return &entity.Identity{ID: resp.User.ID, Email: resp.User.Email}, toSession(resp.Session), nil
}

// Refresh exchanges a refresh token for a new session.
func (p *identityProvider) Refresh(ctx context.Context, refreshToken string) (*entity.Identity, *entity.AuthSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, errors.WithStack(err)
	}

	resp, err := p.auth.RefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, types.ErrInvalidTokenRequest) || isClientError(err) {
			return nil, nil, service.ErrInvalidRefreshToken
		}

		return nil, nil, errors.Wrap(err, "refresh session")
	}

	return &entity.Identity{ID: resp.User.ID, Email: resp.User.Email}, toSession(resp.Session), nil
}

// SignOut revokes the refresh tokens of the session owning accessToken.
func (p *identityProvider) SignOut(ctx context.Context, accessToken string) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}

	if err := p.auth.WithToken(accessToken).Logout(); err != nil {
		if isClientError(err) {
			return service.ErrInvalidToken
		}

		return errors.Wrap(err, "sign out")
	}

	return nil
}

// classify maps GoTrue failures onto domain errors. GoTrue reports failures as
// "response status code N: body" without typed errors.
func (p *identityProvider) classify(err error, op string) error {
	if errors.Is(err, types.ErrInvalidTokenRequest) {
		return service.ErrInvalidCredentials
	}

	status := statusCode(err)
	msg := strings.ToLower(err.Error())

	switch {
	case status == 422 && strings.Contains(msg, "already"):
		return service.ErrEmailTaken
	case status == 400 || status == 401 || status == 422:
		return service.ErrInvalidCredentials
	}

	p.logger.Warn("Supabase auth request failed", slog.String("op", op), slog.Any("error", err))

	return errors.Wrap(err, op)
}

func statusCode(err error) int {
	var code int
	if _, scanErr := fmt.Sscanf(err.Error(), "response status code %d", &code); scanErr != nil {
		return 0
	}

	return code
}

func isClientError(err error) bool {
	code := statusCode(err)

	return code >= 400 && code < 500
}

func toSession(s types.Session) *entity.AuthSession {
	expiresAt := time.Unix(s.ExpiresAt, 0).UTC()
	if s.ExpiresAt == 0 && s.ExpiresIn > 0 {
		expiresAt = time.Now().UTC().Add(time.Duration(s.ExpiresIn) * time.Second)
	}

	return &entity.AuthSession{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		ExpiresAt:    expiresAt,
	}
}
