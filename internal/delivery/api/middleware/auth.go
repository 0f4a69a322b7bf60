package middleware

import (
	"strings"

	deliverycontext "dcars/internal/delivery/context"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix     = "Bearer "
	accessTokenParam = "access_token"
)

// AuthMiddleware authenticates Supabase access tokens and gates routes by role.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate requires a valid access token and loads the caller's profile.
// Browsers cannot set headers on websocket upgrades, so an upgrade request may carry ?access_token= instead.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := extractToken(c)
		if err != nil {
			return err
		}
		if token == "" {
			return errors.WithStack(domainerrors.ErrUnauthorized)
		}

		if err := m.authenticate(c, token); err != nil {
			return err
		}

		return next(c)
	}
}

// OptionalAuthenticate loads the caller when a token is present and lets anonymous requests through.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token, err := extractToken(c)
		if err != nil {
			return err
		}
		if token != "" {
			if err := m.authenticate(c, token); err != nil {
				return err
			}
		}

		return next(c)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, token string) error {
	profile, err := m.authUC.Authenticate(c.Request().Context(), token)
	if err != nil {
		return err
	}

	deliverycontext.SetProfile(c, profile, token)

	if logger := deliverycontext.GetLogger(c.Request().Context()); logger != nil {
		ctx := deliverycontext.WithLogger(c.Request().Context(), logger.With("user_id", profile.ID.String()))
		c.SetRequest(c.Request().WithContext(ctx))
	}

	return nil
}

// RequireRole allows the request when the caller holds any of the roles. Admins always pass.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			profile := deliverycontext.GetProfile(c)
			if profile == nil {
				return errors.WithStack(domainerrors.ErrUnauthorized)
			}

			if profile.Role != entity.RoleAdmin && !allowed.Contains(profile.Role) {
				if allowed.ContainsAny(entity.RoleSeller, entity.RoleDealer) {
					return errors.WithStack(domainerrors.ErrSellerRoleRequired)
				}

				return errors.WithStack(domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, error) {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		token, ok := strings.CutPrefix(header, bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			return "", errors.WithStack(domainerrors.ErrInvalidToken.WithDetails("authorization header must be a Bearer token"))
		}

		return strings.TrimSpace(token), nil
	}

	if !websocket.IsWebSocketUpgrade(c.Request()) {
		return "", nil
	}

	return c.QueryParam(accessTokenParam), nil
}
