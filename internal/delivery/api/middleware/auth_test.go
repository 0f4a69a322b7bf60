package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "dcars/internal/delivery/context"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	mockUsecase "dcars/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMiddlewareEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body.Error.Code
}

func whoAmI(c echo.Context) error {
	profile := deliverycontext.GetProfile(c)
	if profile == nil {
		return c.String(http.StatusOK, "anonymous")
	}

	return c.String(http.StatusOK, profile.ID.String()+"|"+deliverycontext.GetAccessToken(c))
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		target     string
		header     string
		upgrade    bool
		token      string
		authErr    error
		wantStatus int
		wantCode   string
	}{
		{name: "bearer header", target: "/", header: "Bearer tok-1", token: "tok-1", wantStatus: http.StatusOK},
		{name: "query token on websocket upgrade", target: "/?access_token=tok-2", upgrade: true, token: "tok-2", wantStatus: http.StatusOK},
		{name: "query token on plain request", target: "/?access_token=tok-2", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "missing token", target: "/", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "wrong scheme", target: "/", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "empty bearer", target: "/", header: "Bearer   ", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{
			name: "rejected token", target: "/", header: "Bearer expired", token: "expired",
			authErr:    errors.WithStack(domainerrors.ErrInvalidToken),
			wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			if tt.token != "" {
				if tt.authErr != nil {
					authUC.EXPECT().Authenticate(mock.Anything, tt.token).Return(nil, tt.authErr)
				} else {
					authUC.EXPECT().Authenticate(mock.Anything, tt.token).Return(&entity.Profile{ID: userID, Role: entity.RoleBuyer}, nil)
				}
			}

			m := NewAuthMiddleware(authUC)
			e := newMiddlewareEcho()
			e.GET("/", whoAmI, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			if tt.upgrade {
				req.Header.Set("Connection", "Upgrade")
				req.Header.Set("Upgrade", "websocket")
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))

				return
			}
			assert.Equal(t, userID.String()+"|"+tt.token, rec.Body.String())
		})
	}
}

func TestAuthMiddleware_OptionalAuthenticate_Anonymous(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockAuthUsecase(t))
	e := newMiddlewareEcho()
	e.GET("/", whoAmI, m.OptionalAuthenticate)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestAuthMiddleware_OptionalAuthenticate_BadTokenStillRejected(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	authUC.EXPECT().Authenticate(mock.Anything, "bad").Return(nil, errors.WithStack(domainerrors.ErrInvalidToken))

	m := NewAuthMiddleware(authUC)
	e := newMiddlewareEcho()
	e.GET("/", whoAmI, m.OptionalAuthenticate)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer bad")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name     string
		role     entity.Role
		allowed  []entity.Role
		wantCode string
	}{
		{name: "seller passes", role: entity.RoleSeller, allowed: []entity.Role{entity.RoleSeller, entity.RoleDealer}},
		{name: "dealer passes", role: entity.RoleDealer, allowed: []entity.Role{entity.RoleSeller, entity.RoleDealer}},
		{name: "admin always passes", role: entity.RoleAdmin, allowed: []entity.Role{entity.RoleSeller}},
		{name: "buyer needs seller role", role: entity.RoleBuyer, allowed: []entity.Role{entity.RoleSeller, entity.RoleDealer}, wantCode: "SELLER_ROLE_REQUIRED"},
		{name: "seller is not admin", role: entity.RoleSeller, allowed: []entity.Role{entity.RoleAdmin}, wantCode: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockUsecase.NewMockAuthUsecase(t))
			profile := &entity.Profile{ID: uuid.New(), Role: tt.role}

			setCaller := func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					deliverycontext.SetProfile(c, profile, "tok")

					return next(c)
				}
			}

			e := newMiddlewareEcho()
			e.GET("/", whoAmI, setCaller, m.RequireRole(tt.allowed...))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if tt.wantCode == "" {
				assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

				return
			}
			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestAuthMiddleware_RequireRole_WithoutCaller(t *testing.T) {
	m := NewAuthMiddleware(mockUsecase.NewMockAuthUsecase(t))
	e := newMiddlewareEcho()
	e.GET("/", whoAmI, m.RequireRole(entity.RoleAdmin))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
