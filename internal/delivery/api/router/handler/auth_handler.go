package handler

import (
	"log/slog"

	"dcars/internal/delivery/api/response"
	deliverycontext "dcars/internal/delivery/context"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler forwards credentials to the identity provider.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{authUC: authUC, logger: logger}
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type signUpResponse struct {
	Profile *entity.Profile `json:"profile"`
	// Session is nil while the email address awaits confirmation.
	Session *entity.AuthSession `json:"session"`
}

// SignUp registers a user and creates the profile.
func (h *AuthHandler) SignUp(c echo.Context) error {
	var input usecase.SignUpInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	profile, session, err := h.authUC.SignUp(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, signUpResponse{Profile: profile, Session: session})
}

// SignIn exchanges credentials for a session.
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.authUC.SignIn(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, session)
}

// Refresh rotates the session.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.authUC.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, session)
}

// SignOut revokes the caller's session.
func (h *AuthHandler) SignOut(c echo.Context) error {
	if err := h.authUC.SignOut(c.Request().Context(), deliverycontext.GetAccessToken(c)); err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]string{"message": "Signed out"})
}
