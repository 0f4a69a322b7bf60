package handler

import (
	"net/http"
	"testing"

	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	mockUsecase "dcars/internal/mocks/usecase"
	"dcars/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_SignUp(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC, discardLogger())

	e := newTestEcho()
	e.POST("/signup", h.SignUp)

	profile := testProfile(entity.RoleDealer)
	authUC.EXPECT().
		SignUp(mock.Anything, &usecase.SignUpInput{
			Email:      "dealer@example.com",
			Password:   "supersecret",
			FullName:   "Ada Motors",
			Role:       entity.RoleDealer,
			DealerName: "Ada Motors Ltd",
		}).
		Return(profile, nil, nil)

	rec := doRequest(e, http.MethodPost, "/signup",
		`{"email":"dealer@example.com","password":"supersecret","full_name":"Ada Motors","role":"dealer","dealer_name":"Ada Motors Ltd"}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var body signUpResponse
	decodeData(t, rec, &body)
	assert.Equal(t, profile.ID, body.Profile.ID)
	assert.Nil(t, body.Session)
}

func TestAuthHandler_SignUp_ValidationDetails(t *testing.T) {
	h := NewAuthHandler(mockUsecase.NewMockAuthUsecase(t), discardLogger())

	e := newTestEcho()
	e.POST("/signup", h.SignUp)

	rec := doRequest(e, http.MethodPost, "/signup", `{"email":"not-an-email","password":"short","full_name":"X","role":"dealer"}`)

	requireErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode())
	details := string(decodeEnvelope(t, rec).Error.Details)
	assert.Contains(t, details, `"field":"email"`)
	assert.Contains(t, details, `"field":"password"`)
	assert.Contains(t, details, `"field":"dealer_name"`)
}

func TestAuthHandler_SignUp_MalformedBody(t *testing.T) {
	h := NewAuthHandler(mockUsecase.NewMockAuthUsecase(t), discardLogger())

	e := newTestEcho()
	e.POST("/signup", h.SignUp)

	rec := doRequest(e, http.MethodPost, "/signup", `{"email":`)

	requireErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode())
}

func TestAuthHandler_SignIn_InvalidCredentials(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC, discardLogger())

	e := newTestEcho()
	e.POST("/signin", h.SignIn)

	authUC.EXPECT().
		SignIn(mock.Anything, "a@b.co", "wrong").
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	rec := doRequest(e, http.MethodPost, "/signin", `{"email":"a@b.co","password":"wrong"}`)

	requireErrorCode(t, rec, http.StatusUnauthorized, domainerrors.ErrInvalidCredentials.ErrorCode())
}

func TestAuthHandler_Refresh(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC, discardLogger())

	e := newTestEcho()
	e.POST("/refresh", h.Refresh)

	authUC.EXPECT().
		Refresh(mock.Anything, "refresh-1").
		Return(&entity.AuthSession{AccessToken: "access-2", RefreshToken: "refresh-2"}, nil)

	rec := doRequest(e, http.MethodPost, "/refresh", `{"refresh_token":"refresh-1"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var session entity.AuthSession
	decodeData(t, rec, &session)
	assert.Equal(t, "access-2", session.AccessToken)
}

func TestAuthHandler_SignOut_UsesCallerToken(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(authUC, discardLogger())

	e := newTestEcho()
	e.POST("/signout", h.SignOut, asUser(testProfile(entity.RoleBuyer)))

	authUC.EXPECT().SignOut(mock.Anything, "test-token").Return(nil)

	rec := doRequest(e, http.MethodPost, "/signout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
