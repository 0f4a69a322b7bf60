package handler

import (
	"net/http"
	"testing"

	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	mockUsecase "dcars/internal/mocks/usecase"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileHandler_UpdateMe_PartialUpdate(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(profileUC)

	user := testProfile(entity.RoleBuyer)
	e := newTestEcho()
	e.PATCH("/me", h.UpdateMe, asUser(user))

	profileUC.EXPECT().
		UpdateMe(mock.Anything, user.ID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.City != nil && *in.City == "Lagos" && in.FullName == nil && in.Phone == nil
		})).
		Return(&entity.Profile{ID: user.ID, City: "Lagos"}, nil)

	rec := doRequest(e, http.MethodPatch, "/me", `{"city":"Lagos"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var profile entity.Profile
	decodeData(t, rec, &profile)
	assert.Equal(t, "Lagos", profile.City)
}

func TestProfileHandler_UpdateMe_RejectsBadAvatarURL(t *testing.T) {
	h := NewProfileHandler(mockUsecase.NewMockProfileUsecase(t))

	e := newTestEcho()
	e.PATCH("/me", h.UpdateMe, asUser(testProfile(entity.RoleBuyer)))

	rec := doRequest(e, http.MethodPatch, "/me", `{"avatar_url":"not a url"}`)

	requireErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode())
}

func TestProfileHandler_BecomeSeller(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(profileUC)

	user := testProfile(entity.RoleBuyer)
	e := newTestEcho()
	e.POST("/me/seller", h.BecomeSeller, asUser(user))

	profileUC.EXPECT().
		BecomeSeller(mock.Anything, user.ID, &usecase.BecomeSellerInput{DealerName: "Prime Autos"}).
		Return(&entity.Profile{ID: user.ID, Role: entity.RoleDealer, DealerName: "Prime Autos"}, nil)

	rec := doRequest(e, http.MethodPost, "/me/seller", `{"dealer_name":"Prime Autos"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var profile entity.Profile
	decodeData(t, rec, &profile)
	assert.Equal(t, entity.RoleDealer, profile.Role)
}

func TestProfileHandler_GetPublic_NotFound(t *testing.T) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)
	h := NewProfileHandler(profileUC)

	e := newTestEcho()
	e.GET("/profiles/:id", h.GetPublic)

	id := uuid.New()
	profileUC.EXPECT().GetPublicProfile(mock.Anything, id).Return(nil, errors.WithStack(domainerrors.ErrProfileNotFound))

	rec := doRequest(e, http.MethodGet, "/profiles/"+id.String(), "")

	requireErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrProfileNotFound.ErrorCode())
}

func TestProfileHandler_GetMe_RequiresCaller(t *testing.T) {
	h := NewProfileHandler(mockUsecase.NewMockProfileUsecase(t))

	e := newTestEcho()
	e.GET("/me", h.GetMe)

	rec := doRequest(e, http.MethodGet, "/me", "")

	requireErrorCode(t, rec, http.StatusUnauthorized, domainerrors.ErrUnauthorized.ErrorCode())
}
