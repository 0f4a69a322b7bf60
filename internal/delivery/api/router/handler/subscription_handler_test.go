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

func TestSubscriptionHandler_ListPlans(t *testing.T) {
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(subscriptionUC)

	e := newTestEcho()
	e.GET("/plans", h.ListPlans)

	subscriptionUC.EXPECT().ListPlans(mock.Anything).Return([]entity.Plan{
		{Code: "basic", Name: "Basic", PriceMinor: 500000, Currency: "NGN", ListingLimit: 10, PeriodDays: 30},
		{Code: "pro", Name: "Pro", PriceMinor: 1500000, Currency: "NGN", PeriodDays: 30, Featured: true},
	})

	rec := doRequest(e, http.MethodGet, "/plans", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var plans []entity.Plan
	decodeData(t, rec, &plans)
	require.Len(t, plans, 2)
	assert.Equal(t, "basic", plans[0].Code)
	assert.True(t, plans[1].Featured)
}

func TestSubscriptionHandler_Current_NotFound(t *testing.T) {
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(subscriptionUC)

	seller := testProfile(entity.RoleSeller)
	e := newTestEcho()
	e.GET("/subscriptions/current", h.Current, asUser(seller))

	subscriptionUC.EXPECT().GetCurrent(mock.Anything, seller.ID).Return(nil, errors.WithStack(domainerrors.ErrSubscriptionNotFound))

	rec := doRequest(e, http.MethodGet, "/subscriptions/current", "")

	requireErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrSubscriptionNotFound.ErrorCode())
}

func TestSubscriptionHandler_Cancel(t *testing.T) {
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(subscriptionUC)

	seller := testProfile(entity.RoleSeller)
	e := newTestEcho()
	e.POST("/subscriptions/cancel", h.Cancel, asUser(seller))

	subscriptionUC.EXPECT().Cancel(mock.Anything, seller.ID).Return(&entity.Subscription{
		UserID:            seller.ID,
		PlanCode:          "pro",
		Status:            entity.SubscriptionStatusActive,
		CancelAtPeriodEnd: true,
	}, nil)

	rec := doRequest(e, http.MethodPost, "/subscriptions/cancel", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var sub entity.Subscription
	decodeData(t, rec, &sub)
	assert.True(t, sub.CancelAtPeriodEnd)
	assert.Equal(t, entity.SubscriptionStatusActive, sub.Status)
}

func TestSubscriptionHandler_Entitlements(t *testing.T) {
	subscriptionUC := mockUsecase.NewMockSubscriptionUsecase(t)
	h := NewSubscriptionHandler(subscriptionUC)

	seller := testProfile(entity.RoleSeller)
	e := newTestEcho()
	e.GET("/subscriptions/entitlements", h.Entitlements, asUser(seller))

	subscriptionUC.EXPECT().Entitlements(mock.Anything, seller.ID).Return(&usecase.Entitlements{ListingLimit: 3}, nil)

	rec := doRequest(e, http.MethodGet, "/subscriptions/entitlements", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var ent usecase.Entitlements
	decodeData(t, rec, &ent)
	assert.Equal(t, 3, ent.ListingLimit)
	assert.Empty(t, ent.PlanCode)
}
