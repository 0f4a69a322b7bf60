package handler

import (
	"net/http"
	"testing"

	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	mockUsecase "dcars/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardHandler_Seller(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(dashboardUC)

	seller := testProfile(entity.RoleSeller)
	e := newTestEcho()
	e.GET("/me/dashboard", h.Seller, asUser(seller))

	dashboardUC.EXPECT().Seller(mock.Anything, seller.ID).Return(&entity.SellerDashboard{
		ListingsByStatus: []entity.StatusCount{},
		TotalViews:       42,
		UnreadMessages:   3,
		MonthlyRevenue:   []entity.MonthlyAmount{},
	}, nil)

	rec := doRequest(e, http.MethodGet, "/me/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var dashboard entity.SellerDashboard
	decodeData(t, rec, &dashboard)
	assert.Equal(t, int64(42), dashboard.TotalViews)
	assert.Equal(t, int64(3), dashboard.UnreadMessages)
}

func TestDashboardHandler_Admin_HidesInternalError(t *testing.T) {
	dashboardUC := mockUsecase.NewMockDashboardUsecase(t)
	h := NewDashboardHandler(dashboardUC)

	e := newTestEcho()
	e.GET("/admin/dashboard", h.Admin, asUser(testProfile(entity.RoleAdmin)))

	dashboardUC.EXPECT().Admin(mock.Anything).Return(nil, errors.New("pq: relation missing"))

	rec := doRequest(e, http.MethodGet, "/admin/dashboard", "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation missing")
}
