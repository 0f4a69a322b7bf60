package usecase

import (
	"context"

	"dcars/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardUsecase builds seller and admin dashboards.
type DashboardUsecase interface {
	Seller(ctx context.Context, sellerID uuid.UUID) (*entity.SellerDashboard, error)
	Admin(ctx context.Context) (*entity.AdminDashboard, error)
}
