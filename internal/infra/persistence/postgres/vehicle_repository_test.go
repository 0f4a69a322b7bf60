package postgres

import (
	"context"
	"testing"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleRepository_CreateVehicle_AssignsID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	vehicle := &entity.Vehicle{
		SellerID:   uuid.New(),
		Title:      "2018 Toyota Corolla",
		Make:       "Toyota",
		Model:      "Corolla",
		Year:       2018,
		PriceMinor: 1_250_000,
		Currency:   "USD",
		Status:     entity.VehicleStatusDraft,
	}

	mock.ExpectExec(`INSERT INTO "vehicles"`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateVehicle(context.Background(), vehicle))
	assert.NotEqual(t, uuid.Nil, vehicle.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_FindVehicleByID_PreloadsImages(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE id = \$1 AND "vehicles"."deleted_at" IS NULL`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "status"}).AddRow(id.String(), "Golf", "active"))
	mock.ExpectQuery(`SELECT \* FROM "vehicle_images" WHERE "vehicle_images"."vehicle_id" = \$1 ORDER BY position ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "url", "position"}).
			AddRow(uuid.NewString(), id.String(), "https://cdn/a.jpg", 0).
			AddRow(uuid.NewString(), id.String(), "https://cdn/b.jpg", 1))

	vehicle, err := repo.FindVehicleByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.VehicleStatusActive, vehicle.Status)
	require.Len(t, vehicle.Images, 2)
	assert.Equal(t, "https://cdn/a.jpg", vehicle.Images[0].URL)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_FindVehicleByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "vehicles"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindVehicleByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrVehicleNotFound)
}

func TestVehicleRepository_SearchVehicles_Filters(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)
	minPrice := int64(500_000)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "vehicles" WHERE .*ILIKE.* AND LOWER\(make\) = .* AND price_minor >= .* AND status IN`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE .* ORDER BY price_minor ASC, created_at DESC LIMIT`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "price_minor"}).AddRow(uuid.NewString(), 600_000))
	mock.ExpectQuery(`SELECT \* FROM "vehicle_images"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id"}))

	vehicles, total, err := repo.SearchVehicles(context.Background(), entity.VehicleFilter{
		Query:    "corolla",
		Make:     "Toyota",
		MinPrice: &minPrice,
		Statuses: []entity.VehicleStatus{entity.VehicleStatusActive},
		Sort:     entity.SortPriceAsc,
		Page:     entity.PageRequest{Page: 1, PageSize: 20},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, vehicles, 1)
	assert.EqualValues(t, 600_000, vehicles[0].PriceMinor)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_SearchVehicles_Near(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)
	nearID := uuid.New()
	farID := uuid.New()

	// Both rows sit inside the bounding box; only the first is within 10 km.
	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE .*latitude BETWEEN .* AND longitude BETWEEN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "latitude", "longitude"}).
			AddRow(farID.String(), "far", 52.60, 13.53).
			AddRow(nearID.String(), "near", 52.53, 13.41))
	mock.ExpectQuery(`SELECT \* FROM "vehicle_images" WHERE vehicle_id IN`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "url"}).
			AddRow(uuid.NewString(), nearID.String(), "https://cdn/near.jpg"))

	vehicles, total, err := repo.SearchVehicles(context.Background(), entity.VehicleFilter{
		Statuses: []entity.VehicleStatus{entity.VehicleStatusActive},
		Near:     &entity.GeoFilter{Latitude: 52.52, Longitude: 13.405, RadiusKm: 10},
		Sort:     entity.SortDistance,
		Page:     entity.PageRequest{Page: 1, PageSize: 20},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, vehicles, 1)
	assert.Equal(t, nearID, vehicles[0].ID)
	require.NotNil(t, vehicles[0].DistanceKm)
	assert.InDelta(t, 1.2, *vehicles[0].DistanceKm, 0.3)
	require.Len(t, vehicles[0].Images, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_DeleteVehicle_IsSoft(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectExec(`UPDATE "vehicles" SET "deleted_at"=`).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteVehicle(context.Background(), uuid.New()))

	mock.ExpectExec(`UPDATE "vehicles" SET "deleted_at"=`).WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.DeleteVehicle(context.Background(), uuid.New()), repository.ErrVehicleNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_ExpireListings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "vehicles" WHERE .*expires_at <= `).
		WillReturnRows(sqlmock.NewRows([]string{"id", "seller_id", "status"}).AddRow(id.String(), uuid.NewString(), "active"))
	mock.ExpectExec(`UPDATE "vehicles" SET "status"=.* WHERE .*id IN`).WillReturnResult(sqlmock.NewResult(0, 1))

	expired, err := repo.ExpireListings(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, entity.VehicleStatusExpired, expired[0].Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_ExpireListings_None(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "vehicles"`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	expired, err := repo.ExpireListings(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Empty(t, expired)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleRepository_ReorderImages_UnknownImage(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVehicleRepository(db)

	mock.ExpectExec(`UPDATE "vehicle_images" SET "position"=`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "vehicle_images" SET "position"=`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReorderImages(context.Background(), uuid.New(), []uuid.UUID{uuid.New(), uuid.New()})
	assert.ErrorIs(t, err, repository.ErrVehicleImageNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVehicleOrder(t *testing.T) {
	assert.Contains(t, vehicleOrder(entity.SortNewest), "featured_until")
	assert.Equal(t, vehicleOrder(entity.SortNewest), vehicleOrder(""))
	assert.Equal(t, "created_at ASC", vehicleOrder(entity.SortOldest))
	assert.Equal(t, "year DESC, created_at DESC", vehicleOrder(entity.SortYearDesc))
}
