package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardRepository_ListingStatusCounts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)
	sellerID := uuid.New()

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM "vehicles" WHERE seller_id = \$1 .*GROUP BY "status"`).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).AddRow("active", 4).AddRow("sold", 1))

	counts, err := repo.ListingStatusCounts(context.Background(), &sellerID)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "active", counts[0].Status)
	assert.EqualValues(t, 4, counts[0].Count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_CompletedSales_Marketplace(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)

	mock.ExpectQuery(`SELECT COUNT\(\*\) AS count, COALESCE\(SUM\(amount_minor\), 0\) AS amount FROM "transactions" WHERE status = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count", "amount"}).AddRow(3, 4_500_000))

	count, amount, err := repo.CompletedSales(context.Background(), nil)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
	assert.EqualValues(t, 4_500_000, amount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_CompletedAmountsSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)
	at := time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT completed_at AS at, amount_minor AS amount FROM "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"at", "amount"}).AddRow(at, 1000))

	amounts, err := repo.CompletedAmountsSince(context.Background(), nil, at.AddDate(-1, 0, 0))
	require.NoError(t, err)
	require.Len(t, amounts, 1)
	assert.True(t, at.Equal(amounts[0].At))
	assert.EqualValues(t, 1000, amounts[0].Amount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardRepository_ProfilesCreatedSince(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDashboardRepository(db)
	at := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT "created_at" FROM "profiles" WHERE created_at >= \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(at))

	created, err := repo.ProfilesCreatedSince(context.Background(), at.AddDate(0, -1, 0))
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.True(t, at.Equal(created[0]))
	require.NoError(t, mock.ExpectationsWereMet())
}
