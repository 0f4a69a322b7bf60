package postgres

import (
	"context"
	"testing"
	"time"

	"dcars/internal/domain/entity"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestProfileRepository_CreateProfile(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	profile := &entity.Profile{
		ID:       uuid.New(),
		Email:    "ada@example.com",
		FullName: "Ada",
		Role:     entity.RoleBuyer,
	}

	mock.ExpectExec(`INSERT INTO "profiles"`).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateProfile(context.Background(), profile))
	assert.False(t, profile.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_CreateProfile_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectExec(`INSERT INTO "profiles"`).WillReturnError(gorm.ErrDuplicatedKey)

	err := repo.CreateProfile(context.Background(), &entity.Profile{ID: uuid.New(), Email: "ada@example.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateProfile)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_FindProfileByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)
	id := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "email", "full_name", "role", "is_suspended", "created_at", "updated_at"}).
		AddRow(id.String(), "ada@example.com", "Ada", "seller", true, now, now)
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).WillReturnRows(rows)

	profile, err := repo.FindProfileByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, profile.ID)
	assert.Equal(t, entity.RoleSeller, profile.Role)
	assert.True(t, profile.IsSuspended)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_FindProfileByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE id = \$1`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.FindProfileByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_FindProfileByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE LOWER\(email\) = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(uuid.NewString(), "ada@example.com"))

	profile, err := repo.FindProfileByEmail(context.Background(), "  Ada@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", profile.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_SetSuspended_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectExec(`UPDATE "profiles" SET "is_suspended"=`).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetSuspended(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProfileRepository_ListProfiles(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewProfileRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "profiles" WHERE .*ILIKE.* AND role = `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "profiles" WHERE .*ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role"}).AddRow(uuid.NewString(), "s@example.com", "seller"))

	profiles, total, err := repo.ListProfiles(context.Background(), entity.ProfileFilter{
		Query: "50%_off",
		Role:  entity.RoleSeller,
		Page:  entity.PageRequest{Page: 1, PageSize: 10},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, profiles, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off`, escapeLike("50%_off"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "insert")))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "email" (SQLSTATE 23502)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
}
