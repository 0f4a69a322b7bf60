package postgres

import (
	"context"
	"strings"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{
		db: db,
	}
}

// CreateProfile persists a new profile. The ID must already be set to the auth user's ID.
func (repo *profileRepository) CreateProfile(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateProfile
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindProfileByID retrieves a profile by its ID.
func (repo *profileRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by ID")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfileByEmail retrieves a profile by email, case-insensitively.
func (repo *profileRepository) FindProfileByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	var profileM model.ProfileModel

	if err := repo.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by email")
	}

	return toProfileDomain(&profileM), nil
}

// FindProfilesByIDs retrieves the profiles that exist among ids.
func (repo *profileRepository) FindProfilesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Profile, error) {
	if len(ids) == 0 {
		return []*entity.Profile{}, nil
	}

	var profileModels []*model.ProfileModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles by IDs")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, nil
}

// UpdateProfile saves editable profile fields and role.
func (repo *profileRepository) UpdateProfile(ctx context.Context, profile *entity.Profile) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", profile.ID).
		Updates(map[string]any{
			"full_name":   profile.FullName,
			"phone":       profile.Phone,
			"avatar_url":  profile.AvatarURL,
			"bio":         profile.Bio,
			"city":        profile.City,
			"role":        profile.Role.String(),
			"dealer_name": profile.DealerName,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// UpdateRole sets a profile's role.
func (repo *profileRepository) UpdateRole(ctx context.Context, id uuid.UUID, role entity.Role) error {
	return repo.updateColumn(ctx, id, "role", role.String())
}

// SetSuspended flags or unflags a profile as suspended.
func (repo *profileRepository) SetSuspended(ctx context.Context, id uuid.UUID, suspended bool) error {
	return repo.updateColumn(ctx, id, "is_suspended", suspended)
}

func (repo *profileRepository) updateColumn(ctx context.Context, id uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("id = ?", id).
		Update(column, value)

	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to update profile %s", column)
	}

	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// ListProfiles returns one page of profiles matching the filter and the total match count.
func (repo *profileRepository) ListProfiles(ctx context.Context, filter entity.ProfileFilter) ([]*entity.Profile, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProfileModel{})

	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + escapeLike(q) + "%"
		query = query.Where("(email ILIKE ? OR full_name ILIKE ? OR dealer_name ILIKE ?)", like, like, like)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role.String())
	}
	if filter.Suspended != nil {
		query = query.Where("is_suspended = ?", *filter.Suspended)
	}
	query = query.Session(&gorm.Session{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count profiles")
	}

	var profileModels []*model.ProfileModel
	if err := query.
		Order("created_at DESC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.PageSize).
		Find(&profileModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, total, nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:          data.ID,
		Email:       data.Email,
		FullName:    data.FullName,
		Phone:       data.Phone,
		AvatarURL:   data.AvatarURL,
		Bio:         data.Bio,
		City:        data.City,
		Role:        entity.Role(data.Role),
		DealerName:  data.DealerName,
		IsVerified:  data.IsVerified,
		IsSuspended: data.IsSuspended,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.Profile) *model.ProfileModel {
	if data == nil {
		return nil
	}

	return &model.ProfileModel{
		ID:          data.ID,
		Email:       data.Email,
		FullName:    data.FullName,
		Phone:       data.Phone,
		AvatarURL:   data.AvatarURL,
		Bio:         data.Bio,
		City:        data.City,
		Role:        data.Role.String(),
		DealerName:  data.DealerName,
		IsVerified:  data.IsVerified,
		IsSuspended: data.IsSuspended,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// escapeLike escapes LIKE wildcards in user input.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
