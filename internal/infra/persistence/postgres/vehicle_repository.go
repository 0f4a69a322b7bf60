package postgres

import (
	"context"
	"sort"
	"strings"
	"time"

	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/errors"
	"dcars/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"gorm.io/gorm"
)

// maxGeoCandidates caps the rows pulled from the bounding box before the exact distance filter.
const maxGeoCandidates = 2000

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

func imagesByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// CreateVehicle persists a new listing.
func (repo *vehicleRepository) CreateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	if vehicle.ID == uuid.Nil {
		vehicle.ID = uuid.New()
	}
	vehicleM := fromVehicleDomain(vehicle)

	if err := repo.db.WithContext(ctx).Omit("Images").Create(vehicleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProfileNotFound.WrapMessage("invalid seller reference")
		}
		if isCheckConstraintViolation(err) || isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid listing information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create vehicle")
	}

	vehicle.CreatedAt = vehicleM.CreatedAt
	vehicle.UpdatedAt = vehicleM.UpdatedAt

	return nil
}

// FindVehicleByID retrieves a listing with its images ordered by position.
func (repo *vehicleRepository) FindVehicleByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	var vehicleM model.VehicleModel

	if err := repo.db.WithContext(ctx).
		Preload("Images", imagesByPosition).
		Where("id = ?", id).
		First(&vehicleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle by ID")
	}

	return toVehicleDomain(&vehicleM), nil
}

// FindVehiclesByIDs retrieves listings without images.
func (repo *vehicleRepository) FindVehiclesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Vehicle, error) {
	if len(ids) == 0 {
		return []*entity.Vehicle{}, nil
	}

	var vehicleModels []*model.VehicleModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find vehicles by IDs")
	}

	return toVehicleDomains(vehicleModels), nil
}

// UpdateVehicle saves all mutable listing columns.
func (repo *vehicleRepository) UpdateVehicle(ctx context.Context, vehicle *entity.Vehicle) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("id = ?", vehicle.ID).
		Updates(map[string]any{
			"title":          vehicle.Title,
			"make":           vehicle.Make,
			"model":          vehicle.Model,
			"year":           vehicle.Year,
			"price_minor":    vehicle.PriceMinor,
			"currency":       vehicle.Currency,
			"mileage_km":     vehicle.MileageKm,
			"fuel_type":      vehicle.FuelType,
			"transmission":   vehicle.Transmission,
			"body_type":      vehicle.BodyType,
			"condition":      vehicle.Condition,
			"color":          vehicle.Color,
			"description":    vehicle.Description,
			"city":           vehicle.City,
			"latitude":       vehicle.Latitude,
			"longitude":      vehicle.Longitude,
			"status":         string(vehicle.Status),
			"featured_until": vehicle.FeaturedUntil,
			"published_at":   vehicle.PublishedAt,
			"expires_at":     vehicle.ExpiresAt,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid listing information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update vehicle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

// UpdateVehicleStatus sets a listing's status.
func (repo *vehicleRepository) UpdateVehicleStatus(ctx context.Context, id uuid.UUID, status entity.VehicleStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("id = ?", id).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update vehicle status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

// DeleteVehicle soft-deletes a listing.
func (repo *vehicleRepository) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VehicleModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vehicle")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleNotFound
	}

	return nil
}

// IncrementViewCount adds one view to a listing without touching updated_at.
func (repo *vehicleRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		return errors.Wrap(err, "failed to increment view count")
	}

	return nil
}

// SearchVehicles returns one page of listings matching the filter and the total match count.
// Geo searches narrow by an orb bounding box in SQL, then filter and sort by great-circle distance.
func (repo *vehicleRepository) SearchVehicles(ctx context.Context, filter entity.VehicleFilter) ([]*entity.Vehicle, int64, error) {
	query := applyVehicleFilter(repo.db.WithContext(ctx).Model(&model.VehicleModel{}), filter).
		Session(&gorm.Session{})

	if filter.Near != nil {
		return repo.searchNear(ctx, query, filter)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count vehicles")
	}

	var vehicleModels []*model.VehicleModel
	if err := query.
		Preload("Images", imagesByPosition).
		Order(vehicleOrder(filter.Sort)).
		Offset(filter.Page.Offset()).
		Limit(filter.Page.PageSize).
		Find(&vehicleModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search vehicles")
	}

	return toVehicleDomains(vehicleModels), total, nil
}

func (repo *vehicleRepository) searchNear(ctx context.Context, query *gorm.DB, filter entity.VehicleFilter) ([]*entity.Vehicle, int64, error) {
	center := orb.Point{filter.Near.Longitude, filter.Near.Latitude}
	radiusMeters := filter.Near.RadiusKm * 1000
	bound := geo.NewBoundAroundPoint(center, radiusMeters)

	var candidates []*model.VehicleModel
	if err := query.
		Where("latitude BETWEEN ? AND ?", bound.Min.Lat(), bound.Max.Lat()).
		Where("longitude BETWEEN ? AND ?", bound.Min.Lon(), bound.Max.Lon()).
		Order(vehicleOrder(filter.Sort)).
		Limit(maxGeoCandidates).
		Find(&candidates).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search vehicles near point")
	}

	matches := make([]*entity.Vehicle, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Latitude == nil || candidate.Longitude == nil {
			continue
		}
		meters := geo.Distance(center, orb.Point{*candidate.Longitude, *candidate.Latitude})
		if meters > radiusMeters {
			continue
		}
		vehicle := toVehicleDomain(candidate)
		km := meters / 1000
		vehicle.DistanceKm = &km
		matches = append(matches, vehicle)
	}

	if filter.Sort == entity.SortDistance {
		sort.SliceStable(matches, func(i, j int) bool {
			return *matches[i].DistanceKm < *matches[j].DistanceKm
		})
	}

	total := int64(len(matches))
	start := min(filter.Page.Offset(), len(matches))
	end := len(matches)
	if filter.Page.PageSize > 0 {
		end = min(start+filter.Page.PageSize, len(matches))
	}
	page := matches[start:end]

	if err := repo.attachImages(repo.db.WithContext(ctx), page); err != nil {
		return nil, 0, err
	}

	return page, total, nil
}

func (repo *vehicleRepository) attachImages(db *gorm.DB, vehicles []*entity.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(vehicles))
	byID := make(map[uuid.UUID]*entity.Vehicle, len(vehicles))
	for _, vehicle := range vehicles {
		ids = append(ids, vehicle.ID)
		byID[vehicle.ID] = vehicle
	}

	var imageModels []*model.VehicleImageModel
	if err := db.
		Where("vehicle_id IN ?", ids).
		Order("position ASC").
		Find(&imageModels).Error; err != nil {
		return errors.Wrap(err, "failed to load vehicle images")
	}

	for _, imageM := range imageModels {
		if vehicle, ok := byID[imageM.VehicleID]; ok {
			vehicle.Images = append(vehicle.Images, toVehicleImageDomain(imageM))
		}
	}

	return nil
}

func applyVehicleFilter(query *gorm.DB, filter entity.VehicleFilter) *gorm.DB {
	if q := strings.TrimSpace(filter.Query); q != "" {
		like := "%" + escapeLike(q) + "%"
		query = query.Where("(title ILIKE ? OR make ILIKE ? OR model ILIKE ? OR description ILIKE ?)", like, like, like, like)
	}
	if filter.Make != "" {
		query = query.Where("LOWER(make) = ?", strings.ToLower(filter.Make))
	}
	if filter.Model != "" {
		query = query.Where("LOWER(model) = ?", strings.ToLower(filter.Model))
	}
	if filter.MinPrice != nil {
		query = query.Where("price_minor >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price_minor <= ?", *filter.MaxPrice)
	}
	if filter.MinYear != nil {
		query = query.Where("year >= ?", *filter.MinYear)
	}
	if filter.MaxYear != nil {
		query = query.Where("year <= ?", *filter.MaxYear)
	}
	if filter.MaxMileage != nil {
		query = query.Where("mileage_km <= ?", *filter.MaxMileage)
	}
	if filter.FuelType != "" {
		query = query.Where("fuel_type = ?", filter.FuelType)
	}
	if filter.Transmission != "" {
		query = query.Where("transmission = ?", filter.Transmission)
	}
	if filter.BodyType != "" {
		query = query.Where("LOWER(body_type) = ?", strings.ToLower(filter.BodyType))
	}
	if filter.Condition != "" {
		query = query.Where("condition = ?", filter.Condition)
	}
	if filter.City != "" {
		query = query.Where("LOWER(city) = ?", strings.ToLower(filter.City))
	}
	if filter.SellerID != nil {
		query = query.Where("seller_id = ?", *filter.SellerID)
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			statuses = append(statuses, string(status))
		}
		query = query.Where("status IN ?", statuses)
	}

	return query
}

func vehicleOrder(sortBy entity.VehicleSort) string {
	switch sortBy {
	case entity.SortOldest:
		return "created_at ASC"
	case entity.SortPriceAsc:
		return "price_minor ASC, created_at DESC"
	case entity.SortPriceDesc:
		return "price_minor DESC, created_at DESC"
	case entity.SortMileageAsc:
		return "mileage_km ASC, created_at DESC"
	case entity.SortYearDesc:
		return "year DESC, created_at DESC"
	case entity.SortNewest, entity.SortDistance:
		fallthrough
	default:
		return "CASE WHEN featured_until > NOW() THEN 0 ELSE 1 END, COALESCE(published_at, created_at) DESC"
	}
}

// CountVehiclesBySeller counts a seller's listings in the given statuses.
func (repo *vehicleRepository) CountVehiclesBySeller(ctx context.Context, sellerID uuid.UUID, statuses []entity.VehicleStatus) (int64, error) {
	filter := entity.VehicleFilter{SellerID: &sellerID, Statuses: statuses}

	var count int64
	if err := applyVehicleFilter(repo.db.WithContext(ctx).Model(&model.VehicleModel{}), filter).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count seller vehicles")
	}

	return count, nil
}

// ListMakes returns distinct makes of active listings with their counts.
func (repo *vehicleRepository) ListMakes(ctx context.Context) ([]entity.MakeCount, error) {
	var makes []entity.MakeCount

	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Select("make, COUNT(*) AS count").
		Where("status = ?", string(entity.VehicleStatusActive)).
		Group("make").
		Order("count DESC, make ASC").
		Scan(&makes).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list makes")
	}

	return makes, nil
}

// ExpireListings marks active listings whose expiry passed as expired and returns them.
func (repo *vehicleRepository) ExpireListings(ctx context.Context, now time.Time) ([]*entity.Vehicle, error) {
	var vehicleModels []*model.VehicleModel
	if err := repo.db.WithContext(ctx).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at <= ?", string(entity.VehicleStatusActive), now).
		Find(&vehicleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find expired listings")
	}

	if len(vehicleModels) == 0 {
		return []*entity.Vehicle{}, nil
	}

	ids := make([]uuid.UUID, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		ids = append(ids, vehicleM.ID)
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleModel{}).
		Where("id IN ? AND status = ?", ids, string(entity.VehicleStatusActive)).
		Update("status", string(entity.VehicleStatusExpired)).Error; err != nil {
		return nil, errors.Wrap(err, "failed to expire listings")
	}

	vehicles := toVehicleDomains(vehicleModels)
	for _, vehicle := range vehicles {
		vehicle.Status = entity.VehicleStatusExpired
	}

	return vehicles, nil
}

// AddImage persists a listing image.
func (repo *vehicleRepository) AddImage(ctx context.Context, image *entity.VehicleImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	imageM := fromVehicleImageDomain(image)

	if err := repo.db.WithContext(ctx).Create(imageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrVehicleNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add vehicle image")
	}

	image.CreatedAt = imageM.CreatedAt

	return nil
}

// FindImageByID retrieves a listing image.
func (repo *vehicleRepository) FindImageByID(ctx context.Context, id uuid.UUID) (*entity.VehicleImage, error) {
	var imageM model.VehicleImageModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&imageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVehicleImageNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle image")
	}

	image := toVehicleImageDomain(&imageM)

	return &image, nil
}

// CountImages counts a listing's images.
func (repo *vehicleRepository) CountImages(ctx context.Context, vehicleID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VehicleImageModel{}).
		Where("vehicle_id = ?", vehicleID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count vehicle images")
	}

	return count, nil
}

// DeleteImage removes a listing image.
func (repo *vehicleRepository) DeleteImage(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.VehicleImageModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete vehicle image")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVehicleImageNotFound
	}

	return nil
}

// ReorderImages sets image positions to their index in imageIDs.
func (repo *vehicleRepository) ReorderImages(ctx context.Context, vehicleID uuid.UUID, imageIDs []uuid.UUID) error {
	for position, imageID := range imageIDs {
		result := repo.db.WithContext(ctx).
			Model(&model.VehicleImageModel{}).
			Where("id = ? AND vehicle_id = ?", imageID, vehicleID).
			Update("position", position)

		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to reorder vehicle images")
		}

		if result.RowsAffected == 0 {
			return repository.ErrVehicleImageNotFound
		}
	}

	return nil
}

// --- Mapper Functions ---

func toVehicleDomains(vehicleModels []*model.VehicleModel) []*entity.Vehicle {
	vehicles := make([]*entity.Vehicle, 0, len(vehicleModels))
	for _, vehicleM := range vehicleModels {
		vehicles = append(vehicles, toVehicleDomain(vehicleM))
	}

	return vehicles
}

func toVehicleDomain(data *model.VehicleModel) *entity.Vehicle {
	if data == nil {
		return nil
	}

	images := make([]entity.VehicleImage, 0, len(data.Images))
	for i := range data.Images {
		images = append(images, toVehicleImageDomain(&data.Images[i]))
	}

	return &entity.Vehicle{
		ID:            data.ID,
		SellerID:      data.SellerID,
		Title:         data.Title,
		Make:          data.Make,
		Model:         data.Model,
		Year:          data.Year,
		PriceMinor:    data.PriceMinor,
		Currency:      data.Currency,
		MileageKm:     data.MileageKm,
		FuelType:      data.FuelType,
		Transmission:  data.Transmission,
		BodyType:      data.BodyType,
		Condition:     data.Condition,
		Color:         data.Color,
		Description:   data.Description,
		City:          data.City,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Status:        entity.VehicleStatus(data.Status),
		ViewCount:     data.ViewCount,
		FeaturedUntil: data.FeaturedUntil,
		PublishedAt:   data.PublishedAt,
		ExpiresAt:     data.ExpiresAt,
		Images:        images,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromVehicleDomain(data *entity.Vehicle) *model.VehicleModel {
	if data == nil {
		return nil
	}

	return &model.VehicleModel{
		ID:            data.ID,
		SellerID:      data.SellerID,
		Title:         data.Title,
		Make:          data.Make,
		Model:         data.Model,
		Year:          data.Year,
		PriceMinor:    data.PriceMinor,
		Currency:      data.Currency,
		MileageKm:     data.MileageKm,
		FuelType:      data.FuelType,
		Transmission:  data.Transmission,
		BodyType:      data.BodyType,
		Condition:     data.Condition,
		Color:         data.Color,
		Description:   data.Description,
		City:          data.City,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Status:        string(data.Status),
		ViewCount:     data.ViewCount,
		FeaturedUntil: data.FeaturedUntil,
		PublishedAt:   data.PublishedAt,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toVehicleImageDomain(data *model.VehicleImageModel) entity.VehicleImage {
	return entity.VehicleImage{
		ID:          data.ID,
		VehicleID:   data.VehicleID,
		StoragePath: data.StoragePath,
		URL:         data.URL,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt,
	}
}

func fromVehicleImageDomain(data *entity.VehicleImage) *model.VehicleImageModel {
	return &model.VehicleImageModel{
		ID:          data.ID,
		VehicleID:   data.VehicleID,
		StoragePath: data.StoragePath,
		URL:         data.URL,
		Position:    data.Position,
		CreatedAt:   data.CreatedAt,
	}
}
