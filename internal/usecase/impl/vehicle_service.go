package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"dcars/config"
	"dcars/internal/domain/entity"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/repository"
	"dcars/internal/domain/service"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultSearchRadiusKm = 50

// listingCountedStatuses are the statuses that count against a seller's listing limit.
var listingCountedStatuses = []entity.VehicleStatus{entity.VehicleStatusDraft, entity.VehicleStatusActive}

// vehicleService implements the VehicleUsecase interface.
type vehicleService struct {
	txManager     repository.TransactionManager
	vehicleRepo   repository.VehicleRepository
	subscriptions usecase.SubscriptionUsecase
	storage       service.ImageStorage
	qrCode        service.QRCodeService
	cfg           *config.Config
	logger        *slog.Logger
	now           func() time.Time
}

// VehicleServiceParams holds dependencies for VehicleService, injected by Fx.
type VehicleServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	VehicleRepo   repository.VehicleRepository
	Subscriptions usecase.SubscriptionUsecase
	Storage       service.ImageStorage
	QRCode        service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewVehicleService is the constructor for vehicleService.
func NewVehicleService(params VehicleServiceParams) usecase.VehicleUsecase {
	return &vehicleService{
		txManager:     params.TxManager,
		vehicleRepo:   params.VehicleRepo,
		subscriptions: params.Subscriptions,
		storage:       params.Storage,
		qrCode:        params.QRCode,
		cfg:           params.Config,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// Create adds a draft listing for a seller within the limits of their plan.
func (srv *vehicleService) Create(ctx context.Context, actor usecase.Actor, input *usecase.VehicleInput) (*entity.Vehicle, error) {
	if !actor.Role.CanSell() {
		return nil, errors.WithStack(domainerrors.ErrSellerRoleRequired)
	}

	if err := srv.validateYear(input.Year); err != nil {
		return nil, err
	}
	if err := validateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, err
	}

	if err := srv.checkListingLimit(ctx, actor); err != nil {
		return nil, err
	}

	vehicle := &entity.Vehicle{
		SellerID:     actor.UserID,
		Title:        strings.TrimSpace(input.Title),
		Make:         strings.TrimSpace(input.Make),
		Model:        strings.TrimSpace(input.Model),
		Year:         input.Year,
		PriceMinor:   input.PriceMinor,
		Currency:     srv.currency(input.Currency),
		MileageKm:    input.MileageKm,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		BodyType:     strings.TrimSpace(input.BodyType),
		Condition:    input.Condition,
		Color:        strings.TrimSpace(input.Color),
		Description:  strings.TrimSpace(input.Description),
		City:         strings.TrimSpace(input.City),
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Status:       entity.VehicleStatusDraft,
		Images:       []entity.VehicleImage{},
	}

	if err := srv.vehicleRepo.CreateVehicle(ctx, vehicle); err != nil {
		return nil, errors.Wrap(err, "failed to create vehicle")
	}

	contextLogger(ctx, srv.logger).Info("Vehicle listing created",
		slog.String("vehicle_id", vehicle.ID.String()),
		slog.String("seller_id", actor.UserID.String()),
	)

	return vehicle, nil
}

// Update applies a partial update to a listing the actor owns.
func (srv *vehicleService) Update(ctx context.Context, actor usecase.Actor, id uuid.UUID, input *usecase.VehicleUpdateInput) (*entity.Vehicle, error) {
	vehicle, err := srv.findOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if vehicle.Status == entity.VehicleStatusSold {
		return nil, errors.Wrap(domainerrors.ErrInvalidVehicleStatus, "sold listings cannot be edited")
	}

	applyVehicleUpdate(vehicle, entity.VehicleUpdate{
		Title:        trimmed(input.Title),
		Make:         trimmed(input.Make),
		Model:        trimmed(input.Model),
		Year:         input.Year,
		PriceMinor:   input.PriceMinor,
		Currency:     input.Currency,
		MileageKm:    input.MileageKm,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		BodyType:     trimmed(input.BodyType),
		Condition:    input.Condition,
		Color:        trimmed(input.Color),
		Description:  trimmed(input.Description),
		City:         trimmed(input.City),
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	})
	vehicle.Currency = srv.currency(vehicle.Currency)

	if input.Year != nil {
		if err := srv.validateYear(vehicle.Year); err != nil {
			return nil, err
		}
	}
	if err := validateCoordinates(vehicle.Latitude, vehicle.Longitude); err != nil {
		return nil, err
	}

	if err := srv.vehicleRepo.UpdateVehicle(ctx, vehicle); err != nil {
		return nil, mapVehicleError(err, "failed to update vehicle")
	}

	return vehicle, nil
}

// Delete soft-deletes a listing the actor owns.
func (srv *vehicleService) Delete(ctx context.Context, actor usecase.Actor, id uuid.UUID) error {
	if _, err := srv.findOwned(ctx, actor, id); err != nil {
		return err
	}

	if err := srv.vehicleRepo.DeleteVehicle(ctx, id); err != nil {
		return mapVehicleError(err, "failed to delete vehicle")
	}

	contextLogger(ctx, srv.logger).Info("Vehicle listing deleted",
		slog.String("vehicle_id", id.String()),
		slog.String("actor_id", actor.UserID.String()),
	)

	return nil
}

// Get returns a listing. Listings that are not active are only visible to
// their owner and admins. Views by anyone but the owner are counted.
func (srv *vehicleService) Get(ctx context.Context, viewer *usecase.Actor, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := srv.findVehicle(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := viewer != nil && viewer.UserID == vehicle.SellerID
	isAdmin := viewer != nil && viewer.IsAdmin()

	if vehicle.Status != entity.VehicleStatusActive && !isOwner && !isAdmin {
		return nil, errors.Wrap(domainerrors.ErrVehicleNotFound, "listing is not public")
	}

	if !isOwner && vehicle.Status == entity.VehicleStatusActive {
		if err := srv.vehicleRepo.IncrementViewCount(ctx, id); err != nil {
			contextLogger(ctx, srv.logger).Warn("Failed to count listing view",
				slog.String("vehicle_id", id.String()),
				slog.Any("error", err),
			)
		} else {
			vehicle.ViewCount++
		}
	}

	return vehicle, nil
}

// Publish makes a draft, expired or archived listing active for expiryDays.
func (srv *vehicleService) Publish(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := srv.findOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !vehicle.Status.CanPublish() {
		return nil, errors.Wrapf(domainerrors.ErrInvalidVehicleStatus, "cannot publish a %s listing", vehicle.Status)
	}

	entitlements, err := srv.subscriptions.Entitlements(ctx, vehicle.SellerID)
	if err != nil {
		return nil, err
	}

	// Drafts already count against the limit; relisting brings a listing back into it.
	if vehicle.Status != entity.VehicleStatusDraft && entitlements.ListingLimit > 0 {
		count, err := srv.vehicleRepo.CountVehiclesBySeller(ctx, vehicle.SellerID, listingCountedStatuses)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count listings")
		}
		if count >= int64(entitlements.ListingLimit) {
			return nil, errors.Wrapf(domainerrors.ErrListingLimitReached, "limit of %d listings", entitlements.ListingLimit)
		}
	}

	now := srv.now().UTC()
	expiresAt := now.AddDate(0, 0, srv.cfg.Listing.ExpiryDays)
	vehicle.Status = entity.VehicleStatusActive
	vehicle.PublishedAt = &now
	vehicle.ExpiresAt = &expiresAt

	if entitlements.Featured && srv.cfg.Listing.FeaturedDays > 0 {
		featuredUntil := now.AddDate(0, 0, srv.cfg.Listing.FeaturedDays)
		vehicle.FeaturedUntil = &featuredUntil
	}

	if err := srv.vehicleRepo.UpdateVehicle(ctx, vehicle); err != nil {
		return nil, mapVehicleError(err, "failed to publish vehicle")
	}

	contextLogger(ctx, srv.logger).Info("Vehicle listing published",
		slog.String("vehicle_id", id.String()),
		slog.Time("expires_at", expiresAt),
	)

	return vehicle, nil
}

// MarkSold closes an active listing as sold.
func (srv *vehicleService) MarkSold(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Vehicle, error) {
	return srv.transition(ctx, actor, id, entity.VehicleStatusSold, entity.VehicleStatusActive)
}

// Archive hides a listing without deleting it.
func (srv *vehicleService) Archive(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Vehicle, error) {
	return srv.transition(ctx, actor, id, entity.VehicleStatusArchived,
		entity.VehicleStatusDraft, entity.VehicleStatusActive, entity.VehicleStatusExpired)
}

func (srv *vehicleService) transition(ctx context.Context, actor usecase.Actor, id uuid.UUID, to entity.VehicleStatus, from ...entity.VehicleStatus) (*entity.Vehicle, error) {
	vehicle, err := srv.findOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	allowed := false
	for _, status := range from {
		if vehicle.Status == status {
			allowed = true

			break
		}
	}
	if !allowed {
		return nil, errors.Wrapf(domainerrors.ErrInvalidVehicleStatus, "cannot move a %s listing to %s", vehicle.Status, to)
	}

	if err := srv.vehicleRepo.UpdateVehicleStatus(ctx, id, to); err != nil {
		return nil, mapVehicleError(err, "failed to update vehicle status")
	}
	vehicle.Status = to

	return vehicle, nil
}

// Search runs a public search over active listings.
func (srv *vehicleService) Search(ctx context.Context, filter entity.VehicleFilter) (entity.Page[*entity.Vehicle], error) {
	filter.Statuses = []entity.VehicleStatus{entity.VehicleStatusActive}

	return srv.search(ctx, filter)
}

// ListMine lists the actor's own listings, optionally by status.
func (srv *vehicleService) ListMine(ctx context.Context, actor usecase.Actor, status entity.VehicleStatus, page entity.PageRequest) (entity.Page[*entity.Vehicle], error) {
	filter := entity.VehicleFilter{
		SellerID: &actor.UserID,
		Sort:     entity.SortNewest,
		Page:     page,
	}

	if status != "" {
		if !status.IsValid() {
			return entity.Page[*entity.Vehicle]{}, errors.Wrapf(domainerrors.ErrInvalidVehicleStatus, "unknown status %q", status)
		}
		filter.Statuses = []entity.VehicleStatus{status}
	}

	return srv.search(ctx, filter)
}

func (srv *vehicleService) search(ctx context.Context, filter entity.VehicleFilter) (entity.Page[*entity.Vehicle], error) {
	filter.Page = clampPage(srv.cfg, filter.Page)

	if filter.Sort == "" || !filter.Sort.IsValid() {
		filter.Sort = entity.SortNewest
	}
	if filter.Near != nil && filter.Near.RadiusKm <= 0 {
		filter.Near.RadiusKm = defaultSearchRadiusKm
	}
	if filter.Sort == entity.SortDistance && filter.Near == nil {
		filter.Sort = entity.SortNewest
	}

	vehicles, total, err := srv.vehicleRepo.SearchVehicles(ctx, filter)
	if err != nil {
		return entity.Page[*entity.Vehicle]{}, errors.Wrap(err, "failed to search vehicles")
	}

	return entity.NewPage(vehicles, total, filter.Page), nil
}

// Makes lists the makes of active listings with their counts.
func (srv *vehicleService) Makes(ctx context.Context) ([]entity.MakeCount, error) {
	makes, err := srv.vehicleRepo.ListMakes(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list makes")
	}

	return makes, nil
}

// UploadImage stores an image and appends it to the listing's gallery.
func (srv *vehicleService) UploadImage(ctx context.Context, actor usecase.Actor, vehicleID uuid.UUID, file *usecase.FileUpload) (*entity.VehicleImage, error) {
	if _, err := srv.findOwned(ctx, actor, vehicleID); err != nil {
		return nil, err
	}

	ext, err := validateImage(file, srv.cfg.Storage.MaxImageBytes)
	if err != nil {
		return nil, err
	}

	count, err := srv.vehicleRepo.CountImages(ctx, vehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count images")
	}
	if count >= int64(srv.cfg.Listing.MaxImages) {
		return nil, errors.Wrapf(domainerrors.ErrImageLimitReached, "limit of %d images", srv.cfg.Listing.MaxImages)
	}

	imageID := uuid.New()
	path := fmt.Sprintf("vehicles/%s/%s%s", vehicleID, imageID, ext)

	url, err := srv.storage.Upload(ctx, path, file.ContentType, file.Body)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrStorageFailed.WithDetails(err.Error()), "failed to upload image")
	}

	image := &entity.VehicleImage{
		ID:          imageID,
		VehicleID:   vehicleID,
		StoragePath: path,
		URL:         url,
		Position:    int(count),
	}
	if err := srv.vehicleRepo.AddImage(ctx, image); err != nil {
		srv.removeObjects(ctx, path)

		return nil, mapVehicleError(err, "failed to save image")
	}

	return image, nil
}

// DeleteImage removes an image from a listing and from storage.
func (srv *vehicleService) DeleteImage(ctx context.Context, actor usecase.Actor, vehicleID, imageID uuid.UUID) error {
	if _, err := srv.findOwned(ctx, actor, vehicleID); err != nil {
		return err
	}

	image, err := srv.vehicleRepo.FindImageByID(ctx, imageID)
	if err != nil {
		return mapVehicleError(err, "failed to find image")
	}
	if image.VehicleID != vehicleID {
		return errors.Wrap(domainerrors.ErrImageNotFound, "image belongs to another listing")
	}

	if err := srv.vehicleRepo.DeleteImage(ctx, imageID); err != nil {
		return mapVehicleError(err, "failed to delete image")
	}

	srv.removeObjects(ctx, image.StoragePath)

	return nil
}

// ReorderImages sets the gallery order. imageIDs must list every image of the listing once.
func (srv *vehicleService) ReorderImages(ctx context.Context, actor usecase.Actor, vehicleID uuid.UUID, imageIDs []uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := srv.findOwned(ctx, actor, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := sameImageSet(vehicle.Images, imageIDs); err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		return txRepoFactory.NewVehicleRepository().ReorderImages(ctx, vehicleID, imageIDs)
	})
	if err != nil {
		return nil, mapVehicleError(err, "failed to reorder images")
	}

	return srv.findVehicle(ctx, vehicleID)
}

// ShareQR renders a PNG QR code linking to a public listing.
func (srv *vehicleService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	vehicle, err := srv.findVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.Status != entity.VehicleStatusActive {
		return nil, errors.Wrap(domainerrors.ErrVehicleNotFound, "listing is not public")
	}

	png, err := srv.qrCode.GenerateListingQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate listing QR code")
	}

	return png, nil
}

func (srv *vehicleService) checkListingLimit(ctx context.Context, actor usecase.Actor) error {
	if actor.IsAdmin() {
		return nil
	}

	entitlements, err := srv.subscriptions.Entitlements(ctx, actor.UserID)
	if err != nil {
		return err
	}
	if entitlements.ListingLimit <= 0 {
		return nil
	}

	count, err := srv.vehicleRepo.CountVehiclesBySeller(ctx, actor.UserID, listingCountedStatuses)
	if err != nil {
		return errors.Wrap(err, "failed to count listings")
	}
	if count >= int64(entitlements.ListingLimit) {
		return errors.Wrapf(domainerrors.ErrListingLimitReached, "limit of %d listings", entitlements.ListingLimit)
	}

	return nil
}

func (srv *vehicleService) findVehicle(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := srv.vehicleRepo.FindVehicleByID(ctx, id)
	if err != nil {
		return nil, mapVehicleError(err, "failed to find vehicle")
	}

	return vehicle, nil
}

// findOwned loads a listing the actor may manage: its seller or an admin.
func (srv *vehicleService) findOwned(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Vehicle, error) {
	vehicle, err := srv.findVehicle(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle.SellerID != actor.UserID && !actor.IsAdmin() {
		return nil, errors.WithStack(domainerrors.ErrNotVehicleOwner)
	}

	return vehicle, nil
}

func (srv *vehicleService) removeObjects(ctx context.Context, paths ...string) {
	if err := srv.storage.Delete(ctx, paths...); err != nil {
		contextLogger(ctx, srv.logger).Warn("Failed to remove stored images",
			slog.Any("paths", paths),
			slog.Any("error", err),
		)
	}
}

func (srv *vehicleService) validateYear(year int) error {
	if maxYear := srv.now().Year() + 1; year > maxYear {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("year must not be after %d", maxYear)), "invalid year")
	}

	return nil
}

func (srv *vehicleService) currency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return srv.cfg.Payments.Currency
	}

	return code
}

func validateCoordinates(lat, lng *float64) error {
	if (lat == nil) != (lng == nil) {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("latitude and longitude must be given together"), "invalid coordinates")
	}

	return nil
}

func sameImageSet(images []entity.VehicleImage, imageIDs []uuid.UUID) error {
	invalid := domainerrors.ErrValidationFailed.WithDetails("image_ids must list every image of the listing exactly once")
	if len(images) != len(imageIDs) {
		return errors.WithStack(invalid)
	}

	remaining := make(map[uuid.UUID]struct{}, len(images))
	for _, image := range images {
		remaining[image.ID] = struct{}{}
	}
	for _, id := range imageIDs {
		if _, ok := remaining[id]; !ok {
			return errors.WithStack(invalid)
		}
		delete(remaining, id)
	}

	return nil
}

func mapVehicleError(err error, message string) error {
	switch {
	case errors.Is(err, repository.ErrVehicleNotFound):
		return errors.Wrap(domainerrors.ErrVehicleNotFound, message)
	case errors.Is(err, repository.ErrVehicleImageNotFound):
		return errors.Wrap(domainerrors.ErrImageNotFound, message)
	default:
		return errors.Wrap(err, message)
	}
}

func applyVehicleUpdate(vehicle *entity.Vehicle, update entity.VehicleUpdate) {
	if update.Title != nil {
		vehicle.Title = *update.Title
	}
	if update.Make != nil {
		vehicle.Make = *update.Make
	}
	if update.Model != nil {
		vehicle.Model = *update.Model
	}
	if update.Year != nil {
		vehicle.Year = *update.Year
	}
	if update.PriceMinor != nil {
		vehicle.PriceMinor = *update.PriceMinor
	}
	if update.Currency != nil {
		vehicle.Currency = *update.Currency
	}
	if update.MileageKm != nil {
		vehicle.MileageKm = *update.MileageKm
	}
	if update.FuelType != nil {
		vehicle.FuelType = *update.FuelType
	}
	if update.Transmission != nil {
		vehicle.Transmission = *update.Transmission
	}
	if update.BodyType != nil {
		vehicle.BodyType = *update.BodyType
	}
	if update.Condition != nil {
		vehicle.Condition = *update.Condition
	}
	if update.Color != nil {
		vehicle.Color = *update.Color
	}
	if update.Description != nil {
		vehicle.Description = *update.Description
	}
	if update.City != nil {
		vehicle.City = *update.City
	}
	if update.Latitude != nil {
		vehicle.Latitude = update.Latitude
	}
	if update.Longitude != nil {
		vehicle.Longitude = update.Longitude
	}
}
