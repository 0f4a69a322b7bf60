package handler

import (
	"context"
	"net/http"
	"strings"

	"dcars/internal/delivery/api/response"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// VehicleHandler serves listings, their images and search.
type VehicleHandler struct {
	vehicleUC usecase.VehicleUsecase
}

// NewVehicleHandler is the constructor for VehicleHandler.
func NewVehicleHandler(vehicleUC usecase.VehicleUsecase) *VehicleHandler {
	return &VehicleHandler{vehicleUC: vehicleUC}
}

type reorderImagesRequest struct {
	ImageIDs []uuid.UUID `json:"image_ids" validate:"required,min=1,dive,required"`
}

// Search lists active vehicles matching the query string filter.
func (h *VehicleHandler) Search(c echo.Context) error {
	filter, err := searchFilter(c)
	if err != nil {
		return err
	}

	page, err := h.vehicleUC.Search(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, page)
}

// searchFilter maps query parameters onto a VehicleFilter.
func searchFilter(c echo.Context) (entity.VehicleFilter, error) {
	filter := entity.VehicleFilter{
		Query:        strings.TrimSpace(c.QueryParam("q")),
		Make:         c.QueryParam("make"),
		Model:        c.QueryParam("model"),
		FuelType:     c.QueryParam("fuel_type"),
		Transmission: c.QueryParam("transmission"),
		BodyType:     c.QueryParam("body_type"),
		Condition:    c.QueryParam("condition"),
		City:         c.QueryParam("city"),
		Sort:         entity.VehicleSort(c.QueryParam("sort")),
	}

	var err error
	if filter.Page, err = pageRequest(c); err != nil {
		return filter, err
	}
	if filter.MinPrice, err = optionalQueryInt64(c, "min_price"); err != nil {
		return filter, err
	}
	if filter.MaxPrice, err = optionalQueryInt64(c, "max_price"); err != nil {
		return filter, err
	}
	if filter.MinYear, err = optionalQueryInt(c, "min_year"); err != nil {
		return filter, err
	}
	if filter.MaxYear, err = optionalQueryInt(c, "max_year"); err != nil {
		return filter, err
	}
	if filter.MaxMileage, err = optionalQueryInt(c, "max_mileage"); err != nil {
		return filter, err
	}

	if raw := c.QueryParam("seller_id"); raw != "" {
		sellerID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return filter, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid seller_id"))
		}
		filter.SellerID = &sellerID
	}

	near, err := geoFilter(c)
	if err != nil {
		return filter, err
	}
	filter.Near = near

	return filter, nil
}

// geoFilter reads lat, lng and radius_km. Both coordinates or neither are required.
func geoFilter(c echo.Context) (*entity.GeoFilter, error) {
	lat, err := optionalQueryFloat(c, "lat")
	if err != nil {
		return nil, err
	}
	lng, err := optionalQueryFloat(c, "lng")
	if err != nil {
		return nil, err
	}
	radius, err := optionalQueryFloat(c, "radius_km")
	if err != nil {
		return nil, err
	}

	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("lat and lng must be given together"))
	}
	if *lat < -90 || *lat > 90 || *lng < -180 || *lng > 180 {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("coordinates out of range"))
	}

	near := &entity.GeoFilter{Latitude: *lat, Longitude: *lng}
	if radius != nil {
		near.RadiusKm = *radius
	}

	return near, nil
}

// Makes lists makes with active listing counts.
func (h *VehicleHandler) Makes(c echo.Context) error {
	makes, err := h.vehicleUC.Makes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, makes)
}

// Get returns one listing. Drafts and closed listings need the owner or an admin.
func (h *VehicleHandler) Get(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	vehicle, err := h.vehicleUC.Get(c.Request().Context(), optionalActor(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vehicle)
}

// ShareQR returns a PNG QR code for an active listing.
func (h *VehicleHandler) ShareQR(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.vehicleUC.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListMine lists the caller's listings, optionally filtered by ?status=.
func (h *VehicleHandler) ListMine(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	page, err := pageRequest(c)
	if err != nil {
		return err
	}

	result, err := h.vehicleUC.ListMine(c.Request().Context(), actor, entity.VehicleStatus(c.QueryParam("status")), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, result)
}

// Create adds a draft listing.
func (h *VehicleHandler) Create(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	var input usecase.VehicleInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	vehicle, err := h.vehicleUC.Create(c.Request().Context(), actor, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, vehicle)
}

// Update applies a partial listing update.
func (h *VehicleHandler) Update(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.VehicleUpdateInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	vehicle, err := h.vehicleUC.Update(c.Request().Context(), actor, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vehicle)
}

// Delete soft deletes a listing.
func (h *VehicleHandler) Delete(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.vehicleUC.Delete(c.Request().Context(), actor, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// Publish makes a draft or expired listing active.
func (h *VehicleHandler) Publish(c echo.Context) error {
	return h.transition(c, h.vehicleUC.Publish)
}

// MarkSold closes a listing as sold.
func (h *VehicleHandler) MarkSold(c echo.Context) error {
	return h.transition(c, h.vehicleUC.MarkSold)
}

// Archive hides a listing.
func (h *VehicleHandler) Archive(c echo.Context) error {
	return h.transition(c, h.vehicleUC.Archive)
}

type transitionFunc func(ctx context.Context, actor usecase.Actor, id uuid.UUID) (*entity.Vehicle, error)

func (h *VehicleHandler) transition(c echo.Context, fn transitionFunc) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	vehicle, err := fn(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vehicle)
}

// UploadImage appends an image from the "file" multipart field.
func (h *VehicleHandler) UploadImage(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	upload, closer, err := formUpload(c)
	if err != nil {
		return err
	}
	defer closer.Close()

	image, err := h.vehicleUC.UploadImage(c.Request().Context(), actor, id, upload)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, image)
}

// DeleteImage removes one image of a listing.
func (h *VehicleHandler) DeleteImage(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	imageID, err := pathUUID(c, "imageId")
	if err != nil {
		return err
	}

	if err := h.vehicleUC.DeleteImage(c.Request().Context(), actor, id, imageID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ReorderImages sets the display order of every image of a listing.
func (h *VehicleHandler) ReorderImages(c echo.Context) error {
	actor, err := currentActor(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req reorderImagesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	vehicle, err := h.vehicleUC.ReorderImages(c.Request().Context(), actor, id, req.ImageIDs)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, vehicle)
}
