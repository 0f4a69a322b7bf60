// Package handler contains the HTTP handlers of the marketplace API.
package handler

import (
	"io"
	"strconv"

	deliverycontext "dcars/internal/delivery/context"
	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const uploadField = "file"

// currentProfile returns the caller set by the auth middleware.
func currentProfile(c echo.Context) (*entity.Profile, error) {
	profile := deliverycontext.GetProfile(c)
	if profile == nil {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return profile, nil
}

func currentActor(c echo.Context) (usecase.Actor, error) {
	profile, err := currentProfile(c)
	if err != nil {
		return usecase.Actor{}, err
	}

	return usecase.Actor{UserID: profile.ID, Role: profile.Role}, nil
}

// optionalActor returns nil on anonymous requests.
func optionalActor(c echo.Context) *usecase.Actor {
	profile := deliverycontext.GetProfile(c)
	if profile == nil {
		return nil
	}

	return &usecase.Actor{UserID: profile.ID, Role: profile.Role}
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("invalid " + name))
	}

	return id, nil
}

// bindAndValidate decodes the body into dst and checks its validate tags.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("malformed request body"))
	}

	return errors.WithStack(c.Validate(dst))
}

func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer"))
	}

	return v, nil
}

// optionalQueryInt returns nil when the parameter is absent.
func optionalQueryInt(c echo.Context, name string) (*int, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	v, err := queryInt(c, name)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func optionalQueryInt64(c echo.Context, name string) (*int64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be an integer"))
	}

	return &v, nil
}

func optionalQueryFloat(c echo.Context, name string) (*float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a number"))
	}

	return &v, nil
}

func optionalQueryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(name + " must be a boolean"))
	}

	return &v, nil
}

// pageRequest reads ?page= and ?page_size=. Use cases clamp the values.
func pageRequest(c echo.Context) (entity.PageRequest, error) {
	page, err := queryInt(c, "page")
	if err != nil {
		return entity.PageRequest{}, err
	}

	size, err := queryInt(c, "page_size")
	if err != nil {
		return entity.PageRequest{}, err
	}

	return entity.PageRequest{Page: page, PageSize: size}, nil
}

// formUpload opens the multipart file field. The caller closes the returned body.
func formUpload(c echo.Context) (*usecase.FileUpload, io.Closer, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return nil, nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("multipart field \"file\" is required"))
	}

	file, err := header.Open()
	if err != nil {
		return nil, nil, errors.Wrap(err, "open upload")
	}

	return &usecase.FileUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	}, file, nil
}
