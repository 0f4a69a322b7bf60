package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	domainerrors "dcars/internal/domain/errors"
	"dcars/internal/domain/entity"
	"dcars/internal/errors"
	mockUsecase "dcars/internal/mocks/usecase"
	"dcars/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVehicleHandler_Search_MapsQuery(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	e := newTestEcho()
	e.GET("/vehicles", h.Search)

	sellerID := uuid.New()
	vehicleUC.EXPECT().
		Search(mock.Anything, mock.MatchedBy(func(f entity.VehicleFilter) bool {
			return f.Query == "golf" &&
				f.Make == "Volkswagen" &&
				f.MinPrice != nil && *f.MinPrice == 100000 &&
				f.MaxYear != nil && *f.MaxYear == 2020 &&
				f.SellerID != nil && *f.SellerID == sellerID &&
				f.Near != nil && f.Near.Latitude == 6.5 && f.Near.Longitude == 3.4 && f.Near.RadiusKm == 25 &&
				f.Sort == entity.SortDistance &&
				f.Page.Page == 2 && f.Page.PageSize == 10
		})).
		Return(entity.NewPage([]*entity.Vehicle{{ID: uuid.New()}}, 11, entity.PageRequest{Page: 2, PageSize: 10}), nil)

	rec := doRequest(e, http.MethodGet,
		"/vehicles?q=+golf+&make=Volkswagen&min_price=100000&max_year=2020&seller_id="+sellerID.String()+
			"&lat=6.5&lng=3.4&radius_km=25&sort=distance&page=2&page_size=10", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var page entity.Page[*entity.Vehicle]
	decodeData(t, rec, &page)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestVehicleHandler_Search_BadQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "non numeric price", query: "min_price=cheap"},
		{name: "lat without lng", query: "lat=6.5"},
		{name: "latitude out of range", query: "lat=91&lng=3"},
		{name: "bad seller id", query: "seller_id=nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewVehicleHandler(mockUsecase.NewMockVehicleUsecase(t))

			e := newTestEcho()
			e.GET("/vehicles", h.Search)

			rec := doRequest(e, http.MethodGet, "/vehicles?"+tt.query, "")

			requireErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode())
		})
	}
}

func TestVehicleHandler_Get_AnonymousViewer(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	e := newTestEcho()
	e.GET("/vehicles/:id", h.Get)

	id := uuid.New()
	vehicleUC.EXPECT().
		Get(mock.Anything, (*usecase.Actor)(nil), id).
		Return(nil, errors.WithStack(domainerrors.ErrVehicleNotFound))

	rec := doRequest(e, http.MethodGet, "/vehicles/"+id.String(), "")

	requireErrorCode(t, rec, http.StatusNotFound, domainerrors.ErrVehicleNotFound.ErrorCode())
}

func TestVehicleHandler_Get_OwnerViewer(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	owner := testProfile(entity.RoleSeller)
	e := newTestEcho()
	e.GET("/vehicles/:id", h.Get, asUser(owner))

	id := uuid.New()
	vehicleUC.EXPECT().
		Get(mock.Anything, &usecase.Actor{UserID: owner.ID, Role: entity.RoleSeller}, id).
		Return(&entity.Vehicle{ID: id, SellerID: owner.ID, Status: entity.VehicleStatusDraft}, nil)

	rec := doRequest(e, http.MethodGet, "/vehicles/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	var vehicle entity.Vehicle
	decodeData(t, rec, &vehicle)
	assert.Equal(t, entity.VehicleStatusDraft, vehicle.Status)
}

func TestVehicleHandler_Get_InvalidID(t *testing.T) {
	h := NewVehicleHandler(mockUsecase.NewMockVehicleUsecase(t))

	e := newTestEcho()
	e.GET("/vehicles/:id", h.Get)

	rec := doRequest(e, http.MethodGet, "/vehicles/123", "")

	requireErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode())
}

func TestVehicleHandler_Create(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	seller := testProfile(entity.RoleSeller)
	e := newTestEcho()
	e.POST("/vehicles", h.Create, asUser(seller))

	vehicleUC.EXPECT().
		Create(mock.Anything, usecase.Actor{UserID: seller.ID, Role: entity.RoleSeller}, mock.MatchedBy(func(in *usecase.VehicleInput) bool {
			return in.Make == "Toyota" && in.PriceMinor == 950000 && in.Currency == "ngn"
		})).
		Return(&entity.Vehicle{ID: uuid.New(), Status: entity.VehicleStatusDraft}, nil)

	rec := doRequest(e, http.MethodPost, "/vehicles", `{
		"title":"Corolla 2015","make":"Toyota","model":"Corolla","year":2015,
		"price_minor":950000,"currency":"ngn","mileage_km":120000,
		"fuel_type":"petrol","transmission":"automatic","condition":"used"}`)

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestVehicleHandler_Create_LimitReached(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	e := newTestEcho()
	e.POST("/vehicles", h.Create, asUser(testProfile(entity.RoleSeller)))

	vehicleUC.EXPECT().
		Create(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrListingLimitReached.WithDetails("limit 3")))

	rec := doRequest(e, http.MethodPost, "/vehicles", `{
		"title":"Corolla","make":"Toyota","model":"Corolla","year":2015,"price_minor":1,
		"fuel_type":"petrol","transmission":"manual","condition":"used"}`)

	// Details are hidden on 403 responses.
	requireErrorCode(t, rec, http.StatusForbidden, domainerrors.ErrListingLimitReached.ErrorCode())
	assert.Empty(t, decodeEnvelope(t, rec).Error.Details)
}

func TestVehicleHandler_Create_RejectsBadCurrency(t *testing.T) {
	h := NewVehicleHandler(mockUsecase.NewMockVehicleUsecase(t))

	e := newTestEcho()
	e.POST("/vehicles", h.Create, asUser(testProfile(entity.RoleSeller)))

	rec := doRequest(e, http.MethodPost, "/vehicles", `{
		"title":"Corolla","make":"Toyota","model":"Corolla","year":2015,"price_minor":1,"currency":"N1",
		"fuel_type":"petrol","transmission":"manual","condition":"used"}`)

	requireErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode())
	assert.Contains(t, string(decodeEnvelope(t, rec).Error.Details), `"field":"currency"`)
}

func TestVehicleHandler_Transitions(t *testing.T) {
	seller := testProfile(entity.RoleDealer)
	actor := usecase.Actor{UserID: seller.ID, Role: entity.RoleDealer}
	id := uuid.New()

	tests := []struct {
		name   string
		path   string
		expect func(uc *mockUsecase.MockVehicleUsecase)
	}{
		{
			name: "publish",
			path: "/publish",
			expect: func(uc *mockUsecase.MockVehicleUsecase) {
				uc.EXPECT().Publish(mock.Anything, actor, id).Return(&entity.Vehicle{ID: id, Status: entity.VehicleStatusActive}, nil)
			},
		},
		{
			name: "sold",
			path: "/sold",
			expect: func(uc *mockUsecase.MockVehicleUsecase) {
				uc.EXPECT().MarkSold(mock.Anything, actor, id).Return(&entity.Vehicle{ID: id, Status: entity.VehicleStatusSold}, nil)
			},
		},
		{
			name: "archive",
			path: "/archive",
			expect: func(uc *mockUsecase.MockVehicleUsecase) {
				uc.EXPECT().Archive(mock.Anything, actor, id).Return(&entity.Vehicle{ID: id, Status: entity.VehicleStatusArchived}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
			tt.expect(vehicleUC)
			h := NewVehicleHandler(vehicleUC)

			e := newTestEcho()
			group := e.Group("/vehicles/:id", asUser(seller))
			group.POST("/publish", h.Publish)
			group.POST("/sold", h.MarkSold)
			group.POST("/archive", h.Archive)

			rec := doRequest(e, http.MethodPost, "/vehicles/"+id.String()+tt.path, "")

			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		})
	}
}

func TestVehicleHandler_Delete(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	seller := testProfile(entity.RoleSeller)
	e := newTestEcho()
	e.DELETE("/vehicles/:id", h.Delete, asUser(seller))

	id := uuid.New()
	vehicleUC.EXPECT().
		Delete(mock.Anything, usecase.Actor{UserID: seller.ID, Role: entity.RoleSeller}, id).
		Return(errors.WithStack(domainerrors.ErrNotVehicleOwner))

	rec := doRequest(e, http.MethodDelete, "/vehicles/"+id.String(), "")

	requireErrorCode(t, rec, http.StatusForbidden, domainerrors.ErrNotVehicleOwner.ErrorCode())
}

func TestVehicleHandler_UploadImage(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	seller := testProfile(entity.RoleSeller)
	e := newTestEcho()
	e.POST("/vehicles/:id/images", h.UploadImage, asUser(seller))

	id := uuid.New()
	vehicleUC.EXPECT().
		UploadImage(mock.Anything, mock.Anything, id, mock.MatchedBy(func(f *usecase.FileUpload) bool {
			return f.Filename == "front.jpg" && f.ContentType == "image/jpeg" && f.Size == 4
		})).
		RunAndReturn(func(_ context.Context, _ usecase.Actor, _ uuid.UUID, f *usecase.FileUpload) (*entity.VehicleImage, error) {
			return &entity.VehicleImage{ID: uuid.New(), VehicleID: id, URL: "https://cdn.example.com/front.jpg"}, nil
		})

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="file"; filename="front.jpg"`)
	partHeader.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write([]byte{0xff, 0xd8, 0xff, 0xe0})
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/vehicles/"+id.String()+"/images", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var image entity.VehicleImage
	decodeData(t, rec, &image)
	assert.Equal(t, "https://cdn.example.com/front.jpg", image.URL)
}

func TestVehicleHandler_UploadImage_MissingFile(t *testing.T) {
	h := NewVehicleHandler(mockUsecase.NewMockVehicleUsecase(t))

	e := newTestEcho()
	e.POST("/vehicles/:id/images", h.UploadImage, asUser(testProfile(entity.RoleSeller)))

	rec := doRequest(e, http.MethodPost, "/vehicles/"+uuid.NewString()+"/images", `{}`)

	requireErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrInvalidImage.ErrorCode())
}

func TestVehicleHandler_ReorderImages(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	e := newTestEcho()
	e.PUT("/vehicles/:id/images/order", h.ReorderImages, asUser(testProfile(entity.RoleSeller)))

	id := uuid.New()
	first, second := uuid.New(), uuid.New()
	vehicleUC.EXPECT().
		ReorderImages(mock.Anything, mock.Anything, id, []uuid.UUID{second, first}).
		Return(&entity.Vehicle{ID: id}, nil)

	rec := doRequest(e, http.MethodPut, "/vehicles/"+id.String()+"/images/order",
		`{"image_ids":["`+second.String()+`","`+first.String()+`"]}`)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestVehicleHandler_ReorderImages_EmptyList(t *testing.T) {
	h := NewVehicleHandler(mockUsecase.NewMockVehicleUsecase(t))

	e := newTestEcho()
	e.PUT("/vehicles/:id/images/order", h.ReorderImages, asUser(testProfile(entity.RoleSeller)))

	rec := doRequest(e, http.MethodPut, "/vehicles/"+uuid.NewString()+"/images/order", `{"image_ids":[]}`)

	requireErrorCode(t, rec, http.StatusBadRequest, domainerrors.ErrValidationFailed.ErrorCode())
}

func TestVehicleHandler_ShareQR(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	e := newTestEcho()
	e.GET("/vehicles/:id/qr", h.ShareQR)

	id := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\n")
	vehicleUC.EXPECT().ShareQR(mock.Anything, id).Return(png, nil)

	rec := doRequest(e, http.MethodGet, "/vehicles/"+id.String()+"/qr", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestVehicleHandler_ListMine_PassesStatus(t *testing.T) {
	vehicleUC := mockUsecase.NewMockVehicleUsecase(t)
	h := NewVehicleHandler(vehicleUC)

	seller := testProfile(entity.RoleSeller)
	e := newTestEcho()
	e.GET("/me/vehicles", h.ListMine, asUser(seller))

	vehicleUC.EXPECT().
		ListMine(mock.Anything, usecase.Actor{UserID: seller.ID, Role: entity.RoleSeller}, entity.VehicleStatusSold, entity.PageRequest{Page: 1, PageSize: 5}).
		Return(entity.NewPage[*entity.Vehicle](nil, 0, entity.PageRequest{Page: 1, PageSize: 5}), nil)

	rec := doRequest(e, http.MethodGet, "/me/vehicles?status=sold&page=1&page_size=5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}
