package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dcars/config"
	apimiddleware "dcars/internal/delivery/api/middleware"
	"dcars/internal/delivery/api/router"
	"dcars/internal/delivery/api/router/handler"
	"dcars/internal/domain/entity"
	mockUsecase "dcars/internal/mocks/usecase"
	"dcars/internal/infra/realtime"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverMocks struct {
	auth    *mockUsecase.MockAuthUsecase
	vehicle *mockUsecase.MockVehicleUsecase
}

func newTestServer(t *testing.T, cfg *config.Config) (*echo.Echo, serverMocks) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	m := serverMocks{
		auth:    mockUsecase.NewMockAuthUsecase(t),
		vehicle: mockUsecase.NewMockVehicleUsecase(t),
	}

	e := NewEcho(ServerParams{
		Cfg:             cfg,
		Logger:          logger,
		ErrorMiddleware: apimiddleware.NewErrorMiddleware(logger),
		RouterParams: router.RouterParams{
			AuthHandler:         handler.NewAuthHandler(m.auth, logger),
			ProfileHandler:      handler.NewProfileHandler(mockUsecase.NewMockProfileUsecase(t)),
			VehicleHandler:      handler.NewVehicleHandler(m.vehicle),
			FavoriteHandler:     handler.NewFavoriteHandler(mockUsecase.NewMockFavoriteUsecase(t)),
			MessageHandler:      handler.NewMessageHandler(mockUsecase.NewMockMessagingUsecase(t)),
			RealtimeHandler:     handler.NewRealtimeHandler(realtime.NewHub(logger, nil)),
			TransactionHandler:  handler.NewTransactionHandler(mockUsecase.NewMockTransactionUsecase(t)),
			SubscriptionHandler: handler.NewSubscriptionHandler(mockUsecase.NewMockSubscriptionUsecase(t)),
			NotificationHandler: handler.NewNotificationHandler(mockUsecase.NewMockNotificationUsecase(t)),
			DeviceHandler: handler.NewDeviceHandler(handler.DeviceHandlerParams{
				DeviceUC: mockUsecase.NewMockDeviceUsecase(t),
				Logger:   logger,
			}),
			DashboardHandler: handler.NewDashboardHandler(mockUsecase.NewMockDashboardUsecase(t)),
			AdminHandler:     handler.NewAdminHandler(mockUsecase.NewMockAdminUsecase(t)),
			WebhookHandler:   handler.NewWebhookHandler(mockUsecase.NewMockPaymentWebhookUsecase(t), logger),
			TestHandler:      handler.NewTestHandler(),
			AuthMiddleware:   apimiddleware.NewAuthMiddleware(m.auth),
			Config:           cfg,
		},
	})

	return e, m
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.HTTP.AllowOrigins = []string{"https://dcars.example"}

	return cfg
}

func serve(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader("{}"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body.Error.Code
}

func TestNewEcho_HealthCarriesRequestID(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	rec := serve(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestNewEcho_PublicCatalogueNeedsNoToken(t *testing.T) {
	e, m := newTestServer(t, testConfig())

	m.vehicle.EXPECT().Makes(mock.Anything).Return([]entity.MakeCount{}, nil)

	rec := serve(e, http.MethodGet, "/api/v1/vehicles/makes", "")

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestNewEcho_RoleGates(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		role       entity.Role
		wantStatus int
		wantCode   string
	}{
		{name: "anonymous cannot list", method: http.MethodPost, target: "/api/v1/vehicles", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "buyer cannot list", method: http.MethodPost, target: "/api/v1/vehicles", role: entity.RoleBuyer, wantStatus: http.StatusForbidden, wantCode: "SELLER_ROLE_REQUIRED"},
		{name: "buyer has no seller dashboard", method: http.MethodGet, target: "/api/v1/me/dashboard", role: entity.RoleBuyer, wantStatus: http.StatusForbidden, wantCode: "SELLER_ROLE_REQUIRED"},
		{name: "seller is not admin", method: http.MethodGet, target: "/api/v1/admin/users", role: entity.RoleSeller, wantStatus: http.StatusForbidden, wantCode: "FORBIDDEN"},
		{name: "anonymous cannot open realtime", method: http.MethodGet, target: "/api/v1/realtime", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newTestServer(t, testConfig())

			token := ""
			if tt.role != "" {
				token = "tok-" + string(tt.role)
				m.auth.EXPECT().
					Authenticate(mock.Anything, token).
					Return(&entity.Profile{ID: uuid.New(), Role: tt.role}, nil)
			}

			rec := serve(e, tt.method, tt.target, token)

			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestNewEcho_TestRoutesOnlyWhenEnabled(t *testing.T) {
	e, _ := newTestServer(t, testConfig())
	assert.Equal(t, http.StatusNotFound, serve(e, http.MethodGet, "/test/public", "").Code)

	cfg := testConfig()
	cfg.TestRoutes = &config.TestRoutesConfig{Enabled: true}
	e, _ = newTestServer(t, cfg)
	assert.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/test/public", "").Code)
}

func TestNewEcho_CORSAllowsConfiguredOrigin(t *testing.T) {
	e, _ := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/vehicles", nil)
	req.Header.Set(echo.HeaderOrigin, "https://dcars.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "https://dcars.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
}
