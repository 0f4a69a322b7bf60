package handler

import (
	"dcars/internal/delivery/api/response"
	deliverycontext "dcars/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// TestHandler serves endpoints that exercise the middleware chain.
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the caller the auth middleware loaded.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	profile, err := currentProfile(c)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{
		"message":    "Authentication middleware test successful",
		"user_id":    profile.ID,
		"role":       profile.Role,
		"request_id": deliverycontext.GetRequestID(c),
		"status":     "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.OK(c, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
