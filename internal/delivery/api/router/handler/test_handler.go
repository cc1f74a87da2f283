package handler

import (
	"net/http"

	"knect/internal/delivery/api/middleware"
	"knect/internal/delivery/api/response"
	deliverycontext "knect/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestAuthMiddleware echoes the identity resolved by the authentication middleware.
func (h *TestHandler) TestAuthMiddleware(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message":   "Authentication middleware test successful",
		"userID":    userID,
		"requestID": deliverycontext.GetRequestID(c),
		"status":    "authenticated",
	})
}

// TestPublicEndpoint tests a public endpoint (no authentication required)
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Public endpoint test successful",
		"status":  "public",
	})
}
