// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"knect/config"
	"knect/internal/delivery/api/middleware"
	"knect/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	ConnectionHandler *handler.ConnectionHandler
	PassHandler       *handler.PassHandler
	DeviceHandler     *handler.DeviceHandler
	TestHandler       *handler.TestHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	connectionHandler *handler.ConnectionHandler
	passHandler       *handler.PassHandler
	deviceHandler     *handler.DeviceHandler
	testHandler       *handler.TestHandler
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		connectionHandler: params.ConnectionHandler,
		passHandler:       params.PassHandler,
		deviceHandler:     params.DeviceHandler,
		testHandler:       params.TestHandler,
		authMiddleware:    params.AuthMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public avatar objects, addressed by the storage public base URL.
	e.GET("/avatars/*", r.profileHandler.ServeAvatar)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-up", r.authHandler.SignUp)
		authGroup.POST("/sign-in", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	apiV1.GET("/me", r.authHandler.Me)
	apiV1.GET("/profiles/:id", r.profileHandler.GetProfile)

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetMyProfile)
		profileGroup.PUT("", r.profileHandler.SaveProfile)
		profileGroup.PUT("/avatar", r.profileHandler.UploadAvatar)
	}

	connectionsGroup := apiV1.Group("/connections")
	{
		connectionsGroup.GET("", r.connectionHandler.List)
		connectionsGroup.PUT("", r.connectionHandler.UpsertPair)
		connectionsGroup.POST("/scan", r.connectionHandler.Scan)
		connectionsGroup.GET("/map", r.connectionHandler.Map)
		connectionsGroup.GET("/changes", r.connectionHandler.Changes)
		connectionsGroup.GET("/:id", r.connectionHandler.Get)
		connectionsGroup.DELETE("/:id", r.connectionHandler.Delete)
	}

	passGroup := apiV1.Group("/pass")
	{
		passGroup.GET("", r.passHandler.QRCode)
		passGroup.GET("/token", r.passHandler.Token)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
		{
			testGroup.GET("/auth", r.testHandler.TestAuthMiddleware)
		}
	}
}
