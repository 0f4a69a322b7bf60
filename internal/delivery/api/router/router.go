// Package router wires handlers and middleware into the API routes.
package router

import (
	"dcars/config"
	"dcars/internal/delivery/api/middleware"
	"dcars/internal/delivery/api/router/handler"
	"dcars/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	VehicleHandler      *handler.VehicleHandler
	FavoriteHandler     *handler.FavoriteHandler
	MessageHandler      *handler.MessageHandler
	RealtimeHandler     *handler.RealtimeHandler
	TransactionHandler  *handler.TransactionHandler
	SubscriptionHandler *handler.SubscriptionHandler
	NotificationHandler *handler.NotificationHandler
	DeviceHandler       *handler.DeviceHandler
	DashboardHandler    *handler.DashboardHandler
	AdminHandler        *handler.AdminHandler
	WebhookHandler      *handler.WebhookHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	RouterParams
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{RouterParams: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	auth := r.AuthMiddleware
	sellers := auth.RequireRole(entity.RoleSeller, entity.RoleDealer)
	admins := auth.RequireRole(entity.RoleAdmin)

	e.GET("/health", handler.HealthCheck)

	// Provider callbacks authenticate by signature, not by user token.
	webhooks := e.Group("/webhooks")
	{
		webhooks.POST("/stripe", r.WebhookHandler.Stripe)
		webhooks.POST("/paystack", r.WebhookHandler.Paystack)
	}

	apiV1 := e.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/signup", r.AuthHandler.SignUp)
		authGroup.POST("/signin", r.AuthHandler.SignIn)
		authGroup.POST("/refresh", r.AuthHandler.Refresh)
		authGroup.POST("/signout", r.AuthHandler.SignOut, auth.Authenticate)
	}

	// Public catalogue; a token only widens what Get may return.
	apiV1.GET("/plans", r.SubscriptionHandler.ListPlans)
	apiV1.GET("/profiles/:id", r.ProfileHandler.GetPublic)
	apiV1.GET("/vehicles", r.VehicleHandler.Search)
	apiV1.GET("/vehicles/makes", r.VehicleHandler.Makes)
	apiV1.GET("/vehicles/:id", r.VehicleHandler.Get, auth.OptionalAuthenticate)
	apiV1.GET("/vehicles/:id/qr", r.VehicleHandler.ShareQR)

	// Websocket upgrade; the token may come from ?access_token=.
	apiV1.GET("/realtime", r.RealtimeHandler.Connect, auth.Authenticate)

	private := apiV1.Group("", auth.Authenticate)

	me := private.Group("/me")
	{
		me.GET("", r.ProfileHandler.GetMe)
		me.PATCH("", r.ProfileHandler.UpdateMe)
		me.POST("/avatar", r.ProfileHandler.UploadAvatar)
		me.POST("/seller", r.ProfileHandler.BecomeSeller)
		me.GET("/vehicles", r.VehicleHandler.ListMine, sellers)
		me.GET("/dashboard", r.DashboardHandler.Seller, sellers)
		me.GET("/entitlements", r.SubscriptionHandler.Entitlements)
	}

	vehicles := private.Group("/vehicles", sellers)
	{
		vehicles.POST("", r.VehicleHandler.Create)
		vehicles.PATCH("/:id", r.VehicleHandler.Update)
		vehicles.DELETE("/:id", r.VehicleHandler.Delete)
		vehicles.POST("/:id/publish", r.VehicleHandler.Publish)
		vehicles.POST("/:id/sold", r.VehicleHandler.MarkSold)
		vehicles.POST("/:id/archive", r.VehicleHandler.Archive)
		vehicles.POST("/:id/images", r.VehicleHandler.UploadImage)
		vehicles.DELETE("/:id/images/:imageId", r.VehicleHandler.DeleteImage)
		vehicles.PUT("/:id/images/order", r.VehicleHandler.ReorderImages)
	}

	favorites := private.Group("/favorites")
	{
		favorites.GET("", r.FavoriteHandler.List)
		favorites.GET("/:vehicleId", r.FavoriteHandler.Status)
		favorites.PUT("/:vehicleId", r.FavoriteHandler.Add)
		favorites.DELETE("/:vehicleId", r.FavoriteHandler.Remove)
	}

	conversations := private.Group("/conversations")
	{
		conversations.GET("", r.MessageHandler.ListConversations)
		conversations.POST("", r.MessageHandler.StartConversation)
		conversations.GET("/unread-count", r.MessageHandler.UnreadCount)
		conversations.GET("/:id/messages", r.MessageHandler.ListMessages)
		conversations.POST("/:id/messages", r.MessageHandler.Send)
		conversations.POST("/:id/read", r.MessageHandler.MarkRead)
	}

	transactions := private.Group("/transactions")
	{
		transactions.POST("/checkout", r.TransactionHandler.Checkout)
		transactions.GET("", r.TransactionHandler.ListMine)
		transactions.GET("/:id", r.TransactionHandler.Get)
	}

	subscriptions := private.Group("/subscriptions")
	{
		subscriptions.GET("/current", r.SubscriptionHandler.Current)
		subscriptions.POST("/current/cancel", r.SubscriptionHandler.Cancel)
	}

	notifications := private.Group("/notifications")
	{
		notifications.GET("", r.NotificationHandler.List)
		notifications.GET("/unread-count", r.NotificationHandler.UnreadCount)
		notifications.POST("/read-all", r.NotificationHandler.MarkAllRead)
		notifications.POST("/:id/read", r.NotificationHandler.MarkRead)
		notifications.DELETE("/:id", r.NotificationHandler.Delete)
	}

	devices := private.Group("/devices")
	{
		devices.POST("", r.DeviceHandler.RegisterDevice)
		devices.GET("", r.DeviceHandler.GetUserDevices)
		devices.PUT("/:id/token", r.DeviceHandler.UpdateFCMToken)
		devices.DELETE("/:id", r.DeviceHandler.DeactivateDevice)
	}

	admin := private.Group("/admin", admins)
	{
		admin.GET("/dashboard", r.DashboardHandler.Admin)
		admin.GET("/system", r.AdminHandler.SystemStats)
		admin.GET("/users", r.AdminHandler.ListUsers)
		admin.PUT("/users/:id/role", r.AdminHandler.SetRole)
		admin.PUT("/users/:id/suspension", r.AdminHandler.SetSuspended)
		admin.GET("/vehicles", r.AdminHandler.ListVehicles)
		admin.POST("/vehicles/:id/moderation", r.AdminHandler.ModerateVehicle)
		admin.GET("/transactions", r.AdminHandler.ListTransactions)
	}
}

// RegisterTestRoutes mounts the middleware test endpoints when enabled in config.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.Config.TestRoutes == nil || !r.Config.TestRoutes.Enabled {
		return
	}

	testGroup := e.Group("/test")
	testGroup.GET("/public", r.TestHandler.TestPublicEndpoint)
	testGroup.GET("/auth", r.TestHandler.TestAuthMiddleware, r.AuthMiddleware.Authenticate)
}
