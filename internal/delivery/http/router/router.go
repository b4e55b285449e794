// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"geofeed/internal/delivery/http/middleware"
	"geofeed/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Notification routes that require authentication
	notificationGroup := e.Group("/notifications")
	notificationGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		notificationGroup.GET("", r.notificationHandler.GetNotifications)
		notificationGroup.GET("/count", r.notificationHandler.CountNotifications)
		notificationGroup.PUT("/read", r.notificationHandler.MarkAllNotificationsAsRead)
		notificationGroup.POST("/location", r.notificationHandler.RequestNotification)
	}
}
