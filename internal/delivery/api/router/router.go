// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"azan/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RealtimeHandler     *handler.RealtimeHandler
	DeviceHandler       *handler.DeviceHandler
	TriggerHandler      *handler.TriggerHandler
	AnnouncementHandler *handler.AnnouncementHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	realtimeHandler     *handler.RealtimeHandler
	deviceHandler       *handler.DeviceHandler
	triggerHandler      *handler.TriggerHandler
	announcementHandler *handler.AnnouncementHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		realtimeHandler:     params.RealtimeHandler,
		deviceHandler:       params.DeviceHandler,
		triggerHandler:      params.TriggerHandler,
		announcementHandler: params.AnnouncementHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.realtimeHandler.HealthCheck)
	e.GET("/ws", r.realtimeHandler.ServeWS)

	api := e.Group("/api")

	devicesGroup := api.Group("/devices")
	{
		devicesGroup.POST("/register", r.deviceHandler.RegisterDevice)
		devicesGroup.POST("/unregister", r.deviceHandler.UnregisterDevice)
		devicesGroup.POST("/refresh", r.deviceHandler.RefreshDevices)
	}

	api.GET("/triggers/today", r.triggerHandler.TodaySchedule)
	api.POST("/announcements", r.announcementHandler.Announce)
}
