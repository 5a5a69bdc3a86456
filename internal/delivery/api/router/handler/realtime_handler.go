package handler

import (
	"log/slog"
	"net/http"
	"time"

	"azan/internal/delivery/api/response"
	deliverycontext "azan/internal/delivery/context"
	"azan/internal/domain/clock"
	"azan/internal/infra/broadcast"
	logs "azan/internal/infra/log"

	"github.com/labstack/echo/v4"
)

// RealtimeHandler upgrades viewers onto the broadcast hub and reports health
type RealtimeHandler struct {
	hub      *broadcast.Hub
	clock    *clock.Resolver
	reporter *logs.Reporter
	logger   *slog.Logger
}

// NewRealtimeHandler is the constructor for RealtimeHandler
func NewRealtimeHandler(hub *broadcast.Hub, clockResolver *clock.Resolver, reporter *logs.Reporter, logger *slog.Logger) *RealtimeHandler {
	return &RealtimeHandler{
		hub:      hub,
		clock:    clockResolver,
		reporter: reporter,
		logger:   logger,
	}
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Local    string    `json:"local"`
	Timezone string    `json:"timezone"`
	Viewers  int       `json:"viewers"`
	Errors   int64     `json:"errors"` // background failures reported since start
}

// HealthCheck reports liveness together with the engine's local clock
func (h *RealtimeHandler) HealthCheck(c echo.Context) error {
	now, local := h.clock.Now()

	return response.Success(c, http.StatusOK, HealthResponse{
		Status:   "ok",
		Time:     now.UTC(),
		Local:    local.String(),
		Timezone: h.clock.Label(),
		Viewers:  h.hub.SessionCount(),
		Errors:   h.reporter.Count(),
	})
}

// ServeWS upgrades the connection. A failed upgrade has already been
// answered by the upgrader.
func (h *RealtimeHandler) ServeWS(c echo.Context) error {
	if err := h.hub.ServeWS(c.Response(), c.Request()); err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Warn("Websocket upgrade rejected", slog.Any("error", err))
	}

	return nil
}
