package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"azan/config"
	"azan/internal/delivery/api/response"
	"azan/internal/domain/service"
	"azan/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultRefreshKind    = "all"
	defaultRefreshTimeout = 2 * time.Minute
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	DeviceUC       usecase.DeviceUsecase
	NotificationUC usecase.NotificationUsecase
	Reporter       service.ErrorReporter
	Logger         *slog.Logger
}

// DeviceHandler serves the push token registry
type DeviceHandler struct {
	deviceUC       usecase.DeviceUsecase
	notificationUC usecase.NotificationUsecase
	reporter       service.ErrorReporter
	logger         *slog.Logger
	refreshTimeout time.Duration
	refreshes      sync.WaitGroup
}

// NewDeviceHandler is the constructor for DeviceHandler. Refreshes still
// running at shutdown are awaited by an OnStop hook.
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	h := &DeviceHandler{
		deviceUC:       params.DeviceUC,
		notificationUC: params.NotificationUC,
		reporter:       params.Reporter,
		logger:         params.Logger,
		refreshTimeout: defaultRefreshTimeout,
	}
	if params.Cfg != nil && params.Cfg.Notification.DeliveryTimeout > 0 {
		h.refreshTimeout = params.Cfg.Notification.DeliveryTimeout
	}
	if params.Lc != nil {
		params.Lc.Append(fx.Hook{OnStop: h.WaitRefreshes})
	}

	return h
}

// RegisterDeviceRequest represents the request body for registering a device
type RegisterDeviceRequest struct {
	Token    string `json:"token" validate:"required,max=4096"`
	Platform string `json:"platform"`
}

// UnregisterDeviceRequest represents the request body for removing a device
type UnregisterDeviceRequest struct {
	Token string `json:"token" validate:"required"`
}

// RefreshRequest names what changed; an empty body refreshes everything
type RefreshRequest struct {
	Kind string `json:"kind" validate:"omitempty,max=64"`
}

// RegisterDeviceResponse is returned by RegisterDevice
type RegisterDeviceResponse struct {
	Created bool `json:"created"`
	Device  any  `json:"device"`
}

// RegisterDevice registers a token, or updates the platform of a known one
func (h *DeviceHandler) RegisterDevice(c echo.Context) error {
	var req RegisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	device, created, err := h.deviceUC.RegisterDevice(c.Request().Context(), &usecase.DeviceInfo{
		Token:    req.Token,
		Platform: req.Platform,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	return response.Success(c, status, RegisterDeviceResponse{Created: created, Device: device})
}

// UnregisterDevice removes a token. Unknown tokens are not an error.
func (h *DeviceHandler) UnregisterDevice(c echo.Context) error {
	var req UnregisterDeviceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid device input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	removed, err := h.deviceUC.UnregisterDevice(c.Request().Context(), req.Token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"removed": removed})
}

// RefreshResponse acknowledges a queued silent refresh
type RefreshResponse struct {
	Kind   string `json:"kind"`
	Status string `json:"status"`
}

// RefreshDevices queues a silent data-changed push to every device and
// answers 202 without waiting for the batches.
func (h *DeviceHandler) RefreshDevices(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid refresh input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	kind := strings.TrimSpace(req.Kind)
	if kind == "" {
		kind = defaultRefreshKind
	}

	h.refreshes.Add(1)
	go h.refresh(context.WithoutCancel(c.Request().Context()), kind)

	return response.Success(c, http.StatusAccepted, RefreshResponse{Kind: kind, Status: "queued"})
}

func (h *DeviceHandler) refresh(ctx context.Context, kind string) {
	defer h.refreshes.Done()

	ctx, cancel := context.WithTimeout(ctx, h.refreshTimeout)
	defer cancel()

	report, err := h.notificationUC.NotifyDataChanged(ctx, kind)
	if err != nil {
		h.reporter.Report(ctx, "device_handler", "notify_data_changed", err, slog.String("kind", kind))

		return
	}
	if report == nil {
		return
	}

	h.logger.InfoContext(ctx, "Silent refresh delivered",
		slog.String("kind", kind),
		slog.Int("sent", report.Sent),
		slog.Int("failed", report.Failed),
		slog.Int("pruned", report.Pruned),
	)
}

// WaitRefreshes blocks until queued refreshes finish or ctx is done.
func (h *DeviceHandler) WaitRefreshes(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		h.refreshes.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
