package handler

import (
	"net/http"

	"azan/internal/delivery/api/response"
	"azan/internal/usecase"

	"github.com/labstack/echo/v4"
)

// TriggerHandler serves read models of the trigger engine
type TriggerHandler struct {
	triggerUC usecase.TriggerUsecase
}

// NewTriggerHandler is the constructor for TriggerHandler
func NewTriggerHandler(triggerUC usecase.TriggerUsecase) *TriggerHandler {
	return &TriggerHandler{triggerUC: triggerUC}
}

// TodaySchedule lists what fires on the current local date
func (h *TriggerHandler) TodaySchedule(c echo.Context) error {
	day, err := h.triggerUC.TodaySchedule(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, day)
}
