package handler

import (
	"net/http"

	"azan/internal/delivery/api/response"
	"azan/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AnnouncementHandler serves live announcements
type AnnouncementHandler struct {
	announcementUC usecase.AnnouncementUsecase
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler
func NewAnnouncementHandler(announcementUC usecase.AnnouncementUsecase) *AnnouncementHandler {
	return &AnnouncementHandler{announcementUC: announcementUC}
}

// Announce pushes an audio URL to every connected viewer
func (h *AnnouncementHandler) Announce(c echo.Context) error {
	var req usecase.AnnouncementInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid announcement input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	announcement, err := h.announcementUC.Announce(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, announcement)
}
