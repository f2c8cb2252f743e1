package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bmshub/internal/delivery/http/response"
	"bmshub/internal/usecase"
)

// CreateAnnouncementRequest is the payload for posting a notice.
type CreateAnnouncementRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// AnnouncementHandler holds dependencies for announcement-related handlers.
type AnnouncementHandler struct {
	uc     usecase.AnnouncementUsecase
	logger *slog.Logger
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler,
// injected by Fx.
func NewAnnouncementHandler(uc usecase.AnnouncementUsecase, logger *slog.Logger) *AnnouncementHandler {
	return &AnnouncementHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create posts a new building-wide notice.
func (h *AnnouncementHandler) Create(c echo.Context) error {
	var req CreateAnnouncementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid announcement input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "title and description are required")
	}

	id, err := h.uc.Create(c.Request().Context(), &usecase.CreateAnnouncementInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"insertedId": id}, "Announcement created")
}

// List returns every announcement.
func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := newAnnouncementViews(announcements)

	return response.List(c, views, len(views), "")
}
