package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bmshub/internal/delivery/http/response"
	"bmshub/internal/domain/entity"
	"bmshub/internal/usecase"
)

// ApplyMemberRequest is the payload for filing a membership application.
type ApplyMemberRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateMemberStatusRequest is the payload for moving an application.
type UpdateMemberStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending active"`
}

// MemberHandler holds dependencies for member-related handlers.
type MemberHandler struct {
	uc     usecase.MemberUsecase
	logger *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler, injected by Fx.
func NewMemberHandler(uc usecase.MemberUsecase, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		uc:     uc,
		logger: logger,
	}
}

// Apply files a new membership application.
func (h *MemberHandler) Apply(c echo.Context) error {
	var req ApplyMemberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "name and email are required")
	}

	id, err := h.uc.Apply(c.Request().Context(), &usecase.ApplyMemberInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"insertedId": id}, "Member application filed")
}

// List returns every membership application.
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := newMemberViews(members)

	return response.List(c, views, len(views), "")
}

// ListPending returns applications awaiting review.
func (h *MemberHandler) ListPending(c echo.Context) error {
	members, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := newMemberViews(members)

	return response.List(c, views, len(views), "")
}

// UpdateStatus moves an application to the requested status.
func (h *MemberHandler) UpdateStatus(c echo.Context) error {
	var req UpdateMemberStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "status must be pending or active")
	}

	if err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), entity.MemberStatus(req.Status)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Member status updated")
}
