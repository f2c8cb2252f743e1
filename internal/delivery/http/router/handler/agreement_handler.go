// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bmshub/internal/delivery/http/response"
	"bmshub/internal/usecase"
)

// SubmitAgreementRequest is the payload for creating an agreement.
type SubmitAgreementRequest struct {
	UserEmail   string `json:"userEmail" validate:"required,email"`
	UserName    string `json:"userName"`
	ApartmentNo string `json:"apartmentNo" validate:"required"`
	Floor       string `json:"floor"`
	Block       string `json:"block"`
	Rent        int64  `json:"rent"`
}

// AgreementHandler holds dependencies for agreement-related handlers.
type AgreementHandler struct {
	uc     usecase.AgreementUsecase
	logger *slog.Logger
}

// NewAgreementHandler is the constructor for AgreementHandler, injected by Fx.
func NewAgreementHandler(uc usecase.AgreementUsecase, logger *slog.Logger) *AgreementHandler {
	return &AgreementHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles the agreement creation request.
func (h *AgreementHandler) Submit(c echo.Context) error {
	var req SubmitAgreementRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid agreement input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "userEmail and apartmentNo are required")
	}

	agreement, err := h.uc.Submit(c.Request().Context(), &usecase.SubmitAgreementInput{
		UserEmail:   req.UserEmail,
		UserName:    req.UserName,
		ApartmentNo: req.ApartmentNo,
		Floor:       req.Floor,
		Block:       req.Block,
		Rent:        req.Rent,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"insertedId": agreement.ID}, "Agreement submitted successfully")
}

// ListByEmail lists the agreements belonging to one email, newest first.
func (h *AgreementHandler) ListByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "MISSING_EMAIL", "Query parameter email is required")
	}

	agreements, err := h.uc.ListByEmail(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	views := newAgreementViews(agreements)

	return response.List(c, views, len(views), "")
}

// ListAll lists every agreement. The route is gated by the auth middleware.
func (h *AgreementHandler) ListAll(c echo.Context) error {
	agreements, err := h.uc.ListAll(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := newAgreementViews(agreements)

	return response.List(c, views, len(views), "")
}

// Get fetches a single agreement by id.
func (h *AgreementHandler) Get(c echo.Context) error {
	agreement, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAgreementView(agreement), "")
}

// Accept marks a pending agreement checked and promotes its user.
func (h *AgreementHandler) Accept(c echo.Context) error {
	if err := h.uc.Accept(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Agreement accepted")
}

// Reject marks a pending agreement checked without a role side effect.
func (h *AgreementHandler) Reject(c echo.Context) error {
	if err := h.uc.Reject(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Agreement rejected")
}

// Delete removes an agreement by id.
func (h *AgreementHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Agreement deleted")
}
