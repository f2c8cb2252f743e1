package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"bmshub/internal/delivery/http/response"
	"bmshub/internal/usecase"
)

// CreateCouponRequest is the payload for publishing a coupon.
type CreateCouponRequest struct {
	Code        string `json:"code" validate:"required"`
	Discount    int64  `json:"discount" validate:"required,gt=0,lte=100"`
	Description string `json:"description" validate:"required"`
}

// CouponHandler holds dependencies for coupon-related handlers.
type CouponHandler struct {
	uc     usecase.CouponUsecase
	logger *slog.Logger
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(uc usecase.CouponUsecase, logger *slog.Logger) *CouponHandler {
	return &CouponHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create publishes a new coupon.
func (h *CouponHandler) Create(c echo.Context) error {
	var req CreateCouponRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "code, discount and description are required")
	}

	id, err := h.uc.Create(c.Request().Context(), &usecase.CreateCouponInput{
		Code:        req.Code,
		Discount:    req.Discount,
		Description: req.Description,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"insertedId": id}, "Coupon created")
}

// QR streams the coupon as a PNG QR image for printing.
func (h *CouponHandler) QR(c echo.Context) error {
	png, err := h.uc.QR(c.Request().Context(), c.Param("code"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// List returns every coupon.
func (h *CouponHandler) List(c echo.Context) error {
	coupons, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := newCouponViews(coupons)

	return response.List(c, views, len(views), "")
}
