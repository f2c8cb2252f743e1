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

// CreateApartmentRequest is the payload for registering a unit.
type CreateApartmentRequest struct {
	ApartmentNo string `json:"apartmentNo" validate:"required"`
	Floor       string `json:"floor" validate:"required"`
	Block       string `json:"block" validate:"required"`
	Rent        int64  `json:"rent" validate:"required,gt=0"`
	Status      string `json:"status"`
}

// ApartmentHandler holds dependencies for apartment-related handlers.
type ApartmentHandler struct {
	uc     usecase.ApartmentUsecase
	logger *slog.Logger
}

// NewApartmentHandler is the constructor for ApartmentHandler, injected by Fx.
func NewApartmentHandler(uc usecase.ApartmentUsecase, logger *slog.Logger) *ApartmentHandler {
	return &ApartmentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create registers a new apartment unit.
func (h *ApartmentHandler) Create(c echo.Context) error {
	var req CreateApartmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid apartment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "apartmentNo, floor, block and rent are required")
	}

	id, err := h.uc.Create(c.Request().Context(), &usecase.CreateApartmentInput{
		ApartmentNo: req.ApartmentNo,
		Floor:       req.Floor,
		Block:       req.Block,
		Rent:        req.Rent,
		Status:      entity.ApartmentStatus(req.Status),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"insertedId": id}, "Apartment created")
}

// List returns every apartment unit.
func (h *ApartmentHandler) List(c echo.Context) error {
	apartments, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := newApartmentViews(apartments)

	return response.List(c, views, len(views), "")
}
