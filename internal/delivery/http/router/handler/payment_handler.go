package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "bmshub/internal/delivery/context"
	"bmshub/internal/delivery/http/response"
	"bmshub/internal/usecase"
)

// RecordPaymentRequest is the payload for recording a settled payment.
// The agreement and email fields each accept a legacy alias kept from the
// first frontend release; the canonical name wins when both are present.
type RecordPaymentRequest struct {
	AgreementID   string `json:"agreementId"`
	AgreementsID  string `json:"agreementsId"`
	UserEmail     string `json:"userEmail"`
	Email         string `json:"email"`
	Amount        int64  `json:"amount"`
	Month         string `json:"month"`
	TransactionID string `json:"transactionId"`
	PaymentMethod string `json:"paymentMethod"`
}

// CreateIntentRequest is the payload for obtaining a gateway client secret.
type CreateIntentRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Record flips the referenced agreement to paid and stores the payment.
func (h *PaymentHandler) Record(c echo.Context) error {
	var req RecordPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	agreementID := req.AgreementID
	if agreementID == "" {
		agreementID = req.AgreementsID
	}
	userEmail := req.UserEmail
	if userEmail == "" {
		userEmail = req.Email
	}

	if agreementID == "" || userEmail == "" || req.Amount <= 0 {
		return response.BadRequest(c, "INVALID_INPUT", "agreementId, userEmail and amount are required")
	}

	id, err := h.uc.Record(c.Request().Context(), &usecase.RecordPaymentInput{
		AgreementID:   agreementID,
		UserEmail:     userEmail,
		Amount:        req.Amount,
		Month:         req.Month,
		TransactionID: req.TransactionID,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"insertedId": id}, "Payment recorded")
}

// History lists the caller's payments, newest first. The route is gated by
// the auth middleware and the queried email must match the verified
// principal.
func (h *PaymentHandler) History(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return response.BadRequest(c, "MISSING_EMAIL", "Query parameter email is required")
	}

	principal := deliverycontext.GetPrincipal(c)
	if principal == nil || principal.Email != email {
		return response.Forbidden(c, "FORBIDDEN", "forbidden access")
	}

	payments, err := h.uc.History(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	views := newPaymentViews(payments)

	return response.List(c, views, len(views), "")
}

// CreateIntent obtains a gateway client secret for the given amount.
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid intent input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "amount is required")
	}

	clientSecret, err := h.uc.CreateIntent(c.Request().Context(), req.Amount)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"clientSecret": clientSecret}, "")
}
