package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	deliverycontext "bmshub/internal/delivery/context"
	"bmshub/internal/domain/entity"
	"bmshub/internal/domain/service"
	"bmshub/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubPaymentUsecase struct {
	recordFn  func(ctx context.Context, input *usecase.RecordPaymentInput) (string, error)
	historyFn func(ctx context.Context, email string) ([]*entity.Payment, error)
	intentFn  func(ctx context.Context, amount int64) (string, error)
}

func (s *stubPaymentUsecase) Record(ctx context.Context, input *usecase.RecordPaymentInput) (string, error) {
	return s.recordFn(ctx, input)
}

func (s *stubPaymentUsecase) History(ctx context.Context, email string) ([]*entity.Payment, error) {
	return s.historyFn(ctx, email)
}

func (s *stubPaymentUsecase) CreateIntent(ctx context.Context, amount int64) (string, error) {
	return s.intentFn(ctx, amount)
}

func TestPaymentHandler_History_PrincipalMismatch(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentUsecase{}, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/payments?email=victim%40example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetPrincipal(c, &service.Principal{UID: "u1", Email: "attacker@example.com"})

	err := handler.History(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPaymentHandler_History_NoPrincipal(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentUsecase{}, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/payments?email=someone%40example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.History(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPaymentHandler_History_MatchingPrincipal(t *testing.T) {
	uc := &stubPaymentUsecase{
		historyFn: func(ctx context.Context, email string) ([]*entity.Payment, error) {
			return []*entity.Payment{
				{ID: "665f1c0e9b3e4a0001d2b001", UserEmail: email, Amount: 1200},
			}, nil
		},
	}
	handler := NewPaymentHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/payments?email=tenant%40example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetPrincipal(c, &service.Principal{UID: "u1", Email: "tenant@example.com"})

	err := handler.History(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "665f1c0e9b3e4a0001d2b001")
}

func TestPaymentHandler_Record_LegacyFieldAliases(t *testing.T) {
	var captured *usecase.RecordPaymentInput
	uc := &stubPaymentUsecase{
		recordFn: func(ctx context.Context, input *usecase.RecordPaymentInput) (string, error) {
			captured = input

			return "665f1c0e9b3e4a0001d2b001", nil
		},
	}
	handler := NewPaymentHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/payments",
		strings.NewReader(`{"agreementsId":"665f1c0e9b3e4a0001d2a001","email":"tenant@example.com","amount":1200}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Record(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "665f1c0e9b3e4a0001d2a001", captured.AgreementID)
	assert.Equal(t, "tenant@example.com", captured.UserEmail)
}

func TestPaymentHandler_Record_MissingFields(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentUsecase{}, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/payments",
		strings.NewReader(`{"amount":1200}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Record(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentHandler_CreateIntent_MissingAmount(t *testing.T) {
	handler := NewPaymentHandler(&stubPaymentUsecase{}, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent",
		strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateIntent(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentHandler_CreateIntent_ReturnsClientSecret(t *testing.T) {
	uc := &stubPaymentUsecase{
		intentFn: func(ctx context.Context, amount int64) (string, error) {
			assert.Equal(t, int64(1200), amount)

			return "pi_secret_abc", nil
		},
	}
	handler := NewPaymentHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/create-payment-intent",
		strings.NewReader(`{"amount":1200}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreateIntent(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "pi_secret_abc")
}
