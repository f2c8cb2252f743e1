package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"bmshub/internal/delivery/http/validator"
	"bmshub/internal/domain/entity"
	"bmshub/internal/usecase"
)

// stubAgreementUsecase lets each test pin down just the calls it expects.
type stubAgreementUsecase struct {
	submitFn      func(ctx context.Context, input *usecase.SubmitAgreementInput) (*entity.Agreement, error)
	listByEmailFn func(ctx context.Context, email string) ([]*entity.Agreement, error)
	listAllFn     func(ctx context.Context) ([]*entity.Agreement, error)
}

func (s *stubAgreementUsecase) Submit(ctx context.Context, input *usecase.SubmitAgreementInput) (*entity.Agreement, error) {
	return s.submitFn(ctx, input)
}

func (s *stubAgreementUsecase) Accept(ctx context.Context, id string) error { return nil }
func (s *stubAgreementUsecase) Reject(ctx context.Context, id string) error { return nil }

func (s *stubAgreementUsecase) Get(ctx context.Context, id string) (*entity.Agreement, error) {
	return nil, nil
}

func (s *stubAgreementUsecase) ListByEmail(ctx context.Context, email string) ([]*entity.Agreement, error) {
	return s.listByEmailFn(ctx, email)
}

func (s *stubAgreementUsecase) ListAll(ctx context.Context) ([]*entity.Agreement, error) {
	return s.listAllFn(ctx)
}

func (s *stubAgreementUsecase) Delete(ctx context.Context, id string) error { return nil }

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestAgreementHandler_ListByEmail_MissingEmail(t *testing.T) {
	handler := NewAgreementHandler(&stubAgreementUsecase{}, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/agreements", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListByEmail(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_EMAIL")
}

func TestAgreementHandler_ListByEmail_ReturnsStoredOrder(t *testing.T) {
	uc := &stubAgreementUsecase{
		listByEmailFn: func(ctx context.Context, email string) ([]*entity.Agreement, error) {
			assert.Equal(t, "tenant@example.com", email)

			return []*entity.Agreement{
				{ID: "665f1c0e9b3e4a0001d2a002", UserEmail: email},
				{ID: "665f1c0e9b3e4a0001d2a001", UserEmail: email},
			}, nil
		},
	}
	handler := NewAgreementHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/agreements?email=tenant%40example.com", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.ListByEmail(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"count":2`)
	// newest document first, as the repository sorts it
	assert.Less(t,
		strings.Index(body, "665f1c0e9b3e4a0001d2a002"),
		strings.Index(body, "665f1c0e9b3e4a0001d2a001"))
}

func TestAgreementHandler_Submit_MissingFields(t *testing.T) {
	handler := NewAgreementHandler(&stubAgreementUsecase{}, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/agreements",
		strings.NewReader(`{"userName":"No Email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Submit(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestAgreementHandler_Submit_ReturnsInsertedID(t *testing.T) {
	uc := &stubAgreementUsecase{
		submitFn: func(ctx context.Context, input *usecase.SubmitAgreementInput) (*entity.Agreement, error) {
			return &entity.Agreement{
				ID:          "665f1c0e9b3e4a0001d2a001",
				UserEmail:   input.UserEmail,
				ApartmentNo: input.ApartmentNo,
				Status:      entity.AgreementPending,
			}, nil
		},
	}
	handler := NewAgreementHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/agreements",
		strings.NewReader(`{"userEmail":"tenant@example.com","apartmentNo":"A-101","rent":1200}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Submit(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "665f1c0e9b3e4a0001d2a001")
}
