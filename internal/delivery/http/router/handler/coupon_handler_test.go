package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"bmshub/internal/domain/entity"
	"bmshub/internal/usecase"
)

type stubCouponUsecase struct {
	createFn func(ctx context.Context, input *usecase.CreateCouponInput) (string, error)
}

func (s *stubCouponUsecase) Create(ctx context.Context, input *usecase.CreateCouponInput) (string, error) {
	return s.createFn(ctx, input)
}

func (s *stubCouponUsecase) List(ctx context.Context) ([]*entity.Coupon, error) { return nil, nil }

func (s *stubCouponUsecase) QR(ctx context.Context, code string) ([]byte, error) {
	return nil, nil
}

func TestCouponHandler_Create_MissingDescription(t *testing.T) {
	uc := &stubCouponUsecase{
		createFn: func(ctx context.Context, input *usecase.CreateCouponInput) (string, error) {
			t.Fatal("create must not be called without a description")

			return "", nil
		},
	}
	handler := NewCouponHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/coupons",
		strings.NewReader(`{"code":"SAVE10","discount":10}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestCouponHandler_Create_ReturnsInsertedID(t *testing.T) {
	uc := &stubCouponUsecase{
		createFn: func(ctx context.Context, input *usecase.CreateCouponInput) (string, error) {
			assert.Equal(t, "SAVE10", input.Code)
			assert.Equal(t, int64(10), input.Discount)
			assert.Equal(t, "10% off first month", input.Description)

			return "665f1c0e9b3e4a0001d2a001", nil
		},
	}
	handler := NewCouponHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/coupons",
		strings.NewReader(`{"code":"SAVE10","discount":10,"description":"10% off first month"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "665f1c0e9b3e4a0001d2a001")
}
