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

type stubApartmentUsecase struct {
	createFn func(ctx context.Context, input *usecase.CreateApartmentInput) (string, error)
}

func (s *stubApartmentUsecase) Create(ctx context.Context, input *usecase.CreateApartmentInput) (string, error) {
	return s.createFn(ctx, input)
}

func (s *stubApartmentUsecase) List(ctx context.Context) ([]*entity.Apartment, error) {
	return nil, nil
}

func TestApartmentHandler_Create_MissingFloorAndBlock(t *testing.T) {
	uc := &stubApartmentUsecase{
		createFn: func(ctx context.Context, input *usecase.CreateApartmentInput) (string, error) {
			t.Fatal("create must not be called for an incomplete unit")

			return "", nil
		},
	}
	handler := NewApartmentHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/apartments",
		strings.NewReader(`{"apartmentNo":"A-101","rent":1200}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
}

func TestApartmentHandler_Create_ReturnsInsertedID(t *testing.T) {
	uc := &stubApartmentUsecase{
		createFn: func(ctx context.Context, input *usecase.CreateApartmentInput) (string, error) {
			assert.Equal(t, "A-101", input.ApartmentNo)
			assert.Equal(t, "3", input.Floor)
			assert.Equal(t, "B", input.Block)

			return "665f1c0e9b3e4a0001d2a001", nil
		},
	}
	handler := NewApartmentHandler(uc, newDiscardLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/apartments",
		strings.NewReader(`{"apartmentNo":"A-101","floor":"3","block":"B","rent":1200}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "665f1c0e9b3e4a0001d2a001")
}
