package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	deliverycontext "bmshub/internal/delivery/context"
	"bmshub/internal/domain/service"
	mockSvc "bmshub/internal/mocks/service"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func runAuth(t *testing.T, verifier service.TokenVerifier, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/agreements/all", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	m := NewAuthMiddleware(verifier)
	err := m.Authenticate(okHandler)(c)
	assert.NoError(t, err)

	return rec, c
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	rec, _ := runAuth(t, &mockSvc.TokenVerifier{}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	rec, _ := runAuth(t, &mockSvc.TokenVerifier{}, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	verifier := &mockSvc.TokenVerifier{}
	verifier.On("Verify", context.Background(), "bad-token").
		Return(nil, errors.New("token expired"))

	rec, _ := runAuth(t, verifier, "Bearer bad-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthMiddleware_ValidTokenSetsPrincipal(t *testing.T) {
	verifier := &mockSvc.TokenVerifier{}
	verifier.On("Verify", context.Background(), "good-token").
		Return(&service.Principal{UID: "u1", Email: "tenant@example.com"}, nil)

	rec, c := runAuth(t, verifier, "Bearer good-token")
	assert.Equal(t, http.StatusOK, rec.Code)

	principal := deliverycontext.GetPrincipal(c)
	assert.NotNil(t, principal)
	assert.Equal(t, "tenant@example.com", principal.Email)
}

func TestAuthMiddleware_NoVerifierConfigured(t *testing.T) {
	rec, _ := runAuth(t, nil, "Bearer any-token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
