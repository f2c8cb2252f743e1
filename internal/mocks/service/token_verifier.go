package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bmshub/internal/domain/service"
)

// TokenVerifier is a mock implementation of service.TokenVerifier.
type TokenVerifier struct {
	mock.Mock
}

func (m *TokenVerifier) Verify(ctx context.Context, idToken string) (*service.Principal, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.Principal), args.Error(1)
}
