// Package mocks provides testify-based test doubles for the domain
// service interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// PaymentGateway is a mock implementation of service.PaymentGateway.
type PaymentGateway struct {
	mock.Mock
}

func (m *PaymentGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)

	return args.String(0), args.Error(1)
}
