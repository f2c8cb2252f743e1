package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bmshub/internal/domain/entity"
)

// PaymentRepository is a mock implementation of repository.PaymentRepository.
type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) Insert(ctx context.Context, payment *entity.Payment) (string, error) {
	args := m.Called(ctx, payment)

	return args.String(0), args.Error(1)
}

func (m *PaymentRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Payment), args.Error(1)
}
