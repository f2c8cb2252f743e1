package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bmshub/internal/domain/entity"
)

// CouponRepository is a mock implementation of repository.CouponRepository.
type CouponRepository struct {
	mock.Mock
}

func (m *CouponRepository) Insert(ctx context.Context, coupon *entity.Coupon) (string, error) {
	args := m.Called(ctx, coupon)

	return args.String(0), args.Error(1)
}

func (m *CouponRepository) FindAll(ctx context.Context) ([]*entity.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Coupon), args.Error(1)
}

func (m *CouponRepository) FindByCode(ctx context.Context, code string) (*entity.Coupon, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Coupon), args.Error(1)
}
