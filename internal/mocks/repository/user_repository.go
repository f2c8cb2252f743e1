package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bmshub/internal/domain/entity"
)

// UserRepository is a mock implementation of repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *UserRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *UserRepository) Create(ctx context.Context, user *entity.User) (string, error) {
	args := m.Called(ctx, user)

	return args.String(0), args.Error(1)
}

func (m *UserRepository) UpdateRoleByEmail(ctx context.Context, email string, role entity.Role) (int64, error) {
	args := m.Called(ctx, email, role)

	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) UpdateRoleByID(ctx context.Context, id string, role entity.Role) (int64, error) {
	args := m.Called(ctx, id, role)

	return args.Get(0).(int64), args.Error(1)
}
