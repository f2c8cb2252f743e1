package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bmshub/internal/domain/entity"
)

// MemberRepository is a mock implementation of repository.MemberRepository.
type MemberRepository struct {
	mock.Mock
}

func (m *MemberRepository) Insert(ctx context.Context, member *entity.Member) (string, error) {
	args := m.Called(ctx, member)

	return args.String(0), args.Error(1)
}

func (m *MemberRepository) FindByID(ctx context.Context, id string) (*entity.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Member), args.Error(1)
}

func (m *MemberRepository) FindAll(ctx context.Context) ([]*entity.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Member), args.Error(1)
}

func (m *MemberRepository) FindByStatus(ctx context.Context, status entity.MemberStatus) ([]*entity.Member, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Member), args.Error(1)
}

func (m *MemberRepository) UpdateStatus(ctx context.Context, id string, status entity.MemberStatus) (int64, error) {
	args := m.Called(ctx, id, status)

	return args.Get(0).(int64), args.Error(1)
}
