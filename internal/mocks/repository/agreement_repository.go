// Package mocks provides testify-based test doubles for the repository
// interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"bmshub/internal/domain/entity"
)

// AgreementRepository is a mock implementation of
// repository.AgreementRepository.
type AgreementRepository struct {
	mock.Mock
}

func (m *AgreementRepository) Insert(ctx context.Context, agreement *entity.Agreement) (string, error) {
	args := m.Called(ctx, agreement)

	return args.String(0), args.Error(1)
}

func (m *AgreementRepository) FindByID(ctx context.Context, id string) (*entity.Agreement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Agreement), args.Error(1)
}

func (m *AgreementRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Agreement, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Agreement), args.Error(1)
}

func (m *AgreementRepository) FindAll(ctx context.Context) ([]*entity.Agreement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Agreement), args.Error(1)
}

func (m *AgreementRepository) UpdateStatus(ctx context.Context, id string, status entity.AgreementStatus) (int64, error) {
	args := m.Called(ctx, id, status)

	return args.Get(0).(int64), args.Error(1)
}

func (m *AgreementRepository) MarkPaid(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(int64), args.Error(1)
}

func (m *AgreementRepository) Delete(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)

	return args.Get(0).(int64), args.Error(1)
}
