package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bmshub/internal/domain/entity"
	domainerrors "bmshub/internal/domain/errors"
	"bmshub/internal/domain/repository"
	"bmshub/internal/usecase"
)

func TestMemberService_Apply_ForcesPendingStatus(t *testing.T) {
	fx := createTestMemberService()
	ctx := context.Background()

	fx.memberRepo.On("Insert", ctx, mock.MatchedBy(func(m *entity.Member) bool {
		return m.Status == entity.MemberPending &&
			m.Email == "applicant@example.com" &&
			!m.CreatedAt.IsZero()
	})).Return("665f1c0e9b3e4a0001d2c001", nil)

	id, err := fx.service.Apply(ctx, &usecase.ApplyMemberInput{
		Name:  "Applicant",
		Email: "applicant@example.com",
	})
	assert.NoError(t, err)
	assert.Equal(t, "665f1c0e9b3e4a0001d2c001", id)
	fx.memberRepo.AssertExpectations(t)
}

func TestMemberService_UpdateStatus_ActivationPromotesStoredEmail(t *testing.T) {
	fx := createTestMemberService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2c001"

	fx.memberRepo.On("UpdateStatus", ctx, id, entity.MemberActive).
		Return(int64(1), nil)
	fx.memberRepo.On("FindByID", ctx, id).
		Return(&entity.Member{
			ID:     id,
			Email:  "applicant@example.com",
			Status: entity.MemberActive,
		}, nil)
	fx.userRepo.On("UpdateRoleByEmail", ctx, "applicant@example.com", entity.RoleMember).
		Return(int64(1), nil)

	err := fx.service.UpdateStatus(ctx, id, entity.MemberActive)
	assert.NoError(t, err)
	fx.memberRepo.AssertExpectations(t)
	fx.userRepo.AssertExpectations(t)
}

func TestMemberService_UpdateStatus_PendingHasNoRoleSideEffect(t *testing.T) {
	fx := createTestMemberService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2c001"

	fx.memberRepo.On("UpdateStatus", ctx, id, entity.MemberPending).
		Return(int64(1), nil)

	err := fx.service.UpdateStatus(ctx, id, entity.MemberPending)
	assert.NoError(t, err)
	fx.userRepo.AssertNotCalled(t, "UpdateRoleByEmail", mock.Anything, mock.Anything, mock.Anything)
	fx.memberRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestMemberService_UpdateStatus_NotFound(t *testing.T) {
	fx := createTestMemberService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2c001"

	fx.memberRepo.On("UpdateStatus", ctx, id, entity.MemberActive).
		Return(int64(0), nil)

	err := fx.service.UpdateStatus(ctx, id, entity.MemberActive)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}

func TestMemberService_UpdateStatus_MemberGoneAfterActivation(t *testing.T) {
	fx := createTestMemberService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2c001"

	fx.memberRepo.On("UpdateStatus", ctx, id, entity.MemberActive).
		Return(int64(1), nil)
	fx.memberRepo.On("FindByID", ctx, id).
		Return(nil, repository.ErrMemberNotFound)

	err := fx.service.UpdateStatus(ctx, id, entity.MemberActive)
	assert.NoError(t, err)
	fx.userRepo.AssertNotCalled(t, "UpdateRoleByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestMemberService_ListPending(t *testing.T) {
	fx := createTestMemberService()
	ctx := context.Background()

	pending := []*entity.Member{
		{ID: "665f1c0e9b3e4a0001d2c001", Email: "a@example.com", Status: entity.MemberPending},
	}
	fx.memberRepo.On("FindByStatus", ctx, entity.MemberPending).Return(pending, nil)

	members, err := fx.service.ListPending(ctx)
	assert.NoError(t, err)
	assert.Equal(t, pending, members)
}
