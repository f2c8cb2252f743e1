package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bmshub/internal/domain/entity"
	domainerrors "bmshub/internal/domain/errors"
	"bmshub/internal/domain/repository"
	"bmshub/internal/usecase"
)

func TestAgreementService_Submit_Success(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()

	fx.agreementRepo.On("Insert", ctx, mock.MatchedBy(func(a *entity.Agreement) bool {
		return a.UserEmail == "tenant@example.com" &&
			a.ApartmentNo == "A-101" &&
			a.Status == entity.AgreementPending &&
			!a.CreatedAt.IsZero()
	})).Return("665f1c0e9b3e4a0001d2a001", nil)

	agreement, err := fx.service.Submit(ctx, &usecase.SubmitAgreementInput{
		UserEmail:   "tenant@example.com",
		UserName:    "Tenant",
		ApartmentNo: "A-101",
		Floor:       "1",
		Block:       "A",
		Rent:        1200,
	})
	assert.NoError(t, err)
	assert.Equal(t, "665f1c0e9b3e4a0001d2a001", agreement.ID)
	assert.Equal(t, entity.AgreementPending, agreement.Status)
	fx.agreementRepo.AssertExpectations(t)
}

func TestAgreementService_Submit_DuplicatePending(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()

	fx.agreementRepo.On("Insert", ctx, mock.Anything).
		Return("", repository.ErrDuplicateAgreement)

	agreement, err := fx.service.Submit(ctx, &usecase.SubmitAgreementInput{
		UserEmail:   "tenant@example.com",
		ApartmentNo: "A-101",
	})
	assert.Nil(t, agreement)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateAgreement)
}

func TestAgreementService_Accept_PromotesStoredEmail(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2a001"

	fx.agreementRepo.On("UpdateStatus", ctx, id, entity.AgreementChecked).
		Return(int64(1), nil)
	fx.agreementRepo.On("FindByID", ctx, id).
		Return(&entity.Agreement{
			ID:        id,
			UserEmail: "tenant@example.com",
			Status:    entity.AgreementChecked,
		}, nil)
	fx.userRepo.On("UpdateRoleByEmail", ctx, "tenant@example.com", entity.RoleMember).
		Return(int64(1), nil)

	err := fx.service.Accept(ctx, id)
	assert.NoError(t, err)
	fx.agreementRepo.AssertExpectations(t)
	fx.userRepo.AssertExpectations(t)
}

func TestAgreementService_Accept_MissingAgreementSkipsRoleSideEffect(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2a001"

	fx.agreementRepo.On("UpdateStatus", ctx, id, entity.AgreementChecked).
		Return(int64(0), nil)
	fx.agreementRepo.On("FindByID", ctx, id).
		Return(nil, repository.ErrAgreementNotFound)

	err := fx.service.Accept(ctx, id)
	assert.NoError(t, err)
	fx.userRepo.AssertNotCalled(t, "UpdateRoleByEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestAgreementService_Accept_MissingUserSkipsRoleSideEffect(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2a001"

	fx.agreementRepo.On("UpdateStatus", ctx, id, entity.AgreementChecked).
		Return(int64(1), nil)
	fx.agreementRepo.On("FindByID", ctx, id).
		Return(&entity.Agreement{ID: id, UserEmail: "ghost@example.com"}, nil)
	fx.userRepo.On("UpdateRoleByEmail", ctx, "ghost@example.com", entity.RoleMember).
		Return(int64(0), nil)

	err := fx.service.Accept(ctx, id)
	assert.NoError(t, err)
	fx.userRepo.AssertExpectations(t)
}

func TestAgreementService_Reject_NoRoleSideEffect(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2a001"

	fx.agreementRepo.On("UpdateStatus", ctx, id, entity.AgreementChecked).
		Return(int64(1), nil)

	err := fx.service.Reject(ctx, id)
	assert.NoError(t, err)
	fx.userRepo.AssertNotCalled(t, "UpdateRoleByEmail", mock.Anything, mock.Anything, mock.Anything)
	fx.agreementRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAgreementService_Get_InvalidID(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()

	fx.agreementRepo.On("FindByID", ctx, "not-a-hex-id").
		Return(nil, repository.ErrInvalidID)

	agreement, err := fx.service.Get(ctx, "not-a-hex-id")
	assert.Nil(t, agreement)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidID)
}

func TestAgreementService_Get_NotFound(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2a001"

	fx.agreementRepo.On("FindByID", ctx, id).
		Return(nil, repository.ErrAgreementNotFound)

	agreement, err := fx.service.Get(ctx, id)
	assert.Nil(t, agreement)
	assert.ErrorIs(t, err, domainerrors.ErrAgreementNotFound)
}

func TestAgreementService_Delete_NotFound(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()
	id := "665f1c0e9b3e4a0001d2a001"

	fx.agreementRepo.On("Delete", ctx, id).Return(int64(0), nil)

	err := fx.service.Delete(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrAgreementNotFound)
}

func TestAgreementService_ListByEmail_RepoError(t *testing.T) {
	fx := createTestAgreementService()
	ctx := context.Background()

	fx.agreementRepo.On("FindByEmail", ctx, "tenant@example.com").
		Return(nil, errors.New("db down"))

	agreements, err := fx.service.ListByEmail(ctx, "tenant@example.com")
	assert.Error(t, err)
	assert.Nil(t, agreements)
}
