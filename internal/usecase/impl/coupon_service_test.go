package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"bmshub/internal/domain/entity"
	domainerrors "bmshub/internal/domain/errors"
	"bmshub/internal/domain/repository"
	mockRepo "bmshub/internal/mocks/repository"
	mockSvc "bmshub/internal/mocks/service"
	"bmshub/internal/usecase"
)

func TestCouponService_Create_StampsCreationTime(t *testing.T) {
	couponRepo := &mockRepo.CouponRepository{}
	qrService := &mockSvc.QRCodeService{}
	service := NewCouponService(couponRepo, qrService)
	ctx := context.Background()

	couponRepo.On("Insert", ctx, mock.MatchedBy(func(cp *entity.Coupon) bool {
		return cp.Code == "SUMMER25" && cp.Discount == 25 && !cp.CreatedAt.IsZero()
	})).Return("665f1c0e9b3e4a0001d2e001", nil)

	id, err := service.Create(ctx, &usecase.CreateCouponInput{
		Code:        "SUMMER25",
		Discount:    25,
		Description: "Summer discount",
	})
	assert.NoError(t, err)
	assert.Equal(t, "665f1c0e9b3e4a0001d2e001", id)
}

func TestCouponService_QR_RendersStoredCoupon(t *testing.T) {
	couponRepo := &mockRepo.CouponRepository{}
	qrService := &mockSvc.QRCodeService{}
	service := NewCouponService(couponRepo, qrService)
	ctx := context.Background()

	couponRepo.On("FindByCode", ctx, "SUMMER25").
		Return(&entity.Coupon{Code: "SUMMER25", Discount: 25}, nil)
	qrService.On("GenerateCouponQR", "SUMMER25", int64(25)).
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := service.QR(ctx, "SUMMER25")
	assert.NoError(t, err)
	assert.NotEmpty(t, png)
	qrService.AssertExpectations(t)
}

func TestCouponService_QR_UnknownCode(t *testing.T) {
	couponRepo := &mockRepo.CouponRepository{}
	qrService := &mockSvc.QRCodeService{}
	service := NewCouponService(couponRepo, qrService)
	ctx := context.Background()

	couponRepo.On("FindByCode", ctx, "NOPE").
		Return(nil, repository.ErrCouponNotFound)

	png, err := service.QR(ctx, "NOPE")
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrCouponNotFound)
	qrService.AssertNotCalled(t, "GenerateCouponQR", mock.Anything, mock.Anything)
}
