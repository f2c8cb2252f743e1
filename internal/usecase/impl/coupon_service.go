package impl

import (
	"context"
	"time"

	"bmshub/internal/domain/entity"
	domainerrors "bmshub/internal/domain/errors"
	"bmshub/internal/domain/repository"
	"bmshub/internal/domain/service"
	"bmshub/internal/errors"
	"bmshub/internal/usecase"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	couponRepo repository.CouponRepository
	qrService  service.QRCodeService
}

// NewCouponService is the constructor for couponService.
func NewCouponService(couponRepo repository.CouponRepository, qrService service.QRCodeService) usecase.CouponUsecase {
	return &couponService{
		couponRepo: couponRepo,
		qrService:  qrService,
	}
}

func (srv *couponService) Create(ctx context.Context, input *usecase.CreateCouponInput) (string, error) {
	coupon := &entity.Coupon{
		Code:        input.Code,
		Discount:    input.Discount,
		Description: input.Description,
		CreatedAt:   time.Now(),
	}

	id, err := srv.couponRepo.Insert(ctx, coupon)
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to add coupon")
	}

	return id, nil
}

func (srv *couponService) List(ctx context.Context) ([]*entity.Coupon, error) {
	coupons, err := srv.couponRepo.FindAll(ctx)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch coupons")
	}

	return coupons, nil
}

func (srv *couponService) QR(ctx context.Context, code string) ([]byte, error) {
	coupon, err := srv.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrCouponNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to fetch coupon")
	}

	png, err := srv.qrService.GenerateCouponQR(coupon.Code, coupon.Discount)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WithDetails("failed to render coupon QR")
	}

	return png, nil
}
