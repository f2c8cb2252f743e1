package usecase

import (
	"context"

	"bmshub/internal/domain/entity"
)

// CreateCouponInput defines the data required to publish a coupon.
type CreateCouponInput struct {
	Code        string
	Discount    int64
	Description string
}

// CouponUsecase handles the coupon reference data.
type CouponUsecase interface {
	Create(ctx context.Context, input *CreateCouponInput) (string, error)
	List(ctx context.Context) ([]*entity.Coupon, error)

	// QR renders the coupon with the given code as a PNG QR image.
	QR(ctx context.Context, code string) ([]byte, error)
}
