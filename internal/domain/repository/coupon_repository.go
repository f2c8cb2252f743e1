package repository

import (
	"context"

	"bmshub/internal/domain/entity"
)

// CouponRepository defines persistence operations for discount coupons.
type CouponRepository interface {
	// Insert persists a new coupon and returns the generated id.
	Insert(ctx context.Context, coupon *entity.Coupon) (string, error)

	// FindAll lists every coupon.
	FindAll(ctx context.Context) ([]*entity.Coupon, error)

	// FindByCode retrieves one coupon by its code. Returns
	// ErrCouponNotFound on a lookup miss.
	FindByCode(ctx context.Context, code string) (*entity.Coupon, error)
}
