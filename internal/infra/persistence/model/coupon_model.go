package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bmshub/internal/domain/entity"
)

// CouponModel mirrors documents in the 'coupons' collection.
type CouponModel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Code        string             `bson:"code"`
	Discount    int64              `bson:"discount"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"createdAt"`
}

// CollectionName returns the backing collection.
func (CouponModel) CollectionName() string {
	return "coupons"
}

// ToCouponDomain maps the persistence document to a pure domain entity.
func ToCouponDomain(m *CouponModel) *entity.Coupon {
	return &entity.Coupon{
		ID:          m.ID.Hex(),
		Code:        m.Code,
		Discount:    m.Discount,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

// FromCouponDomain maps a domain entity to its persistence document.
func FromCouponDomain(coupon *entity.Coupon) *CouponModel {
	return &CouponModel{
		Code:        coupon.Code,
		Discount:    coupon.Discount,
		Description: coupon.Description,
		CreatedAt:   coupon.CreatedAt,
	}
}
