package entity

import "time"

// Coupon is simple reference data with no lifecycle coupling to other
// entities. Code uniqueness is expected but not enforced by the store.
type Coupon struct {
	ID          string
	Code        string
	Discount    int64
	Description string
	CreatedAt   time.Time
}
