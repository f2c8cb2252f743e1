package service

// QRCodeService renders a coupon as a scannable PNG so it can be printed
// on building notice boards.
type QRCodeService interface {
	// GenerateCouponQR encodes the coupon payload and returns PNG bytes.
	GenerateCouponQR(code string, discount int64) ([]byte, error)
}
