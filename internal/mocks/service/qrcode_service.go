package mocks

import "github.com/stretchr/testify/mock"

// QRCodeService is a mock implementation of service.QRCodeService.
type QRCodeService struct {
	mock.Mock
}

func (m *QRCodeService) GenerateCouponQR(code string, discount int64) ([]byte, error) {
	args := m.Called(code, discount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
