package repository

import (
	"context"

	"bmshub/internal/domain/entity"
)

// PaymentRepository defines persistence operations for payment history.
type PaymentRepository interface {
	// Insert persists a new payment record and returns the generated id.
	Insert(ctx context.Context, payment *entity.Payment) (string, error)

	// FindByEmail lists payments made by a user email, newest first.
	FindByEmail(ctx context.Context, email string) ([]*entity.Payment, error)
}
