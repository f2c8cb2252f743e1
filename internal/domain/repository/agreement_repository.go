package repository

import (
	"context"

	"bmshub/internal/domain/entity"
)

// AgreementRepository defines persistence operations for rental agreements.
type AgreementRepository interface {
	// Insert persists a new agreement and returns the generated id.
	// Returns ErrDuplicateAgreement when a pending agreement already exists
	// for the same (UserEmail, ApartmentNo) pair.
	Insert(ctx context.Context, agreement *entity.Agreement) (string, error)

	// FindByID retrieves one agreement. Returns ErrInvalidID for malformed
	// ids and ErrAgreementNotFound on a lookup miss.
	FindByID(ctx context.Context, id string) (*entity.Agreement, error)

	// FindByEmail lists agreements for a user email, most recent first.
	FindByEmail(ctx context.Context, email string) ([]*entity.Agreement, error)

	// FindAll lists every agreement, most recent first.
	FindAll(ctx context.Context) ([]*entity.Agreement, error)

	// UpdateStatus sets the status of one agreement and returns the
	// modified count. Returns ErrInvalidID for malformed ids.
	UpdateStatus(ctx context.Context, id string, status entity.AgreementStatus) (int64, error)

	// MarkPaid flips an agreement to paid only if it is not already paid,
	// returning the modified count. A zero count means the agreement is
	// missing or already paid; no distinction is made between the two.
	MarkPaid(ctx context.Context, id string) (int64, error)

	// Delete removes one agreement and returns the deleted count.
	// Returns ErrInvalidID for malformed ids.
	Delete(ctx context.Context, id string) (int64, error)
}
