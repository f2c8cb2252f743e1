// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"bmshub/internal/domain/entity"
)

// SubmitAgreementInput defines the data required to request a rental
// agreement for an apartment.
type SubmitAgreementInput struct {
	UserEmail   string
	UserName    string
	ApartmentNo string
	Floor       string
	Block       string
	Rent        int64
}

// AgreementUsecase is the authoritative owner of the agreement lifecycle:
// every transition of an agreement's status, and every role side effect it
// implies, goes through exactly one method here.
type AgreementUsecase interface {
	// Submit creates a pending agreement. A pending agreement already
	// covering the same (user, apartment) pair yields a conflict.
	Submit(ctx context.Context, input *SubmitAgreementInput) (*entity.Agreement, error)

	// Accept transitions pending -> checked and promotes the agreement's
	// stored user email to the member role. A missing agreement or user
	// skips the role side effect without failing the request.
	Accept(ctx context.Context, id string) error

	// Reject transitions pending -> checked with no role side effect.
	Reject(ctx context.Context, id string) error

	// Get fetches one agreement by id.
	Get(ctx context.Context, id string) (*entity.Agreement, error)

	// ListByEmail lists a user's agreements, most recent first.
	ListByEmail(ctx context.Context, email string) ([]*entity.Agreement, error)

	// ListAll lists every agreement, most recent first.
	ListAll(ctx context.Context) ([]*entity.Agreement, error)

	// Delete removes one agreement by id.
	Delete(ctx context.Context, id string) error
}
