package usecase

import (
	"context"

	"bmshub/internal/domain/entity"
)

// RecordPaymentInput defines the data required to record a settled payment
// against an agreement.
type RecordPaymentInput struct {
	AgreementID   string
	UserEmail     string
	Amount        int64
	Month         string
	TransactionID string
	PaymentMethod string
}

// PaymentUsecase handles the payment leg of the agreement lifecycle plus
// gateway intent creation.
type PaymentUsecase interface {
	// Record flips the referenced agreement to paid and inserts the payment
	// document, in that order. If the agreement is missing or already paid
	// the flip matches nothing and no payment document is written.
	Record(ctx context.Context, input *RecordPaymentInput) (string, error)

	// History lists a user's payments, newest first.
	History(ctx context.Context, email string) ([]*entity.Payment, error)

	// CreateIntent obtains a gateway client secret for the given amount in
	// the smallest currency unit.
	CreateIntent(ctx context.Context, amount int64) (string, error)
}
