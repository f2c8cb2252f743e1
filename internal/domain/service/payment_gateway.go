package service

import "context"

// PaymentGateway creates a charge intent for an amount in the smallest
// currency unit and returns the opaque client secret used by the
// client-side flow to finalize the card charge.
//
// The gateway never writes to the payment collection; payment records are
// written by a separate client-triggered call once the charge is believed
// to have succeeded.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (string, error)
}
