// Package payment contains the Stripe-backed payment gateway client.
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"bmshub/internal/domain/service"
	"bmshub/internal/errors"
)

// stripeGateway implements service.PaymentGateway against the Stripe API.
// The API client is scoped to this struct instead of the SDK's package
// global key.
type stripeGateway struct {
	api *client.API
}

// NewStripeGateway creates a payment gateway client with the given secret key.
func NewStripeGateway(secretKey string) service.PaymentGateway {
	api := &client.API{}
	api.Init(secretKey, nil)

	return &stripeGateway{api: api}
}

// CreateIntent creates a card payment intent and returns its client secret.
// It performs no settlement verification; recording the payment afterwards
// is a separate, client-triggered call.
func (g *stripeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amount),
		Currency:           stripe.String(currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create payment intent")
	}

	return intent.ClientSecret, nil
}
