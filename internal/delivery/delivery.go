// Package delivery defines the contract every transport (HTTP today)
// fulfills so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a serving endpoint with its own lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
