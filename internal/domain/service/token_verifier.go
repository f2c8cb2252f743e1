// Package service defines interfaces for external collaborators the domain
// depends on but does not own.
package service

import "context"

// Principal is the verified identity produced by successful credential
// verification.
type Principal struct {
	UID    string
	Email  string
	Claims map[string]any
}

// TokenVerifier checks a bearer credential and returns the verified
// principal, or an error when the credential is missing, malformed, or
// rejected by the identity provider.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*Principal, error)
}
