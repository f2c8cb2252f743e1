// Package auth contains the Firebase-backed identity verifier.
package auth

import (
	"context"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"bmshub/internal/domain/service"
	"bmshub/internal/errors"
)

// firebaseVerifier implements service.TokenVerifier using the Firebase
// Admin SDK.
type firebaseVerifier struct {
	client *firebaseauth.Client
}

// NewFirebaseVerifier creates a token verifier backed by a Firebase project.
func NewFirebaseVerifier(ctx context.Context, projectID, credentialsPath string) (service.TokenVerifier, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firebase auth client")
	}

	return &firebaseVerifier{client: client}, nil
}

// Verify checks the ID token signature and expiry against the Firebase
// project and returns the verified principal.
func (v *firebaseVerifier) Verify(ctx context.Context, idToken string) (*service.Principal, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	email, _ := token.Claims["email"].(string)

	return &service.Principal{
		UID:    token.UID,
		Email:  email,
		Claims: token.Claims,
	}, nil
}
