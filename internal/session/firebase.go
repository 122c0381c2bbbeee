package session

import (
	"context"
	"fmt"

	firebaseSDK "firebase.google.com/go"
	firebaseAuth "firebase.google.com/go/auth"
)

// firebaseClient implements Client on top of the Firebase Admin SDK.
type firebaseClient struct {
	authClient *firebaseAuth.Client
}

// NewFirebaseClient creates a Client backed by Firebase Auth.
func NewFirebaseClient(ctx context.Context, app *firebaseSDK.App) (Client, error) {
	authClient, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("Auth client error: %v\n", err)
	}

	return &firebaseClient{authClient: authClient}, nil
}

func (c *firebaseClient) SignInWithToken(ctx context.Context, token string) (string, error) {
	decoded, err := c.authClient.VerifyIDToken(ctx, token)
	if err != nil {
		return "", fmt.Errorf("error verifying token: %v\n", err)
	}

	return decoded.UID, nil
}

// SignInAnonymously creates a provider-less user record, the Admin SDK analog
// of client-side anonymous sign-in.
func (c *firebaseClient) SignInAnonymously(ctx context.Context) (string, error) {
	fbUser, err := c.authClient.CreateUser(ctx, &firebaseAuth.UserToCreate{})
	if err != nil {
		return "", fmt.Errorf("error creating anonymous user: %v\n", err)
	}

	return fbUser.UID, nil
}
