package firebase

import (
	"context"
	"os"

	firebaseSDK "firebase.google.com/go"
	"google.golang.org/api/option"
)

// Initialize creates the Firebase App from a service account credentials file.
// Callers are expected to degrade on error rather than abort: the application
// must reach a renderable state even when Firebase is not configured.
func Initialize(ctx context.Context, credentialsFile string) (*firebaseSDK.App, error) {
	if _, err := os.Stat(credentialsFile); err != nil {
		return nil, err
	}

	opt := option.WithCredentialsFile(credentialsFile)
	return firebaseSDK.NewApp(ctx, nil, opt)
}
