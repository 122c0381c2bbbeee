package main

import (
	"context"
	"log"

	"learnhub/internal/app"
	"learnhub/internal/comments"
	"learnhub/internal/config"
	"learnhub/internal/enrollment"
	"learnhub/internal/firebase"
	"learnhub/internal/server"
	"learnhub/internal/session"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	// Firebase is optional: without it the app still serves the catalog and
	// dashboard, with comment posting disabled and an empty thread.
	var authClient session.Client
	var commentRepo comments.Repository

	fbApp, err := firebase.Initialize(ctx, cfg.CredentialsFile)
	if err != nil {
		log.Printf("Firebase unavailable, continuing without auth or comments: %v", err)
	} else {
		authClient, err = session.NewFirebaseClient(ctx, fbApp)
		if err != nil {
			log.Printf("Auth unavailable, continuing without a session: %v", err)
		}

		commentRepo, err = comments.NewFirebaseRepository(ctx, fbApp, cfg.AppID)
		if err != nil {
			log.Printf("Firestore unavailable, continuing without comments: %v", err)
		}
	}

	bootstrapper := session.NewBootstrapper(authClient, cfg.InitialAuthToken)
	a := app.New(ctx, bootstrapper, commentRepo, enrollment.NewTracker(enrollment.DefaultSeed()))
	defer a.Close()

	go bootstrapper.Start(ctx)

	server.Start(a, cfg)
}
