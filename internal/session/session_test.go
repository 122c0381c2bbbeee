package session

import (
	"context"
	"errors"
	"testing"

	"learnhub/internal/models"
)

type fakeClient struct {
	tokenUID  string
	tokenErr  error
	anonUID   string
	anonErr   error
	tokenCall int
	anonCall  int
}

func (c *fakeClient) SignInWithToken(ctx context.Context, token string) (string, error) {
	c.tokenCall++
	return c.tokenUID, c.tokenErr
}

func (c *fakeClient) SignInAnonymously(ctx context.Context) (string, error) {
	c.anonCall++
	return c.anonUID, c.anonErr
}

func TestStartWithoutClient(t *testing.T) {
	b := NewBootstrapper(nil, "")
	b.Start(context.Background())

	s := b.Session()
	if !s.Ready {
		t.Error("session should resolve ready without an auth client")
	}
	if s.UserID != "" {
		t.Errorf("user ID should stay unset, got %q", s.UserID)
	}
}

func TestStartWithToken(t *testing.T) {
	client := &fakeClient{tokenUID: "abc123"}
	b := NewBootstrapper(client, "some-token")
	b.Start(context.Background())

	s := b.Session()
	if !s.Ready || s.UserID != "abc123" {
		t.Errorf("unexpected session %+v", s)
	}
	if client.anonCall != 0 {
		t.Error("anonymous sign-in should not run when the token works")
	}
}

func TestTokenFailureFallsBackToAnonymous(t *testing.T) {
	client := &fakeClient{tokenErr: errors.New("bad token"), anonUID: "anon-1"}
	b := NewBootstrapper(client, "some-token")
	b.Start(context.Background())

	s := b.Session()
	if !s.Ready || s.UserID != "anon-1" {
		t.Errorf("unexpected session %+v", s)
	}
}

func TestSignInFailureStillResolvesReady(t *testing.T) {
	client := &fakeClient{anonErr: errors.New("network down")}
	b := NewBootstrapper(client, "")
	b.Start(context.Background())

	s := b.Session()
	if !s.Ready {
		t.Error("session should resolve ready even when sign-in fails")
	}
	if s.UserID != "" {
		t.Errorf("user ID should stay unset, got %q", s.UserID)
	}
}

func TestStartRunsOnce(t *testing.T) {
	client := &fakeClient{anonUID: "anon-1"}
	b := NewBootstrapper(client, "")
	b.Start(context.Background())
	b.Start(context.Background())

	if client.anonCall != 1 {
		t.Errorf("sign-in ran %d times, want 1", client.anonCall)
	}
}

func TestSubscribe(t *testing.T) {
	b := NewBootstrapper(&fakeClient{anonUID: "anon-1"}, "")

	var seen []models.Session
	sub := b.Subscribe(func(s models.Session) {
		seen = append(seen, s)
	})

	if len(seen) != 1 || seen[0].Ready {
		t.Fatalf("expected one initial not-ready notification, got %+v", seen)
	}

	b.Start(context.Background())
	if len(seen) != 2 || !seen[1].Ready || seen[1].UserID != "anon-1" {
		t.Fatalf("expected a resolved notification, got %+v", seen)
	}

	sub.Unsubscribe()
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	b := NewBootstrapper(&fakeClient{anonUID: "anon-1"}, "")

	calls := 0
	sub := b.Subscribe(func(models.Session) { calls++ })
	sub.Unsubscribe()

	b.Start(context.Background())
	if calls != 1 {
		t.Errorf("subscriber was notified %d times after unsubscribe, want 1 (the initial call)", calls)
	}
}
