package session

import (
	"context"
	"sync"

	"github.com/golang/glog"

	"learnhub/internal/models"
)

// Client is the surface this application consumes from the external auth
// provider. Both operations resolve to an opaque user ID.
type Client interface {
	// SignInWithToken adopts the identity carried by a token minted for this
	// app by the hosting environment.
	SignInWithToken(ctx context.Context, token string) (string, error)
	// SignInAnonymously establishes a session without credentials.
	SignInAnonymously(ctx context.Context) (string, error)
}

// Bootstrapper establishes the application's auth session exactly once per
// process lifetime and fans auth-state changes out to subscribers.
type Bootstrapper struct {
	client Client // nil when auth is not configured
	token  string

	mu          sync.RWMutex
	session     models.Session
	subscribers map[int]func(models.Session)
	nextSubID   int

	once sync.Once
}

// NewBootstrapper creates a Bootstrapper. client may be nil; the session then
// resolves ready with no user ID, which disables comment posting downstream.
func NewBootstrapper(client Client, customToken string) *Bootstrapper {
	return &Bootstrapper{
		client:      client,
		token:       customToken,
		subscribers: make(map[int]func(models.Session)),
	}
}

// Start performs the sign-in attempt. Readiness resolves whether or not the
// attempt succeeds, so the rest of the application never hangs on auth.
// Subsequent calls are no-ops.
func (b *Bootstrapper) Start(ctx context.Context) {
	b.once.Do(func() {
		userID := b.signIn(ctx)

		b.mu.Lock()
		b.session = models.Session{UserID: userID, Ready: true}
		resolved := b.session
		subs := make([]func(models.Session), 0, len(b.subscribers))
		for _, fn := range b.subscribers {
			subs = append(subs, fn)
		}
		b.mu.Unlock()

		for _, fn := range subs {
			fn(resolved)
		}
	})
}

func (b *Bootstrapper) signIn(ctx context.Context) string {
	if b.client == nil {
		glog.Warning("auth is not configured, continuing without a session")
		return ""
	}

	if b.token != "" {
		uid, err := b.client.SignInWithToken(ctx, b.token)
		if err == nil {
			return uid
		}
		glog.Errorf("token sign-in failed, falling back to anonymous: %v", err)
	}

	uid, err := b.client.SignInAnonymously(ctx)
	if err != nil {
		glog.Errorf("anonymous sign-in failed: %v", err)
		return ""
	}

	return uid
}

// Session returns the current session state.
func (b *Bootstrapper) Session() models.Session {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.session
}

// Subscription is a handle to an auth-state registration.
type Subscription struct {
	cancel func()
}

// Unsubscribe releases the registration.
func (s *Subscription) Unsubscribe() {
	s.cancel()
}

// Subscribe registers fn for auth-state changes. fn is invoked immediately
// with the current state, and again when the session resolves.
func (b *Bootstrapper) Subscribe(fn func(models.Session)) *Subscription {
	b.mu.Lock()
	id := b.nextSubID
	b.nextSubID++
	b.subscribers[id] = fn
	current := b.session
	b.mu.Unlock()

	fn(current)

	return &Subscription{cancel: func() {
		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}}
}
