package app

import (
	"context"
	"sync"

	"github.com/golang/glog"

	"learnhub/internal/catalog"
	"learnhub/internal/comments"
	"learnhub/internal/enrollment"
	"learnhub/internal/models"
	"learnhub/internal/session"
	"learnhub/internal/viewstate"
)

// App is the application state object. Every user intent and every external
// delivery flows through its methods; nothing mutates shared state from
// anywhere else.
type App struct {
	bootstrapper *session.Bootstrapper
	comments     comments.Repository
	enrollments  *enrollment.Tracker
	views        *viewstate.Router

	ctx context.Context

	// subMu serializes subscription changes so at most one comment listener
	// is live at any instant.
	subMu     sync.Mutex
	sub       comments.Subscription
	subCourse int

	// mu guards the delivered thread; snapshot deliveries are marshaled
	// through it before touching shared state.
	mu     sync.Mutex
	gen    int
	thread []models.Comment

	authSub *session.Subscription
}

// New wires the components together. repo may be nil when the document store
// is not configured; the discussion thread then stays empty and posting
// no-ops.
func New(ctx context.Context, bootstrapper *session.Bootstrapper, repo comments.Repository, tracker *enrollment.Tracker) *App {
	a := &App{
		bootstrapper: bootstrapper,
		comments:     repo,
		enrollments:  tracker,
		views:        viewstate.NewRouter(),
		ctx:          ctx,
	}

	// Comment subscriptions must not activate before the session resolves.
	a.authSub = bootstrapper.Subscribe(func(s models.Session) {
		if s.Ready {
			a.refreshSubscription()
		}
	})

	return a
}

// Close releases the auth registration and any live comment subscription.
func (a *App) Close() {
	a.authSub.Unsubscribe()

	a.subMu.Lock()
	defer a.subMu.Unlock()

	if a.sub != nil {
		a.sub.Unsubscribe()
		a.sub = nil
	}
	a.subCourse = 0
}

// Navigate handles the navigation intent. courseID is required for the
// details page and ignored elsewhere.
func (a *App) Navigate(page models.Page, courseID int) error {
	var course *models.Course
	if page == models.PageDetails {
		c, err := catalog.Get(courseID)
		if err != nil {
			return err
		}
		course = c
	}

	if err := a.views.Navigate(page, course); err != nil {
		return err
	}

	a.refreshSubscription()
	return nil
}

// PostComment handles the post-comment intent. Validation failures are
// returned so the caller can no-op; the write itself is fire-and-forget, with
// the live subscription reflecting it back.
func (a *App) PostComment(text string) error {
	sess := a.bootstrapper.Session()
	view := a.views.Current()

	req := &models.CreateCommentRequest{Text: text, AuthorID: sess.UserID}
	if view.SelectedCourse != nil {
		req.CourseID = view.SelectedCourse.ID
	}

	if err := comments.Validate(req); err != nil {
		glog.Warningf("dropping comment: %v", err)
		return err
	}

	if a.comments == nil {
		glog.Warning("dropping comment: document store is not configured")
		return nil
	}

	go func() {
		if err := a.comments.Append(a.ctx, req); err != nil {
			glog.Errorf("error posting comment: %v", err)
		}
	}()

	return nil
}

// MarkLessonComplete handles the mark-progress intent.
func (a *App) MarkLessonComplete(courseID int) {
	a.enrollments.MarkComplete(courseID)
}

// Enrollments returns the current enrollment list.
func (a *App) Enrollments() []models.EnrolledCourse {
	return a.enrollments.List()
}

// refreshSubscription reconciles the live comment subscription with the
// current session and router state: subscribed to exactly the selected course
// while the details page is active on a resolved session, released otherwise.
// The old subscription is fully released before a new one attaches.
func (a *App) refreshSubscription() {
	a.subMu.Lock()
	defer a.subMu.Unlock()

	sess := a.bootstrapper.Session()
	view := a.views.Current()

	want := 0
	if sess.Ready && view.Page == models.PageDetails && view.SelectedCourse != nil {
		want = view.SelectedCourse.ID
	}

	if want == a.subCourse {
		return
	}

	if a.sub != nil {
		a.sub.Unsubscribe()
		a.sub = nil
	}
	a.subCourse = 0

	a.mu.Lock()
	a.gen++
	gen := a.gen
	a.thread = nil
	a.mu.Unlock()

	if want == 0 || a.comments == nil {
		return
	}

	sub, err := a.comments.Subscribe(a.ctx, want, func(thread []models.Comment) {
		a.mu.Lock()
		defer a.mu.Unlock()

		// A release may have raced this delivery; stale snapshots are dropped.
		if a.gen == gen {
			a.thread = thread
		}
	})
	if err != nil {
		glog.Errorf("could not subscribe to comments for course %d: %v", want, err)
		return
	}

	a.sub = sub
	a.subCourse = want
}
