package comments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firebaseSDK "firebase.google.com/go"
	"github.com/golang/glog"
	"github.com/mitchellh/mapstructure"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"learnhub/internal/models"
)

// Repository encapsulates the logic to access course comments in the external
// document store.
type Repository interface {
	// Subscribe attaches a live listener scoped to the given course. deliver
	// receives the filtered, timestamp-ordered comment set on every remote
	// change until the subscription is released.
	Subscribe(ctx context.Context, courseID int, deliver func([]models.Comment)) (Subscription, error)
	// Append writes a new comment. The write is reflected back through the
	// live subscription, never inserted locally.
	Append(ctx context.Context, c *models.CreateCommentRequest) error
}

// Subscription is a handle to a live comment listener.
type Subscription interface {
	// Unsubscribe releases the listener. It blocks until the listener has
	// fully stopped, so a replacement subscription never overlaps the old one.
	Unsubscribe()
}

type firestoreSubscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *firestoreSubscription) Unsubscribe() {
	s.cancel()
	<-s.done
}

// firebaseRepository queries and persists comments in Firestore.
type firebaseRepository struct {
	firestoreClient *firestore.Client
	collectionPath  string
}

// NewFirebaseRepository creates a comment repository with Firestore as the
// backing store, namespaced by application ID.
func NewFirebaseRepository(ctx context.Context, app *firebaseSDK.App, appID string) (Repository, error) {
	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("Firestore client error: %v\n", err)
	}

	return &firebaseRepository{
		firestoreClient: firestoreClient,
		collectionPath:  models.CommentsCollectionPath(appID),
	}, nil
}

func (r *firebaseRepository) Subscribe(ctx context.Context, courseID int, deliver func([]models.Comment)) (Subscription, error) {
	listenerCtx, cancel := context.WithCancel(ctx)
	sub := &firestoreSubscription{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(sub.done)

		if err := r.listen(listenerCtx, courseID, deliver); err != nil {
			// Last-known state is retained upstream; no automatic retry.
			glog.Errorf("comments listener for course %d stopped: %v", courseID, err)
		}
	}()

	return sub, nil
}

// listen streams the full namespace collection. No server-side predicate is
// used: an equality filter combined with a timestamp ordering would require a
// composite index, so the snapshot is filtered and sorted locally.
func (r *firebaseRepository) listen(ctx context.Context, courseID int, deliver func([]models.Comment)) error {
	it := r.firestoreClient.Collection(r.collectionPath).Snapshots(ctx)
	defer it.Stop()

	for {
		snap, err := it.Next()
		// Canceled/DeadlineExceeded will be returned when ctx is released.
		if status.Code(err) == codes.Canceled || status.Code(err) == codes.DeadlineExceeded {
			return nil
		}
		if err != nil {
			return fmt.Errorf("Snapshots.Next: %v", err)
		}
		if snap == nil {
			continue
		}

		all := make([]models.Comment, 0)
		for {
			doc, err := snap.Documents.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return fmt.Errorf("Documents.Next: %v", err)
			}

			var comment models.Comment
			if err := mapstructure.Decode(doc.Data(), &comment); err != nil {
				glog.Warningf("skipping malformed comment %v: %v", doc.Ref.ID, err)
				continue
			}

			comment.ID = doc.Ref.ID
			all = append(all, comment)
		}

		deliver(ForCourse(all, courseID))
	}
}

func (r *firebaseRepository) Append(ctx context.Context, c *models.CreateCommentRequest) error {
	if err := Validate(c); err != nil {
		return err
	}

	_, _, err := r.firestoreClient.Collection(r.collectionPath).Add(ctx, map[string]interface{}{
		"courseId":  c.CourseID,
		"authorId":  c.AuthorID,
		"text":      strings.TrimSpace(c.Text),
		"timestamp": time.Now(),
	})
	if err != nil {
		return fmt.Errorf("error creating comment: %v", err)
	}

	return nil
}
