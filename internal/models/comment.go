package models

import (
	"fmt"
	"time"
)

// Comments live under a namespaced public collection so multiple application
// instances can share one Firestore project.
const commentsCollectionFormat = "artifacts/%s/public/data/course_comments"

// CommentsCollectionPath returns the comment collection path for an app ID.
func CommentsCollectionPath(appID string) string {
	return fmt.Sprintf(commentsCollectionFormat, appID)
}

// Comment is a single discussion entry. Comments are created through Append
// and never mutated or deleted; the store owns them and the client holds a
// read-only snapshot.
type Comment struct {
	ID        string    `json:"id" mapstructure:"id"`
	CourseID  int       `json:"courseId" mapstructure:"courseId"`
	AuthorID  string    `json:"authorId" mapstructure:"authorId"`
	Text      string    `json:"text" mapstructure:"text"`
	Timestamp time.Time `json:"timestamp" mapstructure:"timestamp"`
}

// CreateCommentRequest is the parameter struct for the Append operation.
type CreateCommentRequest struct {
	CourseID int    `json:"courseId"`
	AuthorID string `json:"authorId,omitempty"`
	Text     string `json:"text"`
}
