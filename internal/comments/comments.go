package comments

import (
	"sort"
	"strings"

	"learnhub/internal/cerrors"
	"learnhub/internal/models"
)

// ForCourse filters a full-collection snapshot down to one course and orders
// it ascending by timestamp. Comments without a timestamp carry the zero value
// and therefore sort earliest. The input slice is not modified.
func ForCourse(all []models.Comment, courseID int) []models.Comment {
	filtered := make([]models.Comment, 0, len(all))
	for _, c := range all {
		if c.CourseID == courseID {
			filtered = append(filtered, c)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Timestamp.Before(filtered[j].Timestamp)
	})

	return filtered
}

// Validate checks a CreateCommentRequest struct for errors.
func Validate(c *models.CreateCommentRequest) error {
	if strings.TrimSpace(c.Text) == "" {
		return cerrors.EmptyCommentError
	}
	if c.AuthorID == "" {
		return cerrors.NoSessionError
	}
	if c.CourseID <= 0 {
		return cerrors.NoCourseError
	}

	return nil
}
