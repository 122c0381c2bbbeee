package comments

import (
	"reflect"
	"testing"
	"time"

	"learnhub/internal/cerrors"
	"learnhub/internal/models"
)

func comment(id string, courseID int, offset int) models.Comment {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return models.Comment{
		ID:        id,
		CourseID:  courseID,
		AuthorID:  "abc123",
		Text:      "comment " + id,
		Timestamp: base.Add(time.Duration(offset) * time.Minute),
	}
}

func TestForCourseOrdersByTimestamp(t *testing.T) {
	// Delivered out of order: T3, T1, T2.
	all := []models.Comment{
		comment("t3", 1, 3),
		comment("t1", 1, 1),
		comment("t2", 1, 2),
	}

	got := ForCourse(all, 1)

	var ids []string
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	if !reflect.DeepEqual(ids, []string{"t1", "t2", "t3"}) {
		t.Errorf("got order %v, want [t1 t2 t3]", ids)
	}
}

func TestForCourseExcludesOtherCourses(t *testing.T) {
	all := []models.Comment{
		comment("a", 1, 1),
		comment("b", 2, 0),
		comment("c", 1, 2),
	}

	got := ForCourse(all, 1)
	if len(got) != 2 {
		t.Fatalf("got %d comments, want 2", len(got))
	}
	for _, c := range got {
		if c.CourseID != 1 {
			t.Errorf("comment %s from course %d leaked in", c.ID, c.CourseID)
		}
	}
}

func TestForCourseMissingTimestampSortsEarliest(t *testing.T) {
	noTimestamp := models.Comment{ID: "zero", CourseID: 1, Text: "no timestamp"}
	all := []models.Comment{
		comment("a", 1, 1),
		noTimestamp,
	}

	got := ForCourse(all, 1)
	if got[0].ID != "zero" {
		t.Errorf("zero-timestamp comment should sort first, got %v", got[0].ID)
	}
}

func TestForCourseDoesNotMutateInput(t *testing.T) {
	all := []models.Comment{
		comment("t3", 1, 3),
		comment("t1", 1, 1),
	}
	snapshot := make([]models.Comment, len(all))
	copy(snapshot, all)

	ForCourse(all, 1)

	if !reflect.DeepEqual(all, snapshot) {
		t.Error("ForCourse mutated its input")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  *models.CreateCommentRequest
		want error
	}{
		{"valid", &models.CreateCommentRequest{CourseID: 1, AuthorID: "abc123", Text: "When does this start?"}, nil},
		{"empty text", &models.CreateCommentRequest{CourseID: 1, AuthorID: "abc123", Text: ""}, cerrors.EmptyCommentError},
		{"whitespace text", &models.CreateCommentRequest{CourseID: 1, AuthorID: "abc123", Text: "   \n\t"}, cerrors.EmptyCommentError},
		{"no author", &models.CreateCommentRequest{CourseID: 1, Text: "hello"}, cerrors.NoSessionError},
		{"no course", &models.CreateCommentRequest{AuthorID: "abc123", Text: "hello"}, cerrors.NoCourseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.req); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
