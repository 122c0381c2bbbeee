package catalog

import (
	"reflect"
	"testing"
)

func TestListIsDeterministic(t *testing.T) {
	first := List()
	second := List()

	if len(first) == 0 {
		t.Fatal("catalog is empty")
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("List returned different results across calls")
	}
}

func TestCourseIDsAreUnique(t *testing.T) {
	seen := make(map[int]bool)
	for _, c := range List() {
		if seen[c.ID] {
			t.Errorf("duplicate course ID %d", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestGet(t *testing.T) {
	for _, want := range List() {
		got, err := Get(want.ID)
		if err != nil {
			t.Fatalf("Get(%d): %v", want.ID, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Get(%d) = %+v, want %+v", want.ID, got, want)
		}
	}
}

func TestGetUnknownID(t *testing.T) {
	if _, err := Get(999); err == nil {
		t.Error("expected an error for an unknown course ID")
	}
}

func TestCourseFields(t *testing.T) {
	for _, c := range List() {
		if c.Title == "" || c.Instructor == "" || c.Description == "" {
			t.Errorf("course %d is missing display fields", c.ID)
		}
		if c.VideoURL == "" {
			t.Errorf("course %d has no video URL", c.ID)
		}
		if c.Rating < 0 || c.Rating > 5 {
			t.Errorf("course %d rating %v out of range", c.ID, c.Rating)
		}
		if c.Lessons <= 0 {
			t.Errorf("course %d has no lessons", c.ID)
		}
	}
}
