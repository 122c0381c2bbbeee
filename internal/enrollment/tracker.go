package enrollment

import (
	"sync"

	"learnhub/internal/models"
)

const (
	// ProgressIncrement is added per completed lesson.
	ProgressIncrement = 10
	// ProgressMax caps course progress.
	ProgressMax = 100
)

// Tracker holds the mock enrollment list. Entries are seeded at startup and
// never added or removed; the only mutation is MarkComplete.
type Tracker struct {
	mu      sync.RWMutex
	entries []models.EnrolledCourse
}

// NewTracker creates a Tracker from a seed list.
func NewTracker(seed []models.EnrolledCourse) *Tracker {
	entries := make([]models.EnrolledCourse, len(seed))
	copy(entries, seed)

	return &Tracker{entries: entries}
}

// DefaultSeed returns the enrollment list the dashboard starts with.
func DefaultSeed() []models.EnrolledCourse {
	return []models.EnrolledCourse{
		{CourseID: 1, Progress: 30},
		{CourseID: 3, Progress: 70},
	}
}

// MarkComplete advances the matching entry by ProgressIncrement, capped at
// ProgressMax. An unknown course ID is a no-op.
func (t *Tracker) MarkComplete(courseID int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.entries {
		if t.entries[i].CourseID != courseID {
			continue
		}

		progress := t.entries[i].Progress + ProgressIncrement
		if progress > ProgressMax {
			progress = ProgressMax
		}
		t.entries[i].Progress = progress
		return
	}
}

// List returns a copy of the enrollment list.
func (t *Tracker) List() []models.EnrolledCourse {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.EnrolledCourse, len(t.entries))
	copy(out, t.entries)
	return out
}
