package viewstate

import (
	"sync"

	"learnhub/internal/cerrors"
	"learnhub/internal/models"
)

// Router tracks which of the three screens is active and which course is
// selected. Direct replace semantics only: no history stack.
type Router struct {
	mu       sync.RWMutex
	page     models.Page
	selected *models.Course
}

// NewRouter creates a Router showing the catalog.
func NewRouter() *Router {
	return &Router{page: models.PageCatalog}
}

// Navigate switches the active page. The details page requires a course; on
// error the state is left unchanged. Navigating to catalog or dashboard does
// not clear the selection, it is only ever replaced.
func (r *Router) Navigate(page models.Page, course *models.Course) error {
	switch page {
	case models.PageCatalog, models.PageDashboard:
	case models.PageDetails:
		if course == nil {
			return cerrors.CourseRequiredError
		}
	default:
		return cerrors.InvalidPageError
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.page = page
	if course != nil {
		r.selected = course
	}

	return nil
}

// Current returns the router's state.
func (r *Router) Current() models.ViewState {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return models.ViewState{Page: r.page, SelectedCourse: r.selected}
}
