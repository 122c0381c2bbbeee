package app

import (
	"time"

	"learnhub/internal/catalog"
	"learnhub/internal/models"
)

// ViewModel is the rendered application state: the loading indicator while the
// session is unresolved, afterwards exactly one of the three pages.
type ViewModel struct {
	Loading   bool           `json:"loading"`
	Session   models.Session `json:"session"`
	Catalog   *CatalogView   `json:"catalog,omitempty"`
	Details   *DetailsView   `json:"details,omitempty"`
	Dashboard *DashboardView `json:"dashboard,omitempty"`
}

type CatalogView struct {
	Courses []*models.Course `json:"courses"`
}

type DetailsView struct {
	Course     *models.Course `json:"course"`
	EmbedURL   string         `json:"embedUrl"`
	Comments   []CommentView  `json:"comments"`
	CanComment bool           `json:"canComment"`
}

type CommentView struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type DashboardView struct {
	Enrollments []DashboardEntry `json:"enrollments"`
}

type DashboardEntry struct {
	Course   *models.Course `json:"course"`
	Progress int            `json:"progress"`
}

// Render derives the current view model. It never mutates state.
func (a *App) Render() *ViewModel {
	sess := a.bootstrapper.Session()
	if !sess.Ready {
		return &ViewModel{Loading: true}
	}

	vm := &ViewModel{Session: sess}
	view := a.views.Current()

	switch view.Page {
	case models.PageDetails:
		vm.Details = a.renderDetails(sess, view)
	case models.PageDashboard:
		vm.Dashboard = a.renderDashboard()
	default:
		vm.Catalog = &CatalogView{Courses: catalog.List()}
	}

	return vm
}

func (a *App) renderDetails(sess models.Session, view models.ViewState) *DetailsView {
	if view.SelectedCourse == nil {
		// Router invariant violated; degrade to an empty details pane.
		return &DetailsView{Comments: []CommentView{}}
	}

	a.mu.Lock()
	thread := a.thread
	a.mu.Unlock()

	commentViews := make([]CommentView, 0, len(thread))
	for _, c := range thread {
		commentViews = append(commentViews, CommentView{
			ID:        c.ID,
			Author:    shortAuthor(c.AuthorID),
			Text:      c.Text,
			Timestamp: c.Timestamp,
		})
	}

	return &DetailsView{
		Course:     view.SelectedCourse,
		EmbedURL:   view.SelectedCourse.VideoURL,
		Comments:   commentViews,
		CanComment: sess.UserID != "",
	}
}

func (a *App) renderDashboard() *DashboardView {
	entries := make([]DashboardEntry, 0)
	for _, e := range a.enrollments.List() {
		course, err := catalog.Get(e.CourseID)
		if err != nil {
			continue
		}
		entries = append(entries, DashboardEntry{Course: course, Progress: e.Progress})
	}

	return &DashboardView{Enrollments: entries}
}

// shortAuthor truncates an opaque user ID for display.
func shortAuthor(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
