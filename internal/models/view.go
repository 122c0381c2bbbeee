package models

// Page identifies one of the three screens.
type Page string

const (
	PageCatalog   Page = "catalog"
	PageDetails   Page = "details"
	PageDashboard Page = "dashboard"
)

// ViewState is the router's current state. SelectedCourse is non-nil whenever
// Page is PageDetails; it is only ever replaced, never cleared.
type ViewState struct {
	Page           Page    `json:"page"`
	SelectedCourse *Course `json:"selectedCourse,omitempty"`
}

// NavigateRequest is the parameter struct for the Navigate intent. CourseID is
// required for the details page and ignored elsewhere.
type NavigateRequest struct {
	Page     Page `json:"page"`
	CourseID int  `json:"courseId,omitempty"`
}
