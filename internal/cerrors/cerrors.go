package cerrors

import "errors"

var (
	// Catalog errors
	CourseNotFoundError = errors.New("course not found")

	// Comment errors
	EmptyCommentError = errors.New("comment text must not be empty")
	NoSessionError    = errors.New("no authenticated session")
	NoCourseError     = errors.New("no course selected")

	// Navigation errors
	InvalidPageError    = errors.New("unknown page")
	CourseRequiredError = errors.New("the details page requires a course")
)
