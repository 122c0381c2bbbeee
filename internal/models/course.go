package models

// Course is a single catalog entry. The catalog is fixed at startup and its
// courses are never mutated.
type Course struct {
	ID          int     `json:"id" mapstructure:"id"`
	Title       string  `json:"title" mapstructure:"title"`
	Description string  `json:"description" mapstructure:"description"`
	Instructor  string  `json:"instructor" mapstructure:"instructor"`
	Rating      float64 `json:"rating" mapstructure:"rating"`
	Lessons     int     `json:"lessons" mapstructure:"lessons"`
	Price       string  `json:"price" mapstructure:"price"`
	Category    string  `json:"category" mapstructure:"category"`
	ImageURL    string  `json:"imageUrl" mapstructure:"imageUrl"`
	VideoURL    string  `json:"videoUrl" mapstructure:"videoUrl"`
}

// EnrolledCourse pairs a catalog course with mock progress on the dashboard.
type EnrolledCourse struct {
	CourseID int `json:"courseId" mapstructure:"courseId"`
	Progress int `json:"progress" mapstructure:"progress"`
}
