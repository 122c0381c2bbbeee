package catalog

import (
	"learnhub/internal/cerrors"
	"learnhub/internal/models"
)

// The catalog is fixed for the process lifetime: no persistence, no mutation.
var courses = []*models.Course{
	{
		ID:          1,
		Title:       "Introduction to Go",
		Description: "Build your first services in Go, from syntax basics through interfaces, error handling, and the standard library toolchain.",
		Instructor:  "Sarah Chen",
		Rating:      4.8,
		Lessons:     24,
		Price:       "$49.99",
		Category:    "Programming",
		ImageURL:    "https://images.learnhub.dev/courses/intro-to-go.jpg",
		VideoURL:    "https://www.youtube.com/embed/YS4e4q9oBaU",
	},
	{
		ID:          2,
		Title:       "Modern Web Design",
		Description: "Design responsive, accessible interfaces with a practical workflow covering layout, typography, and color systems.",
		Instructor:  "Miguel Alvarez",
		Rating:      4.6,
		Lessons:     18,
		Price:       "$39.99",
		Category:    "Design",
		ImageURL:    "https://images.learnhub.dev/courses/modern-web-design.jpg",
		VideoURL:    "https://www.youtube.com/embed/XsePXFbalYY",
	},
	{
		ID:          3,
		Title:       "Data Analysis with SQL",
		Description: "Go from SELECT statements to window functions and query tuning against realistic datasets.",
		Instructor:  "Priya Natarajan",
		Rating:      4.9,
		Lessons:     30,
		Price:       "$59.99",
		Category:    "Data",
		ImageURL:    "https://images.learnhub.dev/courses/sql-analysis.jpg",
		VideoURL:    "https://www.youtube.com/embed/HXV3zeQKqGY",
	},
	{
		ID:          4,
		Title:       "Distributed Systems Fundamentals",
		Description: "Consensus, replication, and failure models explained with worked examples and small lab exercises.",
		Instructor:  "James Okafor",
		Rating:      4.7,
		Lessons:     22,
		Price:       "$79.99",
		Category:    "Programming",
		ImageURL:    "https://images.learnhub.dev/courses/distributed-systems.jpg",
		VideoURL:    "https://www.youtube.com/embed/UEAMfLPZZhE",
	},
	{
		ID:          5,
		Title:       "Product Management Essentials",
		Description: "Discovery, prioritization, and shipping: the core loop of product work for new PMs.",
		Instructor:  "Hannah Fischer",
		Rating:      4.4,
		Lessons:     15,
		Price:       "$34.99",
		Category:    "Business",
		ImageURL:    "https://images.learnhub.dev/courses/product-management.jpg",
		VideoURL:    "https://www.youtube.com/embed/J4VnaBJwV0A",
	},
	{
		ID:          6,
		Title:       "Machine Learning Foundations",
		Description: "Linear models through neural networks, with the math kept honest and the code kept small.",
		Instructor:  "Daniel Osei",
		Rating:      4.8,
		Lessons:     28,
		Price:       "$89.99",
		Category:    "Data",
		ImageURL:    "https://images.learnhub.dev/courses/ml-foundations.jpg",
		VideoURL:    "https://www.youtube.com/embed/i_LwzRVP7bg",
	},
	{
		ID:          7,
		Title:       "Cloud Infrastructure on GCP",
		Description: "Networks, IAM, and managed services: how production workloads actually get deployed.",
		Instructor:  "Lucia Romano",
		Rating:      4.5,
		Lessons:     20,
		Price:       "$54.99",
		Category:    "Infrastructure",
		ImageURL:    "https://images.learnhub.dev/courses/gcp-infra.jpg",
		VideoURL:    "https://www.youtube.com/embed/4D3X6Xl5c_Y",
	},
	{
		ID:          8,
		Title:       "Technical Writing for Engineers",
		Description: "Design docs, runbooks, and postmortems that people actually read.",
		Instructor:  "Tom Becker",
		Rating:      4.3,
		Lessons:     12,
		Price:       "$24.99",
		Category:    "Communication",
		ImageURL:    "https://images.learnhub.dev/courses/technical-writing.jpg",
		VideoURL:    "https://www.youtube.com/embed/vtIzMaLkCaM",
	},
}

// List returns the fixed, ordered list of catalog courses.
func List() []*models.Course {
	out := make([]*models.Course, len(courses))
	copy(out, courses)
	return out
}

// Get returns the catalog course with the given ID.
func Get(id int) (*models.Course, error) {
	for _, c := range courses {
		if c.ID == id {
			return c, nil
		}
	}

	return nil, cerrors.CourseNotFoundError
}
