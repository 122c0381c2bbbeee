package router

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"learnhub/internal/catalog"
)

func CourseRoutes() *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", listCoursesHandler)
	router.Get("/{courseID}", getCourseHandler)
	return router
}

// GET: /
func listCoursesHandler(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, catalog.List())
}

// GET: /{courseID}
func getCourseHandler(w http.ResponseWriter, r *http.Request) {
	courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
	if err != nil {
		http.Error(w, "course ID must be an integer", http.StatusBadRequest)
		return
	}

	course, err := catalog.Get(courseID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	render.JSON(w, r, course)
}
