package router

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"learnhub/internal/app"
)

func EnrollmentRoutes(a *app.App) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", listEnrollmentsHandler(a))
	router.Post("/{courseID}/complete", markCompleteHandler(a))
	return router
}

// GET: /
func listEnrollmentsHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, a.Enrollments())
	}
}

// POST: /{courseID}/complete
func markCompleteHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID, err := strconv.Atoi(chi.URLParam(r, "courseID"))
		if err != nil {
			http.Error(w, "course ID must be an integer", http.StatusBadRequest)
			return
		}

		// Unknown IDs are a no-op by design.
		a.MarkLessonComplete(courseID)

		render.JSON(w, r, a.Enrollments())
	}
}
