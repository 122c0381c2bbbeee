package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"learnhub/internal/app"
	"learnhub/internal/cerrors"
	"learnhub/internal/models"
)

func StateRoutes(a *app.App) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/", getStateHandler(a))
	return router
}

func NavigateRoutes(a *app.App) *chi.Mux {
	router := chi.NewRouter()
	router.Post("/", navigateHandler(a))
	return router
}

// GET: /
func getStateHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, a.Render())
	}
}

// POST: /
func navigateHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.NavigateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := a.Navigate(req.Page, req.CourseID); err != nil {
			if err == cerrors.CourseNotFoundError {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		render.JSON(w, r, a.Render())
	}
}
