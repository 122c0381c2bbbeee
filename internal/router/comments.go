package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"learnhub/internal/app"
)

func CommentRoutes(a *app.App) *chi.Mux {
	router := chi.NewRouter()
	router.Post("/", postCommentHandler(a))
	return router
}

// POST: /
//
// Posts a comment to the currently selected course. Validation failures are a
// silent no-op (204) so the client keeps the input for correction; the write
// itself is fire-and-forget.
func postCommentHandler(a *app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if err := a.PostComment(req.Text); err != nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("accepted"))
	}
}
