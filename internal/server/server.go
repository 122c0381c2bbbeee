package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"learnhub/internal/app"
	"learnhub/internal/config"
	"learnhub/internal/middleware"
	rtr "learnhub/internal/router"
)

func Routes(a *app.App) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		chimiddleware.Logger, // Log API Request Calls
		middleware.RequestID(),
	)

	router.Route("/", func(r chi.Router) {
		r.Mount("/", rtr.HealthRoutes())
	})

	router.Route("/v1", func(r chi.Router) {
		r.Mount("/state", rtr.StateRoutes(a))
		r.Mount("/navigate", rtr.NavigateRoutes(a))
		r.Mount("/courses", rtr.CourseRoutes())
		r.Mount("/comments", rtr.CommentRoutes(a))
		r.Mount("/enrollments", rtr.EnrollmentRoutes(a))
	})

	return router
}

func Start(a *app.App, cfg *config.ServerConfig) {
	router := Routes(a)
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedHeaders:   []string{"Content-Type"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowCredentials: true,
	})

	handler := c.Handler(router)
	log.Printf("Server is listening on port %v\n", cfg.Port)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", cfg.Port), handler))
}
