package api

import (
	"embed"
	"net/http"
	"time"

	"leetdeck/internal/api/handler"
	"leetdeck/internal/api/middleware"
	"leetdeck/internal/common"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:embed openapi.yaml
var openAPISpec embed.FS

func NewRouter(
	submissionHandler *handler.SubmissionHandler,
	healthHandler *handler.HealthHandler,
	frontendHandler *handler.FrontendHandler,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(middleware.Recover)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// The form is meant to be embedded anywhere, so the CORS surface is
	// wide open and frame blocking is explicitly disabled.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.AllowFraming)

	r.Route("/api", func(api chi.Router) {
		healthHandler.RegisterRoutes(api)
		submissionHandler.RegisterRoutes(api)

		api.NotFound(func(w http.ResponseWriter, r *http.Request) {
			common.RespondWithError(w, http.StatusNotFound, "Not found")
		})
	})

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		data, err := openAPISpec.ReadFile("openapi.yaml")
		if err != nil {
			http.Error(w, "Spec not found", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/x-yaml")
		w.Write(data)
	})

	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/openapi.yaml"),
	))

	// Everything else is the single-page app.
	r.NotFound(frontendHandler.ServeSPA)

	return r
}
