package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/wanderroute/go-itinerary-planner/internal/api/catalog"
	"github.com/wanderroute/go-itinerary-planner/internal/api/planner"
)

// Config contains the handlers the router mounts.
type Config struct {
	PlannerHandler *planner.Handler
	CatalogHandler *catalog.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/itinerary/plan", cfg.PlannerHandler.CreatePlan)
		r.Get("/pois", cfg.CatalogHandler.ListPOIs)
		r.Get("/routes", cfg.CatalogHandler.ListRoutes)
	})

	return r
}
