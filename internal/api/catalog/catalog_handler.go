package catalog

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/wanderroute/go-itinerary-planner/internal/api"
)

// Handler exposes read-only catalog listings.
type Handler struct {
	repo   Repository
	logger *slog.Logger
}

func NewHandler(repo Repository, logger *slog.Logger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

// ListPOIs handles GET /pois.
func (h *Handler) ListPOIs(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListPOIs")
	defer span.End()

	pois := h.repo.AllPOIs()
	span.SetStatus(codes.Ok, "catalog listed")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"count": len(pois),
		"pois":  pois,
	})
}

// ListRoutes handles GET /routes.
func (h *Handler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("CatalogHandler").Start(r.Context(), "ListRoutes")
	defer span.End()

	routes := h.repo.AllPresetRoutes()
	span.SetStatus(codes.Ok, "routes listed")
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"count":  len(routes),
		"routes": routes,
	})
}
