package planner

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/wanderroute/go-itinerary-planner/internal/api"
	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

// Handler exposes the planning engine over HTTP.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// CreatePlan handles POST /itinerary/plan.
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlannerHandler").Start(r.Context(), "CreatePlan")
	defer span.End()

	var req types.PlanRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.service.ResolveAndPlan(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "plan request failed")
		switch {
		case errors.Is(err, types.ErrInvalidRequest):
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, types.ErrNoCandidates):
			api.ErrorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		default:
			h.logger.ErrorContext(ctx, "Plan request failed", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusInternalServerError, "failed to create plan")
		}
		return
	}

	span.SetStatus(codes.Ok, "plan created")
	api.WriteJSONResponse(w, r, http.StatusOK, plan)
}
