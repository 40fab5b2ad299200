package planner

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/wanderroute/go-itinerary-planner/app/observability/metrics"
	"github.com/wanderroute/go-itinerary-planner/internal/api/catalog"
	"github.com/wanderroute/go-itinerary-planner/internal/api/interests"
	"github.com/wanderroute/go-itinerary-planner/internal/geo"
	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

// TagExtractor pulls POI ids and tag keywords out of free text. The token
// list is opaque: ids and tags come back mixed and are separated by the
// interests disambiguator.
type TagExtractor interface {
	ExtractTags(ctx context.Context, freeText, personality string) ([]string, error)
}

// Geocoder resolves a POI name to coordinates. Returns types.ErrNotFound
// when the name cannot be resolved.
type Geocoder interface {
	Geocode(ctx context.Context, name string) (types.Coordinate, error)
}

// DirectionsProvider answers one multi-stop routing request.
type DirectionsProvider interface {
	Route(ctx context.Context, origin, dest types.Coordinate, waypoints []types.Coordinate, mode string) (*types.DirectionsResult, error)
}

// Service is the planning engine's contract.
type Service interface {
	// ResolveAndPlan resolves candidates per the request intent and builds
	// a full plan. Returns ErrInvalidRequest or ErrNoCandidates for bad
	// input; routing failures degrade to the fallback and never error.
	ResolveAndPlan(ctx context.Context, req types.PlanRequest) (*types.Plan, error)

	// BuildPlanDirect builds a plan for an explicit POI sequence using
	// planar transit estimates, without the live directions call.
	BuildPlanDirect(ctx context.Context, poiIDs []string, transportation string) (*types.Plan, error)
}

var _ Service = (*ServiceImpl)(nil)

// ServiceImpl holds the catalog plus the external collaborators. The
// directions provider, geocoder and extractor may all be nil; the engine
// degrades to fallback routing and keyword-only inference.
type ServiceImpl struct {
	logger     *slog.Logger
	catalog    catalog.Repository
	directions DirectionsProvider
	geocoder   Geocoder
	extractor  TagExtractor
}

func NewServiceImpl(repo catalog.Repository, directions DirectionsProvider, geocoder Geocoder, extractor TagExtractor, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:     logger,
		catalog:    repo,
		directions: directions,
		geocoder:   geocoder,
		extractor:  extractor,
	}
}

// Cumulative planar distance above which "auto" resolves to driving.
const autoDrivingThresholdM = 3000

func (s *ServiceImpl) ResolveAndPlan(ctx context.Context, req types.PlanRequest) (*types.Plan, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "ResolveAndPlan", trace.WithAttributes(
		attribute.String("plan.intent", string(req.Intent)),
		attribute.String("plan.time_budget", req.TimeBudget),
		attribute.String("plan.transportation", req.Transportation),
	))
	defer span.End()
	start := time.Now()

	l := s.logger.With(slog.String("method", "ResolveAndPlan"), slog.String("intent", string(req.Intent)))

	var (
		pois        []types.POI
		recs        []types.POI
		tags, zones []string
		err         error
	)
	switch req.Intent {
	case types.IntentPickPOIs:
		pois, recs, err = s.resolvePicked(ctx, req)
	case types.IntentPresetRoute:
		pois, err = s.resolvePreset(req)
	case types.IntentFreeText:
		pois, tags, zones, err = s.resolveFreeText(ctx, req)
	default:
		err = fmt.Errorf("%w: unknown intent %q", types.ErrInvalidRequest, req.Intent)
	}
	if err != nil {
		l.WarnContext(ctx, "Candidate resolution failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "candidate resolution failed")
		return nil, err
	}

	mode := s.chooseTransportation(req.Transportation, pois)
	routePlan := s.buildRoute(ctx, pois, mode)
	plan := s.assemblePlan(ctx, routePlan, tags, zones, recs)

	metrics.Get().PlanRequestsTotal.Add(ctx, 1)
	metrics.Get().PlanDurationSeconds.Record(ctx, time.Since(start).Seconds())
	span.SetAttributes(
		attribute.Int("plan.stops", len(plan.Stops)),
		attribute.String("plan.mode", plan.Mode),
	)
	span.SetStatus(codes.Ok, "plan assembled")
	l.InfoContext(ctx, "Plan assembled",
		slog.Int("stops", len(plan.Stops)),
		slog.String("mode", plan.Mode),
		slog.Int("total_duration_min", plan.TotalDurationMin),
	)
	return plan, nil
}

func (s *ServiceImpl) resolvePicked(ctx context.Context, req types.PlanRequest) ([]types.POI, []types.POI, error) {
	if len(req.POIIDs) == 0 {
		return nil, nil, fmt.Errorf("%w: poi_ids must not be empty for %s", types.ErrInvalidRequest, types.IntentPickPOIs)
	}
	pois := s.catalog.GetPOIs(req.POIIDs)
	if len(pois) == 0 {
		return nil, nil, fmt.Errorf("%w: none of the requested poi_ids exist", types.ErrNoCandidates)
	}
	if len(pois) < len(req.POIIDs) {
		s.logger.WarnContext(ctx, "Skipped unknown poi_ids",
			slog.Int("requested", len(req.POIIDs)),
			slog.Int("resolved", len(pois)),
		)
	}
	if !req.KeepOrder {
		sortNorthToSouth(pois)
	}

	var recs []types.POI
	target := types.TargetStops(req.TimeBudget)
	if req.AllowAutoFill && len(pois) < target {
		recs = s.recommendSimilar(pois, target)
	}
	return pois, recs, nil
}

func (s *ServiceImpl) resolvePreset(req types.PlanRequest) ([]types.POI, error) {
	if req.PresetRouteID == "" {
		return nil, fmt.Errorf("%w: preset_route_id must not be empty for %s", types.ErrInvalidRequest, types.IntentPresetRoute)
	}
	route, ok := s.catalog.GetPresetRoute(req.PresetRouteID)
	if !ok {
		return nil, fmt.Errorf("%w: unknown preset route %q", types.ErrNoCandidates, req.PresetRouteID)
	}
	pois := s.catalog.GetPOIs(route.POIIDs)
	if len(pois) == 0 {
		return nil, fmt.Errorf("%w: preset route %q resolved no POIs", types.ErrNoCandidates, req.PresetRouteID)
	}
	return pois, nil
}

func (s *ServiceImpl) resolveFreeText(ctx context.Context, req types.PlanRequest) (pois []types.POI, tags, zones []string, err error) {
	if strings.TrimSpace(req.FreeText) == "" {
		return nil, nil, nil, fmt.Errorf("%w: free_text must not be empty for %s", types.ErrInvalidRequest, types.IntentFreeText)
	}

	var tokens []string
	if s.extractor != nil {
		tokens, err = s.extractor.ExtractTags(ctx, req.FreeText, req.Personality)
		if err != nil {
			s.logger.WarnContext(ctx, "Tag extraction failed, using keyword inference only", slog.Any("error", err))
			tokens = nil
		}
	}
	refs, tagTokens := interests.Partition(tokens, s.catalog)

	inferred, zones := interests.InferPreferences(req.FreeText, req.Personality)
	tags = tagTokens
	if len(tags) == 0 {
		tags = inferred
	}

	target := types.TargetStops(req.TimeBudget)

	refIDs := make(map[string]bool, len(refs))
	for _, p := range refs {
		refIDs[p.ID] = true
	}
	var matched []types.POI
	for _, p := range s.catalog.SearchByTags(tags, target*2) {
		if !refIDs[p.ID] {
			matched = append(matched, p)
		}
	}
	if len(zones) > 0 {
		matched = sortZoneMatchesFirst(matched, zones)
	}

	pois = clusterByZone(refs, matched, req.TimeBudget, s.catalog)
	return pois, tags, zones, nil
}

// recommendSimilar proposes catalog POIs sharing tags with the picked set.
// Advisory only: the result lands on Plan.Recommendations, never on Stops.
func (s *ServiceImpl) recommendSimilar(picked []types.POI, target int) []types.POI {
	var tags []string
	seen := make(map[string]bool)
	for _, p := range picked {
		for _, t := range p.Tags {
			if !seen[t] {
				tags = append(tags, t)
				seen[t] = true
			}
		}
	}
	if len(tags) == 0 {
		return nil
	}

	pickedIDs := make(map[string]bool, len(picked))
	for _, p := range picked {
		pickedIDs[p.ID] = true
	}
	want := target - len(picked)
	var recs []types.POI
	for _, p := range s.catalog.SearchByTags(tags, target*2) {
		if pickedIDs[p.ID] {
			continue
		}
		recs = append(recs, p)
		if len(recs) == want {
			break
		}
	}
	return recs
}

// chooseTransportation maps the requested mode to walking or driving.
// Explicit modes pass through; auto (or anything else) picks driving once
// the cumulative planar path exceeds the threshold.
func (s *ServiceImpl) chooseTransportation(requested string, pois []types.POI) string {
	switch requested {
	case types.ModeWalking, types.ModeDriving:
		return requested
	}
	coords := make([]types.Coordinate, 0, len(pois))
	for _, p := range pois {
		if p.HasCoordinates() {
			coords = append(coords, p.Coordinate())
		}
	}
	if geo.PathDistanceM(coords) > autoDrivingThresholdM {
		return types.ModeDriving
	}
	return types.ModeWalking
}

// sortNorthToSouth orders POIs by descending latitude, the simple
// top-to-bottom traversal Beijing's sights lend themselves to.
func sortNorthToSouth(pois []types.POI) {
	sort.SliceStable(pois, func(i, j int) bool {
		return pois[i].Lat > pois[j].Lat
	})
}

// sortZoneMatchesFirst stably moves POIs in one of the hinted zones ahead
// of the rest.
func sortZoneMatchesFirst(pois []types.POI, zones []string) []types.POI {
	hinted := make(map[string]bool, len(zones))
	for _, z := range zones {
		hinted[z] = true
	}
	out := make([]types.POI, 0, len(pois))
	for _, p := range pois {
		if hinted[p.Zone] {
			out = append(out, p)
		}
	}
	for _, p := range pois {
		if !hinted[p.Zone] {
			out = append(out, p)
		}
	}
	return out
}
