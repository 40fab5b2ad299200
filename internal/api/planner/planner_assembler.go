package planner

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/wanderroute/go-itinerary-planner/internal/geo"
	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

// assemblePlan flattens a RoutePlan into the externally consumed Plan.
// Sequence numbers are synthesized from position so they stay 1-based and
// contiguous even if an upstream step carried none; per-stop distance is the
// planar distance from the previous stop; missing identity fields are
// defaulted rather than dropped.
func (s *ServiceImpl) assemblePlan(ctx context.Context, rp types.RoutePlan, tags, zones []string, recs []types.POI) *types.Plan {
	stops := make([]types.PlanStop, 0, len(rp.Steps))

	var prev types.Coordinate
	hasPrev := false
	for i, step := range rp.Steps {
		seq := i + 1
		if step.Seq != 0 && step.Seq != seq {
			s.logger.WarnContext(ctx, "Route step out of sequence, renumbering",
				slog.Int("got", step.Seq),
				slog.Int("want", seq),
			)
		}

		p := step.POI
		id := p.ID
		if id == "" {
			id = fmt.Sprintf("unknown_%d", seq)
		}
		name := p.Name
		if name == "" {
			name = id
		}
		category := p.Category
		if category == "" {
			category = "WAYPOINT"
		}

		distance := 0
		if hasPrev && p.HasCoordinates() {
			distance = geo.DistanceM(prev, p.Coordinate())
		}
		if p.HasCoordinates() {
			prev = p.Coordinate()
			hasPrev = true
		}

		stops = append(stops, types.PlanStop{
			Seq:              seq,
			POIID:            id,
			Name:             name,
			Lat:              p.Lat,
			Lon:              p.Lon,
			Category:         category,
			DistanceM:        distance,
			Zone:             p.Zone,
			Tags:             p.Tags,
			VisitDurationMin: step.VisitDurationMin,
			TransitNote:      step.TransitNote,
			Status:           types.StopStatusUpcoming,
		})
	}

	return &types.Plan{
		Mode:             rp.Mode,
		Stops:            stops,
		TotalDurationMin: rp.TotalDurationMin,
		TotalDistanceM:   rp.TotalDistanceM,
		Summary:          rp.Summary,
		Polyline:         rp.Polyline,
		Zones:            zones,
		Tags:             tags,
		Recommendations:  recs,
	}
}

func (s *ServiceImpl) BuildPlanDirect(ctx context.Context, poiIDs []string, transportation string) (*types.Plan, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "BuildPlanDirect")
	defer span.End()

	if len(poiIDs) == 0 {
		err := fmt.Errorf("%w: poi_ids must not be empty", types.ErrInvalidRequest)
		span.RecordError(err)
		span.SetStatus(codes.Error, "empty poi_ids")
		return nil, err
	}
	pois := s.catalog.GetPOIs(poiIDs)
	if len(pois) == 0 {
		err := fmt.Errorf("%w: none of the requested poi_ids exist", types.ErrNoCandidates)
		span.RecordError(err)
		span.SetStatus(codes.Error, "no candidates")
		return nil, err
	}

	mode := s.chooseTransportation(transportation, pois)
	plan := s.assemblePlan(ctx, directRoute(pois, mode), nil, nil, nil)
	span.SetStatus(codes.Ok, "plan assembled")
	return plan, nil
}

// Direct-build transit speed assumptions, in meters per minute.
const (
	walkingSpeedMPerMin = 80
	drivingSpeedMPerMin = 400
)

// directRoute estimates transit legs from planar distances instead of
// calling the directions provider.
func directRoute(pois []types.POI, mode string) types.RoutePlan {
	speed := walkingSpeedMPerMin
	if mode == types.ModeDriving {
		speed = drivingSpeedMPerMin
	}

	steps := make([]types.RouteStep, 0, len(pois))
	totalDuration, totalDistance := 0, 0
	for i, p := range pois {
		note := "行程结束"
		if i < len(pois)-1 {
			next := pois[i+1]
			distance := 0
			if p.HasCoordinates() && next.HasCoordinates() {
				distance = geo.DistanceM(p.Coordinate(), next.Coordinate())
			}
			transit := distance / speed
			if mode == types.ModeDriving {
				note = fmt.Sprintf("驾车 %d 分钟到下一站", transit)
			} else {
				note = fmt.Sprintf("步行 %d 分钟到下一站", transit)
			}
			totalDuration += transit
			totalDistance += distance
		}
		dwell := dwellMinutes(p)
		totalDuration += dwell
		steps = append(steps, types.RouteStep{
			POI:              p,
			Seq:              i + 1,
			VisitDurationMin: dwell,
			TransitNote:      note,
		})
	}

	return types.RoutePlan{
		Steps:            steps,
		TotalDurationMin: totalDuration,
		TotalDistanceM:   totalDistance,
		Summary:          summarize(pois),
		Mode:             mode,
	}
}
