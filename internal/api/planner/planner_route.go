package planner

import (
	"context"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel"

	"github.com/wanderroute/go-itinerary-planner/app/observability/metrics"
	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

// buildRoute turns resolved candidates into a RoutePlan. It never fails:
// any directions problem degrades to the deterministic fallback.
func (s *ServiceImpl) buildRoute(ctx context.Context, pois []types.POI, mode string) types.RoutePlan {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "buildRoute")
	defer span.End()

	located := s.locate(ctx, pois)

	if len(located) < 2 {
		return trivialRoute(located, mode)
	}
	if s.directions == nil {
		return s.fallbackRoute(ctx, located)
	}

	coords := make([]types.Coordinate, len(located))
	for i, p := range located {
		coords[i] = p.Coordinate()
	}
	origin, dest := coords[0], coords[len(coords)-1]
	waypoints := coords[1 : len(coords)-1]

	result, err := s.directions.Route(ctx, origin, dest, waypoints, mode)
	if err != nil {
		s.logger.WarnContext(ctx, "Directions request failed, using fallback route", slog.Any("error", err))
		span.RecordError(err)
		return s.fallbackRoute(ctx, located)
	}

	steps := make([]types.RouteStep, 0, len(located))
	for i, p := range located {
		note := "行程结束"
		if i < len(located)-1 {
			if mode == types.ModeDriving {
				note = "驾车前往下一站"
			} else {
				note = "步行前往下一站"
			}
		}
		steps = append(steps, types.RouteStep{
			POI:              p,
			Seq:              i + 1,
			VisitDurationMin: dwellMinutes(p),
			TransitNote:      note,
		})
	}

	return types.RoutePlan{
		Steps:            steps,
		TotalDurationMin: result.DurationS/60 + sumDwell(located),
		TotalDistanceM:   result.DistanceM,
		Summary:          summarize(located),
		Mode:             mode,
		Polyline:         strings.Join(result.LegPolylines, ";"),
	}
}

// locate fills in missing coordinates via the geocoder and drops POIs that
// still cannot be placed. A dropped POI is logged and counted, not fatal.
func (s *ServiceImpl) locate(ctx context.Context, pois []types.POI) []types.POI {
	located := make([]types.POI, 0, len(pois))
	for _, p := range pois {
		if !p.HasCoordinates() && s.geocoder != nil {
			coord, err := s.geocoder.Geocode(ctx, p.Name)
			if err != nil {
				s.logger.WarnContext(ctx, "Geocoding failed",
					slog.String("poi", p.Name),
					slog.Any("error", err),
				)
				metrics.Get().GeocodeErrorsTotal.Add(ctx, 1)
			} else {
				p.Lat, p.Lon = coord.Lat, coord.Lon
			}
		}
		if !p.HasCoordinates() {
			s.logger.WarnContext(ctx, "Dropping POI with no coordinates", slog.String("poi", p.Name))
			continue
		}
		located = append(located, p)
	}
	return located
}

// trivialRoute covers the zero- and one-stop cases without an external call.
func trivialRoute(pois []types.POI, mode string) types.RoutePlan {
	steps := make([]types.RouteStep, 0, len(pois))
	for i, p := range pois {
		steps = append(steps, types.RouteStep{
			POI:              p,
			Seq:              i + 1,
			VisitDurationMin: 60,
			TransitNote:      "单一景点",
		})
	}
	return types.RoutePlan{
		Steps:            steps,
		TotalDurationMin: len(pois) * 60,
		TotalDistanceM:   0,
		Summary:          summarize(pois),
		Mode:             mode,
	}
}

// fallbackRoute is the degradation path: input order, fixed dwell, mocked
// totals. The recorded mode stays walking no matter what was requested;
// existing consumers key off that.
func (s *ServiceImpl) fallbackRoute(ctx context.Context, pois []types.POI) types.RoutePlan {
	metrics.Get().RouteFallbackTotal.Add(ctx, 1)

	steps := make([]types.RouteStep, 0, len(pois))
	for i, p := range pois {
		steps = append(steps, types.RouteStep{
			POI:              p,
			Seq:              i + 1,
			VisitDurationMin: 60,
			TransitNote:      "直线距离估算",
		})
	}
	return types.RoutePlan{
		Steps:            steps,
		TotalDurationMin: len(pois) * 70,
		TotalDistanceM:   0,
		Summary:          summarize(pois),
		Mode:             types.ModeWalking,
	}
}

func dwellMinutes(p types.POI) int {
	if p.VisitDurationMin > 0 {
		return p.VisitDurationMin
	}
	return 60
}

func sumDwell(pois []types.POI) int {
	total := 0
	for _, p := range pois {
		total += dwellMinutes(p)
	}
	return total
}

func summarize(pois []types.POI) string {
	names := make([]string, len(pois))
	for i, p := range pois {
		names[i] = p.Name
	}
	return strings.Join(names, " -> ")
}
