package planner

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderroute/go-itinerary-planner/internal/api/catalog"
	"github.com/wanderroute/go-itinerary-planner/internal/geo"
	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

func TestAssemblePlan(t *testing.T) {
	svc := newTestService(nil, nil, nil)
	ctx := context.Background()

	t.Run("defaults missing identity fields", func(t *testing.T) {
		rp := types.RoutePlan{
			Steps: []types.RouteStep{
				{POI: types.POI{Lat: 39.9, Lon: 116.4}, VisitDurationMin: 60, TransitNote: "步行前往下一站"},
				{POI: types.POI{ID: "tiantan", Lat: 39.88, Lon: 116.41, Category: "temple"}, VisitDurationMin: 90, TransitNote: "行程结束"},
			},
			TotalDurationMin: 150,
			Mode:             types.ModeWalking,
		}

		plan := svc.assemblePlan(ctx, rp, nil, nil, nil)

		require.Len(t, plan.Stops, 2)
		assert.Equal(t, "unknown_1", plan.Stops[0].POIID)
		assert.Equal(t, "unknown_1", plan.Stops[0].Name)
		assert.Equal(t, "WAYPOINT", plan.Stops[0].Category)
		assert.Equal(t, "tiantan", plan.Stops[1].POIID)
		assert.Equal(t, "tiantan", plan.Stops[1].Name, "empty name falls back to the id")
		assert.Equal(t, "temple", plan.Stops[1].Category)
	})

	t.Run("synthesizes contiguous sequence numbers", func(t *testing.T) {
		rp := types.RoutePlan{
			Steps: []types.RouteStep{
				{POI: types.POI{ID: "a", Name: "a", Lat: 39.9, Lon: 116.4}, Seq: 7},
				{POI: types.POI{ID: "b", Name: "b", Lat: 39.91, Lon: 116.41}, Seq: 2},
				{POI: types.POI{ID: "c", Name: "c", Lat: 39.92, Lon: 116.42}},
			},
		}

		plan := svc.assemblePlan(ctx, rp, nil, nil, nil)

		for i, stop := range plan.Stops {
			assert.Equal(t, i+1, stop.Seq)
		}
	})

	t.Run("per stop distance comes from the previous stop", func(t *testing.T) {
		a := types.POI{ID: "a", Name: "a", Lat: 39.90, Lon: 116.40}
		b := types.POI{ID: "b", Name: "b", Lat: 39.93, Lon: 116.42}
		rp := types.RoutePlan{
			Steps: []types.RouteStep{
				{POI: a, Seq: 1},
				{POI: b, Seq: 2},
			},
		}

		plan := svc.assemblePlan(ctx, rp, nil, nil, nil)

		assert.Equal(t, 0, plan.Stops[0].DistanceM)
		assert.Equal(t, geo.DistanceM(a.Coordinate(), b.Coordinate()), plan.Stops[1].DistanceM)
	})

	t.Run("echoes resolution tags and zones", func(t *testing.T) {
		plan := svc.assemblePlan(ctx, types.RoutePlan{}, []string{"history"}, []string{"central"}, nil)

		assert.Equal(t, []string{"history"}, plan.Tags)
		assert.Equal(t, []string{"central"}, plan.Zones)
		assert.Empty(t, plan.Stops)
	})
}

func TestFallbackRouteShape(t *testing.T) {
	svc := NewServiceImpl(catalog.NewInMemoryRepository(), nil, nil, nil, slog.Default())
	pois := catalog.NewInMemoryRepository().GetPOIs([]string{"gugong", "jingshan", "tiantan"})
	require.Len(t, pois, 3)

	rp := svc.fallbackRoute(context.Background(), pois)

	assert.Equal(t, types.ModeWalking, rp.Mode)
	assert.Equal(t, 3*70, rp.TotalDurationMin)
	assert.Equal(t, 0, rp.TotalDistanceM)
	require.Len(t, rp.Steps, 3)
	for i, step := range rp.Steps {
		assert.Equal(t, i+1, step.Seq)
		assert.Equal(t, 60, step.VisitDurationMin)
		assert.Equal(t, "直线距离估算", step.TransitNote)
	}
	assert.Equal(t, "故宫 -> 景山公园 -> 天坛", rp.Summary)
}
