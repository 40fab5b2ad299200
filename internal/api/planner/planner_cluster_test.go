package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderroute/go-itinerary-planner/internal/api/catalog"
	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

func clusterPOI(id, zone string) types.POI {
	return types.POI{ID: id, Name: id, Lat: 39.9, Lon: 116.4, Tags: []string{"t"}, Zone: zone, VisitDurationMin: 60}
}

func TestOrderedCounter(t *testing.T) {
	c := newOrderedCounter()
	for _, z := range []string{"west", "central", "central", "east", "west", "central"} {
		c.Add(z)
	}

	assert.Equal(t, []string{"central", "west", "east"}, c.MostCommon(3))
	assert.Equal(t, []string{"central"}, c.MostCommon(1))

	// Ties resolve by first-seen order, every time.
	tie := newOrderedCounter()
	tie.Add("north")
	tie.Add("south")
	for i := 0; i < 100; i++ {
		assert.Equal(t, []string{"north", "south"}, tie.MostCommon(2))
	}
}

func TestClusterByZone(t *testing.T) {
	repo := catalog.NewInMemoryRepository()

	t.Run("half day keeps one zone and caps at three", func(t *testing.T) {
		matched := []types.POI{
			clusterPOI("c1", "central"),
			clusterPOI("w1", "west"),
			clusterPOI("c2", "central"),
			clusterPOI("c3", "central"),
			clusterPOI("c4", "central"),
		}
		out := clusterByZone(nil, matched, types.BudgetHalfDay, repo)

		require.Len(t, out, 3)
		for _, p := range out {
			assert.Equal(t, "central", p.Zone)
		}
	})

	t.Run("full day keeps two zones and caps at five", func(t *testing.T) {
		matched := []types.POI{
			clusterPOI("c1", "central"),
			clusterPOI("c2", "central"),
			clusterPOI("w1", "west"),
			clusterPOI("w2", "west"),
			clusterPOI("n1", "north"),
			clusterPOI("c3", "central"),
			clusterPOI("w3", "west"),
		}
		out := clusterByZone(nil, matched, types.BudgetFullDay, repo)

		require.Len(t, out, 5)
		for _, p := range out {
			assert.NotEqual(t, "north", p.Zone, "third zone must be clustered away")
		}
	})

	t.Run("explicit references survive zone filtering", func(t *testing.T) {
		refs := []types.POI{clusterPOI("east-ref", "east")}
		matched := []types.POI{
			clusterPOI("c1", "central"),
			clusterPOI("c2", "central"),
			clusterPOI("c3", "central"),
		}
		out := clusterByZone(refs, matched, types.BudgetHalfDay, repo)

		require.NotEmpty(t, out)
		assert.Equal(t, "east-ref", out[0].ID, "reference leads the selection")
	})

	t.Run("reference zone steers the cluster", func(t *testing.T) {
		refs := []types.POI{clusterPOI("w-ref", "west")}
		matched := []types.POI{
			clusterPOI("c1", "central"),
			clusterPOI("c2", "central"),
			clusterPOI("w1", "west"),
		}
		out := clusterByZone(refs, matched, types.BudgetHalfDay, repo)

		ids := make([]string, 0, len(out))
		for _, p := range out {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, "w-ref")
		assert.Contains(t, ids, "w1")
		assert.NotContains(t, ids, "c1")
	})

	t.Run("references alone are truncated to the budget", func(t *testing.T) {
		refs := []types.POI{
			clusterPOI("r1", "central"),
			clusterPOI("r2", "central"),
			clusterPOI("r3", "west"),
			clusterPOI("r4", "east"),
		}
		out := clusterByZone(refs, nil, types.BudgetHalfDay, repo)

		require.Len(t, out, 3)
		assert.Equal(t, "r1", out[0].ID)
		assert.Equal(t, "r3", out[2].ID)
	})

	t.Run("duplicates are removed by id", func(t *testing.T) {
		refs := []types.POI{clusterPOI("dup", "central")}
		matched := []types.POI{clusterPOI("dup", "central"), clusterPOI("c1", "central")}
		out := clusterByZone(refs, matched, types.BudgetHalfDay, repo)

		seen := make(map[string]int)
		for _, p := range out {
			seen[p.ID]++
		}
		assert.Equal(t, 1, seen["dup"])
	})

	t.Run("no candidates falls back to the catalog head", func(t *testing.T) {
		out := clusterByZone(nil, nil, types.BudgetHalfDay, repo)

		require.Len(t, out, types.HalfDayStops)
		assert.Equal(t, repo.FirstPOIs(types.HalfDayStops), out)
	})
}
