package planner

import (
	"sort"

	"github.com/wanderroute/go-itinerary-planner/internal/api/catalog"
	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

// orderedCounter counts occurrences while remembering first-seen order, so
// most-common ties resolve the same way on every run.
type orderedCounter struct {
	counts map[string]int
	order  []string
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// MostCommon returns up to n keys by descending count, ties in first-seen
// order.
func (c *orderedCounter) MostCommon(n int) []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if n < len(keys) {
		keys = keys[:n]
	}
	return keys
}

// clusterByZone narrows merged free-text candidates to a geographically
// coherent selection. Explicit references are always kept and never dropped
// for being in the wrong zone; tag matches only survive inside the chosen
// zone(s). half_day keeps one zone and caps at 3 stops, full_day keeps two
// zones and caps at 5. Exhaustion falls back to the head of the catalog so
// the result is never empty.
func clusterByZone(refs, matched []types.POI, timeBudget string, repo catalog.Repository) []types.POI {
	limit := types.TargetStops(timeBudget)

	if len(refs) == 0 && len(matched) == 0 {
		return repo.FirstPOIs(types.HalfDayStops)
	}
	// Only explicit references: nothing to cluster, just truncate.
	if len(matched) == 0 {
		if len(refs) > limit {
			return refs[:limit]
		}
		return refs
	}

	var allowed map[string]bool
	if timeBudget == types.BudgetFullDay {
		allowed = topZones(refs, matched, 2)
	} else {
		allowed = topZones(refs, matched, 1)
	}

	selected := make([]types.POI, 0, len(refs)+len(matched))
	selected = append(selected, refs...)
	for _, p := range matched {
		if allowed[p.Zone] {
			selected = append(selected, p)
		}
	}

	out := make([]types.POI, 0, limit)
	seen := make(map[string]bool, limit)
	for _, p := range selected {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
		if len(out) >= limit {
			break
		}
	}
	if len(out) == 0 {
		return repo.FirstPOIs(1)
	}
	return out
}

// topZones picks n target zones. Zones of explicit references take
// priority; when they cover fewer than n, the remainder is backfilled from
// overall candidate frequency.
func topZones(refs, matched []types.POI, n int) map[string]bool {
	allowed := make(map[string]bool, n)

	if len(refs) > 0 {
		refCounter := newOrderedCounter()
		for _, p := range refs {
			refCounter.Add(p.Zone)
		}
		for _, z := range refCounter.MostCommon(n) {
			allowed[z] = true
		}
	}

	if len(allowed) < n {
		global := newOrderedCounter()
		for _, p := range refs {
			global.Add(p.Zone)
		}
		for _, p := range matched {
			global.Add(p.Zone)
		}
		for _, z := range global.MostCommon(n + 1) {
			if len(allowed) >= n {
				break
			}
			allowed[z] = true
		}
	}
	return allowed
}
