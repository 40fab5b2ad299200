package catalog

import (
	"sort"

	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

var _ Repository = (*InMemoryRepository)(nil)

// Repository is the read-only POI catalog contract. The catalog is loaded
// once and never mutated afterwards, so a single instance is safe to share
// across concurrent planning requests without locking.
type Repository interface {
	GetPOI(id string) (types.POI, bool)
	GetPOIs(ids []string) []types.POI
	AllPOIs() []types.POI
	FirstPOIs(n int) []types.POI

	GetPresetRoute(id string) (types.PresetRoute, bool)
	GetRoutePOIs(routeID string) []types.POI
	AllPresetRoutes() []types.PresetRoute

	SearchByTags(tags []string, limit int) []types.POI
}

// InMemoryRepository holds the catalog as an ordered slice plus an
// id-indexed map.
type InMemoryRepository struct {
	pois    []types.POI
	byID    map[string]types.POI
	routes  []types.PresetRoute
	routeBy map[string]types.PresetRoute
}

// NewInMemoryRepository builds a repository over the built-in Beijing catalog.
func NewInMemoryRepository() *InMemoryRepository {
	return NewRepositoryFromData(beijingPOIs, beijingPresetRoutes)
}

// NewRepositoryFromData builds a repository over the given data. Used by
// tests to plant small catalogs.
func NewRepositoryFromData(pois []types.POI, routes []types.PresetRoute) *InMemoryRepository {
	r := &InMemoryRepository{
		pois:    pois,
		byID:    make(map[string]types.POI, len(pois)),
		routes:  routes,
		routeBy: make(map[string]types.PresetRoute, len(routes)),
	}
	for _, p := range pois {
		r.byID[p.ID] = p
	}
	for _, rt := range routes {
		r.routeBy[rt.ID] = rt
	}
	return r
}

func (r *InMemoryRepository) GetPOI(id string) (types.POI, bool) {
	p, ok := r.byID[id]
	return p, ok
}

// GetPOIs resolves ids in order, silently skipping unknown ones.
func (r *InMemoryRepository) GetPOIs(ids []string) []types.POI {
	out := make([]types.POI, 0, len(ids))
	for _, id := range ids {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// AllPOIs returns the catalog in its fixed order. Callers must not mutate
// the returned slice.
func (r *InMemoryRepository) AllPOIs() []types.POI {
	return r.pois
}

// FirstPOIs returns the first n catalog entries; the exhaustion fallback
// slice of the clustering selector.
func (r *InMemoryRepository) FirstPOIs(n int) []types.POI {
	if n > len(r.pois) {
		n = len(r.pois)
	}
	return r.pois[:n]
}

func (r *InMemoryRepository) GetPresetRoute(id string) (types.PresetRoute, bool) {
	rt, ok := r.routeBy[id]
	return rt, ok
}

// GetRoutePOIs returns the preset's POIs in its fixed order, or nil for an
// unknown route id.
func (r *InMemoryRepository) GetRoutePOIs(routeID string) []types.POI {
	rt, ok := r.routeBy[routeID]
	if !ok {
		return nil
	}
	return r.GetPOIs(rt.POIIDs)
}

func (r *InMemoryRepository) AllPresetRoutes() []types.PresetRoute {
	return r.routes
}

// SearchByTags returns up to limit POIs sharing at least one tag with the
// query, ordered by descending match count. Ties keep catalog order, which
// keeps the result deterministic.
func (r *InMemoryRepository) SearchByTags(tags []string, limit int) []types.POI {
	type scored struct {
		poi   types.POI
		score int
		pos   int
	}
	matched := make([]scored, 0)
	for pos, p := range r.pois {
		score := 0
		for _, tag := range tags {
			for _, have := range p.Tags {
				if tag == have {
					score++
					break
				}
			}
		}
		if score > 0 {
			matched = append(matched, scored{poi: p, score: score, pos: pos})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].score != matched[j].score {
			return matched[i].score > matched[j].score
		}
		return matched[i].pos < matched[j].pos
	})

	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	out := make([]types.POI, 0, len(matched))
	for _, m := range matched {
		out = append(out, m.poi)
	}
	return out
}
