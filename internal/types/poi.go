package types

// Coordinate is a WGS84 point in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// POI is a single sightseeing point from the static catalog.
type POI struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Lat              float64  `json:"lat"`
	Lon              float64  `json:"lon"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	Zone             string   `json:"zone"`
	VisitDurationMin int      `json:"visit_duration_min"`
}

// Coordinate returns the POI position as a Coordinate value.
func (p POI) Coordinate() Coordinate {
	return Coordinate{Lat: p.Lat, Lon: p.Lon}
}

// HasCoordinates reports whether the POI carries a usable position.
// (0,0) is nowhere near the served area, so it doubles as the zero marker.
func (p POI) HasCoordinates() bool {
	return p.Lat != 0 && p.Lon != 0
}

// HasAnyTag reports whether the POI shares at least one tag with the given set.
func (p POI) HasAnyTag(tags []string) bool {
	for _, want := range tags {
		for _, have := range p.Tags {
			if want == have {
				return true
			}
		}
	}
	return false
}

// PresetRoute is a curated, ordered sequence of POI ids. Preset routes are
// defined at catalog-build time and immutable thereafter.
type PresetRoute struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	POIIDs      []string `json:"poi_ids"`
}
