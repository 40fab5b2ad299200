package geo

import (
	"math"

	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

// Planar degree-to-meter factors around Beijing (~40°N). One degree of
// longitude shrinks with latitude, hence the smaller factor. This is a
// deliberate urban-scale simplification, not Haversine.
const (
	metersPerLonDegree = 85000
	metersPerLatDegree = 111000
)

// DistanceM estimates the straight-line distance in meters between two
// points. Symmetric and deterministic.
func DistanceM(a, b types.Coordinate) int {
	dx := (a.Lon - b.Lon) * metersPerLonDegree
	dy := (a.Lat - b.Lat) * metersPerLatDegree
	return int(math.Sqrt(dx*dx + dy*dy))
}

// PathDistanceM sums the leg distances over consecutive points.
func PathDistanceM(points []types.Coordinate) int {
	total := 0
	for i := 0; i+1 < len(points); i++ {
		total += DistanceM(points[i], points[i+1])
	}
	return total
}
