package types

import "errors"

// Intent discriminates how the candidate POI list is resolved.
type Intent string

const (
	IntentPickPOIs    Intent = "PICK_POIS"
	IntentPresetRoute Intent = "PRESET_ROUTE"
	IntentFreeText    Intent = "FREE_TEXT"
)

// Time budgets and their stop targets. Shared by the resolver, the
// clustering selector and the auto-fill path; do not re-derive per call site.
const (
	BudgetHalfDay = "half_day"
	BudgetFullDay = "full_day"

	HalfDayStops = 3
	FullDayStops = 5
)

// TargetStops maps a time budget to the number of stops it should yield.
// Unknown budgets fall back to the half-day target.
func TargetStops(timeBudget string) int {
	if timeBudget == BudgetFullDay {
		return FullDayStops
	}
	return HalfDayStops
}

// Transportation modes.
const (
	ModeWalking = "walking"
	ModeDriving = "driving"
	ModeAuto    = "auto"
)

// Stop lifecycle status. Transitions beyond UPCOMING happen in the
// trip-tracking service, not in the planning engine.
const StopStatusUpcoming = "UPCOMING"

var (
	// ErrInvalidRequest marks a rejected request: a missing required
	// mode-specific field or an empty explicit selection. The engine does
	// not guess missing parameters.
	ErrInvalidRequest = errors.New("invalid plan request")

	// ErrNoCandidates means resolution produced nothing to plan with.
	// Distinct from a degraded (fallback-routed) plan, which is still a plan.
	ErrNoCandidates = errors.New("no candidate POIs resolved")

	// ErrNotFound is returned by the geocoding collaborator when a name
	// cannot be resolved to coordinates.
	ErrNotFound = errors.New("not found")
)

// PlanRequest carries one planning invocation.
type PlanRequest struct {
	Intent Intent `json:"intent"`

	// PICK_POIS payload.
	POIIDs []string `json:"poi_ids,omitempty"`
	// PRESET_ROUTE payload.
	PresetRouteID string `json:"preset_route_id,omitempty"`
	// FREE_TEXT payload. Personality is an optional MBTI-style hint.
	FreeText    string `json:"free_text,omitempty"`
	Personality string `json:"personality,omitempty"`

	TimeBudget     string `json:"time_budget,omitempty"`     // half_day | full_day
	Transportation string `json:"transportation,omitempty"`  // walking | driving | auto
	AllowAutoFill  bool   `json:"allow_auto_fill,omitempty"` // PICK_POIS only
	KeepOrder      bool   `json:"keep_order,omitempty"`      // PICK_POIS only
}

// RouteStep is one stop in a resolved route.
type RouteStep struct {
	POI              POI    `json:"poi"`
	Seq              int    `json:"seq"`
	VisitDurationMin int    `json:"visit_duration_min"`
	TransitNote      string `json:"transit_note"`
}

// RoutePlan is the route builder's result: ordered steps plus totals.
type RoutePlan struct {
	Steps            []RouteStep `json:"steps"`
	TotalDurationMin int         `json:"total_duration_min"`
	TotalDistanceM   int         `json:"total_distance_m"`
	Summary          string      `json:"summary"`
	Mode             string      `json:"mode"`
	Polyline         string      `json:"polyline,omitempty"`
}

// PlanStop is one externally consumed stop of an assembled plan.
type PlanStop struct {
	Seq              int      `json:"seq"`
	POIID            string   `json:"poi_id"`
	Name             string   `json:"name"`
	Lat              float64  `json:"lat"`
	Lon              float64  `json:"lon"`
	Category         string   `json:"category"`
	DistanceM        int      `json:"distance_m"`
	Zone             string   `json:"zone"`
	Tags             []string `json:"tags"`
	VisitDurationMin int      `json:"visit_duration_min"`
	TransitNote      string   `json:"transit_note"`
	Status           string   `json:"status"`
}

// Plan is the externally consumed planning result. Recommendations carries
// the advisory auto-fill output; it is never merged into Stops so explicit
// user choice is never overridden.
type Plan struct {
	Mode             string     `json:"mode"`
	Stops            []PlanStop `json:"stops"`
	TotalDurationMin int        `json:"total_duration_min"`
	TotalDistanceM   int        `json:"total_distance_m"`
	Summary          string     `json:"summary"`
	Polyline         string     `json:"polyline,omitempty"`
	Zones            []string   `json:"zones,omitempty"`
	Tags             []string   `json:"tags,omitempty"`
	Recommendations  []POI      `json:"recommendations,omitempty"`
}

// DirectionsResult is the directions collaborator's answer for one trip.
type DirectionsResult struct {
	DistanceM    int      `json:"distance_m"`
	DurationS    int      `json:"duration_s"`
	LegPolylines []string `json:"leg_polylines,omitempty"`
}
