package directions

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/wanderroute/go-itinerary-planner/internal/api/planner"
	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

var (
	_ planner.Geocoder           = (*AMapClient)(nil)
	_ planner.DirectionsProvider = (*AMapClient)(nil)
)

const (
	defaultBaseURL = "https://restapi.amap.com/v3"

	// POI names never move; a long cache keeps repeat plans off the
	// geocoding quota.
	geocodeCacheTTL = 24 * time.Hour
)

// AMapClient talks to the AMap v3 REST API. It implements both the
// geocoding and the directions collaborator contracts of the planner.
type AMapClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger

	geocodeCache *cache.Cache
}

// NewAMapClient builds a client. baseURL is overridable for tests; an empty
// value selects the production endpoint.
func NewAMapClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *AMapClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &AMapClient{
		baseURL:      strings.TrimRight(baseURL, "/"),
		apiKey:       apiKey,
		client:       &http.Client{Timeout: timeout},
		logger:       logger,
		geocodeCache: cache.New(geocodeCacheTTL, 2*geocodeCacheTTL),
	}
}

type geocodeResponse struct {
	Status   string `json:"status"`
	Info     string `json:"info"`
	Geocodes []struct {
		Location string `json:"location"` // "lon,lat"
	} `json:"geocodes"`
}

// Geocode resolves a place name to coordinates, restricted to Beijing.
// Results are memoized.
func (c *AMapClient) Geocode(ctx context.Context, name string) (types.Coordinate, error) {
	if cached, found := c.geocodeCache.Get(name); found {
		return cached.(types.Coordinate), nil
	}

	q := url.Values{}
	q.Set("address", name)
	q.Set("key", c.apiKey)
	q.Set("city", "beijing")

	var out geocodeResponse
	if err := c.getJSON(ctx, "/geocode/geo", q, &out); err != nil {
		return types.Coordinate{}, fmt.Errorf("geocode %q: %w", name, err)
	}
	if out.Status != "1" || len(out.Geocodes) == 0 {
		c.logger.DebugContext(ctx, "Geocode miss", slog.String("address", name), slog.String("info", out.Info))
		return types.Coordinate{}, fmt.Errorf("geocode %q: %w", name, types.ErrNotFound)
	}

	coord, err := parseLocation(out.Geocodes[0].Location)
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("geocode %q: %w", name, err)
	}
	c.geocodeCache.Set(name, coord, cache.DefaultExpiration)
	return coord, nil
}

type routeResponse struct {
	Status string `json:"status"`
	Info   string `json:"info"`
	Route  struct {
		Paths []struct {
			// AMap encodes numbers as strings.
			Distance string `json:"distance"`
			Duration string `json:"duration"`
			Steps    []struct {
				Polyline string `json:"polyline"`
			} `json:"steps"`
		} `json:"paths"`
	} `json:"route"`
}

// Route requests one multi-stop trip. Waypoints ride along pipe-separated;
// driving additionally pins the speed-priority strategy.
func (c *AMapClient) Route(ctx context.Context, origin, dest types.Coordinate, waypoints []types.Coordinate, mode string) (*types.DirectionsResult, error) {
	endpoint := "/direction/walking"
	if mode == types.ModeDriving {
		endpoint = "/direction/driving"
	}

	q := url.Values{}
	q.Set("origin", formatLocation(origin))
	q.Set("destination", formatLocation(dest))
	q.Set("key", c.apiKey)
	if len(waypoints) > 0 {
		parts := make([]string, len(waypoints))
		for i, w := range waypoints {
			parts[i] = formatLocation(w)
		}
		q.Set("waypoints", strings.Join(parts, "|"))
	}
	if mode == types.ModeDriving {
		q.Set("strategy", "0")
	}

	var out routeResponse
	if err := c.getJSON(ctx, endpoint, q, &out); err != nil {
		return nil, fmt.Errorf("directions request: %w", err)
	}
	if out.Status != "1" || len(out.Route.Paths) == 0 {
		return nil, fmt.Errorf("directions request rejected: %s", out.Info)
	}

	path := out.Route.Paths[0]
	distance, _ := strconv.Atoi(path.Distance)
	duration, _ := strconv.Atoi(path.Duration)

	var legs []string
	for _, step := range path.Steps {
		if step.Polyline != "" {
			legs = append(legs, step.Polyline)
		}
	}
	return &types.DirectionsResult{
		DistanceM:    distance,
		DurationS:    duration,
		LegPolylines: legs,
	}, nil
}

func (c *AMapClient) getJSON(ctx context.Context, endpoint string, q url.Values, dst interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(dst)
}

// parseLocation splits AMap's "lon,lat" encoding.
func parseLocation(s string) (types.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return types.Coordinate{}, fmt.Errorf("malformed location %q", s)
	}
	lon, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("malformed location %q: %w", s, err)
	}
	lat, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("malformed location %q: %w", s, err)
	}
	return types.Coordinate{Lat: lat, Lon: lon}, nil
}

func formatLocation(c types.Coordinate) string {
	return fmt.Sprintf("%.6f,%.6f", c.Lon, c.Lat)
}
