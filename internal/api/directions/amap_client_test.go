package directions

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderroute/go-itinerary-planner/internal/types"
)

func TestGeocode(t *testing.T) {
	ctx := context.Background()

	t.Run("parses lon,lat and memoizes", func(t *testing.T) {
		var calls int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			assert.Equal(t, "/geocode/geo", r.URL.Path)
			assert.Equal(t, "故宫", r.URL.Query().Get("address"))
			assert.Equal(t, "test-key", r.URL.Query().Get("key"))
			assert.Equal(t, "beijing", r.URL.Query().Get("city"))
			w.Write([]byte(`{"status":"1","info":"OK","geocodes":[{"location":"116.397200,39.916300"}]}`))
		}))
		defer server.Close()

		client := NewAMapClient(server.URL, "test-key", time.Second, slog.Default())

		coord, err := client.Geocode(ctx, "故宫")
		require.NoError(t, err)
		assert.InDelta(t, 39.9163, coord.Lat, 1e-6)
		assert.InDelta(t, 116.3972, coord.Lon, 1e-6)

		// Second lookup is served from cache.
		coord2, err := client.Geocode(ctx, "故宫")
		require.NoError(t, err)
		assert.Equal(t, coord, coord2)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("miss maps to ErrNotFound", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"0","info":"INVALID_ADDRESS","geocodes":[]}`))
		}))
		defer server.Close()

		client := NewAMapClient(server.URL, "test-key", time.Second, slog.Default())

		_, err := client.Geocode(ctx, "不存在的地方")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})

	t.Run("malformed location is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"1","info":"OK","geocodes":[{"location":"garbage"}]}`))
		}))
		defer server.Close()

		client := NewAMapClient(server.URL, "test-key", time.Second, slog.Default())

		_, err := client.Geocode(ctx, "someplace")
		assert.Error(t, err)
	})
}

func TestRoute(t *testing.T) {
	ctx := context.Background()
	origin := types.Coordinate{Lat: 39.9163, Lon: 116.3972}
	dest := types.Coordinate{Lat: 39.8828, Lon: 116.4074}
	waypoint := types.Coordinate{Lat: 39.9275, Lon: 116.3953}

	t.Run("walking route parses string-encoded numbers", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/direction/walking", r.URL.Path)
			assert.Equal(t, "116.397200,39.916300", r.URL.Query().Get("origin"))
			assert.Equal(t, "116.407400,39.882800", r.URL.Query().Get("destination"))
			assert.Equal(t, "116.395300,39.927500", r.URL.Query().Get("waypoints"))
			assert.Empty(t, r.URL.Query().Get("strategy"))
			w.Write([]byte(`{"status":"1","info":"OK","route":{"paths":[
				{"distance":"5200","duration":"3900","steps":[
					{"polyline":"116.39,39.91;116.40,39.92"},
					{"polyline":"116.40,39.92;116.41,39.88"}
				]}
			]}}`))
		}))
		defer server.Close()

		client := NewAMapClient(server.URL, "test-key", time.Second, slog.Default())

		result, err := client.Route(ctx, origin, dest, []types.Coordinate{waypoint}, types.ModeWalking)
		require.NoError(t, err)
		assert.Equal(t, 5200, result.DistanceM)
		assert.Equal(t, 3900, result.DurationS)
		assert.Equal(t, []string{
			"116.39,39.91;116.40,39.92",
			"116.40,39.92;116.41,39.88",
		}, result.LegPolylines)
	})

	t.Run("driving route pins the strategy", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/direction/driving", r.URL.Path)
			assert.Equal(t, "0", r.URL.Query().Get("strategy"))
			w.Write([]byte(`{"status":"1","info":"OK","route":{"paths":[{"distance":"8000","duration":"1200","steps":[]}]}}`))
		}))
		defer server.Close()

		client := NewAMapClient(server.URL, "test-key", time.Second, slog.Default())

		result, err := client.Route(ctx, origin, dest, nil, types.ModeDriving)
		require.NoError(t, err)
		assert.Equal(t, 8000, result.DistanceM)
		assert.Empty(t, result.LegPolylines)
	})

	t.Run("provider rejection surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"0","info":"DAILY_QUERY_OVER_LIMIT","route":{"paths":[]}}`))
		}))
		defer server.Close()

		client := NewAMapClient(server.URL, "test-key", time.Second, slog.Default())

		_, err := client.Route(ctx, origin, dest, nil, types.ModeWalking)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DAILY_QUERY_OVER_LIMIT")
	})

	t.Run("http failure surfaces as an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewAMapClient(server.URL, "test-key", time.Second, slog.Default())

		_, err := client.Route(ctx, origin, dest, nil, types.ModeWalking)
		assert.Error(t, err)
	})
}

func TestParseLocation(t *testing.T) {
	coord, err := parseLocation("116.3972,39.9163")
	require.NoError(t, err)
	assert.InDelta(t, 39.9163, coord.Lat, 1e-9)
	assert.InDelta(t, 116.3972, coord.Lon, 1e-9)

	_, err = parseLocation("116.3972")
	assert.Error(t, err)
	_, err = parseLocation("a,b")
	assert.Error(t, err)
}
