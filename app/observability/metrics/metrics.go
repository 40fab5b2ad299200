package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the planning engine's metric instruments.
type AppMetrics struct {
	PlanRequestsTotal   metric.Int64Counter
	PlanDurationSeconds metric.Float64Histogram
	RouteFallbackTotal  metric.Int64Counter
	GeocodeErrorsTotal  metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the instruments once, using the globally
// configured MeterProvider. Safe to call from tests: the default provider
// is a no-op.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("itinerary-planner")
		var err error
		m := &AppMetrics{}

		m.PlanRequestsTotal, err = meter.Int64Counter(
			"plan_requests_total",
			metric.WithDescription("Total number of planning requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_requests_total: %v", err)
		}

		m.PlanDurationSeconds, err = meter.Float64Histogram(
			"plan_duration_seconds",
			metric.WithDescription("Duration of planning requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create plan_duration_seconds: %v", err)
		}

		m.RouteFallbackTotal, err = meter.Int64Counter(
			"route_fallback_total",
			metric.WithDescription("Total number of plans routed via the deterministic fallback"),
			metric.WithUnit("{plan}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create route_fallback_total: %v", err)
		}

		m.GeocodeErrorsTotal, err = meter.Int64Counter(
			"geocode_errors_total",
			metric.WithDescription("Total number of failed geocode lookups"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_errors_total: %v", err)
		}

		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance, initializing
// it on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
