// Package telemetry provides observability infrastructure including
// OpenTelemetry metrics support for the chartkit engine.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/felixgeelhaar/chartkit/domain/chart"
)

// MetricsProvider provides access to metrics instruments.
type MetricsProvider struct {
	meter metric.Meter

	// Counters
	renders         metric.Int64Counter
	parseFailures   metric.Int64Counter
	zoomTransitions metric.Int64Counter
	cacheHits       metric.Int64Counter
	cacheMisses     metric.Int64Counter
	tooltipHits     metric.Int64Counter
	errors          metric.Int64Counter

	// Histograms
	renderDuration metric.Float64Histogram

	initOnce sync.Once
	initErr  error
}

// MetricsConfig configures the metrics provider.
type MetricsConfig struct {
	// MeterName is the name of the meter (default: "github.com/felixgeelhaar/chartkit").
	MeterName string
	// MeterVersion is the version of the meter.
	MeterVersion string
	// Attributes are default attributes to attach to all metrics.
	Attributes []attribute.KeyValue
}

// DefaultMetricsConfig returns a default metrics configuration.
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		MeterName:    "github.com/felixgeelhaar/chartkit",
		MeterVersion: "1.0.0",
	}
}

// NewMetricsProvider creates a new metrics provider.
func NewMetricsProvider(config MetricsConfig) *MetricsProvider {
	if config.MeterName == "" {
		config = DefaultMetricsConfig()
	}

	provider := otel.GetMeterProvider()
	meter := provider.Meter(
		config.MeterName,
		metric.WithInstrumentationVersion(config.MeterVersion),
	)

	mp := &MetricsProvider{
		meter: meter,
	}

	mp.initOnce.Do(func() {
		mp.initErr = mp.initInstruments()
	})

	return mp
}

// initInstruments initializes all metric instruments.
func (mp *MetricsProvider) initInstruments() error {
	var err error

	mp.renders, err = mp.meter.Int64Counter(
		"chartkit.renders",
		metric.WithDescription("Number of chart renders"),
		metric.WithUnit("{render}"),
	)
	if err != nil {
		return err
	}

	mp.parseFailures, err = mp.meter.Int64Counter(
		"chartkit.parse.failures",
		metric.WithDescription("Number of specifications rejected at the parse boundary"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return err
	}

	mp.zoomTransitions, err = mp.meter.Int64Counter(
		"chartkit.zoom.transitions",
		metric.WithDescription("Number of zoom level transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return err
	}

	mp.cacheHits, err = mp.meter.Int64Counter(
		"chartkit.cache.hits",
		metric.WithDescription("Number of re-aggregation cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return err
	}

	mp.cacheMisses, err = mp.meter.Int64Counter(
		"chartkit.cache.misses",
		metric.WithDescription("Number of re-aggregation cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return err
	}

	mp.tooltipHits, err = mp.meter.Int64Counter(
		"chartkit.tooltip.hits",
		metric.WithDescription("Number of successful tooltip hit-tests"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return err
	}

	mp.errors, err = mp.meter.Int64Counter(
		"chartkit.errors",
		metric.WithDescription("Number of errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	mp.renderDuration, err = mp.meter.Float64Histogram(
		"chartkit.render.duration",
		metric.WithDescription("Duration of chart renders"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return err
	}

	return nil
}

// Error returns any initialization error.
func (mp *MetricsProvider) Error() error {
	return mp.initErr
}

// RecordRender records one chart render.
func (mp *MetricsProvider) RecordRender(ctx context.Context, chartType chart.Type, success bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.String("chart.type", string(chartType)),
		attribute.Bool("success", success),
	}

	mp.renders.Add(ctx, 1, metric.WithAttributes(attrs...))
	mp.renderDuration.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))

	if !success {
		mp.errors.Add(ctx, 1, metric.WithAttributes(
			attribute.String("error.type", "render"),
			attribute.String("chart.type", string(chartType)),
		))
	}
}

// RecordParseFailure records a specification rejected at the parse
// boundary.
func (mp *MetricsProvider) RecordParseFailure(ctx context.Context, reason string) {
	mp.parseFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}

// RecordZoomTransition records a zoom level change.
func (mp *MetricsProvider) RecordZoomTransition(ctx context.Context, chartID string, from, to chart.ZoomLevel) {
	mp.zoomTransitions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("chart.id", chartID),
		attribute.String("zoom.from", string(from)),
		attribute.String("zoom.to", string(to)),
	))
}

// RecordCacheHit records a re-aggregation cache hit.
func (mp *MetricsProvider) RecordCacheHit(ctx context.Context, chartID string) {
	mp.cacheHits.Add(ctx, 1, metric.WithAttributes(
		attribute.String("chart.id", chartID),
	))
}

// RecordCacheMiss records a re-aggregation cache miss.
func (mp *MetricsProvider) RecordCacheMiss(ctx context.Context, chartID string) {
	mp.cacheMisses.Add(ctx, 1, metric.WithAttributes(
		attribute.String("chart.id", chartID),
	))
}

// RecordTooltipHit records a successful tooltip hit-test.
func (mp *MetricsProvider) RecordTooltipHit(ctx context.Context, chartType chart.Type) {
	mp.tooltipHits.Add(ctx, 1, metric.WithAttributes(
		attribute.String("chart.type", string(chartType)),
	))
}

// RecordError records an error.
func (mp *MetricsProvider) RecordError(ctx context.Context, errorType string, details map[string]string) {
	attrs := []attribute.KeyValue{
		attribute.String("error.type", errorType),
	}
	for k, v := range details {
		attrs = append(attrs, attribute.String(k, v))
	}

	mp.errors.Add(ctx, 1, metric.WithAttributes(attrs...))
}
