package telemetry

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/felixgeelhaar/chartkit/domain/chart"
)

// setupTestMetrics sets up a test meter provider and returns it along with a reader.
func setupTestMetrics(t *testing.T) (*metric.ManualReader, *MetricsProvider) {
	t.Helper()

	reader := metric.NewManualReader()
	provider := metric.NewMeterProvider(metric.WithReader(reader))
	otel.SetMeterProvider(provider)

	mp := NewMetricsProvider(DefaultMetricsConfig())
	if mp.Error() != nil {
		t.Fatalf("failed to create metrics provider: %v", mp.Error())
	}

	return reader, mp
}

// counterTotal sums all data points of a named Int64 counter.
func counterTotal(t *testing.T, reader *metric.ManualReader, name string) (int64, bool) {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("failed to collect metrics: %v", err)
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != name {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("metric %s: expected Sum[int64], got %T", name, m.Data)
			}
			var total int64
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
			return total, true
		}
	}
	return 0, false
}

func TestNewMetricsProvider(t *testing.T) {
	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	if mp == nil {
		t.Fatal("NewMetricsProvider returned nil")
	}
}

func TestMetricsProvider_RecordRender(t *testing.T) {
	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	ctx := context.Background()
	mp.RecordRender(ctx, chart.TypeLine, true, 3*time.Millisecond)
	mp.RecordRender(ctx, chart.TypeBar, false, time.Millisecond)

	total, found := counterTotal(t, reader, "chartkit.renders")
	if !found {
		t.Fatal("chartkit.renders metric not found")
	}
	if total != 2 {
		t.Errorf("renders = %d, want 2", total)
	}
}

func TestMetricsProvider_FailedRenderCountsAsError(t *testing.T) {
	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	mp.RecordRender(context.Background(), chart.TypeHeatmap, false, time.Millisecond)

	total, found := counterTotal(t, reader, "chartkit.errors")
	if !found {
		t.Fatal("chartkit.errors metric not found")
	}
	if total != 1 {
		t.Errorf("errors = %d, want 1", total)
	}
}

func TestMetricsProvider_RecordZoomTransition(t *testing.T) {
	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	mp.RecordZoomTransition(context.Background(), "chart-1", chart.ZoomWeek, chart.ZoomMonth)

	total, found := counterTotal(t, reader, "chartkit.zoom.transitions")
	if !found {
		t.Fatal("chartkit.zoom.transitions metric not found")
	}
	if total != 1 {
		t.Errorf("transitions = %d, want 1", total)
	}
}

func TestMetricsProvider_RecordCacheOutcomes(t *testing.T) {
	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	ctx := context.Background()
	mp.RecordCacheHit(ctx, "chart-1")
	mp.RecordCacheMiss(ctx, "chart-1")
	mp.RecordCacheMiss(ctx, "chart-2")

	hits, _ := counterTotal(t, reader, "chartkit.cache.hits")
	if hits != 1 {
		t.Errorf("cache hits = %d, want 1", hits)
	}
	// Collect again for the second counter; sums are cumulative.
	misses, _ := counterTotal(t, reader, "chartkit.cache.misses")
	if misses != 2 {
		t.Errorf("cache misses = %d, want 2", misses)
	}
}

func TestMetricsProvider_RecordParseFailure(t *testing.T) {
	reader, mp := setupTestMetrics(t)
	defer reader.Shutdown(context.Background())

	mp.RecordParseFailure(context.Background(), "unknown chart type")

	total, found := counterTotal(t, reader, "chartkit.parse.failures")
	if !found {
		t.Fatal("chartkit.parse.failures metric not found")
	}
	if total != 1 {
		t.Errorf("parse failures = %d, want 1", total)
	}
}
