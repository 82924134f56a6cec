package badger_test

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/infrastructure/storage/badger"
)

func newTestCache(t *testing.T) *badger.Cache {
	t.Helper()

	c, err := badger.NewCache(badger.Config{InMemory: true})
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestCache_PutAndGet(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	raw := []byte(`{"type":"line","title":"HRV"}`)
	if err := c.Put(ctx, "chart-1", chart.ZoomMonth, raw); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, found, err := c.Get(ctx, "chart-1", chart.ZoomMonth)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() found = false, want true")
	}
	if string(got) != string(raw) {
		t.Errorf("Get() = %q, want %q", got, raw)
	}
}

func TestCache_ZoomLevelsAreSeparateEntries(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "chart-1", chart.ZoomWeek, []byte("weekly")); err != nil {
		t.Fatal(err)
	}

	_, found, err := c.Get(ctx, "chart-1", chart.ZoomMonth)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get(month) found weekly entry, want miss")
	}
}

func TestCache_GetMiss(t *testing.T) {
	c := newTestCache(t)

	val, found, err := c.Get(context.Background(), "nope", chart.ZoomDay)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found || val != nil {
		t.Errorf("Get() = %q, %v, want nil miss", val, found)
	}
}

func TestCache_TTLExpiry(t *testing.T) {
	c, err := badger.NewCache(badger.Config{InMemory: true, TTL: 50 * time.Millisecond})
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Put(ctx, "chart-1", chart.ZoomDay, []byte("stale soon")); err != nil {
		t.Fatal(err)
	}

	time.Sleep(100 * time.Millisecond)

	_, found, err := c.Get(ctx, "chart-1", chart.ZoomDay)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if found {
		t.Error("Get() found expired entry, want miss")
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	for _, z := range chart.AllZoomLevels() {
		if err := c.Put(ctx, "chart-1", z, []byte(z)); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Put(ctx, "chart-2", chart.ZoomWeek, []byte("other chart")); err != nil {
		t.Fatal(err)
	}

	if err := c.Invalidate(ctx, "chart-1"); err != nil {
		t.Fatalf("Invalidate() error = %v", err)
	}

	for _, z := range chart.AllZoomLevels() {
		if _, found, _ := c.Get(ctx, "chart-1", z); found {
			t.Errorf("Get(chart-1, %v) found = true after invalidation", z)
		}
	}
	if _, found, _ := c.Get(ctx, "chart-2", chart.ZoomWeek); !found {
		t.Error("Get(chart-2) found = false, invalidation leaked across charts")
	}
}

func TestCache_Stats(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	if err := c.Put(ctx, "chart-1", chart.ZoomWeek, []byte("x")); err != nil {
		t.Fatal(err)
	}

	c.Get(ctx, "chart-1", chart.ZoomWeek)
	c.Get(ctx, "chart-1", chart.ZoomYear)

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("Stats() = %+v, want 1 hit 1 miss", stats)
	}
}

func TestCache_CanceledContext(t *testing.T) {
	c := newTestCache(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Put(ctx, "chart-1", chart.ZoomWeek, []byte("x")); err == nil {
		t.Error("Put() error = nil, want context error")
	}
	if _, _, err := c.Get(ctx, "chart-1", chart.ZoomWeek); err == nil {
		t.Error("Get() error = nil, want context error")
	}
}
