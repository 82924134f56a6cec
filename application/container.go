package application

import (
	"context"
	"sync"
	"time"

	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/infrastructure/hittest"
	"github.com/felixgeelhaar/chartkit/infrastructure/resilience"
	"github.com/felixgeelhaar/chartkit/infrastructure/storage/badger"
	"github.com/felixgeelhaar/chartkit/infrastructure/telemetry"
)

// ContainerConfig configures a chart container.
type ContainerConfig struct {
	// Width is the pixel width; the engine default applies when zero.
	Width float64

	// TooltipTTL is the tooltip lifetime; DefaultTooltipTTL when zero.
	TooltipTTL time.Duration

	// Reaggregate produces replacement data on zoom changes. Nil makes
	// zoom display-only.
	Reaggregate resilience.Reaggregator

	// Executor wraps re-aggregation; defaults when nil.
	Executor *resilience.Executor

	// Cache short-circuits repeated re-aggregations. Optional.
	Cache *badger.Cache

	// Metrics records interaction counters. Optional.
	Metrics *telemetry.MetricsProvider
}

// Container owns one rendered chart: its current specification and
// draw plan, its zoom state machine, and its tooltip. It is the
// embedding surface a host application holds per visible chart.
type Container struct {
	mu      sync.Mutex
	engine  *Engine
	cfg     ContainerConfig
	spec    chart.Spec
	plan    *geometry.Plan
	zoom    *ZoomController
	tooltip *TooltipController
}

// NewContainer renders the specification and wires up the interaction
// controllers.
func NewContainer(engine *Engine, spec chart.Spec, cfg ContainerConfig) (*Container, error) {
	if cfg.Width <= 0 {
		cfg.Width = engine.DefaultWidth()
	}

	c := &Container{
		engine:  engine,
		cfg:     cfg,
		spec:    spec,
		tooltip: NewTooltipController(cfg.TooltipTTL),
	}
	c.plan = engine.RenderParsed(context.Background(), spec, cfg.Width)

	zoom, err := c.newZoomController(spec)
	if err != nil {
		return nil, err
	}
	c.zoom = zoom

	return c, nil
}

// newZoomController builds a controller starting at the spec's zoom.
func (c *Container) newZoomController(spec chart.Spec) (*ZoomController, error) {
	initial := chart.ZoomWeek
	if tf := spec.SpecTimeframe(); tf != nil && tf.Zoom.IsValid() {
		initial = tf.Zoom
	}

	return NewZoomController(ZoomConfig{
		ChartID:     spec.SpecID(),
		Initial:     initial,
		Reaggregate: c.cfg.Reaggregate,
		Executor:    c.cfg.Executor,
		Cache:       c.cfg.Cache,
		Metrics:     c.cfg.Metrics,
		OnZoom:      c.applyZoom,
		OnLoading:   c.setLoading,
		OnSpec:      c.applyReaggregated,
	})
}

// Plan returns the current draw plan.
func (c *Container) Plan() *geometry.Plan {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.plan
}

// Spec returns the current specification.
func (c *Container) Spec() chart.Spec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.spec
}

// Zoom returns the active zoom level.
func (c *Container) Zoom() chart.ZoomLevel {
	return c.zoom.Current()
}

// Loading reports whether a re-aggregation is in flight.
func (c *Container) Loading() bool {
	return c.zoom.Loading()
}

// SelectZoom changes the zoom level. With a re-aggregation callback
// configured the chart keeps its old data until the new data arrives.
func (c *Container) SelectZoom(ctx context.Context, to chart.ZoomLevel) error {
	return c.zoom.Select(ctx, to)
}

// HitTest resolves a pointer position against the current plan. A hit
// shows the tooltip and restarts its dismissal timer; a miss dismisses
// any visible tooltip.
func (c *Container) HitTest(x, y float64) (hittest.Tooltip, bool) {
	c.mu.Lock()
	plan := c.plan
	specType := c.spec.SpecType()
	c.mu.Unlock()

	tip, ok := hittest.Resolve(plan, x, y)
	if !ok {
		c.tooltip.Dismiss()
		return hittest.Tooltip{}, false
	}

	c.tooltip.Show(tip)
	if c.cfg.Metrics != nil {
		c.cfg.Metrics.RecordTooltipHit(context.Background(), specType)
	}
	return tip, true
}

// Tooltip returns the visible tooltip, if any.
func (c *Container) Tooltip() (hittest.Tooltip, bool) {
	return c.tooltip.Current()
}

// ApplySpec replaces the chart's specification. A new chart identity
// resets the zoom state machine; the same identity keeps it, so a
// host pushing fresh data into an existing chart preserves the user's
// zoom.
func (c *Container) ApplySpec(spec chart.Spec) error {
	c.mu.Lock()
	previousID := c.spec.SpecID()
	c.spec = spec
	c.plan = c.engine.RenderParsed(context.Background(), spec, c.cfg.Width)
	c.mu.Unlock()

	c.tooltip.Dismiss()

	if spec.SpecID() != previousID {
		zoom, err := c.newZoomController(spec)
		if err != nil {
			return err
		}
		old := c.zoom
		c.zoom = zoom
		old.Close()
	}
	return nil
}

// applyZoom re-renders the badge after a zoom change, before any
// re-aggregated data arrives.
func (c *Container) applyZoom(z chart.ZoomLevel) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tf := c.spec.SpecTimeframe(); tf != nil {
		tf.Zoom = z
	}
	loading := c.plan.Loading
	c.plan = c.engine.RenderParsed(context.Background(), c.spec, c.cfg.Width)
	c.plan.Loading = loading
}

// applyReaggregated swaps in the re-aggregated specification. A result
// carrying a chart identity the container no longer shows is dropped:
// the host replaced the chart while the fetch was outstanding.
func (c *Container) applyReaggregated(spec chart.Spec) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if spec.SpecID() != c.spec.SpecID() {
		return
	}

	c.spec = spec
	c.plan = c.engine.RenderParsed(context.Background(), spec, c.cfg.Width)
}

// setLoading marks the plan while a re-aggregation is in flight.
func (c *Container) setLoading(loading bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.plan.Loading = loading
}

// Close releases the interaction controllers.
func (c *Container) Close() {
	c.zoom.Close()
	c.tooltip.Close()
}
