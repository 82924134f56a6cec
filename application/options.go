package application

import (
	"github.com/felixgeelhaar/chartkit/domain/theme"
	"github.com/felixgeelhaar/chartkit/infrastructure/svg"
	"github.com/felixgeelhaar/chartkit/infrastructure/telemetry"
)

// Option configures the engine.
type Option func(*Engine)

// WithTheme sets the engine-wide theme. Per-chart theme overrides in
// specifications still win.
func WithTheme(th theme.Theme) Option {
	return func(e *Engine) {
		e.theme = th
	}
}

// WithDefaultWidth sets the render width used when callers supply none.
func WithDefaultWidth(width float64) Option {
	return func(e *Engine) {
		if width > 0 {
			e.width = width
		}
	}
}

// WithMetrics attaches a metrics provider.
func WithMetrics(mp *telemetry.MetricsProvider) Option {
	return func(e *Engine) {
		e.metrics = mp
	}
}

// WithSVGWriter overrides the SVG writer, for callers that need a
// different theme on the markup than on the geometry.
func WithSVGWriter(w *svg.Writer) Option {
	return func(e *Engine) {
		e.writer = w
	}
}
