// Package application provides the chartkit application services: the
// rendering engine over raw specifications and conversational text, and
// the per-chart container coordinating zoom and tooltip state.
package application

import (
	"context"
	"time"

	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/domain/theme"
	"github.com/felixgeelhaar/chartkit/infrastructure/extract"
	"github.com/felixgeelhaar/chartkit/infrastructure/logging"
	"github.com/felixgeelhaar/chartkit/infrastructure/render"
	"github.com/felixgeelhaar/chartkit/infrastructure/svg"
	"github.com/felixgeelhaar/chartkit/infrastructure/telemetry"
)

// placeholderMessage is shown in place of unrenderable specifications.
const placeholderMessage = "Unable to render chart"

// Engine renders specifications and conversational text to draw plans
// and SVG documents. Malformed specifications degrade to a visible
// placeholder instead of failing the surrounding message.
type Engine struct {
	theme   theme.Theme
	writer  *svg.Writer
	metrics *telemetry.MetricsProvider
	width   float64
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		theme: theme.Default(),
		width: 600,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.writer == nil {
		e.writer = svg.NewWriter(e.theme)
	}
	return e
}

// DefaultWidth returns the render width used when callers supply none.
func (e *Engine) DefaultWidth() float64 {
	return e.width
}

// ValidateSpec parses a raw specification without rendering it.
func (e *Engine) ValidateSpec(raw []byte) (chart.Spec, error) {
	spec, err := chart.Parse(raw)
	if err != nil {
		if e.metrics != nil {
			e.metrics.RecordParseFailure(context.Background(), err.Error())
		}
		return nil, err
	}
	return spec, nil
}

// RenderSpec renders a raw specification to a draw plan. Parse and
// render failures yield a placeholder plan, never a nil plan.
func (e *Engine) RenderSpec(ctx context.Context, raw []byte, width float64) *geometry.Plan {
	if width <= 0 {
		width = e.width
	}

	spec, err := e.ValidateSpec(raw)
	if err != nil {
		logging.Get().Warn().Err(err).Msg("specification rejected, rendering placeholder")
		return render.Placeholder(placeholderMessage, width)
	}

	return e.RenderParsed(ctx, spec, width)
}

// RenderParsed renders an already-parsed specification to a draw plan.
func (e *Engine) RenderParsed(ctx context.Context, spec chart.Spec, width float64) *geometry.Plan {
	if width <= 0 {
		width = e.width
	}

	start := time.Now()
	plan, err := render.Render(spec, width, e.theme)
	elapsed := time.Since(start)

	if e.metrics != nil {
		e.metrics.RecordRender(ctx, spec.SpecType(), err == nil, elapsed)
	}

	event := logging.Chart(logging.Get().Debug(), spec.SpecID(), spec.SpecType())
	logging.Render(event, width, elapsed).Msg("rendered chart")

	if err != nil {
		logging.Get().Warn().Err(err).Str("chart_id", spec.SpecID()).Msg("render degraded to placeholder")
	}
	return plan
}

// RenderSVG renders a raw specification to an SVG document.
func (e *Engine) RenderSVG(ctx context.Context, raw []byte, width float64) (string, error) {
	plan := e.RenderSpec(ctx, raw, width)
	return e.writer.Render(plan)
}

// PlanSVG serializes an existing draw plan to an SVG document.
func (e *Engine) PlanSVG(plan *geometry.Plan) (string, error) {
	return e.writer.Render(plan)
}

// RenderedSegment is one segment of a rendered conversational message:
// prose passed through verbatim, or a chart segment carrying its draw
// plan.
type RenderedSegment struct {
	Kind extract.SegmentKind
	Text string
	Plan *geometry.Plan
}

// RenderText splits conversational text and renders every embedded
// chart specification. Prose order is preserved; unrenderable blocks
// become placeholder plans.
func (e *Engine) RenderText(ctx context.Context, text string, width float64) []RenderedSegment {
	segments := extract.Split(text)

	out := make([]RenderedSegment, 0, len(segments))
	charts := 0
	for _, seg := range segments {
		rendered := RenderedSegment{Kind: seg.Kind, Text: seg.Text}
		if seg.Kind == extract.SegmentChart {
			charts++
			rendered.Plan = e.RenderSpec(ctx, []byte(seg.Text), width)
		}
		out = append(out, rendered)
	}

	logging.Segments(logging.Get().Debug(), len(segments), charts).Msg("rendered message")
	return out
}
