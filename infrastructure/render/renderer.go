// Package render turns chart specifications into geometric draw plans.
// One renderer per chart kind; all of them share the fixed chart height
// and padding and delegate every numeric decision to domain/scale.
//
// Renderers are pure: the same specification, width, and theme always
// produce the same plan, and a plan is never reused across renders.
package render

import (
	"fmt"

	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/domain/theme"
)

// Fixed layout. Width is caller-supplied; everything vertical is fixed.
const (
	// ChartHeight is the total plan height for axis-based charts.
	ChartHeight = 220.0

	// PadX and PadY inset the content box from the plan edges; axis
	// labels live in the inset.
	PadX = 16.0
	PadY = 12.0

	// MaxAxisLabels caps visible x-axis labels before sparse thinning.
	MaxAxisLabels = 6

	// MarkerMaxSamples is the sample count at or below which a series
	// gets visible point markers.
	MarkerMaxSamples = 14

	// BarWidthCap limits individual bar width regardless of slot size.
	BarWidthCap = 40.0

	// MinBarHeight keeps near-zero bars visible and tappable.
	MinBarHeight = 1.0

	// DeltaRowHeight is the height of one comparison row.
	DeltaRowHeight = 36.0

	// rangePad is the fractional headroom added around line and scatter
	// value ranges before the nice scale expands them.
	rangePad = 0.1
)

// Render dispatches a specification to its renderer and returns the draw
// plan. The per-chart theme override, when present, wins over the passed
// theme. A specification of an unrecognized dynamic type yields a
// visible placeholder plan together with the error.
func Render(spec chart.Spec, width float64, th theme.Theme) (*geometry.Plan, error) {
	if override := spec.SpecTheme(); override != nil {
		th = *override
	}

	switch s := spec.(type) {
	case *chart.LineSpec:
		return renderLine(s, width, th), nil
	case *chart.BarSpec:
		return renderBar(s, width, th), nil
	case *chart.ScatterSpec:
		return renderScatter(s, width, th), nil
	case *chart.HeatmapSpec:
		return renderHeatmap(s, width, th), nil
	case *chart.DistributionSpec:
		return renderDistribution(s, width, th), nil
	case *chart.ComparisonSpec:
		return renderComparison(s, width, th), nil
	default:
		err := fmt.Errorf("%w: %T", chart.ErrUnknownChartType, spec)
		return Placeholder(err.Error(), width), err
	}
}

// Placeholder builds the visible non-fatal plan rendered in place of a
// chart that could not be parsed or dispatched.
func Placeholder(msg string, width float64) *geometry.Plan {
	return &geometry.Plan{
		Kind:        "placeholder",
		Width:       width,
		Height:      ChartHeight,
		Placeholder: msg,
	}
}

// newPlan seeds a plan with the shared container metadata.
func newPlan(spec chart.Spec, width, height float64) *geometry.Plan {
	plan := &geometry.Plan{
		Kind:    spec.SpecType().String(),
		Width:   width,
		Height:  height,
		Title:   spec.SpecTitle(),
		Insight: spec.SpecInsight(),
	}
	if tf := spec.SpecTimeframe(); tf != nil {
		plan.Zoom = tf.Zoom.String()
	}
	return plan
}

// contentBox returns the drawable region inside the padding.
func contentBox(width float64) (w, h float64) {
	return width - 2*PadX, ChartHeight - 2*PadY
}

// seriesColor resolves a series color override against the theme.
func seriesColor(s chart.Series, index int, th theme.Theme) string {
	if s.Color != "" {
		return s.Color
	}
	return th.SeriesColor(index)
}

// labelAt returns labels[i] when present.
func labelAt(labels []string, i int) string {
	if i >= 0 && i < len(labels) {
		return labels[i]
	}
	return ""
}
