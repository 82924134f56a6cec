// Package geometry models the per-render draw plan: immutable value
// objects recomputed on every render from specification, pixel width,
// and theme. A plan is the sole, read-only contract between a renderer
// and the hit-test engine, and it does not outlive one render pass —
// nothing here is cached or mutated in place.
package geometry

// Point is one rendered sample in pixel space.
type Point struct {
	X      float64
	Y      float64
	Value  float64
	Label  string
	Series int
	Color  string
}

// Path is a stroked polyline through rendered points. Renderers emit one
// path per contiguous run of samples; a gap in the data starts a new
// path rather than bridging it.
type Path struct {
	Points []Point
	Color  string
	Dashed bool
}

// Area is a filled region: a line segment closed down to the chart's
// bottom edge, painted as a gradient fill under the line.
type Area struct {
	Points []Point
	Bottom float64
	Color  string
}

// Bar is one rendered bar in pixel space.
type Bar struct {
	X      float64
	Y      float64
	W      float64
	H      float64
	Value  float64
	Label  string
	Series int
	Color  string
}

// Cell is one rendered heatmap cell.
type Cell struct {
	X     float64
	Y     float64
	W     float64
	H     float64
	Value float64
	Row   int
	Col   int
	Color string
}

// Delta is one rendered comparison row. Better reflects the resolved
// improvement judgement, not the raw sign of the difference.
type Delta struct {
	X      float64
	Y      float64
	W      float64
	H      float64
	Label  string
	ValueA float64
	ValueB float64
	Diff   float64
	Pct    float64
	Better bool
	Color  string
}

// VLine is a vertical marker line (annotation, distribution mean).
type VLine struct {
	X      float64
	Label  string
	Color  string
	Dashed bool
}

// AxisLabel is positioned axis text.
type AxisLabel struct {
	X    float64
	Y    float64
	Text string
}

// LegendEntry names one series and its color swatch.
type LegendEntry struct {
	Label string
	Color string
}

// Plan is the complete geometric draw plan for one render pass.
type Plan struct {
	Kind   string
	Width  float64
	Height float64

	// Container shell metadata.
	Title   string
	Insight string
	Zoom    string
	Loading bool

	// Non-empty marks a visible placeholder plan for unrenderable input.
	Placeholder string

	// Points are the hit-testable samples; Markers is the subset drawn
	// as visible dots.
	Points  []Point
	Markers []Point
	Paths   []Path
	Areas   []Area
	Bars    []Bar
	Cells   []Cell
	Deltas  []Delta
	VLines  []VLine
	XLabels []AxisLabel
	YLabels []AxisLabel
	Legend  []LegendEntry
}
