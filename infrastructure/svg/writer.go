// Package svg serializes draw plans to standalone SVG documents using
// svgo. The writer is the only place pixel geometry meets markup; it
// draws exactly what the plan contains and computes no chart math of
// its own.
package svg

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/domain/theme"
)

// Layout constants for the container shell drawn around the plan.
const (
	// HeaderHeight is the title and zoom band above the chart body.
	HeaderHeight = 44

	// FooterHeight is the insight caption band below the chart body.
	FooterHeight = 24

	// MarkerRadius is the radius of visible sample dots.
	MarkerRadius = 3

	// SwatchSize is the side of a legend color swatch.
	SwatchSize = 10

	// LegendEntryWidth is the horizontal slot reserved per legend entry.
	LegendEntryWidth = 110
)

// ErrNilPlan indicates Write was called without a plan.
var ErrNilPlan = errors.New("svg: nil draw plan")

// Writer serializes draw plans using one theme.
type Writer struct {
	theme theme.Theme
}

// NewWriter creates a writer with the given theme.
func NewWriter(th theme.Theme) *Writer {
	return &Writer{theme: th}
}

// Render returns the plan as an SVG document string.
func (w *Writer) Render(plan *geometry.Plan) (string, error) {
	var b strings.Builder
	if err := w.Write(&b, plan); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Write serializes the plan as a standalone SVG document.
func (w *Writer) Write(out io.Writer, plan *geometry.Plan) error {
	if plan == nil {
		return ErrNilPlan
	}

	width := px(plan.Width)
	height := HeaderHeight + px(plan.Height)
	if plan.Insight != "" {
		height += FooterHeight
	}

	canvas := svgo.New(out)
	canvas.Start(width, height, `font-family="Helvetica,Arial,sans-serif"`)
	defer canvas.End()

	canvas.Rect(0, 0, width, height, "fill:"+w.theme.Background)

	w.writeHeader(canvas, plan, width)

	canvas.Group(fmt.Sprintf(`transform="translate(0,%d)"`, HeaderHeight))
	w.writeBody(canvas, plan)
	canvas.Gend()

	if plan.Insight != "" {
		canvas.Text(12, HeaderHeight+px(plan.Height)+FooterHeight-8, plan.Insight,
			"font-size:12px;fill:"+w.theme.TextSecondary)
	}

	return nil
}

// writeHeader draws the title, zoom badge, and legend band.
func (w *Writer) writeHeader(canvas *svgo.SVG, plan *geometry.Plan, width int) {
	canvas.Text(12, 20, plan.Title, "font-size:14px;font-weight:bold;fill:"+w.theme.TextPrimary)

	if plan.Zoom != "" {
		canvas.Text(width-12, 20, plan.Zoom,
			`text-anchor="end"`, "font-size:11px;fill:"+w.theme.TextSecondary)
	}

	x := width - 12 - LegendEntryWidth*len(plan.Legend)
	for _, entry := range plan.Legend {
		canvas.Rect(x, 28, SwatchSize, SwatchSize, "fill:"+entry.Color)
		canvas.Text(x+SwatchSize+5, 37, entry.Label, "font-size:11px;fill:"+w.theme.TextSecondary)
		x += LegendEntryWidth
	}
}

// writeBody draws the plan's geometry inside the translated chart group.
func (w *Writer) writeBody(canvas *svgo.SVG, plan *geometry.Plan) {
	if plan.Placeholder != "" {
		w.writePlaceholder(canvas, plan)
		return
	}

	for _, area := range plan.Areas {
		w.writeArea(canvas, area)
	}
	for _, path := range plan.Paths {
		w.writePath(canvas, path)
	}
	for _, bar := range plan.Bars {
		canvas.Rect(px(bar.X), px(bar.Y), px(bar.W), px(bar.H), "fill:"+bar.Color)
	}
	for _, cell := range plan.Cells {
		canvas.Rect(px(cell.X), px(cell.Y), px(cell.W), px(cell.H), "fill:"+cell.Color)
	}
	for _, delta := range plan.Deltas {
		w.writeDelta(canvas, delta)
	}
	for _, line := range plan.VLines {
		w.writeVLine(canvas, line, plan.Height)
	}
	for _, marker := range plan.Markers {
		canvas.Circle(px(marker.X), px(marker.Y), MarkerRadius, "fill:"+marker.Color)
	}
	for _, label := range plan.XLabels {
		canvas.Text(px(label.X), px(label.Y), label.Text,
			`text-anchor="middle"`, "font-size:10px;fill:"+w.theme.TextSecondary)
	}
	for _, label := range plan.YLabels {
		canvas.Text(px(label.X), px(label.Y), label.Text,
			`text-anchor="end"`, "font-size:10px;fill:"+w.theme.TextSecondary)
	}

	if plan.Loading {
		w.writeLoading(canvas, plan)
	}
}

// writeArea draws a filled region closed down to the chart bottom.
func (w *Writer) writeArea(canvas *svgo.SVG, area geometry.Area) {
	if len(area.Points) < 2 {
		return
	}

	var d strings.Builder
	first := area.Points[0]
	fmt.Fprintf(&d, "M %d %d", px(first.X), px(area.Bottom))
	for _, p := range area.Points {
		fmt.Fprintf(&d, " L %d %d", px(p.X), px(p.Y))
	}
	last := area.Points[len(area.Points)-1]
	fmt.Fprintf(&d, " L %d %d Z", px(last.X), px(area.Bottom))

	canvas.Path(d.String(), "fill:"+area.Color+";fill-opacity:0.15;stroke:none")
}

// writePath draws a stroked polyline.
func (w *Writer) writePath(canvas *svgo.SVG, path geometry.Path) {
	if len(path.Points) < 2 {
		return
	}

	var d strings.Builder
	for i, p := range path.Points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		fmt.Fprintf(&d, "%s %d %d ", cmd, px(p.X), px(p.Y))
	}

	style := "fill:none;stroke:" + path.Color + ";stroke-width:2"
	if path.Dashed {
		style += ";stroke-dasharray:4,3"
	}
	canvas.Path(strings.TrimSpace(d.String()), style)
}

// writeDelta draws one comparison row: metric label on the left, the
// two values and the signed percentage on the right.
func (w *Writer) writeDelta(canvas *svgo.SVG, delta geometry.Delta) {
	midY := px(delta.Y + delta.H/2 + 4)

	canvas.Rect(px(delta.X), px(delta.Y), px(delta.W), px(delta.H),
		"fill:"+w.theme.Surface)
	canvas.Text(px(delta.X)+10, midY, delta.Label,
		"font-size:12px;fill:"+w.theme.TextPrimary)

	values := fmt.Sprintf("%g → %g", delta.ValueA, delta.ValueB)
	canvas.Text(px(delta.X+delta.W)-90, midY, values,
		`text-anchor="end"`, "font-size:12px;fill:"+w.theme.TextSecondary)

	pct := fmt.Sprintf("%+.1f%%", delta.Pct)
	canvas.Text(px(delta.X+delta.W)-10, midY, pct,
		`text-anchor="end"`, "font-size:12px;font-weight:bold;fill:"+delta.Color)
}

// writeVLine draws a vertical marker spanning the chart body.
func (w *Writer) writeVLine(canvas *svgo.SVG, line geometry.VLine, height float64) {
	style := "stroke:" + line.Color + ";stroke-width:1"
	if line.Dashed {
		style += ";stroke-dasharray:4,3"
	}
	canvas.Line(px(line.X), 0, px(line.X), px(height), style)

	if line.Label != "" {
		canvas.Text(px(line.X)+4, 12, line.Label, "font-size:10px;fill:"+line.Color)
	}
}

// writePlaceholder draws the unrenderable-input box.
func (w *Writer) writePlaceholder(canvas *svgo.SVG, plan *geometry.Plan) {
	width, height := px(plan.Width), px(plan.Height)

	canvas.Rect(0, 0, width, height,
		"fill:"+w.theme.Surface+";stroke:"+w.theme.Border+";stroke-width:1")
	canvas.Text(width/2, height/2, plan.Placeholder,
		`text-anchor="middle"`, "font-size:12px;fill:"+w.theme.TextSecondary)
}

// writeLoading dims the chart body while re-aggregation is in flight.
func (w *Writer) writeLoading(canvas *svgo.SVG, plan *geometry.Plan) {
	width, height := px(plan.Width), px(plan.Height)

	canvas.Rect(0, 0, width, height, "fill:"+w.theme.Background+";fill-opacity:0.6")
	canvas.Text(width/2, height/2, "Loading…",
		`text-anchor="middle"`, "font-size:12px;fill:"+w.theme.TextSecondary)
}

// px rounds a pixel coordinate for markup output.
func px(v float64) int {
	return int(math.Round(v))
}
