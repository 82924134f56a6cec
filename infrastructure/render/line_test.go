package render

import (
	"math"
	"testing"

	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/theme"
)

func lineSpec() *chart.LineSpec {
	return &chart.LineSpec{
		Base: chart.Base{ID: "hrv-1", Type: chart.TypeLine, Title: "HRV Trend"},
		Series: []chart.Series{{
			Label: "HRV",
			Data:  []*float64{chart.F(40), chart.F(45), chart.F(42), nil, chart.F(50)},
		}},
		Labels: []string{"1/1", "1/2", "1/3", "1/4", "1/5"},
	}
}

func TestLineRenderer_ScaleSpansPaddedRange(t *testing.T) {
	plan := renderLine(lineSpec(), 400, theme.Default())

	// Data [40,50] padded by 10% -> Nice(39,51) -> [38,52] at step 2.
	if len(plan.YLabels) == 0 {
		t.Fatal("no y labels")
	}
	if got := plan.YLabels[0].Text; got != "38" {
		t.Errorf("first tick = %q, want 38", got)
	}
	if got := plan.YLabels[len(plan.YLabels)-1].Text; got != "52" {
		t.Errorf("last tick = %q, want 52", got)
	}
}

func TestLineRenderer_NullKeepsSlot(t *testing.T) {
	plan := renderLine(lineSpec(), 400, theme.Default())

	if len(plan.Points) != 4 {
		t.Fatalf("points = %d, want 4 (null excluded)", len(plan.Points))
	}

	// The sample after the gap still lands at the 5th slot, the right
	// edge of the content box.
	last := plan.Points[len(plan.Points)-1]
	wantX := 400 - PadX
	if math.Abs(last.X-wantX) > 1e-9 {
		t.Errorf("post-gap point at x=%v, want %v (slot preserved)", last.X, wantX)
	}
}

func TestLineRenderer_NullBreaksPath(t *testing.T) {
	plan := renderLine(lineSpec(), 400, theme.Default())

	if len(plan.Paths) != 1 {
		t.Fatalf("paths = %d, want 1 (post-gap run has a single point)", len(plan.Paths))
	}
	if got := len(plan.Paths[0].Points); got != 3 {
		t.Errorf("pre-gap segment has %d points, want 3", got)
	}
	if len(plan.Areas) != len(plan.Paths) {
		t.Errorf("areas = %d, want one per path segment", len(plan.Areas))
	}
}

func TestLineRenderer_InteriorNullSplitsIntoTwoSegments(t *testing.T) {
	s := lineSpec()
	s.Series[0].Data = []*float64{chart.F(1), chart.F(2), nil, chart.F(3), chart.F(4)}

	plan := renderLine(s, 400, theme.Default())

	if len(plan.Paths) != 2 {
		t.Fatalf("paths = %d, want 2 disjoint segments around the gap", len(plan.Paths))
	}
	if len(plan.Paths[0].Points) != 2 || len(plan.Paths[1].Points) != 2 {
		t.Errorf("segment sizes = %d/%d, want 2/2",
			len(plan.Paths[0].Points), len(plan.Paths[1].Points))
	}
}

func TestLineRenderer_InvertedYAxis(t *testing.T) {
	s := lineSpec()
	plan := renderLine(s, 400, theme.Default())

	// 50 > 40, so its pixel y must be smaller.
	lowest, highest := plan.Points[0], plan.Points[len(plan.Points)-1]
	if highest.Value < lowest.Value {
		lowest, highest = highest, lowest
	}
	if highest.Y >= lowest.Y {
		t.Errorf("value %v at y=%v should sit above value %v at y=%v",
			highest.Value, highest.Y, lowest.Value, lowest.Y)
	}
}

func TestLineRenderer_MarkerThreshold(t *testing.T) {
	s := lineSpec()
	plan := renderLine(s, 400, theme.Default())
	if len(plan.Markers) != 4 {
		t.Errorf("markers = %d, want 4 for a short series", len(plan.Markers))
	}

	long := make([]*float64, 20)
	for i := range long {
		long[i] = chart.F(float64(i))
	}
	s.Series[0].Data = long
	plan = renderLine(s, 400, theme.Default())
	if len(plan.Markers) != 0 {
		t.Errorf("markers = %d, want none above %d samples", len(plan.Markers), MarkerMaxSamples)
	}
	if len(plan.Points) != 20 {
		t.Errorf("points = %d, want all samples hit-testable regardless of markers", len(plan.Points))
	}
}

func TestLineRenderer_Annotations(t *testing.T) {
	s := lineSpec()
	s.Annotations = []chart.Annotation{
		{Label: "1/3", Text: "Workout"},
		{Label: "2/9", Text: "No such label"},
	}

	plan := renderLine(s, 400, theme.Default())

	if len(plan.VLines) != 1 {
		t.Fatalf("vlines = %d, want 1 (unmatched annotation dropped silently)", len(plan.VLines))
	}
	if plan.VLines[0].Label != "Workout" {
		t.Errorf("annotation label = %q, want Workout", plan.VLines[0].Label)
	}
}

func TestLineRenderer_EmptySeriesStillRenders(t *testing.T) {
	s := &chart.LineSpec{Base: chart.Base{Type: chart.TypeLine, Title: "Empty"}}

	plan := renderLine(s, 400, theme.Default())

	if plan == nil || plan.Placeholder != "" {
		t.Fatal("empty series must render a plan, not a placeholder")
	}
	if len(plan.YLabels) == 0 {
		t.Error("expected a default axis even without data")
	}
}

func TestLineRenderer_SharedScaleAcrossSeries(t *testing.T) {
	s := lineSpec()
	s.Series = append(s.Series, chart.Series{
		Label: "Baseline",
		Data:  []*float64{chart.F(10), chart.F(12), chart.F(11), chart.F(13), chart.F(12)},
	})

	plan := renderLine(s, 400, theme.Default())

	// With both series on one scale, the first tick drops below 10.
	first := plan.YLabels[0].Text
	if first == "38" {
		t.Errorf("first tick %q ignores second series; scale must be shared", first)
	}
	if len(plan.Legend) != 2 {
		t.Errorf("legend entries = %d, want 2", len(plan.Legend))
	}
}
