package svg

import (
	"errors"
	"strings"
	"testing"

	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/theme"
	"github.com/felixgeelhaar/chartkit/infrastructure/render"
)

func renderLine(t *testing.T) string {
	t.Helper()

	spec := &chart.LineSpec{
		Series: []chart.Series{{
			Label: "HRV",
			Data:  []*float64{chart.F(40), chart.F(45), chart.F(50)},
		}},
		Labels:      []string{"Mon", "Tue", "Wed"},
		Timeframe:   &chart.Timeframe{Zoom: chart.ZoomWeek},
		Annotations: []chart.Annotation{{Label: "Tue", Text: "travel day"}},
	}
	spec.Type = chart.TypeLine
	spec.Title = "Recovery"
	spec.Insight = "Trending upward"

	plan, err := render.Render(spec, 600, theme.Default())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	doc, err := NewWriter(theme.Default()).Render(plan)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	return doc
}

func TestWriter_ProducesSVGDocument(t *testing.T) {
	doc := renderLine(t)

	if !strings.Contains(doc, "<svg") || !strings.Contains(doc, "</svg>") {
		t.Fatalf("output is not an SVG document:\n%s", doc)
	}
	if !strings.Contains(doc, "Recovery") {
		t.Error("title missing from document")
	}
	if !strings.Contains(doc, "Trending upward") {
		t.Error("insight caption missing from document")
	}
	if !strings.Contains(doc, "week") {
		t.Error("zoom badge missing from document")
	}
}

func TestWriter_DrawsLineGeometry(t *testing.T) {
	doc := renderLine(t)

	if !strings.Contains(doc, "<path") {
		t.Error("no path elements for line series")
	}
	if !strings.Contains(doc, "stroke-dasharray") {
		t.Error("annotation line should be dashed")
	}
	if !strings.Contains(doc, "<circle") {
		t.Error("markers missing for a short series")
	}
	if !strings.Contains(doc, "Mon") {
		t.Error("x axis labels missing")
	}
}

func TestWriter_DrawsBars(t *testing.T) {
	spec := &chart.BarSpec{
		Series: []chart.Series{{Label: "Sessions", Data: []*float64{chart.F(3), chart.F(7)}}},
		Labels: []string{"Week 1", "Week 2"},
	}
	spec.Type = chart.TypeBar
	spec.Title = "Training volume"

	plan, err := render.Render(spec, 400, theme.Default())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	doc, err := NewWriter(theme.Default()).Render(plan)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(doc, "<rect") {
		t.Error("no rect elements for bars")
	}
	if !strings.Contains(doc, "Sessions") {
		t.Error("legend entry missing")
	}
}

func TestWriter_Placeholder(t *testing.T) {
	plan := render.Placeholder("Unable to render chart", 400)

	doc, err := NewWriter(theme.Default()).Render(plan)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(doc, "Unable to render chart") {
		t.Error("placeholder message missing")
	}
}

func TestWriter_LoadingOverlay(t *testing.T) {
	plan := render.Placeholder("", 400)
	plan.Placeholder = ""
	plan.Loading = true
	plan.Title = "Busy"

	doc, err := NewWriter(theme.Default()).Render(plan)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(doc, "Loading") {
		t.Error("loading overlay missing")
	}
}

func TestWriter_NilPlan(t *testing.T) {
	_, err := NewWriter(theme.Default()).Render(nil)
	if !errors.Is(err, ErrNilPlan) {
		t.Errorf("error = %v, want ErrNilPlan", err)
	}
}
