package render

import (
	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/domain/scale"
	"github.com/felixgeelhaar/chartkit/domain/theme"
)

// renderLine plots every series against one shared nice scale. The y
// axis is inverted (larger values sit higher, so they map to smaller
// pixel offsets). Nil samples keep their index slot but break the line
// into disjoint path segments; they contribute nothing to the scale.
func renderLine(s *chart.LineSpec, width float64, th theme.Theme) *geometry.Plan {
	plan := newPlan(s, width, ChartHeight)
	chartW, chartH := contentBox(width)

	maxLen := 0
	var all []float64
	for _, sr := range s.Series {
		if len(sr.Data) > maxLen {
			maxLen = len(sr.Data)
		}
		all = append(all, sr.Values()...)
	}

	min, max := 0.0, 1.0
	if len(all) > 0 {
		min, max = all[0], all[0]
		for _, v := range all[1:] {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	pad := (max - min) * rangePad
	sc := scale.Nice(min-pad, max+pad, scale.DefaultTickCount)

	xAt := func(i int) float64 {
		return scale.MapRange(float64(i), 0, float64(maxLen-1), PadX, PadX+chartW)
	}
	yAt := func(v float64) float64 {
		return scale.MapRange(v, sc.Max, sc.Min, PadY, PadY+chartH)
	}

	for si, sr := range s.Series {
		color := seriesColor(sr, si, th)
		markers := len(sr.Data) <= MarkerMaxSamples

		var run []geometry.Point
		flush := func() {
			if len(run) >= 2 {
				plan.Paths = append(plan.Paths, geometry.Path{Points: run, Color: color})
				plan.Areas = append(plan.Areas, geometry.Area{Points: run, Bottom: PadY + chartH, Color: color})
			}
			run = nil
		}

		for i, v := range sr.Data {
			if v == nil {
				flush()
				continue
			}
			p := geometry.Point{
				X:      xAt(i),
				Y:      yAt(*v),
				Value:  *v,
				Label:  labelAt(s.Labels, i),
				Series: si,
				Color:  color,
			}
			run = append(run, p)
			plan.Points = append(plan.Points, p)
			if markers {
				plan.Markers = append(plan.Markers, p)
			}
		}
		flush()

		plan.Legend = append(plan.Legend, geometry.LegendEntry{Label: sr.Label, Color: color})
	}

	for i, label := range scale.SparseLabels(s.Labels, MaxAxisLabels) {
		if label == "" {
			continue
		}
		plan.XLabels = append(plan.XLabels, geometry.AxisLabel{
			X:    xAt(i),
			Y:    ChartHeight - 2,
			Text: label,
		})
	}
	for _, tick := range sc.Ticks {
		plan.YLabels = append(plan.YLabels, geometry.AxisLabel{
			X:    2,
			Y:    yAt(tick),
			Text: scale.FormatAxisValue(tick),
		})
	}

	// Annotations match by axis-label string; no match, no marker.
	for _, ann := range s.Annotations {
		for i, label := range s.Labels {
			if label == ann.Label {
				text := ann.Text
				if text == "" {
					text = ann.Label
				}
				plan.VLines = append(plan.VLines, geometry.VLine{
					X:      xAt(i),
					Label:  text,
					Color:  th.Warning,
					Dashed: true,
				})
				break
			}
		}
	}

	return plan
}
