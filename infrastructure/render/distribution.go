package render

import (
	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/domain/scale"
	"github.com/felixgeelhaar/chartkit/domain/theme"
)

// renderDistribution buckets the raw values into a histogram and draws
// one bar per bin, with an optional dashed mean marker positioned over
// the value range.
func renderDistribution(s *chart.DistributionSpec, width float64, th theme.Theme) *geometry.Plan {
	plan := newPlan(s, width, ChartHeight)
	chartW, chartH := contentBox(width)

	hist := scale.Histogram(s.Values, s.Bins)
	if len(hist.Bins) == 0 {
		return plan
	}

	binW := chartW / float64(len(hist.Bins))
	for i, bin := range hist.Bins {
		h := scale.MapRange(float64(bin.Count), 0, float64(hist.MaxCount), 0, chartH)
		if bin.Count > 0 && h < MinBarHeight {
			h = MinBarHeight
		}
		plan.Bars = append(plan.Bars, geometry.Bar{
			X:     PadX + binW*float64(i),
			Y:     PadY + chartH - h,
			W:     binW,
			H:     h,
			Value: float64(bin.Count),
			Label: scale.FormatAxisValue(bin.Lower),
			Color: th.SeriesPrimary,
		})
	}

	plan.XLabels = append(plan.XLabels, geometry.AxisLabel{
		X:    PadX,
		Y:    ChartHeight - 2,
		Text: scale.FormatAxisValue(hist.Min),
	})
	if s.Mean != nil {
		// Bars span the bin edges, which exceed [Min, Max] when the
		// degenerate width-1 fallback kicks in; the marker maps over the
		// same span so it lines up with the bars.
		lower := hist.Bins[0].Lower
		upper := hist.Bins[len(hist.Bins)-1].Upper
		x := PadX + scale.MapRange(*s.Mean, lower, upper, 0, chartW)
		plan.VLines = append(plan.VLines, geometry.VLine{
			X:      x,
			Label:  scale.FormatAxisValue(*s.Mean),
			Color:  th.Accent,
			Dashed: true,
		})
		plan.XLabels = append(plan.XLabels, geometry.AxisLabel{
			X:    x,
			Y:    ChartHeight - 2,
			Text: scale.FormatAxisValue(*s.Mean),
		})
	}
	plan.XLabels = append(plan.XLabels, geometry.AxisLabel{
		X:    PadX + chartW,
		Y:    ChartHeight - 2,
		Text: scale.FormatAxisValue(hist.Max),
	})

	return plan
}
