package render

import (
	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/domain/scale"
	"github.com/felixgeelhaar/chartkit/domain/theme"
)

// renderBar clusters series side by side per category. Bars grow from a
// zero baseline up to the nice scale maximum; a near-zero value still
// gets a minimum-height bar so it stays visible and tappable.
func renderBar(s *chart.BarSpec, width float64, th theme.Theme) *geometry.Plan {
	plan := newPlan(s, width, ChartHeight)
	chartW, chartH := contentBox(width)

	categories := 0
	maxVal := 0.0
	for _, sr := range s.Series {
		if len(sr.Data) > categories {
			categories = len(sr.Data)
		}
		for _, v := range sr.Values() {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	sc := scale.Nice(0, maxVal, scale.DefaultTickCount)

	if categories > 0 {
		slotW := chartW / float64(categories)
		barW := slotW * 0.7 / float64(len(s.Series))
		if barW > BarWidthCap {
			barW = BarWidthCap
		}
		groupW := barW * float64(len(s.Series))

		for c := 0; c < categories; c++ {
			startX := PadX + slotW*float64(c) + (slotW-groupW)/2
			for si, sr := range s.Series {
				if c >= len(sr.Data) || sr.Data[c] == nil {
					continue
				}
				v := *sr.Data[c]
				h := scale.MapRange(v, 0, sc.Max, 0, chartH)
				if h < MinBarHeight {
					h = MinBarHeight
				}
				plan.Bars = append(plan.Bars, geometry.Bar{
					X:      startX + barW*float64(si),
					Y:      PadY + chartH - h,
					W:      barW,
					H:      h,
					Value:  v,
					Label:  labelAt(s.Labels, c),
					Series: si,
					Color:  seriesColor(sr, si, th),
				})
			}
		}

		for i, label := range scale.SparseLabels(s.Labels, MaxAxisLabels) {
			if label == "" {
				continue
			}
			plan.XLabels = append(plan.XLabels, geometry.AxisLabel{
				X:    PadX + slotW*float64(i) + slotW/2,
				Y:    ChartHeight - 2,
				Text: label,
			})
		}
	}

	for _, tick := range sc.Ticks {
		plan.YLabels = append(plan.YLabels, geometry.AxisLabel{
			X:    2,
			Y:    scale.MapRange(tick, sc.Max, sc.Min, PadY, PadY+chartH),
			Text: scale.FormatAxisValue(tick),
		})
	}
	for si, sr := range s.Series {
		plan.Legend = append(plan.Legend, geometry.LegendEntry{
			Label: sr.Label,
			Color: seriesColor(sr, si, th),
		})
	}

	return plan
}
