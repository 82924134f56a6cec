package render

import (
	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/domain/scale"
	"github.com/felixgeelhaar/chartkit/domain/theme"
)

// renderScatter plots raw x/y points under the same scale and mapping
// conventions as the line renderer, plus an optional least-squares
// trend line clamped to the observed x range.
func renderScatter(s *chart.ScatterSpec, width float64, th theme.Theme) *geometry.Plan {
	plan := newPlan(s, width, ChartHeight)
	chartW, chartH := contentBox(width)

	if len(s.Points) == 0 {
		return plan
	}

	xMin, xMax := s.Points[0].X, s.Points[0].X
	yMin, yMax := s.Points[0].Y, s.Points[0].Y
	for _, p := range s.Points[1:] {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	xPad := (xMax - xMin) * rangePad
	yPad := (yMax - yMin) * rangePad
	scX := scale.Nice(xMin-xPad, xMax+xPad, scale.DefaultTickCount)
	scY := scale.Nice(yMin-yPad, yMax+yPad, scale.DefaultTickCount)

	xAt := func(v float64) float64 {
		return scale.MapRange(v, scX.Min, scX.Max, PadX, PadX+chartW)
	}
	yAt := func(v float64) float64 {
		return scale.MapRange(v, scY.Max, scY.Min, PadY, PadY+chartH)
	}

	for _, p := range s.Points {
		gp := geometry.Point{
			X:     xAt(p.X),
			Y:     yAt(p.Y),
			Value: p.Y,
			Label: scale.FormatAxisValue(p.X),
			Color: th.SeriesPrimary,
		}
		plan.Points = append(plan.Points, gp)
		plan.Markers = append(plan.Markers, gp)
	}

	if s.Trend {
		if slope, intercept, ok := leastSquares(s.Points); ok {
			plan.Paths = append(plan.Paths, geometry.Path{
				Points: []geometry.Point{
					{X: xAt(xMin), Y: yAt(intercept + slope*xMin), Color: th.Accent},
					{X: xAt(xMax), Y: yAt(intercept + slope*xMax), Color: th.Accent},
				},
				Color:  th.Accent,
				Dashed: true,
			})
		}
	}

	for _, tick := range scX.Ticks {
		plan.XLabels = append(plan.XLabels, geometry.AxisLabel{
			X:    xAt(tick),
			Y:    ChartHeight - 2,
			Text: scale.FormatAxisValue(tick),
		})
	}
	for _, tick := range scY.Ticks {
		plan.YLabels = append(plan.YLabels, geometry.AxisLabel{
			X:    2,
			Y:    yAt(tick),
			Text: scale.FormatAxisValue(tick),
		})
	}

	if s.XLabel != "" {
		plan.Legend = append(plan.Legend, geometry.LegendEntry{Label: s.XLabel, Color: th.TextSecondary})
	}
	if s.YLabel != "" {
		plan.Legend = append(plan.Legend, geometry.LegendEntry{Label: s.YLabel, Color: th.TextSecondary})
	}

	return plan
}

// leastSquares fits y = intercept + slope*x. A degenerate x spread has
// no defined fit.
func leastSquares(points []chart.XY) (slope, intercept float64, ok bool) {
	n := float64(len(points))
	if n < 2 {
		return 0, 0, false
	}

	var sumX, sumY float64
	for _, p := range points {
		sumX += p.X
		sumY += p.Y
	}
	meanX := sumX / n
	meanY := sumY / n

	var covXY, varX float64
	for _, p := range points {
		covXY += (p.X - meanX) * (p.Y - meanY)
		varX += (p.X - meanX) * (p.X - meanX)
	}
	if varX == 0 {
		return 0, 0, false
	}

	slope = covXY / varX
	return slope, meanY - slope*meanX, true
}
