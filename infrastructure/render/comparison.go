package render

import (
	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/domain/theme"
)

// renderComparison lays out one delta row per metric pair. The delta
// cell is colored by the resolved better/worse judgement — a drop in a
// lower-is-better metric paints green — and a zero valueA degrades the
// percent change to 0 instead of dividing by zero.
func renderComparison(s *chart.ComparisonSpec, width float64, th theme.Theme) *geometry.Plan {
	height := PadY*2 + DeltaRowHeight*float64(len(s.Metrics))
	if height < ChartHeight/2 {
		height = ChartHeight / 2
	}
	plan := newPlan(s, width, height)

	for i, m := range s.Metrics {
		diff := m.ValueB - m.ValueA
		pct := 0.0
		if m.ValueA != 0 {
			pct = diff / m.ValueA * 100
		}

		better := diff > 0
		if !m.HigherBetter() {
			better = !better
		}
		color := th.Error
		switch {
		case diff == 0:
			better = false
			color = th.TextSecondary
		case better:
			color = th.Success
		}

		plan.Deltas = append(plan.Deltas, geometry.Delta{
			X:      PadX,
			Y:      PadY + DeltaRowHeight*float64(i),
			W:      width - 2*PadX,
			H:      DeltaRowHeight,
			Label:  m.Label,
			ValueA: m.ValueA,
			ValueB: m.ValueB,
			Diff:   diff,
			Pct:    pct,
			Better: better,
			Color:  color,
		})
	}

	if s.LabelA != "" || s.LabelB != "" {
		plan.Legend = append(plan.Legend,
			geometry.LegendEntry{Label: s.LabelA, Color: th.SeriesPrimary},
			geometry.LegendEntry{Label: s.LabelB, Color: th.SeriesSecondary},
		)
	}

	return plan
}
