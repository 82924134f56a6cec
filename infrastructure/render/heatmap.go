package render

import (
	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/domain/geometry"
	"github.com/felixgeelhaar/chartkit/domain/scale"
	"github.com/felixgeelhaar/chartkit/domain/theme"
)

// renderHeatmap colors each cell by linear RGB interpolation between the
// low and high colors at the cell's position within the value range. A
// zero-variance grid interpolates at 0, painting everything the low
// color.
func renderHeatmap(s *chart.HeatmapSpec, width float64, th theme.Theme) *geometry.Plan {
	plan := newPlan(s, width, ChartHeight)
	chartW, chartH := contentBox(width)

	rows := len(s.Grid)
	cols := 0
	for _, row := range s.Grid {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if rows == 0 || cols == 0 {
		return plan
	}

	// Rows may be ragged, including empty; seed the range from the first
	// cell that exists.
	var min, max float64
	seeded := false
	for _, row := range s.Grid {
		for _, v := range row {
			if !seeded {
				min, max = v, v
				seeded = true
				continue
			}
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	if !seeded {
		return plan
	}

	low := s.LowColor
	if low == "" {
		low = th.Surface
	}
	high := s.HighColor
	if high == "" {
		high = th.Accent
	}

	cellW := chartW / float64(cols)
	cellH := chartH / float64(rows)
	span := max - min
	for r, row := range s.Grid {
		for c, v := range row {
			p := 0.0
			if span != 0 {
				p = (v - min) / span
			}
			plan.Cells = append(plan.Cells, geometry.Cell{
				X:     PadX + cellW*float64(c),
				Y:     PadY + cellH*float64(r),
				W:     cellW,
				H:     cellH,
				Value: v,
				Row:   r,
				Col:   c,
				Color: theme.Blend(low, high, p),
			})
		}
	}

	for i, label := range scale.SparseLabels(s.ColumnLabels, MaxAxisLabels) {
		if label == "" {
			continue
		}
		plan.XLabels = append(plan.XLabels, geometry.AxisLabel{
			X:    PadX + cellW*float64(i) + cellW/2,
			Y:    ChartHeight - 2,
			Text: label,
		})
	}
	for i, label := range scale.SparseLabels(s.RowLabels, MaxAxisLabels) {
		if label == "" {
			continue
		}
		plan.YLabels = append(plan.YLabels, geometry.AxisLabel{
			X:    2,
			Y:    PadY + cellH*float64(i) + cellH/2,
			Text: label,
		})
	}

	return plan
}
