// Package hittest resolves a pointer coordinate against the last
// computed draw plan into a transient tooltip annotation. The plan is
// read-only here; the engine owns tooltip lifetime and dismissal.
package hittest

import (
	"math"

	"github.com/felixgeelhaar/chartkit/domain/geometry"
)

// HitRadius is the maximum pixel distance at which a point hit is
// accepted.
const HitRadius = 40.0

// Tooltip is the transient annotation produced by a hit. Position is
// already clamped within the plan's horizontal bounds.
type Tooltip struct {
	X     float64
	Y     float64
	Value float64
	Label string
	Color string
}

// Resolve maps a pointer coordinate to the element under (or nearest
// to) it. Bars, cells, and comparison rows use exact rectangle
// containment; points use nearest-neighbor distance gated at HitRadius.
// A miss returns false, which the caller treats as "clear any existing
// tooltip".
func Resolve(plan *geometry.Plan, x, y float64) (Tooltip, bool) {
	if plan == nil {
		return Tooltip{}, false
	}

	for _, b := range plan.Bars {
		if contains(x, y, b.X, b.Y, b.W, b.H) {
			return clamp(plan, Tooltip{
				X:     b.X + b.W/2,
				Y:     b.Y,
				Value: b.Value,
				Label: b.Label,
				Color: b.Color,
			}), true
		}
	}

	for _, c := range plan.Cells {
		if contains(x, y, c.X, c.Y, c.W, c.H) {
			return clamp(plan, Tooltip{
				X:     c.X + c.W/2,
				Y:     c.Y,
				Value: c.Value,
				Color: c.Color,
			}), true
		}
	}

	for _, d := range plan.Deltas {
		if contains(x, y, d.X, d.Y, d.W, d.H) {
			return clamp(plan, Tooltip{
				X:     d.X + d.W/2,
				Y:     d.Y,
				Value: d.Diff,
				Label: d.Label,
				Color: d.Color,
			}), true
		}
	}

	// Nearest point across all series; ties keep the earlier point.
	best := -1
	bestDist := math.Inf(1)
	for i, p := range plan.Points {
		d := math.Hypot(p.X-x, p.Y-y)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best >= 0 && bestDist < HitRadius {
		p := plan.Points[best]
		return clamp(plan, Tooltip{
			X:     p.X,
			Y:     p.Y,
			Value: p.Value,
			Label: p.Label,
			Color: p.Color,
		}), true
	}

	return Tooltip{}, false
}

func contains(x, y, rx, ry, rw, rh float64) bool {
	return x >= rx && x <= rx+rw && y >= ry && y <= ry+rh
}

// clamp keeps the tooltip anchor within the plan's horizontal bounds.
func clamp(plan *geometry.Plan, t Tooltip) Tooltip {
	if t.X < 0 {
		t.X = 0
	}
	if t.X > plan.Width {
		t.X = plan.Width
	}
	return t
}
