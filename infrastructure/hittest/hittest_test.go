package hittest

import (
	"testing"

	"github.com/felixgeelhaar/chartkit/domain/geometry"
)

func TestResolve_NearestPointWinsTiesByOrder(t *testing.T) {
	plan := &geometry.Plan{
		Width: 400,
		Points: []geometry.Point{
			{X: 100, Y: 50, Value: 1, Label: "first"},
			{X: 110, Y: 50, Value: 2, Label: "second"},
		},
	}

	// Exactly between two points 10px apart: the tie keeps the first.
	tip, ok := Resolve(plan, 105, 50)
	if !ok {
		t.Fatal("expected a hit")
	}
	if tip.Label != "first" {
		t.Errorf("tie resolved to %q, want first by iteration order", tip.Label)
	}

	// Slightly toward the second point.
	tip, ok = Resolve(plan, 106, 50)
	if !ok {
		t.Fatal("expected a hit")
	}
	if tip.Label != "second" {
		t.Errorf("resolved to %q, want the closer second point", tip.Label)
	}
}

func TestResolve_RadiusGate(t *testing.T) {
	plan := &geometry.Plan{
		Width:  400,
		Points: []geometry.Point{{X: 100, Y: 100, Value: 7}},
	}

	if _, ok := Resolve(plan, 100+HitRadius+1, 100); ok {
		t.Error("hit beyond the radius gate should miss")
	}
	if _, ok := Resolve(plan, 100+HitRadius-1, 100); !ok {
		t.Error("hit within the radius gate should resolve")
	}
	// The gate is strict: exactly at the radius is a miss.
	if _, ok := Resolve(plan, 100+HitRadius, 100); ok {
		t.Error("distance equal to the radius should miss")
	}
}

func TestResolve_BarContainment(t *testing.T) {
	plan := &geometry.Plan{
		Width: 400,
		Bars: []geometry.Bar{
			{X: 10, Y: 100, W: 20, H: 80, Value: 42, Label: "Mon"},
			{X: 40, Y: 60, W: 20, H: 120, Value: 77, Label: "Tue"},
		},
	}

	tip, ok := Resolve(plan, 45, 90)
	if !ok {
		t.Fatal("expected containment hit")
	}
	if tip.Label != "Tue" || tip.Value != 77 {
		t.Errorf("resolved %+v, want the Tue bar", tip)
	}

	if _, ok := Resolve(plan, 35, 90); ok {
		t.Error("gap between bars should miss")
	}
}

func TestResolve_CellContainment(t *testing.T) {
	plan := &geometry.Plan{
		Width: 400,
		Cells: []geometry.Cell{{X: 0, Y: 0, W: 50, H: 50, Value: 3, Color: "#333333"}},
	}

	tip, ok := Resolve(plan, 25, 25)
	if !ok || tip.Value != 3 {
		t.Errorf("cell hit = %+v ok=%v, want value 3", tip, ok)
	}
}

func TestResolve_DeltaRowContainment(t *testing.T) {
	plan := &geometry.Plan{
		Width:  400,
		Deltas: []geometry.Delta{{X: 16, Y: 12, W: 368, H: 36, Label: "Sleep", Diff: 1.5}},
	}

	tip, ok := Resolve(plan, 200, 30)
	if !ok || tip.Label != "Sleep" {
		t.Errorf("delta hit = %+v ok=%v, want the Sleep row", tip, ok)
	}
}

func TestResolve_ClampsWithinHorizontalBounds(t *testing.T) {
	plan := &geometry.Plan{
		Width: 100,
		Bars:  []geometry.Bar{{X: 90, Y: 0, W: 30, H: 100, Value: 1}},
	}

	tip, ok := Resolve(plan, 100, 50)
	if !ok {
		t.Fatal("expected a hit")
	}
	if tip.X > plan.Width {
		t.Errorf("tooltip x = %v, want clamped to width %v", tip.X, plan.Width)
	}
}

func TestResolve_NilPlanMisses(t *testing.T) {
	if _, ok := Resolve(nil, 0, 0); ok {
		t.Error("nil plan must miss")
	}
}
