package statemachine

import (
	"testing"

	"github.com/felixgeelhaar/chartkit/domain/chart"
)

func newInterpreter(t *testing.T, initial chart.ZoomLevel) *Interpreter {
	t.Helper()

	machine, err := NewZoomMachine(initial)
	if err != nil {
		t.Fatalf("NewZoomMachine() error = %v", err)
	}

	interp := NewInterpreter(machine, NewContext("chart-1", initial))
	interp.Start()
	t.Cleanup(interp.Stop)
	return interp
}

func TestInterpreter_StartsAtInitialZoom(t *testing.T) {
	interp := newInterpreter(t, chart.ZoomWeek)

	if got := interp.Current(); got != chart.ZoomWeek {
		t.Errorf("Current() = %v, want week", got)
	}
	if !interp.Matches(chart.ZoomWeek) {
		t.Error("Matches(week) = false, want true")
	}
}

func TestInterpreter_SelectTransitions(t *testing.T) {
	interp := newInterpreter(t, chart.ZoomWeek)

	if err := interp.Select(chart.ZoomMonth, "user tapped month"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if got := interp.Current(); got != chart.ZoomMonth {
		t.Errorf("Current() = %v, want month", got)
	}
}

func TestInterpreter_SelectRecordsHistory(t *testing.T) {
	interp := newInterpreter(t, chart.ZoomDay)

	if err := interp.Select(chart.ZoomYear, "overview"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if err := interp.Select(chart.ZoomQuarter, "drill down"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	history := interp.History()
	if len(history) != 2 {
		t.Fatalf("history length = %d, want 2", len(history))
	}
	if history[0].From != chart.ZoomDay || history[0].To != chart.ZoomYear {
		t.Errorf("history[0] = %v -> %v, want day -> year", history[0].From, history[0].To)
	}
	if history[1].From != chart.ZoomYear || history[1].To != chart.ZoomQuarter {
		t.Errorf("history[1] = %v -> %v, want year -> quarter", history[1].From, history[1].To)
	}
	if history[1].Reason != "drill down" {
		t.Errorf("history[1].Reason = %q", history[1].Reason)
	}
}

func TestInterpreter_SelectSameLevelIsNoOp(t *testing.T) {
	interp := newInterpreter(t, chart.ZoomWeek)

	if err := interp.Select(chart.ZoomWeek, "redundant"); err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if got := interp.Current(); got != chart.ZoomWeek {
		t.Errorf("Current() = %v, want week", got)
	}
	if len(interp.History()) != 0 {
		t.Errorf("history = %v, want empty", interp.History())
	}
}

func TestInterpreter_SelectInvalidZoom(t *testing.T) {
	interp := newInterpreter(t, chart.ZoomWeek)

	if err := interp.Select(chart.ZoomLevel("decade"), ""); err == nil {
		t.Error("Select(decade) error = nil, want ErrInvalidZoom")
	}
}

func TestInterpreter_AllLevelsReachableFromAnywhere(t *testing.T) {
	interp := newInterpreter(t, chart.ZoomDay)

	order := []chart.ZoomLevel{
		chart.ZoomYear,
		chart.ZoomWeek,
		chart.ZoomQuarter,
		chart.ZoomDay,
		chart.ZoomMonth,
	}
	for _, z := range order {
		if err := interp.Select(z, ""); err != nil {
			t.Fatalf("Select(%v) error = %v", z, err)
		}
		if got := interp.Current(); got != z {
			t.Fatalf("Current() = %v, want %v", got, z)
		}
	}
}

func TestInterpreter_ResumeFromSkipsHistory(t *testing.T) {
	interp := newInterpreter(t, chart.ZoomWeek)

	if err := interp.ResumeFrom(chart.ZoomQuarter); err != nil {
		t.Fatalf("ResumeFrom() error = %v", err)
	}

	if got := interp.Current(); got != chart.ZoomQuarter {
		t.Errorf("Current() = %v, want quarter", got)
	}
	if len(interp.History()) != 0 {
		t.Errorf("history = %v, want empty after restore", interp.History())
	}
}
