// Package statemachine provides the statekit integration for zoom
// navigation. Each chart carries one machine whose states are the five
// zoom levels; selecting a level is an explicit event so the transition
// history stays auditable.
package statemachine

import (
	"time"

	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/chartkit/domain/chart"
)

// Transition is one recorded zoom change.
type Transition struct {
	From   chart.ZoomLevel
	To     chart.ZoomLevel
	Reason string
	At     time.Time
}

// Context carries zoom state through the state machine.
type Context struct {
	ChartID string
	Current chart.ZoomLevel
	History []Transition
}

// NewContext creates a machine context for one chart starting at the
// given zoom level.
func NewContext(chartID string, initial chart.ZoomLevel) *Context {
	return &Context{
		ChartID: chartID,
		Current: initial,
	}
}

// State IDs as StateID type for statekit.
const (
	stateDay     statekit.StateID = statekit.StateID(chart.ZoomDay)
	stateWeek    statekit.StateID = statekit.StateID(chart.ZoomWeek)
	stateMonth   statekit.StateID = statekit.StateID(chart.ZoomMonth)
	stateQuarter statekit.StateID = statekit.StateID(chart.ZoomQuarter)
	stateYear    statekit.StateID = statekit.StateID(chart.ZoomYear)
)

// stateForZoom maps a zoom level to its machine state.
func stateForZoom(z chart.ZoomLevel) statekit.StateID {
	return statekit.StateID(z)
}

// NewZoomMachine creates the zoom statechart. Every level is reachable
// from every other level in a single event; same-level events have no
// transition defined and are therefore ignored by the interpreter.
func NewZoomMachine(initial chart.ZoomLevel) (*statekit.MachineConfig[*Context], error) {
	b := statekit.NewMachine[*Context]("zoom").
		WithInitial(stateForZoom(initial)).
		WithContext(&Context{Current: initial}).
		WithAction("recordTransition", recordTransition)

	levels := chart.AllZoomLevels()
	for _, from := range levels {
		targets := make([]chart.ZoomLevel, 0, len(levels)-1)
		for _, to := range levels {
			if to != from {
				targets = append(targets, to)
			}
		}
		tb := b.State(stateForZoom(from)).
			On(EventForZoom(targets[0])).Target(stateForZoom(targets[0])).Do("recordTransition")
		for _, to := range targets[1:] {
			tb = tb.On(EventForZoom(to)).Target(stateForZoom(to)).Do("recordTransition")
		}
		b = tb.Done()
	}

	return b.Build()
}

// EventForZoom returns the event type that selects a zoom level.
func EventForZoom(z chart.ZoomLevel) statekit.EventType {
	switch z {
	case chart.ZoomDay:
		return "SELECT_DAY"
	case chart.ZoomWeek:
		return "SELECT_WEEK"
	case chart.ZoomMonth:
		return "SELECT_MONTH"
	case chart.ZoomQuarter:
		return "SELECT_QUARTER"
	case chart.ZoomYear:
		return "SELECT_YEAR"
	default:
		return statekit.EventType(z)
	}
}

// ZoomFromState converts a machine state ID back to a zoom level.
func ZoomFromState(stateID statekit.StateID) chart.ZoomLevel {
	return chart.ZoomLevel(stateID)
}
