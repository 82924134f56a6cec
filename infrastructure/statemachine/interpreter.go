package statemachine

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/statekit"

	"github.com/felixgeelhaar/chartkit/domain/chart"
)

// Interpreter wraps the statekit interpreter with zoom-specific
// functionality.
type Interpreter struct {
	interp *statekit.Interpreter[*Context]
	ctx    *Context
}

// NewInterpreter creates a new interpreter for the zoom state machine.
func NewInterpreter(machine *statekit.MachineConfig[*Context], ctx *Context) *Interpreter {
	interp := statekit.NewInterpreter(machine)
	// Update the context reference in the machine
	interp.UpdateContext(func(c **Context) {
		*c = ctx
	})
	return &Interpreter{
		interp: interp,
		ctx:    ctx,
	}
}

// Start initializes the interpreter and enters the initial state.
func (i *Interpreter) Start() {
	i.interp.Start()
	state := i.interp.State()
	i.ctx.Current = ZoomFromState(state.Value)
}

// Stop stops the interpreter.
func (i *Interpreter) Stop() {
	i.interp.Stop()
}

// Current returns the active zoom level.
func (i *Interpreter) Current() chart.ZoomLevel {
	state := i.interp.State()
	return ZoomFromState(state.Value)
}

// Select transitions to the target zoom level. Selecting the active
// level is a no-op and returns nil.
func (i *Interpreter) Select(to chart.ZoomLevel, reason string) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", chart.ErrInvalidZoom, to)
	}
	if to == i.Current() {
		return nil
	}

	event := statekit.Event{
		Type: EventForZoom(to),
		Payload: SelectPayload{
			To:     string(to),
			Reason: reason,
		},
	}

	i.interp.Send(event)

	newState := i.interp.State()
	i.ctx.Current = ZoomFromState(newState.Value)

	return nil
}

// History returns the recorded zoom transitions.
func (i *Interpreter) History() []Transition {
	return i.ctx.History
}

// Context returns the interpreter context.
func (i *Interpreter) Context() *Context {
	return i.ctx
}

// Matches checks if the current state matches the given zoom level.
func (i *Interpreter) Matches(z chart.ZoomLevel) bool {
	return i.interp.Matches(stateForZoom(z))
}

// ResumeFrom restores the interpreter to a specific zoom level without
// recording a transition. Used when rehydrating a chart whose zoom was
// persisted elsewhere.
func (i *Interpreter) ResumeFrom(z chart.ZoomLevel) error {
	if !z.IsValid() {
		return fmt.Errorf("%w: %q", chart.ErrInvalidZoom, z)
	}

	snapshot := statekit.Snapshot[*Context]{
		MachineID:    "zoom",
		CurrentState: stateForZoom(z),
		Context:      i.ctx,
		CreatedAt:    time.Now(),
	}

	if err := i.interp.Restore(snapshot); err != nil {
		return fmt.Errorf("failed to restore zoom state: %w", err)
	}

	i.ctx.Current = z

	return nil
}
