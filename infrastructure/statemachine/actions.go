package statemachine

import (
	"time"

	"github.com/felixgeelhaar/statekit"
)

// SelectPayload carries the target zoom level and the reason for the
// change with a selection event.
type SelectPayload struct {
	To     string
	Reason string
}

// recordTransition appends the zoom change to the context history.
// In statekit, actions receive a pointer to the context. Since our
// context is *Context, actions receive **Context.
func recordTransition(ctx **Context, event statekit.Event) {
	if ctx == nil || *ctx == nil {
		return
	}

	c := *ctx

	payload, ok := event.Payload.(SelectPayload)
	if !ok {
		return
	}

	from := c.Current
	to := ZoomFromState(statekit.StateID(payload.To))

	c.History = append(c.History, Transition{
		From:   from,
		To:     to,
		Reason: payload.Reason,
		At:     time.Now(),
	})
	c.Current = to
}
