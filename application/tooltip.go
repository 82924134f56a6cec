package application

import (
	"sync"
	"time"

	"github.com/felixgeelhaar/chartkit/infrastructure/hittest"
)

// DefaultTooltipTTL is how long a tooltip stays visible before
// auto-dismissal.
const DefaultTooltipTTL = 2 * time.Second

// TooltipController owns the visible-tooltip state for one chart. At
// most one tooltip is visible; showing a new one replaces the old one
// and restarts the dismissal timer.
type TooltipController struct {
	mu      sync.Mutex
	ttl     time.Duration
	current *hittest.Tooltip
	gen     uint64
	timer   *time.Timer
}

// NewTooltipController creates a controller with the given lifetime.
// Non-positive lifetimes fall back to DefaultTooltipTTL.
func NewTooltipController(ttl time.Duration) *TooltipController {
	if ttl <= 0 {
		ttl = DefaultTooltipTTL
	}
	return &TooltipController{ttl: ttl}
}

// Show makes the tooltip visible and arms the dismissal timer. A
// pending timer from an earlier tooltip is disarmed; its expiry can no
// longer dismiss the new tooltip.
func (t *TooltipController) Show(tip hittest.Tooltip) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	gen := t.gen
	t.current = &tip

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.ttl, func() {
		t.expire(gen)
	})
}

// expire clears the tooltip only if no newer Show or Dismiss happened.
func (t *TooltipController) expire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.gen == gen {
		t.current = nil
	}
}

// Dismiss hides the tooltip immediately.
func (t *TooltipController) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	t.current = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

// Current returns the visible tooltip, if any.
func (t *TooltipController) Current() (hittest.Tooltip, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.current == nil {
		return hittest.Tooltip{}, false
	}
	return *t.current, true
}

// Close disarms any pending timer.
func (t *TooltipController) Close() {
	t.Dismiss()
}
