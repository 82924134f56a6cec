package logging

import (
	"time"

	"github.com/felixgeelhaar/bolt/v3"

	"github.com/felixgeelhaar/chartkit/domain/chart"
)

// Chart annotates an event with the standard chart identifiers.
func Chart(e *bolt.Event, id string, t chart.Type) *bolt.Event {
	return e.Str("chart_id", id).Str("chart_type", string(t))
}

// Zoom annotates an event with a zoom level.
func Zoom(e *bolt.Event, z chart.ZoomLevel) *bolt.Event {
	return e.Str("zoom", string(z))
}

// ZoomTransition annotates an event with a zoom transition.
func ZoomTransition(e *bolt.Event, from, to chart.ZoomLevel) *bolt.Event {
	return e.Str("from_zoom", string(from)).Str("to_zoom", string(to))
}

// Render annotates an event with render dimensions and timing.
func Render(e *bolt.Event, width float64, d time.Duration) *bolt.Event {
	return e.Int("width", int(width)).Int64("duration_ms", d.Milliseconds())
}

// Segments annotates an event with extraction counts.
func Segments(e *bolt.Event, total, charts int) *bolt.Event {
	return e.Int("segments", total).Int("charts", charts)
}

// Cached annotates an event with a cache outcome.
func Cached(e *bolt.Event, hit bool) *bolt.Event {
	return e.Bool("cached", hit)
}
