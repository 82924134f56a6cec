// Package theme provides the named-color contract every renderer draws with.
//
// A Theme is a capability value: renderers receive it explicitly on every
// call instead of reaching for a global. Default exists for isolated
// contexts (tests, the CLI) only.
package theme

import (
	"fmt"
	"strconv"
	"strings"
)

// Theme is the fixed named-color set supplied by the hosting UI shell.
type Theme struct {
	Background      string `json:"background" yaml:"background"`
	Surface         string `json:"surface" yaml:"surface"`
	TextPrimary     string `json:"textPrimary" yaml:"textPrimary"`
	TextSecondary   string `json:"textSecondary" yaml:"textSecondary"`
	Accent          string `json:"accent" yaml:"accent"`
	Border          string `json:"border" yaml:"border"`
	Warning         string `json:"warning" yaml:"warning"`
	Success         string `json:"success" yaml:"success"`
	Error           string `json:"error" yaml:"error"`
	SeriesPrimary   string `json:"seriesPrimary" yaml:"seriesPrimary"`
	SeriesSecondary string `json:"seriesSecondary" yaml:"seriesSecondary"`
}

// Default returns the built-in dark theme.
func Default() Theme {
	return Theme{
		Background:      "#0F1115",
		Surface:         "#1A1D24",
		TextPrimary:     "#F2F4F8",
		TextSecondary:   "#9AA3B2",
		Accent:          "#4F46E5",
		Border:          "#2A2F3A",
		Warning:         "#F59E0B",
		Success:         "#10B981",
		Error:           "#EF4444",
		SeriesPrimary:   "#4F46E5",
		SeriesSecondary: "#06B6D4",
	}
}

// SeriesColor returns the semantic series color for the given series index,
// alternating between the primary and secondary series colors.
func (t Theme) SeriesColor(i int) string {
	if i%2 == 0 {
		return t.SeriesPrimary
	}
	return t.SeriesSecondary
}

// Blend linearly interpolates between two "#rrggbb" colors at position
// p in [0,1]. Out-of-range positions are clamped. Colors that do not
// parse fall back to low.
func Blend(low, high string, p float64) string {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	lr, lg, lb, ok := parseHex(low)
	if !ok {
		return low
	}
	hr, hg, hb, ok := parseHex(high)
	if !ok {
		return low
	}
	// Truncate after the addition so ascending and descending channels
	// land on the same value for the same position.
	lerp := func(a, b int) int {
		return int(float64(a) + p*float64(b-a))
	}
	return fmt.Sprintf("#%02X%02X%02X", lerp(lr, hr), lerp(lg, hg), lerp(lb, hb))
}

// parseHex parses a "#rrggbb" color into its channels.
func parseHex(s string) (r, g, b int, ok bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF), true
}
