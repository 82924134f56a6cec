package scale

import (
	"fmt"
	"math"
	"strconv"
)

// FormatAxisValue renders an axis value compactly: small integers stay
// unadorned, magnitudes of 1000 and above collapse to a one-decimal "k"
// form, and everything else keeps one decimal place.
func FormatAxisValue(v float64) string {
	if math.Abs(v) >= 1000 {
		return fmt.Sprintf("%.1fk", math.Round(v/100)/10)
	}
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	// Round half away from zero; %.1f alone rounds half to even.
	return fmt.Sprintf("%.1f", math.Round(v*10)/10)
}
