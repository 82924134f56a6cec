// Package scale provides the pure numeric kernels behind every chart:
// nice-tick axis scales, linear range mapping, histogram binning, sparse
// axis-label selection, and compact number formatting.
//
// All functions are deterministic and stateless. Degenerate inputs
// (empty data, zero variance) are absorbed here so a chart always
// renders instead of failing.
package scale

import "math"

// DefaultTickCount is the tick count used when a caller passes a count
// below 2.
const DefaultTickCount = 5

// tickEpsilon removes float drift from accumulated tick steps.
const tickEpsilon = 1e-10

// Scale is a derived axis range with human-friendly tick boundaries.
// Min is at or below every tick, Max at or above; ticks ascend at a
// constant step from the {1,2,5,10}x10^k family.
type Scale struct {
	Min   float64
	Max   float64
	Ticks []float64
}

// Nice computes a nice axis scale covering [min, max].
//
// Equal bounds synthesize a +/-1 pad so zero-variance data still gets a
// usable axis. Otherwise the rough step (max-min)/(tickCount-1) snaps to
// the nearest nice base, min expands down and max expands up to step
// multiples, and ticks run from the expanded min to the expanded max
// inclusive.
func Nice(min, max float64, tickCount int) Scale {
	if tickCount < 2 {
		tickCount = DefaultTickCount
	}
	if min == max {
		return Scale{
			Min:   min - 1,
			Max:   max + 1,
			Ticks: []float64{min - 1, min, max + 1},
		}
	}

	rough := (max - min) / float64(tickCount-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(rough)))
	step := niceStep(rough/magnitude) * magnitude

	nicedMin := math.Floor(min/step) * step
	nicedMax := math.Ceil(max/step) * step

	var ticks []float64
	for t := nicedMin; t <= nicedMax+step/2; t += step {
		ticks = append(ticks, math.Round(t/tickEpsilon)*tickEpsilon)
	}

	return Scale{Min: nicedMin, Max: nicedMax, Ticks: ticks}
}

// niceStep snaps a normalized step in [1,10) to the nice base family.
func niceStep(normalized float64) float64 {
	switch {
	case normalized <= 1.5:
		return 1
	case normalized <= 3:
		return 2
	case normalized <= 7:
		return 5
	default:
		return 10
	}
}

// MapRange maps v from [inMin, inMax] to [outMin, outMax] affinely.
// A degenerate input range maps everything to the output midpoint.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMin == inMax {
		return (outMin + outMax) / 2
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// SparseLabels thins labels down to at most maxCount visible entries.
// The result has the same length as the input; dropped positions hold
// the empty string so positional alignment with the data is preserved.
// The last label is always kept.
func SparseLabels(labels []string, maxCount int) []string {
	if maxCount <= 0 || len(labels) <= maxCount {
		out := make([]string, len(labels))
		copy(out, labels)
		return out
	}

	step := int(math.Ceil(float64(len(labels)) / float64(maxCount)))
	out := make([]string, len(labels))
	for i, label := range labels {
		if i%step == 0 || i == len(labels)-1 {
			out[i] = label
		}
	}
	return out
}
