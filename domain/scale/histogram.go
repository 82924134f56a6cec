package scale

import "math"

// DefaultBinCount is the bin count used when a caller passes a count
// below 1.
const DefaultBinCount = 10

// Bin is a single histogram bucket over [Lower, Upper).
type Bin struct {
	Lower float64
	Upper float64
	Count int
}

// HistogramResult holds equal-width bins over the value range plus the
// maximum bucket count, which renderers use as the vertical scale.
type HistogramResult struct {
	Bins     []Bin
	MaxCount int
	Min      float64
	Max      float64
}

// Histogram partitions values into binCount equal-width buckets spanning
// [min, max]. Zero-variance input gets a bin width of 1 so bucketing
// never divides by zero; values landing past the last edge clamp into
// the final bucket. Empty input yields no bins and a max count of 0.
func Histogram(values []float64, binCount int) HistogramResult {
	if binCount < 1 {
		binCount = DefaultBinCount
	}
	if len(values) == 0 {
		return HistogramResult{}
	}

	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	width := (max - min) / float64(binCount)
	if width == 0 {
		width = 1
	}

	bins := make([]Bin, binCount)
	for i := range bins {
		bins[i].Lower = min + float64(i)*width
		bins[i].Upper = min + float64(i+1)*width
	}

	maxCount := 0
	for _, v := range values {
		idx := int(math.Floor((v - min) / width))
		if idx >= binCount {
			idx = binCount - 1
		}
		bins[idx].Count++
		if bins[idx].Count > maxCount {
			maxCount = bins[idx].Count
		}
	}

	return HistogramResult{Bins: bins, MaxCount: maxCount, Min: min, Max: max}
}
