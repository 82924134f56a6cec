package chart

// Series is one ordered run of numeric samples. A nil sample is a
// recorded gap: it is excluded from scale and statistics computation but
// still occupies its index slot so positional alignment with axis labels
// never shifts.
type Series struct {
	Label string     `json:"label"`
	Data  []*float64 `json:"data"`
	Color string     `json:"color,omitempty"`
}

// Values returns the non-nil samples in order.
func (s Series) Values() []float64 {
	out := make([]float64, 0, len(s.Data))
	for _, v := range s.Data {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// F wraps a float64 as a sample pointer. Convenience for building
// specifications in code and tests.
func F(v float64) *float64 {
	return &v
}

// Annotation marks a vertical position on a chart by axis-label match.
// An annotation whose label matches no axis label is dropped silently.
type Annotation struct {
	Label string `json:"label"`
	Text  string `json:"text,omitempty"`
}

// XY is a single scatter sample.
type XY struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Metric is one comparison pair. HigherIsBetter defaults to true when
// absent.
type Metric struct {
	Label          string  `json:"label"`
	ValueA         float64 `json:"valueA"`
	ValueB         float64 `json:"valueB"`
	HigherIsBetter *bool   `json:"higherIsBetter,omitempty"`
}

// HigherBetter resolves the improvement sense of the metric.
func (m Metric) HigherBetter() bool {
	return m.HigherIsBetter == nil || *m.HigherIsBetter
}
