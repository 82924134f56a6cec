package chart

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// envelope peeks at the discriminator before the variant is decoded.
type envelope struct {
	Type  Type   `json:"type"`
	Title string `json:"title"`
}

// Parse decodes a JSON chart specification, failing closed on malformed
// input, an unknown type discriminator, or a missing title. The caller
// is expected to render parse failures as an inline placeholder rather
// than propagate them.
//
// A specification without an id is assigned a fresh UUID so downstream
// zoom and tooltip state always has a stable owner.
func Parse(data []byte) (Spec, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSpec, err)
	}
	if !env.Type.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChartType, env.Type)
	}
	if env.Title == "" {
		return nil, ErrMissingTitle
	}

	var (
		spec Spec
		err  error
	)
	switch env.Type {
	case TypeLine:
		s := &LineSpec{}
		err = json.Unmarshal(data, s)
		spec = s
	case TypeBar:
		s := &BarSpec{}
		err = json.Unmarshal(data, s)
		spec = s
	case TypeScatter:
		s := &ScatterSpec{}
		err = json.Unmarshal(data, s)
		spec = s
	case TypeHeatmap:
		s := &HeatmapSpec{}
		err = json.Unmarshal(data, s)
		spec = s
	case TypeDistribution:
		s := &DistributionSpec{}
		err = json.Unmarshal(data, s)
		spec = s
	case TypeComparison:
		s := &ComparisonSpec{}
		err = json.Unmarshal(data, s)
		spec = s
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSpec, err)
	}

	if err := normalize(spec); err != nil {
		return nil, err
	}
	return spec, nil
}

// ParseString decodes a JSON chart specification from a string.
func ParseString(data string) (Spec, error) {
	return Parse([]byte(data))
}

// normalize assigns a generated id when absent and validates the
// timeframe zoom, defaulting an empty zoom to week.
func normalize(spec Spec) error {
	setID := func(b *Base) {
		if b.ID == "" {
			b.ID = uuid.NewString()
		}
	}
	checkZoom := func(tf *Timeframe) error {
		if tf == nil {
			return nil
		}
		if tf.Zoom == "" {
			tf.Zoom = ZoomWeek
			return nil
		}
		if !tf.Zoom.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidZoom, tf.Zoom)
		}
		return nil
	}

	switch s := spec.(type) {
	case *LineSpec:
		setID(&s.Base)
		return checkZoom(s.Timeframe)
	case *BarSpec:
		setID(&s.Base)
		return checkZoom(s.Timeframe)
	case *ScatterSpec:
		setID(&s.Base)
		return checkZoom(s.Timeframe)
	case *DistributionSpec:
		setID(&s.Base)
	case *ComparisonSpec:
		setID(&s.Base)
	case *HeatmapSpec:
		setID(&s.Base)
	}
	return nil
}
