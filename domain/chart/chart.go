// Package chart provides the declarative chart specification model: a
// tagged union over six chart kinds dispatched on the "type"
// discriminator, plus the shared series, timeframe, and zoom metadata.
package chart

import "github.com/felixgeelhaar/chartkit/domain/theme"

// Type is the chart kind discriminator. It is immutable after parse;
// unknown values fail closed at the parse boundary.
type Type string

// Canonical chart kinds.
const (
	TypeLine         Type = "line"
	TypeBar          Type = "bar"
	TypeScatter      Type = "scatter"
	TypeHeatmap      Type = "heatmap"
	TypeDistribution Type = "distribution"
	TypeComparison   Type = "comparison"
)

// AllTypes returns the recognized chart kinds.
func AllTypes() []Type {
	return []Type{TypeLine, TypeBar, TypeScatter, TypeHeatmap, TypeDistribution, TypeComparison}
}

// IsValid returns true if the type is a recognized chart kind.
func (t Type) IsValid() bool {
	switch t {
	case TypeLine, TypeBar, TypeScatter, TypeHeatmap, TypeDistribution, TypeComparison:
		return true
	default:
		return false
	}
}

// String returns the string representation of the type.
func (t Type) String() string {
	return string(t)
}

// Spec is one chart specification. Implementations are the per-kind
// structs below; dispatch on SpecType, never on dynamic field probing.
type Spec interface {
	// SpecID returns the stable chart instance identifier.
	SpecID() string

	// SpecType returns the chart kind discriminator.
	SpecType() Type

	// SpecTitle returns the required chart title.
	SpecTitle() string

	// SpecInsight returns the optional insight caption, empty when absent.
	SpecInsight() string

	// SpecTimeframe returns the timeframe for timeframe-bearing kinds,
	// nil otherwise.
	SpecTimeframe() *Timeframe

	// SpecTheme returns the optional per-chart theme override.
	SpecTheme() *theme.Theme
}

// Base carries the fields every chart kind shares.
type Base struct {
	ID      string       `json:"id,omitempty"`
	Type    Type         `json:"type"`
	Title   string       `json:"title"`
	Insight string       `json:"insight,omitempty"`
	Theme   *theme.Theme `json:"theme,omitempty"`
}

// SpecID returns the chart identifier.
func (b Base) SpecID() string { return b.ID }

// SpecType returns the chart kind.
func (b Base) SpecType() Type { return b.Type }

// SpecTitle returns the chart title.
func (b Base) SpecTitle() string { return b.Title }

// SpecInsight returns the insight caption.
func (b Base) SpecInsight() string { return b.Insight }

// SpecTimeframe returns nil; timeframe-bearing kinds override it.
func (b Base) SpecTimeframe() *Timeframe { return nil }

// SpecTheme returns the per-chart theme override.
func (b Base) SpecTheme() *theme.Theme { return b.Theme }

// LineSpec is a multi-series line chart with optional timeframe and
// vertical annotations.
type LineSpec struct {
	Base
	Series      []Series     `json:"series"`
	Labels      []string     `json:"labels,omitempty"`
	Timeframe   *Timeframe   `json:"timeframe,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
}

// SpecTimeframe returns the line chart's timeframe.
func (s *LineSpec) SpecTimeframe() *Timeframe { return s.Timeframe }

// BarSpec is a grouped bar chart: series are clustered side by side per
// category.
type BarSpec struct {
	Base
	Series    []Series   `json:"series"`
	Labels    []string   `json:"labels,omitempty"`
	Timeframe *Timeframe `json:"timeframe,omitempty"`
}

// SpecTimeframe returns the bar chart's timeframe.
func (s *BarSpec) SpecTimeframe() *Timeframe { return s.Timeframe }

// ScatterSpec plots raw x/y points with an optional least-squares trend
// line.
type ScatterSpec struct {
	Base
	Points    []XY       `json:"points"`
	XLabel    string     `json:"xLabel,omitempty"`
	YLabel    string     `json:"yLabel,omitempty"`
	Trend     bool       `json:"trend,omitempty"`
	Timeframe *Timeframe `json:"timeframe,omitempty"`
}

// SpecTimeframe returns the scatter chart's timeframe.
func (s *ScatterSpec) SpecTimeframe() *Timeframe { return s.Timeframe }

// DistributionSpec is a histogram over raw values with an optional mean
// marker.
type DistributionSpec struct {
	Base
	Values []float64 `json:"values"`
	Bins   int       `json:"bins,omitempty"`
	Mean   *float64  `json:"mean,omitempty"`
}

// ComparisonSpec compares metric pairs between two labeled conditions.
type ComparisonSpec struct {
	Base
	LabelA  string   `json:"labelA,omitempty"`
	LabelB  string   `json:"labelB,omitempty"`
	Metrics []Metric `json:"metrics"`
}

// HeatmapSpec is a row-major value grid colored by linear interpolation
// between a low and a high color.
type HeatmapSpec struct {
	Base
	Grid         [][]float64 `json:"grid"`
	RowLabels    []string    `json:"rowLabels,omitempty"`
	ColumnLabels []string    `json:"columnLabels,omitempty"`
	LowColor     string      `json:"lowColor,omitempty"`
	HighColor    string      `json:"highColor,omitempty"`
}
