package chart

// ZoomLevel is the aggregation granularity of a timeframe-bearing chart.
// Levels are strictly ordered from finest (day) to coarsest (year).
type ZoomLevel string

// Canonical zoom levels.
const (
	ZoomDay     ZoomLevel = "day"
	ZoomWeek    ZoomLevel = "week"
	ZoomMonth   ZoomLevel = "month"
	ZoomQuarter ZoomLevel = "quarter"
	ZoomYear    ZoomLevel = "year"
)

// AllZoomLevels returns the canonical zoom levels in ascending order.
func AllZoomLevels() []ZoomLevel {
	return []ZoomLevel{ZoomDay, ZoomWeek, ZoomMonth, ZoomQuarter, ZoomYear}
}

// IsValid returns true if the zoom level is a recognized canonical level.
func (z ZoomLevel) IsValid() bool {
	switch z {
	case ZoomDay, ZoomWeek, ZoomMonth, ZoomQuarter, ZoomYear:
		return true
	default:
		return false
	}
}

// Index returns the position of the level in the canonical order, or -1
// for an unrecognized level.
func (z ZoomLevel) Index() int {
	for i, level := range AllZoomLevels() {
		if level == z {
			return i
		}
	}
	return -1
}

// Coarser reports whether z aggregates over a longer period than other.
func (z ZoomLevel) Coarser(other ZoomLevel) bool {
	return z.Index() > other.Index()
}

// String returns the string representation of the zoom level.
func (z ZoomLevel) String() string {
	return string(z)
}

// Timeframe bounds the data window of a chart and carries the zoom level
// the window was aggregated at.
type Timeframe struct {
	Start string    `json:"start"`
	End   string    `json:"end"`
	Zoom  ZoomLevel `json:"zoom"`
}
