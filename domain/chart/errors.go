package chart

import "errors"

// Domain errors for chart specification parsing.
var (
	// ErrMalformedSpec indicates the specification is not valid JSON.
	ErrMalformedSpec = errors.New("malformed chart specification")

	// ErrUnknownChartType indicates the type discriminator is not a
	// recognized chart kind.
	ErrUnknownChartType = errors.New("unknown chart type")

	// ErrMissingTitle indicates the required title field is absent.
	ErrMissingTitle = errors.New("chart specification missing title")

	// ErrInvalidZoom indicates a timeframe carries an unrecognized zoom level.
	ErrInvalidZoom = errors.New("invalid zoom level")
)
