// Package extract splits free-form conversational text into alternating
// prose and chart-specification segments. Chart specifications sit in a
// reserved fenced block; everything else is prose.
//
// The split is lossless: concatenating every segment's raw text
// reproduces the original input byte for byte, which matters when the
// surrounding application re-displays or re-streams the conversation.
package extract

import "strings"

// Reserved fence delimiters for embedded chart specifications.
const (
	FenceOpen  = "```chart"
	FenceClose = "```"
)

// SegmentKind discriminates prose from chart segments.
type SegmentKind string

const (
	// SegmentProse is plain conversational text.
	SegmentProse SegmentKind = "prose"

	// SegmentChart is the raw specification text of one fenced block.
	SegmentChart SegmentKind = "chart"
)

// Segment is one run of the input. For chart segments Text holds the
// trimmed inner specification and Raw the exact fenced source including
// delimiters; for prose the two are identical.
type Segment struct {
	Kind SegmentKind
	Text string
	Raw  string
}

// Split partitions input into ordered segments. Zero fenced blocks
// yield a single prose segment equal to the whole input; empty input
// yields no segments. An unterminated fence is not a block — the
// remainder stays prose.
func Split(input string) []Segment {
	var segments []Segment
	rest := input

	for {
		open := strings.Index(rest, FenceOpen)
		if open < 0 {
			break
		}
		closing := strings.Index(rest[open+len(FenceOpen):], FenceClose)
		if closing < 0 {
			break
		}

		if open > 0 {
			segments = append(segments, Segment{
				Kind: SegmentProse,
				Text: rest[:open],
				Raw:  rest[:open],
			})
		}

		end := open + len(FenceOpen) + closing + len(FenceClose)
		raw := rest[open:end]
		inner := rest[open+len(FenceOpen) : end-len(FenceClose)]
		segments = append(segments, Segment{
			Kind: SegmentChart,
			Text: strings.TrimSpace(inner),
			Raw:  raw,
		})

		rest = rest[end:]
	}

	if rest != "" {
		segments = append(segments, Segment{
			Kind: SegmentProse,
			Text: rest,
			Raw:  rest,
		})
	}

	return segments
}

// Reconstruct joins segments back into the original input.
func Reconstruct(segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(s.Raw)
	}
	return b.String()
}

// Charts returns just the chart segments, in source order.
func Charts(segments []Segment) []Segment {
	var out []Segment
	for _, s := range segments {
		if s.Kind == SegmentChart {
			out = append(out, s)
		}
	}
	return out
}
