package extract

import "testing"

func TestSplit_AlternatingSegments(t *testing.T) {
	input := "Here is your weekly trend:\n```chart\n{\"type\":\"line\",\"title\":\"HRV\"}\n```\nKeep it up!"

	segs := Split(input)

	if len(segs) != 3 {
		t.Fatalf("segments = %d, want prose/chart/prose", len(segs))
	}
	if segs[0].Kind != SegmentProse || segs[1].Kind != SegmentChart || segs[2].Kind != SegmentProse {
		t.Errorf("kinds = %v/%v/%v", segs[0].Kind, segs[1].Kind, segs[2].Kind)
	}
	if segs[1].Text != `{"type":"line","title":"HRV"}` {
		t.Errorf("chart text = %q, want trimmed inner JSON", segs[1].Text)
	}
}

func TestSplit_RoundTripsByteForByte(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"prose only", "just words, no charts"},
		{"single block no prose", "```chart\n{}\n```"},
		{"leading prose", "intro\n```chart\n{}\n```"},
		{"trailing prose", "```chart\n{}\n```\noutro"},
		{"two blocks back to back", "```chart\n{\"a\":1}\n``````chart\n{\"b\":2}\n```"},
		{"blocks with prose between", "a\n```chart\nx\n```\nb\n```chart\ny\n```\nc"},
		{"unterminated fence stays prose", "before ```chart {\"x\": 1"},
		{"windows line endings", "a\r\n```chart\r\n{}\r\n```\r\nb"},
		{"unicode prose", "résumé 📈\n```chart\n{}\n```\n完了"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segs := Split(tt.input)
			if got := Reconstruct(segs); got != tt.input {
				t.Errorf("round trip = %q, want %q", got, tt.input)
			}
		})
	}
}

func TestSplit_NoBlocksYieldsSingleProse(t *testing.T) {
	segs := Split("no charts here")

	if len(segs) != 1 || segs[0].Kind != SegmentProse {
		t.Fatalf("segments = %+v, want one prose segment", segs)
	}
	if segs[0].Text != "no charts here" {
		t.Errorf("prose = %q", segs[0].Text)
	}
}

func TestSplit_EmptyInputYieldsNoSegments(t *testing.T) {
	if segs := Split(""); len(segs) != 0 {
		t.Errorf("segments = %+v, want none", segs)
	}
}

func TestSplit_MultipleBlocks(t *testing.T) {
	input := "First:\n```chart\n{\"type\":\"bar\"}\n```\nSecond:\n```chart\n{\"type\":\"line\"}\n```"

	segs := Split(input)
	charts := Charts(segs)

	if len(charts) != 2 {
		t.Fatalf("chart segments = %d, want 2", len(charts))
	}
	if charts[0].Text != `{"type":"bar"}` || charts[1].Text != `{"type":"line"}` {
		t.Errorf("chart order wrong: %q, %q", charts[0].Text, charts[1].Text)
	}
}

func TestSplit_BlockWithNoSurroundingProse(t *testing.T) {
	segs := Split("```chart\n{}\n```")

	if len(segs) != 1 || segs[0].Kind != SegmentChart {
		t.Fatalf("segments = %+v, want exactly one chart segment", segs)
	}
	if segs[0].Text != "{}" {
		t.Errorf("chart text = %q, want {}", segs[0].Text)
	}
}
