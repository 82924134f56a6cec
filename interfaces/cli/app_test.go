package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const lineJSON = `{"type":"line","title":"HRV","series":[{"label":"HRV","data":[40,45,50]}],"labels":["Mon","Tue","Wed"]}`

// runApp executes the CLI with args and returns stdout.
func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	app := New().WithOutput(&stdout, &stderr)
	err := app.ExecuteWithArgs(context.Background(), args)
	return stdout.String(), err
}

func writeSpec(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "spec.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestApp_Version(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "chartkit version") {
		t.Errorf("output = %q, want version banner", out)
	}
}

func TestApp_Render(t *testing.T) {
	path := writeSpec(t, lineJSON)

	out, err := runApp(t, "render", path)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "HRV") {
		t.Errorf("output missing SVG document:\n%s", out)
	}
}

func TestApp_Render_MalformedSpecStillSucceeds(t *testing.T) {
	path := writeSpec(t, `{"type":"pie","title":"nope"}`)

	out, err := runApp(t, "render", path)
	if err != nil {
		t.Fatalf("render error = %v, malformed specs degrade to placeholders", err)
	}
	if !strings.Contains(out, "Unable to render chart") {
		t.Errorf("output missing placeholder message:\n%s", out)
	}
}

func TestApp_Render_ToFile(t *testing.T) {
	path := writeSpec(t, lineJSON)
	outPath := filepath.Join(t.TempDir(), "chart.svg")

	if _, err := runApp(t, "render", path, "--out", outPath, "--width", "400"); err != nil {
		t.Fatalf("render error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("output file not written: %v", err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output file is not an SVG document")
	}
}

func TestApp_Validate(t *testing.T) {
	path := writeSpec(t, lineJSON)

	out, err := runApp(t, "validate", path)
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.Contains(out, "valid line chart") {
		t.Errorf("output = %q", out)
	}
}

func TestApp_Validate_Invalid(t *testing.T) {
	path := writeSpec(t, `{"type":"line"}`)

	if _, err := runApp(t, "validate", path); err == nil {
		t.Error("validate error = nil, want missing title rejection")
	}
}

func TestApp_Extract(t *testing.T) {
	path := writeSpec(t, "intro\n```chart\n"+lineJSON+"\n```\noutro")

	out, err := runApp(t, "extract", path)
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}

	var segments []struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(out), &segments); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(segments))
	}
	if segments[1].Kind != "chart" {
		t.Errorf("segments[1].Kind = %q, want chart", segments[1].Kind)
	}
}

func TestApp_Extract_ChartsOnly(t *testing.T) {
	path := writeSpec(t, "intro\n```chart\n"+lineJSON+"\n```\noutro")

	out, err := runApp(t, "extract", path, "--charts-only")
	if err != nil {
		t.Fatalf("extract error = %v", err)
	}

	var segments []struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal([]byte(out), &segments); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(segments) != 1 || segments[0].Kind != "chart" {
		t.Errorf("segments = %+v, want single chart segment", segments)
	}
}

func TestApp_ConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "chartkit.yaml")
	if err := os.WriteFile(cfgPath, []byte("render: {width: 480}"), 0o600); err != nil {
		t.Fatal(err)
	}
	specPath := writeSpec(t, lineJSON)

	out, err := runApp(t, "--config", cfgPath, "render", specPath)
	if err != nil {
		t.Fatalf("render error = %v", err)
	}
	if !strings.Contains(out, `width="480"`) {
		t.Errorf("output does not honor configured width:\n%.200s", out)
	}
}

func TestApp_UnknownCommand(t *testing.T) {
	if _, err := runApp(t, "definitely-not-a-command"); err == nil {
		t.Error("error = nil for unknown command")
	}
}
