// Package mcp exposes the chartkit engine over the Model Context
// Protocol, so conversational AI hosts can render, validate, and
// extract chart specifications as tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcpgo "github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/chartkit/domain/chart"
	"github.com/felixgeelhaar/chartkit/infrastructure/extract"
)

// Engine is the rendering surface the server exposes. Implemented by
// the application engine.
type Engine interface {
	// RenderSVG renders a raw specification to an SVG document.
	// Malformed input yields a placeholder document, not an error.
	RenderSVG(ctx context.Context, raw []byte, width float64) (string, error)

	// ValidateSpec parses a raw specification without rendering it.
	ValidateSpec(raw []byte) (chart.Spec, error)
}

// ChartServer wraps an MCP server exposing chartkit tools.
type ChartServer struct {
	srv    *mcpgo.Server
	engine Engine
	info   mcpgo.ServerInfo
}

// ChartServerConfig configures a chartkit MCP server.
type ChartServerConfig struct {
	// Name is the server name.
	Name string

	// Version is the server version.
	Version string

	// Description is an optional server description.
	Description string

	// Instructions provides usage instructions for clients.
	Instructions string

	// Engine renders and validates specifications.
	Engine Engine

	// DefaultWidth is the render width used when a call omits one.
	DefaultWidth float64
}

// renderInput is the render_chart tool payload.
type renderInput struct {
	Spec  json.RawMessage `json:"spec"`
	Width float64         `json:"width,omitempty"`
}

// extractInput is the extract_blocks tool payload.
type extractInput struct {
	Text string `json:"text"`
}

// validateInput is the validate_spec tool payload.
type validateInput struct {
	Spec json.RawMessage `json:"spec"`
}

// NewChartServer creates a new MCP server exposing chartkit tools.
func NewChartServer(cfg ChartServerConfig) *ChartServer {
	info := mcpgo.ServerInfo{
		Name:        cfg.Name,
		Version:     cfg.Version,
		Description: cfg.Description,
		Capabilities: mcpgo.Capabilities{
			Tools: true,
		},
	}

	var opts []mcpgo.Option
	if cfg.Instructions != "" {
		opts = append(opts, mcpgo.WithInstructions(cfg.Instructions))
	}

	srv := mcpgo.NewServer(info, opts...)

	if cfg.DefaultWidth <= 0 {
		cfg.DefaultWidth = 600
	}

	cs := &ChartServer{
		srv:    srv,
		engine: cfg.Engine,
		info:   info,
	}
	cs.registerTools(cfg.DefaultWidth)

	return cs
}

// registerTools registers the chartkit tools with the MCP server.
func (s *ChartServer) registerTools(defaultWidth float64) {
	s.srv.Tool("render_chart").
		Description("Render a chart specification to an SVG document").
		Handler(func(ctx context.Context, input json.RawMessage) (string, error) {
			return s.handleRender(ctx, input, defaultWidth)
		})

	s.srv.Tool("extract_blocks").
		Description("Split conversational text into prose and chart-specification segments").
		Handler(s.handleExtract)

	s.srv.Tool("validate_spec").
		Description("Validate a chart specification without rendering it").
		Handler(s.handleValidate)
}

// handleRender renders one specification to SVG.
func (s *ChartServer) handleRender(ctx context.Context, input json.RawMessage, defaultWidth float64) (string, error) {
	var in renderInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid render_chart input: %w", err)
	}
	if len(in.Spec) == 0 {
		return "", fmt.Errorf("render_chart input missing spec")
	}

	width := in.Width
	if width <= 0 {
		width = defaultWidth
	}

	return s.engine.RenderSVG(ctx, in.Spec, width)
}

// handleExtract splits text into segments and returns them as JSON.
func (s *ChartServer) handleExtract(ctx context.Context, input json.RawMessage) (string, error) {
	var in extractInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid extract_blocks input: %w", err)
	}

	type segment struct {
		Kind string `json:"kind"`
		Text string `json:"text"`
	}

	segs := extract.Split(in.Text)
	out := make([]segment, 0, len(segs))
	for _, s := range segs {
		out = append(out, segment{Kind: string(s.Kind), Text: s.Text})
	}

	encoded, err := json.Marshal(out)
	if err != nil {
		return "", fmt.Errorf("encode segments: %w", err)
	}
	return string(encoded), nil
}

// handleValidate parses a specification and reports its identity.
func (s *ChartServer) handleValidate(ctx context.Context, input json.RawMessage) (string, error) {
	var in validateInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid validate_spec input: %w", err)
	}

	spec, err := s.engine.ValidateSpec(in.Spec)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("valid %s chart %q (id %s)", spec.SpecType(), spec.SpecTitle(), spec.SpecID()), nil
}

// Server returns the underlying mcp-go server.
func (s *ChartServer) Server() *mcpgo.Server {
	return s.srv
}

// ServeStdio runs the server over stdin/stdout.
func (s *ChartServer) ServeStdio(ctx context.Context, opts ...mcpgo.ServeOption) error {
	return mcpgo.ServeStdio(ctx, s.srv, opts...)
}
