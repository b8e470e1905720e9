// Package pipeline provides the load → layout → render pipeline for roadmaps.
//
// The CLI commands and the HTTP server all go through this package, so a
// roadmap renders the same no matter which entry point produced it.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: read a roadmap document from disk, from inline content, or from
//     the builtin set ("builtin:deep-learning")
//  2. Layout: place nodes and route connectors into a [graph.Layout] scene
//  3. Render: generate output in various formats (SVG, HTML, JSON, PNG, PDF, DOT)
//
// Layout and render results are cached by content hash through a
// [cache.Cache]; loading is cheap and never cached.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  "builtin:deep-learning",
//	    Formats: []string{"svg", "html"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	g, err := pipeline.Load(opts)
//	scene, err := runner.Layout(ctx, g, opts)
//	artifacts, err := runner.Render(ctx, scene, g, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roadmap/pkg/cache"
	rerrors "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/geometry"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/layout"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

const (
	// DefaultVizType is the default visualization type.
	DefaultVizType = graph.VizTypeRoadmap

	// DefaultStyle is the default visual style.
	DefaultStyle = graph.StyleLight

	// DefaultRadius is the default elbow corner radius.
	DefaultRadius = geometry.DefaultRadius

	// DefaultMargin is the default frame margin.
	DefaultMargin = layout.DefaultMargin

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatHTML = "html"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatHTML: true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	graph.StyleLight: true,
	graph.StyleDark:  true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	graph.VizTypeRoadmap:  true,
	graph.VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Source         string         `json:"source,omitempty"`   // File path or builtin:name
	Document       string         `json:"document,omitempty"` // Inline document content
	DocumentFormat roadmap.Format `json:"document_format,omitempty"`
	Refresh        bool           `json:"refresh,omitempty"` // Bypass cached results

	// Layout options
	VizType     string  `json:"viz_type,omitempty"`
	Radius      float64 `json:"radius,omitempty"`
	Margin      float64 `json:"margin,omitempty"`
	OffsetX     float64 `json:"offset_x,omitempty"`
	OffsetY     float64 `json:"offset_y,omitempty"`
	FixedOffset bool    `json:"fixed_offset,omitempty"` // Use OffsetX/Y instead of the derived offset

	// Render options
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	Selected string   `json:"selected,omitempty"` // Node to highlight
	Drawer   bool     `json:"drawer,omitempty"`   // Draw the detail panel into SVG/PNG/PDF
	Scale    float64  `json:"scale,omitempty"`    // PNG scale factor

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the loaded roadmap.
	Graph *roadmap.Graph

	// DocHash is the content hash of the roadmap document.
	DocHash string

	// Layout is the scene that was rendered.
	Layout graph.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	Skipped    int // Dangling edges left out of the scene
	LoadTime   time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the scene came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return rerrors.New(rerrors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, html, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return rerrors.New(rerrors.ErrCodeInvalidStyle, "invalid style: %q (must be one of: light, dark)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return rerrors.New(rerrors.ErrCodeInvalidVizType, "invalid viz_type: %q (must be one of: roadmap, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that a document source is given.
func (o *Options) ValidateForLoad() error {
	if o.Source == "" && o.Document == "" {
		return rerrors.New(rerrors.ErrCodeInvalidInput, "source or document is required")
	}
	if o.Document != "" && o.DocumentFormat == "" {
		o.DocumentFormat = roadmap.FormatJSON
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Radius <= 0 {
		o.Radius = DefaultRadius
	}
	if o.Margin <= 0 {
		o.Margin = DefaultMargin
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Selected != "" {
		if err := rerrors.ValidateNodeID(o.Selected); err != nil {
			return err
		}
	}
	return nil
}

// IsRoadmap returns true if this is a coordinate roadmap visualization.
func (o *Options) IsRoadmap() bool {
	return o.VizType == "" || o.VizType == graph.VizTypeRoadmap
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == graph.VizTypeNodelink
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	k := cache.LayoutKeyOpts{
		VizType: o.VizType,
		Radius:  o.Radius,
		Margin:  o.Margin,
	}
	if o.FixedOffset {
		k.FixedOffset = true
		k.OffsetX, k.OffsetY = o.OffsetX, o.OffsetY
	}
	if o.IsNodelink() {
		k.Style = o.Style
	}
	return k
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Style:    o.Style,
		Selected: o.Selected,
		Drawer:   o.Drawer,
	}
}

func (o *Options) describe() string {
	if o.Source != "" {
		return o.Source
	}
	return fmt.Sprintf("inline %s document", o.DocumentFormat)
}
