package pipeline

import (
	"fmt"

	rerrors "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/render/nodelink"
	"github.com/matzehuels/roadmap/pkg/render/sink"
	"github.com/matzehuels/roadmap/pkg/render/styles"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// Render generates output artifacts in the requested formats. g supplies
// drawer content and DOT export for roadmap scenes and may be nil.
func Render(l graph.Layout, g *roadmap.Graph, opts Options) (map[string][]byte, error) {
	opts = applyLayoutMetadata(opts, l)
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if l.IsNodelink() {
		return RenderNodelink(l, opts)
	}
	return renderRoadmap(l, g, opts)
}

// RenderNodelink generates nodelink outputs from a layout.
// The layout must be a nodelink layout (VizType = "nodelink") with a DOT string.
func RenderNodelink(l graph.Layout, opts Options) (map[string][]byte, error) {
	if l.DOT == "" {
		return nil, fmt.Errorf("nodelink layout missing DOT string")
	}

	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(l.DOT)
		case FormatPNG:
			data, err = nodelink.RenderPNG(l.DOT, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(l.DOT)
		case FormatJSON:
			data, err = graph.MarshalLayout(l)
		case FormatDOT:
			data = []byte(l.DOT)
		default:
			return nil, rerrors.New(rerrors.ErrCodeUnsupported, "format %s is not available for nodelink diagrams", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func renderRoadmap(l graph.Layout, g *roadmap.Graph, opts Options) (map[string][]byte, error) {
	svgOpts, err := buildSVGOptions(g, opts)
	if err != nil {
		return nil, err
	}
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = sink.RenderSVG(l, svgOpts...)
		case FormatHTML:
			data, err = sink.RenderHTML(l, sink.WithHTMLSVGOptions(svgOpts...))
		case FormatPNG:
			data, err = sink.RenderPNG(l, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(l, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(l)
		case FormatDOT:
			if g == nil {
				return nil, rerrors.New(rerrors.ErrCodeUnsupported, "dot export needs the roadmap document")
			}
			data = []byte(nodelink.ToDOT(g, nodelink.Options{}))
		default:
			return nil, rerrors.New(rerrors.ErrCodeUnsupported, "unsupported roadmap format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// applyLayoutMetadata applies layout metadata to options if not already set.
// This ensures that serialized layouts preserve their original rendering settings.
func applyLayoutMetadata(opts Options, l graph.Layout) Options {
	if opts.Style == "" && l.Style != "" {
		opts.Style = l.Style
	}
	if opts.VizType == "" {
		opts.VizType = l.VizType
	}
	return opts
}

func buildSVGOptions(g *roadmap.Graph, opts Options) ([]sink.SVGOption, error) {
	style, err := styles.ByName(opts.Style)
	if err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeInvalidStyle, err, "style")
	}
	svgOpts := []sink.SVGOption{sink.WithStyle(style)}
	if g != nil {
		svgOpts = append(svgOpts, sink.WithGraph(g))
	}
	if opts.Selected != "" {
		svgOpts = append(svgOpts, sink.WithSelected(opts.Selected))
	}
	if opts.Drawer {
		svgOpts = append(svgOpts, sink.WithDrawer())
	}
	return svgOpts, nil
}
