// Package render turns roadmap scenes into output files.
//
// # Overview
//
// Rendering starts from a [graph.Layout] scene, either fresh from
// pkg/layout or read back from the cache:
//
//   - [styles]: themes and SVG fragments for nodes, connectors and the drawer
//   - [sink]: SVG, HTML, JSON, PNG and PDF writers
//   - [nodelink]: Graphviz DOT export for a plain node-link diagram
//
// # Format Conversion
//
// [ToPDF] and [ToPNG] convert any SVG using the external rsvg-convert tool
// (from librsvg). Both sinks and nodelink use them:
//
//	svg := sink.RenderSVG(scene)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [graph.Layout]: github.com/matzehuels/roadmap/pkg/graph.Layout
package render
