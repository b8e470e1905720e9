// Package nodelink renders roadmaps as plain node-link diagrams.
//
// # Overview
//
// Instead of the fixed coordinates of the roadmap view, Graphviz places the
// nodes top to bottom. This is useful for checking the structure of a
// large document: every resolvable edge becomes an arrow and dangling edges
// are left out, the same as in the roadmap view.
//
// # Usage
//
//	dot := nodelink.ToDOT(g, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)
//
// [Scene] wraps the DOT source in a [graph.Layout] with VizType
// "nodelink", so it can be cached and rendered like any other scene.
//
// [graph.Layout]: github.com/matzehuels/roadmap/pkg/graph.Layout
package nodelink
