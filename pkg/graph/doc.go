// Package graph provides the serialized scene format for roadmap layouts.
//
// A [Layout] is what the layout stage produces and the render stage
// consumes: the frame size, every node box in drawing space, every routed
// connector as SVG path data, and the edges that were skipped because an
// endpoint was missing. It is the unit stored in the cache and served as
// layout.json, so a render never needs the original document.
//
// # Architecture
//
//   - pkg/roadmap.Graph: the source document (ids, coordinates, resources)
//   - pkg/layout.Layout: internal scene with typed geometry
//   - [Layout]: wire format (this package)
//
// # Constants
//
// This package is the single source of truth for visualization constants:
//
//	graph.VizTypeRoadmap    // "roadmap"
//	graph.VizTypeNodelink   // "nodelink"
//	graph.StyleLight        // "light"
//	graph.StyleDark         // "dark"
//
// # Layout Serialization
//
// Layouts are discriminated by VizType:
//
//	layout, _ := graph.UnmarshalLayout(data)
//	if layout.IsRoadmap() {
//	    // Use layout.Nodes and layout.Connectors
//	} else {
//	    // Use layout.DOT for Graphviz rendering
//	}
package graph
