// Package styles defines how roadmap scenes are drawn.
//
// A [Style] writes SVG fragments for node boxes, connectors, labels and the
// detail drawer panel. Two themes ship with the package, [Light] and
// [Dark]; both look up node colors in a table keyed by [roadmap.Kind], so
// adding a kind means adding a palette entry.
//
//	s, err := styles.ByName("dark")
//	s.RenderNode(&buf, box)
package styles
