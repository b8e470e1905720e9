// Package layout places a roadmap in drawing space.
//
// [Build] takes a [roadmap.Graph] whose nodes carry fixed coordinates and
// produces a [Layout]: every node gets a box sized for its kind, every
// resolvable edge gets a connector routed between node centers, and edges
// whose endpoints are missing are collected in Skipped instead of failing
// the build.
//
// Node coordinates are centers in roadmap space. Unless [WithOffset] is
// given, the origin offset is chosen so the leftmost and topmost boxes sit
// exactly one margin from the frame edge.
//
//	l := layout.Build(g, layout.WithRadius(16), layout.WithMargin(40))
//	scene := l.Export() // graph.Layout, ready for rendering or caching
package layout
