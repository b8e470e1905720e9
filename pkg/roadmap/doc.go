// Package roadmap holds the static graph data of a learning roadmap.
//
// A [Graph] is a set of topic [Node] values placed at fixed coordinates and
// joined by [Edge] values. Nodes carry a closed [Kind] that selects their
// presentation style, plus an optional description and a list of
// [Resource] links shown in the detail drawer.
//
// # Tolerant edges
//
// Edges may reference node ids that do not exist. Such dangling edges are a
// configuration mistake but never a fatal one: [Graph.AddEdge] records them,
// [Graph.ResolveEdges] splits them off so the renderer can skip them, and
// [Graph.Validate] reports them for authoring tools.
//
// # Documents
//
// Graphs are persisted as documents in JSON, TOML or YAML (see [ReadFile]).
// A document either lists coordinate nodes and edges, or lists plain items
// that are laid out as a single vertical column ending in an end node.
//
// A Graph is read-only once built and safe for concurrent readers.
package roadmap
