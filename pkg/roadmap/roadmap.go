package roadmap

import (
	"errors"
	"fmt"
	"math"

	"github.com/matzehuels/roadmap/pkg/geometry"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists. Node IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrDanglingEdge is reported by [Graph.Validate] for each edge whose
	// endpoint does not exist. Rendering skips such edges.
	ErrDanglingEdge = errors.New("edge references unknown node")
)

// Meta holds graph-level descriptive fields.
type Meta struct {
	Title       string
	Description string
}

// Resource is a learning link shown in the detail drawer.
type Resource struct {
	Kind  ResourceKind
	Title string
	URL   string
}

// Node is a roadmap topic placed at a fixed coordinate.
type Node struct {
	ID          string
	Title       string
	Pos         geometry.Point
	Kind        Kind
	Label       string // Short tag drawn under the title, e.g. "must learn"
	Category    string // Drawer heading above the title
	Description string
	Resources   []Resource
}

// DisplayTitle returns the title, or the ID when no title is set.
func (n *Node) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	return n.ID
}

// Edge joins two nodes. Dashed edges mark optional or alternate paths.
type Edge struct {
	From   string
	To     string
	Style  EdgeStyle
	Dashed bool
}

func (e Edge) String() string { return e.From + " -> " + e.To }

// ResolvedEdge is an edge paired with both of its endpoint nodes.
type ResolvedEdge struct {
	Edge
	Src *Node
	Dst *Node
}

// Graph is a roadmap: nodes in insertion order plus edges. Build it with
// New, AddNode and AddEdge; after that it is only read.
//
// The zero value is not usable - use New.
type Graph struct {
	meta     Meta
	nodes    map[string]*Node
	order    []*Node
	edges    []Edge
	outgoing map[string][]string
	incoming map[string][]string
}

// New creates an empty roadmap.
func New(meta Meta) *Graph {
	return &Graph{
		meta:     meta,
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// Meta returns the graph-level metadata.
func (g *Graph) Meta() Meta { return g.meta }

// AddNode adds a node. Returns ErrInvalidNodeID if the ID is empty or
// ErrDuplicateNodeID if it is taken.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateNodeID, n.ID)
	}
	node := &n
	g.nodes[n.ID] = node
	g.order = append(g.order, node)
	return nil
}

// AddEdge records an edge. Endpoints are not checked: an edge pointing at a
// missing node is kept and later skipped by ResolveEdges.
func (g *Graph) AddEdge(e Edge) {
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.order))
	copy(out, g.order)
	return out
}

// Edges returns all edges, dangling ones included, in insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of edges, dangling ones included.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the IDs of nodes reached by edges leaving id, existing
// nodes only.
func (g *Graph) Children(id string) []string { return g.existing(g.outgoing[id]) }

// Parents returns the IDs of nodes with edges into id, existing nodes only.
func (g *Graph) Parents(id string) []string { return g.existing(g.incoming[id]) }

func (g *Graph) existing(ids []string) []string {
	var out []string
	for _, id := range ids {
		if _, ok := g.nodes[id]; ok {
			out = append(out, id)
		}
	}
	return out
}

// Sources returns nodes without incoming edges, in insertion order.
func (g *Graph) Sources() []*Node {
	var out []*Node
	for _, n := range g.order {
		if len(g.Parents(n.ID)) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// Sinks returns nodes without outgoing edges, in insertion order.
func (g *Graph) Sinks() []*Node {
	var out []*Node
	for _, n := range g.order {
		if len(g.Children(n.ID)) == 0 {
			out = append(out, n)
		}
	}
	return out
}

// IsMerge reports whether more than one edge converges on id.
func (g *Graph) IsMerge(id string) bool { return len(g.Parents(id)) > 1 }

// ResolveEdges pairs every edge with its endpoint nodes. Edges whose source
// or target is missing are returned separately as dangling, in order.
func (g *Graph) ResolveEdges() (resolved []ResolvedEdge, dangling []Edge) {
	for _, e := range g.edges {
		src, okSrc := g.nodes[e.From]
		dst, okDst := g.nodes[e.To]
		if !okSrc || !okDst {
			dangling = append(dangling, e)
			continue
		}
		resolved = append(resolved, ResolvedEdge{Edge: e, Src: src, Dst: dst})
	}
	return resolved, dangling
}

// Validate reports every dangling edge, joined into one error. A graph with
// dangling edges still renders; Validate exists for authoring tools.
func (g *Graph) Validate() error {
	_, dangling := g.ResolveEdges()
	var errs []error
	for _, e := range dangling {
		var missing []string
		if _, ok := g.nodes[e.From]; !ok {
			missing = append(missing, e.From)
		}
		if _, ok := g.nodes[e.To]; !ok && e.To != e.From {
			missing = append(missing, e.To)
		}
		errs = append(errs, fmt.Errorf("%w: %s (missing %q)", ErrDanglingEdge, e, missing))
	}
	return errors.Join(errs...)
}

// Bounds returns the smallest rectangle containing every node position.
// An empty graph has zero bounds.
func (g *Graph) Bounds() (minPt, maxPt geometry.Point) {
	if len(g.order) == 0 {
		return geometry.Point{}, geometry.Point{}
	}
	minPt = geometry.Pt(math.Inf(1), math.Inf(1))
	maxPt = geometry.Pt(math.Inf(-1), math.Inf(-1))
	for _, n := range g.order {
		minPt.X = math.Min(minPt.X, n.Pos.X)
		minPt.Y = math.Min(minPt.Y, n.Pos.Y)
		maxPt.X = math.Max(maxPt.X, n.Pos.X)
		maxPt.Y = math.Max(maxPt.Y, n.Pos.Y)
	}
	return minPt, maxPt
}
