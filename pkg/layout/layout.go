package layout

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roadmap/pkg/geometry"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// DefaultMargin is the space between the outermost boxes and the frame.
const DefaultMargin = 40.0

// PlacedNode is a node box in drawing space.
type PlacedNode struct {
	Node   *roadmap.Node
	Center geometry.Point
	Width  float64
	Height float64
}

// TopLeft returns the upper-left corner of the box.
func (p PlacedNode) TopLeft() geometry.Point {
	return geometry.Pt(p.Center.X-p.Width/2, p.Center.Y-p.Height/2)
}

// PlacedConnector is a routed edge.
type PlacedConnector struct {
	Edge roadmap.Edge
	geometry.Connector
}

// Layout is a roadmap placed in drawing space.
type Layout struct {
	Title      string
	Width      float64
	Height     float64
	Offset     geometry.Point
	Radius     float64
	Margin     float64
	Nodes      []PlacedNode
	Connectors []PlacedConnector
	Skipped    []roadmap.Edge
}

// Node returns the placed node with the given id.
func (l *Layout) Node(id string) (PlacedNode, bool) {
	for _, n := range l.Nodes {
		if n.Node.ID == id {
			return n, true
		}
	}
	return PlacedNode{}, false
}

// Option configures Build.
type Option func(*builder)

type builder struct {
	radius    float64
	margin    float64
	offset    geometry.Point
	hasOffset bool
	logger    *log.Logger
}

// WithRadius sets the maximum corner radius of elbow connectors.
func WithRadius(r float64) Option { return func(b *builder) { b.radius = r } }

// WithMargin sets the frame margin.
func WithMargin(m float64) Option { return func(b *builder) { b.margin = m } }

// WithOffset fixes the origin offset instead of deriving it from the bounds.
func WithOffset(p geometry.Point) Option {
	return func(b *builder) { b.offset, b.hasOffset = p, true }
}

// WithLogger reports skipped edges as warnings.
func WithLogger(l *log.Logger) Option { return func(b *builder) { b.logger = l } }

// Build places every node of g and routes every edge whose endpoints exist.
// It never fails: dangling edges end up in Layout.Skipped.
func Build(g *roadmap.Graph, opts ...Option) Layout {
	b := builder{radius: geometry.DefaultRadius, margin: DefaultMargin}
	for _, opt := range opts {
		opt(&b)
	}
	if b.radius <= 0 {
		b.radius = geometry.DefaultRadius
	}
	if b.margin < 0 {
		b.margin = 0
	}

	l := Layout{
		Title:  g.Meta().Title,
		Radius: b.radius,
		Margin: b.margin,
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range g.Nodes() {
		w, h := BoxSize(n.Kind)
		minX = math.Min(minX, n.Pos.X-w/2)
		minY = math.Min(minY, n.Pos.Y-h/2)
		maxX = math.Max(maxX, n.Pos.X+w/2)
		maxY = math.Max(maxY, n.Pos.Y+h/2)
	}
	if g.NodeCount() == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	l.Offset = geometry.Pt(b.margin-minX, b.margin-minY)
	if b.hasOffset {
		l.Offset = b.offset
	}
	l.Width = math.Max(0, maxX+l.Offset.X+b.margin)
	l.Height = math.Max(0, maxY+l.Offset.Y+b.margin)

	for _, n := range g.Nodes() {
		w, h := BoxSize(n.Kind)
		l.Nodes = append(l.Nodes, PlacedNode{
			Node:   n,
			Center: n.Pos.Add(l.Offset),
			Width:  w,
			Height: h,
		})
	}

	router := geometry.Router{Offset: l.Offset, Radius: b.radius}
	resolved, dangling := g.ResolveEdges()
	for _, e := range resolved {
		var c geometry.Connector
		if e.Style == roadmap.StyleStraight {
			c = router.Straight(e.Src.Pos, e.Dst.Pos, e.Dashed)
		} else {
			c = router.Route(e.Src.Pos, e.Dst.Pos, e.Dashed)
		}
		l.Connectors = append(l.Connectors, PlacedConnector{Edge: e.Edge, Connector: c})
	}
	for _, e := range dangling {
		if b.logger != nil {
			b.logger.Warn("skipping edge with missing endpoint", "from", e.From, "to", e.To)
		}
	}
	l.Skipped = dangling

	return l
}
