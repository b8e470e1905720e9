package geometry

import "math"

const (
	// DefaultRadius is the corner radius used when none is configured.
	DefaultRadius = 20.0

	// DefaultEpsilon is the horizontal distance under which endpoints are
	// treated as vertically aligned.
	DefaultEpsilon = 2.0

	// DashArray is the SVG stroke-dasharray applied to dashed connectors.
	DashArray = "6 4"
)

// Router computes connector paths. The zero value routes with zero offset,
// DefaultRadius and DefaultEpsilon.
type Router struct {
	// Offset translates both endpoints from roadmap space into drawing
	// space before routing.
	Offset Point
	// Radius is the maximum corner radius of elbow routes. Zero or less
	// selects DefaultRadius.
	Radius float64
	// Epsilon is the alignment threshold for straight routes.
	Epsilon float64
}

// Connector is a routed edge ready for drawing.
type Connector struct {
	Path   Path
	Dashed bool
	// Radius is the corner radius actually used; zero for straight routes.
	Radius float64
}

// DashArray returns the stroke dash pattern, or "" for solid connectors.
func (c Connector) DashArray() string {
	if c.Dashed {
		return DashArray
	}
	return ""
}

// Elbow reports whether the connector was routed with corners.
func (c Connector) Elbow() bool { return !c.Path.IsStraight() }

func (r Router) radius() float64 {
	if r.Radius > 0 {
		return r.Radius
	}
	return DefaultRadius
}

func (r Router) epsilon() float64 {
	if r.Epsilon > 0 {
		return r.Epsilon
	}
	return DefaultEpsilon
}

// Route returns the connector from start to end. Both points are first
// translated by r.Offset. dashed is carried through to the stroke and never
// changes geometry.
//
// Route is total: coincident endpoints yield a degenerate straight path.
func (r Router) Route(start, end Point, dashed bool) Connector {
	p1 := start.Add(r.Offset)
	p2 := end.Add(r.Offset)
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y

	if math.Abs(dx) < r.epsilon() {
		return Connector{Path: Path{Move(p1), Line(p2)}, Dashed: dashed}
	}

	rad := math.Min(r.radius(), math.Min(math.Abs(dy)/2, math.Abs(dx)/2))
	midY := p1.Y + dy/2
	dirX, dirY := 1.0, 1.0
	if p2.X <= p1.X {
		dirX = -1
	}
	if p2.Y <= p1.Y {
		dirY = -1
	}

	path := Path{
		Move(p1),
		Line(Pt(p1.X, midY-rad*dirY)),
		Quad(Pt(p1.X, midY), Pt(p1.X+rad*dirX, midY)),
		Line(Pt(p2.X-rad*dirX, midY)),
		Quad(Pt(p2.X, midY), Pt(p2.X, midY+rad*dirY)),
		Line(p2),
	}
	return Connector{Path: path, Dashed: dashed, Radius: rad}
}

// Straight returns a direct line from start to end regardless of their
// horizontal distance. Used for list roadmaps and explicit straight edges.
func (r Router) Straight(start, end Point, dashed bool) Connector {
	return Connector{Path: Path{Move(start.Add(r.Offset)), Line(end.Add(r.Offset))}, Dashed: dashed}
}

var defaultRouter Router

// RouteConnector routes with the default router: no offset, DefaultRadius
// and DefaultEpsilon.
func RouteConnector(start, end Point, dashed bool) Connector {
	return defaultRouter.Route(start, end, dashed)
}
