package geometry

import "strings"

// Op identifies a path drawing instruction.
type Op int

const (
	MoveTo Op = iota
	LineTo
	QuadTo
)

var opLetters = [...]string{MoveTo: "M", LineTo: "L", QuadTo: "Q"}

func (o Op) String() string {
	if int(o) < len(opLetters) {
		return opLetters[o]
	}
	return "?"
}

// Segment is one drawing instruction. C is the control point and is only
// meaningful for QuadTo.
type Segment struct {
	Op Op
	C  Point
	P  Point
}

// Move returns a MoveTo segment.
func Move(p Point) Segment { return Segment{Op: MoveTo, P: p} }

// Line returns a LineTo segment.
func Line(p Point) Segment { return Segment{Op: LineTo, P: p} }

// Quad returns a QuadTo segment with control point c ending at p.
func Quad(c, p Point) Segment { return Segment{Op: QuadTo, C: c, P: p} }

func (s Segment) String() string {
	if s.Op == QuadTo {
		return "Q " + s.C.String() + " " + s.P.String()
	}
	return s.Op.String() + " " + s.P.String()
}

// Path is an ordered list of segments starting with a MoveTo.
type Path []Segment

// String renders the path as SVG path data.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}

// Start returns the first point of the path.
func (p Path) Start() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[0].P
}

// End returns the last point of the path.
func (p Path) End() Point {
	if len(p) == 0 {
		return Point{}
	}
	return p[len(p)-1].P
}

// Points returns the end point of every segment, control points excluded.
func (p Path) Points() []Point {
	pts := make([]Point, len(p))
	for i, s := range p {
		pts[i] = s.P
	}
	return pts
}

// Translate returns a copy of p shifted by d.
func (p Path) Translate(d Point) Path {
	out := make(Path, len(p))
	for i, s := range p {
		out[i] = Segment{Op: s.Op, C: s.C.Add(d), P: s.P.Add(d)}
		if s.Op != QuadTo {
			out[i].C = Point{}
		}
	}
	return out
}

// IsStraight reports whether the path is a single move plus one line.
func (p Path) IsStraight() bool {
	return len(p) == 2 && p[0].Op == MoveTo && p[1].Op == LineTo
}
