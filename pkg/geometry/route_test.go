package geometry

import (
	"math"
	"testing"
)

func TestRouteStraight(t *testing.T) {
	c := RouteConnector(Pt(0, 0), Pt(0, 120), false)

	if got, want := c.Path.String(), "M 0 0 L 0 120"; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	if !c.Path.IsStraight() || c.Elbow() {
		t.Error("aligned endpoints should route straight")
	}
	if c.Radius != 0 {
		t.Errorf("Radius = %v, want 0", c.Radius)
	}
}

func TestRouteElbow(t *testing.T) {
	c := RouteConnector(Pt(0, 0), Pt(200, 120), false)

	want := "M 0 0 L 0 40 Q 0 60 20 60 L 180 60 Q 200 60 200 80 L 200 120"
	if got := c.Path.String(); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	if c.Radius != 20 {
		t.Errorf("Radius = %v, want 20", c.Radius)
	}
}

func TestRouteDirections(t *testing.T) {
	tests := []struct {
		name       string
		start, end Point
		want       string
	}{
		{
			name:  "down-left",
			start: Pt(200, 0), end: Pt(0, 120),
			want: "M 200 0 L 200 40 Q 200 60 180 60 L 20 60 Q 0 60 0 80 L 0 120",
		},
		{
			name:  "up-right",
			start: Pt(0, 120), end: Pt(200, 0),
			want: "M 0 120 L 0 80 Q 0 60 20 60 L 180 60 Q 200 60 200 40 L 200 0",
		},
		{
			name:  "radius clamped by dy",
			start: Pt(0, 0), end: Pt(100, 10),
			want: "M 0 0 L 0 0 Q 0 5 5 5 L 95 5 Q 100 5 100 10 L 100 10",
		},
		{
			name:  "radius clamped by dx",
			start: Pt(0, 0), end: Pt(10, 100),
			want: "M 0 0 L 0 45 Q 0 50 5 50 L 5 50 Q 10 50 10 55 L 10 100",
		},
		{
			name:  "same row",
			start: Pt(0, 50), end: Pt(100, 50),
			want: "M 0 50 L 0 50 Q 0 50 0 50 L 100 50 Q 100 50 100 50 L 100 50",
		},
		{
			name:  "below epsilon",
			start: Pt(100, 0), end: Pt(101.5, 80),
			want: "M 100 0 L 101.5 80",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := RouteConnector(tt.start, tt.end, false)
			if got := c.Path.String(); got != tt.want {
				t.Errorf("Path = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRouteDegenerate(t *testing.T) {
	c := RouteConnector(Pt(40, 40), Pt(40, 40), true)
	if got, want := c.Path.String(), "M 40 40 L 40 40"; got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
	if c.DashArray() != DashArray {
		t.Errorf("DashArray() = %q, want %q", c.DashArray(), DashArray)
	}
}

func TestRouteOffset(t *testing.T) {
	r := Router{Offset: Pt(400, 50)}
	c := r.Route(Pt(-100, 0), Pt(100, 120), false)

	if got, want := c.Path.Start(), Pt(300, 50); got != want {
		t.Errorf("Start() = %v, want %v", got, want)
	}
	if got, want := c.Path.End(), Pt(500, 170); got != want {
		t.Errorf("End() = %v, want %v", got, want)
	}

	// Relative geometry is preserved by the offset.
	plain := RouteConnector(Pt(-100, 0), Pt(100, 120), false)
	if got, want := c.Path.String(), plain.Path.Translate(Pt(400, 50)).String(); got != want {
		t.Errorf("offset path = %q, want %q", got, want)
	}
}

func TestRouteDashedDoesNotChangeGeometry(t *testing.T) {
	solid := RouteConnector(Pt(0, 0), Pt(-80, 200), false)
	dashed := RouteConnector(Pt(0, 0), Pt(-80, 200), true)

	if solid.Path.String() != dashed.Path.String() {
		t.Errorf("dashed path %q differs from solid %q", dashed.Path, solid.Path)
	}
	if solid.DashArray() != "" {
		t.Errorf("solid DashArray() = %q, want empty", solid.DashArray())
	}
}

func TestRouteProperties(t *testing.T) {
	r := Router{Radius: 24, Offset: Pt(13, -7)}
	coords := []float64{-310, -45.5, -3, 0, 1, 2.5, 17, 120, 999}

	for _, x1 := range coords {
		for _, y1 := range coords {
			for _, x2 := range coords {
				for _, y2 := range coords {
					start, end := Pt(x1, y1), Pt(x2, y2)
					c := r.Route(start, end, false)

					if !c.Path.Start().Eq(start.Add(r.Offset), 1e-9) {
						t.Fatalf("Route(%v, %v) starts at %v", start, end, c.Path.Start())
					}
					if !c.Path.End().Eq(end.Add(r.Offset), 1e-9) {
						t.Fatalf("Route(%v, %v) ends at %v", start, end, c.Path.End())
					}
					if c.Path[0].Op != MoveTo {
						t.Fatalf("Route(%v, %v) does not begin with MoveTo", start, end)
					}

					if x1 == x2 {
						if !c.Path.IsStraight() {
							t.Fatalf("Route(%v, %v) = %q, want straight", start, end, c.Path)
						}
						continue
					}

					limit := math.Min(24, math.Min(math.Abs(y2-y1)/2, math.Abs(x2-x1)/2))
					if c.Radius < 0 || c.Radius > limit+1e-9 {
						t.Fatalf("Route(%v, %v) radius %v outside [0, %v]", start, end, c.Radius, limit)
					}
				}
			}
		}
	}
}

func TestRouterDefaults(t *testing.T) {
	var r Router
	if r.radius() != DefaultRadius || r.epsilon() != DefaultEpsilon {
		t.Errorf("zero Router uses radius %v epsilon %v", r.radius(), r.epsilon())
	}

	wide := Router{Epsilon: 10}
	if !wide.Route(Pt(0, 0), Pt(9, 100), false).Path.IsStraight() {
		t.Error("offset below custom epsilon should route straight")
	}
}

func TestRouterStraight(t *testing.T) {
	r := Router{Offset: Pt(10, 5)}
	c := r.Straight(Pt(0, 0), Pt(300, 140), true)
	if got, want := c.Path.String(), "M 10 5 L 310 145"; got != want {
		t.Errorf("Straight = %q, want %q", got, want)
	}
	if c.Elbow() || c.Radius != 0 || !c.Dashed {
		t.Errorf("Straight connector = %+v", c)
	}
}
