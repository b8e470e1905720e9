package geometry_test

import (
	"fmt"

	"github.com/matzehuels/roadmap/pkg/geometry"
)

func ExampleRouteConnector() {
	straight := geometry.RouteConnector(geometry.Pt(0, 0), geometry.Pt(0, 120), false)
	elbow := geometry.RouteConnector(geometry.Pt(0, 0), geometry.Pt(200, 120), true)

	fmt.Println(straight.Path)
	fmt.Println(elbow.Path)
	fmt.Println("radius:", elbow.Radius, "dash:", elbow.DashArray())
	// Output:
	// M 0 0 L 0 120
	// M 0 0 L 0 40 Q 0 60 20 60 L 180 60 Q 200 60 200 80 L 200 120
	// radius: 20 dash: 6 4
}

func ExampleRouter_Route() {
	r := geometry.Router{Offset: geometry.Pt(400, 40), Radius: 12}
	c := r.Route(geometry.Pt(0, 0), geometry.Pt(-150, 100), false)

	fmt.Println(c.Path.Start(), "->", c.Path.End())
	fmt.Println(c.Path)
	// Output:
	// 400 40 -> 250 140
	// M 400 40 L 400 78 Q 400 90 388 90 L 262 90 Q 250 90 250 102 L 250 140
}
