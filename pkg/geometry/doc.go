// Package geometry routes connector lines between roadmap nodes.
//
// A connector is a single continuous path made of move-to, line-to and
// quadratic-curve-to segments. Two routing cases exist:
//
//   - Vertically aligned endpoints (|Δx| below [Router.Epsilon]) produce a
//     straight two-point line.
//   - Horizontally offset endpoints produce a "plumbing elbow": a vertical
//     run to the midline, a rounded quarter turn, a horizontal run, a second
//     rounded quarter turn and a vertical run into the end point.
//
// The corner radius is clamped to min(Radius, |Δy|/2, |Δx|/2) so corners
// never overshoot the midpoint in either axis and collapse to sharp corners
// when nodes sit close together.
//
// # Usage
//
//	c := geometry.RouteConnector(geometry.Pt(0, 0), geometry.Pt(200, 120), false)
//	fmt.Println(c.Path) // M 0 0 L 0 40 Q 0 60 20 60 L 180 60 Q 200 60 200 80 L 200 120
//
// Routing is pure and allocation-light; a [Router] value may be shared by
// any number of goroutines.
package geometry
