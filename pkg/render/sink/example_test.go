package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/roadmap/pkg/geometry"
	"github.com/matzehuels/roadmap/pkg/layout"
	"github.com/matzehuels/roadmap/pkg/render/sink"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

func ExampleRenderSVG() {
	g := roadmap.New(roadmap.Meta{Title: "demo"})
	_ = g.AddNode(roadmap.Node{ID: "python", Title: "Python", Pos: geometry.Pt(0, 0)})
	_ = g.AddNode(roadmap.Node{ID: "pytorch", Title: "PyTorch", Pos: geometry.Pt(0, 120)})
	g.AddEdge(roadmap.Edge{From: "python", To: "pytorch"})

	l := layout.Build(g)
	svg := string(sink.RenderSVG(l.Export(), sink.WithGraph(g), sink.WithSelected("pytorch"), sink.WithDrawer()))

	fmt.Println("SVG starts with:", svg[:4])
	fmt.Println("Contains drawer:", strings.Contains(svg, `class="drawer"`))
	// Output:
	// SVG starts with: <svg
	// Contains drawer: true
}
