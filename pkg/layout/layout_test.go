package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/roadmap/pkg/geometry"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

func newGraph(t *testing.T, nodes []roadmap.Node, edges []roadmap.Edge) *roadmap.Graph {
	t.Helper()
	g := roadmap.New(roadmap.Meta{Title: "test"})
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			t.Fatalf("AddNode(%s): %v", n.ID, err)
		}
	}
	for _, e := range edges {
		g.AddEdge(e)
	}
	return g
}

func TestBuildVertical(t *testing.T) {
	g := newGraph(t,
		[]roadmap.Node{
			{ID: "a", Title: "A", Pos: geometry.Pt(0, 0)},
			{ID: "b", Title: "B", Pos: geometry.Pt(0, 120)},
		},
		[]roadmap.Edge{{From: "a", To: "b"}},
	)

	l := Build(g)

	if l.Offset != geometry.Pt(150, 72) {
		t.Errorf("Offset = %v, want (150, 72)", l.Offset)
	}
	if l.Width != 300 || l.Height != 264 {
		t.Errorf("frame = %vx%v, want 300x264", l.Width, l.Height)
	}
	if len(l.Connectors) != 1 {
		t.Fatalf("connectors = %d, want 1", len(l.Connectors))
	}
	if got, want := l.Connectors[0].Path.String(), "M 150 72 L 150 192"; got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if l.Title != "test" {
		t.Errorf("Title = %q", l.Title)
	}
}

func TestBuildSkipsDanglingEdges(t *testing.T) {
	nodes := []roadmap.Node{
		{ID: "start", Kind: roadmap.KindStart, Pos: geometry.Pt(0, 0)},
		{ID: "python", Pos: geometry.Pt(-200, 150)},
		{ID: "math", Pos: geometry.Pt(200, 150)},
	}
	edges := []roadmap.Edge{
		{From: "start", To: "python"},
		{From: "start", To: "math", Dashed: true},
	}

	clean := Build(newGraph(t, nodes, edges))
	withGhost := Build(newGraph(t, nodes, append([]roadmap.Edge{{From: "python", To: "ghost"}}, edges...)))

	if len(withGhost.Skipped) != 1 || withGhost.Skipped[0].To != "ghost" {
		t.Fatalf("Skipped = %v, want python -> ghost", withGhost.Skipped)
	}
	if len(withGhost.Connectors) != len(clean.Connectors) {
		t.Fatalf("connectors = %d, want %d", len(withGhost.Connectors), len(clean.Connectors))
	}
	for i := range clean.Connectors {
		if a, b := clean.Connectors[i].Path.String(), withGhost.Connectors[i].Path.String(); a != b {
			t.Errorf("connector %d changed: %q vs %q", i, a, b)
		}
	}
	if !withGhost.Connectors[1].Dashed {
		t.Error("dashed flag lost")
	}
}

func TestBuildLogsSkippedEdges(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	g := newGraph(t,
		[]roadmap.Node{{ID: "a", Pos: geometry.Pt(0, 0)}},
		[]roadmap.Edge{{From: "a", To: "ghost"}},
	)
	Build(g, WithLogger(logger))

	if !strings.Contains(buf.String(), "ghost") {
		t.Errorf("log output %q does not mention the missing node", buf.String())
	}
}

func TestBuildEdgeStyles(t *testing.T) {
	nodes := []roadmap.Node{
		{ID: "a", Pos: geometry.Pt(0, 0)},
		{ID: "b", Pos: geometry.Pt(300, 140)},
	}

	tests := []struct {
		style     roadmap.EdgeStyle
		wantElbow bool
	}{
		{roadmap.StyleElbow, true},
		{roadmap.StyleMerge, true},
		{roadmap.StyleStraight, false},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			l := Build(newGraph(t, nodes, []roadmap.Edge{{From: "a", To: "b", Style: tt.style}}))
			if got := l.Connectors[0].Elbow(); got != tt.wantElbow {
				t.Errorf("Elbow() = %v, want %v (path %q)", got, tt.wantElbow, l.Connectors[0].Path)
			}
		})
	}
}

func TestBuildOptions(t *testing.T) {
	g := newGraph(t,
		[]roadmap.Node{
			{ID: "a", Pos: geometry.Pt(0, 0)},
			{ID: "b", Pos: geometry.Pt(300, 140)},
		},
		[]roadmap.Edge{{From: "a", To: "b"}},
	)

	l := Build(g, WithOffset(geometry.Pt(500, 100)), WithRadius(8), WithMargin(10))

	n, ok := l.Node("b")
	if !ok {
		t.Fatal("node b not placed")
	}
	if n.Center != geometry.Pt(800, 240) {
		t.Errorf("center = %v, want (800, 240)", n.Center)
	}
	if l.Connectors[0].Radius != 8 {
		t.Errorf("radius = %v, want 8", l.Connectors[0].Radius)
	}
	if l.Connectors[0].Path.Start() != geometry.Pt(500, 100) {
		t.Errorf("path start = %v", l.Connectors[0].Path.Start())
	}
	if want := 800 + 110 + 10.0; l.Width != want {
		t.Errorf("Width = %v, want %v", l.Width, want)
	}
}

func TestBuildEmpty(t *testing.T) {
	l := Build(roadmap.New(roadmap.Meta{}))
	if len(l.Nodes) != 0 || len(l.Connectors) != 0 {
		t.Errorf("empty graph produced %+v", l)
	}
	if l.Width != 2*DefaultMargin || l.Height != 2*DefaultMargin {
		t.Errorf("frame = %vx%v", l.Width, l.Height)
	}
}

func TestBoxSize(t *testing.T) {
	for _, k := range roadmap.Kinds() {
		w, h := BoxSize(k)
		if w <= 0 || h <= 0 {
			t.Errorf("BoxSize(%v) = %v, %v", k, w, h)
		}
	}
	if w, h := BoxSize(roadmap.KindStart); w != h {
		t.Errorf("start marker is not round: %v x %v", w, h)
	}
	mw, mh := BoxSize(roadmap.KindMain)
	if w, h := BoxSize(roadmap.Kind(99)); w != mw || h != mh {
		t.Errorf("unknown kind sized %vx%v, want main size", w, h)
	}
}
