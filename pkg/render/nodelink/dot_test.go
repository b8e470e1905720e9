package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/roadmap/pkg/geometry"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/render/styles"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

func sampleGraph(t *testing.T) *roadmap.Graph {
	t.Helper()
	g := roadmap.New(roadmap.Meta{Title: "sample"})
	for _, n := range []roadmap.Node{
		{ID: "start", Title: "Start", Kind: roadmap.KindStart, Pos: geometry.Pt(0, 0)},
		{ID: "python", Title: "Python", Label: "must learn", Pos: geometry.Pt(0, 120)},
		{ID: "rl", Title: "RL", Kind: roadmap.KindOptional, Pos: geometry.Pt(200, 240)},
	} {
		if err := g.AddNode(n); err != nil {
			t.Fatal(err)
		}
	}
	g.AddEdge(roadmap.Edge{From: "start", To: "python"})
	g.AddEdge(roadmap.Edge{From: "python", To: "rl", Dashed: true, Style: roadmap.StyleMerge})
	g.AddEdge(roadmap.Edge{From: "python", To: "ghost"})
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(sampleGraph(t), Options{})

	for _, want := range []string{
		"digraph G",
		`"start" [label="Start"`,
		"shape=circle",
		`"start" -> "python";`,
		`"python" -> "rl" [style=dashed, arrowhead=diamond];`,
		`style="rounded,filled,dashed"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "ghost") {
		t.Error("ToDOT() should leave out dangling edges")
	}
}

func TestToDOTStyle(t *testing.T) {
	dark := styles.Dark()
	dot := ToDOT(sampleGraph(t), Options{Style: dark})
	if !strings.Contains(dot, dark.Palette(roadmap.KindMain).Fill) {
		t.Error("ToDOT() does not use the theme palette")
	}
}

func TestFmtLabel(t *testing.T) {
	n := &roadmap.Node{ID: "cv-yolo", Title: "YOLO", Kind: roadmap.KindLeaf, Label: "project"}

	if got := fmtLabel(n, false); got != "YOLO" {
		t.Errorf("fmtLabel() simple = %q, want %q", got, "YOLO")
	}
	got := fmtLabel(n, true)
	if !strings.HasPrefix(got, "YOLO\n") || !strings.Contains(got, "kind: leaf") || !strings.Contains(got, "project") {
		t.Errorf("fmtLabel() detailed = %q", got)
	}
}

func TestScene(t *testing.T) {
	s := Scene(sampleGraph(t), Options{Style: styles.Dark()})
	if !s.IsNodelink() || s.Engine != DefaultEngine || s.Style != graph.StyleDark {
		t.Errorf("Scene() = %+v", s)
	}
	data, err := graph.MarshalLayout(s)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := graph.UnmarshalLayout(data); err != nil {
		t.Errorf("scene does not round trip: %v", err)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeViewBox([]byte(tt.svg))
			if string(got) != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", string(got), tt.want)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(ToDOT(sampleGraph(t), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVG_InvalidDOT(t *testing.T) {
	if _, err := RenderSVG(`not valid DOT {{{`); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}
