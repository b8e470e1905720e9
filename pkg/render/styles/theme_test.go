package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matzehuels/roadmap/pkg/drawer"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "light", false},
		{"light", "light", false},
		{"dark", "dark", false},
		{"handdrawn", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := ByName(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if s.Name() != tt.want {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.want)
			}
		})
	}
}

func TestPaletteCoversEveryKind(t *testing.T) {
	for _, th := range []*Theme{Light(), Dark()} {
		for _, k := range roadmap.Kinds() {
			if _, ok := th.palettes[k]; !ok {
				t.Errorf("%s theme has no palette for %v", th.Name(), k)
			}
		}
		if th.Palette(roadmap.Kind(42)) != th.Palette(roadmap.KindMain) {
			t.Errorf("%s theme: unknown kind should fall back to main", th.Name())
		}
	}
}

func TestRenderNode(t *testing.T) {
	th := Light()

	tests := []struct {
		name     string
		box      NodeBox
		contains []string
		excludes []string
	}{
		{
			name: "main box",
			box:  NodeBox{ID: "python", Kind: roadmap.KindMain, X: 10, Y: 20, W: 220, H: 64},
			contains: []string{
				`<rect`,
				`id="node-python"`,
				`class="node kind-main"`,
				`x="10.00"`,
				`width="220.00"`,
			},
			excludes: []string{"stroke-dasharray", "clickable"},
		},
		{
			name:     "start circle",
			box:      NodeBox{ID: "start", Kind: roadmap.KindStart, CX: 100, CY: 50, W: 64, H: 64},
			contains: []string{`<circle`, `cx="100.00"`, `r="32.00"`},
		},
		{
			name:     "optional is dashed",
			box:      NodeBox{ID: "rl", Kind: roadmap.KindOptional, W: 180, H: 52},
			contains: []string{`stroke-dasharray="6 4"`},
		},
		{
			name:     "selected clickable",
			box:      NodeBox{ID: "cv", Kind: roadmap.KindLeaf, Detail: true, Selected: true},
			contains: []string{`clickable selected`, `stroke="` + th.selected + `"`},
		},
		{
			name:     "escaped id",
			box:      NodeBox{ID: "a<b"},
			contains: []string{`id="node-a&lt;b"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			th.RenderNode(&buf, tt.box)
			out := buf.String()
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("RenderNode() output missing %q\nGot: %s", want, out)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(out, bad) {
					t.Errorf("RenderNode() output contains %q\nGot: %s", bad, out)
				}
			}
		})
	}
}

func TestRenderConnector(t *testing.T) {
	th := Dark()
	var buf bytes.Buffer
	th.RenderConnector(&buf, Link{From: "a", To: "b", Path: "M 0 0 L 0 120", DashArray: "6 4", Merge: true})
	out := buf.String()
	for _, want := range []string{`d="M 0 0 L 0 120"`, `stroke-dasharray="6 4"`, `class="connector merge"`, `fill="none"`} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderConnector() missing %q\nGot: %s", want, out)
		}
	}

	buf.Reset()
	th.RenderConnector(&buf, Link{Path: "M 0 0 L 5 5"})
	if strings.Contains(buf.String(), "dasharray") {
		t.Errorf("solid connector is dashed: %s", buf.String())
	}
}

func TestRenderLabel(t *testing.T) {
	var buf bytes.Buffer
	Light().RenderLabel(&buf, NodeBox{ID: "py", Title: "Python & NumPy", Label: "must learn", W: 220, H: 64, CX: 110, CY: 32})
	out := buf.String()
	if !strings.Contains(out, "Python &amp; NumPy") {
		t.Errorf("title not escaped: %s", out)
	}
	if !strings.Contains(out, "must learn") {
		t.Errorf("label missing: %s", out)
	}
}

func TestRenderDrawer(t *testing.T) {
	panel := Panel{X: 500, Y: 0, W: 320, H: 600}

	t.Run("available", func(t *testing.T) {
		v := drawer.View{
			Open: true, Available: true, NodeID: "cv-yolo",
			Title: "YOLO", Category: "Computer Vision",
			Description: "Real-time object detection with a single network pass.",
			Resources: []drawer.Resource{
				{Icon: drawer.IconVideo, Title: "YOLO explained", URL: "https://example.com/yolo", Caption: "Video tutorial"},
				{Icon: drawer.IconLink, Title: "Paper", URL: "#", Caption: "Article tutorial", Placeholder: true},
			},
		}
		var buf bytes.Buffer
		Light().RenderDrawer(&buf, v, panel)
		out := buf.String()
		for _, want := range []string{"YOLO", "Computer Vision", drawer.Heading, drawer.CTA, "▶ YOLO explained", `href="https://example.com/yolo"`, "Video tutorial"} {
			if !strings.Contains(out, want) {
				t.Errorf("RenderDrawer() missing %q", want)
			}
		}
		if strings.Contains(out, `href="#"`) {
			t.Error("placeholder resource should not be linked")
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		var buf bytes.Buffer
		Light().RenderDrawer(&buf, drawer.View{Open: true, NodeID: "ghost", Placeholder: drawer.Unavailable}, panel)
		out := buf.String()
		if !strings.Contains(out, drawer.Unavailable) {
			t.Errorf("missing placeholder: %s", out)
		}
		if strings.Contains(out, drawer.CTA) {
			t.Error("unavailable drawer should not show the completion link")
		}
	})
}

func TestWrapAndTruncate(t *testing.T) {
	lines := wrap("one two three four five six seven eight nine ten", 100, 13)
	for _, l := range lines {
		if len(l) > 13 && strings.Contains(l, " ") {
			t.Errorf("line %q too long", l)
		}
	}
	if got := strings.Join(lines, " "); got != "one two three four five six seven eight nine ten" {
		t.Errorf("wrap lost words: %q", got)
	}
	if wrap("   ", 100, 13) != nil {
		t.Error("blank text should produce no lines")
	}

	if got := Truncate("short", 200, 15); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("a very long node title indeed", 60, 15); !strings.HasSuffix(got, "…") {
		t.Errorf("Truncate(long) = %q", got)
	}
}

func TestWrapWideText(t *testing.T) {
	desc := strings.Repeat("掌握线性代数矩阵运算微积分梯度下降和概率论", 3)
	maxCols := int(280 / (bodyFont * charWidth))

	lines := wrap(desc, 280, bodyFont)
	if len(lines) != 4 {
		t.Fatalf("wrap produced %d lines, want 4: %q", len(lines), lines)
	}
	for _, l := range lines {
		if w := columns.StringWidth(l); w > maxCols {
			t.Errorf("line %q is %d columns, limit %d", l, w, maxCols)
		}
	}
	if got := strings.Join(lines, ""); got != desc {
		t.Errorf("wrap lost text: %q", got)
	}

	mixed := wrap("学习 PyTorch 张量与自动求导以及神经网络模块的基本用法和训练循环的写法", 100, bodyFont)
	if len(mixed) < 2 {
		t.Fatalf("mixed text stayed on one line: %q", mixed)
	}
	for _, l := range mixed {
		if w := columns.StringWidth(l); w > int(100/(bodyFont*charWidth)) {
			t.Errorf("mixed line %q is %d columns", l, w)
		}
	}
}

func TestTruncateWideText(t *testing.T) {
	got := Truncate(strings.Repeat("深度学习", 10), 100, bodyFont)
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("Truncate(wide) = %q, want ellipsis", got)
	}
	if w := columns.StringWidth(got); w > int(100/(bodyFont*charWidth)) {
		t.Errorf("Truncate(wide) = %q is %d columns", got, w)
	}
	if got := Truncate("深度学习", 100, bodyFont); got != "深度学习" {
		t.Errorf("Truncate(short wide) = %q", got)
	}
}
