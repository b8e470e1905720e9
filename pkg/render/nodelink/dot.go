package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/render"
	"github.com/matzehuels/roadmap/pkg/render/styles"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// DefaultEngine is the Graphviz layout engine recorded in scenes.
const DefaultEngine = "dot"

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the node kind and label under the title.
	Detailed bool
	// Style selects the node colors; nil means styles.Light.
	Style *styles.Theme
}

// ToDOT converts a roadmap to Graphviz DOT format. Dangling edges are left
// out so Graphviz does not invent nodes for them.
func ToDOT(g *roadmap.Graph, opts Options) string {
	theme := opts.Style
	if theme == nil {
		theme = styles.Light()
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=16, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes() {
		attrs := fmtAttrs(n, fmtLabel(n, opts.Detailed), theme.Palette(n.Kind))
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	resolved, _ := g.ResolveEdges()
	for _, e := range resolved {
		var attrs []string
		if e.Dashed {
			attrs = append(attrs, "style=dashed")
		}
		if e.Style == roadmap.StyleMerge {
			attrs = append(attrs, "arrowhead=diamond")
		}
		if len(attrs) == 0 {
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.From, e.To, strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n *roadmap.Node, detailed bool) string {
	if !detailed {
		return n.DisplayTitle()
	}
	parts := []string{n.DisplayTitle(), "kind: " + n.Kind.String()}
	if n.Label != "" {
		parts = append(parts, n.Label)
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n *roadmap.Node, label string, p styles.Palette) []string {
	attrs := []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", p.Fill),
		fmt.Sprintf("color=%q", p.Stroke),
		fmt.Sprintf("fontcolor=%q", p.Text),
	}
	switch n.Kind {
	case roadmap.KindStart, roadmap.KindEnd:
		attrs = append(attrs, "shape=circle", `style="filled"`)
	case roadmap.KindOptional:
		attrs = append(attrs, `style="rounded,filled,dashed"`)
	}
	return attrs
}

// Scene wraps the DOT source of g in a serializable layout.
func Scene(g *roadmap.Graph, opts Options) graph.Layout {
	style := graph.StyleLight
	if opts.Style != nil {
		style = opts.Style.Name()
	}
	return graph.Layout{
		VizType: graph.VizTypeNodelink,
		Title:   g.Meta().Title,
		Style:   style,
		DOT:     ToDOT(g, opts),
		Engine:  DefaultEngine,
	}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
