package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/roadmap/pkg/drawer"
	"github.com/matzehuels/roadmap/pkg/geometry"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/render/styles"
	"github.com/matzehuels/roadmap/pkg/roadmap"
	"github.com/matzehuels/roadmap/pkg/selection"
)

// DrawerWidth is the width of the drawer panel added by WithDrawer.
const DrawerWidth = 320.0

const interactionCSS = `
    .node { transition: stroke-width 0.2s ease; }
    .node.clickable { cursor: pointer; }
    .node.clickable:hover { stroke-width: 3.5; }
    .connector { transition: opacity 0.2s ease; }`

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	graph    *roadmap.Graph
	style    styles.Style
	selected string
	drawer   bool
}

// WithGraph supplies the roadmap used for drawer content.
func WithGraph(g *roadmap.Graph) SVGOption { return func(r *svgRenderer) { r.graph = g } }

// WithStyle sets the theme. The default is styles.Light.
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithSelected highlights the node with the given id.
func WithSelected(id string) SVGOption { return func(r *svgRenderer) { r.selected = id } }

// WithDrawer adds the detail drawer panel to the right of the roadmap.
func WithDrawer() SVGOption { return func(r *svgRenderer) { r.drawer = true } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	if r.style == nil {
		r.style = styles.Light()
	}
	return r
}

func (r svgRenderer) state() selection.State {
	if r.selected == "" {
		return selection.Idle
	}
	return selection.Active(r.selected)
}

// RenderSVG renders a roadmap scene.
func RenderSVG(l graph.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	width := l.Width
	if r.drawer {
		width += DrawerWidth
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, l.Height, width, l.Height)
	if l.Title != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", styles.EscapeXML(l.Title))
	}

	r.style.RenderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect class="background" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
		width, l.Height, r.style.Background())

	renderContent(&buf, r, buildBoxes(l, r.selected), buildLinks(l))

	if r.drawer {
		r.style.RenderDrawer(&buf, drawer.Resolve(r.graph, r.state()),
			styles.Panel{X: l.Width, Y: 0, W: DrawerWidth, H: l.Height})
	}

	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", interactionCSS)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderContent(buf *bytes.Buffer, r svgRenderer, boxes []styles.NodeBox, links []styles.Link) {
	buf.WriteString(`  <g class="connectors">` + "\n")
	for _, c := range links {
		r.style.RenderConnector(buf, c)
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="nodes">` + "\n")
	for _, b := range boxes {
		r.style.RenderNode(buf, b)
	}
	for _, b := range boxes {
		r.style.RenderLabel(buf, b)
	}
	buf.WriteString("  </g>\n")
}

func buildBoxes(l graph.Layout, selected string) []styles.NodeBox {
	boxes := make([]styles.NodeBox, 0, len(l.Nodes))
	for _, n := range l.Nodes {
		kind, err := roadmap.ParseKind(n.Kind)
		if err != nil {
			kind = roadmap.KindMain
		}
		boxes = append(boxes, styles.NodeBox{
			ID:       n.ID,
			Title:    n.Title,
			Label:    n.Label,
			Kind:     kind,
			X:        n.X,
			Y:        n.Y,
			W:        n.Width,
			H:        n.Height,
			CX:       n.CX,
			CY:       n.CY,
			Detail:   n.Detail,
			Selected: selected != "" && n.ID == selected,
		})
	}
	return boxes
}

func buildLinks(l graph.Layout) []styles.Link {
	links := make([]styles.Link, 0, len(l.Connectors))
	for _, c := range l.Connectors {
		link := styles.Link{
			From:  c.From,
			To:    c.To,
			Path:  c.Path,
			Merge: c.Style == roadmap.StyleMerge.String(),
		}
		if c.Dashed {
			link.DashArray = geometry.DashArray
		}
		links = append(links, link)
	}
	return links
}
