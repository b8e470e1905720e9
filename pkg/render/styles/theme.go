package styles

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/roadmap/pkg/drawer"
	"github.com/matzehuels/roadmap/pkg/geometry"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// Theme is a flat-color Style.
type Theme struct {
	name       string
	background string
	connector  string
	merge      string
	selected   string
	panel      Palette
	muted      string
	palettes   map[roadmap.Kind]Palette
}

// Light returns the default theme.
func Light() *Theme {
	return &Theme{
		name:       graph.StyleLight,
		background: "#f8fafc",
		connector:  "#64748b",
		merge:      "#7c3aed",
		selected:   "#f59e0b",
		panel:      Palette{Fill: "#ffffff", Stroke: "#e2e8f0", Text: "#0f172a"},
		muted:      "#64748b",
		palettes: map[roadmap.Kind]Palette{
			roadmap.KindStart:    {Fill: "#16a34a", Stroke: "#15803d", Text: "#ffffff"},
			roadmap.KindEnd:      {Fill: "#dc2626", Stroke: "#b91c1c", Text: "#ffffff"},
			roadmap.KindMain:     {Fill: "#fde047", Stroke: "#1e293b", Text: "#1e293b"},
			roadmap.KindSubMain:  {Fill: "#fef9c3", Stroke: "#1e293b", Text: "#1e293b"},
			roadmap.KindBranch:   {Fill: "#dbeafe", Stroke: "#2563eb", Text: "#1e3a8a"},
			roadmap.KindLeaf:     {Fill: "#ffffff", Stroke: "#94a3b8", Text: "#334155"},
			roadmap.KindOptional: {Fill: "#f1f5f9", Stroke: "#94a3b8", Text: "#64748b"},
		},
	}
}

// Dark returns a theme for dark backgrounds.
func Dark() *Theme {
	return &Theme{
		name:       graph.StyleDark,
		background: "#0f172a",
		connector:  "#94a3b8",
		merge:      "#a78bfa",
		selected:   "#fbbf24",
		panel:      Palette{Fill: "#1e293b", Stroke: "#334155", Text: "#f1f5f9"},
		muted:      "#94a3b8",
		palettes: map[roadmap.Kind]Palette{
			roadmap.KindStart:    {Fill: "#22c55e", Stroke: "#16a34a", Text: "#0f172a"},
			roadmap.KindEnd:      {Fill: "#ef4444", Stroke: "#dc2626", Text: "#0f172a"},
			roadmap.KindMain:     {Fill: "#ca8a04", Stroke: "#fde047", Text: "#0f172a"},
			roadmap.KindSubMain:  {Fill: "#713f12", Stroke: "#fde047", Text: "#fef9c3"},
			roadmap.KindBranch:   {Fill: "#1e3a8a", Stroke: "#60a5fa", Text: "#dbeafe"},
			roadmap.KindLeaf:     {Fill: "#1e293b", Stroke: "#64748b", Text: "#e2e8f0"},
			roadmap.KindOptional: {Fill: "#0f172a", Stroke: "#475569", Text: "#94a3b8"},
		},
	}
}

// ByName returns the theme with the given name. The empty name is Light.
func ByName(name string) (Style, error) {
	switch name {
	case "", graph.StyleLight:
		return Light(), nil
	case graph.StyleDark:
		return Dark(), nil
	}
	return nil, fmt.Errorf("unknown style %q", name)
}

func (t *Theme) Name() string       { return t.name }
func (t *Theme) Background() string { return t.background }

// Palette returns the colors for kind k; unknown kinds use the main palette.
func (t *Theme) Palette(k roadmap.Kind) Palette {
	if p, ok := t.palettes[k]; ok {
		return p
	}
	return t.palettes[roadmap.KindMain]
}

func (t *Theme) RenderDefs(buf *bytes.Buffer) {
	fmt.Fprintf(buf, `  <defs>
    <filter id="node-shadow" x="-10%%" y="-10%%" width="120%%" height="130%%">
      <feDropShadow dx="0" dy="2" stdDeviation="2" flood-color="%s" flood-opacity="0.25"/>
    </filter>
  </defs>
`, t.connector)
}

func (t *Theme) RenderNode(buf *bytes.Buffer, n NodeBox) {
	p := t.Palette(n.Kind)
	stroke, width := p.Stroke, 2.0
	if n.Selected {
		stroke, width = t.selected, 3.5
	}
	class := nodeClass(n)
	id := EscapeXML(n.ID)

	if n.Kind.Terminal() {
		fmt.Fprintf(buf, `  <circle id="node-%s" class="%s" data-id="%s" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%.1f" filter="url(#node-shadow)"/>`+"\n",
			id, class, id, n.CX, n.CY, min(n.W, n.H)/2, p.Fill, stroke, width)
		return
	}

	dash := ""
	if n.Kind == roadmap.KindOptional {
		dash = ` stroke-dasharray="` + geometry.DashArray + `"`
	}
	fmt.Fprintf(buf, `  <rect id="node-%s" class="%s" data-id="%s" x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="10" fill="%s" stroke="%s" stroke-width="%.1f"%s filter="url(#node-shadow)"/>`+"\n",
		id, class, id, n.X, n.Y, n.W, n.H, p.Fill, stroke, width, dash)
}

func nodeClass(n NodeBox) string {
	classes := []string{"node", "kind-" + n.Kind.String()}
	if n.Detail {
		classes = append(classes, "clickable")
	}
	if n.Selected {
		classes = append(classes, "selected")
	}
	return strings.Join(classes, " ")
}

func (t *Theme) RenderConnector(buf *bytes.Buffer, c Link) {
	color, class := t.connector, "connector"
	if c.Merge {
		color, class = t.merge, "connector merge"
	}
	dash := ""
	if c.DashArray != "" {
		dash = fmt.Sprintf(` stroke-dasharray="%s"`, c.DashArray)
	}
	fmt.Fprintf(buf, `  <path class="%s" data-from="%s" data-to="%s" d="%s" fill="none" stroke="%s" stroke-width="2"%s stroke-linecap="round"/>`+"\n",
		class, EscapeXML(c.From), EscapeXML(c.To), c.Path, color, dash)
}

func (t *Theme) RenderLabel(buf *bytes.Buffer, n NodeBox) {
	p := t.Palette(n.Kind)
	size := titleFontSize
	if n.Kind.Terminal() {
		size = labelFontSize + 1
	}
	titleY := n.CY
	if n.Label != "" && !n.Kind.Terminal() {
		titleY -= 7
	}
	fmt.Fprintf(buf, `  <text class="node-title" data-id="%s" x="%.2f" y="%.2f" font-size="%.0f" font-weight="600" fill="%s" text-anchor="middle" dominant-baseline="central" pointer-events="none">%s</text>`+"\n",
		EscapeXML(n.ID), n.CX, titleY, size, p.Text, EscapeXML(Truncate(n.Title, n.W-16, size)))

	if n.Label != "" && !n.Kind.Terminal() {
		fmt.Fprintf(buf, `  <text class="node-label" x="%.2f" y="%.2f" font-size="%.0f" fill="%s" text-anchor="middle" dominant-baseline="central" pointer-events="none">%s</text>`+"\n",
			n.CX, n.CY+12, labelFontSize, p.Text, EscapeXML(Truncate(n.Label, n.W-16, labelFontSize)))
	}
}

const (
	panelPad    = 20.0
	lineHeight  = 20.0
	bodyFont    = 13.0
	headingFont = 18.0
)

func (t *Theme) RenderDrawer(buf *bytes.Buffer, v drawer.View, p Panel) {
	fmt.Fprintf(buf, `  <g class="drawer" data-open="%t">`+"\n", v.Open)
	fmt.Fprintf(buf, `    <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s" stroke="%s"/>`+"\n",
		p.X, p.Y, p.W, p.H, t.panel.Fill, t.panel.Stroke)

	x := p.X + panelPad
	y := p.Y + panelPad + headingFont
	textW := p.W - 2*panelPad

	if !v.Available {
		fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-size="%.0f" fill="%s" text-anchor="middle">%s</text>`+"\n",
			p.X+p.W/2, p.Y+p.H/2, bodyFont, t.muted, EscapeXML(v.Placeholder))
		buf.WriteString("  </g>\n")
		return
	}

	if v.Category != "" {
		t.drawerText(buf, x, y, bodyFont, t.muted, "", v.Category)
		y += lineHeight
	}
	t.drawerText(buf, x, y, headingFont, t.panel.Text, ` font-weight="700"`, Truncate(v.Title, textW, headingFont))
	y += lineHeight * 1.5

	for _, line := range wrap(v.Description, textW, bodyFont) {
		t.drawerText(buf, x, y, bodyFont, t.panel.Text, "", line)
		y += lineHeight
	}

	if len(v.Resources) > 0 {
		y += lineHeight / 2
		t.drawerText(buf, x, y, bodyFont, t.muted, ` font-weight="700"`, drawer.Heading)
		y += lineHeight
		for _, r := range v.Resources {
			url := r.URL
			if r.Placeholder {
				url = ""
			}
			WrapURL(buf, url, func() {
				t.drawerText(buf, x, y, bodyFont, t.panel.Text, "", r.Icon.Glyph()+" "+Truncate(r.Title, textW-bodyFont, bodyFont))
			})
			if url != "" {
				buf.WriteString("\n")
			}
			y += lineHeight * 0.8
			t.drawerText(buf, x+bodyFont, y, labelFontSize, t.muted, "", r.Caption)
			y += lineHeight
		}
	}

	ctaY := p.Y + p.H - panelPad - 28
	fmt.Fprintf(buf, `    <rect class="cta" x="%.2f" y="%.2f" width="%.2f" height="28" rx="6" fill="%s"/>`+"\n",
		x, ctaY, textW, t.selected)
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-size="%.0f" fill="#0f172a" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		x+textW/2, ctaY+14, bodyFont, drawer.CTA)
	buf.WriteString("  </g>\n")
}

func (t *Theme) drawerText(buf *bytes.Buffer, x, y, size float64, fill, extra, s string) {
	fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" font-size="%.0f" fill="%s"%s>%s</text>`+"\n",
		x, y, size, fill, extra, EscapeXML(s))
}
