package layout

import (
	"github.com/matzehuels/roadmap/pkg/graph"
)

// Export converts the layout to its serialized scene form.
func (l *Layout) Export() graph.Layout {
	out := graph.Layout{
		VizType: graph.VizTypeRoadmap,
		Title:   l.Title,
		Width:   l.Width,
		Height:  l.Height,
		OffsetX: l.Offset.X,
		OffsetY: l.Offset.Y,
		Radius:  l.Radius,
		Margin:  l.Margin,
	}

	for _, p := range l.Nodes {
		n := p.Node
		tl := p.TopLeft()
		out.Nodes = append(out.Nodes, graph.Node{
			ID:       n.ID,
			Title:    n.DisplayTitle(),
			Kind:     n.Kind.String(),
			Label:    n.Label,
			Category: n.Category,
			X:        tl.X,
			Y:        tl.Y,
			Width:    p.Width,
			Height:   p.Height,
			CX:       p.Center.X,
			CY:       p.Center.Y,
			Detail:   n.Description != "" || len(n.Resources) > 0,
		})
	}

	for _, c := range l.Connectors {
		out.Connectors = append(out.Connectors, graph.Connector{
			From:   c.Edge.From,
			To:     c.Edge.To,
			Style:  c.Edge.Style.String(),
			Dashed: c.Dashed,
			Path:   c.Path.String(),
			Radius: c.Radius,
		})
	}

	for _, e := range l.Skipped {
		out.Skipped = append(out.Skipped, graph.Edge{From: e.From, To: e.To})
	}

	return out
}
