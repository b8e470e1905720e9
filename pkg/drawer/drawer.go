// Package drawer resolves the detail drawer shown for a selection.
//
// Resolve never fails: an idle selection yields a closed drawer and an
// active selection whose node no longer exists yields an open drawer with
// the Unavailable placeholder.
package drawer

import (
	"strings"

	"github.com/matzehuels/roadmap/pkg/roadmap"
	"github.com/matzehuels/roadmap/pkg/selection"
)

// Placeholder texts.
const (
	NoSelection = "Select a node"
	Unavailable = "Details unavailable"
	Heading     = "Resources"
	CTA         = "Mark as completed"
)

// Icon is the glyph class shown next to a resource.
type Icon string

const (
	IconVideo Icon = "video"
	IconLink  Icon = "link"
)

// Glyph returns a terminal-friendly symbol for the icon.
func (i Icon) Glyph() string {
	if i == IconVideo {
		return "▶"
	}
	return "↗"
}

// Resource is a drawer row.
type Resource struct {
	Kind    roadmap.ResourceKind
	Icon    Icon
	Title   string
	URL     string
	Caption string // e.g. "Video tutorial"
	// Placeholder is true for links that are not filled in yet ("#").
	Placeholder bool
}

// View is everything a presentation needs to draw the drawer.
type View struct {
	Open      bool
	Available bool
	NodeID    string

	Title       string
	Category    string
	Label       string
	Kind        roadmap.Kind
	Description string
	Resources   []Resource

	// Placeholder is shown instead of details when Available is false.
	Placeholder string
}

// Resolve maps the selection state onto a drawer view for g.
func Resolve(g *roadmap.Graph, s selection.State) View {
	id, active := s.Active()
	if !active {
		return View{Placeholder: NoSelection}
	}
	var n *roadmap.Node
	if g != nil {
		n, _ = g.Node(id)
	}
	if n == nil {
		return View{Open: true, NodeID: id, Placeholder: Unavailable}
	}
	return View{
		Open:        true,
		Available:   true,
		NodeID:      n.ID,
		Title:       n.DisplayTitle(),
		Category:    n.Category,
		Label:       n.Label,
		Kind:        n.Kind,
		Description: n.Description,
		Resources:   Resources(n.Resources),
	}
}

// ForNode is Resolve for an explicit id.
func ForNode(g *roadmap.Graph, id string) View {
	return Resolve(g, selection.Active(id))
}

// Resources converts node resources to drawer rows.
func Resources(in []roadmap.Resource) []Resource {
	if len(in) == 0 {
		return nil
	}
	out := make([]Resource, len(in))
	for i, r := range in {
		icon := IconLink
		if r.Kind == roadmap.ResourceVideo {
			icon = IconVideo
		}
		out[i] = Resource{
			Kind:        r.Kind,
			Icon:        icon,
			Title:       r.Title,
			URL:         r.URL,
			Caption:     caption(r.Kind),
			Placeholder: r.URL == "" || r.URL == "#",
		}
	}
	return out
}

func caption(k roadmap.ResourceKind) string {
	s := k.String()
	return strings.ToUpper(s[:1]) + s[1:] + " tutorial"
}
