package styles

import (
	"bytes"

	"github.com/matzehuels/roadmap/pkg/drawer"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// Style defines the visual appearance of a roadmap.
type Style interface {
	// Name is the theme name accepted by ByName.
	Name() string
	// Background is the page fill color.
	Background() string
	// RenderDefs writes SVG <defs> content (markers, filters).
	RenderDefs(buf *bytes.Buffer)
	// RenderNode writes the shape of a single node.
	RenderNode(buf *bytes.Buffer, n NodeBox)
	// RenderConnector writes a routed edge.
	RenderConnector(buf *bytes.Buffer, c Link)
	// RenderLabel writes a node's title and tag.
	RenderLabel(buf *bytes.Buffer, n NodeBox)
	// RenderDrawer writes the detail panel for a drawer view.
	RenderDrawer(buf *bytes.Buffer, v drawer.View, p Panel)
}

// NodeBox contains all data needed to draw a node.
type NodeBox struct {
	ID         string
	Title      string
	Label      string // Short tag under the title
	Kind       roadmap.Kind
	X, Y, W, H float64 // Top-left corner and size
	CX, CY     float64
	Detail     bool // Clickable: has a description or resources
	Selected   bool
}

// Link contains the data needed to draw a connector.
type Link struct {
	From, To  string
	Path      string // SVG path data
	DashArray string // Empty for solid strokes
	Merge     bool
}

// Panel is the area reserved for the drawer.
type Panel struct {
	X, Y, W, H float64
}

// Palette holds the colors for one node kind.
type Palette struct {
	Fill   string
	Stroke string
	Text   string
}
