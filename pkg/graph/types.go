package graph

// Visualization types.
const (
	VizTypeRoadmap  = "roadmap"
	VizTypeNodelink = "nodelink"
)

// Visual styles for rendering.
const (
	StyleLight = "light"
	StyleDark  = "dark"
)

// Node is a positioned node box. X and Y are the top-left corner in drawing
// space; CX and CY the center, which is where connectors attach.
type Node struct {
	ID       string  `json:"id" bson:"id"`
	Title    string  `json:"title" bson:"title"`
	Kind     string  `json:"kind" bson:"kind"`
	Label    string  `json:"label,omitempty" bson:"label,omitempty"`
	Category string  `json:"category,omitempty" bson:"category,omitempty"`
	X        float64 `json:"x" bson:"x"`
	Y        float64 `json:"y" bson:"y"`
	Width    float64 `json:"width" bson:"width"`
	Height   float64 `json:"height" bson:"height"`
	CX       float64 `json:"cx" bson:"cx"`
	CY       float64 `json:"cy" bson:"cy"`

	// Detail is true when the node has a description or resources to show.
	Detail bool `json:"detail,omitempty" bson:"detail,omitempty"`
}

// Connector is a routed edge.
type Connector struct {
	From   string  `json:"from" bson:"from"`
	To     string  `json:"to" bson:"to"`
	Style  string  `json:"style" bson:"style"`
	Dashed bool    `json:"dashed,omitempty" bson:"dashed,omitempty"`
	Path   string  `json:"path" bson:"path"`
	Radius float64 `json:"radius,omitempty" bson:"radius,omitempty"`
}

// Edge is a bare edge reference, used for skipped edges.
type Edge struct {
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}
