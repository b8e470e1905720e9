package cache

// LayoutKeyOpts are the layout inputs besides the document itself.
type LayoutKeyOpts struct {
	VizType     string  `json:"viz_type"`
	Style       string  `json:"style,omitempty"` // Nodelink scenes bake colors into DOT
	FixedOffset bool    `json:"fixed_offset,omitempty"`
	OffsetX     float64 `json:"offset_x"`
	OffsetY     float64 `json:"offset_y"`
	Radius      float64 `json:"radius"`
	Margin      float64 `json:"margin"`
}

// ArtifactKeyOpts are the render inputs besides the layout.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Style    string `json:"style"`
	Selected string `json:"selected,omitempty"`
	Drawer   bool   `json:"drawer,omitempty"`
}

// Keyer builds cache keys for each stage.
type Keyer interface {
	LayoutKey(docHash string, opts LayoutKeyOpts) string
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes stage inputs into "layout:<sha>" and "artifact:<sha>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// LayoutKey returns the key for a scene computed from a document.
func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}

// ArtifactKey returns the key for one rendered format of a scene.
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

var _ Keyer = DefaultKeyer{}
