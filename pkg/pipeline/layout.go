package pipeline

import (
	"github.com/matzehuels/roadmap/pkg/geometry"
	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/layout"
	"github.com/matzehuels/roadmap/pkg/render/nodelink"
	"github.com/matzehuels/roadmap/pkg/render/styles"
	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// GenerateLayout builds the serializable scene for any visualization type.
func GenerateLayout(g *roadmap.Graph, opts Options) (graph.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return graph.Layout{}, err
	}
	if opts.IsNodelink() {
		return generateNodelinkLayout(g, opts)
	}
	return generateRoadmapLayout(g, opts), nil
}

func generateRoadmapLayout(g *roadmap.Graph, opts Options) graph.Layout {
	layoutOpts := []layout.Option{
		layout.WithRadius(opts.Radius),
		layout.WithMargin(opts.Margin),
		layout.WithLogger(opts.Logger),
	}
	if opts.FixedOffset {
		layoutOpts = append(layoutOpts, layout.WithOffset(geometry.Pt(opts.OffsetX, opts.OffsetY)))
	}

	l := layout.Build(g, layoutOpts...)
	scene := l.Export()
	scene.Style = opts.Style
	return scene
}

func generateNodelinkLayout(g *roadmap.Graph, opts Options) (graph.Layout, error) {
	s, err := styles.ByName(opts.Style)
	if err != nil {
		return graph.Layout{}, err
	}
	theme, _ := s.(*styles.Theme)
	return nodelink.Scene(g, nodelink.Options{Style: theme}), nil
}
