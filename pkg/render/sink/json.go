package sink

import "github.com/matzehuels/roadmap/pkg/graph"

// RenderJSON returns the scene as pretty-printed JSON.
func RenderJSON(l graph.Layout) ([]byte, error) {
	return graph.MarshalLayout(l)
}
