package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

// Layout is the serialization format for all visualizations.
//
// This is a discriminated union type - check VizType to determine which
// fields are populated:
//
//	Roadmap ("roadmap"):
//	  - Nodes, Connectors: boxes and routed paths in drawing space
//	  - OffsetX/Y, Radius, Margin: inputs the scene was routed with
//	  - Skipped: dangling edges left out of the scene
//
//	Nodelink ("nodelink"):
//	  - DOT: Graphviz DOT string for rendering
//	  - Engine: Graphviz layout engine (e.g., "dot")
type Layout struct {
	// Discriminator
	VizType string `json:"viz_type" bson:"viz_type"`

	// Common
	Title  string  `json:"title,omitempty" bson:"title,omitempty"`
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
	Style  string  `json:"style,omitempty" bson:"style,omitempty"`

	// Roadmap-specific
	Nodes      []Node      `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Connectors []Connector `json:"connectors,omitempty" bson:"connectors,omitempty"`
	Skipped    []Edge      `json:"skipped,omitempty" bson:"skipped,omitempty"`
	OffsetX    float64     `json:"offset_x,omitempty" bson:"offset_x,omitempty"`
	OffsetY    float64     `json:"offset_y,omitempty" bson:"offset_y,omitempty"`
	Radius     float64     `json:"radius,omitempty" bson:"radius,omitempty"`
	Margin     float64     `json:"margin,omitempty" bson:"margin,omitempty"`

	// Nodelink-specific
	DOT    string `json:"dot,omitempty" bson:"dot,omitempty"`
	Engine string `json:"engine,omitempty" bson:"engine,omitempty"`
}

// IsRoadmap returns true if this is a coordinate roadmap scene.
func (l *Layout) IsRoadmap() bool { return l.VizType == VizTypeRoadmap }

// IsNodelink returns true if this is a nodelink layout.
func (l *Layout) IsNodelink() bool { return l.VizType == VizTypeNodelink }

// Node returns the node with the given id.
func (l *Layout) Node(id string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that required fields are present for the viz type.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}

	if l.VizType == "" {
		l.VizType = VizTypeRoadmap
	}

	switch {
	case l.IsRoadmap():
		for _, c := range l.Connectors {
			if c.Path == "" {
				return Layout{}, fmt.Errorf("connector %s -> %s has no path", c.From, c.To)
			}
		}
	case l.IsNodelink():
		if l.DOT == "" {
			return Layout{}, fmt.Errorf("nodelink layout must contain DOT string")
		}
	default:
		return Layout{}, fmt.Errorf("unknown viz_type %q", l.VizType)
	}

	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
