package server

import "github.com/matzehuels/roadmap/pkg/drawer"

// drawerResponse is the JSON form of a drawer view.
type drawerResponse struct {
	Open        bool               `json:"open"`
	Available   bool               `json:"available"`
	NodeID      string             `json:"node_id,omitempty"`
	Title       string             `json:"title,omitempty"`
	Category    string             `json:"category,omitempty"`
	Label       string             `json:"label,omitempty"`
	Kind        string             `json:"kind,omitempty"`
	Description string             `json:"description,omitempty"`
	Heading     string             `json:"heading,omitempty"`
	Resources   []resourceResponse `json:"resources,omitempty"`
	CTA         string             `json:"cta,omitempty"`
	Placeholder string             `json:"placeholder,omitempty"`
}

type resourceResponse struct {
	Kind        string `json:"kind"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	Caption     string `json:"caption,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

func newDrawerResponse(v drawer.View) drawerResponse {
	resp := drawerResponse{
		Open:        v.Open,
		Available:   v.Available,
		NodeID:      v.NodeID,
		Placeholder: v.Placeholder,
	}
	if !v.Available {
		return resp
	}
	resp.Title = v.Title
	resp.Category = v.Category
	resp.Label = v.Label
	resp.Kind = v.Kind.String()
	resp.Description = v.Description
	resp.CTA = drawer.CTA
	if len(v.Resources) > 0 {
		resp.Heading = drawer.Heading
	}
	for _, r := range v.Resources {
		resp.Resources = append(resp.Resources, resourceResponse{
			Kind:        r.Kind.String(),
			Icon:        string(r.Icon),
			Title:       r.Title,
			URL:         r.URL,
			Caption:     r.Caption,
			Placeholder: r.Placeholder,
		})
	}
	return resp
}
