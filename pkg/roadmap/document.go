package roadmap

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	rerrors "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/geometry"
)

// List documents are laid out as one column. The closing node takes the id
// ListEndID, or ListEndID with a numeric suffix when an item already uses it.
const (
	ListSpacing    = 140.0
	ListEndID      = "end"
	DefaultEndName = "Finish"
)

// Document is the persisted form of a roadmap. Exactly one of Nodes or
// Items is expected; a document with Items is a list roadmap.
type Document struct {
	Title       string       `json:"title,omitempty" toml:"title,omitempty" yaml:"title,omitempty"`
	Description string       `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	EndTitle    string       `json:"end_title,omitempty" toml:"end_title,omitempty" yaml:"end_title,omitempty"`
	Nodes       []NodeRecord `json:"nodes,omitempty" toml:"nodes,omitempty" yaml:"nodes,omitempty" validate:"dive"`
	Edges       []EdgeRecord `json:"edges,omitempty" toml:"edges,omitempty" yaml:"edges,omitempty" validate:"dive"`
	Items       []ItemRecord `json:"items,omitempty" toml:"items,omitempty" yaml:"items,omitempty" validate:"dive"`
}

// NodeRecord is one node of a coordinate document.
type NodeRecord struct {
	ID          string           `json:"id" toml:"id" yaml:"id" validate:"required,nodeid"`
	Title       string           `json:"title" toml:"title" yaml:"title" validate:"required"`
	X           float64          `json:"x" toml:"x" yaml:"x"`
	Y           float64          `json:"y" toml:"y" yaml:"y"`
	Kind        string           `json:"kind,omitempty" toml:"kind,omitempty" yaml:"kind,omitempty" validate:"omitempty,oneof=start end main sub-main branch leaf optional"`
	Label       string           `json:"label,omitempty" toml:"label,omitempty" yaml:"label,omitempty"`
	Category    string           `json:"category,omitempty" toml:"category,omitempty" yaml:"category,omitempty"`
	Description string           `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Resources   []ResourceRecord `json:"resources,omitempty" toml:"resources,omitempty" yaml:"resources,omitempty" validate:"dive"`
}

// EdgeRecord is one edge of a coordinate document. Endpoints are not
// checked against the node list here.
type EdgeRecord struct {
	From   string `json:"from" toml:"from" yaml:"from" validate:"required"`
	To     string `json:"to" toml:"to" yaml:"to" validate:"required"`
	Style  string `json:"style,omitempty" toml:"style,omitempty" yaml:"style,omitempty" validate:"omitempty,oneof=straight elbow merge"`
	Dashed bool   `json:"dashed,omitempty" toml:"dashed,omitempty" yaml:"dashed,omitempty"`
}

// ItemRecord is one entry of a list document.
type ItemRecord struct {
	ID          string           `json:"id" toml:"id" yaml:"id" validate:"required,nodeid"`
	Title       string           `json:"title" toml:"title" yaml:"title" validate:"required"`
	Category    string           `json:"category,omitempty" toml:"category,omitempty" yaml:"category,omitempty"`
	Status      string           `json:"status,omitempty" toml:"status,omitempty" yaml:"status,omitempty" validate:"omitempty,oneof=must project optional"`
	Description string           `json:"description,omitempty" toml:"description,omitempty" yaml:"description,omitempty"`
	Resources   []ResourceRecord `json:"resources,omitempty" toml:"resources,omitempty" yaml:"resources,omitempty" validate:"dive"`
}

// ResourceRecord is one drawer link.
type ResourceRecord struct {
	Type  string `json:"type" toml:"type" yaml:"type" validate:"required,oneof=video article doc code"`
	Title string `json:"title" toml:"title" yaml:"title" validate:"required"`
	URL   string `json:"url" toml:"url" yaml:"url" validate:"required,resurl"`
}

// docValidate checks document records. Initialized in init() with the
// node id and resource URL rules from pkg/errors.
var docValidate *validator.Validate

func init() {
	docValidate = validator.New(validator.WithRequiredStructEnabled())
	docValidate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = docValidate.RegisterValidation("nodeid", func(fl validator.FieldLevel) bool {
		return rerrors.ValidateNodeID(fl.Field().String()) == nil
	})
	_ = docValidate.RegisterValidation("resurl", func(fl validator.FieldLevel) bool {
		return rerrors.ValidateURL(fl.Field().String()) == nil
	})
}

// Validate checks field-level rules of every record. It does not check
// that edges reference existing nodes; see [Graph.Validate].
func (d *Document) Validate() error {
	if len(d.Nodes) > 0 && len(d.Items) > 0 {
		return rerrors.New(rerrors.ErrCodeInvalidDocument, "document has both nodes and items")
	}
	if len(d.Items) > 0 && len(d.Edges) > 0 {
		return rerrors.New(rerrors.ErrCodeInvalidDocument, "list documents cannot declare edges")
	}
	err := docValidate.Struct(d)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return rerrors.Wrap(rerrors.ErrCodeInvalidDocument, err, "validate document")
	}
	msgs := make([]string, len(verrs))
	for i, fe := range verrs {
		msgs[i] = describeFieldError(fe)
	}
	return rerrors.New(rerrors.ErrCodeInvalidDocument, "%s", strings.Join(msgs, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Document.")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return fmt.Sprintf("%s %q is not one of [%s]", field, fe.Value(), fe.Param())
	case "nodeid":
		return fmt.Sprintf("%s %q is not a valid node id", field, fe.Value())
	case "resurl":
		return fmt.Sprintf("%s %q must be an http(s) URL or %q", field, fe.Value(), rerrors.PlaceholderURL)
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// Graph validates the document and builds the roadmap it describes.
// Duplicate node ids fail; dangling edges are kept.
func (d *Document) Graph() (*Graph, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g := New(Meta{Title: d.Title, Description: d.Description})
	if len(d.Items) > 0 {
		return d.listGraph(g)
	}

	for _, rec := range d.Nodes {
		kind, err := ParseKind(rec.Kind)
		if err != nil {
			return nil, rerrors.Wrap(rerrors.ErrCodeInvalidDocument, err, "node %s", rec.ID)
		}
		res, err := resources(rec.Resources)
		if err != nil {
			return nil, rerrors.Wrap(rerrors.ErrCodeInvalidDocument, err, "node %s", rec.ID)
		}
		n := Node{
			ID:          rec.ID,
			Title:       rec.Title,
			Pos:         geometry.Pt(rec.X, rec.Y),
			Kind:        kind,
			Label:       rec.Label,
			Category:    rec.Category,
			Description: rec.Description,
			Resources:   res,
		}
		if err := g.AddNode(n); err != nil {
			return nil, rerrors.Wrap(rerrors.ErrCodeInvalidDocument, err, "add node")
		}
	}

	for _, rec := range d.Edges {
		style, err := ParseEdgeStyle(rec.Style)
		if err != nil {
			return nil, rerrors.Wrap(rerrors.ErrCodeInvalidDocument, err, "edge %s -> %s", rec.From, rec.To)
		}
		g.AddEdge(Edge{From: rec.From, To: rec.To, Style: style, Dashed: rec.Dashed})
	}
	return g, nil
}

// listGraph lays items out top to bottom at x=0, joins consecutive items
// with straight edges and closes the column with an end node.
func (d *Document) listGraph(g *Graph) (*Graph, error) {
	prev := ""
	for i, item := range d.Items {
		res, err := resources(item.Resources)
		if err != nil {
			return nil, rerrors.Wrap(rerrors.ErrCodeInvalidDocument, err, "item %s", item.ID)
		}
		status := Status(item.Status)
		if status == "" {
			status = StatusMust
		}
		n := Node{
			ID:          item.ID,
			Title:       item.Title,
			Pos:         geometry.Pt(0, float64(i)*ListSpacing),
			Kind:        status.Kind(),
			Label:       string(status),
			Category:    item.Category,
			Description: item.Description,
			Resources:   res,
		}
		if err := g.AddNode(n); err != nil {
			return nil, rerrors.Wrap(rerrors.ErrCodeInvalidDocument, err, "add item")
		}
		if prev != "" {
			g.AddEdge(Edge{From: prev, To: n.ID, Style: StyleStraight})
		}
		prev = n.ID
	}

	endTitle := d.EndTitle
	if endTitle == "" {
		endTitle = DefaultEndName
	}
	endID := ListEndID
	for i := 2; ; i++ {
		if _, taken := g.Node(endID); !taken {
			break
		}
		endID = fmt.Sprintf("%s-%d", ListEndID, i)
	}
	end := Node{
		ID:    endID,
		Title: endTitle,
		Pos:   geometry.Pt(0, float64(len(d.Items))*ListSpacing),
		Kind:  KindEnd,
	}
	if err := g.AddNode(end); err != nil {
		return nil, rerrors.Wrap(rerrors.ErrCodeInvalidDocument, err, "add end node")
	}
	g.AddEdge(Edge{From: prev, To: endID, Style: StyleStraight})
	return g, nil
}

func resources(recs []ResourceRecord) ([]Resource, error) {
	if len(recs) == 0 {
		return nil, nil
	}
	out := make([]Resource, len(recs))
	for i, r := range recs {
		kind, err := ParseResourceKind(r.Type)
		if err != nil {
			return nil, err
		}
		out[i] = Resource{Kind: kind, Title: r.Title, URL: r.URL}
	}
	return out, nil
}

// ToDocument converts a graph back to its coordinate document form.
// List roadmaps are written as coordinate documents.
func ToDocument(g *Graph) Document {
	doc := Document{
		Title:       g.meta.Title,
		Description: g.meta.Description,
		Nodes:       make([]NodeRecord, 0, len(g.order)),
		Edges:       make([]EdgeRecord, 0, len(g.edges)),
	}
	for _, n := range g.order {
		rec := NodeRecord{
			ID:          n.ID,
			Title:       n.Title,
			X:           n.Pos.X,
			Y:           n.Pos.Y,
			Kind:        n.Kind.String(),
			Label:       n.Label,
			Category:    n.Category,
			Description: n.Description,
		}
		for _, r := range n.Resources {
			rec.Resources = append(rec.Resources, ResourceRecord{Type: r.Kind.String(), Title: r.Title, URL: r.URL})
		}
		doc.Nodes = append(doc.Nodes, rec)
	}
	for _, e := range g.edges {
		doc.Edges = append(doc.Edges, EdgeRecord{From: e.From, To: e.To, Style: e.Style.String(), Dashed: e.Dashed})
	}
	return doc
}
