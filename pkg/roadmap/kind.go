package roadmap

import "fmt"

// Kind is the closed set of node variants. It selects presentation style.
type Kind int

const (
	KindMain Kind = iota
	KindStart
	KindEnd
	KindSubMain
	KindBranch
	KindLeaf
	KindOptional
)

var kindNames = [...]string{
	KindMain:     "main",
	KindStart:    "start",
	KindEnd:      "end",
	KindSubMain:  "sub-main",
	KindBranch:   "branch",
	KindLeaf:     "leaf",
	KindOptional: "optional",
}

// Kinds lists every node kind in declaration order.
func Kinds() []Kind {
	return []Kind{KindMain, KindStart, KindEnd, KindSubMain, KindBranch, KindLeaf, KindOptional}
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Terminal reports whether the kind is a start or end marker.
func (k Kind) Terminal() bool { return k == KindStart || k == KindEnd }

// ParseKind parses the text form of a kind. The empty string is KindMain.
func ParseKind(s string) (Kind, error) {
	if s == "" {
		return KindMain, nil
	}
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("unknown node kind %q", s)
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// EdgeStyle is the routing style of an edge. Merge draws like Elbow but
// marks several branches converging on one node.
type EdgeStyle int

const (
	StyleElbow EdgeStyle = iota
	StyleStraight
	StyleMerge
)

var edgeStyleNames = [...]string{
	StyleElbow:    "elbow",
	StyleStraight: "straight",
	StyleMerge:    "merge",
}

func (s EdgeStyle) String() string {
	if s >= 0 && int(s) < len(edgeStyleNames) {
		return edgeStyleNames[s]
	}
	return fmt.Sprintf("EdgeStyle(%d)", int(s))
}

// ParseEdgeStyle parses the text form of an edge style. The empty string is
// StyleElbow.
func ParseEdgeStyle(s string) (EdgeStyle, error) {
	if s == "" {
		return StyleElbow, nil
	}
	for i, name := range edgeStyleNames {
		if name == s {
			return EdgeStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown edge style %q", s)
}

func (s EdgeStyle) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *EdgeStyle) UnmarshalText(b []byte) error {
	v, err := ParseEdgeStyle(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ResourceKind is the type of a learning resource.
type ResourceKind int

const (
	ResourceArticle ResourceKind = iota
	ResourceVideo
	ResourceDoc
	ResourceCode
)

var resourceKindNames = [...]string{
	ResourceArticle: "article",
	ResourceVideo:   "video",
	ResourceDoc:     "doc",
	ResourceCode:    "code",
}

func (r ResourceKind) String() string {
	if r >= 0 && int(r) < len(resourceKindNames) {
		return resourceKindNames[r]
	}
	return fmt.Sprintf("ResourceKind(%d)", int(r))
}

// ParseResourceKind parses the text form of a resource kind.
func ParseResourceKind(s string) (ResourceKind, error) {
	for i, name := range resourceKindNames {
		if name == s {
			return ResourceKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown resource type %q", s)
}

func (r ResourceKind) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *ResourceKind) UnmarshalText(b []byte) error {
	v, err := ParseResourceKind(string(b))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Status is the list-document classification of an item.
type Status string

const (
	StatusMust     Status = "must"
	StatusProject  Status = "project"
	StatusOptional Status = "optional"
)

// Kind maps a list status to the node kind it is drawn as. Unknown statuses
// fall back to KindOptional, the neutral style.
func (s Status) Kind() Kind {
	switch s {
	case StatusMust:
		return KindMain
	case StatusProject:
		return KindBranch
	default:
		return KindOptional
	}
}
