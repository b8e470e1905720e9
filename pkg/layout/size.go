package layout

import "github.com/matzehuels/roadmap/pkg/roadmap"

// TerminalDiameter is the diameter of the start and end markers.
const TerminalDiameter = 64.0

type boxSize struct{ w, h float64 }

var boxSizes = map[roadmap.Kind]boxSize{
	roadmap.KindStart:    {TerminalDiameter, TerminalDiameter},
	roadmap.KindEnd:      {TerminalDiameter, TerminalDiameter},
	roadmap.KindMain:     {220, 64},
	roadmap.KindSubMain:  {200, 56},
	roadmap.KindBranch:   {200, 56},
	roadmap.KindLeaf:     {180, 52},
	roadmap.KindOptional: {180, 52},
}

// BoxSize returns the width and height of a node box of the given kind.
// Unknown kinds are sized like main nodes.
func BoxSize(k roadmap.Kind) (w, h float64) {
	s, ok := boxSizes[k]
	if !ok {
		s = boxSizes[roadmap.KindMain]
	}
	return s.w, s.h
}
