// Package builtin ships the roadmaps bundled with the binary.
//
// Each roadmap is declared as a [roadmap.Document] literal and built through
// the same validation path as documents loaded from disk.
package builtin

import (
	"fmt"
	"slices"

	"github.com/matzehuels/roadmap/pkg/roadmap"
)

// Prefix marks builtin references on the command line, as in "builtin:starter".
const Prefix = "builtin:"

var registry = map[string]func() roadmap.Document{
	"deep-learning": deepLearning,
	"starter":       starter,
}

// Names returns the builtin roadmap names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup builds the named builtin roadmap.
func Lookup(name string) (*roadmap.Graph, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown builtin roadmap %q (have %v)", name, Names())
	}
	doc := fn()
	return doc.Graph()
}

// Document returns the source document of the named builtin roadmap.
func Document(name string) (roadmap.Document, bool) {
	fn, ok := registry[name]
	if !ok {
		return roadmap.Document{}, false
	}
	return fn(), true
}

// DeepLearning is the branching coordinate roadmap.
func DeepLearning() *roadmap.Graph { return must(Lookup("deep-learning")) }

// Starter is the five-step list roadmap.
func Starter() *roadmap.Graph { return must(Lookup("starter")) }

func must(g *roadmap.Graph, err error) *roadmap.Graph {
	if err != nil {
		panic("builtin: " + err.Error())
	}
	return g
}
