// Package pkg provides the core libraries for roadmap rendering.
//
// # Overview
//
// A roadmap is a set of topic nodes placed at fixed coordinates and joined
// by connectors. Connectors are straight when their endpoints line up
// vertically and rounded elbows otherwise. Clicking a node opens a detail
// drawer with its description and learning resources. The pkg directory is
// organized into four areas:
//
//  1. [roadmap] - Domain model (nodes, edges, documents, builtins)
//  2. [geometry], [layout] - Connector routing and scene construction
//  3. [selection], [drawer] - Interaction state and the detail view
//  4. [pipeline] - Orchestration (load → layout → render) with [cache]
//
// # Architecture
//
// The typical data flow:
//
//	TOML / YAML / JSON document
//	         ↓
//	    [roadmap] package (validate + build graph)
//	         ↓
//	    [layout] package (box sizes, frame offset, routed connectors)
//	         ↓
//	    [graph] package (serializable scene)
//	         ↓
//	    [render] packages (SVG, HTML, PNG, PDF, DOT)
//
// Edges whose endpoints are missing never fail a render. They are left out
// of the scene and listed in its Skipped field.
//
// # Quick Start
//
//	g, _ := roadmap.ReadFile("roadmap.toml")
//
//	l := layout.Build(g, layout.WithRadius(12))
//	scene := l.Export()
//
//	svg := sink.RenderSVG(scene, sink.WithGraph(g), sink.WithSelected("pytorch"))
//	page, _ := sink.RenderHTML(scene, sink.WithHTMLSVGOptions(sink.WithGraph(g)))
//
// Drive the drawer from a selection:
//
//	m := selection.New()
//	m.Select("pytorch")
//	view := drawer.Resolve(g, m.State())
//
// # Main Packages
//
// [roadmap] - Graph of nodes and edges with kinds (start, main, sub-main,
// branch, leaf, optional, end) and edge styles (elbow, straight, merge).
// Reads and writes coordinate and list documents; [roadmap/builtin] holds
// the bundled roadmaps.
//
// [geometry] - Points, SVG path commands, and the connector router.
//
// [layout] - Places node boxes, derives the frame offset, and routes every
// resolvable edge.
//
// [graph] - Serialization types for scenes (JSON, also stored in caches).
//
// [render] - SVG sinks and themes ([render/sink], [render/styles]), Graphviz
// node-link output ([render/nodelink]), and rsvg-convert for PNG/PDF.
//
// [selection] - The Idle/Active selection machine.
//
// [drawer] - Resolves a selection into the drawer view, placeholders
// included.
//
// [pipeline] - Load, layout and render stages used by the CLI and server.
//
// [cache] - File, Redis and MongoDB caches for scenes and artifacts.
//
// [observability] - Hooks for pipeline, cache, selection and HTTP events,
// with a Prometheus implementation.
//
// [errors] - Coded errors and input validators.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/geometry/...  # Specific package
//	go test -run Example ./...  # Examples only
//
// [roadmap]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/roadmap
// [roadmap/builtin]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/roadmap/builtin
// [geometry]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/geometry
// [layout]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/layout
// [graph]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/render/sink
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/render/styles
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/render/nodelink
// [selection]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/selection
// [drawer]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/drawer
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/roadmap/pkg/errors
package pkg
