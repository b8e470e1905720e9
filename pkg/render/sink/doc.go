// Package sink provides output format renderers for roadmap scenes.
//
// # Overview
//
// A "sink" transforms a [graph.Layout] scene into a final output format:
//
//   - SVG: the roadmap with optional selection highlight and drawer panel
//   - HTML: a standalone page with the SVG, a detail drawer and the
//     select/clear behavior in inline JavaScript
//   - JSON: the scene itself
//   - PDF, PNG: converted from SVG (requires rsvg-convert)
//
// # SVG Output
//
//	svg := sink.RenderSVG(scene,
//	    sink.WithGraph(g),
//	    sink.WithStyle(styles.Dark()),
//	    sink.WithSelected("cv-yolo"),
//	    sink.WithDrawer(),
//	)
//
// [WithGraph] supplies drawer content. Without it, a selected node shows
// the "Details unavailable" placeholder.
//
// # HTML Output
//
// [RenderHTML] embeds the SVG and the details of every node. Clicking a
// node with details opens the drawer; the close button or Escape clears
// the selection again.
//
// [graph.Layout]: github.com/matzehuels/roadmap/pkg/graph.Layout
package sink
