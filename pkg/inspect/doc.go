// Package inspect renders document structure as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz,
// where the root container and each child element appear as boxes
// connected by arrows in document order. It exists for debugging scene
// manifests: the diagram shows what a build produced without opening
// the markup itself.
//
// # Usage
//
// Convert a document to DOT format, then render to SVG:
//
//	dot := inspect.ToDOT(doc, inspect.Options{Detailed: false})
//	svg, err := inspect.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := inspect.RenderPDF(dot)
//	png, err := inspect.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include every attribute and any
//     text content. When false, only the tag (and id, if set) is shown.
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools
//   - Customized before rendering
//
// The generated DOT uses top-to-bottom layout (rankdir=TB) with rounded
// box nodes; the root container is shaded to set it apart from content
// elements.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package inspect
