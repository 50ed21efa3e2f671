// Package pkg provides the core libraries for svgsmith document building.
//
// # Overview
//
// Svgsmith turns declarative TOML scene manifests into SVG documents and
// derived artifacts (PNG, PDF, JSON). The pkg directory is organized into
// four main areas:
//
//  1. [svg] - The document model (attributes, elements, paths, points)
//  2. [scene] - Manifest parsing and document construction
//  3. [render] - Output formats and external conversion
//  4. [pipeline] - Orchestration (load → build → render) with caching
//
// # Architecture
//
// The typical data flow through svgsmith:
//
//	TOML scene manifest
//	         ↓
//	    [scene] package (parse + validate)
//	         ↓
//	    [svg] package (document model)
//	         ↓
//	    [render] package (serialize + convert)
//	         ↓
//	    SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Build a document by hand:
//
//	import "github.com/svgsmith/svgsmith/pkg/svg"
//
//	doc := svg.New(200, 100)
//	doc.AddElement(svg.Circle(25, 50, 50).SetAttr("fill", "tomato"))
//	doc.AddElement(svg.Text("hello", 100, 55))
//	fmt.Println(doc.String())
//
// Or run the full pipeline from a manifest:
//
//	import "github.com/svgsmith/svgsmith/pkg/pipeline"
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Path:    "scene.toml",
//	    Formats: []string{"svg", "png"},
//	})
//
// # Main Packages
//
// ## Document Model
//
// [svg] - The core document model: sorted attribute maps, the element tree,
// the path command mini-language, and points lists. Everything serializes
// deterministically, so identical documents produce identical markup.
//
// [scene] - TOML manifest parsing and document construction. A scene names
// its viewport and lists shapes; building a scene yields an [svg.Document].
//
// ## Rendering
//
// [render] - Output formats and dispatch. SVG and JSON are produced natively;
// PNG and PDF shell out to rsvg-convert.
//
// [render/sink] - Serialization sinks for SVG markup and the JSON
// representation of a document.
//
// [inspect] - Graphviz structure diagrams of built documents, for debugging
// scene manifests.
//
// ## Infrastructure
//
// [pipeline] - The load → build → render pipeline used by the CLI and the
// HTTP server, with content-addressed caching of rendered artifacts.
//
// [cache] - Cache backends (file, Redis, null) and the keying scheme. Keys
// derive from the scene hash, so a changed manifest never hits stale output.
//
// [store] - Scene persistence for the HTTP server (MongoDB or in-memory).
//
// [errors] - Coded errors shared across packages, with HTTP status mapping.
//
// [observability] - Hook points the pipeline and caches call into; the CLI
// uses them to drive progress output.
//
// [httputil] - Response and request helpers for the HTTP handlers.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/svg/...      # Specific package
//	go test -run Example       # Examples only
//
// [svg]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/svg
// [scene]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/scene
// [render]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/render/sink
// [inspect]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/inspect
// [pipeline]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/cache
// [store]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/store
// [errors]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/errors
// [observability]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/observability
// [httputil]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/httputil
// [buildinfo]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/buildinfo
// [svg.Document]: https://pkg.go.dev/github.com/svgsmith/svgsmith/pkg/svg#Document
package pkg
