package inspect

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/svgsmith/svgsmith/pkg/render"
	"github.com/svgsmith/svgsmith/pkg/svg"
)

// Options configures structure diagram rendering.
type Options struct {
	// Detailed includes attributes and text content in node labels.
	// When false, only the element tag (and id attribute) is shown.
	Detailed bool
}

// ToDOT converts a document's element tree to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF],
// or [RenderPNG].
//
// The root container is rendered with grey fill to distinguish it from
// content elements.
func ToDOT(doc *svg.Document, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	rootLabel := fmtRootLabel(doc, opts.Detailed)
	fmt.Fprintf(&buf, "  \"root\" [label=%q, fillcolor=lightgrey];\n", rootLabel)
	for i, el := range doc.Elements() {
		label := fmtLabel(el, opts.Detailed)
		fmt.Fprintf(&buf, "  %q [label=%q];\n", nodeID(i), label)
	}

	buf.WriteString("\n")
	for i := range doc.Elements() {
		fmt.Fprintf(&buf, "  \"root\" -> %q;\n", nodeID(i))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string {
	return fmt.Sprintf("e%d", i)
}

func fmtRootLabel(doc *svg.Document, detailed bool) string {
	if !detailed {
		return "svg"
	}
	return "svg\n" + strings.Join(fmtAttrLines(doc.Attrs()), "\n")
}

func fmtLabel(el *svg.Element, detailed bool) string {
	name := el.Tag()
	if id, err := el.Attrs().Get("id"); err == nil {
		name += "#" + id
	}
	if !detailed {
		return name
	}

	parts := fmtAttrLines(el.Attrs())
	if text, ok := el.Text(); ok {
		parts = append(parts, fmt.Sprintf("text: %q", text))
	}

	return name + "\n" + strings.Join(parts, "\n")
}

func fmtAttrLines(attrs svg.Attrs) []string {
	lines := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		lines = append(lines, fmt.Sprintf("%s: %s", k, attrs[k]))
	}
	return lines
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svgData []byte) []byte {
	match := viewBoxRe.FindSubmatch(svgData)
	if match == nil {
		return svgData
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svgData
	}

	newTag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svgData, []byte(newTag))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svgData, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svgData)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svgData, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svgData, scale)
}
