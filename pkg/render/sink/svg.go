// Package sink encodes documents for files, pipes, and HTTP responses.
package sink

import (
	"fmt"
	"io"

	"github.com/svgsmith/svgsmith/pkg/svg"
)

// SVG returns the document's markup followed by a trailing newline,
// ready to write to a file or response body.
func SVG(doc *svg.Document) []byte {
	return []byte(doc.String() + "\n")
}

// WriteSVG writes the document's markup to w with a trailing newline.
func WriteSVG(doc *svg.Document, w io.Writer) error {
	if _, err := fmt.Fprintln(w, doc.String()); err != nil {
		return fmt.Errorf("writing svg: %w", err)
	}
	return nil
}
