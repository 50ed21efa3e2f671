package sink

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/svgsmith/svgsmith/pkg/svg"
)

// document is the JSON shape of a rendered document. Attribute maps
// serialize with sorted keys, matching the markup's attribute order.
type document struct {
	Attrs    map[string]string `json:"attrs"`
	Elements []element         `json:"elements"`
}

type element struct {
	Tag   string            `json:"tag"`
	Attrs map[string]string `json:"attrs"`
	Text  *string           `json:"text,omitempty"`
}

// JSON returns a pretty-printed JSON encoding of the document's
// structure: the root attributes and each element's tag, attributes,
// and text content. Self-closing elements omit the text field.
func JSON(doc *svg.Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON encodes the document's structure to w as indented JSON.
func WriteJSON(doc *svg.Document, w io.Writer) error {
	out := document{
		Attrs:    doc.Attrs(),
		Elements: make([]element, 0, doc.Len()),
	}
	for _, el := range doc.Elements() {
		e := element{Tag: el.Tag(), Attrs: el.Attrs()}
		if text, ok := el.Text(); ok {
			e.Text = &text
		}
		out.Elements = append(out.Elements, e)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
