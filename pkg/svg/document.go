package svg

import (
	"fmt"
	"strings"
)

// DefaultNamespace is the xmlns value applied when no namespace option is
// given.
const DefaultNamespace = "http://www.w3.org/2000/svg"

// Document is the root svg container: document-level attributes plus an
// ordered element sequence. Unlike attributes, element order is
// significant: insertion order becomes output order. A Document is meant to
// be built and serialized by a single goroutine.
type Document struct {
	attrs    Attrs
	elements []*Element
}

// DocumentOption adjusts document construction.
type DocumentOption func(*Document)

// WithNamespace overrides the xmlns attribute.
func WithNamespace(ns string) DocumentOption {
	return func(d *Document) {
		d.attrs.Set("xmlns", ns)
	}
}

// New returns a document with width, height, and xmlns pre-set. The
// namespace defaults to DefaultNamespace.
func New(width, height float64, opts ...DocumentOption) *Document {
	d := &Document{attrs: NewAttrs()}
	d.attrs.Set("width", width)
	d.attrs.Set("height", height)
	d.attrs.Set("xmlns", DefaultNamespace)
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetAttr stores a document-level attribute and returns the document for
// chaining.
func (d *Document) SetAttr(key string, value any) *Document {
	d.attrs.Set(key, value)
	return d
}

// Attr returns the document attribute stored under key. It fails with
// ErrAttrNotFound when the key was never set.
func (d *Document) Attr(key string) (string, error) {
	return d.attrs.Get(key)
}

// Attrs returns the document's live attribute map.
func (d *Document) Attrs() Attrs { return d.attrs }

// AddElement appends el and returns the document for chaining. The document
// becomes the element's sole owner; callers must not mutate el afterwards.
func (d *Document) AddElement(el *Element) *Document {
	d.elements = append(d.elements, el)
	return d
}

// Elements returns the document's elements in insertion order. The slice is
// the document's own backing store.
func (d *Document) Elements() []*Element { return d.elements }

// Len returns the number of elements in the document.
func (d *Document) Len() int { return len(d.elements) }

// String serializes the document: the <svg> marker with sorted attributes,
// one element per line in insertion order, and the closing marker. A
// document without elements keeps a single empty line between the markers.
// Repeated calls on an unmodified document return byte-identical text.
func (d *Document) String() string {
	parts := make([]string, len(d.elements))
	for i, el := range d.elements {
		parts[i] = el.String()
	}
	return fmt.Sprintf("<svg %s>\n%s\n</svg>", d.attrs, strings.Join(parts, "\n"))
}
