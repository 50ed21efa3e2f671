package svg

import (
	"fmt"
	"strings"
)

// Element is a single graphical node: a tag name, an attribute map, and
// optional inner text. An element with inner text serializes as a
// content-bearing tag, one without as a self-closing tag. Which form
// applies is decided purely by text presence, never by tag name.
type Element struct {
	tag     string
	attrs   Attrs
	text    string
	hasText bool
}

// NewElement returns a generic element with the given tag, an empty
// attribute map, and no inner text.
func NewElement(tag string) *Element {
	return &Element{tag: tag, attrs: NewAttrs()}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Attrs returns the element's live attribute map. Mutations through the
// returned map are visible to the element.
func (e *Element) Attrs() Attrs { return e.attrs }

// SetAttr stores value under key and returns the element for chaining.
func (e *Element) SetAttr(key string, value any) *Element {
	e.attrs.Set(key, value)
	return e
}

// Attr returns the attribute stored under key. It fails with
// ErrAttrNotFound when the key was never set.
func (e *Element) Attr(key string) (string, error) {
	return e.attrs.Get(key)
}

// Text returns the element's inner text and whether any is present.
func (e *Element) Text() (string, bool) {
	return e.text, e.hasText
}

// SetText replaces the inner text, making the element content-bearing, and
// returns the element for chaining.
func (e *Element) SetText(text string) *Element {
	e.text = text
	e.hasText = true
	return e
}

// String serializes the element: "<tag attrs />" without inner text,
// "<tag attrs>text</tag>" with it. The attribute block and its separating
// space are omitted when the map is empty.
func (e *Element) String() string {
	attrs := e.attrs.String()
	switch {
	case !e.hasText && attrs == "":
		return fmt.Sprintf("<%s />", e.tag)
	case !e.hasText:
		return fmt.Sprintf("<%s %s />", e.tag, attrs)
	case attrs == "":
		return fmt.Sprintf("<%s>%s</%s>", e.tag, e.text, e.tag)
	default:
		return fmt.Sprintf("<%s %s>%s</%s>", e.tag, attrs, e.text, e.tag)
	}
}

// RectOption adjusts the optional attributes of a rectangle.
type RectOption func(*Element)

// WithCornerRadius rounds the rectangle's corners with the given x and y
// radii. Both default to "0" when the option is absent.
func WithCornerRadius(rx, ry float64) RectOption {
	return func(e *Element) {
		e.attrs.Set("rx", rx)
		e.attrs.Set("ry", ry)
	}
}

// Rect returns a rect element of the given size with its top-left corner at
// (x, y).
func Rect(width, height, x, y float64, opts ...RectOption) *Element {
	e := NewElement("rect")
	e.SetAttr("width", width).
		SetAttr("height", height).
		SetAttr("x", x).
		SetAttr("y", y).
		SetAttr("rx", "0").
		SetAttr("ry", "0")
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Circle returns a circle element with radius r centered at (cx, cy).
func Circle(r, cx, cy float64) *Element {
	e := NewElement("circle")
	e.SetAttr("r", r).
		SetAttr("cx", cx).
		SetAttr("cy", cy)
	return e
}

// Ellipse returns an ellipse element with radii rx and ry centered at
// (cx, cy).
func Ellipse(rx, ry, cx, cy float64) *Element {
	e := NewElement("ellipse")
	e.SetAttr("rx", rx).
		SetAttr("ry", ry).
		SetAttr("cx", cx).
		SetAttr("cy", cy)
	return e
}

// Line returns a line element from (x1, y1) to (x2, y2).
func Line(x1, y1, x2, y2 float64) *Element {
	e := NewElement("line")
	e.SetAttr("x1", x1).
		SetAttr("y1", y1).
		SetAttr("x2", x2).
		SetAttr("y2", y2)
	return e
}

// Polygon returns a polygon element with its points attribute rendered from
// the given list.
func Polygon(points PointList) *Element {
	e := NewElement("polygon")
	e.SetAttr("points", points.formatPoints())
	return e
}

// Polyline returns a polyline element with its points attribute rendered
// from the given list.
func Polyline(points PointList) *Element {
	e := NewElement("polyline")
	e.SetAttr("points", points.formatPoints())
	return e
}

// Path returns a path element whose d attribute is built from segs rendered
// in order and joined by single spaces. Bare points become absolute line
// commands; explicit commands keep their own letters.
func Path(segs ...Segment) *Element {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.command("L").String()
	}
	e := NewElement("path")
	e.SetAttr("d", strings.Join(parts, " "))
	return e
}

// TextOption adjusts the optional typography attributes of a text element.
type TextOption func(*Element)

// WithTextOffset shifts glyph positions by (dx, dy).
func WithTextOffset(dx, dy float64) TextOption {
	return func(e *Element) {
		e.attrs.Set("dx", dx)
		e.attrs.Set("dy", dy)
	}
}

// WithTextRotate rotates glyphs by the given degrees.
func WithTextRotate(deg float64) TextOption {
	return func(e *Element) {
		e.attrs.Set("rotate", deg)
	}
}

// WithTextLength stretches or squeezes the rendered text to the given
// length.
func WithTextLength(length float64) TextOption {
	return func(e *Element) {
		e.attrs.Set("textLength", length)
	}
}

// WithLengthAdjust selects how textLength is absorbed, "spacing" or
// "spacingAndGlyphs".
func WithLengthAdjust(mode string) TextOption {
	return func(e *Element) {
		e.attrs.Set("lengthAdjust", mode)
	}
}

// Text returns a content-bearing text element anchored at (x, y). The
// optional attributes default to dx, dy, and rotate "0", textLength "none",
// and lengthAdjust "spacing".
func Text(content string, x, y float64, opts ...TextOption) *Element {
	e := NewElement("text")
	e.SetAttr("x", x).
		SetAttr("y", y).
		SetAttr("dx", "0").
		SetAttr("dy", "0").
		SetAttr("rotate", "0").
		SetAttr("textLength", "none").
		SetAttr("lengthAdjust", "spacing")
	e.text = content
	e.hasText = true
	for _, opt := range opts {
		opt(e)
	}
	return e
}
