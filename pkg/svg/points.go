package svg

import (
	"strconv"
	"strings"
)

// Point is a 2-D coordinate pair.
type Point struct {
	X, Y float64
}

// String renders the point as "x,y".
func (p Point) String() string {
	return ftoa(p.X) + "," + ftoa(p.Y)
}

// PointList is the set of inputs accepted by Polygon and Polyline: a point
// sequence or pre-formatted points text. The interface is closed; Points
// and RawPoints are its only implementations.
type PointList interface {
	formatPoints() string
}

// Points renders a point sequence as "x1,y1 x2,y2 ...": a comma inside each
// pair, a single space between pairs. An empty sequence renders as the
// empty string.
type Points []Point

// String renders the sequence in the points attribute format.
func (p Points) String() string {
	parts := make([]string, len(p))
	for i, pt := range p {
		parts[i] = pt.String()
	}
	return strings.Join(parts, " ")
}

func (p Points) formatPoints() string { return p.String() }

// RawPoints is pre-formatted points text, passed through unchanged.
type RawPoints string

func (r RawPoints) formatPoints() string { return string(r) }

// ftoa renders a coordinate in its shortest round-trip decimal form, the
// same conversion fmt applies to float64 values.
func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
