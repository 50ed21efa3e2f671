package scene

import (
	"fmt"

	"github.com/svgsmith/svgsmith/pkg/errors"
	"github.com/svgsmith/svgsmith/pkg/svg"
)

// Shape is one drawing primitive. A single struct covers every shape type;
// each builder picks the fields its type needs and ignores the rest, so
// unused fields simply stay at their zero values.
type Shape struct {
	Type string `toml:"type"`

	// rect (rx/ry double as ellipse radii)
	Width  float64  `toml:"width"`
	Height float64  `toml:"height"`
	X      float64  `toml:"x"`
	Y      float64  `toml:"y"`
	RX     *float64 `toml:"rx"`
	RY     *float64 `toml:"ry"`

	// circle / ellipse
	R  float64 `toml:"r"`
	CX float64 `toml:"cx"`
	CY float64 `toml:"cy"`

	// line
	X1 float64 `toml:"x1"`
	Y1 float64 `toml:"y1"`
	X2 float64 `toml:"x2"`
	Y2 float64 `toml:"y2"`

	// polygon / polyline
	Points [][]float64 `toml:"points"`

	// path
	Commands []PathCommand `toml:"commands"`

	// text
	Content      string   `toml:"content"`
	DX           *float64 `toml:"dx"`
	DY           *float64 `toml:"dy"`
	Rotate       *float64 `toml:"rotate"`
	TextLength   *float64 `toml:"textLength"`
	LengthAdjust string   `toml:"lengthAdjust"`

	// extra presentation attributes applied to any type
	Attrs map[string]string `toml:"attrs"`
}

func (sh *Shape) build() (*svg.Element, error) {
	var el *svg.Element

	switch sh.Type {
	case "rect":
		el = svg.Rect(sh.Width, sh.Height, sh.X, sh.Y)
		if sh.RX != nil {
			el.SetAttr("rx", *sh.RX)
		}
		if sh.RY != nil {
			el.SetAttr("ry", *sh.RY)
		}

	case "circle":
		el = svg.Circle(sh.R, sh.CX, sh.CY)

	case "ellipse":
		if sh.RX == nil || sh.RY == nil {
			return nil, errors.New(errors.ErrCodeInvalidShape, "ellipse requires rx and ry")
		}
		el = svg.Ellipse(*sh.RX, *sh.RY, sh.CX, sh.CY)

	case "line":
		el = svg.Line(sh.X1, sh.Y1, sh.X2, sh.Y2)

	case "polygon", "polyline":
		pts, err := sh.points()
		if err != nil {
			return nil, err
		}
		if sh.Type == "polygon" {
			el = svg.Polygon(pts)
		} else {
			el = svg.Polyline(pts)
		}

	case "path":
		segs := make([]svg.Segment, len(sh.Commands))
		for i, c := range sh.Commands {
			cmd, err := c.compile()
			if err != nil {
				return nil, fmt.Errorf("command %d: %w", i, err)
			}
			segs[i] = cmd
		}
		el = svg.Path(segs...)

	case "text":
		topts, err := sh.textOptions()
		if err != nil {
			return nil, err
		}
		el = svg.Text(sh.Content, sh.X, sh.Y, topts...)

	case "":
		return nil, errors.New(errors.ErrCodeInvalidShape, "shape type is required")

	default:
		return nil, errors.New(errors.ErrCodeInvalidShape, "unknown shape type: %q", sh.Type)
	}

	for k, v := range sh.Attrs {
		el.SetAttr(k, v)
	}
	return el, nil
}

func (sh *Shape) points() (svg.Points, error) {
	pts := make(svg.Points, len(sh.Points))
	for i, p := range sh.Points {
		if len(p) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidShape,
				"point %d must have exactly 2 coordinates, got %d", i, len(p))
		}
		pts[i] = svg.Point{X: p[0], Y: p[1]}
	}
	return pts, nil
}

func (sh *Shape) textOptions() ([]svg.TextOption, error) {
	var opts []svg.TextOption
	if sh.DX != nil || sh.DY != nil {
		var dx, dy float64
		if sh.DX != nil {
			dx = *sh.DX
		}
		if sh.DY != nil {
			dy = *sh.DY
		}
		opts = append(opts, svg.WithTextOffset(dx, dy))
	}
	if sh.Rotate != nil {
		opts = append(opts, svg.WithTextRotate(*sh.Rotate))
	}
	if sh.TextLength != nil {
		opts = append(opts, svg.WithTextLength(*sh.TextLength))
	}
	if sh.LengthAdjust != "" {
		if err := errors.ValidateLengthAdjust(sh.LengthAdjust); err != nil {
			return nil, err
		}
		opts = append(opts, svg.WithLengthAdjust(sh.LengthAdjust))
	}
	return opts, nil
}

// PathCommand is one entry of a path shape's command list.
type PathCommand struct {
	Cmd  string    `toml:"cmd"`
	Args []float64 `toml:"args"`
}

// commandArity maps each command letter to its operand count.
var commandArity = map[string]int{
	"M": 2, "m": 2,
	"L": 2, "l": 2,
	"H": 1, "h": 1,
	"V": 1, "v": 1,
	"C": 6, "c": 6,
	"S": 4, "s": 4,
	"Q": 4, "q": 4,
	"T": 2, "t": 2,
	"A": 7, "a": 7,
	"Z": 0,
}

func (c PathCommand) compile() (svg.Command, error) {
	arity, ok := commandArity[c.Cmd]
	if !ok {
		return svg.Command{}, errors.New(errors.ErrCodeInvalidCommand, "unknown path command: %q", c.Cmd)
	}
	if len(c.Args) != arity {
		return svg.Command{}, errors.New(errors.ErrCodeInvalidCommand,
			"command %q wants %d operands, got %d", c.Cmd, arity, len(c.Args))
	}

	a := c.Args
	switch c.Cmd {
	case "M":
		return svg.MoveTo(a[0], a[1]), nil
	case "m":
		return svg.MoveBy(a[0], a[1]), nil
	case "L":
		return svg.LineTo(a[0], a[1]), nil
	case "l":
		return svg.LineBy(a[0], a[1]), nil
	case "H":
		return svg.HorizontalTo(a[0]), nil
	case "h":
		return svg.HorizontalBy(a[0]), nil
	case "V":
		return svg.VerticalTo(a[0]), nil
	case "v":
		return svg.VerticalBy(a[0]), nil
	case "C":
		return svg.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	case "c":
		return svg.CubicBy(a[0], a[1], a[2], a[3], a[4], a[5]), nil
	case "S":
		return svg.SmoothCubicTo(a[0], a[1], a[2], a[3]), nil
	case "s":
		return svg.SmoothCubicBy(a[0], a[1], a[2], a[3]), nil
	case "Q":
		return svg.QuadraticTo(a[0], a[1], a[2], a[3]), nil
	case "q":
		return svg.QuadraticBy(a[0], a[1], a[2], a[3]), nil
	case "T":
		return svg.SmoothQuadraticTo(a[0], a[1]), nil
	case "t":
		return svg.SmoothQuadraticBy(a[0], a[1]), nil
	case "A":
		return svg.ArcTo(a[0], a[1], a[2], a[3] != 0, a[4] != 0, a[5], a[6]), nil
	case "a":
		return svg.ArcBy(a[0], a[1], a[2], a[3] != 0, a[4] != 0, a[5], a[6]), nil
	case "Z":
		return svg.ClosePath(), nil
	}

	// Unreachable: every letter in commandArity is handled above.
	return svg.Command{}, errors.New(errors.ErrCodeInvalidCommand, "unknown path command: %q", c.Cmd)
}
