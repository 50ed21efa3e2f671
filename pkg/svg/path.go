package svg

import "fmt"

// Command is one instruction in the path mini-language: a letter from the
// alphabet M m L l H h V v C c S s Q q T t A a Z plus its rendered operand
// text. Operands are formatted at construction time and never re-derived;
// a Command is immutable.
type Command struct {
	letter   string
	operands string
}

// Letter returns the command letter.
func (c Command) Letter() string { return c.letter }

// Operands returns the command's rendered operand text. Close-path carries
// none.
func (c Command) Operands() string { return c.operands }

// String renders the command as "{letter} {operands}", or the bare letter
// for commands without operands.
func (c Command) String() string {
	if c.operands == "" {
		return c.letter
	}
	return c.letter + " " + c.operands
}

// Segment is a value that can take a place in a path's command sequence.
// The interface is closed: a Command stands for itself and ignores the
// letter supplied by the call site, while a bare Point is tagged with it.
type Segment interface {
	command(letter string) Command
}

func (c Command) command(string) Command { return c }

func (p Point) command(letter string) Command {
	return Command{letter: letter, operands: p.String()}
}

// MoveTo starts a new subpath at (x, y).
func MoveTo(x, y float64) Command { return Command{"M", pair(x, y)} }

// MoveBy starts a new subpath offset by (dx, dy) from the current position.
func MoveBy(dx, dy float64) Command { return Command{"m", pair(dx, dy)} }

// LineTo draws a straight line to (x, y).
func LineTo(x, y float64) Command { return Command{"L", pair(x, y)} }

// LineBy draws a straight line offset by (dx, dy).
func LineBy(dx, dy float64) Command { return Command{"l", pair(dx, dy)} }

// HorizontalTo draws a horizontal line to the absolute x coordinate.
func HorizontalTo(x float64) Command { return Command{"H", ftoa(x)} }

// HorizontalBy draws a horizontal line offset by dx.
func HorizontalBy(dx float64) Command { return Command{"h", ftoa(dx)} }

// VerticalTo draws a vertical line to the absolute y coordinate.
func VerticalTo(y float64) Command { return Command{"V", ftoa(y)} }

// VerticalBy draws a vertical line offset by dy.
func VerticalBy(dy float64) Command { return Command{"v", ftoa(dy)} }

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (x1, y1) and (x2, y2).
func CubicTo(x1, y1, x2, y2, x, y float64) Command {
	return Command{"C", pair(x1, y1) + " " + pair(x2, y2) + " " + pair(x, y)}
}

// CubicBy is the relative form of CubicTo.
func CubicBy(dx1, dy1, dx2, dy2, dx, dy float64) Command {
	return Command{"c", pair(dx1, dy1) + " " + pair(dx2, dy2) + " " + pair(dx, dy)}
}

// SmoothCubicTo draws a cubic curve to (x, y) with trailing control point
// (x2, y2), reflecting the previous command's leading control point.
func SmoothCubicTo(x2, y2, x, y float64) Command {
	return Command{"S", pair(x2, y2) + " " + pair(x, y)}
}

// SmoothCubicBy is the relative form of SmoothCubicTo.
func SmoothCubicBy(dx2, dy2, dx, dy float64) Command {
	return Command{"s", pair(dx2, dy2) + " " + pair(dx, dy)}
}

// QuadraticTo draws a quadratic Bezier curve to (x, y) with control point
// (x1, y1).
func QuadraticTo(x1, y1, x, y float64) Command {
	return Command{"Q", pair(x1, y1) + " " + pair(x, y)}
}

// QuadraticBy is the relative form of QuadraticTo.
func QuadraticBy(dx1, dy1, dx, dy float64) Command {
	return Command{"q", pair(dx1, dy1) + " " + pair(dx, dy)}
}

// SmoothQuadraticTo draws a quadratic curve to (x, y), reflecting the
// previous command's control point.
func SmoothQuadraticTo(x, y float64) Command {
	return Command{"T", pair(x, y)}
}

// SmoothQuadraticBy is the relative form of SmoothQuadraticTo.
func SmoothQuadraticBy(dx, dy float64) Command {
	return Command{"t", pair(dx, dy)}
}

// ArcTo draws an elliptical arc to (x, y) with radii rx and ry, the ellipse
// rotated by angle degrees. The flags pick one of the four candidate arcs
// and render as 1/0.
func ArcTo(rx, ry, angle float64, largeArc, sweep bool, x, y float64) Command {
	return Command{"A", arcOperands(rx, ry, angle, largeArc, sweep, x, y)}
}

// ArcBy is the relative form of ArcTo.
func ArcBy(rx, ry, angle float64, largeArc, sweep bool, dx, dy float64) Command {
	return Command{"a", arcOperands(rx, ry, angle, largeArc, sweep, dx, dy)}
}

// ClosePath closes the current subpath. It carries no operands.
func ClosePath() Command { return Command{letter: "Z"} }

func pair(x, y float64) string { return ftoa(x) + "," + ftoa(y) }

func arcOperands(rx, ry, angle float64, largeArc, sweep bool, x, y float64) string {
	return fmt.Sprintf("%s %s %s %s %s %s",
		ftoa(rx), ftoa(ry), ftoa(angle), flag(largeArc), flag(sweep), pair(x, y))
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
