package svg

import "testing"

func TestCommandRendering(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want string
	}{
		{"move absolute", MoveTo(0, 0), "M 0,0"},
		{"move relative", MoveBy(1, 2), "m 1,2"},
		{"line absolute", LineTo(10, 10), "L 10,10"},
		{"line relative", LineBy(-3, 4), "l -3,4"},
		{"horizontal absolute", HorizontalTo(5), "H 5"},
		{"horizontal relative", HorizontalBy(-5), "h -5"},
		{"vertical absolute", VerticalTo(7.5), "V 7.5"},
		{"vertical relative", VerticalBy(2), "v 2"},
		{"cubic absolute", CubicTo(1, 2, 3, 4, 5, 6), "C 1,2 3,4 5,6"},
		{"cubic relative", CubicBy(1, 2, 3, 4, 5, 6), "c 1,2 3,4 5,6"},
		{"smooth cubic absolute", SmoothCubicTo(1, 2, 3, 4), "S 1,2 3,4"},
		{"smooth cubic relative", SmoothCubicBy(1, 2, 3, 4), "s 1,2 3,4"},
		{"quadratic absolute", QuadraticTo(1, 2, 3, 4), "Q 1,2 3,4"},
		{"quadratic relative", QuadraticBy(1, 2, 3, 4), "q 1,2 3,4"},
		{"smooth quadratic absolute", SmoothQuadraticTo(3, 4), "T 3,4"},
		{"smooth quadratic relative", SmoothQuadraticBy(3, 4), "t 3,4"},
		{"arc absolute", ArcTo(25, 25, -30, false, true, 50, -25), "A 25 25 -30 0 1 50,-25"},
		{"arc relative", ArcBy(1, 1, 0, true, false, 2, 2), "a 1 1 0 1 0 2,2"},
		{"close path", ClosePath(), "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandLetter(t *testing.T) {
	if got := MoveTo(0, 0).Letter(); got != "M" {
		t.Errorf("Letter() = %q, want %q", got, "M")
	}
	if got := ClosePath().Letter(); got != "Z" {
		t.Errorf("Letter() = %q, want %q", got, "Z")
	}
}

func TestPathElement(t *testing.T) {
	p := Path(MoveTo(0, 0), LineTo(10, 10), ClosePath())

	d, err := p.Attr("d")
	if err != nil {
		t.Fatalf("Attr(d) failed: %v", err)
	}
	if want := "M 0,0 L 10,10 Z"; d != want {
		t.Errorf("d = %q, want %q", d, want)
	}
	if want := `<path d="M 0,0 L 10,10 Z" />`; p.String() != want {
		t.Errorf("String() = %q, want %q", p.String(), want)
	}
}

func TestPathCoercion(t *testing.T) {
	// Bare points adopt the line letter; explicit commands keep their own.
	p := Path(MoveTo(0, 0), Point{X: 10, Y: 10}, Point{X: 20, Y: 5}, QuadraticTo(1, 2, 3, 4))

	d, err := p.Attr("d")
	if err != nil {
		t.Fatalf("Attr(d) failed: %v", err)
	}
	if want := "M 0,0 L 10,10 L 20,5 Q 1,2 3,4"; d != want {
		t.Errorf("d = %q, want %q", d, want)
	}
}

func TestPathEmpty(t *testing.T) {
	p := Path()
	d, err := p.Attr("d")
	if err != nil {
		t.Fatalf("Attr(d) failed: %v", err)
	}
	if d != "" {
		t.Errorf("empty path d = %q, want empty", d)
	}
}
