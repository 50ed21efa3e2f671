package svg_test

import (
	"fmt"

	"github.com/svgsmith/svgsmith/pkg/svg"
)

func ExampleNew() {
	doc := svg.New(100, 100)
	doc.AddElement(svg.Rect(80, 40, 10, 10))
	fmt.Println(doc)
	// Output:
	// <svg height="100" width="100" xmlns="http://www.w3.org/2000/svg">
	// <rect height="40" rx="0" ry="0" width="80" x="10" y="10" />
	// </svg>
}

func ExamplePath() {
	p := svg.Path(
		svg.MoveTo(0, 0),
		svg.LineTo(10, 10),
		svg.ClosePath(),
	)
	fmt.Println(p)
	// Output:
	// <path d="M 0,0 L 10,10 Z" />
}

func ExamplePath_mixed() {
	// Bare points slot into the sequence as absolute line commands.
	p := svg.Path(
		svg.MoveTo(0, 0),
		svg.Point{X: 10, Y: 0},
		svg.Point{X: 10, Y: 10},
		svg.ClosePath(),
	)
	d, _ := p.Attr("d")
	fmt.Println(d)
	// Output:
	// M 0,0 L 10,0 L 10,10 Z
}

func ExamplePolygon() {
	fmt.Println(svg.Polygon(svg.Points{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}}))
	// Output:
	// <polygon points="0,0 1,1 2,2" />
}

func ExampleText() {
	el := svg.Text("hello", 5, 10)
	fmt.Println(el)
	// Output:
	// <text dx="0" dy="0" lengthAdjust="spacing" rotate="0" textLength="none" x="5" y="10">hello</text>
}
