// Package svg builds vector-graphics markup documents programmatically.
//
// A Document is assembled from Elements, which are primitive shapes, paths,
// and text nodes, each carrying an attribute map that serializes with its
// keys in lexicographic order. Path geometry is described with the Command
// mini-language, points lists with the Points type:
//
//	doc := svg.New(100, 100)
//	doc.AddElement(svg.Path(
//		svg.MoveTo(10, 10),
//		svg.LineTo(90, 90),
//		svg.ClosePath(),
//	).SetAttr("stroke", "black"))
//	fmt.Println(doc)
//
// The package performs no I/O and applies no escaping: attribute values and
// text content are rendered exactly as given. Documents and Elements are not
// safe for concurrent use without external synchronization.
package svg
