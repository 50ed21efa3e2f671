package svg

import (
	"errors"
	"testing"
)

func TestDocumentFormatting(t *testing.T) {
	doc := New(100, 100)
	el := NewElement("test_element")
	el.SetAttr("test_attr", "foo")
	doc.AddElement(el)

	want := "<svg height=\"100\" width=\"100\" xmlns=\"http://www.w3.org/2000/svg\">\n" +
		"<test_element test_attr=\"foo\" />\n" +
		"</svg>"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDocumentEmpty(t *testing.T) {
	doc := New(10, 10)

	want := "<svg height=\"10\" width=\"10\" xmlns=\"http://www.w3.org/2000/svg\">\n\n</svg>"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDocumentNamespaceOverride(t *testing.T) {
	doc := New(10, 10, WithNamespace("urn:example:ns"))

	ns, err := doc.Attr("xmlns")
	if err != nil {
		t.Fatalf("Attr(xmlns) failed: %v", err)
	}
	if ns != "urn:example:ns" {
		t.Errorf("xmlns = %q, want %q", ns, "urn:example:ns")
	}
}

func TestDocumentElementOrder(t *testing.T) {
	doc := New(10, 10)
	doc.AddElement(Circle(1, 0, 0)).
		AddElement(Circle(2, 0, 0)).
		AddElement(Circle(3, 0, 0))

	want := "<svg height=\"10\" width=\"10\" xmlns=\"http://www.w3.org/2000/svg\">\n" +
		"<circle cx=\"0\" cy=\"0\" r=\"1\" />\n" +
		"<circle cx=\"0\" cy=\"0\" r=\"2\" />\n" +
		"<circle cx=\"0\" cy=\"0\" r=\"3\" />\n" +
		"</svg>"
	if got := doc.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if doc.Len() != 3 {
		t.Errorf("Len() = %d, want 3", doc.Len())
	}
}

func TestDocumentRepeatedSerialization(t *testing.T) {
	doc := New(100, 100)
	doc.AddElement(Rect(10, 10, 0, 0))
	doc.AddElement(Text("label", 5, 5))

	first := doc.String()
	for i := 0; i < 3; i++ {
		if got := doc.String(); got != first {
			t.Fatalf("serialization %d differs from first:\n%q\nvs\n%q", i+2, got, first)
		}
	}
}

func TestDocumentSetAttr(t *testing.T) {
	doc := New(640, 480).SetAttr("viewBox", "0 0 640 480")

	got, err := doc.Attr("viewBox")
	if err != nil {
		t.Fatalf("Attr(viewBox) failed: %v", err)
	}
	if got != "0 0 640 480" {
		t.Errorf("viewBox = %q, want %q", got, "0 0 640 480")
	}

	_, err = doc.Attr("preserveAspectRatio")
	if !errors.Is(err, ErrAttrNotFound) {
		t.Errorf("Attr on unset key: error = %v, want ErrAttrNotFound", err)
	}
}

func TestDocumentDimensionConversion(t *testing.T) {
	doc := New(99.5, 200)

	w, err := doc.Attr("width")
	if err != nil {
		t.Fatalf("Attr(width) failed: %v", err)
	}
	if w != "99.5" {
		t.Errorf("width = %q, want %q", w, "99.5")
	}

	h, err := doc.Attr("height")
	if err != nil {
		t.Fatalf("Attr(height) failed: %v", err)
	}
	if h != "200" {
		t.Errorf("height = %q, want %q", h, "200")
	}
}
