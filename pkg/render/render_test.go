package render

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/svgsmith/svgsmith/pkg/errors"
	"github.com/svgsmith/svgsmith/pkg/svg"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Format
		wantErr  bool
	}{
		{name: "svg", input: "svg", expected: FormatSVG},
		{name: "png", input: "png", expected: FormatPNG},
		{name: "pdf", input: "pdf", expected: FormatPDF},
		{name: "json", input: "json", expected: FormatJSON},
		{name: "uppercase", input: "SVG", expected: FormatSVG},
		{name: "mixed case", input: "Png", expected: FormatPNG},
		{name: "unknown", input: "gif", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error, got %q", tt.input, got)
				}
				var appErr *errors.Error
				if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeInvalidFormat {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormats(t *testing.T) {
	all := Formats()
	if len(all) != 4 {
		t.Fatalf("len(Formats()) = %d, want 4", len(all))
	}
	for _, f := range all {
		if _, err := ParseFormat(string(f)); err != nil {
			t.Errorf("Formats() includes %q which ParseFormat rejects: %v", f, err)
		}
	}
}

func TestContentType(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatSVG, "image/svg+xml"},
		{FormatPNG, "image/png"},
		{FormatPDF, "application/pdf"},
		{FormatJSON, "application/json"},
		{Format("bogus"), "application/octet-stream"},
	}

	for _, tt := range tests {
		if got := tt.format.ContentType(); got != tt.expected {
			t.Errorf("ContentType(%q) = %q, want %q", tt.format, got, tt.expected)
		}
	}
}

func TestExt(t *testing.T) {
	if got := FormatPNG.Ext(); got != ".png" {
		t.Errorf("Ext() = %q, want %q", got, ".png")
	}
}

func TestRenderSVG(t *testing.T) {
	doc := svg.New(10, 10)
	doc.AddElement(svg.Circle(5, 5, 5))

	out, err := Render(doc, FormatSVG, 1.0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "<svg ") {
		t.Errorf("unexpected output prefix: %q", out[:min(20, len(out))])
	}
	if !strings.Contains(string(out), "<circle ") {
		t.Error("output missing circle element")
	}
}

func TestRenderJSON(t *testing.T) {
	doc := svg.New(10, 10)

	out, err := Render(doc, FormatJSON, 1.0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(out), `"attrs"`) {
		t.Errorf("unexpected json output: %s", out)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	doc := svg.New(10, 10)

	if _, err := Render(doc, Format("gif"), 1.0); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRenderPNG(t *testing.T) {
	if !ConverterAvailable() {
		t.Skipf("%s not installed", converterBinary)
	}

	doc := svg.New(20, 20)
	doc.AddElement(svg.Rect(20, 20, 0, 0))

	out, err := Render(doc, FormatPNG, 1.0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(out) < 8 || string(out[1:4]) != "PNG" {
		t.Error("output does not look like a PNG")
	}
}

func TestRenderPDF(t *testing.T) {
	if !ConverterAvailable() {
		t.Skipf("%s not installed", converterBinary)
	}

	doc := svg.New(20, 20)

	out, err := Render(doc, FormatPDF, 1.0)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.HasPrefix(string(out), "%PDF") {
		t.Error("output does not look like a PDF")
	}
}
