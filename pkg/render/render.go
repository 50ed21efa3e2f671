// Package render turns built documents into output artifacts.
//
// The SVG and JSON formats are produced in-process by [sink]; PNG and PDF
// shell out to rsvg-convert. Use [Render] for the format dispatch or call
// the sinks directly.
//
// [sink]: github.com/svgsmith/svgsmith/pkg/render/sink
package render

import (
	"strings"

	"github.com/svgsmith/svgsmith/pkg/errors"
	"github.com/svgsmith/svgsmith/pkg/render/sink"
	"github.com/svgsmith/svgsmith/pkg/svg"
)

// Format identifies an output encoding.
type Format string

// Supported output formats.
const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// Formats lists every supported output format.
func Formats() []Format {
	return []Format{FormatSVG, FormatPNG, FormatPDF, FormatJSON}
}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatSVG, FormatPNG, FormatPDF, FormatJSON:
		return f, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported format: %q (valid: svg, png, pdf, json)", s)
	}
}

// ContentType returns the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Render produces the artifact for one format. PNG honors the scale
// factor; the vector formats ignore it.
func Render(doc *svg.Document, format Format, scale float64) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.SVG(doc), nil
	case FormatJSON:
		return sink.JSON(doc)
	case FormatPNG:
		return ToPNG(sink.SVG(doc), scale)
	case FormatPDF:
		return ToPDF(sink.SVG(doc))
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %q", format)
	}
}
