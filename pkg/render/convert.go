package render

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/svgsmith/svgsmith/pkg/errors"
)

const converterBinary = "rsvg-convert"

// ToPNG rasterizes SVG bytes at the given scale factor.
func ToPNG(svgData []byte, scale float64) ([]byte, error) {
	return rsvgConvert(svgData, "png", "-z", fmt.Sprintf("%.2f", scale))
}

// ToPDF converts SVG bytes to a single-page PDF.
func ToPDF(svgData []byte) ([]byte, error) {
	return rsvgConvert(svgData, "pdf")
}

// ConverterAvailable reports whether the external converter is on PATH.
// Callers that only need SVG or JSON output never require it.
func ConverterAvailable() bool {
	_, err := exec.LookPath(converterBinary)
	return err == nil
}

func rsvgConvert(svgData []byte, format string, extra ...string) ([]byte, error) {
	if _, err := exec.LookPath(converterBinary); err != nil {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s not found in PATH: install librsvg (brew install librsvg / apt install librsvg2-bin)", converterBinary)
	}

	args := append([]string{"-f", format}, extra...)
	cmd := exec.Command(converterBinary, args...)
	cmd.Stdin = bytes.NewReader(svgData)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := stderr.String()
		if msg == "" {
			msg = err.Error()
		}
		return nil, errors.Wrap(errors.ErrCodeRender, err, "%s to %s failed: %s", converterBinary, format, msg)
	}
	return stdout.Bytes(), nil
}
