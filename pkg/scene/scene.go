// Package scene loads drawing descriptions from TOML manifests and builds
// svg documents from them.
//
// A manifest declares the canvas and a [[shape]] table per primitive:
//
//	width  = 640.0
//	height = 480.0
//
//	[[shape]]
//	type   = "rect"
//	width  = 120.0
//	height = 80.0
//	x      = 20.0
//	y      = 20.0
//
//	  [shape.attrs]
//	  fill = "#88d"
//
// Path shapes carry their command list inline:
//
//	[[shape]]
//	type = "path"
//	commands = [
//	    { cmd = "M", args = [0, 0] },
//	    { cmd = "L", args = [10, 10] },
//	    { cmd = "Z" },
//	]
package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/svgsmith/svgsmith/pkg/errors"
	"github.com/svgsmith/svgsmith/pkg/svg"
)

// Scene is a parsed drawing description.
type Scene struct {
	Name      string            `toml:"name"`
	Width     float64           `toml:"width"`
	Height    float64           `toml:"height"`
	Namespace string            `toml:"namespace"`
	Attrs     map[string]string `toml:"attrs"`
	Shapes    []Shape           `toml:"shape"`
}

// Parse decodes a TOML scene manifest.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "failed to parse scene manifest")
	}
	return &s, nil
}

// Load reads and decodes a scene manifest from disk. When the manifest does
// not name itself, the file's base name is used.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "failed to read scene file %s", path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if s.Name == "" {
		base := filepath.Base(path)
		s.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return s, nil
}

// Build constructs the svg document the scene describes. Shapes are added
// in manifest order.
func (s *Scene) Build() (*svg.Document, error) {
	if err := errors.ValidateDimensions(s.Width, s.Height); err != nil {
		return nil, err
	}

	var opts []svg.DocumentOption
	if s.Namespace != "" {
		opts = append(opts, svg.WithNamespace(s.Namespace))
	}
	doc := svg.New(s.Width, s.Height, opts...)
	for k, v := range s.Attrs {
		doc.SetAttr(k, v)
	}

	for i := range s.Shapes {
		el, err := s.Shapes[i].build()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		doc.AddElement(el)
	}
	return doc, nil
}

// Validate checks the scene without keeping the built document.
func (s *Scene) Validate() error {
	_, err := s.Build()
	return err
}
