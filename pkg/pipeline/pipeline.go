// Package pipeline provides the core rendering pipeline for svgsmith.
//
// This package implements the complete load → build → render pipeline that
// can be used by CLI and API components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Parse a scene manifest from a file or inline TOML source
//  2. Build: Construct the vector document the scene describes
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:    "scene.toml",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	sc, hash, err := runner.Load(opts)
//
//	// Build with an existing scene
//	doc, err := runner.Build(sc)
//
//	// Render with an existing document
//	artifacts, err := runner.Render(ctx, doc, sc, hash, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/svgsmith/svgsmith/pkg/cache"
	"github.com/svgsmith/svgsmith/pkg/errors"
	"github.com/svgsmith/svgsmith/pkg/render"
	"github.com/svgsmith/svgsmith/pkg/scene"
	"github.com/svgsmith/svgsmith/pkg/svg"
)

// DefaultScale is the raster scale factor applied when none is given.
// 2.0 produces 2x resolution PNGs suitable for high-DPI displays.
const DefaultScale = 2.0

// DefaultFormat is the output format used when none is requested.
const DefaultFormat = string(render.FormatSVG)

// ValidateFormats checks that all format names are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := render.ParseFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Source carries inline TOML; Path names a manifest
	// file. Exactly one of the two must be set.
	Source string `json:"source,omitempty"`
	Path   string `json:"path,omitempty"`
	Name   string `json:"name,omitempty"` // Override the scene's name

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // Skip cache reads, render fresh

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Scene is the loaded manifest.
	Scene *scene.Scene

	// SceneHash is the content hash of the manifest source. It keys every
	// cache entry derived from this scene.
	SceneHash string

	// Document is the built vector document.
	Document *svg.Document

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	ShapeCount   int
	ElementCount int
	LoadTime     time.Duration
	BuildTime    time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits per pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading a scene.
func (o *Options) ValidateForLoad() error {
	if o.Source == "" && o.Path == "" {
		return fmt.Errorf("source or path is required")
	}
	if o.Source != "" && o.Path != "" {
		return fmt.Errorf("source and path are mutually exclusive")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return errors.ValidateScale(o.Scale)
}

// ArtifactKeyOpts returns cache key options for one rendered format.
func (o *Options) ArtifactKeyOpts(format string, sc *scene.Scene) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Scale:  o.Scale,
		Width:  sc.Width,
		Height: sc.Height,
	}
}
