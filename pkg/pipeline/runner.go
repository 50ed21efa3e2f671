package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/svgsmith/svgsmith/pkg/cache"
	"github.com/svgsmith/svgsmith/pkg/errors"
	"github.com/svgsmith/svgsmith/pkg/observability"
	"github.com/svgsmith/svgsmith/pkg/render"
	"github.com/svgsmith/svgsmith/pkg/scene"
	"github.com/svgsmith/svgsmith/pkg/svg"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete load → build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	observability.Pipeline().OnLoadStart(ctx, opts.Name)
	sc, sceneHash, err := r.Load(opts)
	if err != nil {
		observability.Pipeline().OnLoadComplete(ctx, opts.Name, 0, time.Since(loadStart), err)
		return nil, fmt.Errorf("load: %w", err)
	}
	result.Scene = sc
	result.SceneHash = sceneHash
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.ShapeCount = len(sc.Shapes)
	observability.Pipeline().OnLoadComplete(ctx, sc.Name, len(sc.Shapes), result.Stats.LoadTime, nil)

	r.Logger.Info("loaded scene",
		"name", sc.Name,
		"shapes", len(sc.Shapes),
		"duration", result.Stats.LoadTime)

	// Stage 2: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, sc.Name, len(sc.Shapes))
	doc, err := r.Build(sc)
	if err != nil {
		observability.Pipeline().OnBuildComplete(ctx, sc.Name, 0, time.Since(buildStart), err)
		return nil, fmt.Errorf("build: %w", err)
	}
	result.Document = doc
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.ElementCount = doc.Len()
	observability.Pipeline().OnBuildComplete(ctx, sc.Name, doc.Len(), result.Stats.BuildTime, nil)

	r.Logger.Info("built document",
		"elements", doc.Len(),
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, doc, sc, sceneHash, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load reads and parses the scene manifest named by the options. The
// returned hash identifies the manifest source bytes and keys every cache
// entry derived from the scene.
func (r *Runner) Load(opts Options) (*scene.Scene, string, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, "", err
	}

	source := []byte(opts.Source)
	name := opts.Name
	if opts.Path != "" {
		data, err := os.ReadFile(opts.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, "", errors.Wrap(errors.ErrCodeFileNotFound, err, "scene file not found: %s", opts.Path)
			}
			return nil, "", errors.Wrap(errors.ErrCodeInvalidScene, err, "failed to read scene file %s", opts.Path)
		}
		source = data
		if name == "" {
			base := filepath.Base(opts.Path)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
	}

	sc, err := scene.Parse(source)
	if err != nil {
		return nil, "", err
	}
	if name != "" {
		sc.Name = name
	}

	return sc, cache.Hash(source), nil
}

// Build constructs the vector document a loaded scene describes.
// Building is pure in-memory work and is never cached.
func (r *Runner) Build(sc *scene.Scene) (*svg.Document, error) {
	return sc.Build()
}

// RenderWithCacheInfo generates artifacts with caching and returns cache
// hit info. Refresh skips cache reads; fresh results are always written
// back so a refresh also repairs stale entries.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, doc *svg.Document, sc *scene.Scene, sceneHash string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Try to get all formats from cache
	if !opts.Refresh {
		artifacts := make(map[string][]byte)
		allCached := true
		for _, format := range opts.Formats {
			if data, hit, err := r.Cache.Get(ctx, r.artifactKey(sceneHash, format, sc, opts)); err == nil && hit {
				observability.Cache().OnCacheHit(ctx, keyType(format))
				artifacts[format] = data
			} else {
				observability.Cache().OnCacheMiss(ctx, keyType(format))
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil // All artifacts from cache
		}
	}

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, name := range opts.Formats {
		format, err := render.ParseFormat(name)
		if err != nil {
			return nil, false, err
		}
		data, err := render.Render(doc, format, opts.Scale)
		if err != nil {
			return nil, false, fmt.Errorf("render %s: %w", name, err)
		}
		rendered[name] = data
	}

	// Cache each format
	for format, data := range rendered {
		ttl := cache.TTLArtifact
		if format == string(render.FormatSVG) {
			ttl = cache.TTLDocument
		}
		if err := r.Cache.Set(ctx, r.artifactKey(sceneHash, format, sc, opts), data, ttl); err == nil {
			observability.Cache().OnCacheSet(ctx, keyType(format), len(data))
		}
	}

	return rendered, false, nil // Cache miss
}

// keyType names the cache key family a format maps to, for hook events.
func keyType(format string) string {
	if format == string(render.FormatSVG) {
		return "document"
	}
	return "artifact"
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and
// discards the cache hit info.
func (r *Runner) Render(ctx context.Context, doc *svg.Document, sc *scene.Scene, sceneHash string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, doc, sc, sceneHash, opts)
	return artifacts, err
}

// artifactKey returns the cache key for one output format. The canonical
// markup (svg) is keyed on the scene hash alone; converted formats also key
// on the options that change their bytes.
func (r *Runner) artifactKey(sceneHash, format string, sc *scene.Scene, opts Options) string {
	if format == string(render.FormatSVG) {
		return r.Keyer.DocumentKey(sceneHash)
	}
	return r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format, sc))
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
