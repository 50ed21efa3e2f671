package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svgsmith/svgsmith/pkg/observability"
	"github.com/svgsmith/svgsmith/pkg/pipeline"
	"github.com/svgsmith/svgsmith/pkg/render"
)

// renderCommand creates the render command for turning scene manifests into artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	opts.SetRenderDefaults()

	cmd := &cobra.Command{
		Use:   "render [scene.toml]",
		Short: "Render a scene manifest to SVG and other formats",
		Long: `Render a scene manifest to SVG and other formats.

The render command loads a TOML scene manifest, builds the SVG document,
and writes one file per requested format. PNG and PDF output require
rsvg-convert on the PATH.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			opts.Path = args[0]
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "raster scale factor for png output")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even when a cached result exists")
	cmd.Flags().StringVar(&opts.Name, "name", "", "override the scene name")

	return cmd
}

// runRender executes the pipeline and writes one file per requested format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Loading %s...", opts.Path))
	spinner.Start()
	observability.SetPipelineHooks(&spinnerHooks{spinner: spinner})
	defer observability.Reset()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts:    result.Artifacts,
		formats:      opts.Formats,
		input:        opts.Path,
		output:       output,
		name:         result.Scene.Name,
		shapeCount:   result.Stats.ShapeCount,
		elementCount: result.Stats.ElementCount,
		cacheHit:     result.CacheInfo.RenderHit,
	})
}

// spinnerHooks advances the spinner message as the pipeline moves between stages.
type spinnerHooks struct {
	observability.NoopPipelineHooks
	spinner *Spinner
}

func (h *spinnerHooks) OnBuildStart(_ context.Context, name string, _ int) {
	h.spinner.SetMessage(fmt.Sprintf("Building %s...", name))
}

func (h *spinnerHooks) OnRenderStart(_ context.Context, formats []string) {
	h.spinner.SetMessage(fmt.Sprintf("Rendering %s...", strings.Join(formats, ", ")))
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams bundles everything writeArtifacts needs to place
// rendered outputs on disk and summarize the run.
type artifactWriteParams struct {
	artifacts    map[string][]byte
	formats      []string
	input        string
	output       string
	name         string
	shapeCount   int
	elementCount int
	cacheHit     bool
}

// writeArtifacts writes one file per format and prints a summary.
// A single format honors the output path exactly; multiple formats share
// a base path and get one extension each.
func writeArtifacts(p artifactWriteParams) error {
	base := basePath(p.output, p.input)

	paths := make([]string, 0, len(p.formats))
	for _, format := range p.formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("no %s artifact produced", format)
		}

		path := p.output
		if path == "" || len(p.formats) > 1 {
			path = base + "." + format
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	printSuccess("Rendered %s", p.name)
	printStats(p.shapeCount, p.elementCount, p.cacheHit)
	for _, path := range paths {
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := render.ParseFormat(strings.TrimPrefix(ext, ".")); err == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
