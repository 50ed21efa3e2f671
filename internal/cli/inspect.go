package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/svgsmith/svgsmith/pkg/inspect"
	"github.com/svgsmith/svgsmith/pkg/scene"
)

// inspectCommand creates the inspect command for structure diagrams.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		format   string
		output   string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [scene.toml]",
		Short: "Visualize the element structure of a scene",
		Long: `Visualize the element structure of a scene.

The inspect command builds the scene and emits a Graphviz diagram of the
document tree: the root svg node with one child per element. Use --detailed
to include attributes and text content in the node labels.

The dot format prints to stdout; svg, png, and pdf are rendered with the
embedded Graphviz engine and written next to the manifest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(args[0], format, output, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png, pdf")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout for dot)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include attributes and text in node labels")

	return cmd
}

// runInspect builds the scene and renders its structure diagram.
func (c *CLI) runInspect(input, format, output string, detailed bool) error {
	prog := newProgress(c.Logger)

	sc, err := scene.Load(input)
	if err != nil {
		return err
	}
	doc, err := sc.Build()
	if err != nil {
		return fmt.Errorf("inspect %s: %w", input, err)
	}

	dot := inspect.ToDOT(doc, inspect.Options{Detailed: detailed})

	var data []byte
	switch format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = inspect.RenderSVG(dot)
	case "png":
		data, err = inspect.RenderPNG(dot, 2.0)
	case "pdf":
		data, err = inspect.RenderPDF(dot)
	default:
		return fmt.Errorf("unknown format: %s (must be 'dot', 'svg', 'png', or 'pdf')", format)
	}
	if err != nil {
		return fmt.Errorf("inspect %s: %w", input, err)
	}
	prog.done(fmt.Sprintf("Inspected %s", input))

	// DOT with no explicit output goes to stdout for piping into graphviz.
	if format == "dot" && output == "" {
		fmt.Print(dot)
		return nil
	}

	path := output
	if path == "" {
		path = strings.TrimSuffix(input, ".toml") + "_structure." + format
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	printSuccess("Inspected %s", sc.Name)
	printFile(path)
	return nil
}
