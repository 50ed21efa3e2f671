package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/svgsmith/svgsmith/pkg/scene"
)

// validateCommand creates the validate command for checking manifests.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [scene.toml]",
		Short: "Check a scene manifest without writing output",
		Long: `Check a scene manifest without writing output.

The validate command parses the manifest and builds the SVG document
in memory, reporting the first problem it finds. Nothing is written
to disk or to the cache.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0])
		},
	}
}

// runValidate loads and builds the scene, discarding the document.
func (c *CLI) runValidate(path string) error {
	prog := newProgress(c.Logger)

	sc, err := scene.Load(path)
	if err != nil {
		return err
	}

	doc, err := sc.Build()
	if err != nil {
		return fmt.Errorf("validate %s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Validated %s", path))

	printSuccess("Scene %q is valid", sc.Name)
	printDetail("%d shapes · %d elements · %.0fx%.0f viewport", len(sc.Shapes), len(doc.Elements()), sc.Width, sc.Height)
	printNewline()
	printNextStep("Render it", fmt.Sprintf("svgsmith render %s", path))
	return nil
}
