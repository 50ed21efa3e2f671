package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// scenesCommand creates the scenes command for browsing the scene store.
func (c *CLI) scenesCommand() *cobra.Command {
	var (
		storeKind string
		mongoURI  string
		output    string
		plain     bool
		limit     int
	)

	cmd := &cobra.Command{
		Use:   "scenes",
		Short: "Browse scenes stored by the server",
		Long: `Browse scenes stored by the server.

The scenes command lists the manifests saved through the HTTP API and lets
you pick one interactively. The selected manifest is printed to stdout (or
written with --output) so it can be edited or rendered locally.

Use --plain for a non-interactive listing.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runScenes(cmd.Context(), storeKind, mongoURI, output, plain, limit)
		},
	}

	cmd.Flags().StringVar(&storeKind, "store", "mongo", "scene store backend: mongo, memory")
	cmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string (default mongodb://localhost:27017)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the selected manifest to a file instead of stdout")
	cmd.Flags().BoolVar(&plain, "plain", false, "print a non-interactive listing")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of scenes to list (0 = all)")

	return cmd
}

// runScenes lists stored scenes and runs the interactive picker.
func (c *CLI) runScenes(ctx context.Context, storeKind, mongoURI, output string, plain bool, limit int) error {
	st, err := newStore(ctx, storeKind, mongoURI)
	if err != nil {
		return fmt.Errorf("connect scene store: %w", err)
	}
	defer st.Close(ctx)

	docs, err := st.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("list scenes: %w", err)
	}
	if len(docs) == 0 {
		printInfo("No scenes stored yet")
		printNextStep("Start the server and create one", "svgsmith serve")
		return nil
	}

	if plain {
		for _, doc := range docs {
			printKeyValue(doc.Name, fmt.Sprintf("%s · %s · %s",
				shortID(doc.ID), formatSize(len(doc.Scene)), formatRelativeTime(doc.UpdatedAt)))
		}
		return nil
	}

	p := tea.NewProgram(NewSceneListModel(docs))
	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("scene picker: %w", err)
	}

	fm, ok := finalModel.(SceneListModel)
	if !ok || fm.Selected == nil {
		printDetail("No selection made")
		return nil
	}

	if output == "" {
		_, err := os.Stdout.Write(fm.Selected.Scene)
		return err
	}
	if err := os.WriteFile(output, fm.Selected.Scene, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	printSuccess("Saved %s", fm.Selected.Name)
	printFile(output)
	printNewline()
	printNextStep("Render it", fmt.Sprintf("svgsmith render %s", output))
	return nil
}
