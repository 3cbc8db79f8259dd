package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/slidekit/internal/catalog"
	"github.com/alexisbeaulieu97/slidekit/internal/ui/components"
	"github.com/alexisbeaulieu97/slidekit/pkg/diff"
)

type renderOptions struct {
	width  int
	theme  string
	ascii  bool
	golden string
	update bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <config>",
		Short: "Print every slider of a catalog once",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 0, "Width available to horizontal tracks (0 uses the default track length)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "Theme override ("+strings.Join(components.ThemeNames, ", ")+")")
	cmd.Flags().BoolVar(&opts.ascii, "ascii", false, "Draw with ASCII glyphs")
	cmd.Flags().StringVar(&opts.golden, "golden", "", "Compare the plain ASCII rendering with this file instead of printing it")
	cmd.Flags().BoolVar(&opts.update, "update", false, "Rewrite the --golden file with the current rendering")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts *renderOptions, path string) error {
	cfg, err := loadConfig("render", path)
	if err != nil {
		return err
	}
	if opts.width < 0 {
		return newCommandError("render", "reading flags", fmt.Errorf("width must not be negative, got %d", opts.width), "Pass --width 0 or a positive width.")
	}

	if opts.update && opts.golden == "" {
		return newCommandError("render", "reading flags", errors.New("--update needs --golden"), "Name the golden file to rewrite.")
	}

	theme, err := resolveTheme(opts.theme, cfg, opts.ascii || opts.golden != "", cmd.OutOrStdout())
	if err != nil {
		return newCommandError("render", "resolving theme", err, "Pick one of the listed themes.")
	}

	log, err := root.newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return newCommandError("render", "configuring logging", err, "Use one of debug, info, warn or error.")
	}

	cat, err := catalog.Build(cfg, catalog.Options{Logger: log})
	if err != nil {
		return newCommandError("render", "building sliders", err, "Check the bounds and default values of the reported sliders.")
	}
	defer cat.Close()

	ctx := components.DefaultContext().WithTheme(theme).WithWidth(opts.width)
	output := renderCatalog(cat, ctx) + "\n"
	if opts.golden == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}
	return compareGolden(cmd, opts, ansi.Strip(output))
}

func compareGolden(cmd *cobra.Command, opts *renderOptions, rendered string) error {
	if opts.update {
		if err := os.WriteFile(opts.golden, []byte(rendered), 0o644); err != nil {
			return newCommandError("render", "writing golden file", err, "Check that the directory exists and is writable.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", opts.golden)
		return nil
	}

	want, err := os.ReadFile(opts.golden)
	if err != nil {
		return newCommandError("render", "reading golden file", err, "Create it first with --update.")
	}

	if d := diff.Unified(want, []byte(rendered), opts.golden, "render"); d != "" {
		fmt.Fprint(cmd.OutOrStdout(), d)
		return newCommandError("render", "comparing with golden file", fmt.Errorf("rendering differs from %s", opts.golden), "Review the diff, then rerun with --update to accept it.")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "matches %s\n", opts.golden)
	return nil
}

// renderCatalog draws the header and every slider, separated by blank lines.
func renderCatalog(cat *catalog.Catalog, ctx components.RenderContext) string {
	items := []components.ContextualRenderable{
		components.NewHeader(cat.Name()).WithSubtitle(cat.Description()),
	}
	for _, e := range cat.Entries() {
		items = append(items, components.NewSliderView(e.Label(), e.Controller.Frame()))
	}

	sections := make([]string, 0, len(items))
	for _, item := range items {
		sections = append(sections, item.ViewWithContext(ctx))
	}
	return strings.Join(sections, "\n\n")
}
