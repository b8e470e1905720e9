package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roadmap/pkg/pipeline"
)

// renderCommand creates the render command: document in, files out.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [document|builtin:name]",
		Short: "Render a roadmap to SVG, HTML, JSON, PNG, PDF or DOT",
		Long: `Render a roadmap document.

The document may be a TOML, YAML or JSON file, or one of the builtin
roadmaps (builtin:deep-learning, builtin:starter). Edges whose endpoints
are missing are skipped with a warning; the rest of the roadmap renders.

The html format produces a standalone page with a clickable detail drawer.
PNG and PDF output require rsvg-convert on PATH.`,
		Example: `  # Interactive page for the builtin roadmap
  roadmap render builtin:deep-learning -f html

  # SVG with the drawer open on one topic
  roadmap render roadmap.toml --selected pytorch --drawer

  # Several formats at once, dark theme
  roadmap render roadmap.yaml -f svg,png,json --style dark -o out/roadmap`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = args[0]
			opts.Formats = parseFormats(formatsStr)
			if err := c.applyConfig(cmd, &opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), html, json, png, pdf, dot (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: light (default), dark")
	cmd.Flags().StringVar(&opts.Selected, "selected", "", "node id to highlight")
	cmd.Flags().BoolVar(&opts.Drawer, "drawer", false, "draw the detail panel for --selected into static output")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runRender executes the pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, w, errw io.Writer, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, errw, "Rendering "+opts.Source+"...")
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	paths, err := writeArtifacts(w, result.Artifacts, opts.Formats, output, opts.Source)
	if err != nil {
		return err
	}
	prog.done("render complete", "files", len(paths))

	if output == "-" {
		return nil
	}
	printSuccess(w, "Rendered %s", result.Graph.Meta().Title)
	for _, p := range paths {
		printFile(w, p)
	}
	printStats(w, result.Stats.NodeCount, result.Stats.EdgeCount, result.Stats.Skipped,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)
	return nil
}

// writeArtifacts writes artifacts in format order and returns the paths
// written. A single format honors output verbatim; several formats share
// output as a base path.
func writeArtifacts(w io.Writer, artifacts map[string][]byte, formats []string, output, source string) ([]string, error) {
	if output == "-" && len(formats) > 1 {
		return nil, fmt.Errorf("cannot write %d formats to stdout", len(formats))
	}
	base := basePath(output, source)
	var paths []string
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			continue
		}
		path := base + "." + f
		if len(formats) == 1 && output != "" {
			path = output
		}
		if err := writeFile(w, data, path); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
