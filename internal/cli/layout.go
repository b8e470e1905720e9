package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/roadmap/pkg/graph"
	"github.com/matzehuels/roadmap/pkg/pipeline"
)

// layoutCommand creates the layout command for computing a roadmap scene.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [document|builtin:name]",
		Short: "Compute the positioned scene of a roadmap as JSON",
		Long: `Compute the positioned scene of a roadmap.

The output is the same scene JSON that 'render -f json' produces: node
boxes, connector paths, skipped edges and the frame offset. Results are
cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = args[0]
			if err := c.applyConfig(cmd, &opts); err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json), or - for stdout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style for nodelink scenes: light (default), dark")
	addLayoutFlags(cmd, &opts)

	return cmd
}

// runLayout loads the roadmap, computes the scene, and writes it.
func (c *CLI) runLayout(ctx context.Context, w io.Writer, opts pipeline.Options, output string, noCache bool) error {
	g, err := pipeline.Load(opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.Source, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	scene, cacheHit, err := runner.LayoutWithCacheInfo(ctx, g, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}

	// A fresh layout already warned while building.
	if cacheHit {
		for _, e := range scene.Skipped {
			c.Logger.Warn("skipped edge with missing endpoint", "from", e.From, "to", e.To)
		}
	}

	if output == "-" {
		data, err := graph.MarshalLayout(scene)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", opts.Source) + ".layout.json"
	}
	if err := graph.WriteLayoutFile(scene, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess(w, "Layout complete")
	printFile(w, outputPath)
	printStats(w, g.NodeCount(), g.EdgeCount(), len(scene.Skipped), cacheHit)
	printNextStep(w, "Render", appName+" render "+opts.Source+" -f html")
	return nil
}
