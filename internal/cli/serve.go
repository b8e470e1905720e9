package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roadmap/internal/server"
	"github.com/matzehuels/roadmap/pkg/observability"
	"github.com/matzehuels/roadmap/pkg/pipeline"
	"github.com/matzehuels/roadmap/pkg/roadmap/builtin"
)

const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command, an HTTP viewer for one roadmap.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		listen  string
		watch   bool
		noCache bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "serve [document|builtin:name]",
		Short: "Serve a roadmap as an interactive web page",
		Long: `Serve a roadmap over HTTP.

The page at / is the interactive viewer. The scene is available at
/layout.json, drawer details at /api/nodes/{id} and Prometheus metrics at
/metrics. With --watch the document is reloaded whenever it changes.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Source = args[0]
			if err := c.applyConfig(cmd, &opts); err != nil {
				return err
			}
			if listen == "" {
				listen = c.Config.Serve.Listen
			}
			if !cmd.Flags().Changed("watch") {
				watch = c.Config.Serve.Watch
			}
			return c.runServe(cmd.Context(), opts, listen, watch, noCache)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config, 127.0.0.1:8080)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload when the document changes")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.Style, "style", "", "visual style: light (default), dark")
	cmd.Flags().Float64Var(&opts.Radius, "radius", 0, "elbow corner radius (default from config)")
	cmd.Flags().Float64Var(&opts.Margin, "margin", 0, "frame margin (default from config)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts pipeline.Options, listen string, watch, noCache bool) error {
	if watch && strings.HasPrefix(opts.Source, builtin.Prefix) {
		return fmt.Errorf("--watch needs a document file, not %s", opts.Source)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewPrometheus(reg)
	metrics.Register()
	defer observability.Reset()

	srv := server.New(runner, opts, server.WithLogger(c.Logger), server.WithMetrics(metrics.Handler()))
	if err := srv.Reload(ctx); err != nil {
		return err
	}
	if watch {
		if err := srv.Watch(ctx, opts.Source, server.DefaultDebounce); err != nil {
			return err
		}
		c.Logger.Info("watching for changes", "path", opts.Source)
	}

	httpServer := &http.Server{
		Addr:              listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- httpServer.ListenAndServe()
	}()
	c.Logger.Info("serving roadmap", "url", "http://"+listen, "source", opts.Source)

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return ctx.Err()
	}
}
