// Package cli implements the roadmap command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/roadmap/internal/config"
	"github.com/matzehuels/roadmap/pkg/buildinfo"
	"github.com/matzehuels/roadmap/pkg/cache"
	rerrors "github.com/matzehuels/roadmap/pkg/errors"
	"github.com/matzehuels/roadmap/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "roadmap"

	// mongoDatabase is the database used by the mongo cache backend.
	mongoDatabase = "roadmap"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config
}

// New creates a new CLI instance with a default logger and configuration.
// The configuration file is read lazily by RootCommand's pre-run hook.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// LoadConfig replaces the default configuration with the user's config
// file and environment.
func (c *CLI) LoadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.Config = cfg
	c.Logger.Debug("loaded config", "path", config.Path(), "cache", cfg.Cache.Backend, "theme", cfg.Render.Theme)
	return nil
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Roadmap renders learning roadmaps as connected node diagrams",
		Long:         `Roadmap is a CLI tool for rendering learning roadmaps: nodes joined by straight or rounded elbow connectors, with a detail drawer for the selected topic.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.LoadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	cache, err := c.openCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

// openCache opens the configured backend. A file cache without a usable
// directory degrades to no caching.
func (c *CLI) openCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	cc := c.Config.Cache
	cfg := cache.Config{
		Backend:         cc.Backend,
		Dir:             cc.Dir,
		MongoDatabase:   cc.MongoDatabase,
		MongoCollection: cc.MongoCollection,
	}
	switch cc.Backend {
	case cache.BackendRedis:
		cfg.URL = cc.RedisAddr
	case cache.BackendMongo:
		cfg.URL = cc.MongoURI
		if cfg.MongoDatabase == "" {
			cfg.MongoDatabase = mongoDatabase
		}
	case "", cache.BackendFile:
		if cfg.Dir == "" {
			dir, err := cacheDir()
			if err != nil {
				c.Logger.Warn("cache directory unavailable, caching disabled", "error", err)
				return cache.NewNullCache(), nil
			}
			cfg.Dir = dir
		}
	}
	cch, err := cache.Open(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open %s cache: %w", cc.Backend, err)
	}
	return cch, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/roadmap/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// addLayoutFlags registers the flags shared by commands that build a scene.
func addLayoutFlags(cmd *cobra.Command, opts *pipeline.Options) {
	cmd.Flags().StringVarP(&opts.VizType, "type", "t", "", "visualization type: roadmap (default), nodelink")
	cmd.Flags().Float64Var(&opts.Radius, "radius", 0, "elbow corner radius (default from config)")
	cmd.Flags().Float64Var(&opts.Margin, "margin", 0, "frame margin (default from config)")
	cmd.Flags().Float64Var(&opts.OffsetX, "offset-x", 0, "fixed horizontal offset (disables automatic framing)")
	cmd.Flags().Float64Var(&opts.OffsetY, "offset-y", 0, "fixed vertical offset (disables automatic framing)")
}

// checkRadius rejects a --radius flag that is not positive. Zero means
// unset to the router and the pipeline.
func checkRadius(cmd *cobra.Command) error {
	f := cmd.Flags().Lookup("radius")
	if f == nil || !f.Changed {
		return nil
	}
	r, err := cmd.Flags().GetFloat64("radius")
	if err != nil {
		return err
	}
	if r <= 0 {
		return rerrors.New(rerrors.ErrCodeInvalidInput, "--radius must be positive, got %g", r)
	}
	return nil
}

// applyConfig fills options the user left unset from the configuration and
// marks the offset fixed when either offset flag was given.
func (c *CLI) applyConfig(cmd *cobra.Command, opts *pipeline.Options) error {
	if err := checkRadius(cmd); err != nil {
		return err
	}
	if opts.Radius == 0 {
		opts.Radius = c.Config.Render.Radius
	}
	if opts.Margin == 0 {
		opts.Margin = c.Config.Render.Margin
	}
	if opts.Style == "" {
		opts.Style = c.Config.Render.Theme
	}
	if cmd.Flags().Changed("offset-x") || cmd.Flags().Changed("offset-y") {
		opts.FixedOffset = true
	}
	opts.Logger = c.Logger
	return nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// basePath derives the base output path from the output and source.
// Builtin sources are named after the builtin; known format extensions
// are stripped from an explicit output.
func basePath(output, source string) string {
	if output == "" {
		source = strings.TrimPrefix(source, "builtin:")
		return strings.TrimSuffix(source, filepath.Ext(source))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeFile writes data to path, or to w when path is "-".
func writeFile(w io.Writer, data []byte, path string) error {
	if path == "-" {
		_, err := w.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
