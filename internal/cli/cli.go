// Package cli implements the matte command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/matte/pkg/cache"
	"github.com/matzehuels/matte/pkg/convert"
	"github.com/matzehuels/matte/pkg/editor"
	"github.com/matzehuels/matte/pkg/fonts"
	"github.com/matzehuels/matte/pkg/layout"
	"github.com/matzehuels/matte/pkg/preview"
	"github.com/matzehuels/matte/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "matte"

	envConvert = "MATTE_CONVERT" // convert binary when --convert is not given
	envHome    = "MATTE_HOME"    // overrides the config directory
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

	// Runner runs convert. Nil uses convert.ExecRunner.
	Runner convert.ProcessRunner

	binary    string
	templates string
	noCache   bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Factories
// =============================================================================

func (c *CLI) runner() convert.ProcessRunner {
	if c.Runner == nil {
		return convert.ExecRunner{}
	}
	return c.Runner
}

func (c *CLI) newCache() (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// catalog returns the built-in templates plus any loaded with --templates.
func (c *CLI) catalog() (layout.Catalog, error) {
	cat := layout.Builtin()
	if c.templates == "" {
		return cat, nil
	}
	extra, err := layout.LoadFile(c.templates)
	if err != nil {
		return nil, err
	}
	return cat.With(extra...)
}

func (c *CLI) store() (*session.FileStore, error) {
	dir, err := configDir()
	if err != nil {
		return nil, err
	}
	return session.NewFileStore(filepath.Join(dir, "sessions"))
}

func (c *CLI) fontLister() (*fonts.Lister, error) {
	ch, err := c.newCache()
	if err != nil {
		return nil, err
	}
	return fonts.NewLister(c.runner(), c.binary, ch, c.Logger), nil
}

func (c *CLI) diagrams() (*preview.Diagrams, error) {
	ch, err := c.newCache()
	if err != nil {
		return nil, err
	}
	return preview.NewDiagrams(ch), nil
}

// editor builds a controller holding the last auto-saved document.
func (c *CLI) editor(ctx context.Context) (*editor.Controller, error) {
	cat, err := c.catalog()
	if err != nil {
		return nil, err
	}
	store, err := c.store()
	if err != nil {
		return nil, err
	}
	lister, err := c.fontLister()
	if err != nil {
		return nil, err
	}
	ctl := editor.New(editor.Options{
		Catalog:  cat,
		Store:    store,
		Renderer: convert.NewRenderer(c.runner(), c.binary, c.Logger),
		Fonts:    lister,
		Logger:   c.Logger,
	})
	if err := ctl.Restore(ctx); err != nil {
		return nil, err
	}
	return ctl, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/matte/).
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

// configDir returns $MATTE_HOME, or the XDG config directory (~/.config/matte/).
func configDir() (string, error) {
	if dir := os.Getenv(envHome); dir != "" {
		return dir, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
