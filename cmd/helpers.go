package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"go.uber.org/zap"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/config"
	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/demo"
	"github.com/uchiverify/site/internal/live"
	"github.com/uchiverify/site/internal/logging"
	"github.com/uchiverify/site/internal/showcase"
	"github.com/uchiverify/site/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `uchiverify init` to create a config file", err)
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the logger described by cfg. It always writes to stderr.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return log, nil
}

// loadContent reads the built-in content or the configured override.
func loadContent(cfg *config.Config) (*content.Store, error) {
	store, err := content.Load(content.Options{
		Dir:     cfg.Content.Dir,
		Include: cfg.Content.Include,
	})
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return store, nil
}

// newViews creates the page templates from cfg.
func newViews(cfg *config.Config) (*site.Views, error) {
	return site.NewViews(site.ViewOptions{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		BaseURL:     cfg.Site.BaseURL,
		Meta:        cfg.Showcase.Meta,
		Breakpoint:  cfg.Browser.CompactBreakpoint,
		Threshold:   cfg.Demo.VisibilityThreshold,
	})
}

// sessionOptions configures every live session from cfg.
func sessionOptions(cfg *config.Config, log *zap.Logger) live.Options {
	return live.Options{
		Browser: browser.Options{
			CompactBreakpoint: cfg.Browser.CompactBreakpoint,
		},
		Demo: demo.Options{
			Layout:              cfg.Demo.Layout,
			VisibilityThreshold: cfg.Demo.VisibilityThreshold,
			LeadIn:              cfg.Demo.LeadIn,
			ReplayDelay:         cfg.Demo.ReplayDelay,
		},
		Showcase: showcase.Options{
			TypeInterval:  cfg.Showcase.TypeInterval,
			ResponsePause: cfg.Showcase.ResponsePause,
		},
		Logger: log,
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
