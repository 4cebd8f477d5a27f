package config

import (
	"slices"
	"time"

	"github.com/uchiverify/site/internal/browser"
	"github.com/uchiverify/site/internal/content"
	"github.com/uchiverify/site/internal/demo"
	"github.com/uchiverify/site/internal/showcase"
	"github.com/uchiverify/site/internal/site"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = ".uchiverify.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Title:       "UChiVerify",
			Description: site.DefaultDescription,
			OutputDir:   "public",
		},
		Content: ContentConfig{
			Include: slices.Clone(content.DefaultInclude),
		},
		Server: ServerConfig{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Browser: BrowserConfig{
			CompactBreakpoint: browser.DefaultCompactBreakpoint,
		},
		Demo: DemoConfig{
			VisibilityThreshold: demo.DefaultVisibilityThreshold,
			LeadIn:              demo.DefaultLeadIn,
			ReplayDelay:         demo.DefaultReplayDelay,
			Layout:              demo.DefaultLayout(),
		},
		Showcase: ShowcaseConfig{
			TypeInterval:  showcase.DefaultTypeInterval,
			ResponsePause: showcase.DefaultResponsePause,
			Meta:          showcase.DefaultMeta(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: LogConsole,
		},
	}
}
