package config

import (
	"time"

	"github.com/uchiverify/site/internal/demo"
	"github.com/uchiverify/site/internal/logging"
	"github.com/uchiverify/site/internal/showcase"
)

// Log formats.
const (
	LogConsole = logging.FormatConsole
	LogJSON    = logging.FormatJSON
)

// Config is the top-level site configuration, corresponding to .uchiverify.yml.
type Config struct {
	Site     SiteConfig     `yaml:"site" koanf:"site"`
	Content  ContentConfig  `yaml:"content" koanf:"content"`
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Browser  BrowserConfig  `yaml:"browser" koanf:"browser"`
	Demo     DemoConfig     `yaml:"demo" koanf:"demo"`
	Showcase ShowcaseConfig `yaml:"showcase" koanf:"showcase"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
}

// SiteConfig describes the page and the static build.
type SiteConfig struct {
	Title       string `yaml:"title" koanf:"title"`
	Description string `yaml:"description" koanf:"description"`
	BaseURL     string `yaml:"base_url" koanf:"base_url"`
	OutputDir   string `yaml:"output_dir" koanf:"output_dir"`
}

// ContentConfig points at content that replaces the built-in FAQ, commands
// and showcase.
type ContentConfig struct {
	Dir     string   `yaml:"dir" koanf:"dir"`
	Include []string `yaml:"include" koanf:"include"`
}

// ServerConfig holds settings for serve.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" koanf:"shutdown_timeout"`
}

// BrowserConfig tunes the docs browser.
type BrowserConfig struct {
	CompactBreakpoint int `yaml:"compact_breakpoint" koanf:"compact_breakpoint"`
}

// DemoConfig tunes the verification demo.
type DemoConfig struct {
	VisibilityThreshold float64       `yaml:"visibility_threshold" koanf:"visibility_threshold"`
	LeadIn              time.Duration `yaml:"lead_in" koanf:"lead_in"`
	ReplayDelay         time.Duration `yaml:"replay_delay" koanf:"replay_delay"`
	Layout              demo.Layout   `yaml:"layout" koanf:"layout"`
}

// ShowcaseConfig tunes the command carousel.
type ShowcaseConfig struct {
	TypeInterval  time.Duration `yaml:"type_interval" koanf:"type_interval"`
	ResponsePause time.Duration `yaml:"response_pause" koanf:"response_pause"`
	Meta          showcase.Meta `yaml:"meta" koanf:"meta"`
}

// LogConfig selects the logger.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
