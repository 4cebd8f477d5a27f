package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/uchiverify/site/internal/logging"
)

// EnvPrefix starts every environment override. A double underscore separates
// nested keys: UCHIVERIFY_SERVER__PORT sets server.port.
const EnvPrefix = "UCHIVERIFY_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (UCHIVERIFY_*). A missing file is not an
// error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps UCHIVERIFY_DEMO__LEAD_IN to demo.lead_in.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Site.Title == "" {
		return fmt.Errorf("site.title is required")
	}
	if c.Site.OutputDir == "" {
		return fmt.Errorf("site.output_dir is required")
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d: must be between 0 and 65535", c.Server.Port)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("server.shutdown_timeout must be non-negative")
	}

	if c.Browser.CompactBreakpoint <= 0 {
		return fmt.Errorf("browser.compact_breakpoint must be positive")
	}

	if c.Demo.VisibilityThreshold <= 0 || c.Demo.VisibilityThreshold > 1 {
		return fmt.Errorf("invalid demo.visibility_threshold %g: must be in (0, 1]", c.Demo.VisibilityThreshold)
	}
	if c.Demo.LeadIn <= 0 {
		return fmt.Errorf("demo.lead_in must be positive")
	}
	if c.Demo.ReplayDelay <= 0 {
		return fmt.Errorf("demo.replay_delay must be positive")
	}

	if c.Showcase.TypeInterval <= 0 {
		return fmt.Errorf("showcase.type_interval must be positive")
	}
	if c.Showcase.ResponsePause <= 0 {
		return fmt.Errorf("showcase.response_pause must be positive")
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	if c.Log.Format != LogConsole && c.Log.Format != LogJSON {
		return fmt.Errorf("invalid log.format %q: must be one of console, json", c.Log.Format)
	}

	return nil
}
