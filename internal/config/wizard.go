package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// contentMarkers are files that suggest the working directory already holds
// site content.
var contentMarkers = []string{"content", "faq.yaml", "commands.yaml"}

// detectContentDir returns a likely content directory, or "" for the
// built-in content.
func detectContentDir() string {
	for _, marker := range contentMarkers {
		info, err := os.Stat(marker)
		if err != nil {
			continue
		}
		if info.IsDir() {
			return marker
		}
		return "."
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to UChiVerify! Let's configure the site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.Site.Title,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.Site.Title = strings.TrimSpace(title)

	// 2. Content.
	contentDir := detectContentDir()
	if contentDir != "" {
		fmt.Printf("Found content in %s\n\n", contentDir)
	}
	contentPrompt := promptui.Prompt{
		Label:   "Content directory (leave blank for the built-in FAQ and commands)",
		Default: contentDir,
	}
	dir, err := contentPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	cfg.Content.Dir = strings.TrimSpace(dir)

	if cfg.Content.Dir != "" {
		includePrompt := promptui.Prompt{
			Label:   "Content files (comma-separated globs)",
			Default: strings.Join(cfg.Content.Include, ","),
		}
		includeStr, err := includePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content files: %w", err)
		}
		if include := splitAndTrim(includeStr); len(include) > 0 {
			cfg.Content.Include = include
		}
	}

	// 3. Static build output.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static build",
		Default: cfg.Site.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.Site.OutputDir = strings.TrimSpace(outputDir)

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:    "Port for serve",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 5. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console - human readable",
			"json    - one object per line",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = []string{LogConsole, LogJSON}[formatIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("must be between 0 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
