package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// SiteConfig contains metadata about the generated site
type SiteConfig struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Language    string `toml:"language"` // Locale tag driving collation, e.g. "da" or "hu_HU"
	DataFile    string `toml:"data-file"`
	MediaDir    string `toml:"media-dir"`
	Footer      string `toml:"footer"`
}

// DefaultSiteConfig returns a site config with defaults
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		Title:    "My Family Tree",
		Language: "en",
		DataFile: "data/tree.xml",
		MediaDir: "data/media",
	}
}

// BuildConfig contains build settings
type BuildConfig struct {
	BuildDir string `toml:"build-dir"`
}

// DefaultBuildConfig returns a build config with defaults
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		BuildDir: "site",
	}
}

// ReportConfig controls which pages are generated and how
type ReportConfig struct {
	IncludeUnusedMedia bool `toml:"include-unused-media"`
	ThumbsOnly         bool `toml:"thumbs-only"`
	Gendex             bool `toml:"gendex"`
	ThumbnailSize      int  `toml:"thumbnail-size"`
	MaxImageWidth      int  `toml:"max-image-width"`
}

// DefaultReportConfig returns report settings with defaults
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		ThumbnailSize: 200,
		MaxImageWidth: 800,
	}
}

// Config is the top-level configuration
type Config struct {
	Site   SiteConfig   `toml:"site"`
	Build  BuildConfig  `toml:"build"`
	Report ReportConfig `toml:"report"`
}

// NewDefaultConfig returns a config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Site:   DefaultSiteConfig(),
		Build:  DefaultBuildConfig(),
		Report: DefaultReportConfig(),
	}
}

// LoadFromFile loads configuration from a site.toml file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromString(string(data))
}

// LoadFromString loads configuration from a TOML string
func LoadFromString(content string) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := toml.Unmarshal([]byte(content), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.UpdateFromEnv()
	return cfg, nil
}

// UpdateFromEnv updates config from environment variables
// Variables starting with KINSITE_ are used
// KINSITE_FOO_BAR -> foo-bar
// KINSITE_FOO__BAR -> foo.bar
func (c *Config) UpdateFromEnv() {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "KINSITE_") {
			continue
		}

		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimPrefix(parts[0], "KINSITE_")
		value := parts[1]

		configKey := strings.ToLower(key)
		configKey = strings.ReplaceAll(configKey, "__", ".")
		configKey = strings.ReplaceAll(configKey, "_", "-")

		c.Set(configKey, value)
	}
}

// Set sets a configuration value using dot notation (e.g., "site.title")
func (c *Config) Set(key, value string) {
	parts := strings.SplitN(key, ".", 2)
	if len(parts) != 2 {
		return
	}

	switch parts[0] {
	case "site":
		c.setSiteValue(parts[1], value)
	case "build":
		c.setBuildValue(parts[1], value)
	case "report":
		c.setReportValue(parts[1], value)
	}
}

func (c *Config) setSiteValue(key, value string) {
	switch strings.ToLower(key) {
	case "title":
		c.Site.Title = value
	case "description":
		c.Site.Description = value
	case "language":
		c.Site.Language = value
	case "data-file":
		c.Site.DataFile = value
	case "media-dir":
		c.Site.MediaDir = value
	case "footer":
		c.Site.Footer = value
	}
}

func (c *Config) setBuildValue(key, value string) {
	switch strings.ToLower(key) {
	case "build-dir":
		c.Build.BuildDir = value
	}
}

func (c *Config) setReportValue(key, value string) {
	switch strings.ToLower(key) {
	case "include-unused-media":
		c.Report.IncludeUnusedMedia = strings.ToLower(value) == "true"
	case "thumbs-only":
		c.Report.ThumbsOnly = strings.ToLower(value) == "true"
	case "gendex":
		c.Report.Gendex = strings.ToLower(value) == "true"
	case "thumbnail-size":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			c.Report.ThumbnailSize = n
		}
	case "max-image-width":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			c.Report.MaxImageWidth = n
		}
	}
}
