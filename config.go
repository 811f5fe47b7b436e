package inkpress

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// SiteConfig holds all configuration for an inkpress site. Values come from
// an optional site.yml, overridden by environment variables; zero values
// fall back to defaults.
type SiteConfig struct {
	Name        string `yaml:"name"`        // Site name (default "Blog")
	URL         string `yaml:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags
	Author      string `yaml:"author"`      // Author name for JSON-LD

	Addr       string `yaml:"addr"`        // Preview listen address (default ":3000")
	ContentDir string `yaml:"content_dir"` // Source documents (default "content")
	OutputDir  string `yaml:"output_dir"`  // Build output (default "dist")
	StaticDir  string `yaml:"static_dir"`  // Static assets (default "public")

	Workers          int  `yaml:"workers"`           // Build worker count (default NumCPU)
	StrictDirectives bool `yaml:"strict_directives"` // Fail on unknown directives
	IncludeDrafts    bool `yaml:"include_drafts"`    // List drafts in output and feeds
	FeedLimit        int  `yaml:"feed_limit"`        // Max RSS items (default 20)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.FeedLimit <= 0 {
		c.FeedLimit = 20
	}
}

// applyEnv overrides config fields from environment variables so deployments
// can adjust a site without editing site.yml.
func (c *SiteConfig) applyEnv() {
	c.Name = EnvOr("SITE_NAME", c.Name)
	c.URL = strings.TrimSuffix(EnvOr("SITE_URL", c.URL), "/")
	c.Description = EnvOr("SITE_DESCRIPTION", c.Description)
	c.Author = EnvOr("SITE_AUTHOR", c.Author)
	c.Addr = EnvOr("ADDR", c.Addr)
	c.ContentDir = EnvOr("CONTENT_DIR", c.ContentDir)
	c.OutputDir = EnvOr("OUTPUT_DIR", c.OutputDir)
	c.StaticDir = EnvOr("STATIC_DIR", c.StaticDir)
	if strings.EqualFold(os.Getenv("STRICT_DIRECTIVES"), "true") {
		c.StrictDirectives = true
	}
	if strings.EqualFold(os.Getenv("INCLUDE_DRAFTS"), "true") {
		c.IncludeDrafts = true
	}
}

// LoadSiteConfig reads path as YAML, applies environment overrides, and
// fills in defaults. A missing file is not an error: env vars and defaults
// alone describe a usable site.
func LoadSiteConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return SiteConfig{}, fmt.Errorf("inkpress: parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return SiteConfig{}, fmt.Errorf("inkpress: read %s: %w", path, err)
	}
	cfg.applyEnv()
	cfg.setDefaults()
	return cfg, nil
}

// EnvOr returns the value of the environment variable key, or fallback if
// empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the preview server's Echo
// instance before it starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithImageSizer replaces the default static-dir image prober used to fill
// in missing image directive dimensions.
func WithImageSizer(sizer func(src string) (int, int, bool)) Option {
	return func(a *App) {
		a.sizer = sizer
	}
}
