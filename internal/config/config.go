// Package config provides configuration management for go-bootstrapcdn.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// DefaultPort is used when the config file does not set one.
	DefaultPort = 3000

	// DefaultSiteURL is the canonical base URL used in sitemap output.
	DefaultSiteURL = "https://www.bootstrapcdn.com"
)

// DeploymentMode selects production vs development behavior. It is passed
// explicitly into server construction so handlers never read the environment.
type DeploymentMode int

const (
	ModeDevelopment DeploymentMode = iota
	ModeProduction
)

// ParseMode maps a mode string to a DeploymentMode, defaulting to development.
func ParseMode(s string) DeploymentMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "production", "prod":
		return ModeProduction
	}
	return ModeDevelopment
}

func (m DeploymentMode) String() string {
	if m == ModeProduction {
		return "production"
	}
	return "development"
}

// IsProduction reports whether the server runs in production mode.
func (m DeploymentMode) IsProduction() bool {
	return m == ModeProduction
}

// VersionRecord describes one published release of a hosted library.
// Javascript is empty for libraries that ship CSS only (Font Awesome).
type VersionRecord struct {
	Version     string `yaml:"version"`
	CSSComplete string `yaml:"css_complete"`
	Javascript  string `yaml:"javascript,omitempty"`
}

// SiteConfig holds the site configuration loaded once at startup.
// Extra carries every top-level YAML key not covered by a typed field;
// templates consume it untyped.
type SiteConfig struct {
	Port        int             `yaml:"port"`
	SiteURL     string          `yaml:"siteurl"`
	Bootstrap   []VersionRecord `yaml:"bootstrap"`
	Fontawesome []VersionRecord `yaml:"fontawesome"`
	Extra       map[string]any  `yaml:"-"`
}

// typedKeys are stripped from the pass-through bag after decoding.
var typedKeys = []string{"port", "siteurl", "bootstrap", "fontawesome"}

// Load reads and parses the YAML config file. Any error here is fatal to
// the caller: the server must not start serving with a broken config.
func Load(path string) (*SiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg SiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Second decode into a plain map to capture template-only keys.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	for _, key := range typedKeys {
		delete(raw, key)
	}
	cfg.Extra = raw

	if len(cfg.Bootstrap) == 0 {
		return nil, fmt.Errorf("config %s: missing required key 'bootstrap'", path)
	}
	if len(cfg.Fontawesome) == 0 {
		return nil, fmt.Errorf("config %s: missing required key 'fontawesome'", path)
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.SiteURL == "" {
		cfg.SiteURL = DefaultSiteURL
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")

	return &cfg, nil
}
