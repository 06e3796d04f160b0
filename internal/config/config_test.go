package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `port: 8080
bootstrap:
  - version: "3.3.7"
    css_complete: "https://x/css"
    javascript: "https://x/js"
fontawesome:
  - version: "4.7.0"
    css_complete: "https://x/fa"
bootswatch: "https://x/bootswatch"
showcase:
  - "one"
  - "two"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "_config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	require.Len(t, cfg.Bootstrap, 1)
	assert.Equal(t, "3.3.7", cfg.Bootstrap[0].Version)
	assert.Equal(t, "https://x/css", cfg.Bootstrap[0].CSSComplete)
	assert.Equal(t, "https://x/js", cfg.Bootstrap[0].Javascript)
	require.Len(t, cfg.Fontawesome, 1)
	assert.Equal(t, "https://x/fa", cfg.Fontawesome[0].CSSComplete)
}

func TestLoadKeepsPassThroughKeys(t *testing.T) {
	cfg, err := Load(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, "https://x/bootswatch", cfg.Extra["bootswatch"])
	assert.Contains(t, cfg.Extra, "showcase")

	// typed keys must not leak into the pass-through bag
	assert.NotContains(t, cfg.Extra, "port")
	assert.NotContains(t, cfg.Extra, "bootstrap")
	assert.NotContains(t, cfg.Extra, "fontawesome")
}

func TestLoadDefaultsPortAndSiteURL(t *testing.T) {
	cfg, err := Load(writeConfig(t, `bootstrap:
  - version: "1.0"
    css_complete: "c"
    javascript: "j"
fontawesome:
  - version: "1.0"
    css_complete: "c"
`))
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultSiteURL, cfg.SiteURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "port: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadMissingRequiredKeys(t *testing.T) {
	_, err := Load(writeConfig(t, "port: 3000\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bootstrap")

	_, err = Load(writeConfig(t, `bootstrap:
  - version: "1.0"
    css_complete: "c"
    javascript: "j"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fontawesome")
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, ModeProduction, ParseMode("production"))
	assert.Equal(t, ModeProduction, ParseMode("PROD"))
	assert.Equal(t, ModeDevelopment, ParseMode("development"))
	assert.Equal(t, ModeDevelopment, ParseMode(""))
	assert.Equal(t, ModeDevelopment, ParseMode("staging"))

	assert.True(t, ModeProduction.IsProduction())
	assert.False(t, ModeDevelopment.IsProduction())
	assert.Equal(t, "production", ModeProduction.String())
	assert.Equal(t, "development", ModeDevelopment.String())
}
