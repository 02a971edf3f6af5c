package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neume-network/schema/internal/config"
	"github.com/neume-network/schema/internal/mimetype"
)

// isolate points the implicit config locations at empty temp directories.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv(config.EnvRegistryURL, "")
	home := isolate(t)

	cfg, resolved, exists, err := config.Load("")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Equal(t, filepath.Join(home, ".config", "neume-schema", "config.toml"), resolved)
	assert.Equal(t, mimetype.DefaultRegistryURL, cfg.Registry.URL)
	assert.Equal(t, []string{"audio", "font", "image", "text", "video"}, cfg.Registry.Categories)
	assert.Equal(t, 30*time.Second, cfg.RegistryTimeout())
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "schema", cfg.Output.Package)
}

func TestLoadExplicitPathMustExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")
	_, _, _, err := config.Load(path)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), path)

	_, _, _, err = config.Load(t.TempDir())
	require.Error(t, err)
}

func TestLoadPrefersProjectFile(t *testing.T) {
	t.Setenv(config.EnvRegistryURL, "")
	isolate(t)
	require.NoError(t, os.WriteFile("neume-schema.toml", []byte("[server]\nbind = \":7000\"\n"), 0o644))

	cfg, resolved, exists, err := config.Load("")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "neume-schema.toml", filepath.Base(resolved))
	assert.Equal(t, ":7000", cfg.Server.Bind)
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv(config.EnvRegistryURL, "")
	dir := t.TempDir()
	registry := filepath.Join(dir, "db.json")
	path := filepath.Join(dir, "neume.toml")
	content := `
[logging]
level = " DEBUG "
format = "json"

[registry]
path = "` + filepath.ToSlash(registry) + `"
timeout_seconds = 5
categories = ["video", "Audio", "audio"]

[server]
bind = ":9000"

[validation]
fail_fast = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, resolved, exists, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, path, resolved)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, registry, cfg.Registry.Path)
	assert.Equal(t, []string{"audio", "video"}, cfg.Registry.Categories)
	assert.Equal(t, 5*time.Second, cfg.RegistryTimeout())
	assert.Equal(t, ":9000", cfg.Server.Bind)
	assert.True(t, cfg.Validation.FailFast)
	assert.Equal(t, "mimetypes_gen.go", cfg.Output.MimetypeFile)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[registry]\nurl_typo = \"x\"\n"), 0o644))

	_, _, _, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestEnvOverridesRegistryURL(t *testing.T) {
	t.Setenv(config.EnvRegistryURL, "https://mirror.example.com/db.json")
	isolate(t)
	cfg, _, _, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example.com/db.json", cfg.Registry.URL)
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	require.NoError(t, config.CreateSample(path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(contents), "[registry]"))

	var cfg config.Config
	require.NoError(t, toml.Unmarshal(contents, &cfg))
	assert.Equal(t, mimetype.DefaultRegistryURL, cfg.Registry.URL)
	assert.Equal(t, mimetype.DefaultCategories, cfg.Registry.Categories)

	t.Setenv(config.EnvRegistryURL, "")
	loaded, _, exists, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, config.Default().Server.Bind, loaded.Server.Bind)
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"log level", func(c *config.Config) { c.Logging.Level = "trace" }},
		{"no registry", func(c *config.Config) { c.Registry.URL = "" }},
		{"registry scheme", func(c *config.Config) { c.Registry.URL = "ftp://example.com/db.json" }},
		{"timeout", func(c *config.Config) { c.Registry.TimeoutSeconds = 0 }},
		{"no categories", func(c *config.Config) { c.Registry.Categories = nil }},
		{"category with slash", func(c *config.Config) { c.Registry.Categories = []string{"audio/mp3"} }},
		{"output file", func(c *config.Config) { c.Output.MimetypeFile = "mimetypes.txt" }},
		{"package", func(c *config.Config) { c.Output.Package = "neume-schema" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("Validate() = nil, want error")
			}
		})
	}

	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	cfg.Registry.URL = ""
	cfg.Registry.Path = "/tmp/db.json"
	require.NoError(t, cfg.Validate())
}
