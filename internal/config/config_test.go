package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrivA89/mindnotes/internal/summarizer"
)

func TestLoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendBadger, cfg.Storage.Backend)
	assert.Equal(t, summarizer.Heuristic, cfg.Summarizer.Provider)
	assert.True(t, cfg.Notes.SeedWelcome)

	_, err = os.Stat(path)
	assert.NoError(t, err, "default config should be written on first run")

	again, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
storage:
  backend: memory
summarizer:
  provider: gemini
  model: gemini-1.5-pro
notes:
  seed_welcome: false
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
	assert.Equal(t, summarizer.Gemini, cfg.Summarizer.Provider)
	assert.Equal(t, "gemini-1.5-pro", cfg.Summarizer.Model)
	assert.False(t, cfg.Notes.SeedWelcome)
	assert.NotEmpty(t, cfg.Storage.Badger.Path, "unset keys should keep defaults")
}

func TestLoadBlankProviderIsHeuristic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("summarizer:\n  provider: \"\"\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, summarizer.Heuristic, cfg.Summarizer.Provider)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	for name, body := range map[string]string{
		"backend":  "storage:\n  backend: sqlite\n",
		"provider": "summarizer:\n  provider: groq\n",
		"yaml":     "storage: [",
	} {
		path := filepath.Join(t.TempDir(), name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
		_, err := Load(path)
		assert.Error(t, err, "%s should be rejected", name)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data"), expandHome("~/data"))
	assert.Equal(t, "/abs/data", expandHome("/abs/data"))
	assert.Equal(t, "", expandHome(""))
}
