package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AndrivA89/mindnotes/internal/config"
	"github.com/AndrivA89/mindnotes/internal/summarizer"
)

func writeConfig(t *testing.T, provider summarizer.Provider) string {
	t.Helper()
	dir := t.TempDir()
	c := config.Default()
	c.Storage.Badger.Path = filepath.Join(dir, "data")
	c.Summarizer.Provider = provider
	c.Notes.SeedWelcome = false
	c.Log.File = filepath.Join(dir, "mindnotes.log")

	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, config.Save(path, c))
	return path
}

func run(t *testing.T, path string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(append([]string{"--config", path}, args...))
	err := rootCmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestNoteCommands(t *testing.T) {
	path := writeConfig(t, summarizer.Heuristic)

	_, err := run(t, path, "note", "list")
	assert.ErrorContains(t, err, "not logged in")

	out, err := run(t, path, "register", "--email", "a@example.com", "--password", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Welcome, a@example.com!\n", out)

	out, err = run(t, path, "whoami")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "a@example.com"))

	out, err = run(t, path, "note", "create", "--title", "Plan", "--color", "green",
		"--content", "Pack the tent and the stove. Check the weather before leaving on Friday.")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, err = run(t, path, "note", "list")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "Plan")

	out, err = run(t, path, "note", "summarize", id)
	require.NoError(t, err)
	assert.Equal(t, "Pack the tent and the stove.\n", out)

	out, err = run(t, path, "note", "search", "TENT")
	require.NoError(t, err)
	assert.Contains(t, out, id)

	out, err = run(t, path, "note", "show", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Plan [green]")
	assert.Contains(t, out, "AI Summary: Pack the tent and the stove.")

	out, err = run(t, path, "note", "delete", id)
	require.NoError(t, err)
	assert.Equal(t, "Note deleted.\n", out)

	_, err = run(t, path, "note", "delete", id)
	assert.EqualError(t, err, "note "+id+" not found")

	_, err = run(t, path, "logout")
	require.NoError(t, err)
	_, err = run(t, path, "whoami")
	assert.ErrorContains(t, err, "not logged in")
}

func TestAPIKeyCommands(t *testing.T) {
	path := writeConfig(t, summarizer.DeepSeek)

	out, err := run(t, path, "apikey", "show")
	require.NoError(t, err)
	assert.Equal(t, "No deepseek API key set.\n", out)

	out, err = run(t, path, "apikey", "set", "sk-abcdef1234")
	require.NoError(t, err)
	assert.Equal(t, "API key saved successfully.\n", out)

	out, err = run(t, path, "apikey", "show")
	require.NoError(t, err)
	assert.Equal(t, "deepseek: *********1234\n", out)

	_, err = run(t, path, "apikey", "clear")
	require.NoError(t, err)
	out, err = run(t, path, "apikey", "show")
	require.NoError(t, err)
	assert.Equal(t, "No deepseek API key set.\n", out)
}

func TestAPIKeySetBlankRemoves(t *testing.T) {
	path := writeConfig(t, summarizer.OpenAI)

	_, err := run(t, path, "apikey", "set", "sk-abcdef1234")
	require.NoError(t, err)

	out, err := run(t, path, "apikey", "set", "   ")
	require.NoError(t, err)
	assert.Equal(t, "API key removed.\n", out)

	out, err = run(t, path, "apikey", "show")
	require.NoError(t, err)
	assert.Equal(t, "No openai API key set.\n", out)
}

func TestAPIKeyRejectsHeuristic(t *testing.T) {
	path := writeConfig(t, summarizer.Heuristic)

	_, err := run(t, path, "apikey", "show")
	assert.ErrorContains(t, err, "does not use an API key")
}

func TestMask(t *testing.T) {
	assert.Equal(t, "***", mask("abc"))
	assert.Equal(t, "**cdef", mask("abcdef"))
}
