package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsmostafa/cornerstones/internal/docs"
)

const cmdDoc = "## 1. Intro\nWelcome text.\n### Basics\n- Step one\n- Step two\n"

// run executes the root command against a document in a temp dir.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CORNERSTONES_PROGRESS_PATH", filepath.Join(dir, "progress.json"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "none.yaml"),
		"--source", filepath.Join(dir, "doc.md"),
		"--log-level", "error",
	}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func setup(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "doc.md"), []byte(cmdDoc), 0644))
	return dir
}

func TestParseCommand(t *testing.T) {
	dir := setup(t)

	out, err := run(t, dir, "parse", "--format", "json")
	require.NoError(t, err)

	var sections []docs.Section
	require.NoError(t, json.Unmarshal([]byte(out), &sections))
	require.Len(t, sections, 1)
	assert.Equal(t, "1-intro", sections[0].Slug)

	out, err = run(t, dir, "parse", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "slug: 1-intro")

	_, err = run(t, dir, "parse", "--format", "xml")
	assert.Error(t, err)
}

func TestProgressCommands(t *testing.T) {
	dir := setup(t)
	key := "1-intro:basics:list-0:0"

	out, err := run(t, dir, "progress", "toggle", key)
	require.NoError(t, err)
	assert.Equal(t, key+": done\n", out)

	out, err = run(t, dir, "progress", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "[x] "+key+"  Step one")
	assert.Contains(t, out, "[ ] 1-intro:basics:list-0:1  Step two")

	_, err = run(t, dir, "progress", "toggle", "nope")
	assert.Error(t, err)

	out, err = run(t, dir, "progress", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Progress reset")
}

func TestShowUnknownSlug(t *testing.T) {
	dir := setup(t)

	_, err := run(t, dir, "show", "missing")
	assert.ErrorIs(t, err, docs.ErrSectionNotFound)
}
