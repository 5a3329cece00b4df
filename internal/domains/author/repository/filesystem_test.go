package repository

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRecord(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadAllFormats(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "jane-doe.toml", "name = \"Jane Doe\"\nbio = \"Writes about F#\"\n")
	writeRecord(t, dir, "john-smith.json", `{"name": "John Smith", "twitter": "@jsmith"}`)
	writeRecord(t, dir, "ann-lee.yaml", "name: Ann Lee\n")

	authors, err := NewFilesystemRepository(dir).LoadAll(context.Background())
	require.NoError(t, err)

	require.Len(t, authors, 3)
	// Sorted by slug.
	assert.Equal(t, "ann-lee", authors[0].Slug)
	assert.Equal(t, "jane-doe", authors[1].Slug)
	assert.Equal(t, "john-smith", authors[2].Slug)

	assert.Equal(t, "Jane Doe", authors[1].Name)
	assert.Equal(t, "Writes about F#", authors[1].Extra["bio"])
	assert.Equal(t, "@jsmith", authors[2].Extra["twitter"])
}

func TestBadRecordsAreSkipped(t *testing.T) {
	dir := t.TempDir()
	writeRecord(t, dir, "jane-doe.toml", "name = \"Jane Doe\"\n")
	writeRecord(t, dir, "broken.toml", "name = = nope")
	writeRecord(t, dir, "nameless.json", `{"bio": "who am i"}`)
	writeRecord(t, dir, "notes.txt", "not an author record")

	authors, err := NewFilesystemRepository(dir).LoadAll(context.Background())
	require.NoError(t, err)

	require.Len(t, authors, 1)
	assert.Equal(t, "Jane Doe", authors[0].Name)
}

func TestSlugDriftIsWarnedButLoads(t *testing.T) {
	var buf bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = orig })

	dir := t.TempDir()
	writeRecord(t, dir, "janedoe.toml", "name = \"Jane Doe\"\n")
	writeRecord(t, dir, "john-smith.toml", "name = \"John Smith\"\n")

	authors, err := NewFilesystemRepository(dir).LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 2, "a drifting slug still loads")

	out := buf.String()
	assert.Contains(t, out, "janedoe.toml")
	assert.Contains(t, out, "jane-doe", "warning names the expected slug")
	assert.NotContains(t, out, "john-smith.toml", "matching slug stays quiet")
}

func TestMissingDirectoryYieldsNoAuthors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	authors, err := NewFilesystemRepository(dir).LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, authors)
}
