package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/internal/frontmatter"
)

func TestCreatePostPrefillsFrontMatter(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC)

	path, err := createPost(dir, "posts/monads.md", "Monads for Mortals", "Jane Doe", now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "posts", "monads.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	matter, body, err := frontmatter.Parse(string(data))
	require.NoError(t, err)

	assert.Equal(t, "Monads for Mortals", matter.Title)
	assert.True(t, matter.Draft, "new posts start as drafts")
	assert.Equal(t, []string{"Jane Doe"}, matter.Authors)
	assert.Equal(t, "2026-08-26", matter.DateRaw[:10], "date is the creation day")
	assert.Contains(t, body, "Write here.")
}

func TestCreatePostTitleFromFilename(t *testing.T) {
	dir := t.TempDir()

	path, err := createPost(dir, "posts/computation-expressions-intro", "", "", time.Now().UTC())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	matter, _, err := frontmatter.Parse(string(data))
	require.NoError(t, err)

	assert.Equal(t, "Computation Expressions Intro", matter.Title)
}

func TestCreatePostDerivesFilenameFromTitle(t *testing.T) {
	dir := t.TempDir()

	path, err := createPost(dir, "posts/", "Monads for Mortals!", "", time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "posts", "monads-for-mortals.md"), path)

	_, err = createPost(dir, "posts/", "", "", time.Now().UTC())
	assert.Error(t, err, "section-only target needs a title to slug")
}

func TestCreatePostRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()

	_, err := createPost(dir, "posts/monads.md", "First", "", time.Now().UTC())
	require.NoError(t, err)

	_, err = createPost(dir, "posts/monads.md", "Second", "", time.Now().UTC())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refusing to overwrite")

	// The original content is untouched.
	data, err := os.ReadFile(filepath.Join(dir, "posts", "monads.md"))
	require.NoError(t, err)
	matter, _, err := frontmatter.Parse(string(data))
	require.NoError(t, err)
	assert.Equal(t, "First", matter.Title)
}
