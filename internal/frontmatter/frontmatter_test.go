package frontmatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTOMLNotation(t *testing.T) {
	content := `+++
title = "Monads for Mortals"
description = "Kleisli composition without the category theory"
date = 2019-02-06
draft = false
template = "post.html"
[taxonomies]
authors = ["Jane Doe"]
tags = ["fsharp", "monads"]
categories = ["functional-programming"]
+++

Body paragraph.
`

	matter, body, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, FormatTOML, matter.Format)
	assert.Equal(t, "Monads for Mortals", matter.Title)
	assert.Equal(t, "Kleisli composition without the category theory", matter.Description)
	assert.False(t, matter.Draft)
	assert.Equal(t, "post.html", matter.Template)
	assert.Equal(t, []string{"Jane Doe"}, matter.Authors)
	assert.Equal(t, []string{"fsharp", "monads"}, matter.Tags)
	assert.Equal(t, []string{"functional-programming"}, matter.Categories)
	assert.Equal(t, "Body paragraph.", body[:len("Body paragraph.")])

	// TOML native date comes through typed.
	require.NotNil(t, matter.Date)
	assert.Equal(t, time.Date(2019, 2, 6, 0, 0, 0, 0, time.UTC), *matter.Date)
}

func TestParseTOMLQuotedDate(t *testing.T) {
	content := "+++\ntitle = \"x\"\ndate = \"2019-02-06\"\n+++\nbody"

	matter, _, err := Parse(content)
	require.NoError(t, err)

	assert.Nil(t, matter.Date)
	assert.Equal(t, "2019-02-06", matter.DateRaw)
}

func TestParseYAMLNotation(t *testing.T) {
	content := `---
title: "Computation Expressions"
date: "2017-09-20"
draft: true
author: "Jane Doe"
tags: [fsharp, computation-expressions]
categories: [functional-programming]
---
Body text.
`

	matter, body, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, matter.Format)
	assert.Equal(t, "Computation Expressions", matter.Title)
	assert.True(t, matter.Draft)
	assert.Equal(t, []string{"Jane Doe"}, matter.Authors)
	assert.Equal(t, []string{"fsharp", "computation-expressions"}, matter.Tags)
	assert.Equal(t, []string{"functional-programming"}, matter.Categories)
	assert.Equal(t, "Body text.\n", body)
}

func TestParseYAMLAuthorList(t *testing.T) {
	content := "---\ntitle: x\nauthor: [\"Jane Doe\", \"John Smith\"]\n---\n"

	matter, _, err := Parse(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"Jane Doe", "John Smith"}, matter.Authors)
}

func TestParseDraftDefaultsToFalse(t *testing.T) {
	matter, _, err := Parse("+++\ntitle = \"x\"\n+++\n")
	require.NoError(t, err)
	assert.False(t, matter.Draft)
}

func TestSplitErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "no delimiter",
			content: "Just a markdown body with no metadata block.",
			wantErr: ErrNoFrontMatter,
		},
		{
			name:    "unterminated toml block",
			content: "+++\ntitle = \"x\"\n",
			wantErr: ErrUnterminated,
		},
		{
			name:    "unterminated yaml block",
			content: "---\ntitle: x\n",
			wantErr: ErrUnterminated,
		},
		{
			name:    "closing delimiter glued to text is not a terminator",
			content: "---\ntitle: x\n---glued\n",
			wantErr: ErrUnterminated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := Split(tt.content)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseBadTOMLSyntax(t *testing.T) {
	_, _, err := Parse("+++\ntitle = = broken\n+++\n")
	assert.Error(t, err)
}

func TestSplitCRLF(t *testing.T) {
	format, block, body, err := Split("+++\r\ntitle = \"x\"\r\n+++\r\nbody\r\n")
	require.NoError(t, err)
	assert.Equal(t, FormatTOML, format)
	assert.Contains(t, block, "title")
	assert.Contains(t, body, "body")
}

func TestEncodeRoundTrip(t *testing.T) {
	date := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	in := &Matter{
		Title:   "New Draft",
		Draft:   true,
		Date:    &date,
		Authors: []string{"Jane Doe"},
	}

	block, err := Encode(in)
	require.NoError(t, err)

	// Empty taxonomy lists are emitted explicitly for the author to fill in.
	assert.Contains(t, block, "tags = []")
	assert.Contains(t, block, "categories = []")

	out, _, err := Parse(block + "body\n")
	require.NoError(t, err)

	assert.Equal(t, "New Draft", out.Title)
	assert.True(t, out.Draft)
	assert.Equal(t, []string{"Jane Doe"}, out.Authors)
}
