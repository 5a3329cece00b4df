package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pressroom/internal/domains/post"
)

func sampleReport() *post.Report {
	return &post.Report{
		Posts: []post.Post{{Title: "OK", Slug: "ok"}},
		Errors: []post.ValidationError{
			{File: "content/posts/bad.md", Rule: post.RuleEmptyTaxonomyEntry, Field: "tags", Message: "tags must not contain an empty string entry"},
			{File: "content/posts/ghost.md", Rule: post.RuleUnresolvedAuthor, Field: "authors", Message: `no author record named "Nobody"`},
		},
		ScannedFiles: 3,
	}
}

func TestShouldFailPolicy(t *testing.T) {
	errs := sampleReport().Errors

	tests := []struct {
		name   string
		failOn []string
		want   bool
	}{
		{"all rules fatal", []string{"all"}, true},
		{"matching rule", []string{"empty-taxonomy-entry"}, true},
		{"non-matching rule only", []string{"malformed-date"}, false},
		{"empty policy never fails", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shouldFail(errs, tt.failOn))
		})
	}
}

func TestShouldFailCleanReport(t *testing.T) {
	assert.False(t, shouldFail(nil, []string{"all"}))
}

func TestPrintTextSummary(t *testing.T) {
	var buf bytes.Buffer
	printText(&buf, sampleReport())

	out := buf.String()
	assert.Contains(t, out, "bad.md")
	assert.Contains(t, out, "[empty-taxonomy-entry] tags")
	assert.Contains(t, out, "3 files scanned, 1 valid, 2 failed, 2 errors")
}

func TestPrintJSONReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printReport(&buf, sampleReport(), "json"))

	var resp post.ReportResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, 3, resp.ScannedFiles)
	assert.Equal(t, 1, resp.ValidFiles)
	assert.Equal(t, 2, resp.FailedFiles)
	assert.Len(t, resp.Errors, 2)
}
