package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Jane Doe", "jane-doe"},
		{"José Álvarez", "jose-alvarez"},
		{"Scott Wlaschin", "scott-wlaschin"},
		{"  Spaced   Out  ", "spaced-out"},
		{"F# & Friends!", "f-friends"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GenerateSlug(tt.input), "input %q", tt.input)
	}
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitCSV("a, b,,"))
	assert.Equal(t, []string{"all"}, SplitCSV("all"))
	assert.Empty(t, SplitCSV(""))
}

func TestTitleFromFilename(t *testing.T) {
	assert.Equal(t, "Computation Expressions Intro", TitleFromFilename("computation-expressions-intro.md"))
	assert.Equal(t, "Monads", TitleFromFilename("monads"))
}
