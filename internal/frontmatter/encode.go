package frontmatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Encode renders a Matter back into a curly-style block, the notation
// scaffolded posts are written in. Taxonomy lists are always emitted, even
// when empty, so the author has the keys in front of them to fill in.
func Encode(m *Matter) (string, error) {
	raw := tomlMatter{
		Title:       m.Title,
		Description: m.Description,
		Draft:       m.Draft,
		Template:    m.Template,
		Taxonomies: tomlTaxonomies{
			Authors:    emptyIfNil(m.Authors),
			Tags:       emptyIfNil(m.Tags),
			Categories: emptyIfNil(m.Categories),
		},
	}

	switch {
	case m.Date != nil:
		raw.Date = m.Date.Format(time.RFC3339)
	case m.DateRaw != "":
		raw.Date = m.DateRaw
	}

	out, err := toml.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("encode front matter: %w", err)
	}

	var b strings.Builder
	b.WriteString(tomlDelimiter + "\n")
	b.Write(out)
	b.WriteString(tomlDelimiter + "\n")
	return b.String(), nil
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
