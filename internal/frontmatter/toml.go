package frontmatter

import (
	"fmt"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// tomlMatter mirrors the curly-style block on disk:
//
//	+++
//	title = "..."
//	date = 2017-09-20
//	draft = false
//	[taxonomies]
//	authors = ["Jane Doe"]
//	tags = ["fsharp"]
//	+++
type tomlMatter struct {
	Title       string         `toml:"title"`
	Description string         `toml:"description,omitempty"`
	Date        interface{}    `toml:"date,omitempty"`
	Draft       bool           `toml:"draft"`
	Template    string         `toml:"template,omitempty"`
	Taxonomies  tomlTaxonomies `toml:"taxonomies"`
}

type tomlTaxonomies struct {
	Authors    []string `toml:"authors"`
	Tags       []string `toml:"tags"`
	Categories []string `toml:"categories"`
}

func decodeTOML(block string) (*Matter, error) {
	var raw tomlMatter
	if err := toml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, fmt.Errorf("decode toml front matter: %w", err)
	}

	m := &Matter{
		Title:       raw.Title,
		Description: raw.Description,
		Draft:       raw.Draft,
		Template:    raw.Template,
		Authors:     raw.Taxonomies.Authors,
		Tags:        raw.Taxonomies.Tags,
		Categories:  raw.Taxonomies.Categories,
	}

	// TOML has native date types; quoted dates come through as strings.
	switch d := raw.Date.(type) {
	case nil:
	case time.Time:
		m.Date = &d
	case toml.LocalDate:
		t := d.AsTime(time.UTC)
		m.Date = &t
	case toml.LocalDateTime:
		t := d.AsTime(time.UTC)
		m.Date = &t
	case string:
		m.DateRaw = d
	default:
		m.DateRaw = fmt.Sprintf("%v", d)
	}

	return m, nil
}
