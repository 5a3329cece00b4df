package frontmatter

import (
	"fmt"
	"time"

	"github.com/goccy/go-yaml"
)

// yamlMatter mirrors the dash-style block on disk, where taxonomies are
// flat top-level keys and the author key may be a scalar or a list:
//
//	---
//	title: "..."
//	date: 2017-09-20
//	author: Jane Doe
//	tags: [fsharp, monads]
//	---
type yamlMatter struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	Date        interface{} `yaml:"date"`
	Draft       bool        `yaml:"draft"`
	Template    string      `yaml:"template"`
	Author      interface{} `yaml:"author"`
	Authors     []string    `yaml:"authors"`
	Tags        []string    `yaml:"tags"`
	Categories  []string    `yaml:"categories"`
}

func decodeYAML(block string) (*Matter, error) {
	var raw yamlMatter
	if err := yaml.Unmarshal([]byte(block), &raw); err != nil {
		return nil, fmt.Errorf("decode yaml front matter: %w", err)
	}

	m := &Matter{
		Title:       raw.Title,
		Description: raw.Description,
		Draft:       raw.Draft,
		Template:    raw.Template,
		Authors:     raw.Authors,
		Tags:        raw.Tags,
		Categories:  raw.Categories,
	}

	// Unquoted dates may decode as a typed timestamp depending on the
	// scalar shape; quoted ones always arrive as strings.
	switch d := raw.Date.(type) {
	case nil:
	case time.Time:
		m.Date = &d
	case string:
		m.DateRaw = d
	default:
		m.DateRaw = fmt.Sprintf("%v", d)
	}

	// author: accepts "Jane Doe" and ["Jane Doe", "John Smith"].
	switch a := raw.Author.(type) {
	case nil:
	case string:
		m.Authors = append(m.Authors, a)
	case []interface{}:
		for _, v := range a {
			m.Authors = append(m.Authors, fmt.Sprintf("%v", v))
		}
	default:
		m.Authors = append(m.Authors, fmt.Sprintf("%v", a))
	}

	return m, nil
}
