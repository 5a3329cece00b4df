package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"pressroom/internal/domains/author"
	"pressroom/internal/shared/utils"
)

// FilesystemRepository reads author records from a flat directory, one file
// per contributor, keyed by the slugged display name:
//
//	data/authors/
//	  jane-doe.toml
//	  scott-wlaschin.json
//
// Supported record formats: .toml, .json, .yaml/.yml. Every record needs at
// least a name field; all other keys are preserved as opaque extra data.
type FilesystemRepository struct {
	dir string
}

func NewFilesystemRepository(dir string) *FilesystemRepository {
	return &FilesystemRepository{dir: dir}
}

func (r *FilesystemRepository) LoadAll(ctx context.Context) ([]author.Author, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if os.IsNotExist(err) {
			// A site with no authors directory is a site with no authors.
			// Post validation will report every authors entry as unresolved.
			log.Warn().Str("dir", r.dir).Msg("Authors directory does not exist")
			return []author.Author{}, nil
		}
		return nil, fmt.Errorf("%w: %v", author.ErrAuthorsDirUnreadable, err)
	}

	authors := make([]author.Author, 0, len(entries))
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if entry.IsDir() {
			continue
		}

		path := filepath.Join(r.dir, entry.Name())
		a, err := decodeRecord(path)
		if err != nil {
			// Bad records are skipped, not fatal: the posts referencing
			// them surface as unresolved authors downstream.
			log.Warn().Err(err).Str("file", path).Msg("Skipping author record")
			continue
		}
		// The file slug is the lookup key; when it drifts from the
		// slugged display name the record still loads, but renames on
		// one side tend to follow, so flag it.
		if want := utils.GenerateSlug(a.Name); want != "" && want != a.Slug {
			log.Warn().
				Str("file", path).
				Str("name", a.Name).
				Str("expected_slug", want).
				Msg("Author file slug does not match the slugged name")
		}
		authors = append(authors, *a)
	}

	sort.Slice(authors, func(i, j int) bool { return authors[i].Slug < authors[j].Slug })
	return authors, nil
}

func decodeRecord(path string) (*author.Author, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var fields map[string]interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &fields)
	case ".json":
		err = json.Unmarshal(data, &fields)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fields)
	default:
		return nil, fmt.Errorf("unsupported author record format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, err
	}

	name, _ := fields["name"].(string)
	if name == "" {
		return nil, author.ErrMissingName
	}
	delete(fields, "name")

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	a := &author.Author{
		Name:       name,
		Slug:       slug,
		SourcePath: path,
	}
	if len(fields) > 0 {
		a.Extra = fields
	}
	return a, nil
}
