package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"pressroom/internal/domains/author"
	"pressroom/internal/domains/post"
)

// Accepted date layouts. The generator takes both a plain date and a full
// timestamp; anything else is a malformed date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

type postService struct {
	repo            post.Repository
	authors         author.Service
	defaultTemplate string
}

func NewPostService(repo post.Repository, authors author.Service, defaultTemplate string) post.Service {
	return &postService{
		repo:            repo,
		authors:         authors,
		defaultTemplate: defaultTemplate,
	}
}

func (s *postService) Load(ctx context.Context) (*post.Report, error) {
	raws, parseErrs, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}

	// Author records are loaded once per run; every authors entry in the
	// batch resolves against this one index.
	index, err := s.authors.Index(ctx)
	if err != nil {
		return nil, err
	}

	report := &post.Report{
		ScannedFiles: len(raws) + countFiles(parseErrs),
		Errors:       append([]post.ValidationError{}, parseErrs...),
	}

	for i := range raws {
		p, verrs := s.validate(&raws[i], index)
		if len(verrs) > 0 {
			report.Errors = append(report.Errors, verrs...)
			continue
		}
		report.Posts = append(report.Posts, *p)
	}

	sort.Slice(report.Posts, func(i, j int) bool {
		a, b := report.Posts[i], report.Posts[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.Slug < b.Slug
	})
	sort.SliceStable(report.Errors, func(i, j int) bool {
		return report.Errors[i].File < report.Errors[j].File
	})

	log.Debug().
		Int("valid", len(report.Posts)).
		Int("errors", len(report.Errors)).
		Msg("Validation pass complete")

	return report, nil
}

// validate applies the rule set in order. A failing rule does not stop the
// later rules: the report carries every failure the file has.
func (s *postService) validate(raw *post.RawPost, index author.Index) (*post.Post, []post.ValidationError) {
	var verrs []post.ValidationError
	m := raw.Matter

	// Rule 1: title present and non-empty
	if err := validation.Validate(m.Title, validation.Required); err != nil {
		verrs = append(verrs, post.ValidationError{
			File:    raw.SourcePath,
			Rule:    post.RuleMissingField,
			Field:   "title",
			Message: "title is required and must be non-empty",
		})
	}

	// Rule 2: date parses as a valid timestamp
	date, err := resolveDate(m.Date, m.DateRaw)
	if err != nil {
		verrs = append(verrs, post.ValidationError{
			File:    raw.SourcePath,
			Rule:    post.RuleMalformedDate,
			Field:   "date",
			Message: err.Error(),
		})
	}

	// Rule 3: no empty strings in taxonomies — the renderer treats an
	// empty term as malformed and fails the whole build
	verrs = append(verrs, taxonomyErrors(raw.SourcePath, "tags", m.Tags)...)
	verrs = append(verrs, taxonomyErrors(raw.SourcePath, "categories", m.Categories)...)

	// Rule 4: every authors entry resolves to a record
	for _, name := range m.Authors {
		if _, ok := index.Resolve(name); !ok {
			verrs = append(verrs, post.ValidationError{
				File:    raw.SourcePath,
				Rule:    post.RuleUnresolvedAuthor,
				Field:   "authors",
				Message: fmt.Sprintf("no author record named %q", name),
			})
		}
	}

	if len(verrs) > 0 {
		return nil, verrs
	}

	template := m.Template
	if template == "" {
		template = s.defaultTemplate
	}

	return &post.Post{
		Title:       m.Title,
		Description: m.Description,
		Date:        date,
		Draft:       m.Draft,
		Authors:     m.Authors,
		Tags:        m.Tags,
		Categories:  m.Categories,
		Template:    template,
		Slug:        raw.Slug,
		Section:     raw.Section,
		SourcePath:  raw.SourcePath,
		Body:        raw.Body,
	}, nil
}

func (s *postService) All(ctx context.Context, filter post.Filter) ([]post.Post, error) {
	report, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]post.Post, 0, len(report.Posts))
	for _, p := range report.Posts {
		if p.Draft && !filter.IncludeDrafts {
			continue
		}
		if filter.Tag != "" && !p.HasTag(filter.Tag) {
			continue
		}
		if filter.Category != "" && !p.HasCategory(filter.Category) {
			continue
		}
		if filter.Author != "" && !p.HasAuthor(filter.Author) {
			continue
		}
		posts = append(posts, p)
	}
	return posts, nil
}

func (s *postService) GetBySlug(ctx context.Context, slug string) (*post.Post, error) {
	report, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range report.Posts {
		if report.Posts[i].Slug == slug {
			return &report.Posts[i], nil
		}
	}
	return nil, post.ErrPostNotFound
}

func (s *postService) Tags(ctx context.Context) ([]post.TaxonomyCount, error) {
	return s.countTerms(ctx, func(p *post.Post) []string { return p.Tags })
}

func (s *postService) Categories(ctx context.Context) ([]post.TaxonomyCount, error) {
	return s.countTerms(ctx, func(p *post.Post) []string { return p.Categories })
}

func (s *postService) countTerms(ctx context.Context, terms func(*post.Post) []string) ([]post.TaxonomyCount, error) {
	posts, err := s.All(ctx, post.Filter{})
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for i := range posts {
		for _, term := range terms(&posts[i]) {
			counts[term]++
		}
	}

	out := make([]post.TaxonomyCount, 0, len(counts))
	for term, n := range counts {
		out = append(out, post.TaxonomyCount{Term: term, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Term < out[j].Term })
	return out, nil
}

// resolveDate prefers a timestamp the codec already typed; otherwise the
// raw string must parse under one of the accepted layouts.
func resolveDate(typed *time.Time, raw string) (time.Time, error) {
	if typed != nil {
		return *typed, nil
	}
	if raw == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("date %q does not parse as a timestamp", raw)
}

func taxonomyErrors(file, field string, entries []string) []post.ValidationError {
	var verrs []post.ValidationError
	for _, entry := range entries {
		if err := validation.Validate(entry, validation.Required); err != nil {
			verrs = append(verrs, post.ValidationError{
				File:    file,
				Rule:    post.RuleEmptyTaxonomyEntry,
				Field:   field,
				Message: fmt.Sprintf("%s must not contain an empty string entry", field),
			})
		}
	}
	return verrs
}

func countFiles(verrs []post.ValidationError) int {
	seen := make(map[string]struct{}, len(verrs))
	for _, e := range verrs {
		seen[e.File] = struct{}{}
	}
	return len(seen)
}
