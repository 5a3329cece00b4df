package post

import (
	"time"

	"pressroom/internal/frontmatter"
)

// RawPost is one content file after parsing but before validation. The
// repository produces these; the service turns the ones that pass every
// rule into Posts.
type RawPost struct {
	Matter     *frontmatter.Matter
	Body       string
	Slug       string // file basename without extension
	Section    string // first path element under the content root
	SourcePath string
}

// Post is one validated content file, normalized into the canonical record
// the API and the lint report expose.
type Post struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	Draft       bool      `json:"draft"`
	Authors     []string  `json:"authors"`
	Tags        []string  `json:"tags"`
	Categories  []string  `json:"categories"`
	Template    string    `json:"template"`
	Slug        string    `json:"slug"`
	Section     string    `json:"section"`
	SourcePath  string    `json:"source_path"`
	Body        string    `json:"-"`
}

// HasAuthor reports whether the post references the given author name.
func (p *Post) HasAuthor(name string) bool {
	for _, a := range p.Authors {
		if a == name {
			return true
		}
	}
	return false
}

// HasTag reports whether the post carries the given tag.
func (p *Post) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasCategory reports whether the post is in the given category.
func (p *Post) HasCategory(category string) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Report is the outcome of one full scan: the posts that passed every rule
// and the complete error set for the ones that did not. The scan is
// fail-soft per file and fail-loud in aggregate — Errors always holds every
// failure across the batch.
type Report struct {
	Posts        []Post            `json:"posts"`
	Errors       []ValidationError `json:"errors"`
	ScannedFiles int               `json:"scanned_files"`
}

// FailedFiles counts distinct files with at least one error.
func (r *Report) FailedFiles() int {
	seen := make(map[string]struct{}, len(r.Errors))
	for _, e := range r.Errors {
		seen[e.File] = struct{}{}
	}
	return len(seen)
}
