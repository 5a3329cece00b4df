package post

import "time"

// PostResponse - list item, body omitted
type PostResponse struct {
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
}

// PostDetailResponse - GET /v1/posts/:slug, body included
type PostDetailResponse struct {
	PostResponse
	SourcePath string `json:"source_path"`
	Body       string `json:"body"`
}

// TaxonomyCount - one tag or category with its production post count
type TaxonomyCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// ReportResponse - GET /v1/report
type ReportResponse struct {
	ScannedFiles int               `json:"scanned_files"`
	ValidFiles   int               `json:"valid_files"`
	FailedFiles  int               `json:"failed_files"`
	Posts        []PostResponse    `json:"posts"`
	Errors       []ValidationError `json:"errors"`
}

// Filter - query parameters for GET /v1/posts
type Filter struct {
	Tag           string `form:"tag"`
	Category      string `form:"category"`
	Author        string `form:"author"`
	IncludeDrafts bool   `form:"drafts"`
}

// ToResponse converts Post to PostResponse
func (p *Post) ToResponse() *PostResponse {
	return &PostResponse{
		Title:       p.Title,
		Description: p.Description,
		Date:        p.Date,
		Draft:       p.Draft,
		Authors:     emptyIfNil(p.Authors),
		Tags:        emptyIfNil(p.Tags),
		Categories:  emptyIfNil(p.Categories),
		Template:    p.Template,
		Slug:        p.Slug,
		Section:     p.Section,
	}
}

// ToDetailResponse converts Post to PostDetailResponse
func (p *Post) ToDetailResponse() *PostDetailResponse {
	return &PostDetailResponse{
		PostResponse: *p.ToResponse(),
		SourcePath:   p.SourcePath,
		Body:         p.Body,
	}
}

// ToReportResponse converts a Report to its API shape
func (r *Report) ToReportResponse() *ReportResponse {
	posts := make([]PostResponse, 0, len(r.Posts))
	for i := range r.Posts {
		posts = append(posts, *r.Posts[i].ToResponse())
	}
	errs := r.Errors
	if errs == nil {
		errs = []ValidationError{}
	}
	return &ReportResponse{
		ScannedFiles: r.ScannedFiles,
		ValidFiles:   len(r.Posts),
		FailedFiles:  r.FailedFiles(),
		Posts:        posts,
		Errors:       errs,
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
