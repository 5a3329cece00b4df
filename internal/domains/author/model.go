package author

// Author is one contributor record from the authors directory. The record
// is keyed two ways: Name is what posts reference in their authors list
// (exact match, case and spelling), Slug is the file basename on disk
// ("Jane Doe" lives in jane-doe.toml / jane-doe.json / jane-doe.yaml).
//
// Everything beyond name is pass-through data for the site generator (bio,
// links, avatar) and is preserved without further modeling.
type Author struct {
	Name       string                 `json:"name"`
	Slug       string                 `json:"slug"`
	Extra      map[string]interface{} `json:"extra,omitempty"`
	SourcePath string                 `json:"source_path"`
}

// AuthorResponse - GET /v1/authors
type AuthorResponse struct {
	Name  string                 `json:"name"`
	Slug  string                 `json:"slug"`
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// AuthorDetailResponse - GET /v1/authors/:slug, with the slugs of the
// posts that reference this author.
type AuthorDetailResponse struct {
	AuthorResponse
	Posts []string `json:"posts"`
}

// ToResponse converts Author to AuthorResponse
func (a *Author) ToResponse() *AuthorResponse {
	return &AuthorResponse{
		Name:  a.Name,
		Slug:  a.Slug,
		Extra: a.Extra,
	}
}

// ToDetailResponse converts Author to a detailed response with post slugs
func (a *Author) ToDetailResponse(posts []string) *AuthorDetailResponse {
	if posts == nil {
		posts = []string{}
	}
	return &AuthorDetailResponse{
		AuthorResponse: *a.ToResponse(),
		Posts:          posts,
	}
}
