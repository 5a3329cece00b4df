package author

import "context"

// Service defines business logic for the Author domain.
//
// Author records must exist before any post referencing them can render,
// so the central operation here is Resolve: given the string a post put in
// its authors list, decide whether a matching record exists.
type Service interface {
	// All returns every author record, sorted by slug.
	All(ctx context.Context) ([]Author, error)

	// GetBySlug retrieves one author by file-basename slug.
	// Errors: ErrAuthorNotFound
	GetBySlug(ctx context.Context, slug string) (*Author, error)

	// Index loads the whole author set once and returns the name → record
	// mapping. Batch callers (the post scan) use this instead of Resolve
	// so the directory is read a single time per run.
	Index(ctx context.Context) (Index, error)

	// Resolve checks whether an authors entry from a post's front matter
	// has a matching record. The match is exact on the record's declared
	// name, case and spelling included: "jane doe" does not resolve a
	// record named "Jane Doe". The external generator applies the same
	// rule, which is why posts are validated against it up front.
	Resolve(ctx context.Context, name string) (*Author, bool)
}
