package post

import "context"

// Service defines business logic for the Post domain: run the scan, apply
// the validation rules in order, and expose the validated content set.
//
// Every operation is read-only and idempotent — two calls over an unchanged
// content tree return identical results.
type Service interface {
	// Load runs a full scan and validation pass.
	// Rules per post, in order:
	//  1. title present and non-empty        → RuleMissingField
	//  2. date parses as a valid timestamp   → RuleMalformedDate
	//  3. tags/categories members non-empty  → RuleEmptyTaxonomyEntry
	//  4. authors entries resolve            → RuleUnresolvedAuthor
	// A post failing one rule is still checked against the rest; a file
	// failing any rule never aborts the batch. Valid posts are sorted by
	// date descending (slug as tiebreak), errors by file path.
	Load(ctx context.Context) (*Report, error)

	// All returns validated posts, filtered. Drafts are excluded unless
	// the filter asks for them: a draft must never appear in the
	// production set.
	All(ctx context.Context, filter Filter) ([]Post, error)

	// GetBySlug retrieves one validated post including its body.
	// Drafts are retrievable by slug (preview parity with `server -D`).
	// Errors: ErrPostNotFound
	GetBySlug(ctx context.Context, slug string) (*Post, error)

	// Tags returns every tag in the production set with its post count,
	// sorted by term.
	Tags(ctx context.Context) ([]TaxonomyCount, error)

	// Categories returns every category in the production set with its
	// post count, sorted by term.
	Categories(ctx context.Context) ([]TaxonomyCount, error)
}
