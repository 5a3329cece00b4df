package post

import "context"

// Repository defines data access for content files.
// The production implementation walks the content directory; the interface
// exists so the service can be tested against fixture sets.
type Repository interface {
	// Scan reads every content file under the content root and parses its
	// front matter. Files whose metadata block cannot be parsed come back
	// as a ValidationError (RuleMalformedFrontMatter) instead of aborting
	// the walk — one unreadable file must not suppress the rest.
	//
	// Results are in path order so repeated scans of an unchanged tree
	// are identical.
	// Errors: ErrContentDirUnreadable if the root itself is unreachable.
	Scan(ctx context.Context) ([]RawPost, []ValidationError, error)
}
