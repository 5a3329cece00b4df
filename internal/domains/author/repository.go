package author

import "context"

// Repository defines data access for Author records.
// The production implementation reads one record per file from the authors
// directory; the interface exists so the service can be tested against an
// in-memory set.
type Repository interface {
	// LoadAll reads every author record from the backing store.
	// Records that cannot be decoded or lack a name are skipped with a
	// warning; they must not abort the load.
	// Errors: ErrAuthorsDirUnreadable if the store itself is unreachable.
	LoadAll(ctx context.Context) ([]Author, error)
}
