package author

import "errors"

var (
	// Validation Errors
	ErrMissingName = errors.New("author record is missing the name field")

	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")

	// Filesystem Errors
	ErrAuthorsDirUnreadable = errors.New("authors directory cannot be read")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrAuthorNotFound:
		return "AUTHOR_NOT_FOUND"
	case ErrMissingName:
		return "AUTHOR_MISSING_NAME"
	case ErrAuthorsDirUnreadable:
		return "AUTHORS_DIR_UNREADABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrAuthorNotFound:
		return 404
	case ErrMissingName:
		return 400
	case ErrAuthorsDirUnreadable:
		return 503
	default:
		return 500
	}
}
