package post

import (
	"errors"
	"fmt"
)

// Rule identifies which validation rule a post failed. The scan never stops
// on a rule failure: every failure becomes one ValidationError in the batch
// report and the invoking build step decides which rules are fatal.
type Rule string

const (
	// RuleMalformedFrontMatter covers files whose metadata block cannot be
	// split or decoded at all (no delimiter, unterminated, bad syntax).
	RuleMalformedFrontMatter Rule = "malformed-front-matter"

	// RuleMissingField: a required field (title) is absent or empty.
	RuleMissingField Rule = "missing-field"

	// RuleMalformedDate: the date field does not parse as a timestamp.
	RuleMalformedDate Rule = "malformed-date"

	// RuleEmptyTaxonomyEntry: a tags or categories member is the empty
	// string, which the external renderer treats as a malformed term and
	// fails the build on.
	RuleEmptyTaxonomyEntry Rule = "empty-taxonomy-entry"

	// RuleUnresolvedAuthor: an authors entry has no author record with an
	// exactly matching name.
	RuleUnresolvedAuthor Rule = "unresolved-author"
)

// Rules lists every rule, in the order they are applied per post.
var Rules = []Rule{
	RuleMalformedFrontMatter,
	RuleMissingField,
	RuleMalformedDate,
	RuleEmptyTaxonomyEntry,
	RuleUnresolvedAuthor,
}

// ValidationError is one rule failure on one file. It carries everything
// the content author needs to fix the offending front-matter block.
type ValidationError struct {
	File    string `json:"file"`
	Rule    Rule   `json:"rule"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (%s): %s", e.File, e.Rule, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", e.File, e.Rule, e.Message)
}

var (
	// Business Rule Errors
	ErrPostNotFound = errors.New("post not found")

	// Filesystem Errors
	ErrContentDirUnreadable = errors.New("content directory cannot be read")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch err {
	case ErrPostNotFound:
		return "POST_NOT_FOUND"
	case ErrContentDirUnreadable:
		return "CONTENT_DIR_UNREADABLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch err {
	case ErrPostNotFound:
		return 404
	case ErrContentDirUnreadable:
		return 503
	default:
		return 500
	}
}
