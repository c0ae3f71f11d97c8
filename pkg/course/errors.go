package course

import "errors"

// Publish validation failures. All of them are recoverable and user-facing:
// the caller re-prompts and retries the same publish call. None of them
// touches the draft.
var (
	ErrEmptyTitle          = errors.New("course title is empty")
	ErrEmptyContent        = errors.New("course has no content")
	ErrAuthorNotConfigured = errors.New("author profile is not configured")
)
