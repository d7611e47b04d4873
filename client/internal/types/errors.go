package types

import "errors"

// ------------------------------
// Shared Errors
// ------------------------------

// Sentinel errors returned by repository operations. Callers branch with
// errors.Is; the wrapped message carries the operation and remote detail.
var (
	// ErrValidation marks input rejected before any request was sent.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when no speaker exists under the given id.
	ErrNotFound = errors.New("speaker not found")

	// ErrDataIntegrity marks a remote record that violates the schema this
	// build expects, such as a page without a Name title property.
	ErrDataIntegrity = errors.New("speaker record malformed")

	// ErrRemote wraps transport and Notion API failures.
	ErrRemote = errors.New("notion request failed")
)
