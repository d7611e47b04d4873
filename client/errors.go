package client

import (
	"errors"

	"github.com/codingnoodle/speaker-tracker/client/internal/types"
)

// Re-export shared SDK errors so callers compare against a single symbol.
var (
	// ErrValidation marks input rejected before any request was sent.
	ErrValidation = types.ErrValidation

	// ErrNotFound is returned when no speaker exists under the given id.
	ErrNotFound = types.ErrNotFound

	// ErrDataIntegrity marks a remote record missing its name title.
	ErrDataIntegrity = types.ErrDataIntegrity

	// ErrRemote wraps transport and Notion API failures.
	ErrRemote = types.ErrRemote
)

// IsNotFound reports whether err denotes a missing speaker.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsValidation reports whether err denotes rejected input.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
