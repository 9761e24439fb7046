package sdboot

import "errors"

var (
	// ErrEmptyEntry indicates an entry file that contains no directives at all.
	// An empty file is not a valid boot entry.
	ErrEmptyEntry = errors.New("entry file contains no directives")
	// ErrNotFound indicates an operation referenced an entry id with no backing file.
	ErrNotFound = errors.New("entry not found")
	// ErrMissingID indicates an attempt to persist an entry without an identifier.
	ErrMissingID = errors.New("entry has no identifier")
)
