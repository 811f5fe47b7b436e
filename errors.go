package inkpress

import "errors"

var (
	// ErrMalformedDocument reports a missing or unbalanced front matter block.
	ErrMalformedDocument = errors.New("inkpress: malformed document")
	// ErrMissingRequiredField reports an absent title or date field.
	ErrMissingRequiredField = errors.New("inkpress: missing required field")
	// ErrInvalidTimestamp reports a date or lastModified value that cannot be
	// parsed, or a lastModified that precedes date.
	ErrInvalidTimestamp = errors.New("inkpress: invalid timestamp")
	// ErrDuplicateSlug reports two articles claiming the same slug.
	ErrDuplicateSlug = errors.New("inkpress: duplicate slug")
	// ErrNotFound is returned when a requested article does not exist.
	ErrNotFound = errors.New("inkpress: article not found")
)

// DocumentError ties a failure to the offending document so batch callers
// can report it and keep processing the rest.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

func docErr(path string, err error) error {
	return &DocumentError{Path: path, Err: err}
}
