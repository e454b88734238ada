package content

import "errors"

var (
	// ErrDocsDirNotFound indicates the docs directory does not exist.
	ErrDocsDirNotFound = errors.New("docs directory not found")

	// ErrDuplicateID indicates two documents resolve to the same id.
	ErrDuplicateID = errors.New("duplicate document id")

	// ErrUnknownDocument indicates a sidebar references an id no document has.
	ErrUnknownDocument = errors.New("unknown document id")

	// ErrInvalidSidebars indicates sidebars.json could not be read or decoded.
	ErrInvalidSidebars = errors.New("invalid sidebars file")
)
