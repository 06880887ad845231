package extractor

import (
	"errors"
	"fmt"
)

// Data-shape errors. Every failure returned by the extractors matches one of
// these with errors.Is.
var (
	ErrInvalidColorData      = errors.New("invalid color data")
	ErrInvalidDimension      = errors.New("invalid dimension")
	ErrMissingFillData       = errors.New("missing fill data")
	ErrMissingBoundingBox    = errors.New("missing bounding box")
	ErrMissingStyleData      = errors.New("missing style data")
	ErrUnimplementedCategory = errors.New("unimplemented category")
)

// ErrEmptyDocument is returned by Extract when the document has no page or
// the first page has no groups. Nothing was extracted; callers usually treat
// it as fatal.
var ErrEmptyDocument = errors.New("no children found in document")

// ItemError locates a data-shape error inside the document: which group,
// which child of that group and which field of the child.
type ItemError struct {
	Group string
	Child string
	Index int
	Field string
	Err   error
}

func (e *ItemError) Error() string {
	return fmt.Sprintf("group %q: child %q (#%d): %s: %v", e.Group, e.Child, e.Index, e.Field, e.Err)
}

func (e *ItemError) Unwrap() error {
	return e.Err
}
