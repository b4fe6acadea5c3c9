package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrUnterminatedAnnotation means an opening bracket has no closing
	// bracket of the same family.
	ErrUnterminatedAnnotation = errors.New("unterminated annotation")
	// ErrMismatchedDelimiter means a closing bracket appears outside any
	// annotation.
	ErrMismatchedDelimiter = errors.New("mismatched delimiter")
	// ErrAnnotationBeforeResidue means the sequence starts with an annotation.
	ErrAnnotationBeforeResidue = errors.New("annotation before first residue")
)

// ParseError reports a malformed annotated sequence.
type ParseError struct {
	Sequence string
	Offset   int // byte offset of the offending delimiter
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid sequence '%s' at offset %d: %v", e.Sequence, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
