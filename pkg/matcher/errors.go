package matcher

import (
	"fmt"
	"strings"
)

// UnrecognizedUniModError means a unimod:<id> annotation has no catalog
// entry under any lookup variant. The catalog is incomplete, so the
// annotation is not tracked as unmatched.
type UnrecognizedUniModError struct {
	ID       int
	AA       byte
	Sequence string
}

func (e *UnrecognizedUniModError) Error() string {
	return fmt.Sprintf("unrecognized UniMod id %d on %c in modified peptide sequence %s", e.ID, e.AA, e.Sequence)
}

// UnmatchedError lists the annotations of a batch that could not be
// interpreted, sorted.
type UnmatchedError struct {
	Fragments []string
}

func (e *UnmatchedError) Error() string {
	var sb strings.Builder
	sb.WriteString("the following modifications could not be interpreted:")
	for _, f := range e.Fragments {
		sb.WriteString("\n")
		sb.WriteString(f)
	}
	return sb.String()
}
