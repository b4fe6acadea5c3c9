package sequence

import (
	"strings"
)

// Annotation is one bracketed annotation in an annotated sequence.
type Annotation struct {
	Family  BracketFamily
	Content string // text between the delimiters
	Open    int    // offset of the opening delimiter
	Close   int    // offset of the closing delimiter
}

// RawSite is one residue, or one annotation on a residue, as found by the
// Scanner. A residue with several annotations yields one RawSite per
// annotation, all with the same indexes.
type RawSite struct {
	AA           byte
	Annotation   *Annotation // nil for an unmodified residue
	IndexAA      int         // index in the stripped sequence
	IndexAAInSeq int         // offset of the residue in the annotated sequence
}

// Strip removes every annotation, returning the bare residues.
func Strip(seq string) (string, error) {
	return stripFamilies(seq, func(BracketFamily) bool { return true })
}

// stripFamilies removes the annotations whose family drop selects and
// validates the delimiters of all of them.
func stripFamilies(seq string, drop func(BracketFamily) bool) (string, error) {
	var sb strings.Builder
	sb.Grow(len(seq))
	for i := 0; i < len(seq); i++ {
		c := seq[i]
		if IsClose(c) {
			return "", &ParseError{Sequence: seq, Offset: i, Err: ErrMismatchedDelimiter}
		}
		fam, ok := FamilyOf(c)
		if !ok {
			sb.WriteByte(c)
			continue
		}
		if i == 0 {
			return "", &ParseError{Sequence: seq, Offset: i, Err: ErrAnnotationBeforeResidue}
		}
		end := strings.IndexByte(seq[i+1:], fam.Close())
		if end < 0 {
			return "", &ParseError{Sequence: seq, Offset: i, Err: ErrUnterminatedAnnotation}
		}
		end += i + 1
		if !drop(fam) {
			sb.WriteString(seq[i : end+1])
		}
		i = end
	}
	return sb.String(), nil
}

// Scanner walks an annotated sequence residue by residue. It is single-pass:
//
//	sc := sequence.NewScanner(seq)
//	for sc.Next() {
//		site := sc.Site()
//	}
//	if err := sc.Err(); err != nil { ... }
type Scanner struct {
	seq          string
	stripped     string
	includeUnmod bool

	// cursor is where the next delimiter or residue is looked for.
	cursor  int
	at      int
	indexAA int
	started bool
	// pending is set while the residue at at may still carry annotations
	// starting at cursor.
	pending   bool
	annotated bool

	site RawSite
	err  error
}

// NewScanner creates a scanner over seq. Delimiters are validated up front,
// so a malformed sequence yields no sites.
func NewScanner(seq string) *Scanner {
	s := &Scanner{seq: seq}
	s.stripped, s.err = Strip(seq)
	return s
}

// IncludeUnmodified makes the scanner also yield residues without
// annotations, with a nil Annotation.
func (s *Scanner) IncludeUnmodified() *Scanner {
	s.includeUnmod = true
	return s
}

// Stripped returns the sequence without annotations.
func (s *Scanner) Stripped() string {
	return s.stripped
}

// Next advances to the next site. Returns false at the end of the sequence or
// on error.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	for {
		if !s.pending {
			if s.cursor >= len(s.seq) {
				return false
			}
			if s.started {
				s.indexAA++
			}
			s.started = true
			s.at = s.cursor
			s.cursor++
			s.pending = true
			s.annotated = false
		}

		if s.cursor < len(s.seq) {
			if fam, ok := FamilyOf(s.seq[s.cursor]); ok {
				open := s.cursor
				end := strings.IndexByte(s.seq[open+1:], fam.Close())
				if end < 0 {
					s.err = &ParseError{Sequence: s.seq, Offset: open, Err: ErrUnterminatedAnnotation}
					return false
				}
				end += open + 1
				s.site = RawSite{
					AA: s.seq[s.at],
					Annotation: &Annotation{
						Family:  fam,
						Content: s.seq[open+1 : end],
						Open:    open,
						Close:   end,
					},
					IndexAA:      s.indexAA,
					IndexAAInSeq: s.at,
				}
				s.cursor = end + 1
				s.annotated = true
				return true
			}
		}

		s.pending = false
		if !s.annotated && s.includeUnmod {
			s.site = RawSite{AA: s.seq[s.at], IndexAA: s.indexAA, IndexAAInSeq: s.at}
			return true
		}
	}
}

// Site returns the current site.
func (s *Scanner) Site() RawSite {
	return s.site
}

// Err returns any error encountered during scanning.
func (s *Scanner) Err() error {
	return s.err
}
