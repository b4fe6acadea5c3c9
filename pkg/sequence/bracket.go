// Package sequence scans modified peptide sequences: amino acids followed by
// annotations in [...], {...} or (...) brackets.
package sequence

// BracketFamily is one of the three annotation delimiter pairs.
type BracketFamily int

const (
	Square BracketFamily = iota // [...], light
	Curly                       // {...}, heavy / isotope label
	Round                       // (...), light
)

const (
	openChars  = "[{("
	closeChars = "]})"
)

// FamilyOf returns the family opened by c.
func FamilyOf(c byte) (BracketFamily, bool) {
	for i := 0; i < len(openChars); i++ {
		if openChars[i] == c {
			return BracketFamily(i), true
		}
	}
	return 0, false
}

// Open returns the opening delimiter.
func (f BracketFamily) Open() byte { return openChars[f] }

// Close returns the closing delimiter.
func (f BracketFamily) Close() byte { return closeChars[f] }

// Heavy reports whether the family marks an isotope label.
func (f BracketFamily) Heavy() bool { return f == Curly }

func (f BracketFamily) String() string {
	switch f {
	case Square:
		return "square"
	case Curly:
		return "curly"
	case Round:
		return "round"
	}
	return "unknown"
}

// IsOpen reports whether c opens an annotation.
func IsOpen(c byte) bool {
	_, ok := FamilyOf(c)
	return ok
}

// IsClose reports whether c closes an annotation.
func IsClose(c byte) bool {
	for i := 0; i < len(closeChars); i++ {
		if closeChars[i] == c {
			return true
		}
	}
	return false
}
