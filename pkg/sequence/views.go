package sequence

import "strings"

// LightView drops the heavy {...} annotations, keeping [...] and (...).
func LightView(seq string) (string, error) {
	return stripFamilies(seq, func(f BracketFamily) bool { return f == Curly })
}

// HeavyView drops the light [...] and (...) annotations, keeping {...}.
func HeavyView(seq string) (string, error) {
	return stripFamilies(seq, func(f BracketFamily) bool { return f != Curly })
}

// HasFamily reports whether seq contains an opening delimiter of f.
func HasFamily(seq string, f BracketFamily) bool {
	return strings.IndexByte(seq, f.Open()) >= 0
}

// ResidueOffsets maps each stripped-sequence index to the offset of that
// residue in the annotated sequence.
func ResidueOffsets(seq string) ([]int, error) {
	sc := NewScanner(seq).IncludeUnmodified()
	offsets := make([]int, 0, len(sc.Stripped()))
	for sc.Next() {
		site := sc.Site()
		if site.IndexAA == len(offsets) {
			offsets = append(offsets, site.IndexAAInSeq)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return offsets, nil
}

// LooksIsotopeSpecific reports whether every bracket family opens fewer
// times than there are residues, i.e. not every residue carries a bracket of
// one kind.
func LooksIsotopeSpecific(seq, stripped string) bool {
	for i := 0; i < len(openChars); i++ {
		if strings.Count(seq, openChars[i:i+1]) >= len(stripped) {
			return false
		}
	}
	return true
}

// UnmatchedFragment returns the residue at offset start of seq together with
// all annotations that immediately follow it, e.g. "K[15.0][16.0]" from
// "PEPK[15.0][16.0]R". A closing delimiter only ends an annotation when it
// belongs to the family that opened it.
func UnmatchedFragment(seq string, start int) string {
	if start < 0 || start >= len(seq) {
		return ""
	}
	var sb strings.Builder
	sb.WriteByte(seq[start])
	for i := start + 1; i < len(seq); {
		fam, ok := FamilyOf(seq[i])
		if !ok {
			break
		}
		end := strings.IndexByte(seq[i+1:], fam.Close())
		if end < 0 {
			sb.WriteString(seq[i:])
			break
		}
		end += i + 1
		sb.WriteString(seq[i : end+1])
		i = end + 1
	}
	return sb.String()
}
