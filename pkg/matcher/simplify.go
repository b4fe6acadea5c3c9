package matcher

// SimplifyUniMod rewrites the delimiters of every unimod:<id> annotation
// to the class of the modification it resolves to: {...} for labels,
// [...] for structural mods. Other annotations are left as written.
func (m *Matcher) SimplifyUniMod(seq string) (string, error) {
	var out []byte
	it := m.enumerate(seq, false)
	for it.Next() {
		site := it.Site()
		if _, ok := ParseUniModID(site.Annotation.Content); !ok {
			continue
		}
		open, closing := byte('['), byte(']')
		if site.Key.Heavy {
			open, closing = '{', '}'
		}
		a := site.Annotation
		if seq[a.Open] == open && seq[a.Close] == closing {
			continue
		}
		if out == nil {
			out = []byte(seq)
		}
		out[a.Open] = open
		out[a.Close] = closing
	}
	if err := it.Err(); err != nil {
		return "", err
	}
	if out == nil {
		return seq, nil
	}
	return string(out), nil
}

// SimplifyUniMod rewrites the unimod:<id> annotations of seq using cat.
func SimplifyUniMod(seq string, cat Catalog) (string, error) {
	return New(cat, "", nil).SimplifyUniMod(seq)
}
