package matcher

import (
	"strconv"
	"strings"

	"github.com/ChrisMcGann/modmatch/pkg/core"
)

const uniModPrefix = "unimod:"

// ParseUniModID extracts the id from a "unimod:<id>" annotation (prefix
// case-insensitive). Anything else, including a non-numeric or negative
// id, is not a UniMod reference.
func ParseUniModID(s string) (int, bool) {
	if len(s) < len(uniModPrefix) || !strings.EqualFold(s[:len(uniModPrefix)], uniModPrefix) {
		return 0, false
	}
	id, err := strconv.Atoi(s[len(uniModPrefix):])
	if err != nil || id < 0 {
		return 0, false
	}
	return id, true
}

// UniModKeys lists the catalog keys tried for a UniMod id on residue aa, in
// order: residue specific, any residue, then for terminal residues the
// terminal residue-specific and any-residue forms of each terminus.
func UniModKeys(id int, aa byte, term core.Terminus) []core.UniModKey {
	keys := []core.UniModKey{
		{ID: id, AA: aa},
		{ID: id, AA: aa, AllAAs: true},
	}
	for _, end := range term.Ends() {
		keys = append(keys,
			core.UniModKey{ID: id, AA: aa, Terminus: end},
			core.UniModKey{ID: id, AA: aa, AllAAs: true, Terminus: end},
		)
	}
	return keys
}

// ResolveUniMod returns the first catalog entry found under UniModKeys.
func ResolveUniMod(cat Catalog, id int, aa byte, term core.Terminus) (core.StaticMod, bool) {
	for _, key := range UniModKeys(id, aa, term) {
		if m, ok := cat.FindUniMod(key); ok {
			return m, true
		}
	}
	return core.StaticMod{}, false
}
