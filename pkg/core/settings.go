package core

import (
	"fmt"
	"sort"
)

// Settings is the active modification configuration: the structural mods
// applied to every peptide and the isotope-label mods of each label type.
type Settings struct {
	Static []StaticMod
	Heavy  map[string][]StaticMod
}

// ResolveSettings builds Settings from catalog names.
func ResolveSettings(cat *Catalog, static []string, heavy map[string][]string) (*Settings, error) {
	s := &Settings{Heavy: make(map[string][]StaticMod)}
	for _, name := range static {
		m, ok := cat.Get(name)
		if !ok {
			return nil, fmt.Errorf("static modification '%s' not in catalog", name)
		}
		if m.Heavy() {
			return nil, fmt.Errorf("static modification '%s' is an isotope label", name)
		}
		s.Static = append(s.Static, m)
	}
	for label, names := range heavy {
		for _, name := range names {
			m, ok := cat.Get(name)
			if !ok {
				return nil, fmt.Errorf("%s modification '%s' not in catalog", label, name)
			}
			if !m.Heavy() {
				// structural mods dressed as labels still count as heavy
				m.LabelType = label
			}
			s.Heavy[label] = append(s.Heavy[label], m)
		}
	}
	return s, nil
}

// Empty reports whether no modifications are configured.
func (s *Settings) Empty() bool {
	if s == nil {
		return true
	}
	if len(s.Static) > 0 {
		return false
	}
	for _, mods := range s.Heavy {
		if len(mods) > 0 {
			return false
		}
	}
	return true
}

// LabelTypes returns the configured heavy label types, sorted.
func (s *Settings) LabelTypes() []string {
	if s == nil {
		return nil
	}
	labels := make([]string, 0, len(s.Heavy))
	for label := range s.Heavy {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// FindStatic returns the structural mod called name.
func (s *Settings) FindStatic(name string) (StaticMod, bool) {
	if s == nil {
		return StaticMod{}, false
	}
	return findByName(s.Static, name)
}

// FindHeavy returns the mod called name of the given label type.
func (s *Settings) FindHeavy(label, name string) (StaticMod, bool) {
	if s == nil {
		return StaticMod{}, false
	}
	return findByName(s.Heavy[label], name)
}

func findByName(mods []StaticMod, name string) (StaticMod, bool) {
	for _, m := range mods {
		if m.Name == name {
			return m, true
		}
	}
	return StaticMod{}, false
}
