package core

import "fmt"

// UniModKey identifies a catalog entry by UniMod accession, residue and
// terminus. AllAAs selects entries that apply to any residue; their AA is
// ignored.
type UniModKey struct {
	ID       int
	AA       byte
	AllAAs   bool
	Terminus Terminus
}

func (k UniModKey) normalize() UniModKey {
	if k.AllAAs {
		k.AA = 0
	}
	return k
}

// Catalog stores the known modification definitions, indexed by name and by
// UniMod key. It is safe for concurrent readers once loading is done.
type Catalog struct {
	mods   []StaticMod
	byName map[string]int
	byID   map[UniModKey]int
}

// NewCatalog creates a catalog holding mods, in order.
func NewCatalog(mods ...StaticMod) *Catalog {
	c := &Catalog{
		byName: make(map[string]int),
		byID:   make(map[UniModKey]int),
	}
	for _, m := range mods {
		c.Add(m)
	}
	return c
}

// Add adds or updates a modification. An entry with the same name is replaced
// in place.
func (c *Catalog) Add(m StaticMod) {
	m.AAs = NormalizeAAs(m.AAs)
	if i, ok := c.byName[m.Name]; ok {
		c.mods[i] = m
		c.reindex()
		return
	}
	c.byName[m.Name] = len(c.mods)
	c.mods = append(c.mods, m)
	c.indexUniMod(len(c.mods) - 1)
}

func (c *Catalog) reindex() {
	c.byID = make(map[UniModKey]int)
	for i := range c.mods {
		c.indexUniMod(i)
	}
}

func (c *Catalog) indexUniMod(i int) {
	m := c.mods[i]
	if m.UniModID == 0 {
		return
	}
	put := func(k UniModKey) {
		if _, taken := c.byID[k]; !taken {
			c.byID[k] = i
		}
	}
	if m.AppliesToAll() {
		put(UniModKey{ID: m.UniModID, AllAAs: true, Terminus: m.Terminus})
		return
	}
	for j := 0; j < len(m.AAs); j++ {
		put(UniModKey{ID: m.UniModID, AA: m.AAs[j], Terminus: m.Terminus})
	}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.mods)
}

// Mods returns a copy of the entries in catalog order.
func (c *Catalog) Mods() []StaticMod {
	out := make([]StaticMod, len(c.mods))
	copy(out, c.mods)
	return out
}

// Get returns the entry with the given name.
func (c *Catalog) Get(name string) (StaticMod, bool) {
	i, ok := c.byName[name]
	if !ok {
		return StaticMod{}, false
	}
	return c.mods[i], true
}

// FindUniMod looks up one exact UniMod key.
func (c *Catalog) FindUniMod(key UniModKey) (StaticMod, bool) {
	i, ok := c.byID[key.normalize()]
	if !ok {
		return StaticMod{}, false
	}
	return c.mods[i], true
}

// FindNamed returns the entry called name if its heavy/light class matches.
func (c *Catalog) FindNamed(name string, heavy bool) (StaticMod, bool) {
	m, ok := c.Get(name)
	if !ok || m.Heavy() != heavy {
		return StaticMod{}, false
	}
	return m, true
}

// IsStructural reports whether name is a known non-label modification.
func (c *Catalog) IsStructural(name string) bool {
	m, ok := c.Get(name)
	return ok && !m.Heavy()
}

// FindByMass returns the entry of the requested class that applies at
// indexAA and whose mass on aa, rounded to digits, equals mass. Residue
// specific entries win over any-residue ones and non-terminal entries over
// terminal ones; ties go to catalog order.
func (c *Catalog) FindByMass(aa byte, indexAA, length int, mass float64, digits int, heavy bool) (StaticMod, bool) {
	best, bestRank := -1, 0
	for i, m := range c.mods {
		if m.Heavy() != heavy || !m.IsMod(aa, indexAA, length) {
			continue
		}
		if RoundFloat(m.MassFor(aa), digits) != mass {
			continue
		}
		rank := 0
		if m.AppliesToAll() {
			rank++
		}
		if m.Terminus != TerminusNone {
			rank += 2
		}
		if best < 0 || rank < bestRank {
			best, bestRank = i, rank
		}
	}
	if best < 0 {
		return StaticMod{}, false
	}
	return c.mods[best], true
}

// Merge adds every entry of other, replacing same-named entries.
func (c *Catalog) Merge(other *Catalog) {
	for _, m := range other.mods {
		c.Add(m)
	}
}

// Validate checks every entry.
func (c *Catalog) Validate() error {
	for _, m := range c.mods {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("invalid catalog: %w", err)
		}
	}
	return nil
}
