// Package matcher reconciles the annotations of modified peptide sequences
// with a modification catalog and the active modification settings.
package matcher

import (
	"github.com/ChrisMcGann/modmatch/pkg/core"
	"github.com/ChrisMcGann/modmatch/pkg/sequence"
)

// MaxRoundingDigits caps the precision a typed mass is trusted to.
const MaxRoundingDigits = 6

// Catalog is the modification lookup matching runs against.
// *core.Catalog implements it.
type Catalog interface {
	FindUniMod(key core.UniModKey) (core.StaticMod, bool)
	FindNamed(name string, heavy bool) (core.StaticMod, bool)
	FindByMass(aa byte, indexAA, length int, mass float64, digits int, heavy bool) (core.StaticMod, bool)
	IsStructural(name string) bool
}

// Calculator reports the modification mass a precursor calculator puts on a
// residue. *calc.Precursor implements it.
type Calculator interface {
	GetAAModMass(aa byte, indexAA, length int) float64
}

// KeyKind tells which field of a ModKey carries the annotation.
type KeyKind int

const (
	KeyName KeyKind = iota + 1
	KeyMass
)

func (k KeyKind) String() string {
	switch k {
	case KeyName:
		return "name"
	case KeyMass:
		return "mass"
	}
	return "unknown"
}

// ModKey is a classified annotation.
type ModKey struct {
	Kind     KeyKind
	Name     string  // set for KeyName
	Mass     float64 // set for KeyMass, rounded to RoundedTo digits
	AA       byte
	Terminus core.Terminus
	// Heavy is the user-indicated class: curly brackets, or for UniMod
	// references whether the resolved mod is a label.
	Heavy     bool
	RoundedTo int
	// LooksIsotopeSpecific is set when not every residue carries a bracket
	// of one family.
	LooksIsotopeSpecific bool
	UniModID             int // id when written as unimod:<id>
}

// ModSite is a classified annotation at its position in the sequence.
type ModSite struct {
	Key          ModKey
	IndexAA      int
	IndexAAInSeq int
	// Annotation is nil for the unmodified residues produced by
	// Sites.IncludeUnmodified.
	Annotation *sequence.Annotation
}
