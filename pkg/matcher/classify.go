package matcher

import (
	"github.com/ChrisMcGann/modmatch/pkg/core"
	"github.com/ChrisMcGann/modmatch/pkg/sequence"
)

// Classifier turns annotation text into a ModKey.
type Classifier struct {
	Catalog          Catalog
	DecimalSeparator string // empty means "."
}

// Classify classifies the annotation content written on residue aa at
// indexAA of a stripped sequence of strippedLen residues. The only error is
// an *UnrecognizedUniModError; seq is used for its message.
func (c *Classifier) Classify(seq, content string, aa byte, indexAA, strippedLen int, fam sequence.BracketFamily) (ModKey, error) {
	sep := c.DecimalSeparator
	if sep == "" {
		sep = sequence.DefaultDecimalSeparator
	}

	key := ModKey{
		AA:        aa,
		Terminus:  core.TerminusAt(indexAA, strippedLen),
		Heavy:     fam.Heavy(),
		RoundedTo: sequence.FractionDigits(content, sep, MaxRoundingDigits),
	}

	if id, ok := ParseUniModID(content); ok {
		mod, found := ResolveUniMod(c.Catalog, id, aa, key.Terminus)
		if !found {
			return ModKey{}, &UnrecognizedUniModError{ID: id, AA: aa, Sequence: seq}
		}
		key.Kind = KeyName
		key.Name = mod.Name
		key.UniModID = id
		key.Heavy = !c.Catalog.IsStructural(mod.Name)
		return key, nil
	}

	if mass, ok := sequence.ParseMass(content, sep); ok {
		key.Kind = KeyMass
		key.Mass = core.RoundFloat(mass, key.RoundedTo)
		return key, nil
	}

	key.Kind = KeyName
	key.Name = content
	return key, nil
}
