// Package calc provides precursor mass calculators for a modification
// configuration.
package calc

import (
	"fmt"
	"strings"

	"github.com/ChrisMcGann/modmatch/pkg/core"
)

// Precursor computes per-residue modification masses for one isotope label
// type. The light calculator applies the structural mods; a heavy calculator
// applies the structural mods plus the label mods of its type.
type Precursor struct {
	labelType string
	mods      []core.StaticMod
}

// NewLight returns the calculator for unlabeled peptides.
func NewLight(settings *core.Settings) *Precursor {
	p := &Precursor{}
	if settings != nil {
		p.mods = append(p.mods, settings.Static...)
	}
	return p
}

// NewHeavy returns the calculator for the given label type.
func NewHeavy(settings *core.Settings, labelType string) (*Precursor, error) {
	if settings == nil {
		return nil, fmt.Errorf("no settings for label type '%s'", labelType)
	}
	heavy, ok := settings.Heavy[labelType]
	if !ok {
		return nil, fmt.Errorf("unknown label type '%s'", labelType)
	}
	p := NewLight(settings)
	p.labelType = labelType
	p.mods = append(p.mods, heavy...)
	return p, nil
}

// LabelType returns the isotope label type; empty for the light calculator.
func (p *Precursor) LabelType() string {
	return p.labelType
}

// GetAAModMass returns the summed mass of the configured mods that apply to
// residue aa at indexAA of a peptide with length residues.
func (p *Precursor) GetAAModMass(aa byte, indexAA, length int) float64 {
	var mass float64
	for _, m := range p.mods {
		if m.IsMod(aa, indexAA, length) {
			mass += m.MassFor(aa)
		}
	}
	return mass
}

// GetModifiedMass returns the neutral mass of the unmodified residue string
// seq with the configured mods and the explicit ones applied.
func (p *Precursor) GetModifiedMass(seq string, explicit []core.Modification) float64 {
	seq = strings.ToUpper(seq)
	mods := make([]core.Modification, 0, len(explicit)+len(seq))
	mods = append(mods, explicit...)
	for i := 0; i < len(seq); i++ {
		if mass := p.GetAAModMass(seq[i], i, len(seq)); mass != 0 {
			mods = append(mods, core.Modification{Mass: mass, Position: i})
		}
	}
	return core.CalculateNeutralMass(seq, mods)
}
