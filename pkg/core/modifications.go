package core

import (
	"fmt"
	"strings"
)

// Modification represents a peptide modification with position and mass shift.
type Modification struct {
	Mass     float64
	Position int    // 0-based residue index
	Name     string // Modification name (e.g., "Carbamidomethyl", "Oxidation")
}

// LabelAtoms is a set of elements replaced by their heavy isotope.
type LabelAtoms uint8

const (
	LabelC13 LabelAtoms = 1 << iota
	LabelN15
	LabelO18
	LabelH2
)

var labelNames = []struct {
	atom LabelAtoms
	name string
}{
	{LabelC13, "13C"},
	{LabelN15, "15N"},
	{LabelO18, "18O"},
	{LabelH2, "2H"},
}

func (l LabelAtoms) String() string {
	var parts []string
	for _, ln := range labelNames {
		if l&ln.atom != 0 {
			parts = append(parts, ln.name)
		}
	}
	return strings.Join(parts, ",")
}

// ParseLabelAtoms parses a list such as "13C,15N" (separated by commas,
// spaces or semicolons).
func ParseLabelAtoms(s string) (LabelAtoms, error) {
	var labels LabelAtoms
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	for _, f := range fields {
		found := false
		for _, ln := range labelNames {
			if strings.EqualFold(f, ln.name) {
				labels |= ln.atom
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown label atom '%s'", f)
		}
	}
	return labels, nil
}

// StaticMod is a named modification definition: a fixed mass shift, or an
// isotope label, applied to a set of residues and optionally one terminus.
type StaticMod struct {
	Name      string
	AAs       string // residues the mod applies to; empty means any residue
	Terminus  Terminus
	UniModID  int // 0 when the mod has no UniMod accession
	MonoMass  float64
	Labels    LabelAtoms
	LabelType string // isotope label type, e.g. "heavy"; empty for structural mods
}

// Heavy reports whether the mod is an isotope label rather than a
// structural modification.
func (m StaticMod) Heavy() bool {
	return m.Labels != 0 || m.LabelType != ""
}

// AppliesToAll reports whether the mod is not restricted to specific residues.
func (m StaticMod) AppliesToAll() bool {
	return m.AAs == ""
}

// IsMod reports whether the mod can sit on residue aa at indexAA of a
// peptide with length residues.
func (m StaticMod) IsMod(aa byte, indexAA, length int) bool {
	if m.AAs != "" && !strings.ContainsRune(m.AAs, rune(aa)) {
		return false
	}
	switch m.Terminus {
	case TerminusN:
		return indexAA == 0
	case TerminusC:
		return indexAA == length-1
	}
	return true
}

// MassFor returns the mass shift the mod adds to residue aa.
func (m StaticMod) MassFor(aa byte) float64 {
	if m.Labels != 0 {
		comp, ok := AminoAcidMasses[rune(aa)]
		if !ok {
			return 0
		}
		return comp.LabelMass(m.Labels)
	}
	return m.MonoMass
}

// Validate checks the fields a catalog entry needs.
func (m StaticMod) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("modification name is required")
	}
	for i := 0; i < len(m.AAs); i++ {
		if !IsAminoAcid(m.AAs[i]) {
			return fmt.Errorf("modification %s: invalid amino acid '%c'", m.Name, m.AAs[i])
		}
	}
	if m.Terminus == TerminusBoth {
		return fmt.Errorf("modification %s: terminus must be N or C", m.Name)
	}
	if m.UniModID < 0 {
		return fmt.Errorf("modification %s: negative UniMod id %d", m.Name, m.UniModID)
	}
	if m.Labels == 0 && m.MonoMass == 0 {
		return fmt.Errorf("modification %s: mass or label atoms required", m.Name)
	}
	return nil
}

// NormalizeAAs reduces residue lists such as "S, T, Y" to "STY".
func NormalizeAAs(aas string) string {
	var sb strings.Builder
	for _, r := range strings.ToUpper(aas) {
		if r >= 'A' && r <= 'Z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
