package core

import (
	"fmt"
	"strings"
)

// Terminus describes which peptide end a residue or modification sits on.
type Terminus int

const (
	TerminusNone Terminus = iota
	TerminusN
	TerminusC
	// TerminusBoth is only produced for single-residue peptides, where the
	// residue is both the first and the last one.
	TerminusBoth
)

// TerminusAt returns the terminus of the residue at indexAA in a peptide of
// the given length.
func TerminusAt(indexAA, length int) Terminus {
	t := TerminusNone
	if indexAA == 0 {
		t |= TerminusN
	}
	if indexAA == length-1 {
		t |= TerminusC
	}
	return t
}

// HasN reports whether t includes the N-terminus.
func (t Terminus) HasN() bool { return t&TerminusN != 0 }

// HasC reports whether t includes the C-terminus.
func (t Terminus) HasC() bool { return t&TerminusC != 0 }

// Ends splits t into the single termini it covers, N first.
func (t Terminus) Ends() []Terminus {
	var ends []Terminus
	if t.HasN() {
		ends = append(ends, TerminusN)
	}
	if t.HasC() {
		ends = append(ends, TerminusC)
	}
	return ends
}

func (t Terminus) String() string {
	switch t {
	case TerminusNone:
		return ""
	case TerminusN:
		return "N"
	case TerminusC:
		return "C"
	case TerminusBoth:
		return "NC"
	}
	return fmt.Sprintf("Terminus(%d)", int(t))
}

// ParseTerminus parses "", "N", "C" (case-insensitive, optional "-term" suffix).
func ParseTerminus(s string) (Terminus, error) {
	s = strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(s)), "-TERM")
	switch s {
	case "", "NONE":
		return TerminusNone, nil
	case "N":
		return TerminusN, nil
	case "C":
		return TerminusC, nil
	}
	return TerminusNone, fmt.Errorf("invalid terminus '%s', expected N, C or empty", s)
}
