package core

import (
	"math"
	"testing"
)

func TestCalculatePeptideMass(t *testing.T) {
	tests := []struct {
		name          string
		sequence      string
		charge        int
		modifications []Modification
		wantMZ        float64
		tolerance     float64
	}{
		{
			name:      "simple peptide charge 1",
			sequence:  "AAA",
			charge:    1,
			wantMZ:    232.129,
			tolerance: 0.01,
		},
		{
			name:      "simple peptide charge 2",
			sequence:  "AAA",
			charge:    2,
			wantMZ:    116.568,
			tolerance: 0.01,
		},
		{
			name:     "carbamidomethyl cysteine",
			sequence: "ACDEFK",
			charge:   2,
			modifications: []Modification{
				{Mass: 57.021464, Position: 1, Name: "Carbamidomethyl"},
			},
			wantMZ:    385.163,
			tolerance: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePeptideMass(tt.sequence, tt.charge, tt.modifications)
			if math.Abs(got-tt.wantMZ) > tt.tolerance {
				t.Errorf("CalculatePeptideMass() = %.4f, want %.4f (within %.3f)", got, tt.wantMZ, tt.tolerance)
			}
		})
	}
}

func TestCalculateNeutralMass(t *testing.T) {
	got := CalculateNeutralMass("aaa", nil)
	if math.Abs(got-231.1219) > 0.001 {
		t.Errorf("CalculateNeutralMass(aaa) = %.4f, want 231.1219", got)
	}
}

func TestLabelMass(t *testing.T) {
	tests := []struct {
		name   string
		aa     rune
		labels LabelAtoms
		want   float64
	}{
		{"K 13C6 15N2", 'K', LabelC13 | LabelN15, 8.014199},
		{"R 13C6 15N4", 'R', LabelC13 | LabelN15, 10.008269},
		{"K 13C6", 'K', LabelC13, 6.020129},
		{"no labels", 'K', 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundFloat(AminoAcidMasses[tt.aa].LabelMass(tt.labels), 6)
			if got != tt.want {
				t.Errorf("LabelMass() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundFloat(t *testing.T) {
	tests := []struct {
		name      string
		val       float64
		precision int
		want      float64
	}{
		{"round to 2 decimals", 3.14159, 2, 3.14},
		{"round to 4 decimals", 3.14159, 4, 3.1416},
		{"round to 0 decimals", 3.6, 0, 4.0},
		{"round negative", -3.14159, 2, -3.14},
		{"half away from zero", 2.5, 0, 3},
		{"negative half away from zero", -2.5, 0, -3},
		{"five digit mass", 57.021464, 5, 57.02146},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RoundFloat(tt.val, tt.precision)
			if got != tt.want {
				t.Errorf("RoundFloat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTerminusAt(t *testing.T) {
	tests := []struct {
		indexAA, length int
		want            Terminus
	}{
		{0, 5, TerminusN},
		{4, 5, TerminusC},
		{2, 5, TerminusNone},
		{0, 1, TerminusBoth},
	}

	for _, tt := range tests {
		got := TerminusAt(tt.indexAA, tt.length)
		if got != tt.want {
			t.Errorf("TerminusAt(%d, %d) = %v, want %v", tt.indexAA, tt.length, got, tt.want)
		}
	}

	both := TerminusAt(0, 1)
	if !both.HasN() || !both.HasC() {
		t.Errorf("single residue terminus %v should have both ends", both)
	}
	if ends := both.Ends(); len(ends) != 2 || ends[0] != TerminusN || ends[1] != TerminusC {
		t.Errorf("Ends() = %v, want [N C]", ends)
	}
}

func TestParseTerminus(t *testing.T) {
	tests := []struct {
		in      string
		want    Terminus
		wantErr bool
	}{
		{"", TerminusNone, false},
		{"n", TerminusN, false},
		{"C-term", TerminusC, false},
		{"X", TerminusNone, true},
	}

	for _, tt := range tests {
		got, err := ParseTerminus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTerminus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTerminus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
