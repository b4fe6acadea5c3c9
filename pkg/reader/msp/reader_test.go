package msp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
	}{
		{
			name: "msp",
			input: `Name: AC[57.02146]DEFK/2
MW: 771.29
Comment: Parent=386.65 Collision_energy=35 iRT=61.01
Num peaks: 2
147.11	1000	"y1/0.0ppm"
276.15	500	"y2/0.1ppm"

Name: PEPM[Oxidation]K{8.014199}/3
Comment: Parent=250.1
Num peaks: 1
147.11	1000	"y1"
`,
			want: []Entry{
				{Sequence: "AC[57.02146]DEFK", Charge: 2, PrecursorMZ: 386.65, Line: 1},
				{Sequence: "PEPM[Oxidation]K{8.014199}", Charge: 3, PrecursorMZ: 250.1, Line: 8},
			},
		},
		{
			name: "sptxt",
			input: `### SpectraST library
Name: PEPS[unimod:21]K/2
LibID: 0
PrecursorMZ: 333.5
NumPeaks: 1
110.07	200	?

Name: LLK/1
LibID: 1
NumPeaks: 0
`,
			want: []Entry{
				{Sequence: "PEPS[unimod:21]K", Charge: 2, PrecursorMZ: 333.5, Line: 2},
				{Sequence: "LLK", Charge: 1, Line: 8},
			},
		},
		{
			name:  "truncated last entry",
			input: "Name: PEPK/2\nNum peaks: 5\n100 1\n",
			want:  []Entry{{Sequence: "PEPK", Charge: 2, Line: 1}},
		},
		{
			name:  "empty",
			input: "\n\n",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))
			var got []Entry
			for r.Next() {
				got = append(got, *r.Entry())
			}
			if err := r.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("entries mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReaderErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing charge", "Name: PEPK\n", "line 1: invalid name format"},
		{"bad charge", "Name: PEPK/x\n", "line 1: invalid charge"},
		{"bad peak count", "Name: PEPK/2\nNum peaks: many\n", "line 2: invalid num peaks"},
		{"field before name", "Num peaks: 2\n", "line 1: Num peaks before Name"},
		{"garbage", "Name: PEPK/2\nthis is not a field\n", "line 2: unexpected line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.input))
			for r.Next() {
			}
			if err := r.Err(); err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Err() = %v, want containing %q", err, tt.want)
			}
		})
	}
}
