package peplist

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadAll(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  []string
	}{
		{
			name:  "plain list",
			input: "# peptides\nPEPM[Oxidation]K\n\n  AC[57,02146]DEFK  \n",
			want:  []string{"PEPM[Oxidation]K", "AC[57,02146]DEFK"},
		},
		{
			name:  "csv first column",
			input: "PEPK[1.0],2\nLLK,3\n",
			opts:  Options{Comma: ','},
			want:  []string{"PEPK[1.0]", "LLK"},
		},
		{
			name:  "tsv named column",
			input: "Protein\tPeptide Modified Sequence\n# skipped\nP1\tPEPK{8.014199}\nP2\t\nP3\tAC(unimod:4)K\n",
			opts:  Options{Comma: '\t', Column: "peptide modified sequence"},
			want:  []string{"PEPK{8.014199}", "AC(unimod:4)K"},
		},
		{
			name:  "quoted csv field",
			input: "seq\n\"PEPK[1,5]\"\n",
			opts:  Options{Comma: ',', Column: "seq"},
			want:  []string{"PEPK[1,5]"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadAll(strings.NewReader(tt.input), tt.opts)
			if err != nil {
				t.Fatalf("ReadAll() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ReadAll() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadAllErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{"unknown column", "a,b\nx,y\n", Options{Comma: ',', Column: "seq"}, "no column 'seq'"},
		{"no header", "", Options{Comma: ',', Column: "seq"}, "no header row"},
		{"short row", "x,seq\n1\n", Options{Comma: ',', Column: "seq"}, "line 2: missing column 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadAll(strings.NewReader(tt.input), tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ReadAll() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestOptionsForPath(t *testing.T) {
	tests := []struct {
		path string
		want Options
	}{
		{"peptides.csv", Options{Comma: ',', Column: "seq"}},
		{"peptides.TSV", Options{Comma: '\t', Column: "seq"}},
		{"peptides.txt", Options{}},
	}
	for _, tt := range tests {
		if got := OptionsForPath(tt.path, "seq"); got != tt.want {
			t.Errorf("OptionsForPath(%q) = %+v, want %+v", tt.path, got, tt.want)
		}
	}
}
