package matcher

import (
	"errors"
	"testing"

	"github.com/ChrisMcGann/modmatch/pkg/core"
)

func TestSimplifyUniMod(t *testing.T) {
	cat := core.DefaultCatalog()
	tests := []struct {
		name string
		seq  string
		want string
	}{
		{"label to curly", "PEPK[unimod:259]", "PEPK{unimod:259}"},
		{"structural to square", "PEPM{unimod:35}K", "PEPM[unimod:35]K"},
		{"round to square", "PEPM(unimod:35)K", "PEPM[unimod:35]K"},
		{"already canonical", "PEPM[unimod:35]K{unimod:259}", "PEPM[unimod:35]K{unimod:259}"},
		{"other annotations untouched", "PEPM(Oxidation)K{8.0}", "PEPM(Oxidation)K{8.0}"},
		{"two on one residue", "PEPK[unimod:1][unimod:259]", "PEPK[unimod:1]{unimod:259}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SimplifyUniMod(tt.seq, cat)
			if err != nil {
				t.Fatalf("SimplifyUniMod() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("SimplifyUniMod() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimplifyUniModUnknownID(t *testing.T) {
	_, err := SimplifyUniMod("PEPK[unimod:99999]", core.DefaultCatalog())
	var uerr *UnrecognizedUniModError
	if !errors.As(err, &uerr) {
		t.Errorf("error = %v, want *UnrecognizedUniModError", err)
	}
}
