package matcher

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ChrisMcGann/modmatch/pkg/core"
)

func resolvedNames(r Result) []string {
	var names []string
	for _, s := range r.Sites {
		if s.Resolved {
			names = append(names, s.Mod.Name)
		} else {
			names = append(names, "?")
		}
	}
	return names
}

func TestSessionMatchCatalog(t *testing.T) {
	tests := []struct {
		name    string
		seq     string
		want    []string
		tracked []string
	}{
		{"by name", "PEPM[Oxidation]K", []string{"Oxidation"}, nil},
		{"by mass", "PEPM[15.9949]K", []string{"Oxidation"}, nil},
		{"by UniMod", "PEPS(unimod:21)K", []string{"Phospho"}, nil},
		{"heavy by mass", "PEPTIDEK{8.014199}", []string{"Label:13C(6)15N(2)"}, nil},
		{"N-terminal mass", "A[42.0106]CDK", []string{"Acetyl (N-term)"}, nil},
		{"lysine acetyl prefers residue form", "AK[42.0106]DK", []string{"Acetyl (K)"}, nil},
		{"unknown name", "PEPK[Bogus]R", []string{"?"}, []string{"K[Bogus]"}},
		{"name on wrong residue", "PEPK[Oxidation]R", []string{"?"}, []string{"K[Oxidation]"}},
		{"label in light brackets", "PEPK[Label:13C(6)15N(2)]", []string{"?"}, []string{"K[Label:13C(6)15N(2)]"}},
		{"conflict and unresolved", "PEPM[Oxidation][1.5]K", []string{"Oxidation"}, []string{"M[Oxidation][1.5]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(core.DefaultCatalog(), Options{})
			r, err := s.Match(tt.seq)
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, resolvedNames(r)); diff != "" {
				t.Errorf("resolved mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.tracked, trackedOrNil(s.Tracker())); diff != "" {
				t.Errorf("tracked mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSessionDedupAcrossSequences(t *testing.T) {
	s := NewSession(core.DefaultCatalog(), Options{})
	for _, seq := range []string{"AK[Bogus]", "PEPK[Bogus]R", "M[Oxidation]K"} {
		if _, err := s.Match(seq); err != nil {
			t.Fatalf("Match(%q) error = %v", seq, err)
		}
	}
	if diff := cmp.Diff([]string{"K[Bogus]"}, s.Report()); diff != "" {
		t.Errorf("Report() mismatch (-want +got):\n%s", diff)
	}
	var uerr *UnmatchedError
	if !errors.As(s.Err(), &uerr) || len(uerr.Fragments) != 1 {
		t.Errorf("Err() = %v, want one unmatched fragment", s.Err())
	}
}

func TestSessionMatchSettings(t *testing.T) {
	settings := testSettings(t)

	tests := []struct {
		name         string
		seq          string
		strict       bool
		fromSettings bool
		labelType    string
		tracked      []string
	}{
		{"light explained", "AC[57.02146]DEFK", false, true, "", nil},
		{"heavy explained", "PEPC[57.02]K{8.014199}", false, true, core.LabelTypeHeavy, nil},
		{"falls back to catalog", "PEPC[57.02]M[Oxidation]K", false, false, "", nil},
		{"unresolved after fallback", "AC[57.03]DEFK", false, false, "", []string{"C[57.03]"}},
		{"bare residue not tracked", "PEPTIDEC", false, false, "", nil},
		{"strict tracks bare residue", "PEPTIDEC", true, false, "", []string{"C"}},
		{"strict tracks mismatch", "PEPC[57.02]M[Oxidation]K", true, false, "", []string{"M[Oxidation]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(core.DefaultCatalog(), Options{Settings: settings, Strict: tt.strict})
			r, err := s.Match(tt.seq)
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if r.FromSettings != tt.fromSettings || r.LabelType != tt.labelType {
				t.Errorf("FromSettings/LabelType = %v/%q, want %v/%q", r.FromSettings, r.LabelType, tt.fromSettings, tt.labelType)
			}
			if diff := cmp.Diff(tt.tracked, trackedOrNil(s.Tracker())); diff != "" {
				t.Errorf("tracked mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSessionMatchErrors(t *testing.T) {
	s := NewSession(core.DefaultCatalog(), Options{})
	if _, err := s.Match("PEPK[unimod:99999]"); err == nil {
		t.Error("Match() with unknown UniMod id succeeded")
	}
	if _, err := s.Match("[Acetyl]PEPK"); err == nil {
		t.Error("Match() with leading annotation succeeded")
	}
	if s.Tracker().Len() != 0 {
		t.Errorf("tracker has %d entries, want 0", s.Tracker().Len())
	}
}
