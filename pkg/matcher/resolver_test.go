package matcher

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ChrisMcGann/modmatch/pkg/core"
)

func TestParseUniModID(t *testing.T) {
	tests := []struct {
		in     string
		want   int
		wantOK bool
	}{
		{"unimod:35", 35, true},
		{"UniMod:4", 4, true},
		{"UNIMOD:0", 0, true},
		{"unimod:", 0, false},
		{"unimod:-1", 0, false},
		{"unimod:abc", 0, false},
		{"unimod:3.5", 0, false},
		{"Oxidation", 0, false},
		{"uni", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseUniModID(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseUniModID(%q) = %d, %v, want %d, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUniModKeys(t *testing.T) {
	tests := []struct {
		name string
		term core.Terminus
		want []core.UniModKey
	}{
		{
			name: "interior",
			term: core.TerminusNone,
			want: []core.UniModKey{
				{ID: 7, AA: 'K'},
				{ID: 7, AA: 'K', AllAAs: true},
			},
		},
		{
			name: "C-terminal",
			term: core.TerminusC,
			want: []core.UniModKey{
				{ID: 7, AA: 'K'},
				{ID: 7, AA: 'K', AllAAs: true},
				{ID: 7, AA: 'K', Terminus: core.TerminusC},
				{ID: 7, AA: 'K', AllAAs: true, Terminus: core.TerminusC},
			},
		},
		{
			name: "both termini",
			term: core.TerminusBoth,
			want: []core.UniModKey{
				{ID: 7, AA: 'K'},
				{ID: 7, AA: 'K', AllAAs: true},
				{ID: 7, AA: 'K', Terminus: core.TerminusN},
				{ID: 7, AA: 'K', AllAAs: true, Terminus: core.TerminusN},
				{ID: 7, AA: 'K', Terminus: core.TerminusC},
				{ID: 7, AA: 'K', AllAAs: true, Terminus: core.TerminusC},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, UniModKeys(7, 'K', tt.term)); diff != "" {
				t.Errorf("UniModKeys() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveUniModSingleResidue(t *testing.T) {
	cat := core.NewCatalog(
		core.StaticMod{Name: "C-term thing", Terminus: core.TerminusC, UniModID: 500, MonoMass: 3},
	)
	m, ok := ResolveUniMod(cat, 500, 'K', core.TerminusBoth)
	if !ok || m.Name != "C-term thing" {
		t.Errorf("ResolveUniMod() = %q, %v, want C-term thing", m.Name, ok)
	}
	if _, ok := ResolveUniMod(cat, 500, 'K', core.TerminusN); ok {
		t.Error("ResolveUniMod() found a C-terminal mod at the N-terminus")
	}
}
