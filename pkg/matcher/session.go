package matcher

import (
	"log/slog"

	"github.com/ChrisMcGann/modmatch/pkg/core"
	"github.com/ChrisMcGann/modmatch/pkg/sequence"
)

// Options configures a Session.
type Options struct {
	DecimalSeparator string
	Settings         *core.Settings
	// Strict sends a sequence the settings cannot explain straight to the
	// tracker instead of resolving its sites against the catalog.
	Strict bool
	Logger *slog.Logger
}

// ResolvedSite is a site with the modification it was resolved to.
type ResolvedSite struct {
	ModSite
	Mod      core.StaticMod
	Resolved bool
}

// Result is the outcome of matching one sequence.
type Result struct {
	Sequence string
	Stripped string
	Sites    []ResolvedSite
	// FromSettings is set when the configured modifications explain every
	// annotation; LabelType names the heavy label type that did, if any.
	FromSettings bool
	LabelType    string
}

// Unresolved returns the sites no modification was found for.
func (r Result) Unresolved() []ResolvedSite {
	var out []ResolvedSite
	for _, s := range r.Sites {
		if !s.Resolved {
			out = append(out, s)
		}
	}
	return out
}

// Session matches the sequences of one batch, collecting everything it
// cannot interpret in a single tracker. Not safe for concurrent use.
type Session struct {
	matcher  *Matcher
	checker  *Checker
	settings *core.Settings
	strict   bool
	logger   *slog.Logger
}

// NewSession creates a session over cat.
func NewSession(cat Catalog, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	m := New(cat, opts.DecimalSeparator, nil)
	return &Session{
		matcher:  m,
		checker:  NewChecker(m, opts.Settings),
		settings: opts.Settings,
		strict:   opts.Strict,
		logger:   logger,
	}
}

// Tracker returns the session's unmatched tracker.
func (s *Session) Tracker() *Tracker {
	return s.matcher.tracker
}

// Report returns the sorted unmatched fragments seen so far.
func (s *Session) Report() []string {
	return s.matcher.tracker.Report()
}

// Err returns the aggregate *UnmatchedError, or nil.
func (s *Session) Err() error {
	return s.matcher.tracker.Err()
}

// Match matches one sequence. Sequences the settings explain are not
// tracked; otherwise every site is resolved against the catalog and the
// ones that fail are tracked. Hard errors abort only this sequence.
func (s *Session) Match(seq string) (Result, error) {
	stripped, err := sequence.Strip(seq)
	if err != nil {
		return Result{}, err
	}
	res := Result{Sequence: seq, Stripped: stripped}

	if !s.settings.Empty() {
		v, err := s.checker.MatchSettings(seq)
		if err != nil {
			return Result{}, err
		}
		if v.Matched {
			res.FromSettings = true
			res.LabelType = v.LabelType
			sites, err := s.resolve(seq, stripped, false)
			if err != nil {
				return Result{}, err
			}
			res.Sites = sites
			s.logger.Debug("sequence explained by settings", "sequence", seq, "label", v.LabelType)
			return res, nil
		}
		if s.strict {
			s.matcher.tracker.Add(v.Fragment)
			s.logger.Debug("settings mismatch", "sequence", seq, "fragment", v.Fragment)
			sites, err := s.resolve(seq, stripped, false)
			if err != nil {
				return Result{}, err
			}
			res.Sites = sites
			return res, nil
		}
	}

	sites, err := s.resolve(seq, stripped, true)
	if err != nil {
		return Result{}, err
	}
	res.Sites = sites
	return res, nil
}

// resolve enumerates the accepted sites of seq and finds a modification for
// each, tracking the unresolved ones when track is set.
func (s *Session) resolve(seq, stripped string, track bool) ([]ResolvedSite, error) {
	var out []ResolvedSite
	it := s.matcher.Sites(seq)
	for it.Next() {
		site := it.Site()
		mod, ok := s.resolveSite(site, len(stripped))
		out = append(out, ResolvedSite{ModSite: site, Mod: mod, Resolved: ok})
		if !ok && track {
			fragment := sequence.UnmatchedFragment(seq, site.IndexAAInSeq)
			if s.matcher.tracker.Add(fragment) {
				s.logger.Debug("unmatched modification", "sequence", seq, "fragment", fragment)
			}
		}
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// resolveSite looks for the site's modification in the settings first and
// then in the catalog.
func (s *Session) resolveSite(site ModSite, length int) (core.StaticMod, bool) {
	key := site.Key
	applies := func(m core.StaticMod) bool {
		return m.IsMod(key.AA, site.IndexAA, length)
	}

	if key.Kind == KeyName {
		if m, ok := s.settingsMod(key.Name, key.Heavy); ok && applies(m) {
			return m, true
		}
		if m, ok := s.matcher.Catalog().FindNamed(key.Name, key.Heavy); ok && applies(m) {
			return m, true
		}
		return core.StaticMod{}, false
	}

	for _, m := range s.settingsMods(key.Heavy) {
		if applies(m) && core.RoundFloat(m.MassFor(key.AA), key.RoundedTo) == key.Mass {
			return m, true
		}
	}
	return s.matcher.Catalog().FindByMass(key.AA, site.IndexAA, length, key.Mass, key.RoundedTo, key.Heavy)
}

func (s *Session) settingsMod(name string, heavy bool) (core.StaticMod, bool) {
	for _, m := range s.settingsMods(heavy) {
		if m.Name == name {
			return m, true
		}
	}
	return core.StaticMod{}, false
}

// settingsMods lists the configured mods of one class, label types in
// sorted order.
func (s *Session) settingsMods(heavy bool) []core.StaticMod {
	if s.settings == nil {
		return nil
	}
	if !heavy {
		return s.settings.Static
	}
	var mods []core.StaticMod
	for _, label := range s.settings.LabelTypes() {
		mods = append(mods, s.settings.Heavy[label]...)
	}
	return mods
}
