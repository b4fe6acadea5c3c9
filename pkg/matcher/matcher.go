package matcher

import (
	"github.com/ChrisMcGann/modmatch/pkg/core"
	"github.com/ChrisMcGann/modmatch/pkg/sequence"
)

// Matcher classifies the annotations of sequences against a catalog and
// records same-class conflicts in its tracker. A Matcher is not safe for
// concurrent use; give each goroutine its own.
type Matcher struct {
	classifier Classifier
	tracker    *Tracker
}

// New creates a matcher. sep is the decimal separator numeric annotations
// are written with ("" means "."). A nil tracker gets a fresh one.
func New(cat Catalog, sep string, tracker *Tracker) *Matcher {
	if tracker == nil {
		tracker = NewTracker()
	}
	return &Matcher{
		classifier: Classifier{Catalog: cat, DecimalSeparator: sep},
		tracker:    tracker,
	}
}

// Tracker returns the tracker conflicts are recorded in.
func (m *Matcher) Tracker() *Tracker {
	return m.tracker
}

// Catalog returns the catalog annotations are resolved against.
func (m *Matcher) Catalog() Catalog {
	return m.classifier.Catalog
}

// Sites returns an iterator over the accepted sites of seq. A second
// annotation of the same class on one residue is not yielded; its fragment
// goes to the tracker instead.
func (m *Matcher) Sites(seq string) *Sites {
	return newSites(seq, &m.classifier, m.tracker, false)
}

// enumerate walks every annotation of seq, and with includeUnmod every bare
// residue as a zero mass site, without enforcing the per-class limit.
func (m *Matcher) enumerate(seq string, includeUnmod bool) *Sites {
	return newSites(seq, &m.classifier, nil, includeUnmod)
}

// ParseAndMatch collects the accepted sites of seq.
func (m *Matcher) ParseAndMatch(seq string) ([]ModSite, error) {
	var sites []ModSite
	it := m.Sites(seq)
	for it.Next() {
		sites = append(sites, it.Site())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return sites, nil
}

// ParseAndMatch collects the accepted sites of seq using cat, recording
// conflicts in tracker (which may be nil).
func ParseAndMatch(seq string, cat Catalog, tracker *Tracker) ([]ModSite, error) {
	return New(cat, "", tracker).ParseAndMatch(seq)
}

// Sites iterates over the sites of one sequence:
//
//	it := m.Sites(seq)
//	for it.Next() {
//		site := it.Site()
//	}
//	if err := it.Err(); err != nil { ... }
type Sites struct {
	seq        string
	scanner    *sequence.Scanner
	classifier *Classifier
	// tracker is nil when the per-class limit is not enforced.
	tracker     *Tracker
	looksIso    bool
	strippedLen int

	// Per residue state: the residue the last annotation sat on and which
	// classes it already carries.
	prevIndexAA int
	seenLight   bool
	seenHeavy   bool

	site ModSite
	err  error
}

func newSites(seq string, c *Classifier, tracker *Tracker, includeUnmod bool) *Sites {
	sc := sequence.NewScanner(seq)
	if includeUnmod {
		sc.IncludeUnmodified()
	}
	s := &Sites{
		seq:         seq,
		scanner:     sc,
		classifier:  c,
		tracker:     tracker,
		prevIndexAA: -1,
	}
	if sc.Err() == nil {
		stripped := sc.Stripped()
		s.strippedLen = len(stripped)
		s.looksIso = sequence.LooksIsotopeSpecific(seq, stripped)
	}
	return s
}

// Stripped returns the sequence without annotations.
func (s *Sites) Stripped() string {
	return s.scanner.Stripped()
}

// Next advances to the next accepted site.
func (s *Sites) Next() bool {
	if s.err != nil {
		return false
	}
	for s.scanner.Next() {
		raw := s.scanner.Site()
		if raw.Annotation == nil {
			s.site = ModSite{
				Key: ModKey{
					Kind:     KeyMass,
					AA:       raw.AA,
					Terminus: core.TerminusAt(raw.IndexAA, s.strippedLen),
				},
				IndexAA:      raw.IndexAA,
				IndexAAInSeq: raw.IndexAAInSeq,
			}
			return true
		}

		key, err := s.classifier.Classify(s.seq, raw.Annotation.Content, raw.AA, raw.IndexAA, s.strippedLen, raw.Annotation.Family)
		if err != nil {
			s.err = err
			return false
		}
		key.LooksIsotopeSpecific = s.looksIso

		if s.tracker != nil && s.conflicts(raw.IndexAA, key.Heavy) {
			s.tracker.Add(sequence.UnmatchedFragment(s.seq, raw.IndexAAInSeq))
			continue
		}

		s.site = ModSite{
			Key:          key,
			IndexAA:      raw.IndexAA,
			IndexAAInSeq: raw.IndexAAInSeq,
			Annotation:   raw.Annotation,
		}
		return true
	}
	s.err = s.scanner.Err()
	return false
}

// conflicts reports whether residue indexAA already carries an annotation
// of the given class, and records that it now does.
func (s *Sites) conflicts(indexAA int, heavy bool) bool {
	if indexAA != s.prevIndexAA {
		s.prevIndexAA = indexAA
		s.seenLight, s.seenHeavy = false, false
	}
	seen := &s.seenLight
	if heavy {
		seen = &s.seenHeavy
	}
	if *seen {
		return true
	}
	*seen = true
	return false
}

// Site returns the current site.
func (s *Sites) Site() ModSite {
	return s.site
}

// Err returns the first hard error: a *sequence.ParseError or an
// *UnrecognizedUniModError.
func (s *Sites) Err() error {
	return s.err
}
