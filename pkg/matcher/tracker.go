package matcher

import (
	"sort"
	"sync"
)

// Tracker accumulates the unmatched annotation fragments of one matching
// session as a set. It is safe for concurrent use, though a session normally
// owns its tracker and merges it into a shared one at the end.
type Tracker struct {
	mu        sync.Mutex
	fragments map[string]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{fragments: make(map[string]struct{})}
}

// Add records fragment. Returns false if it was already present or empty.
func (t *Tracker) Add(fragment string) bool {
	if fragment == "" {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.fragments == nil {
		t.fragments = make(map[string]struct{})
	}
	if _, ok := t.fragments[fragment]; ok {
		return false
	}
	t.fragments[fragment] = struct{}{}
	return true
}

// Len returns the number of distinct fragments.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.fragments)
}

// Report returns the fragments sorted.
func (t *Tracker) Report() []string {
	t.mu.Lock()
	out := make([]string, 0, len(t.fragments))
	for f := range t.fragments {
		out = append(out, f)
	}
	t.mu.Unlock()
	sort.Strings(out)
	return out
}

// Merge adds every fragment of other.
func (t *Tracker) Merge(other *Tracker) {
	if other == nil || other == t {
		return
	}
	for _, f := range other.Report() {
		t.Add(f)
	}
}

// Reset empties the tracker.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fragments = make(map[string]struct{})
}

// Err returns an *UnmatchedError listing the report, or nil when nothing
// is unmatched.
func (t *Tracker) Err() error {
	report := t.Report()
	if len(report) == 0 {
		return nil
	}
	return &UnmatchedError{Fragments: report}
}
