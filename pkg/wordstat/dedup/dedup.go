// Package dedup tracks which seed queries produced each phrase.
package dedup

import "strings"

// Tracker records, per normalized phrase, the ordered list of source
// queries that yielded it. It is an observational side table for the
// report: it never suppresses fetches.
type Tracker struct {
	sources map[string][]string
	order   []string
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{sources: make(map[string][]string)}
}

// Record notes that source yielded phrase text. The dedup key is the
// lower-cased text; discovery order is preserved.
func (t *Tracker) Record(text, source string) {
	key := strings.ToLower(text)
	if _, ok := t.sources[key]; !ok {
		t.order = append(t.order, key)
	}
	t.sources[key] = append(t.sources[key], source)
}

// Sources returns the source queries for a phrase in discovery order.
func (t *Tracker) Sources(text string) []string {
	return t.sources[strings.ToLower(text)]
}

// SeenCount returns how many times a phrase was produced.
func (t *Tracker) SeenCount(text string) int {
	return len(t.sources[strings.ToLower(text)])
}

// Duplicates maps each phrase seen from more than one query to its
// sighting count.
func (t *Tracker) Duplicates() map[string]int {
	dups := make(map[string]int)
	for key, srcs := range t.sources {
		if len(srcs) > 1 {
			dups[key] = len(srcs)
		}
	}
	return dups
}

// Phrases returns all recorded phrases in discovery order.
func (t *Tracker) Phrases() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
