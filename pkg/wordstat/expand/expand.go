// Package expand selects the next generation of queries for recursive
// parsing rounds.
package expand

import (
	"sort"
	"strings"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/fetch"
)

// MinusWords excludes phrases by substring match against the lower-cased
// phrase text. It is not tokenized: "спб" also matches inside longer words.
type MinusWords []string

// Excluded reports whether text contains any minus word.
func (m MinusWords) Excluded(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range m {
		if w == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// SelectNextLevel flattens all phrases gathered so far, drops minus-word
// matches and already-issued queries, sorts by frequency descending (stable,
// ties keep discovery order) and returns the texts of the first topN.
// issued holds lower-cased query texts fetched at any earlier level.
func SelectNextLevel(results []fetch.Result, minus MinusWords, topN int, issued map[string]bool) []string {
	if topN <= 0 {
		return nil
	}

	var pool []fetch.Phrase
	seen := make(map[string]bool)
	for _, res := range results {
		for _, p := range res.Phrases {
			key := strings.ToLower(p.Text)
			if seen[key] {
				continue
			}
			seen[key] = true
			if minus.Excluded(p.Text) {
				continue
			}
			pool = append(pool, p)
		}
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Count > pool[j].Count
	})

	if len(pool) > topN {
		pool = pool[:topN]
	}

	// Already-issued queries keep their top-N slot but are not re-fetched.
	var next []string
	for _, p := range pool {
		if issued[strings.ToLower(p.Text)] {
			continue
		}
		next = append(next, p.Text)
	}
	return next
}
