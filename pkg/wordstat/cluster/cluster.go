// Package cluster groups classified phrases into named semantic clusters.
//
// Clustering is greedy: phrases are visited in frequency order, a fixed
// table of curated patterns is consulted first, and only then the generic
// significant-word overlap heuristic runs. The pattern table exists because
// short high-value phrases ("под ключ") rarely share enough significant
// words to group by overlap alone.
package cluster

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
)

// Phrase is a frequency-weighted phrase with its assigned category.
type Phrase struct {
	Text      string
	Frequency int
	Category  classify.Category
}

// Cluster is a named group of topically related phrases, sorted by
// frequency descending.
type Cluster struct {
	Name    string
	Phrases []Phrase
}

// Pattern maps a fixed cluster label to its trigger substrings.
type Pattern struct {
	Name     string
	Triggers []string
}

// DefaultPatterns returns the curated pattern table in evaluation order.
func DefaultPatterns() []Pattern {
	return []Pattern{
		{"под ключ", []string{"под", "ключ"}},
		{"цена стоимость", []string{"цена", "стоимость", "сколько", "стоит", "прайс"}},
		{"хрущевка", []string{"хрущевк"}},
		{"маленькая", []string{"маленьк", "небольш"}},
		{"детская", []string{"детск"}},
		{"гостиная", []string{"гостин"}},
		{"панельный дом", []string{"панельн"}},
	}
}

// DefaultStopWords returns prepositions, conjunctions and region-name
// fragments excluded from significant-word comparison.
func DefaultStopWords() []string {
	return []string{
		"в", "на", "и", "с", "под", "для", "по", "от", "до", "из", "к", "о",
		"спб", "санкт", "петербург", "москва", "мск",
	}
}

// Engine clusters phrases with a pattern table and an overlap heuristic.
type Engine struct {
	patterns  []Pattern
	stopwords map[string]struct{}
	minCommon int
	nameRunes int
}

// Options configures an Engine. Zero values select the defaults.
type Options struct {
	Patterns  []Pattern
	StopWords []string
	// MinCommonWords is the minimum significant-word intersection for a
	// phrase to join an existing cluster. Default 2.
	MinCommonWords int
}

// New creates a clustering engine.
func New(opts Options) *Engine {
	patterns := opts.Patterns
	if patterns == nil {
		patterns = DefaultPatterns()
	}
	stopWords := opts.StopWords
	if stopWords == nil {
		stopWords = DefaultStopWords()
	}
	minCommon := opts.MinCommonWords
	if minCommon <= 0 {
		minCommon = 2
	}

	stops := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stops[strings.ToLower(w)] = struct{}{}
	}
	return &Engine{patterns: patterns, stopwords: stops, minCommon: minCommon, nameRunes: 30}
}

// SignificantWords extracts the tokens used for overlap comparison:
// lower-cased whitespace-split words, minus stop words and tokens of two
// runes or fewer. Order of first appearance is preserved.
func (e *Engine) SignificantWords(phrase string) []string {
	var words []string
	seen := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(phrase)) {
		if utf8.RuneCountInString(w) <= 2 {
			continue
		}
		if _, stop := e.stopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

// Cluster filters phrases below minFrequency, sorts the rest by frequency
// descending and assigns each to a cluster. Clusters are returned in
// creation order; members are sorted by frequency descending.
//
// Assignment order is load-bearing: the highest-frequency phrase reaching
// a new cluster becomes its founding reference for later overlap checks.
func (e *Engine) Cluster(phrases []Phrase, minFrequency int) []Cluster {
	filtered := make([]Phrase, 0, len(phrases))
	for _, p := range phrases {
		if p.Frequency >= minFrequency {
			filtered = append(filtered, p)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Frequency > filtered[j].Frequency
	})

	var clusters []*Cluster
	index := make(map[string]*Cluster)

	addTo := func(name string, p Phrase) {
		if c, ok := index[name]; ok {
			c.Phrases = append(c.Phrases, p)
			return
		}
		c := &Cluster{Name: name, Phrases: []Phrase{p}}
		index[name] = c
		clusters = append(clusters, c)
	}

	for _, p := range filtered {
		if name, ok := e.matchPattern(p.Text); ok {
			addTo(name, p)
			continue
		}

		if c := e.bestOverlap(p, clusters); c != nil {
			c.Phrases = append(c.Phrases, p)
			continue
		}

		addTo(e.clusterName(p.Text), p)
	}

	out := make([]Cluster, len(clusters))
	for i, c := range clusters {
		sort.SliceStable(c.Phrases, func(a, b int) bool {
			return c.Phrases[a].Frequency > c.Phrases[b].Frequency
		})
		out[i] = *c
	}
	return out
}

// matchPattern checks the curated table in declaration order; the first
// pattern with any trigger substring in the lower-cased phrase wins.
func (e *Engine) matchPattern(phrase string) (string, bool) {
	lower := strings.ToLower(phrase)
	for _, pat := range e.patterns {
		for _, trigger := range pat.Triggers {
			if strings.Contains(lower, trigger) {
				return pat.Name, true
			}
		}
	}
	return "", false
}

// bestOverlap finds the existing cluster whose founding phrase shares the
// most significant words with p, requiring at least minCommon. Ties go to
// the cluster created first (strictly-greater comparison over the
// creation-ordered slice).
func (e *Engine) bestOverlap(p Phrase, clusters []*Cluster) *Cluster {
	words := e.SignificantWords(p.Text)
	if len(words) == 0 {
		return nil
	}
	wordSet := make(map[string]struct{}, len(words))
	for _, w := range words {
		wordSet[w] = struct{}{}
	}

	var best *Cluster
	maxCommon := 0
	for _, c := range clusters {
		founding := e.SignificantWords(c.Phrases[0].Text)
		common := 0
		for _, w := range founding {
			if _, ok := wordSet[w]; ok {
				common++
			}
		}
		if common >= e.minCommon && common > maxCommon {
			maxCommon = common
			best = c
		}
	}
	return best
}

// clusterName derives a new cluster's name from the two longest
// significant words (rune length descending, appearance order on ties).
// Phrases with no significant words fall back to their first 30 runes.
func (e *Engine) clusterName(phrase string) string {
	words := e.SignificantWords(phrase)
	if len(words) == 0 {
		runes := []rune(phrase)
		if len(runes) > e.nameRunes {
			runes = runes[:e.nameRunes]
		}
		return string(runes)
	}
	sort.SliceStable(words, func(i, j int) bool {
		return utf8.RuneCountInString(words[i]) > utf8.RuneCountInString(words[j])
	})
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}

// GroupByCategory produces the secondary category-keyed view over the
// same frequency-filtered phrase set, each group sorted by frequency
// descending.
func GroupByCategory(phrases []Phrase, minFrequency int) map[classify.Category][]Phrase {
	groups := make(map[classify.Category][]Phrase)
	for _, p := range phrases {
		if p.Frequency < minFrequency {
			continue
		}
		groups[p.Category] = append(groups[p.Category], p)
	}
	for cat := range groups {
		g := groups[cat]
		sort.SliceStable(g, func(i, j int) bool {
			return g[i].Frequency > g[j].Frequency
		})
		groups[cat] = g
	}
	return groups
}
