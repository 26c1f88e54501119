package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/cluster"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/internalerr"
)

// Rules overrides the built-in classification and clustering tables.
// Order in the file is evaluation order.
type Rules struct {
	Categories []CategoryRule `yaml:"categories"`
	Patterns   []PatternRule  `yaml:"patterns"`
	StopWords  []string       `yaml:"stop_words"`
}

// CategoryRule is one ordered classifier rule set.
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// PatternRule is one curated cluster pattern.
type PatternRule struct {
	Name     string   `yaml:"name"`
	Triggers []string `yaml:"triggers"`
}

// LoadRules loads a YAML rules file.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}

	var rules Rules
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w: %w", path, err, internalerr.ErrInvalidConfig)
	}

	for _, cr := range rules.Categories {
		switch classify.Category(cr.Category) {
		case classify.Commercial, classify.Informational, classify.Price, classify.Comparison:
		default:
			return nil, fmt.Errorf("rules %s: unknown category %q: %w", path, cr.Category, internalerr.ErrInvalidConfig)
		}
	}
	return &rules, nil
}

// ClassifierRules converts the file form to the classifier's rule table.
// Nil receiver selects the built-in defaults.
func (r *Rules) ClassifierRules() []classify.Rule {
	if r == nil || len(r.Categories) == 0 {
		return nil
	}
	out := make([]classify.Rule, len(r.Categories))
	for i, cr := range r.Categories {
		out[i] = classify.Rule{Category: classify.Category(cr.Category), Keywords: cr.Keywords}
	}
	return out
}

// ClusterOptions converts the file form to clustering options. Zero-value
// fields keep the engine defaults.
func (r *Rules) ClusterOptions(minCommonWords int) cluster.Options {
	opts := cluster.Options{MinCommonWords: minCommonWords}
	if r == nil {
		return opts
	}
	if len(r.Patterns) > 0 {
		patterns := make([]cluster.Pattern, len(r.Patterns))
		for i, pr := range r.Patterns {
			patterns[i] = cluster.Pattern{Name: pr.Name, Triggers: pr.Triggers}
		}
		opts.Patterns = patterns
	}
	if len(r.StopWords) > 0 {
		opts.StopWords = r.StopWords
	}
	return opts
}
