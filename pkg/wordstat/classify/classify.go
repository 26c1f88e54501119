// Package classify assigns intent categories to search phrases.
package classify

import "strings"

// Category is the intent class of a phrase.
type Category string

const (
	Commercial    Category = "commercial"
	Informational Category = "informational"
	Price         Category = "price"
	Comparison    Category = "comparison"
	Local         Category = "local"
	Other         Category = "other"
)

// Marker returns the display marker used in reports.
func (c Category) Marker() string {
	switch c {
	case Commercial:
		return "🛒"
	case Price:
		return "💰"
	case Informational:
		return "📚"
	case Comparison:
		return "⚖️"
	case Local:
		return "📍"
	default:
		return "🔍"
	}
}

// CategoryFromMarker resolves a report marker back to its category. The
// markers are checked in the same order the report writes them.
func CategoryFromMarker(s string) Category {
	ordered := []Category{Commercial, Price, Informational, Comparison, Local}
	for _, c := range ordered {
		if strings.Contains(s, c.Marker()) {
			return c
		}
	}
	return Other
}

// Rule pairs a category with its trigger keywords. Rules are evaluated
// in declaration order and the first rule with any matching keyword wins.
// The observed order puts commercial ahead of price, so a phrase holding
// both a commercial and a price keyword classifies as commercial. Kept
// as-is pending a product decision.
type Rule struct {
	Category Category
	Keywords []string
}

// DefaultRules returns the built-in rule table in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{Commercial, []string{"купить", "заказать", "заказ", "под ключ", "недорого", "дешево", "акция", "скидк"}},
		{Informational, []string{"как ", "что ", "какой", "какую", "почему", "выбрать", "своими руками", "этапы", "инструкция", "советы"}},
		{Price, []string{"цена", "цены", "стоимость", "сколько стоит", "прайс", "расценки", "смета"}},
		{Comparison, []string{"сравнение", "или", "лучше", "отзывы", "рейтинг", "топ "}},
	}
}

// Classifier matches phrases against an ordered rule table.
type Classifier struct {
	rules []Rule
}

// New creates a classifier. Nil rules fall back to the defaults.
func New(rules []Rule) *Classifier {
	if rules == nil {
		rules = DefaultRules()
	}
	// Keywords are matched against the lower-cased phrase.
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		kws := make([]string, len(r.Keywords))
		for j, kw := range r.Keywords {
			kws[j] = strings.ToLower(kw)
		}
		normalized[i] = Rule{Category: r.Category, Keywords: kws}
	}
	return &Classifier{rules: normalized}
}

// Result is the classification of one phrase.
type Result struct {
	Category Category
	Local    bool
	Marker   string
}

// Classify determines the category and display marker for a phrase.
// It is a pure function of the phrase text and the city name: matching
// is substring-based on the lower-cased phrase, and a phrase is local
// when the lower-cased city appears anywhere in it.
func (c *Classifier) Classify(phrase, city string) Result {
	lower := strings.ToLower(phrase)
	local := city != "" && strings.Contains(lower, strings.ToLower(city))

	for _, rule := range c.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				marker := rule.Category.Marker()
				if local && rule.Category != Informational {
					marker = Local.Marker() + marker
				}
				return Result{Category: rule.Category, Local: local, Marker: marker}
			}
		}
	}

	if local {
		return Result{Category: Other, Local: true, Marker: Local.Marker()}
	}
	return Result{Category: Other, Marker: Other.Marker()}
}
