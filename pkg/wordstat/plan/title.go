package plan

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/morph"
)

// TitleGenerator builds article titles from key phrases. Templates are
// cycled by the caller-supplied index so cluster neighbours don't share
// a headline, and the city is only inserted when the phrase doesn't
// already carry it.
type TitleGenerator struct {
	city          string
	cityAbbr      string
	prepositional string
}

// NewTitleGenerator prepares title templates for a city. Hyphenated
// cities get an abbreviation from the first letters of their parts
// ("Санкт-Петербург" → "СПб"); declension is best-effort via morph.
func NewTitleGenerator(city string) *TitleGenerator {
	abbr := city
	if strings.Contains(city, "-") {
		var b strings.Builder
		for _, part := range strings.Split(city, "-") {
			for _, r := range part {
				b.WriteRune(unicode.ToUpper(r))
				break
			}
		}
		b.WriteString("б")
		abbr = b.String()
	}
	return &TitleGenerator{
		city:          city,
		cityAbbr:      abbr,
		prepositional: morph.Prepositional(city),
	}
}

// Title generates the headline for a phrase. index selects among the
// category's templates, typically the phrase's position in its cluster.
func (g *TitleGenerator) Title(phrase string, category classify.Category, index int) string {
	lower := strings.ToLower(phrase)
	hasCity := g.city != "" && strings.Contains(lower, strings.ToLower(g.city))
	hasAbbr := strings.Contains(lower, strings.ToLower(g.cityAbbr)) || strings.Contains(lower, "спб")

	templates := g.templates(phrase, lower, hasCity, hasAbbr)
	set, ok := templates[category]
	if !ok {
		set = templates[classify.Other]
	}
	if index < 0 {
		index = 0
	}
	return set[index%len(set)]
}

func (g *TitleGenerator) templates(phrase, lower string, hasCity, hasAbbr bool) map[classify.Category][]string {
	capPhrase := Capitalize(phrase)

	commercial2 := capPhrase + ": выгодные условия"
	if !hasCity {
		commercial2 = fmt.Sprintf("%s в %s: выгодные условия", capPhrase, g.prepositional)
	}
	commercial3 := capPhrase + ": профессиональное качество"
	if !hasAbbr {
		commercial3 = fmt.Sprintf("%s %s: профессиональное качество", capPhrase, g.cityAbbr)
	}

	price1 := Capitalize(phrase)
	if !strings.HasPrefix(lower, "сколько стоит") {
		price1 = "Сколько стоит " + phrase
	}
	price2 := capPhrase + ": актуальные цены 2025"
	if !hasCity {
		price2 = fmt.Sprintf("%s: актуальные цены 2025 в %s", capPhrase, g.prepositional)
	}
	price3 := Capitalize(phrase)
	if !strings.HasPrefix(lower, "стоимость") && !hasCity {
		price3 = fmt.Sprintf("Стоимость %s в %s", phrase, g.prepositional)
	}

	info1 := capPhrase + ": полное руководство"
	if !hasCity {
		info1 = fmt.Sprintf("%s: полное руководство в %s", capPhrase, g.prepositional)
	}

	comparison1 := capPhrase + ": какой вариант выбрать"
	if !hasCity {
		comparison1 = fmt.Sprintf("%s: какой вариант выбрать в %s", capPhrase, g.prepositional)
	}

	other1 := Capitalize(phrase)
	if !hasCity {
		other1 = fmt.Sprintf("%s в %s", capPhrase, g.prepositional)
	}

	return map[classify.Category][]string{
		classify.Commercial: {
			capPhrase + ": цены 2025, этапы работ",
			commercial2,
			commercial3,
		},
		classify.Price: {
			price1,
			price2,
			price3,
		},
		classify.Informational: {
			info1,
			"Как выбрать: " + phrase,
			capPhrase + ": советы экспертов",
		},
		classify.Comparison: {
			comparison1,
			capPhrase + ": сравнение и отзывы",
		},
		classify.Other: {
			other1,
			capPhrase + ": всё что нужно знать",
		},
	}
}

// Capitalize upper-cases the first rune only, leaving the rest intact.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
