package plan

import (
	"strings"
	"testing"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/cluster"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
)

func testConfig() *config.Config {
	return &config.Config{
		BusinessInfo: &config.BusinessInfo{
			Niche: "ремонт квартир",
			City:  "Москва",
			Site:  "https://example.ru",
			UTP:   []string{"Гарантия 3 года"},
		},
		ParserSettings: &config.ParserSettings{},
		ContentPlanSettings: &config.ContentPlanSettings{
			TargetPage:              "/blog/",
			ArticlesPerMonth:        2,
			PlanningPeriodMonths:    3,
			ExpectedTrafficPerMonth: "3000",
			ConversionRatePercent:   "2",
			TargetTopPositions:      20,
			ArticleBlocks: map[string]config.ArticleBlock{
				"commercial":    {Priority: "высокий"},
				"informational": {Priority: "средний"},
			},
		},
	}
}

func TestPriorityStars(t *testing.T) {
	tests := []struct {
		frequency int
		stars     string
		label     string
	}{
		{1200, "★★★★★", "Высокий"},
		{500, "★★★★★", "Высокий"},
		{350, "★★★★☆", "Средний"},
		{150, "★★★☆☆", "Средний"},
		{60, "★★☆☆☆", "Низкий"},
		{10, "★☆☆☆☆", "Низкий"},
	}
	for _, tt := range tests {
		stars, label := Priority(tt.frequency)
		if stars != tt.stars || label != tt.label {
			t.Errorf("Priority(%d) = %q/%q, want %q/%q", tt.frequency, stars, label, tt.stars, tt.label)
		}
	}
}

func TestGenerateBlocksAndNumbering(t *testing.T) {
	groups := map[classify.Category][]cluster.Phrase{
		classify.Commercial: {
			{Text: "купить кухню", Frequency: 600, Category: classify.Commercial},
			{Text: "заказать кухню", Frequency: 300, Category: classify.Commercial},
		},
		classify.Informational: {
			{Text: "как выбрать кухню", Frequency: 400, Category: classify.Informational},
		},
		// Not in article_blocks: must be skipped.
		classify.Price: {
			{Text: "кухня цена", Frequency: 900, Category: classify.Price},
		},
	}

	p := Generate(groups, testConfig())
	if p.TotalArticles != 3 {
		t.Errorf("TotalArticles = %d, want 3", p.TotalArticles)
	}
	if len(p.Blocks) != 2 {
		t.Fatalf("Blocks = %d, want 2", len(p.Blocks))
	}
	if p.Blocks[0].Category != classify.Commercial {
		t.Errorf("First block = %s, want commercial", p.Blocks[0].Category)
	}
	// Continuous numbering across blocks.
	last := 0
	for _, block := range p.Blocks {
		for _, a := range block.Articles {
			if a.Number != last+1 {
				t.Errorf("Article number %d follows %d", a.Number, last)
			}
			last = a.Number
		}
	}
	if p.RunID == "" {
		t.Error("Plan must carry a run id")
	}
}

func TestTitleCyclesTemplates(t *testing.T) {
	g := NewTitleGenerator("Москва")
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		seen[g.Title("ремонт кухни", classify.Commercial, i)] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected 3 distinct commercial titles, got %d: %v", len(seen), seen)
	}
	// Index wraps around.
	if g.Title("ремонт кухни", classify.Commercial, 0) != g.Title("ремонт кухни", classify.Commercial, 3) {
		t.Error("Template index must wrap modulo the template count")
	}
}

func TestTitleSkipsCityWhenPresent(t *testing.T) {
	g := NewTitleGenerator("Москва")
	withCity := g.Title("ремонт кухни москва", classify.Commercial, 1)
	if strings.Contains(withCity, "Москве") {
		t.Errorf("City already in phrase, must not be inserted: %q", withCity)
	}
	withoutCity := g.Title("ремонт кухни", classify.Commercial, 1)
	if !strings.Contains(withoutCity, "Москве") {
		t.Errorf("City expected in declined form: %q", withoutCity)
	}
}

func TestTitleAbbreviationDetection(t *testing.T) {
	g := NewTitleGenerator("Санкт-Петербург")
	if g.cityAbbr != "СПб" {
		t.Errorf("cityAbbr = %q, want СПб", g.cityAbbr)
	}
	got := g.Title("ремонт кухни спб", classify.Commercial, 2)
	if strings.Contains(got, "СПб") {
		t.Errorf("Abbreviation already in phrase, must not be appended: %q", got)
	}
}

func TestTitlePriceTemplates(t *testing.T) {
	g := NewTitleGenerator("Москва")
	got := g.Title("сколько стоит ремонт кухни", classify.Price, 0)
	if got != "Сколько стоит ремонт кухни" {
		t.Errorf("Title = %q", got)
	}
	got = g.Title("ремонт кухни", classify.Price, 0)
	if got != "Сколько стоит ремонт кухни" {
		t.Errorf("Title = %q", got)
	}
}

func TestMarkdownSections(t *testing.T) {
	groups := map[classify.Category][]cluster.Phrase{
		classify.Commercial: {
			{Text: "купить кухню", Frequency: 600, Category: classify.Commercial},
		},
	}
	cfg := testConfig()
	p := Generate(groups, cfg)
	md := Markdown(p, cfg)

	for _, section := range []string{
		"# ПЛАН СТАТЕЙ: РЕМОНТ КВАРТИР МОСКВА",
		"## 🎯 БЛОК 1: КОММЕРЧЕСКИЕ СТАТЬИ (1 статей)",
		"| № | Тема статьи | Ключевой запрос | Частотность | Приоритет |",
		"## 📅 КАЛЕНДАРНЫЙ ПЛАН ПУБЛИКАЦИЙ",
		"## 🎯 ЦЕЛЕВЫЕ ПОКАЗАТЕЛИ",
		"## 💡 РЕКОМЕНДАЦИИ ПО КОНТЕНТУ",
		"## 🔗 СТРАТЕГИЯ ПЕРЕЛИНКОВКИ",
		p.RunID,
	} {
		if !strings.Contains(md, section) {
			t.Errorf("Markdown missing %q", section)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("ремонт Кухни"); got != "Ремонт Кухни" {
		t.Errorf("Capitalize = %q", got)
	}
	if got := Capitalize(""); got != "" {
		t.Errorf("Capitalize empty = %q", got)
	}
}
