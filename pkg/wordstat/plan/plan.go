// Package plan turns clustered phrases into a prioritized publishing plan.
package plan

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/cluster"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
)

// Priority returns the star rating and label for a frequency.
func Priority(frequency int) (stars, label string) {
	switch {
	case frequency >= 500:
		return "★★★★★", "Высокий"
	case frequency >= 200:
		return "★★★★☆", "Средний"
	case frequency >= 100:
		return "★★★☆☆", "Средний"
	case frequency >= 50:
		return "★★☆☆☆", "Низкий"
	default:
		return "★☆☆☆☆", "Низкий"
	}
}

// Article is one planned publication.
type Article struct {
	Number    int
	Title     string
	KeyPhrase string
	Frequency int
	Priority  string
	Stars     string
}

// Block groups planned articles of one category.
type Block struct {
	Category classify.Category
	Priority string
	Articles []Article
}

// Plan is the generated content plan.
type Plan struct {
	RunID         string
	Date          time.Time
	Site          string
	Niche         string
	City          string
	TargetPage    string
	TotalArticles int
	Blocks        []Block
}

// blockOrder fixes the category sequence of the plan; article_blocks
// config selects which of these appear.
var blockOrder = []classify.Category{
	classify.Commercial,
	classify.Price,
	classify.Informational,
	classify.Comparison,
	classify.Other,
}

// Generate builds the plan from the category-grouped phrase view.
// Categories absent from article_blocks (or empty) are skipped; article
// numbering is continuous across blocks.
func Generate(groups map[classify.Category][]cluster.Phrase, cfg *config.Config) *Plan {
	business := cfg.BusinessInfo
	settings := cfg.ContentPlanSettings

	titles := NewTitleGenerator(business.City)
	p := &Plan{
		RunID:      ulid.MustNew(ulid.Now(), rand.Reader).String(),
		Date:       time.Now(),
		Site:       business.Site,
		Niche:      business.Niche,
		City:       business.City,
		TargetPage: settings.TargetPage,
	}

	counter := 1
	for _, category := range blockOrder {
		blockCfg, ok := settings.ArticleBlocks[string(category)]
		if !ok {
			continue
		}
		phrases := groups[category]
		if len(phrases) == 0 {
			continue
		}

		block := Block{Category: category, Priority: blockCfg.Priority}
		for idx, ph := range phrases {
			stars, label := Priority(ph.Frequency)
			block.Articles = append(block.Articles, Article{
				Number:    counter,
				Title:     titles.Title(ph.Text, ph.Category, idx),
				KeyPhrase: ph.Text,
				Frequency: ph.Frequency,
				Priority:  label,
				Stars:     stars,
			})
			counter++
		}

		p.Blocks = append(p.Blocks, block)
		p.TotalArticles += len(block.Articles)
	}

	return p
}
