// Package report renders parsing results to Markdown/CSV and loads them
// back for planning.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
)

// tableHeader marks phrase tables in results.md; the loader keys on it.
const tableHeader = "| № | Фраза | Частотность | Тип |"

// WriteMarkdown renders the per-query phrase tables. Classification is
// recomputed from phrase text and city; cross-query duplicates carry a
// sighting annotation from the run's tracker.
func WriteMarkdown(w io.Writer, run *wordstat.Run, classifier *classify.Classifier) error {
	var b strings.Builder

	b.WriteString("# Результаты парсинга Яндекс Вордстат\n\n")
	fmt.Fprintf(&b, "**Запуск:** `%s`\n", run.ID)
	fmt.Fprintf(&b, "**Дата:** %s\n", run.Date.Format("02.01.2006 15:04"))
	fmt.Fprintf(&b, "**Регион:** %s\n", run.City)
	fmt.Fprintf(&b, "**Запросов обработано:** %d успешно, %d без данных\n\n",
		run.Succeeded, run.Failed)

	for num, outcome := range run.Outcomes {
		fmt.Fprintf(&b, "## Запрос %d: «%s»\n\n", num+1, outcome.Query)
		if outcome.Level > 1 {
			fmt.Fprintf(&b, "*Уровень рекурсии: %d*\n\n", outcome.Level)
		}
		if outcome.Failed {
			b.WriteString("❌ Нет данных (запрос не удался)\n\n---\n\n")
			continue
		}

		fmt.Fprintf(&b, "**Всего показов:** %d\n\n", outcome.Result.TotalCount)
		b.WriteString(tableHeader + "\n")
		b.WriteString("|---|-------|-------------|-----|\n")
		for i, p := range outcome.Result.Phrases {
			res := classifier.Classify(p.Text, run.City)
			text := p.Text
			if run.Tracker != nil {
				if seen := run.Tracker.SeenCount(p.Text); seen > 1 {
					text = fmt.Sprintf("%s *(встречается в %d запросах)*", p.Text, seen)
				}
			}
			fmt.Fprintf(&b, "| %d | %s | %d | %s |\n", i+1, text, p.Count, res.Marker)
		}
		b.WriteString("\n---\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCSV renders a flat phrase export: query, phrase, frequency,
// category, sightings.
func WriteCSV(w io.Writer, run *wordstat.Run, classifier *classify.Classifier) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"query", "phrase", "frequency", "category", "sightings"}); err != nil {
		return err
	}
	for _, outcome := range run.Outcomes {
		if outcome.Failed {
			continue
		}
		for _, p := range outcome.Result.Phrases {
			res := classifier.Classify(p.Text, run.City)
			sightings := 1
			if run.Tracker != nil {
				if seen := run.Tracker.SeenCount(p.Text); seen > 0 {
					sightings = seen
				}
			}
			record := []string{
				outcome.Query,
				p.Text,
				fmt.Sprintf("%d", p.Count),
				string(res.Category),
				fmt.Sprintf("%d", sightings),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
