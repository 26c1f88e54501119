package plan

import (
	"fmt"
	"strings"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
)

var categoryHeadings = map[classify.Category]string{
	classify.Commercial:    "КОММЕРЧЕСКИЕ СТАТЬИ",
	classify.Price:         "ЦЕНОВЫЕ СТАТЬИ",
	classify.Informational: "ИНФОРМАЦИОННЫЕ СТАТЬИ",
	classify.Comparison:    "СРАВНИТЕЛЬНЫЕ СТАТЬИ",
	classify.Other:         "ДОПОЛНИТЕЛЬНЫЕ СТАТЬИ",
}

// Markdown renders the plan: the article blocks plus the calendar,
// target-metric, content-recommendation and crosslinking sections.
func Markdown(p *Plan, cfg *config.Config) string {
	business := cfg.BusinessInfo
	settings := cfg.ContentPlanSettings

	var b strings.Builder

	fmt.Fprintf(&b, "# ПЛАН СТАТЕЙ: %s %s\n\n",
		strings.ToUpper(business.Niche), strings.ToUpper(business.City))
	b.WriteString("## 📊 Общая информация\n\n")
	fmt.Fprintf(&b, "**Идентификатор запуска:** `%s`\n", p.RunID)
	fmt.Fprintf(&b, "**Дата:** %s\n", p.Date.Format("02.01.2006 15:04"))
	fmt.Fprintf(&b, "**Целевая страница:** `%s`\n", p.TargetPage)
	fmt.Fprintf(&b, "**Общее количество статей:** %d\n", p.TotalArticles)
	fmt.Fprintf(&b, "**Период создания:** %d месяцев (%d статей в месяц)\n",
		settings.PlanningPeriodMonths, settings.ArticlesPerMonth)
	fmt.Fprintf(&b, "**Ожидаемый результат:** %s органических переходов/месяц\n",
		settings.ExpectedTrafficPerMonth)
	fmt.Fprintf(&b, "**Конверсия в заявки:** %s%%\n\n---\n\n", settings.ConversionRatePercent)

	for idx, block := range p.Blocks {
		heading, ok := categoryHeadings[block.Category]
		if !ok {
			heading = strings.ToUpper(string(block.Category))
		}
		totalTraffic := 0
		for _, a := range block.Articles {
			totalTraffic += a.Frequency
		}

		fmt.Fprintf(&b, "## 🎯 БЛОК %d: %s (%d статей)\n", idx+1, heading, len(block.Articles))
		fmt.Fprintf(&b, "*Приоритет: %s | Целевой трафик: %d+ запросов/мес*\n\n",
			strings.ToUpper(block.Priority), totalTraffic)
		b.WriteString("| № | Тема статьи | Ключевой запрос | Частотность | Приоритет |\n")
		b.WriteString("|---|-------------|-----------------|-------------|-----------|\n")
		for _, a := range block.Articles {
			fmt.Fprintf(&b, "| %d | **%s** | %s (%d) | %s | %s |\n",
				a.Number, a.Title, a.KeyPhrase, a.Frequency, a.Priority, a.Stars)
		}
		b.WriteString("\n---\n\n")
	}

	writeCalendar(&b, p, settings)
	writeTargetMetrics(&b, settings)
	writeRecommendations(&b, business, settings)
	writeCrosslinking(&b, settings)

	return b.String()
}

// writeCalendar lays blocks out month by month at articles_per_month.
func writeCalendar(b *strings.Builder, p *Plan, settings *config.ContentPlanSettings) {
	b.WriteString("## 📅 КАЛЕНДАРНЫЙ ПЛАН ПУБЛИКАЦИЙ\n\n")

	perMonth := settings.ArticlesPerMonth
	if perMonth <= 0 {
		perMonth = 4
	}

	month := 1
	start := 1
	for _, block := range p.Blocks {
		count := len(block.Articles)
		monthsNeeded := (count + perMonth - 1) / perMonth
		fmt.Fprintf(b, "### **МЕСЯЦ %d-%d: %s блок (%d статей)**\n",
			month, month+monthsNeeded-1, Capitalize(string(block.Category)), count)
		fmt.Fprintf(b, "**Приоритет:** %s\n", block.Priority)
		fmt.Fprintf(b, "- Статьи %d-%d\n\n", start, start+count-1)
		month += monthsNeeded
		start += count
	}
	b.WriteString("\n---\n\n")
}

func writeTargetMetrics(b *strings.Builder, settings *config.ContentPlanSettings) {
	b.WriteString("## 🎯 ЦЕЛЕВЫЕ ПОКАЗАТЕЛИ\n\n")
	b.WriteString("### **После 3 месяцев:**\n")
	b.WriteString("- **Органический трафик:** 30-40% от целевого\n")
	b.WriteString("- **Позиции в ТОП-10:** 40% от общего числа запросов\n")
	b.WriteString("- **Конверсия в заявки:** 1.5-2%\n\n")
	b.WriteString("### **После 6 месяцев:**\n")
	fmt.Fprintf(b, "- **Органический трафик:** %s посетителей/месяц\n", settings.ExpectedTrafficPerMonth)
	fmt.Fprintf(b, "- **Позиции в ТОП-10:** %d+ ключевых запросов\n", settings.TargetTopPositions)
	fmt.Fprintf(b, "- **Конверсия в заявки:** %s%%\n\n---\n\n", settings.ConversionRatePercent)
}

func writeRecommendations(b *strings.Builder, business *config.BusinessInfo, settings *config.ContentPlanSettings) {
	b.WriteString("## 💡 РЕКОМЕНДАЦИИ ПО КОНТЕНТУ\n\n")
	b.WriteString("### **Обязательные элементы каждой статьи:**\n")
	b.WriteString("✅ **8-12 внутренних ссылок** на смежные страницы\n")
	for _, utp := range business.UTP {
		fmt.Fprintf(b, "✅ **%s**\n", utp)
	}
	fmt.Fprintf(b, "✅ **Контакты:** %s\n", settings.Phone)
	fmt.Fprintf(b, "✅ **Цены:** %s\n", settings.PricePerSqm)
	fmt.Fprintf(b, "✅ **Локализация:** %s, районы\n\n", business.City)

	b.WriteString("### **Структура статей:**\n")
	fmt.Fprintf(b, "- **Объем:** %s знаков\n", settings.ArticleLengthWords)
	b.WriteString("- **H2-H3:** 4-6 подзаголовков\n")
	b.WriteString("- **Призывы к действию:** каждые 500-700 слов\n")
	b.WriteString("- **Изображения:** фото работ, схемы, инфографика\n\n")

	b.WriteString("### **SEO-требования:**\n")
	b.WriteString("- **Плотность ключей:** 1-2%\n")
	b.WriteString("- **LSI-слова:** мастер, бригада, смета, гарантия, материалы\n")
	b.WriteString("- **Title:** до 60 символов с ключом\n")
	b.WriteString("- **Description:** 150-160 символов с УТП\n\n---\n\n")
}

func writeCrosslinking(b *strings.Builder, settings *config.ContentPlanSettings) {
	b.WriteString("## 🔗 СТРАТЕГИЯ ПЕРЕЛИНКОВКИ\n\n")
	b.WriteString("### **Приоритетные ссылки в каждой статье:**\n")
	for i, link := range settings.InternalLinks {
		fmt.Fprintf(b, "%d. `%s`\n", i+1, link)
	}
	b.WriteString("\n### **Анкоры для ссылок:**\n")
	for _, anchor := range settings.AnchorTexts {
		fmt.Fprintf(b, "- \"%s\"\n", anchor)
	}
	b.WriteString("\n---\n\n")
	b.WriteString("**ИТОГО: Полный план статей для продвижения в ТОП-10**\n\n")
	b.WriteString("*Планируемый результат: органический трафик и лидогенерация*\n")
}
