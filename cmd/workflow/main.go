// Command workflow runs the full pipeline in one process: seed query
// generation, Wordstat acquisition and content plan generation, with
// numbered step banners and a closing summary.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AndreyTsibin/ai-wordstat-parser/internal/competitors"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/cluster"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/fetch"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/plan"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/report"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/seed"
)

const totalSteps = 4

func printHeader(text string) {
	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Printf("  %s\n", text)
	fmt.Println(strings.Repeat("=", 60) + "\n")
}

func printStep(num int, description string) {
	fmt.Printf("📍 ШАГ %d/%d: %s\n", num, totalSteps, description)
	fmt.Println(strings.Repeat("-", 60))
}

func main() {
	var (
		configPath  = flag.String("config", "config.json", "Settings document")
		envPath     = flag.String("env", ".env", "Token file")
		rulesPath   = flag.String("rules", "", "Rules override (optional)")
		queriesPath = flag.String("queries", "queries.txt", "Seed query list")
		outDir      = flag.String("out", "output", "Output directory")
	)
	flag.Parse()

	start := time.Now()

	printHeader("🤖 WORKFLOW: АВТОМАТИЗАЦИЯ SEO-ПЛАНИРОВАНИЯ")
	fmt.Printf("🕐 Запуск: %s\n\n", start.Format("02.01.2006 15:04:05"))

	printStep(1, "Загрузка и валидация конфигурации")
	loader := config.Loader{ConfigPath: *configPath, EnvPath: *envPath, RulesPath: *rulesPath}
	comp, err := loader.Load()
	if err != nil {
		log.Fatal("Конфигурация не загружена: ", err)
	}
	cfg := comp.Config
	fmt.Printf("✅ Конфигурация загружена: %s\n\n", cfg.BusinessInfo.Niche)

	printStep(2, "Генерация поисковых запросов")
	extra := competitors.FromURLs(cfg.BusinessInfo.Competitors)
	queries := seed.Generate(cfg.BusinessInfo, extra)
	if err := seed.SaveFile(*queriesPath, queries); err != nil {
		log.Fatal("Запросы не сохранены: ", err)
	}
	fmt.Printf("✅ Сгенерировано запросов: %d → %s\n\n", len(queries), *queriesPath)

	printStep(3, "Парсинг Яндекс Вордстат API")
	fmt.Println("⏳ Это может занять несколько минут...")
	pipeline := wordstat.New(wordstat.Options{
		Fetcher:  &fetch.Client{Token: comp.Token},
		Business: cfg.BusinessInfo,
		Settings: cfg.ParserSettings,
	})
	run, err := pipeline.Run(context.Background(), queries)
	if err != nil {
		log.Fatal("Парсинг завершился с ошибкой: ", err)
	}
	classifier := classify.New(comp.Rules.ClassifierRules())
	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("Каталог вывода не создан: ", err)
	}
	if err := writeReports(*outDir, run, classifier); err != nil {
		log.Fatal("Отчёты не записаны: ", err)
	}
	fmt.Printf("✅ Парсинг завершён: %d запросов с данными, %d без данных\n\n",
		run.Succeeded, run.Failed)

	printStep(4, "Генерация плана статей")
	phrases, err := report.Load(filepath.Join(*outDir, "results.md"))
	if err != nil {
		log.Fatal("Результаты парсинга не загружены: ", err)
	}
	settings := cfg.ContentPlanSettings
	groups := cluster.GroupByCategory(phrases, settings.MinFrequencyThreshold)
	p := plan.Generate(groups, cfg)
	planPath := filepath.Join(*outDir, "content_plan.md")
	if err := os.WriteFile(planPath, []byte(plan.Markdown(p, cfg)), 0o644); err != nil {
		log.Fatal("План статей не записан: ", err)
	}
	fmt.Printf("✅ План статей сформирован: %d статей → %s\n\n", p.TotalArticles, planPath)

	printSummary(cfg, *queriesPath, *outDir, start)
}

func writeReports(dir string, run *wordstat.Run, classifier *classify.Classifier) error {
	md, err := os.Create(filepath.Join(dir, "results.md"))
	if err != nil {
		return err
	}
	defer md.Close()
	if err := report.WriteMarkdown(md, run, classifier); err != nil {
		return err
	}

	csvFile, err := os.Create(filepath.Join(dir, "results.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()
	return report.WriteCSV(csvFile, run, classifier)
}

func printSummary(cfg *config.Config, queriesPath, outDir string, start time.Time) {
	printHeader("🎉 WORKFLOW ЗАВЕРШЁН")

	fmt.Println("📂 Созданные файлы:")
	fmt.Printf("   • %s - поисковые запросы\n", queriesPath)
	fmt.Printf("   • %s/results.md - результаты парсинга Вордстат\n", outDir)
	fmt.Printf("   • %s/results.csv - экспорт в CSV\n", outDir)
	fmt.Printf("   • %s/content_plan.md - готовый план статей\n\n", outDir)

	business := cfg.BusinessInfo
	settings := cfg.ContentPlanSettings
	fmt.Println("📊 Итоговая информация:")
	fmt.Printf("   • Ниша: %s\n", business.Niche)
	fmt.Printf("   • Город: %s\n", business.City)
	fmt.Printf("   • Целевая страница: %s\n", settings.TargetPage)
	fmt.Printf("   • Запланировано статей: %d\n", settings.ArticlesPerMonth*settings.PlanningPeriodMonths)
	fmt.Printf("   • Период создания: %d месяцев\n", settings.PlanningPeriodMonths)
	fmt.Printf("   • Ожидаемый трафик: %s в месяц\n\n", settings.ExpectedTrafficPerMonth)

	fmt.Printf("⏱️  Время выполнения: %.1f сек\n\n", time.Since(start).Seconds())

	fmt.Println("💡 Следующие шаги:")
	fmt.Printf("   1. Откройте %s/content_plan.md для просмотра плана статей\n", outDir)
	fmt.Println("   2. Скорректируйте приоритеты и темы при необходимости")
	fmt.Println("   3. Начните создание контента по календарному плану")
}
