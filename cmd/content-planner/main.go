package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/cluster"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/plan"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/report"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "Settings document")
		resultsPath = flag.String("results", "output/results.md", "Parser results report")
		rulesPath   = flag.String("rules", "", "Clustering rules override (optional)")
		outPath     = flag.String("out", "output/content_plan.md", "Content plan destination")
	)
	flag.Parse()

	loader := config.Loader{ConfigPath: *configPath, RulesPath: *rulesPath}
	comp, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	cfg := comp.Config

	phrases, err := report.Load(*resultsPath)
	if err != nil {
		log.Fatal("Failed to load parser results: ", err)
	}
	log.Printf("Loaded %d phrases from %s", len(phrases), *resultsPath)

	settings := cfg.ContentPlanSettings
	engine := cluster.New(comp.Rules.ClusterOptions(0))

	clusters := engine.Cluster(phrases, settings.MinFrequencyThreshold)
	log.Printf("Formed %d semantic clusters", len(clusters))
	for _, c := range clusters {
		log.Printf("  %s: %d phrases", c.Name, len(c.Phrases))
	}

	groups := cluster.GroupByCategory(phrases, settings.MinFrequencyThreshold)
	p := plan.Generate(groups, cfg)
	if p.TotalArticles == 0 {
		log.Fatal("No phrases passed the frequency threshold, nothing to plan")
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		log.Fatal("Failed to create output directory: ", err)
	}
	if err := os.WriteFile(*outPath, []byte(plan.Markdown(p, cfg)), 0o644); err != nil {
		log.Fatal("Failed to write content plan: ", err)
	}

	log.Printf("✓ Content plan with %d articles written to %s", p.TotalArticles, *outPath)
}
