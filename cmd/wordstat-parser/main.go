package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/fetch"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/report"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/seed"
)

func main() {
	var (
		configPath  = flag.String("config", "config.json", "Settings document")
		envPath     = flag.String("env", ".env", "Token file")
		queriesPath = flag.String("queries", "queries.txt", "Seed query list")
		rulesPath   = flag.String("rules", "", "Classification rules override (optional)")
		outDir      = flag.String("out", "output", "Output directory")
		baseURL     = flag.String("api", "", "Wordstat API base URL override (optional)")
	)
	flag.Parse()

	loader := config.Loader{ConfigPath: *configPath, EnvPath: *envPath, RulesPath: *rulesPath}
	comp, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	cfg := comp.Config
	seeds, err := seed.LoadFile(*queriesPath)
	if err != nil {
		log.Fatal("Failed to load queries: ", err)
	}
	classifier := classify.New(comp.Rules.ClassifierRules())

	log.Printf("Wordstat parser started: %s (%d), %d seed queries",
		cfg.BusinessInfo.City, cfg.BusinessInfo.RegionCode, len(seeds))

	pipeline := wordstat.New(wordstat.Options{
		Fetcher: &fetch.Client{
			BaseURL: *baseURL,
			Token:   comp.Token,
		},
		Business: cfg.BusinessInfo,
		Settings: cfg.ParserSettings,
	})

	run, err := pipeline.Run(context.Background(), seeds)
	if err != nil {
		log.Fatal("Parsing failed: ", err)
	}
	log.Printf("Parsing finished: %d succeeded, %d without data", run.Succeeded, run.Failed)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("Failed to create output directory: ", err)
	}
	if err := writeReports(*outDir, run, classifier); err != nil {
		log.Fatal("Failed to write reports: ", err)
	}

	log.Printf("✓ Results written to %s/results.md and %s/results.csv", *outDir, *outDir)
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
