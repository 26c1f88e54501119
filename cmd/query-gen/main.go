package main

import (
	"flag"
	"log"
	"os"

	"github.com/AndreyTsibin/ai-wordstat-parser/internal/competitors"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/seed"
)

func main() {
	var (
		configPath = flag.String("config", "config.json", "Settings document")
		outPath    = flag.String("out", "queries.txt", "Seed query destination")
	)
	flag.Parse()

	loader := config.Loader{ConfigPath: *configPath}
	comp, err := loader.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	business := comp.Config.BusinessInfo

	extra := competitors.FromURLs(business.Competitors)
	log.Printf("Extracted %d seed candidates from %d competitor URLs",
		len(extra), len(business.Competitors))

	// Saved competitor pages (flag.Args) contribute page headings too.
	for _, path := range flag.Args() {
		f, err := os.Open(path)
		if err != nil {
			log.Printf("Warning: skipping page %s: %v", path, err)
			continue
		}
		headings, err := competitors.MineHTML(f)
		f.Close()
		if err != nil {
			log.Printf("Warning: failed to parse page %s: %v", path, err)
			continue
		}
		log.Printf("Mined %d headings from %s", len(headings), path)
		extra = append(extra, headings...)
	}

	queries := seed.Generate(business, extra)
	if err := seed.SaveFile(*outPath, queries); err != nil {
		log.Fatal("Failed to write queries: ", err)
	}

	log.Printf("✓ %d seed queries written to %s", len(queries), *outPath)
}
