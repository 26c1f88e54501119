// Package wordstat wires the keyword acquisition pipeline: seed queries
// are fetched one at a time, results feed the duplicate tracker, and
// recursive expansion rounds issue the top follow-up phrases until the
// configured depth is reached.
package wordstat

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/dedup"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/expand"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/fetch"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/internalerr"
)

// Fetcher issues one remote lookup per phrase.
type Fetcher interface {
	Fetch(ctx context.Context, phrase string, region int, devices []string, maxRetries int) (fetch.Result, error)
}

// QueryOutcome is the result of one issued query.
type QueryOutcome struct {
	Query  string
	Level  int
	Failed bool
	Result fetch.Result
}

// Run aggregates everything a parsing run produced. It lives for the
// whole run and is reset by creating a new one; the tracker and issued
// list are owned here and only borrowed by the expansion step.
type Run struct {
	ID        string
	Date      time.Time
	City      string
	Outcomes  []QueryOutcome
	Succeeded int
	Failed    int
	Tracker   *dedup.Tracker
}

// Pipeline executes a sequential parsing run: one fetch in flight at a
// time, a fixed delay between calls.
type Pipeline struct {
	fetcher  Fetcher
	business *config.BusinessInfo
	settings *config.ParserSettings
	logger   *log.Logger
	sleep    func(time.Duration)
}

// Options configures a Pipeline.
type Options struct {
	Fetcher  Fetcher
	Business *config.BusinessInfo
	Settings *config.ParserSettings
	Logger   *log.Logger

	// Sleep overrides the inter-request delay sleep. Tests inject a
	// recorder; nil uses time.Sleep.
	Sleep func(time.Duration)
}

// New creates a pipeline with the given dependencies.
func New(opts Options) *Pipeline {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Pipeline{
		fetcher:  opts.Fetcher,
		business: opts.Business,
		settings: opts.Settings,
		logger:   opts.Logger,
		sleep:    sleep,
	}
}

// Run processes the seed queries and, when recursive parsing is enabled
// with recursion_depth ≥ 2, follow-up rounds of the top phrases found so
// far. Per-query failures are recorded and never abort the run; the run
// itself fails only when no seeds are supplied or every query came back
// empty.
func (p *Pipeline) Run(ctx context.Context, seeds []string) (*Run, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("run: no seed queries: %w", internalerr.ErrEmptyQueries)
	}

	run := &Run{
		ID:      ulid.MustNew(ulid.Now(), rand.Reader).String(),
		Date:    time.Now(),
		City:    p.business.City,
		Tracker: dedup.NewTracker(),
	}

	delay := time.Duration(p.settings.DelayBetweenRequests * float64(time.Second))
	minus := expand.MinusWords(p.settings.MinusWords)
	issued := make(map[string]bool)

	var gathered []fetch.Result
	queries := seeds

	for level := 1; ; level++ {
		for i, query := range queries {
			issued[strings.ToLower(query)] = true

			res, err := p.fetcher.Fetch(ctx, query, p.business.RegionCode, p.settings.Devices, p.settings.MaxRetries)
			if err != nil {
				run.Failed++
				run.Outcomes = append(run.Outcomes, QueryOutcome{Query: query, Level: level, Failed: true})
				p.logf("query %q (level %d): %v", query, level, err)
			} else {
				if limit := p.settings.TopResultsLimit; limit > 0 && len(res.Phrases) > limit {
					res.Phrases = res.Phrases[:limit]
				}
				run.Succeeded++
				run.Outcomes = append(run.Outcomes, QueryOutcome{Query: query, Level: level, Result: res})
				for _, phrase := range res.Phrases {
					run.Tracker.Record(phrase.Text, query)
				}
				gathered = append(gathered, res)
			}

			// Fixed delay between calls, skipped after the last
			// query of a level.
			if delay > 0 && i < len(queries)-1 {
				p.sleep(delay)
			}
		}

		if !p.settings.RecursiveParsing || p.settings.RecursionDepth < level+1 {
			break
		}
		next := expand.SelectNextLevel(gathered, minus, p.settings.RecursiveTopQueries, issued)
		if len(next) == 0 {
			break
		}
		p.logf("level %d: expanding into %d queries", level+1, len(next))
		queries = next
	}

	if run.Succeeded == 0 {
		return run, fmt.Errorf("run: all %d queries failed: %w", run.Failed, internalerr.ErrNoData)
	}
	return run, nil
}

func (p *Pipeline) logf(format string, args ...any) {
	if p.logger != nil {
		p.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
