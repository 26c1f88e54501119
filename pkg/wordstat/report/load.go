package report

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/cluster"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/internalerr"
)

// Load parses a results.md back into phrase records for planning.
// Malformed table rows are skipped with a logged warning; a file with no
// parseable phrases is an error.
func Load(path string) ([]cluster.Phrase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results %s: %w", path, err)
	}

	phrases := Parse(string(data))
	if len(phrases) == 0 {
		return nil, fmt.Errorf("no phrases found in %s: %w", path, internalerr.ErrNoData)
	}
	return phrases, nil
}

// Parse extracts phrase rows from results.md content.
func Parse(content string) []cluster.Phrase {
	var phrases []cluster.Phrase
	inTable := false

	for i, line := range strings.Split(content, "\n") {
		switch {
		case strings.HasPrefix(line, tableHeader):
			inTable = true
			continue
		case inTable && strings.HasPrefix(line, "|---|"):
			continue
		case inTable && strings.TrimSpace(line) == "---":
			inTable = false
			continue
		}
		if !inTable || !strings.HasPrefix(line, "|") {
			continue
		}

		p, ok := parseRow(line)
		if !ok {
			log.Printf("results: skipping malformed row %d: %s", i+1, line)
			continue
		}
		phrases = append(phrases, p)
	}

	return phrases
}

func parseRow(line string) (cluster.Phrase, bool) {
	cells := strings.Split(line, "|")
	if len(cells) < 6 {
		return cluster.Phrase{}, false
	}
	// cells[0] and the last cell are the empty fragments around the
	// outer pipes.
	num := strings.TrimSpace(cells[1])
	text := strings.TrimSpace(cells[2])
	freqRaw := strings.TrimSpace(cells[3])
	marker := strings.TrimSpace(cells[4])

	if _, err := strconv.Atoi(num); err != nil {
		return cluster.Phrase{}, false
	}

	// Drop the duplicate-sighting annotation.
	if idx := strings.Index(text, "*(встречается"); idx >= 0 {
		text = strings.TrimSpace(text[:idx])
	}

	freqRaw = strings.ReplaceAll(freqRaw, ",", "")
	freqRaw = strings.ReplaceAll(freqRaw, " ", "")
	frequency, err := strconv.Atoi(freqRaw)
	if err != nil || frequency < 0 {
		return cluster.Phrase{}, false
	}

	return cluster.Phrase{
		Text:      text,
		Frequency: frequency,
		Category:  classify.CategoryFromMarker(marker),
	}, true
}
