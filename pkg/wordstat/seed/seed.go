// Package seed supplies the initial query list: loaded from queries.txt
// or generated from the business configuration.
package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/internalerr"
)

// LoadFile reads seed queries, one non-empty line each, preserving order.
// An empty list is fatal: the pipeline has nothing to do.
func LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read queries %s: %w", path, err)
	}

	var queries []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			queries = append(queries, line)
		}
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("queries %s: %w", path, internalerr.ErrEmptyQueries)
	}
	return queries, nil
}

// SaveFile writes queries one per line.
func SaveFile(path string, queries []string) error {
	return os.WriteFile(path, []byte(strings.Join(queries, "\n")+"\n"), 0o644)
}

// roomTypes extends renovation niches with object-type queries.
var roomTypes = []string{
	"в хрущевке", "маленькой", "в панельном доме", "детской", "гостиной",
}

// Generate builds seed queries from the business info plus extra
// candidates (typically competitor-derived). Duplicates are dropped,
// first occurrence wins.
func Generate(business *config.BusinessInfo, extra []string) []string {
	niche := business.Niche
	cityShort := strings.ToLower(business.City)
	if strings.Contains(cityShort, "санкт-петербург") {
		cityShort = "спб"
	}

	var queries []string
	seen := make(map[string]bool)
	add := func(q string) {
		q = strings.TrimSpace(q)
		if q == "" || seen[strings.ToLower(q)] {
			return
		}
		seen[strings.ToLower(q)] = true
		queries = append(queries, q)
	}

	// Прямые запросы по нише
	add(niche + " " + cityShort)
	add(niche + " цена " + cityShort)

	// Запросы по услугам
	for _, service := range business.Services {
		add(service)
		if !strings.Contains(strings.ToLower(service), cityShort) {
			add(service + " " + cityShort)
		}
	}

	// Коммерческие запросы
	add(niche + " стоимость")
	add("сколько стоит " + niche)

	// Запросы по типам объектов
	if strings.Contains(strings.ToLower(niche), "ремонт") {
		for _, room := range roomTypes {
			add(niche + " " + room)
		}
	}

	// Информационные запросы
	add("бюджетный " + niche)

	for _, q := range extra {
		add(q)
	}

	return queries
}
