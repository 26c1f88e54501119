package seed

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/config"
	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/internalerr"
)

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.txt")
	content := "ремонт квартир спб\n\n  ремонт ванной  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	queries, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(queries) != 2 || queries[0] != "ремонт квартир спб" || queries[1] != "ремонт ванной" {
		t.Errorf("queries = %v", queries)
	}
}

func TestLoadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.txt")
	if err := os.WriteFile(path, []byte("\n  \n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, internalerr.ErrEmptyQueries) {
		t.Errorf("Expected ErrEmptyQueries, got %v", err)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestGenerate(t *testing.T) {
	business := &config.BusinessInfo{
		Niche:    "ремонт квартир",
		City:     "Санкт-Петербург",
		Services: []string{"ремонт ванной", "ремонт кухни спб"},
	}

	queries := Generate(business, []string{"ремонт комнат", "ремонт ванной"})

	want := map[string]bool{
		"ремонт квартир спб":          true,
		"ремонт квартир цена спб":     true,
		"ремонт ванной":               true,
		"ремонт ванной спб":           true,
		"ремонт кухни спб":            true,
		"ремонт квартир стоимость":    true,
		"сколько стоит ремонт квартир": true,
		"ремонт квартир в хрущевке":   true,
		"бюджетный ремонт квартир":    true,
		"ремонт комнат":               true,
	}
	got := make(map[string]bool, len(queries))
	for _, q := range queries {
		if got[q] {
			t.Errorf("Duplicate query %q", q)
		}
		got[q] = true
	}
	for q := range want {
		if !got[q] {
			t.Errorf("Missing query %q in %v", q, queries)
		}
	}
	// Service already carrying the city must not get it twice.
	if got["ремонт кухни спб спб"] {
		t.Error("City appended to a service that already has it")
	}
}

func TestGenerateNonRenovationNiche(t *testing.T) {
	business := &config.BusinessInfo{Niche: "натяжные потолки", City: "Казань"}
	for _, q := range Generate(business, nil) {
		if q == "натяжные потолки в хрущевке" {
			t.Error("Room-type queries only apply to renovation niches")
		}
	}
}

func TestSaveFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queries.txt")
	in := []string{"первый запрос", "второй запрос"}
	if err := SaveFile(path, in); err != nil {
		t.Fatalf("SaveFile: %v", err)
	}
	out, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
		t.Errorf("round trip = %v", out)
	}
}
