package cluster

import (
	"reflect"
	"testing"

	"github.com/AndreyTsibin/ai-wordstat-parser/pkg/wordstat/classify"
)

func TestSignificantWords(t *testing.T) {
	e := New(Options{})

	tests := []struct {
		phrase string
		want   []string
	}{
		{"ремонт квартиры в спб", []string{"ремонт", "квартиры"}},
		{"ремонт на кухне", []string{"ремонт", "кухне"}},
		{"в на из", nil},
		{"Ремонт РЕМОНТ ремонт", []string{"ремонт"}},
	}
	for _, tt := range tests {
		if got := e.SignificantWords(tt.phrase); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SignificantWords(%q) = %v, want %v", tt.phrase, got, tt.want)
		}
	}
}

func TestSpecialPatternPreemptsOverlap(t *testing.T) {
	e := New(Options{})
	phrases := []Phrase{
		{Text: "ремонт квартиры под ключ", Frequency: 100, Category: classify.Commercial},
		{Text: "ремонт под ключ недорого", Frequency: 900, Category: classify.Commercial},
	}

	clusters := e.Cluster(phrases, 50)
	if len(clusters) != 1 {
		t.Fatalf("Expected one cluster, got %d: %+v", len(clusters), clusters)
	}
	if clusters[0].Name != "под ключ" {
		t.Errorf("Cluster name = %q, want %q", clusters[0].Name, "под ключ")
	}
	if len(clusters[0].Phrases) != 2 {
		t.Errorf("Cluster size = %d, want 2", len(clusters[0].Phrases))
	}
	// Members sorted by frequency descending regardless of input order.
	if clusters[0].Phrases[0].Frequency != 900 {
		t.Errorf("First member frequency = %d, want 900", clusters[0].Phrases[0].Frequency)
	}
}

func TestMinFrequencyFilter(t *testing.T) {
	e := New(Options{})
	phrases := []Phrase{
		{Text: "ремонт ванной комнаты", Frequency: 100},
		{Text: "ремонт ванной комнаты фото", Frequency: 10},
	}
	clusters := e.Cluster(phrases, 50)
	total := 0
	for _, c := range clusters {
		total += len(c.Phrases)
	}
	if total != 1 {
		t.Errorf("Low-frequency phrase must be filtered, kept %d", total)
	}
}

func TestOverlapJoinsFoundingPhrase(t *testing.T) {
	e := New(Options{})
	phrases := []Phrase{
		{Text: "ремонт ванной комнаты", Frequency: 900},
		{Text: "ремонт ванной комнаты фото", Frequency: 300},
		{Text: "натяжные потолки монтаж", Frequency: 500},
	}
	clusters := e.Cluster(phrases, 50)
	if len(clusters) != 2 {
		t.Fatalf("Expected 2 clusters, got %d: %+v", len(clusters), clusters)
	}
	// Highest-frequency phrase founds the first cluster; its two longest
	// significant words name it: комнаты (7 runes), then ремонт, which
	// ties with ванной at 6 runes and wins by appearance order.
	if clusters[0].Name != "комнаты ремонт" {
		t.Errorf("Founding cluster name = %q, want %q", clusters[0].Name, "комнаты ремонт")
	}
	if len(clusters[0].Phrases) != 2 {
		t.Errorf("Overlap phrase should join founding cluster, size = %d", len(clusters[0].Phrases))
	}
}

func TestClusterNameTwoLongestWords(t *testing.T) {
	e := New(Options{})
	// значимые слова: ремонт(6), однокомнатной(13), квартиры(8)
	got := e.clusterName("ремонт однокомнатной квартиры")
	if got != "однокомнатной квартиры" {
		t.Errorf("clusterName = %q, want %q", got, "однокомнатной квартиры")
	}
}

func TestClusterNameFallbackTruncates(t *testing.T) {
	e := New(Options{StopWords: []string{"аааааааааааааааааааааааааааааааааааа"}})
	// A single long stop word leaves no significant words.
	phrase := "аааааааааааааааааааааааааааааааааааа"
	got := e.clusterName(phrase)
	if len([]rune(got)) != 30 {
		t.Errorf("Fallback name = %q (%d runes), want 30 runes", got, len([]rune(got)))
	}
}

func TestClusterDeterminism(t *testing.T) {
	e := New(Options{})
	phrases := []Phrase{
		{Text: "ремонт ванной комнаты", Frequency: 900},
		{Text: "ремонт квартиры под ключ", Frequency: 700},
		{Text: "ремонт ванной комнаты недорого фото", Frequency: 300},
		{Text: "стоимость ремонта квартиры", Frequency: 250},
		{Text: "ремонт детской комнаты", Frequency: 120},
		{Text: "натяжные потолки", Frequency: 80},
	}

	first := e.Cluster(phrases, 50)
	for i := 0; i < 5; i++ {
		again := e.Cluster(phrases, 50)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Run %d diverged:\n%+v\nvs\n%+v", i, again, first)
		}
	}
}

func TestGroupByCategory(t *testing.T) {
	phrases := []Phrase{
		{Text: "купить плитку", Frequency: 100, Category: classify.Commercial},
		{Text: "купить обои", Frequency: 300, Category: classify.Commercial},
		{Text: "как выбрать плитку", Frequency: 200, Category: classify.Informational},
		{Text: "редкая фраза", Frequency: 5, Category: classify.Other},
	}
	groups := GroupByCategory(phrases, 50)
	if len(groups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(groups))
	}
	comm := groups[classify.Commercial]
	if len(comm) != 2 || comm[0].Frequency != 300 {
		t.Errorf("Commercial group = %+v", comm)
	}
	if _, ok := groups[classify.Other]; ok {
		t.Error("Below-threshold phrase must not appear")
	}
}
