package classify

import "testing"

func TestClassifyTable(t *testing.T) {
	c := New(nil)

	tests := []struct {
		name     string
		phrase   string
		city     string
		category Category
		local    bool
		marker   string
	}{
		{"commercial local compound", "купить ноутбук москва", "Москва", Commercial, true, "📍🛒"},
		{"informational", "как выбрать ноутбук", "Москва", Informational, false, "📚"},
		{"price", "стоимость ремонта квартиры", "Москва", Price, false, "💰"},
		{"comparison", "ламинат или паркет отзывы", "Москва", Comparison, false, "⚖️"},
		{"no match local", "ремонт квартир москва", "Москва", Other, true, "📍"},
		{"no match", "ремонт квартир", "Москва", Other, false, "🔍"},
		// Declaration order: commercial is tested before price, so a
		// phrase with both keyword kinds lands in commercial.
		{"commercial beats price", "купить плитку цена", "Москва", Commercial, false, "🛒"},
		// Local informational keeps the plain marker.
		{"informational local", "как выбрать плитку москва", "Москва", Informational, true, "📚"},
		{"substring match inside word", "прайслист на обои", "Москва", Price, false, "💰"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.phrase, tt.city)
			if got.Category != tt.category {
				t.Errorf("Category = %s, want %s", got.Category, tt.category)
			}
			if got.Local != tt.local {
				t.Errorf("Local = %v, want %v", got.Local, tt.local)
			}
			if got.Marker != tt.marker {
				t.Errorf("Marker = %q, want %q", got.Marker, tt.marker)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	c := New(nil)
	first := c.Classify("ремонт под ключ спб", "Санкт-Петербург")
	for i := 0; i < 10; i++ {
		if got := c.Classify("ремонт под ключ спб", "Санкт-Петербург"); got != first {
			t.Fatalf("Run %d diverged: %+v vs %+v", i, got, first)
		}
	}
}

func TestClassifyCustomRules(t *testing.T) {
	c := New([]Rule{{Category: Price, Keywords: []string{"ЦЕНА"}}})
	got := c.Classify("цена ремонта", "")
	if got.Category != Price {
		t.Errorf("Custom rule keywords must be case-normalized, got %s", got.Category)
	}
}

func TestCategoryFromMarker(t *testing.T) {
	tests := []struct {
		marker string
		want   Category
	}{
		{"🛒", Commercial},
		{"📍🛒", Commercial},
		{"💰", Price},
		{"📍💰", Price},
		{"📚", Informational},
		{"⚖️", Comparison},
		{"📍", Local},
		{"🔍", Other},
		{"", Other},
	}
	for _, tt := range tests {
		if got := CategoryFromMarker(tt.marker); got != tt.want {
			t.Errorf("CategoryFromMarker(%q) = %s, want %s", tt.marker, got, tt.want)
		}
	}
}
