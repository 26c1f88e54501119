package competitors

import (
	"strings"
	"testing"
)

func TestFromURLs(t *testing.T) {
	urls := []string{
		"https://example.com/remont-komnat/",
		"https://example.com/uslugi/remont-vannoy.html",
		"https://example.com/page.php",
		"https://example.com/a/",                // too short
		"https://other.ru/remont-komnat",        // duplicate slug
	}
	got := FromURLs(urls)
	want := []string{"remont komnat", "remont vannoy", "page"}
	if len(got) != len(want) {
		t.Fatalf("FromURLs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FromURLs[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMineHTML(t *testing.T) {
	page := `<html><head><title>Ремонт квартир под ключ</title></head>
<body><h1>Ремонт   квартир в СПб</h1><p>текст</p><h2>Цены на ремонт</h2></body></html>`

	got, err := MineHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("MineHTML: %v", err)
	}
	want := []string{"Ремонт квартир под ключ", "Ремонт квартир в СПб", "Цены на ремонт"}
	if len(got) != len(want) {
		t.Fatalf("MineHTML = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MineHTML[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
