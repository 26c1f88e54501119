// Package competitors mines seed-query candidates from competitor sites.
package competitors

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// FromURLs extracts query candidates from competitor URL slugs:
// /remont-komnat/ becomes "remont komnat". Too-short and duplicate
// slugs are dropped.
func FromURLs(urls []string) []string {
	var queries []string
	seen := make(map[string]bool)

	for _, raw := range urls {
		slug := lastPathSegment(raw)
		slug = strings.TrimSuffix(slug, ".html")
		slug = strings.TrimSuffix(slug, ".php")
		query := strings.TrimSpace(strings.ReplaceAll(slug, "-", " "))
		if len(query) <= 3 || seen[query] {
			continue
		}
		seen[query] = true
		queries = append(queries, query)
	}
	return queries
}

func lastPathSegment(url string) string {
	url = strings.TrimSuffix(url, "/")
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		return url[idx+1:]
	}
	return url
}

// MineHTML pulls heading text (title, h1, h2) out of a competitor page
// as additional seed candidates.
func MineHTML(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var candidates []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "title", "h1", "h2":
				if text := nodeText(n); text != "" {
					candidates = append(candidates, text)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return candidates, nil
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
}
