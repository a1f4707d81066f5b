package fetch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// MainContent parses html and returns the first element matched by the
// first selector that matches anything. It returns nil when no selector matches.
func MainContent(html string, selectors []string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	for _, selector := range selectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			return selection.First(), nil
		}
	}
	return nil, nil
}

// Links returns the absolute URLs of every anchor in html whose resolved
// href contains pattern, deduplicated in first-seen order.
func Links(html, baseURL, pattern string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	seen := make(map[string]bool)
	links := make([]string, 0)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if href == "" {
			return
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			// Skip malformed URLs
			return
		}

		absoluteURL := base.ResolveReference(linkURL)
		absoluteURL.Fragment = ""
		urlString := absoluteURL.String()

		if !strings.Contains(urlString, pattern) || seen[urlString] {
			return
		}
		seen[urlString] = true
		links = append(links, urlString)
	})

	return links, nil
}

// ArticleSelectors returns the content selectors for interview-experience articles, in priority order.
func ArticleSelectors() []string {
	return []string{
		"div.article-page-main",
		"div.entry-content",
		"article",
		"div.text",
	}
}
