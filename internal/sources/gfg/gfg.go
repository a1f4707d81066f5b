// Package gfg fetches interview-experience articles from a community Q&A site's company tag pages.
package gfg

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/jonathan/pyq-scraper/internal/extraction"
	"github.com/jonathan/pyq-scraper/internal/fetch"
	"github.com/jonathan/pyq-scraper/internal/sources"
	"github.com/jonathan/pyq-scraper/internal/types"
)

// Name identifies this source in logs and on the command line
const Name = "gfg"

const (
	// DefaultPages is the number of listing pages read per company
	DefaultPages = 2
	// DefaultMaxArticles caps the articles parsed per company
	DefaultMaxArticles = 10
	// DefaultLinkPattern marks an interview-experience article link
	DefaultLinkPattern = "geeksforgeeks.org/interview-experiences/"
	// unitSelector selects the text units inside an article body
	unitSelector = "li, p"
)

// Config configures a Source
type Config struct {
	// TagURLs maps a company key to its tag listing URL, which must end in "/".
	TagURLs     map[string]string
	Pages       int
	MaxArticles int
	LinkPattern string
	Selectors   []string
}

// DefaultConfig returns the production configuration
func DefaultConfig() Config {
	return Config{
		TagURLs:     DefaultTagURLs(),
		Pages:       DefaultPages,
		MaxArticles: DefaultMaxArticles,
		LinkPattern: DefaultLinkPattern,
		Selectors:   fetch.ArticleSelectors(),
	}
}

// Source reads tag listings, then each linked article
type Source struct {
	getter fetch.HTMLGetter
	cfg    Config
	logger *zap.Logger
}

var _ sources.Source = (*Source)(nil)

// New creates a Source. Zero config fields fall back to DefaultConfig.
func New(getter fetch.HTMLGetter, cfg Config, logger *zap.Logger) *Source {
	def := DefaultConfig()
	if cfg.TagURLs == nil {
		cfg.TagURLs = def.TagURLs
	}
	if cfg.Pages <= 0 {
		cfg.Pages = def.Pages
	}
	if cfg.MaxArticles <= 0 {
		cfg.MaxArticles = def.MaxArticles
	}
	if cfg.LinkPattern == "" {
		cfg.LinkPattern = def.LinkPattern
	}
	if len(cfg.Selectors) == 0 {
		cfg.Selectors = def.Selectors
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Source{getter: getter, cfg: cfg, logger: logger.With(zap.String("source", Name))}
}

// Name implements sources.Source
func (s *Source) Name() string { return Name }

// Profile implements sources.Source
func (s *Source) Profile() extraction.Profile { return extraction.ArticleProfile() }

// Companies returns the configured company keys, sorted
func (s *Source) Companies() []string {
	keys := make([]string, 0, len(s.cfg.TagURLs))
	for k := range s.cfg.TagURLs {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Fetch returns one document per parsed article, at most MaxArticles.
func (s *Source) Fetch(ctx context.Context, companyKey string) sources.FetchResult {
	var result sources.FetchResult
	log := s.logger.With(zap.String("company", companyKey), zap.String("stage", string(types.StageFetch)))

	links, outcomes := s.ArticleLinks(ctx, companyKey)
	result.Outcomes = append(result.Outcomes, outcomes...)
	log.Info("found articles", zap.Int("count", len(links)))

	if len(links) > s.cfg.MaxArticles {
		links = links[:s.cfg.MaxArticles]
	}
	for i, link := range links {
		log.Debug("parsing article", zap.Int("n", i+1), zap.Int("of", len(links)), zap.String("url", link))
		doc, err := s.Article(ctx, link)
		if err != nil {
			log.Warn("failed to parse article", zap.String("url", link), zap.Error(err))
			result.Outcomes = append(result.Outcomes, types.Skipped(types.StageFetch, link, err))
			continue
		}
		result.Documents = append(result.Documents, doc)
	}
	return result
}

// ArticleLinks collects article links from the company's listing pages,
// deduplicated in first-seen order. A failing page contributes no links.
func (s *Source) ArticleLinks(ctx context.Context, companyKey string) ([]string, []types.Outcome) {
	base, ok := s.cfg.TagURLs[companyKey]
	if !ok {
		return nil, []types.Outcome{types.Skipped(types.StageFetch, companyKey, fmt.Errorf("no tag URL for company %q", companyKey))}
	}

	var (
		links    []string
		outcomes []types.Outcome
		seen     = make(map[string]bool)
	)
	for page := 1; page <= s.cfg.Pages; page++ {
		pageURL := ListingURL(base, page)

		html, err := s.getter.GetHTML(ctx, pageURL)
		if err != nil {
			s.logger.Warn("failed to fetch listing page", zap.String("company", companyKey), zap.String("url", pageURL), zap.Error(err))
			outcomes = append(outcomes, types.Skipped(types.StageFetch, pageURL, err))
			continue
		}

		found, err := fetch.Links(html, pageURL, s.cfg.LinkPattern)
		if err != nil {
			outcomes = append(outcomes, types.Skipped(types.StageFetch, pageURL, err))
			continue
		}
		for _, link := range found {
			if !seen[link] {
				seen[link] = true
				links = append(links, link)
			}
		}
		s.logger.Debug("listing page read", zap.String("company", companyKey), zap.Int("page", page), zap.Int("so_far", len(links)))
	}
	return links, outcomes
}

// Article fetches an article and splits its main content into text units.
// An article with no recognised content block yields a document with no units.
func (s *Source) Article(ctx context.Context, articleURL string) (types.RawDocument, error) {
	doc := types.RawDocument{ID: articleURL, Source: articleURL, Units: []string{}}

	html, err := s.getter.GetHTML(ctx, articleURL)
	if err != nil {
		return doc, err
	}

	content, err := fetch.MainContent(html, s.cfg.Selectors)
	if err != nil {
		return doc, err
	}
	if content == nil {
		return doc, nil
	}

	content.Find(unitSelector).Each(func(_ int, item *goquery.Selection) {
		doc.Units = append(doc.Units, extraction.CollapseWhitespace(item.Text()))
	})
	return doc, nil
}

// ListingURL returns the URL of a numbered listing page under base
func ListingURL(base string, page int) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return fmt.Sprintf("%spage/%d/", base, page)
}
