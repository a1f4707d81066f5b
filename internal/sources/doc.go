// Package sources defines what the pipeline needs from a question source.
package sources

import (
	"context"

	"github.com/jonathan/pyq-scraper/internal/extraction"
	"github.com/jonathan/pyq-scraper/internal/types"
)

// FetchResult is what a source returns for one company
type FetchResult struct {
	Documents []types.RawDocument
	Outcomes  []types.Outcome // units that were skipped
}

// Source fetches interview write-ups for a company
type Source interface {
	Name() string
	Companies() []string
	Profile() extraction.Profile
	Fetch(ctx context.Context, companyKey string) FetchResult
}
