// Package pipeline runs each source over its companies: fetch, extract, then load.
package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/pyq-scraper/internal/extraction"
	"github.com/jonathan/pyq-scraper/internal/loader"
	"github.com/jonathan/pyq-scraper/internal/sources"
	"github.com/jonathan/pyq-scraper/internal/types"
)

// ProgressEvent represents a progress update during a run
type ProgressEvent struct {
	Source  string      `json:"source"`
	Company string      `json:"company"`
	Stage   types.Stage `json:"stage"`
	Message string      `json:"message"`
}

// ProgressCallback is called when pipeline progress occurs
type ProgressCallback func(event ProgressEvent)

// Loader persists one company's candidates
type Loader interface {
	Load(ctx context.Context, companyKey string, candidates []types.QuestionCandidate) loader.Result
}

// Job is a source to run, with the pause taken between two of its companies
type Job struct {
	Source       sources.Source
	CompanyPause time.Duration
}

// RunOptions holds configuration for running the pipeline
type RunOptions struct {
	Jobs   []Job
	Loader Loader
	// Companies restricts the run to these keys. Nil runs every company of every source.
	Companies  func(companyKey string) bool
	OnProgress ProgressCallback
	Logger     *zap.Logger
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, source, company string, stage types.Stage, message string) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{Source: source, Company: company, Stage: stage, Message: message})
	}
}

// Run processes every job in order, one company at a time. Failures of a unit
// or a company are recorded in the summary; only context cancellation stops the run.
func Run(ctx context.Context, opts RunOptions) (*Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	summary := &Summary{}

	for _, job := range opts.Jobs {
		src := job.Source
		log := logger.With(zap.String("source", src.Name()))

		first := true
		for _, company := range src.Companies() {
			if opts.Companies != nil && !opts.Companies(company) {
				continue
			}
			if !first {
				if err := pause(ctx, job.CompanyPause); err != nil {
					return summary, err
				}
			}
			first = false

			log.Info("scraping company", zap.String("company", company))
			report := RunCompany(ctx, src, company, &opts)
			summary.Reports = append(summary.Reports, report)

			if err := ctx.Err(); err != nil {
				return summary, err
			}
		}
	}
	return summary, nil
}

// RunCompany fetches, extracts and loads a single company for src.
// opts.Loader must be set; Jobs and Companies are ignored.
func RunCompany(ctx context.Context, src sources.Source, company string, opts *RunOptions) CompanyReport {
	report := CompanyReport{Source: src.Name(), Company: company}

	emitProgress(opts, src.Name(), company, types.StageFetch, "fetching documents")
	fetched := src.Fetch(ctx, company)
	report.Documents = len(fetched.Documents)
	report.Outcomes = append(report.Outcomes, fetched.Outcomes...)

	emitProgress(opts, src.Name(), company, types.StageExtract, "extracting questions")
	profile := src.Profile()
	var candidates []types.QuestionCandidate
	for _, doc := range fetched.Documents {
		candidates = append(candidates, extraction.ExtractAll(doc, profile)...)
	}
	report.Candidates = len(candidates)

	emitProgress(opts, src.Name(), company, types.StageLoad, "loading questions")
	report.Load = opts.Loader.Load(ctx, company, candidates)
	report.Outcomes = append(report.Outcomes, report.Load.Outcomes...)

	return report
}

func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
