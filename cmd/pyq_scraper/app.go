package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/pyq-scraper/internal/config"
	"github.com/jonathan/pyq-scraper/internal/fetch"
	"github.com/jonathan/pyq-scraper/internal/loader"
	"github.com/jonathan/pyq-scraper/internal/observability"
	"github.com/jonathan/pyq-scraper/internal/pipeline"
	"github.com/jonathan/pyq-scraper/internal/sources/gfg"
	"github.com/jonathan/pyq-scraper/internal/sources/leetcode"
)

// loadRuntime resolves the configuration and logger for a scraping command.
// Flags override the file and environment.
func loadRuntime(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if cmd.Flags().Changed("companies") {
		cfg.Companies = companies
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return cfg, logger, nil
}

func newGfGSource(cfg *config.Config, logger *zap.Logger) *gfg.Source {
	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.RequestTimeout()
	opts.Interval = cfg.GfGInterval()

	var getter fetch.HTMLGetter = fetch.NewClient(opts, logger)
	if cfg.UseBrowser {
		getter = fetch.NewBrowserGetter(opts, logger)
	}

	srcCfg := gfg.DefaultConfig()
	srcCfg.Pages = cfg.GfGPages
	srcCfg.MaxArticles = cfg.MaxDocuments
	return gfg.New(getter, srcCfg, logger)
}

func newLeetCodeSource(cfg *config.Config, logger *zap.Logger) *leetcode.Source {
	opts := leetcode.ClientOptions()
	// the list query runs under the client timeout; content queries get their own deadline
	opts.Timeout = cfg.GraphQLTimeout()
	opts.Interval = cfg.LeetCodeInterval()

	srcCfg := leetcode.DefaultConfig()
	srcCfg.PostLimit = cfg.LeetCodePostLimit
	srcCfg.MaxPosts = cfg.MaxDocuments
	srcCfg.ContentTimeout = cfg.RequestTimeout()
	return leetcode.New(fetch.NewClient(opts, logger), srcCfg, logger)
}

// runJobs executes the pipeline and prints the summary to the command's output.
func runJobs(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *zap.Logger, jobs []pipeline.Job) error {
	defer func() { _ = logger.Sync() }()

	store := loader.PostgresStore{DatabaseURL: cfg.DatabaseURL}
	summary, err := pipeline.Run(ctx, pipeline.RunOptions{
		Jobs:      jobs,
		Loader:    loader.New(store, logger),
		Companies: cfg.Wants,
		Logger:    logger,
		OnProgress: func(e pipeline.ProgressEvent) {
			logger.Debug(e.Message, zap.String("source", e.Source), zap.String("company", e.Company), zap.String("stage", string(e.Stage)))
		},
	})

	observability.NewPrinter(cmd.OutOrStdout()).PrintSummary(summary)
	if err != nil {
		return fmt.Errorf("run interrupted: %w", err)
	}
	logger.Info("run complete", zap.Int("inserted", summary.Inserted()), zap.Int("candidates", summary.Candidates()))
	return nil
}

func runAll(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadRuntime(cmd)
	if err != nil {
		return err
	}
	return runJobs(cmd.Context(), cmd, cfg, logger, []pipeline.Job{
		{Source: newGfGSource(cfg, logger)},
		{Source: newLeetCodeSource(cfg, logger), CompanyPause: cfg.CompanyPause()},
	})
}
