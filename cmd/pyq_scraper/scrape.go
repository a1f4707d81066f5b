package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/pyq-scraper/internal/pipeline"
)

var gfgCmd = &cobra.Command{
	Use:   "gfg",
	Short: "Scrape company tag pages of the article site",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		return runJobs(cmd.Context(), cmd, cfg, logger, []pipeline.Job{
			{Source: newGfGSource(cfg, logger)},
		})
	},
}

var leetcodeCmd = &cobra.Command{
	Use:   "leetcode",
	Short: "Scrape interview-experience posts from the forum API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		return runJobs(cmd.Context(), cmd, cfg, logger, []pipeline.Job{
			{Source: newLeetCodeSource(cfg, logger), CompanyPause: cfg.CompanyPause()},
		})
	},
}

func init() {
	rootCmd.AddCommand(gfgCmd)
	rootCmd.AddCommand(leetcodeCmd)
}
