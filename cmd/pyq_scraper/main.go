// Package main provides the entry point for the interview question scraper.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool
	companies  []string
)

var rootCmd = &cobra.Command{
	Use:   "pyq_scraper",
	Short: "Scrape previously asked interview questions into PostgreSQL",
	Long: "pyq_scraper fetches interview-experience write-ups per company, extracts question-like lines, " +
		"classifies them by difficulty, category and topic, and inserts them into the question table.",
	SilenceUsage: true,
	RunE:         runAll,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a JSON config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs")
	rootCmd.PersistentFlags().StringSliceVar(&companies, "companies", nil, "Only scrape these company keys (comma-separated)")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
