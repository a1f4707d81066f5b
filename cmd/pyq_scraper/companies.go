package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/pyq-scraper/internal/observability"
	"github.com/jonathan/pyq-scraper/internal/sources/gfg"
	"github.com/jonathan/pyq-scraper/internal/sources/leetcode"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "List the company keys each source scrapes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		printer := observability.NewPrinter(cmd.OutOrStdout())
		printer.PrintCompanies(gfg.Name, gfg.New(nil, gfg.DefaultConfig(), nil).Companies())
		printer.PrintCompanies(leetcode.Name, leetcode.New(nil, leetcode.DefaultConfig(), nil).Companies())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(companiesCmd)
}
