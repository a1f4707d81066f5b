package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/pyq-scraper/internal/extraction"
	"github.com/jonathan/pyq-scraper/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract questions from a text file or stdin and print them as JSON",
	Long: "Extract runs the question extractor and classifier over local text without touching the network or database. " +
		"Each line is a unit; the forum profile strips markdown and HTML first.",
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

var (
	extractProfile string
	extractSource  string
)

func init() {
	extractCmd.Flags().StringVarP(&extractProfile, "profile", "p", "forum", "Extraction profile: article|gfg|forum|leetcode")
	extractCmd.Flags().StringVarP(&extractSource, "source", "s", "", "Source URL recorded on each question (defaults to the file name)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	profile, ok := extraction.ProfileByName(extractProfile)
	if !ok {
		return fmt.Errorf("unknown profile %q", extractProfile)
	}

	var (
		data   []byte
		err    error
		source = extractSource
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if source == "" {
			source = args[0]
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	doc := types.RawDocument{ID: source, Source: source, Text: string(data)}
	candidates := extraction.ExtractAll(doc, profile)
	if candidates == nil {
		candidates = []types.QuestionCandidate{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(candidates)
}
