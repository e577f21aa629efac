package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/audit"
	"github.com/jonathan/talent-matcher/internal/ingestion"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/parsing"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job posting into structured JSON",
	Long:  "Parse a job posting text or HTML file into structured fields (title, company, required skills, experience, education) and report missing information.",
	RunE:  runParseJob,
}

var (
	parseJobInput  string
	parseJobOutput string
)

func init() {
	parseJobCmd.Flags().StringVarP(&parseJobInput, "in", "i", "", "Path to job posting file (required)")
	parseJobCmd.Flags().StringVarP(&parseJobOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = parseJobCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(parseJobInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	text := string(data)

	ext := strings.ToLower(filepath.Ext(parseJobInput))
	if ext == ".html" || ext == ".htm" {
		text, err = ingestion.ExtractHTMLText(text)
		if err != nil {
			return fmt.Errorf("failed to extract text from HTML: %w", err)
		}
	}
	text = ingestion.CleanText(text)

	parsed := parsing.ExtractJobFields(text)
	missing := audit.AuditJob(parsed)

	jsonBytes, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJob(parsed)
		printer.PrintAudit(missing)
	}

	if parseJobOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseJobOutput, jsonBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed job posting\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseJobOutput)
	return nil
}
