package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/talent-matcher/internal/audit"
	"github.com/jonathan/talent-matcher/internal/extraction"
	"github.com/jonathan/talent-matcher/internal/ingestion"
	"github.com/jonathan/talent-matcher/internal/observability"
	"github.com/jonathan/talent-matcher/internal/parsing"
	"github.com/jonathan/talent-matcher/internal/schemas"
)

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into structured JSON",
	Long:  "Extract text from a resume document (PDF, DOCX, TXT, or MD), parse it into structured fields, and report missing information.",
	RunE:  runParseResume,
}

var (
	parseResumeInput  string
	parseResumeOutput string
)

func init() {
	parseResumeCmd.Flags().StringVarP(&parseResumeInput, "in", "i", "", "Path to resume file (required)")
	parseResumeCmd.Flags().StringVarP(&parseResumeOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	data, err := os.ReadFile(parseResumeInput)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	text, err := extraction.ExtractText(data, parseResumeInput)
	if err != nil {
		return fmt.Errorf("failed to extract text: %w", err)
	}
	text = ingestion.CleanText(text)

	parsed := parsing.ExtractResumeFields(text)
	missing := audit.AuditResume(parsed)

	jsonBytes, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := schemas.ValidateParsedResume(string(jsonBytes)); err != nil {
		return fmt.Errorf("parsed resume does not validate against schema: %w", err)
	}

	if verbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintResume(parsed)
		printer.PrintAudit(missing)
	}

	if parseResumeOutput == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(parseResumeOutput, jsonBytes, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed resume\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", parseResumeOutput)
	return nil
}
