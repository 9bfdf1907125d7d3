package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse one resume into structured JSON",
	Long:  "Parse a PDF, DOCX, TXT or Markdown resume into a ParsedResume JSON record. Without --out the JSON is written to stdout.",
	RunE:  runParse,
}

type parseOptions struct {
	inputFile  string
	outputFile string
	configFile string
	verbose    bool
	validate   bool
	profile    bool
}

var parseOpts parseOptions

func init() {
	parseCmd.Flags().StringVarP(&parseOpts.inputFile, "in", "i", "", "Path to the resume file (.pdf, .docx, .txt, .md)")
	parseCmd.Flags().StringVarP(&parseOpts.outputFile, "out", "o", "", "Path to output JSON file (default stdout)")
	parseCmd.Flags().StringVarP(&parseOpts.configFile, "config", "c", "", "Path to JSON or YAML config (overrides RESUME_PARSER_CONFIG)")
	parseCmd.Flags().BoolVarP(&parseOpts.verbose, "verbose", "v", false, "Debug logging and a human-readable summary")
	parseCmd.Flags().BoolVar(&parseOpts.validate, "validate", false, "Validate the output against the ParsedResume schema")
	parseCmd.Flags().BoolVar(&parseOpts.profile, "profile", false, "Write the flat candidate profile instead of the full record")

	_ = parseCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	return parseResume(cmd.Context(), parseOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// parseResume runs one file through ingestion, the parser and, optionally,
// schema validation. Status text goes to stdout only when the JSON goes to a file.
func parseResume(ctx context.Context, opts parseOptions, stdout, stderr io.Writer) error {
	if opts.inputFile == "" {
		return fmt.Errorf("--in is required")
	}

	parser, logger, closeLog, err := newParser(opts.configFile, opts.verbose, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	text, metadata, err := ingestion.IngestFromFile(opts.inputFile)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}
	logger.Debug("ingested resume",
		zap.String("source", metadata.Source),
		zap.String("format", string(metadata.Format)),
		zap.String("hash", metadata.Hash),
		zap.Int("characters", metadata.Characters),
	)

	record, err := parser.Parse(contextOrBackground(ctx), text)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	if opts.validate {
		if err := record.Validate(); err != nil {
			return fmt.Errorf("parsed record failed field validation: %w", err)
		}
		if err := schemas.ValidateResume(record); err != nil {
			var validationErr *schemas.ValidationError
			if errors.As(err, &validationErr) {
				return fmt.Errorf("parsed record does not validate against schema: %w", err)
			}
			_, _ = fmt.Fprintf(stderr, "Warning: Could not validate output against schema: %v\n", err)
		}
	}

	var output any = record
	if opts.profile {
		output = record.Profile()
	}

	info := stdout
	if opts.outputFile == "" {
		jsonBytes, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		if _, err := fmt.Fprintln(stdout, string(jsonBytes)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		info = stderr
	} else if err := writeRecord(opts.outputFile, output); err != nil {
		return err
	}

	if parser.Config().Verbose {
		observability.NewPrinter(info).PrintParsedResume(record)
	}

	if opts.outputFile != "" {
		_, _ = fmt.Fprintf(info, "Successfully parsed resume (overall confidence %d/100)\n", record.OverallConfidence)
		_, _ = fmt.Fprintf(info, "Output: %s\n", opts.outputFile)
	}
	return nil
}
