package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/observability"
)

const defaultBatchWorkers = 4

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse every resume in a directory",
	Long: "Parse every supported resume in --dir concurrently and write one JSON record per file to --out-dir. " +
		"Files that fail are reported and skipped; the command exits non-zero if any file failed.",
	RunE: runBatch,
}

type batchOptions struct {
	dir        string
	outDir     string
	configFile string
	workers    int
	verbose    bool
}

var batchOpts batchOptions

func init() {
	batchCmd.Flags().StringVarP(&batchOpts.dir, "dir", "d", "", "Directory of resumes")
	batchCmd.Flags().StringVarP(&batchOpts.outDir, "out-dir", "o", "", "Directory for JSON output")
	batchCmd.Flags().StringVarP(&batchOpts.configFile, "config", "c", "", "Path to JSON or YAML config (overrides RESUME_PARSER_CONFIG)")
	batchCmd.Flags().IntVarP(&batchOpts.workers, "workers", "w", defaultBatchWorkers, "Files parsed concurrently")
	batchCmd.Flags().BoolVarP(&batchOpts.verbose, "verbose", "v", false, "Debug logging")

	_ = batchCmd.MarkFlagRequired("dir")
	_ = batchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, _ []string) error {
	return parseDirectory(cmd.Context(), batchOpts, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// listResumes returns the supported files directly inside dir, sorted by name
func listResumes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !ingestion.IsSupported(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}
	sort.Strings(files)
	return files, nil
}

func parseDirectory(ctx context.Context, opts batchOptions, stdout, stderr io.Writer) error {
	if opts.dir == "" || opts.outDir == "" {
		return fmt.Errorf("--dir and --out-dir are required")
	}
	if opts.workers < 1 {
		return fmt.Errorf("--workers must be at least 1, got %d", opts.workers)
	}

	files, err := listResumes(opts.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no supported resumes (.pdf, .docx, .txt, .md) in %s", opts.dir)
	}

	parser, logger, closeLog, err := newParser(opts.configFile, opts.verbose, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	ctx = contextOrBackground(ctx)
	results := make([]observability.BatchResult, len(files))

	// Failures are recorded per file so one bad resume never stops the rest
	var g errgroup.Group
	g.SetLimit(opts.workers)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			results[i].File = name

			text, _, err := ingestion.IngestFromFile(filepath.Join(opts.dir, name))
			if err != nil {
				results[i].Err = err
				logger.Warn("skipped resume", zap.String("file", name), zap.Error(err))
				return nil
			}

			record, err := parser.Parse(ctx, text)
			if err != nil {
				results[i].Err = err
				logger.Warn("failed to parse resume", zap.String("file", name), zap.Error(err))
				return nil
			}

			if err := writeRecord(filepath.Join(opts.outDir, name+".json"), record); err != nil {
				results[i].Err = err
				logger.Warn("failed to write record", zap.String("file", name), zap.Error(err))
				return nil
			}
			results[i].Confidence = record.OverallConfidence
			return nil
		})
	}
	_ = g.Wait()

	observability.NewPrinter(stdout).PrintBatchSummary(results)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d resumes failed", failed, len(results))
	}
	return nil
}
