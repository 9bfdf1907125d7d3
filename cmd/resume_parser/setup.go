package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/pipeline"
)

// newParser resolves configuration, builds the logger and the parser. The
// returned close function flushes the logger.
func newParser(configPath string, verbose bool, logOut io.Writer) (*pipeline.Parser, *zap.Logger, func() error, error) {
	cfg, err := config.Resolve(configPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Verbose = true
	}

	logger, closeLog := observability.NewLogger(observability.LoggerOptions{
		Verbose: cfg.Verbose,
		LogFile: cfg.LogFile,
		Console: logOut,
	})

	parser, err := pipeline.NewParser(cfg, pipeline.WithLogger(logger))
	if err != nil {
		_ = closeLog()
		return nil, nil, nil, fmt.Errorf("failed to create parser: %w", err)
	}
	return parser, logger, closeLog, nil
}

func contextOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

// writeRecord writes v as indented JSON to path, creating parent directories
// as needed
func writeRecord(path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, append(jsonBytes, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
