package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the ParsedResume JSON Schema",
	Long:  "Print the built-in ParsedResume JSON Schema that parse --validate and validate check against. With --out the schema is written to a file.",
	RunE:  runSchema,
}

var schemaOutFile string

func init() {
	schemaCmd.Flags().StringVarP(&schemaOutFile, "out", "o", "", "Path to write the schema to (default stdout)")

	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	return writeSchema(schemaOutFile, cmd.OutOrStdout())
}

func writeSchema(path string, stdout io.Writer) error {
	schema := schemas.ResumeSchema()
	if path == "" {
		if _, err := stdout.Write(schema); err != nil {
			return fmt.Errorf("failed to write schema: %w", err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, schema, 0644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	_, _ = fmt.Fprintf(stdout, "Schema written to %s\n", path)
	return nil
}
