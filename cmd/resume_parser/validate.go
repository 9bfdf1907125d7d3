package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a ParsedResume JSON file",
	Long:  "Validate a JSON file against the built-in ParsedResume schema, or against --schema when given.",
	RunE:  runValidate,
}

var (
	validateJSONFile   string
	validateSchemaFile string
)

func init() {
	validateCmd.Flags().StringVarP(&validateJSONFile, "json", "j", "", "Path to the JSON file to validate")
	validateCmd.Flags().StringVarP(&validateSchemaFile, "schema", "s", "", "Path to a JSON Schema file (default: built-in ParsedResume schema)")

	_ = validateCmd.MarkFlagRequired("json")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	return validateFile(validateJSONFile, validateSchemaFile, cmd.OutOrStdout())
}

func validateFile(jsonPath, schemaPath string, stdout io.Writer) error {
	var err error
	if schemaPath == "" {
		err = schemas.ValidateResumeFile(jsonPath)
	} else {
		err = schemas.ValidateJSON(schemaPath, jsonPath)
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(stdout, "Validation passed: %s\n", jsonPath)
	return nil
}
