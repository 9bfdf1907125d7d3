// Package main provides the resume_parser command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_parser",
	Short: "Extract structured fields from resumes",
	Long: "resume_parser reads PDF, DOCX or plain-text resumes and extracts the candidate's name, contact details, " +
		"education, experience, projects and skills as JSON, each field with a 0-100 confidence score.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
