package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krakozavr/Inventory/internal/dataset"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid    bool            `json:"valid"`
	Records  int             `json:"records"`
	Errors   int             `json:"errors"`
	Warnings int             `json:"warnings"`
	Issues   []dataset.Issue `json:"issues,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <catalog>",
		Short: "Check a catalog against the record schema",
		Long: `Check every record of a catalog file against the record schema.

Errors are negative counters, unknown gender tags, available counts that
differ from total - sold - hold, missing required fields and duplicate
SKUs. Retail below wholesale is reported as a warning.

Exit codes:
  0 - No errors (warnings allowed)
  1 - One or more records have errors
  2 - Command error (file not found, unreadable catalog)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return outputValidateError(formatter, ErrCodeNotFound, fmt.Sprintf("catalog not found: %s", path))
	}

	records, err := dataset.ReadFile(path)
	if err != nil {
		return outputValidateError(formatter, ErrCodeLoadFailed, err.Error())
	}
	formatter.VerboseLog("Read %d record(s) from %s", len(records), path)

	validator, err := dataset.NewValidator()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build validator", err)
	}
	issues := validator.Validate(records)

	result := ValidationResult{
		Valid:   !dataset.HasErrors(issues),
		Records: len(records),
		Issues:  issues,
	}
	for _, issue := range issues {
		if issue.Severity == dataset.SeverityError {
			result.Errors++
		} else {
			result.Warnings++
		}
	}

	if !result.Valid {
		return outputValidationErrors(formatter, result)
	}
	return outputValidateSuccess(formatter, result)
}

// outputValidateSuccess outputs successful validation results.
func outputValidateSuccess(formatter *OutputFormatter, result ValidationResult) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	for _, issue := range result.Issues {
		fmt.Fprintf(formatter.Writer, "  %s\n", issue)
	}
	fmt.Fprintf(formatter.Writer, "✓ Catalog valid: %d record(s), %d warning(s)\n", result.Records, result.Warnings)
	return nil
}

// outputValidateError outputs a single command error.
func outputValidateError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	// Unreadable input is a command-level error (exit code 2)
	return NewExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message))
}

// outputValidationErrors outputs the issues of an invalid catalog.
func outputValidationErrors(formatter *OutputFormatter, result ValidationResult) error {
	message := fmt.Sprintf("validation failed with %d error(s)", result.Errors)

	if formatter.Format == "json" {
		response := CLIResponse{
			Status: "error",
			Data:   result,
			Error: &CLIError{
				Code:    ErrCodeValidationFailed,
				Message: message,
			},
		}

		encoder := json.NewEncoder(formatter.Writer)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(response); err != nil {
			return err
		}

		// Validation failures = exit code 1
		return NewExitError(ExitFailure, message)
	}

	// Text format
	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	for _, issue := range result.Issues {
		fmt.Fprintf(formatter.Writer, "  %s\n", issue)
	}
	fmt.Fprintln(formatter.Writer)
	fmt.Fprintf(formatter.Writer, "%d error(s), %d warning(s) in %d record(s)\n", result.Errors, result.Warnings, result.Records)

	return NewExitError(ExitFailure, message)
}
