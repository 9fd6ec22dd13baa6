package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krakozavr/Inventory/internal/harness"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Update bool   // regenerate golden files
	Filter string // scenario filter (glob pattern)
}

// Golden outcomes reported per scenario.
const (
	goldenUpdated  = "updated"
	goldenMatched  = "matched"
	goldenMismatch = "mismatch"
)

// ScenarioResult holds the result of a single scenario execution.
// The counters are the view's stats after the last flow step.
type ScenarioResult struct {
	Name     string   `json:"name"`
	Pass     bool     `json:"pass"`
	Steps    int      `json:"steps"`
	Filtered int      `json:"filtered"`
	LowStock int      `json:"low_stock"`
	Golden   string   `json:"golden,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run browsing scenarios",
		Long: `Run browsing scenarios using the harness framework.

Each scenario loads a catalog, drives a view session through its flow
steps and checks the expectations and final assertions. When a golden
file exists next to the scenario (golden/<name>.golden) the trace must
match it byte for byte.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, etc.)

Examples:
  inventory test ./scenarios
  inventory test ./scenarios --filter "stock-*"
  inventory test ./scenarios --update
  inventory test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Update, "update", false, "regenerate golden files")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}

	scenarioFiles, err := findScenarioFiles(scenariosDir, opts.Filter)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeScanError, fmt.Errorf("failed to find scenarios: %w", err))
	}

	result := TestResult{
		Scenarios: make([]ScenarioResult, 0, len(scenarioFiles)),
		Total:     len(scenarioFiles),
	}
	if result.Total == 0 && opts.Format != "json" {
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios found.")
		return nil
	}

	for _, scenarioFile := range scenarioFiles {
		sr := runScenario(scenarioFile, opts, cmd)
		if opts.Format != "json" {
			printScenarioResult(cmd.OutOrStdout(), sr)
		}
		result.Scenarios = append(result.Scenarios, sr)
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}
	}

	return reportTestResult(formatter, result)
}

// findScenarioFiles returns the .yaml and .yml files under dir whose base
// name matches the glob filter (all of them when filter is empty).
func findScenarioFiles(dir, filter string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		if filter != "" {
			matched, err := filepath.Match(filter, strings.TrimSuffix(d.Name(), ext))
			if err != nil {
				return fmt.Errorf("invalid filter pattern: %w", err)
			}
			if !matched {
				return nil
			}
		}
		files = append(files, path)
		return nil
	})
	return files, err
}

// runScenario loads and runs one scenario file, then updates or checks its
// golden trace.
func runScenario(scenarioFile string, opts *TestOptions, cmd *cobra.Command) ScenarioResult {
	scenario, err := harness.LoadScenario(scenarioFile)
	if err != nil {
		return failedScenario(filepath.Base(scenarioFile), "Load error: %v", err)
	}

	result, err := harness.RunWithLogger(scenario, opts.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return failedScenario(scenario.Name, "Execution error: %v", err)
	}

	sr := ScenarioResult{
		Name:     scenario.Name,
		Pass:     result.Pass,
		Steps:    len(result.Trace),
		Filtered: result.Stats.FilteredCount,
		LowStock: result.Stats.LowStockCount,
		Errors:   result.Errors,
	}

	snap := harness.NewTraceSnapshot(scenario, result)
	goldenPath := harness.GoldenPath(scenarioFile)

	if opts.Update {
		if err := harness.WriteGolden(goldenPath, snap); err != nil {
			sr.Pass = false
			sr.Errors = append(sr.Errors, fmt.Sprintf("Golden update error: %v", err))
			return sr
		}
		sr.Golden = goldenUpdated
		return sr
	}

	match, err := harness.MatchGolden(goldenPath, snap)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Assertions only.
	case err != nil:
		sr.Pass = false
		sr.Errors = append(sr.Errors, fmt.Sprintf("Golden comparison error: %v", err))
	case !match:
		sr.Pass = false
		sr.Golden = goldenMismatch
		sr.Errors = append(sr.Errors, "Golden file mismatch (run with --update to regenerate)")
	default:
		sr.Golden = goldenMatched
	}
	return sr
}

func failedScenario(name, format string, err error) ScenarioResult {
	return ScenarioResult{Name: name, Errors: []string{fmt.Sprintf(format, err)}}
}

// printScenarioResult writes the ✓/✗ line for a scenario and its errors.
func printScenarioResult(w io.Writer, sr ScenarioResult) {
	mark := "✓"
	if !sr.Pass {
		mark = "✗"
	}
	line := mark + " " + sr.Name
	if sr.Golden == goldenUpdated {
		line += " (golden updated)"
	}
	if sr.Steps > 0 {
		line += fmt.Sprintf(" [%d step(s), filtered %d, low stock %d]", sr.Steps, sr.Filtered, sr.LowStock)
	}
	fmt.Fprintln(w, line)
	for _, e := range sr.Errors {
		fmt.Fprintf(w, "  %s\n", e)
	}
}

// reportTestResult writes the summary and returns exit code 1 when any
// scenario failed.
func reportTestResult(f *OutputFormatter, result TestResult) error {
	var failure error
	if result.Failed > 0 {
		failure = NewExitError(ExitFailure, fmt.Sprintf("%d scenario(s) failed", result.Failed))
	}

	if f.Format == "json" {
		response := CLIResponse{Status: "ok", Data: result}
		if failure != nil {
			response.Status = "error"
			response.Error = &CLIError{Code: "E_TEST_FAILED", Message: failure.Error()}
		}
		enc := json.NewEncoder(f.Writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(response); err != nil {
			return err
		}
		return failure
	}

	fmt.Fprintln(f.Writer)
	fmt.Fprintf(f.Writer, "Test Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	if failure == nil {
		fmt.Fprintln(f.Writer, "✓ All scenarios passed")
	}
	return failure
}
