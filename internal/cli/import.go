package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/krakozavr/Inventory/internal/dataset"
	"github.com/krakozavr/Inventory/internal/store"
)

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
	Force bool // import even when validation reports errors
}

// ImportResult describes a written snapshot.
type ImportResult struct {
	Database string `json:"database"`
	Source   string `json:"source"`
	Records  int    `json:"records"`
	Warnings int    `json:"warnings"`
}

func (r ImportResult) RenderText(w io.Writer) error {
	_, err := fmt.Fprintf(w, "✓ Imported %d record(s) from %s into %s (%d warning(s))\n",
		r.Records, r.Source, r.Database, r.Warnings)
	return err
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <catalog>",
		Short: "Write a catalog into a SQLite snapshot",
		Long: `Validate a catalog file and write it into a SQLite snapshot.

The snapshot replaces any catalog already stored in the database and keeps
the record order of the file. Later commands read it with --db.

Example:
  inventory import catalog.yaml --db inventory.db`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.Force, "force", false, "import even if validation reports errors")

	return cmd
}

func runImport(opts *ImportOptions, path string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)
	logger := opts.Logger(cmd.ErrOrStderr())

	cfg, err := opts.settingsFor()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, err)
	}
	if cfg.Database == "" {
		return formatter.Fail(ExitCommandError, ErrCodeNoCatalog, NewExitError(ExitCommandError, "no database: use --db or a config file"))
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return formatter.Fail(ExitCommandError, ErrCodeNotFound, fmt.Errorf("catalog not found: %s", path))
	}
	records, err := dataset.ReadFile(path)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeLoadFailed, err)
	}

	validator, err := dataset.NewValidator()
	if err != nil {
		return WrapExitError(ExitFailure, "failed to build validator", err)
	}
	issues := validator.Validate(records)
	warnings := 0
	for _, issue := range issues {
		if issue.Severity == dataset.SeverityWarning {
			warnings++
			continue
		}
		formatter.VerboseLog("%s", issue)
	}
	if dataset.HasErrors(issues) && !opts.Force {
		return formatter.Fail(ExitFailure, ErrCodeValidationFailed,
			fmt.Errorf("catalog has %d issue(s) with errors; run validate for details or pass --force", len(issues)-warnings))
	}

	st, err := store.Open(cfg.Database)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStoreFailed, fmt.Errorf("failed to open database: %w", err))
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			logger.Error("error closing database", "error", closeErr)
		}
	}()

	if err := st.SaveCatalog(cmd.Context(), records, path); err != nil {
		return formatter.Fail(ExitFailure, ErrCodeStoreFailed, err)
	}
	logger.Info("catalog imported", "source", path, "database", cfg.Database, "records", len(records))

	return formatter.Success(ImportResult{
		Database: cfg.Database,
		Source:   path,
		Records:  len(records),
		Warnings: warnings,
	})
}
