package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/krakozavr/Inventory/internal/config"
	"github.com/krakozavr/Inventory/internal/view"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	Config   string // optional YAML config file
	Catalog  string // catalog file (YAML or JSON)
	Database string // SQLite snapshot written by import

	// Sessions overrides the controller session generator (for testing).
	// If nil, defaults to view.UUIDv7Generator.
	Sessions view.SessionGenerator

	settings *config.Config
	logger   *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the inventory CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inventory",
		Short: "Inventory - browse a product catalog",
		Long: `Browse an apparel inventory catalog from the terminal.

Records are filtered, sorted and paginated in memory from a catalog file
(--catalog) or a SQLite snapshot (--db).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Config, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Catalog, "catalog", "", "path to catalog file (YAML or JSON)")
	cmd.PersistentFlags().StringVar(&opts.Database, "db", "", "path to SQLite catalog snapshot")

	// Add subcommands
	cmd.AddCommand(NewBrowseCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewOptionsCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewShellCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// settingsFor returns the effective settings: the config file (or the
// defaults) with the catalog and database flags applied over it.
func (o *RootOptions) settingsFor() (config.Config, error) {
	if o.settings != nil {
		return *o.settings, nil
	}

	cfg := config.Default()
	if o.Config != "" {
		loaded, err := config.Load(o.Config)
		if err != nil {
			return config.Config{}, WrapExitError(ExitCommandError, "failed to load config", err)
		}
		cfg = loaded
	}
	if o.Catalog != "" {
		cfg.Catalog = o.Catalog
	}
	if o.Database != "" {
		cfg.Database = o.Database
	}

	o.settings = &cfg
	return cfg, nil
}

// Logger returns the process logger, creating it on first use.
// Diagnostics go to errOut at Info, or Debug with --verbose.
func (o *RootOptions) Logger(errOut io.Writer) *slog.Logger {
	if o.logger != nil {
		return o.logger
	}

	logLevel := slog.LevelInfo
	if o.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(errOut, &slog.HandlerOptions{
		Level: logLevel,
	})
	o.logger = slog.New(handler)
	return o.logger
}

func (o *RootOptions) sessionGenerator() view.SessionGenerator {
	if o.Sessions != nil {
		return o.Sessions
	}
	return view.UUIDv7Generator{}
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   o.Verbose,
	}
}
