package cli

import (
	"github.com/spf13/cobra"
)

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <sku>",
		Short: "Show the detail panel of one record",
		Long: `Show every field of one record together with its stock status
and retail margin over wholesale.

Exit codes:
  0 - Record shown
  1 - No record with that SKU
  2 - Command error (no catalog, unreadable catalog, etc.)`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runShow(opts *RootOptions, sku string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ds, err := loadDataset(cmd.Context(), opts, opts.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return reportLoadError(formatter, err)
	}

	ctrl, err := opts.newController(cmd, ds)
	if err != nil {
		return formatter.Fail(ExitCommandError, viewErrorCode(err), err)
	}
	if err := ctrl.SelectRecord(sku); err != nil {
		return formatter.Fail(ExitFailure, viewErrorCode(err), err)
	}

	detail, _ := ctrl.Detail()
	return formatter.SessionSuccess(ctrl.Session(), newDetailResult(detail))
}
