package cli

import (
	"github.com/spf13/cobra"
)

// StatsOptions holds flags for the stats command.
type StatsOptions struct {
	*RootOptions
	filterFlags
}

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &StatsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the catalog counters",
		Long: `Print the header counters for the catalog.

Total, low stock and out of stock counts describe the whole catalog. The
matching count and units describe the records passing the filter flags.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}

	opts.filterFlags.bind(cmd)

	return cmd
}

func runStats(opts *StatsOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	patch, err := opts.filterFlags.patch()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidFlag, err)
	}

	ds, err := loadDataset(cmd.Context(), opts.RootOptions, opts.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return reportLoadError(formatter, err)
	}

	ctrl, err := opts.newController(cmd, ds)
	if err != nil {
		return formatter.Fail(ExitCommandError, viewErrorCode(err), err)
	}
	if !patch.IsEmpty() {
		ctrl.SetFilter(patch)
	}

	return formatter.SessionSuccess(ctrl.Session(), StatsResult{
		Filter: ctrl.State().Filter,
		Stats:  ctrl.Stats(),
	})
}
