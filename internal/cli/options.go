package cli

import (
	"github.com/spf13/cobra"
)

// OptionsOptions holds flags for the options command.
type OptionsOptions struct {
	*RootOptions
	Category      string
	Manufacturers bool
}

// NewOptionsCommand creates the options command.
func NewOptionsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &OptionsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List filter choices",
		Long: `List the distinct values offered by the filter dropdowns.

Without flags, lists the categories. With --category, lists the
subcategories of that category. Values are sorted.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Category, "category", "", "list the subcategories of this category")
	cmd.Flags().BoolVar(&opts.Manufacturers, "manufacturers", false, "list manufacturers instead")
	cmd.MarkFlagsMutuallyExclusive("category", "manufacturers")

	return cmd
}

func runOptions(opts *OptionsOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	ds, err := loadDataset(cmd.Context(), opts.RootOptions, opts.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return reportLoadError(formatter, err)
	}

	var result OptionsResult
	switch {
	case opts.Manufacturers:
		result = OptionsResult{Field: "manufacturer", Values: ds.Manufacturers()}
	case opts.Category != "":
		result = OptionsResult{Field: "subcategory", Category: opts.Category, Values: ds.Subcategories(opts.Category)}
	default:
		result = OptionsResult{Field: "category", Values: ds.Categories()}
	}
	if result.Values == nil {
		result.Values = []string{}
	}

	return formatter.Success(result)
}
