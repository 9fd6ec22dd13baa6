package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/dataset"
	"github.com/krakozavr/Inventory/internal/filter"
	"github.com/krakozavr/Inventory/internal/ordering"
	"github.com/krakozavr/Inventory/internal/view"
)

// filterFlags are the filter constraints shared by browse and stats.
type filterFlags struct {
	Search      string
	Category    string
	Subcategory string
	Gender      string
	Stock       string
}

func (f *filterFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.Search, "search", "", "case-insensitive text search over name, sku, category, subcategory, manufacturer and colors")
	cmd.Flags().StringVar(&f.Category, "category", "", "exact category")
	cmd.Flags().StringVar(&f.Subcategory, "subcategory", "", "exact subcategory")
	cmd.Flags().StringVar(&f.Gender, "gender", "", "gender segment (M|W|U)")
	cmd.Flags().StringVar(&f.Stock, "stock", "", "stock bucket (in-stock|low|out)")
}

// patch converts the flags to a filter patch. Gender and stock are checked
// here so a typo is reported instead of silently matching nothing.
func (f *filterFlags) patch() (filter.Patch, error) {
	var p filter.Patch
	if f.Search != "" {
		p = p.WithSearch(f.Search)
	}
	if f.Category != "" {
		p = p.WithCategory(f.Category)
	}
	if f.Subcategory != "" {
		p = p.WithSubcategory(f.Subcategory)
	}
	if f.Gender != "" {
		g, err := parseGender(f.Gender)
		if err != nil {
			return filter.Patch{}, err
		}
		p = p.WithGender(g)
	}
	if f.Stock != "" {
		l, err := catalog.ParseStockLevel(f.Stock)
		if err != nil {
			return filter.Patch{}, err
		}
		p = p.WithStock(l)
	}
	return p, nil
}

func parseGender(s string) (catalog.Gender, error) {
	g := catalog.Gender(strings.ToUpper(s))
	if !g.Valid() {
		return "", fmt.Errorf("unknown gender %q: must be one of M, W, U", s)
	}
	return g, nil
}

// BrowseOptions holds flags for the browse command.
type BrowseOptions struct {
	*RootOptions
	filterFlags

	Sort     string
	Desc     bool
	Page     int
	PageSize int
}

// NewBrowseCommand creates the browse command.
func NewBrowseCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BrowseOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Show one page of the filtered, sorted catalog",
		Long: `Show one page of the catalog after filtering and sorting.

Filters combine with AND. Sorting applies to the filtered records, then the
requested page is cut. A page outside the available range is reported and
the first page is shown instead.

Examples:
  inventory browse --catalog catalog.yaml
  inventory browse --db inventory.db --category Accessories --stock low
  inventory browse --catalog catalog.yaml --sort retail --desc --page 2 --page-size 20`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(opts, cmd)
		},
	}

	opts.filterFlags.bind(cmd)
	cmd.Flags().StringVar(&opts.Sort, "sort", "", "sort column (default from config, sku)")
	cmd.Flags().BoolVar(&opts.Desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&opts.Page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", 0, "records per page (default from config, 50)")

	return cmd
}

func runBrowse(opts *BrowseOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	patch, err := opts.filterFlags.patch()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidFlag, err)
	}
	sortSpec, err := opts.sortSpec()
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeInvalidFlag, err)
	}

	ds, err := loadDataset(cmd.Context(), opts.RootOptions, opts.Logger(cmd.ErrOrStderr()))
	if err != nil {
		return reportLoadError(formatter, err)
	}

	viewOpts := []view.Option{view.WithSort(sortSpec)}
	if cmd.Flags().Changed("page-size") {
		viewOpts = append(viewOpts, view.WithPageSize(opts.PageSize))
	}
	ctrl, err := opts.newController(cmd, ds, viewOpts...)
	if err != nil {
		return formatter.Fail(ExitCommandError, viewErrorCode(err), err)
	}
	if !patch.IsEmpty() {
		ctrl.SetFilter(patch)
	}

	var notice string
	if opts.Page != ctrl.State().Page.Index {
		if err := ctrl.SetPage(opts.Page); err != nil {
			var verr *view.Error
			if !errors.As(err, &verr) {
				return formatter.Fail(ExitFailure, ErrCodeGeneric, err)
			}
			notice = fmt.Sprintf("%s; showing page %d", verr.Message, ctrl.State().Page.Index)
		}
	}

	return formatter.SessionSuccess(ctrl.Session(), newBrowseResult(ctrl, notice))
}

// sortSpec resolves --sort and --desc over the configured sort.
func (o *BrowseOptions) sortSpec() (ordering.Spec, error) {
	cfg, err := o.settingsFor()
	if err != nil {
		return ordering.Spec{}, err
	}
	spec, err := cfg.SortSpec()
	if err != nil {
		return ordering.Spec{}, err
	}

	if o.Sort != "" {
		col, err := catalog.ParseColumn(o.Sort)
		if err != nil {
			return ordering.Spec{}, err
		}
		spec = ordering.Spec{Column: col, Direction: ordering.Ascending}
	}
	if o.Desc {
		spec.Direction = ordering.Descending
	}
	return spec, nil
}

// newController creates a controller with the configured page size and
// sort. extra options are applied last and win.
func (o *RootOptions) newController(cmd *cobra.Command, ds *dataset.Dataset, extra ...view.Option) (*view.Controller, error) {
	cfg, err := o.settingsFor()
	if err != nil {
		return nil, err
	}
	sortSpec, err := cfg.SortSpec()
	if err != nil {
		return nil, err
	}

	viewOpts := []view.Option{
		view.WithLogger(o.Logger(cmd.ErrOrStderr())),
		view.WithSessionGenerator(o.sessionGenerator()),
		view.WithPageSize(cfg.PageSize),
		view.WithSort(sortSpec),
	}
	return view.New(ds, append(viewOpts, extra...)...)
}
