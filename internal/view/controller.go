package view

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/dataset"
	"github.com/krakozavr/Inventory/internal/filter"
	"github.com/krakozavr/Inventory/internal/ordering"
	"github.com/krakozavr/Inventory/internal/paging"
	"github.com/krakozavr/Inventory/internal/stats"
)

// State is the interactive state of a session.
// Selection is the selected SKU, or "" for none.
type State struct {
	Filter    filter.Spec
	Sort      ordering.Spec
	Page      paging.Spec
	Selection string
}

// DerivedView is the materialized page together with the specs that
// produced it.
type DerivedView struct {
	Records       []catalog.Record
	FilteredCount int
	TotalPages    int
	Filter        filter.Spec
	Sort          ordering.Spec
	Page          paging.Spec
}

// Controller drives one browsing session over a Dataset.
type Controller struct {
	ds      *dataset.Dataset
	logger  *slog.Logger
	session string

	state State
	view  DerivedView
	stats stats.Stats
}

// Option configures a Controller.
type Option func(*controllerConfig)

type controllerConfig struct {
	logger   *slog.Logger
	sessions SessionGenerator
	pageSize int
	sort     ordering.Spec
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(l *slog.Logger) Option {
	return func(c *controllerConfig) { c.logger = l }
}

// WithSessionGenerator sets the source of the session ID.
// The default is UUIDv7Generator.
func WithSessionGenerator(g SessionGenerator) Option {
	return func(c *controllerConfig) { c.sessions = g }
}

// WithPageSize sets the initial page size. The default is paging.DefaultSize.
func WithPageSize(n int) Option {
	return func(c *controllerConfig) { c.pageSize = n }
}

// WithSort sets the initial sort. The default is ordering.Default().
func WithSort(s ordering.Spec) Option {
	return func(c *controllerConfig) { c.sort = s }
}

// New creates a Controller over ds with no filter, the first page and no
// selection, and computes the initial view.
func New(ds *dataset.Dataset, opts ...Option) (*Controller, error) {
	if ds == nil {
		return nil, fmt.Errorf("dataset is required")
	}
	cfg := controllerConfig{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessions: UUIDv7Generator{},
		pageSize: paging.DefaultSize,
		sort:     ordering.Default(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	first := paging.Spec{Index: 1, Size: cfg.pageSize}
	if err := first.Validate(); err != nil {
		return nil, newPageSizeError(cfg.pageSize, err)
	}
	if !cfg.sort.Column.Valid() {
		return nil, fmt.Errorf("invalid sort column %s", cfg.sort.Column)
	}

	c := &Controller{
		ds:      ds,
		logger:  cfg.logger,
		session: cfg.sessions.Generate(),
		state: State{
			Sort: cfg.sort,
			Page: first,
		},
	}
	c.recompute()
	return c, nil
}

// Session returns the session ID attached to this controller's logs.
func (c *Controller) Session() string {
	return c.session
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// View returns the current derived view. Its Records slice must be treated
// as read-only.
func (c *Controller) View() DerivedView {
	return c.view
}

// Stats returns the counters for the current filter.
func (c *Controller) Stats() stats.Stats {
	return c.stats
}

// SetFilter merges p into the filter, returns to page 1 and recomputes.
func (c *Controller) SetFilter(p filter.Patch) {
	c.state.Filter = c.state.Filter.Merge(p)
	c.state.Page.Index = 1
	c.recompute()
}

// ResetFilters clears every filter constraint, returns to page 1 and
// recomputes. Sort and page size are kept.
func (c *Controller) ResetFilters() {
	c.state.Filter = filter.Spec{}
	c.state.Page.Index = 1
	c.recompute()
}

// SetSort activates col: the active column flips direction, any other
// column becomes the ascending sort. The page index is kept.
func (c *Controller) SetSort(col catalog.Column) {
	c.state.Sort = c.state.Sort.Toggle(col)
	c.recompute()
}

// SetPage moves to page index. An index outside [1, totalPages] is
// rejected with ErrCodePageOutOfRange and the current page is kept.
func (c *Controller) SetPage(index int) error {
	next := paging.Spec{Index: index, Size: c.state.Page.Size}
	if verr := next.Validate(); verr != nil || !paging.InRange(index, c.view.TotalPages) {
		err := newPageError(index, c.state.Page.Index, c.view.TotalPages, verr)
		c.logger.Debug("page change rejected",
			"session", c.session,
			"requested", index,
			"current", c.state.Page.Index,
			"pages", c.view.TotalPages)
		return err
	}
	c.state.Page = next
	c.recompute()
	return nil
}

// NextPage moves forward one page, with the same bounds as SetPage.
func (c *Controller) NextPage() error {
	return c.SetPage(c.state.Page.Index + 1)
}

// PrevPage moves back one page, with the same bounds as SetPage.
func (c *Controller) PrevPage() error {
	return c.SetPage(c.state.Page.Index - 1)
}

// SetPageSize changes the page size and returns to page 1. A size below 1
// is rejected with ErrCodeInvalidPageSize.
func (c *Controller) SetPageSize(n int) error {
	next := paging.Spec{Index: 1, Size: n}
	if err := next.Validate(); err != nil {
		c.logger.Debug("page size rejected", "session", c.session, "size", n)
		return newPageSizeError(n, err)
	}
	c.state.Page = next
	c.recompute()
	return nil
}

// SelectRecord selects the record with the given SKU. The SKU must exist
// in the dataset but need not be on the current page. The view is not
// recomputed.
func (c *Controller) SelectRecord(sku string) error {
	if _, ok := c.ds.Lookup(sku); !ok {
		return newUnknownRecordError(sku)
	}
	c.state.Selection = sku
	return nil
}

// ClearSelection removes the selection.
func (c *Controller) ClearSelection() {
	c.state.Selection = ""
}

// SubcategoryOptions returns the subcategories available for the current
// category filter; none when no category is selected.
func (c *Controller) SubcategoryOptions() []string {
	return c.ds.Subcategories(c.state.Filter.Category)
}

func (c *Controller) recompute() {
	all := c.ds.Records()
	filtered := filter.Apply(all, c.state.Filter)
	sorted := ordering.Sort(filtered, c.state.Sort)
	page, totalPages := paging.Paginate(sorted, c.state.Page)

	c.view = DerivedView{
		Records:       page,
		FilteredCount: len(filtered),
		TotalPages:    totalPages,
		Filter:        c.state.Filter,
		Sort:          c.state.Sort,
		Page:          c.state.Page,
	}
	c.stats = stats.Aggregate(all, filtered)

	c.logger.Debug("view recomputed",
		"session", c.session,
		"filter", filter.Describe(filter.Compile(c.state.Filter)),
		"sort", c.state.Sort.String(),
		"page", c.state.Page.Index,
		"filtered", len(filtered),
		"pages", totalPages)
}
