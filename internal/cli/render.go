package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/filter"
	"github.com/krakozavr/Inventory/internal/stats"
	"github.com/krakozavr/Inventory/internal/view"
)

// BrowseResult is one rendered page of a view.
type BrowseResult struct {
	Filter     filter.Spec      `json:"filter"`
	Sort       string           `json:"sort"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
	TotalPages int              `json:"total_pages"`
	Stats      stats.Stats      `json:"stats"`
	Records    []catalog.Record `json:"records"`
	Notice     string           `json:"notice,omitempty"`
}

func newBrowseResult(ctrl *view.Controller, notice string) BrowseResult {
	v := ctrl.View()
	records := v.Records
	if records == nil {
		records = []catalog.Record{}
	}
	return BrowseResult{
		Filter:     v.Filter,
		Sort:       v.Sort.String(),
		Page:       v.Page.Index,
		PageSize:   v.Page.Size,
		TotalPages: v.TotalPages,
		Stats:      ctrl.Stats(),
		Records:    records,
		Notice:     notice,
	}
}

// RenderText prints the page table followed by the counters and the
// page position.
func (r BrowseResult) RenderText(w io.Writer) error {
	if r.Notice != "" {
		fmt.Fprintf(w, "Note: %s\n\n", r.Notice)
	}

	if len(r.Records) == 0 {
		fmt.Fprintln(w, "No records match the current filters.")
	} else if err := renderTable(w, r.Records); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Showing %d of %d records (low stock: %d, out of stock: %d, units: %d)\n",
		r.Stats.FilteredCount, r.Stats.TotalCount, r.Stats.LowStockCount, r.Stats.OutOfStockCount, r.Stats.FilteredUnits)

	position := "No pages"
	if r.TotalPages > 0 {
		position = fmt.Sprintf("Page %d of %d", r.Page, r.TotalPages)
	}
	_, err := fmt.Fprintf(w, "%s, sort: %s, filter: %s\n", position, r.Sort, filter.Describe(filter.Compile(r.Filter)))
	return err
}

func renderTable(w io.Writer, records []catalog.Record) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKU\tNAME\tCATEGORY\tSUBCATEGORY\tGENDER\tAVAIL\tRETAIL\tSTOCK")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			rec.SKU,
			rec.Name,
			rec.Category,
			rec.Subcategory,
			rec.Gender.Label(),
			rec.Available,
			catalog.ColumnRetail.Text(rec),
			rec.StockLevel().Label())
	}
	return tw.Flush()
}

// StatsResult holds the counters for one filter.
type StatsResult struct {
	Filter filter.Spec `json:"filter"`
	Stats  stats.Stats `json:"stats"`
}

func (r StatsResult) RenderText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Total records:\t%d\n", r.Stats.TotalCount)
	fmt.Fprintf(tw, "Matching filter:\t%d\n", r.Stats.FilteredCount)
	fmt.Fprintf(tw, "Matching units:\t%d\n", r.Stats.FilteredUnits)
	fmt.Fprintf(tw, "Low stock:\t%d\n", r.Stats.LowStockCount)
	fmt.Fprintf(tw, "Out of stock:\t%d\n", r.Stats.OutOfStockCount)
	fmt.Fprintf(tw, "Filter:\t%s\n", filter.Describe(filter.Compile(r.Filter)))
	return tw.Flush()
}

// DetailResult is the detail panel of one record.
type DetailResult struct {
	Record      catalog.Record     `json:"record"`
	Stock       catalog.StockLevel `json:"stock"`
	StockLabel  string             `json:"stock_label"`
	GenderLabel string             `json:"gender_label"`
	Margin      *string            `json:"margin,omitempty"` // percent, one decimal place
}

func newDetailResult(d view.Detail) DetailResult {
	res := DetailResult{
		Record:      d.Record,
		Stock:       d.Stock,
		StockLabel:  d.StockLabel,
		GenderLabel: d.GenderLabel,
	}
	if d.HasMargin {
		m := d.Margin.StringFixed(1)
		res.Margin = &m
	}
	return res
}

func (r DetailResult) RenderText(w io.Writer) error {
	rec := r.Record
	margin := "n/a"
	if r.Margin != nil {
		margin = *r.Margin + "%"
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SKU\t%s\n", rec.SKU)
	fmt.Fprintf(tw, "Name\t%s\n", rec.Name)
	fmt.Fprintf(tw, "Category\t%s / %s\n", rec.Category, rec.Subcategory)
	fmt.Fprintf(tw, "Gender\t%s\n", r.GenderLabel)
	fmt.Fprintf(tw, "Manufacturer\t%s\n", rec.Manufacturer)
	fmt.Fprintf(tw, "Stock\t%d available (%s)\n", rec.Available, r.StockLabel)
	fmt.Fprintf(tw, "Counts\ttotal %d, hold %d, sold %d, requested %d\n", rec.Total, rec.Hold, rec.Sold, rec.Requested)
	fmt.Fprintf(tw, "Wholesale\t%s\n", catalog.ColumnWholesale.Text(rec))
	fmt.Fprintf(tw, "Retail\t%s\n", catalog.ColumnRetail.Text(rec))
	fmt.Fprintf(tw, "MSRP\t%s\n", catalog.ColumnMSRP.Text(rec))
	fmt.Fprintf(tw, "Margin\t%s\n", margin)
	fmt.Fprintf(tw, "Sizes\t%s\n", rec.SizesText())
	fmt.Fprintf(tw, "Colors\t%s\n", rec.ColorsText())
	return tw.Flush()
}

// OptionsResult lists the values offered by a filter dropdown.
type OptionsResult struct {
	Field    string   `json:"field"`
	Category string   `json:"category,omitempty"`
	Values   []string `json:"values"`
}

func (r OptionsResult) RenderText(w io.Writer) error {
	if len(r.Values) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}
	for _, v := range r.Values {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
