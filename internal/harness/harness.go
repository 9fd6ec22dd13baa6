package harness

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/krakozavr/Inventory/internal/catalog"
	"github.com/krakozavr/Inventory/internal/dataset"
	"github.com/krakozavr/Inventory/internal/testutil"
	"github.com/krakozavr/Inventory/internal/view"
)

// Harness drives one controller through a scenario.
type Harness struct {
	ctrl   *view.Controller
	logger *slog.Logger
}

// Run executes a test scenario and returns the result.
//
// Execution flow:
// 1. Build the dataset from the scenario's catalog source
// 2. Create a controller with a fixed session ID
// 3. Execute flow steps with expect validation
// 4. Evaluate assertions against the final view
//
// An error is returned only when the scenario cannot run at all; failed
// expectations are reported in the Result.
func Run(scenario *Scenario) (*Result, error) {
	return RunWithLogger(scenario, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// RunWithLogger is Run with the controller's logs sent to logger.
func RunWithLogger(scenario *Scenario, logger *slog.Logger) (*Result, error) {
	ds, err := buildDataset(scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to build dataset: %w", err)
	}

	opts := []view.Option{
		view.WithLogger(logger),
		view.WithSessionGenerator(testutil.NewFixedSessionGenerator(scenario.Session)),
	}
	if scenario.PageSize > 0 {
		opts = append(opts, view.WithPageSize(scenario.PageSize))
	}
	ctrl, err := view.New(ds, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create controller: %w", err)
	}

	h := &Harness{ctrl: ctrl, logger: logger}

	result := NewResult()
	for i, step := range scenario.Flow {
		if err := h.executeStep(i, step, result); err != nil {
			return nil, fmt.Errorf("flow step %d: %w", i, err)
		}
	}
	result.Stats = ctrl.Stats()

	for _, msg := range EvaluateAssertions(ctrl, scenario.Assertions) {
		result.AddError(msg)
	}

	return result, nil
}

// buildDataset loads the scenario's catalog from whichever source it names.
// A scenario with no source runs over an empty dataset.
func buildDataset(s *Scenario) (*dataset.Dataset, error) {
	var (
		records []catalog.Record
		err     error
	)
	switch {
	case s.Catalog != "":
		records, err = dataset.ReadFile(s.Catalog)
	case s.Records.Kind != 0:
		records, err = dataset.DecodeNode(&s.Records)
	case s.Generate > 0:
		records = testutil.Catalog(s.Generate)
	}
	if err != nil {
		return nil, err
	}
	return dataset.New(records)
}

// executeStep applies one step, records it in the trace and checks its
// expect clause.
func (h *Harness) executeStep(index int, step FlowStep, result *Result) error {
	action, args, err := h.apply(step)

	var rejected string
	if err != nil {
		var ve *view.Error
		if !errors.As(err, &ve) {
			return err
		}
		rejected = string(ve.Code)
	}

	v := h.ctrl.View()
	st := h.ctrl.State()
	event := TraceEvent{
		Action:     action,
		Args:       args,
		Rejected:   rejected,
		Page:       st.Page.Index,
		TotalPages: v.TotalPages,
		Filtered:   v.FilteredCount,
		SKUs:       testutil.SKUs(v.Records),
		Selected:   st.Selection,
	}
	result.AddTrace(event)

	h.logger.Info("flow step completed",
		"step", index,
		"action", action,
		"rejected", rejected,
		"filtered", v.FilteredCount,
	)

	if step.Expect != nil {
		for _, msg := range checkExpect(event, h.ctrl, step.Expect) {
			result.AddError(fmt.Sprintf("flow[%d] %s: %s", index, action, msg))
		}
	} else if rejected != "" {
		result.AddError(fmt.Sprintf("flow[%d] %s: unexpected rejection %s", index, action, rejected))
	}
	return nil
}

// apply performs the step's action on the controller.
func (h *Harness) apply(step FlowStep) (string, any, error) {
	c := h.ctrl
	switch {
	case step.Filter != nil:
		c.SetFilter(step.Filter.Patch())
		return "filter", filterArgsMap(*step.Filter), nil
	case step.Sort != "":
		col, err := catalog.ParseColumn(step.Sort)
		if err != nil {
			return "sort", step.Sort, err
		}
		c.SetSort(col)
		return "sort", col.String(), nil
	case step.Page != nil:
		return "page", *step.Page, c.SetPage(*step.Page)
	case step.PageSize != nil:
		return "page_size", *step.PageSize, c.SetPageSize(*step.PageSize)
	case step.Next:
		return "next", nil, c.NextPage()
	case step.Prev:
		return "prev", nil, c.PrevPage()
	case step.Reset:
		c.ResetFilters()
		return "reset", nil, nil
	case step.Select != "":
		return "select", step.Select, c.SelectRecord(step.Select)
	case step.Clear:
		c.ClearSelection()
		return "clear", nil, nil
	}
	return "", nil, fmt.Errorf("step has no action")
}

func filterArgsMap(a FilterArgs) map[string]string {
	m := map[string]string{}
	set := func(k string, v *string) {
		if v != nil {
			m[k] = *v
		}
	}
	set("search", a.Search)
	set("category", a.Category)
	set("subcategory", a.Subcategory)
	set("gender", a.Gender)
	set("stock", a.Stock)
	return m
}

// checkExpect compares the step outcome against the expect clause.
func checkExpect(event TraceEvent, ctrl *view.Controller, want *ExpectClause) []string {
	var errs []string
	if event.Rejected != want.Rejected {
		switch {
		case want.Rejected == "":
			errs = append(errs, fmt.Sprintf("unexpected rejection %s", event.Rejected))
		default:
			errs = append(errs, fmt.Sprintf("expected rejection %s, got %q", want.Rejected, event.Rejected))
		}
	}
	if want.SKUs != nil && !slices.Equal(want.SKUs, event.SKUs) {
		errs = append(errs, fmt.Sprintf("page skus = %v, expected %v", event.SKUs, want.SKUs))
	}
	errs = checkInt(errs, "filtered", event.Filtered, want.Filtered)
	errs = checkInt(errs, "total_pages", event.TotalPages, want.TotalPages)
	errs = checkInt(errs, "page", event.Page, want.Page)
	errs = checkInt(errs, "low_stock", ctrl.Stats().LowStockCount, want.LowStock)
	if want.Selected != nil && *want.Selected != event.Selected {
		errs = append(errs, fmt.Sprintf("selected = %q, expected %q", event.Selected, *want.Selected))
	}
	return errs
}

func checkInt(errs []string, name string, got int, want *int) []string {
	if want != nil && *want != got {
		errs = append(errs, fmt.Sprintf("%s = %d, expected %d", name, got, *want))
	}
	return errs
}
