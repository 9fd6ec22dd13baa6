package harness

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/krakozavr/Inventory/internal/testutil"
	"github.com/krakozavr/Inventory/internal/view"
)

// AssertionError is returned when an assertion fails.
// It includes the final page to help debug the failure.
type AssertionError struct {
	Type     string   // Assertion type for categorization
	Expected string   // Human-readable expected outcome
	Actual   string   // Human-readable actual outcome
	Page     []string // SKUs on the final page
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)
	fmt.Fprintf(&buf, "  Page: %v", e.Page)

	return buf.String()
}

// EvaluateAssertions runs every assertion against the controller's final
// view and returns the failure messages.
func EvaluateAssertions(ctrl *view.Controller, assertions []Assertion) []string {
	var errs []string
	for _, a := range assertions {
		if err := evaluateAssertion(ctrl, a); err != nil {
			errs = append(errs, err.Error())
		}
	}
	return errs
}

func evaluateAssertion(ctrl *view.Controller, a Assertion) error {
	switch a.Type {
	case AssertViewContains:
		return assertViewContains(ctrl, a)
	case AssertViewOrder:
		return assertViewOrder(ctrl, a)
	case AssertViewCount:
		return assertViewCount(ctrl, a)
	case AssertFinalState:
		return assertFinalState(ctrl, a)
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertViewContains checks that the SKU is on the final page.
func assertViewContains(ctrl *view.Controller, a Assertion) error {
	page := testutil.SKUs(ctrl.View().Records)
	if slices.Contains(page, a.SKU) {
		return nil
	}
	return &AssertionError{
		Type:     AssertViewContains,
		Expected: fmt.Sprintf("sku %s on page", a.SKU),
		Actual:   "not found",
		Page:     page,
	}
}

// assertViewOrder checks that the SKUs appear in order on the final page.
// They don't need to be consecutive.
func assertViewOrder(ctrl *view.Controller, a Assertion) error {
	page := testutil.SKUs(ctrl.View().Records)

	prev := -1
	for _, sku := range a.SKUs {
		pos := slices.Index(page, sku)
		if pos < 0 {
			return &AssertionError{
				Type:     AssertViewOrder,
				Expected: fmt.Sprintf("all skus present: %v", a.SKUs),
				Actual:   fmt.Sprintf("missing sku: %s", sku),
				Page:     page,
			}
		}
		if pos <= prev {
			return &AssertionError{
				Type:     AssertViewOrder,
				Expected: fmt.Sprintf("skus in order: %v", a.SKUs),
				Actual:   fmt.Sprintf("%s (pos %d) is not after %s (pos %d)", sku, pos+1, page[prev], prev+1),
				Page:     page,
			}
		}
		prev = pos
	}
	return nil
}

// assertViewCount checks the size of the filtered subset.
func assertViewCount(ctrl *view.Controller, a Assertion) error {
	got := ctrl.View().FilteredCount
	if got == a.Count {
		return nil
	}
	return &AssertionError{
		Type:     AssertViewCount,
		Expected: fmt.Sprintf("%d filtered records", a.Count),
		Actual:   fmt.Sprintf("%d filtered records", got),
		Page:     testutil.SKUs(ctrl.View().Records),
	}
}

// assertFinalState compares named state fields using subset semantics.
func assertFinalState(ctrl *view.Controller, a Assertion) error {
	actual := finalState(ctrl)

	keys := make([]string, 0, len(a.Expect))
	for k := range a.Expect {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var mismatches []string
	for _, k := range keys {
		got, ok := actual[k]
		if !ok {
			return fmt.Errorf("final_state: unknown field %q", k)
		}
		want := fmt.Sprint(a.Expect[k])
		if fmt.Sprint(got) != want {
			mismatches = append(mismatches, fmt.Sprintf("%s=%v (expected %s)", k, got, want))
		}
	}
	if len(mismatches) == 0 {
		return nil
	}
	return &AssertionError{
		Type:     AssertFinalState,
		Expected: formatExpect(a.Expect),
		Actual:   strings.Join(mismatches, ", "),
		Page:     testutil.SKUs(ctrl.View().Records),
	}
}

// finalState exposes the controller's counters and state by field name.
func finalState(ctrl *view.Controller) map[string]any {
	st := ctrl.State()
	v := ctrl.View()
	s := ctrl.Stats()
	return map[string]any{
		"total":          s.TotalCount,
		"filtered":       s.FilteredCount,
		"low_stock":      s.LowStockCount,
		"out_of_stock":   s.OutOfStockCount,
		"filtered_units": s.FilteredUnits,
		"total_pages":    v.TotalPages,
		"page":           st.Page.Index,
		"page_size":      st.Page.Size,
		"sort":           st.Sort.String(),
		"selected":       st.Selection,
		"search":         st.Filter.Search,
		"category":       st.Filter.Category,
		"subcategory":    st.Filter.Subcategory,
		"gender":         string(st.Filter.Gender),
		"stock":          string(st.Filter.Stock),
	}
}

// formatExpect renders expected fields in sorted key order.
func formatExpect(expect map[string]any) string {
	keys := make([]string, 0, len(expect))
	for k := range expect {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, expect[k])
	}
	return strings.Join(parts, ", ")
}
