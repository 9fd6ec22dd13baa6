package dataset

import (
	_ "embed"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/krakozavr/Inventory/internal/catalog"
)

//go:embed schema.cue
var schemaSource string

// Severity grades a validation Issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is a single problem found in a catalog.
type Issue struct {
	Index    int      `json:"index"` // position of the record in the catalog
	SKU      string   `json:"sku"`
	Field    string   `json:"field,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (i Issue) String() string {
	loc := fmt.Sprintf("record %d (%s)", i.Index, i.SKU)
	if i.Field != "" {
		loc += " " + i.Field
	}
	return fmt.Sprintf("%s: %s: %s", i.Severity, loc, i.Message)
}

// Validator checks records against the CUE record schema.
// A Validator is not safe for concurrent use.
type Validator struct {
	ctx    *cue.Context
	record cue.Value
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile record schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Record"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("lookup #Record: %w", err)
	}
	return &Validator{ctx: ctx, record: def}, nil
}

// Validate returns every issue found in records, in catalog order.
//
// Errors are schema violations (negative counters, unknown gender tag,
// available != total - sold - hold, ...) and duplicate SKUs. Warnings are
// expectations the model does not enforce, currently retail below wholesale.
func (v *Validator) Validate(records []catalog.Record) []Issue {
	issues := []Issue{}
	seen := make(map[string]int, len(records))

	for i, r := range records {
		if prev, dup := seen[r.SKU]; dup {
			issues = append(issues, Issue{
				Index:    i,
				SKU:      r.SKU,
				Field:    "sku",
				Severity: SeverityError,
				Message:  fmt.Sprintf("duplicate of record %d", prev),
			})
		} else {
			seen[r.SKU] = i
		}

		issues = append(issues, v.checkSchema(i, r)...)

		if r.Retail.LessThan(r.Wholesale) {
			issues = append(issues, Issue{
				Index:    i,
				SKU:      r.SKU,
				Field:    "retail",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("retail %s is below wholesale %s", r.Retail.StringFixed(2), r.Wholesale.StringFixed(2)),
			})
		}
	}
	return issues
}

func (v *Validator) checkSchema(index int, r catalog.Record) []Issue {
	value := v.ctx.Encode(schemaFields(r))
	err := v.record.Unify(value).Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var issues []Issue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issues = append(issues, Issue{
			Index:    index,
			SKU:      r.SKU,
			Field:    strings.Join(e.Path(), "."),
			Severity: SeverityError,
			Message:  fmt.Sprintf(format, args...),
		})
	}
	return issues
}

// schemaFields renders r with the field names the CUE schema uses.
func schemaFields(r catalog.Record) map[string]any {
	sizes := r.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	colors := r.Colors
	if colors == nil {
		colors = []string{}
	}
	return map[string]any{
		"sku":          r.SKU,
		"name":         r.Name,
		"category":     r.Category,
		"subcategory":  r.Subcategory,
		"gender":       string(r.Gender),
		"manufacturer": r.Manufacturer,
		"total":        r.Total,
		"sold":         r.Sold,
		"hold":         r.Hold,
		"requested":    r.Requested,
		"available":    r.Available,
		"wholesale":    r.Wholesale.InexactFloat64(),
		"retail":       r.Retail.InexactFloat64(),
		"msrp":         r.MSRP.InexactFloat64(),
		"sizes":        sizes,
		"colors":       colors,
	}
}

// HasErrors reports whether any issue has error severity.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}
