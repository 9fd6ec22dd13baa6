package filter

import (
	"fmt"
	"strings"

	"github.com/krakozavr/Inventory/internal/catalog"
)

// Predicate is a condition over a single record.
//
// This is a sealed interface: the unexported marker method keeps
// implementations inside this package.
type Predicate interface {
	// Match reports whether r satisfies the predicate.
	Match(r catalog.Record) bool

	predicateNode()
}

// Search is a case-insensitive substring match over the searchable fields:
// SKU, name, category, subcategory, manufacturer and colors.
//
// Needle must already be folded; use NewSearch to build one from user input.
type Search struct {
	Needle string
}

// NewSearch builds a Search predicate from raw user input.
func NewSearch(text string) Search {
	return Search{Needle: catalog.Fold(text)}
}

// searchSeparator joins the searchable fields so that a needle cannot match
// across a field boundary.
const searchSeparator = "\x00"

func (s Search) Match(r catalog.Record) bool {
	if s.Needle == "" {
		return true
	}
	haystack := catalog.Fold(strings.Join([]string{
		r.SKU,
		r.Name,
		r.Category,
		r.Subcategory,
		r.Manufacturer,
		r.ColorsText(),
	}, searchSeparator))
	return strings.Contains(haystack, s.Needle)
}

func (Search) predicateNode() {}

// Equals is an exact match of a column's text value.
type Equals struct {
	Column catalog.Column
	Value  string
}

func (e Equals) Match(r catalog.Record) bool {
	return e.Column.Valid() && e.Column.Text(r) == e.Value
}

func (Equals) predicateNode() {}

// StockIs matches records whose stock bucket is Level.
// A Level that is not a concrete bucket matches nothing.
type StockIs struct {
	Level catalog.StockLevel
}

func (s StockIs) Match(r catalog.Record) bool {
	return s.Level.Valid() && r.StockLevel() == s.Level
}

func (StockIs) predicateNode() {}

// And matches when every predicate matches. An empty And matches everything.
// Predicates are evaluated in order and evaluation stops at the first miss.
type And struct {
	Predicates []Predicate
}

func (a And) Match(r catalog.Record) bool {
	for _, p := range a.Predicates {
		if !p.Match(r) {
			return false
		}
	}
	return true
}

func (And) predicateNode() {}

// Compile converts a Spec to a predicate tree. Empty fields contribute no
// predicate, so the zero Spec compiles to an empty And.
func Compile(s Spec) And {
	var preds []Predicate
	if s.Search != "" {
		preds = append(preds, NewSearch(s.Search))
	}
	if s.Category != "" {
		preds = append(preds, Equals{Column: catalog.ColumnCategory, Value: s.Category})
	}
	if s.Subcategory != "" {
		preds = append(preds, Equals{Column: catalog.ColumnSubcategory, Value: s.Subcategory})
	}
	if s.Gender != "" {
		preds = append(preds, Equals{Column: catalog.ColumnGender, Value: string(s.Gender)})
	}
	if s.Stock != catalog.StockAny {
		preds = append(preds, StockIs{Level: s.Stock})
	}
	return And{Predicates: preds}
}

// Describe renders a predicate for logs and status lines, for example
//
//	search~"navy" AND category="Accessories" AND stock=low
//
// An empty And renders as "all".
func Describe(p Predicate) string {
	switch pred := p.(type) {
	case nil:
		return "all"
	case Search:
		return fmt.Sprintf("search~%q", pred.Needle)
	case Equals:
		return fmt.Sprintf("%s=%q", pred.Column, pred.Value)
	case StockIs:
		return fmt.Sprintf("stock=%s", pred.Level)
	case And:
		if len(pred.Predicates) == 0 {
			return "all"
		}
		parts := make([]string, len(pred.Predicates))
		for i, sub := range pred.Predicates {
			parts[i] = Describe(sub)
		}
		return strings.Join(parts, " AND ")
	default:
		return fmt.Sprintf("%T", p)
	}
}
