// Package filter derives the filtered subset of a dataset from a filter
// specification.
//
// A Spec is compiled into a predicate tree and evaluated record by record.
// Predicate is a sealed interface: only the types in this package implement
// it, so consumers can switch over it exhaustively.
//
//	Spec{Search: "navy", Category: "Accessories", Stock: "low"}
//
// compiles to
//
//	And{
//	  Search{Needle: "navy"},
//	  Equals{Column: catalog.ColumnCategory, Value: "Accessories"},
//	  StockIs{Level: catalog.StockLow},
//	}
//
// Evaluation order matches the compile order: the free-text predicate runs
// first, then each categorical predicate. All of them combine with AND, and
// an empty field in the Spec contributes no predicate at all.
//
// Malformed input never fails. A category, gender or stock bucket that no
// record carries simply matches nothing.
package filter
