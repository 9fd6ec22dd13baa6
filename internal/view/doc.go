// Package view owns the interactive state of one inventory browsing session
// and the view derived from it.
//
// A Controller holds State{Filter, Sort, Page, Selection} over a shared,
// read-only dataset.Dataset. Every transition that touches filter, sort or
// page state recomputes the DerivedView from scratch, always in the fixed
// order filter -> sort -> paginate:
//
//	filtered := filter.Apply(records, state.Filter)
//	sorted   := ordering.Sort(filtered, state.Sort)
//	page, n  := paging.Paginate(sorted, state.Page)
//
// Recomputing everything on each change keeps the controller simple; at
// catalog sizes of a few thousand records it is well under a millisecond.
//
// Rejected transitions (a page outside [1, totalPages], a page size below 1,
// an unknown SKU) return a *Error and leave the state exactly as it was.
//
// A Controller is not safe for concurrent use. Independent controllers over
// the same Dataset may run on separate goroutines.
package view
