// Package catalog defines the inventory record model shared by every other
// package in the module.
//
// This package contains types and pure helpers only. It imports nothing
// internal, so the dataset, filter, ordering, paging, stats and view
// packages can all depend on it without cycles.
//
// Key constraints:
//   - Records are values. Nothing in the module mutates a Record after load.
//   - Money is decimal.Decimal, never float64.
//   - Columns are a closed enumeration (Column). Parsing an unknown column
//     name is an error, so a typo can never turn into a silent no-op.
//   - Stock buckets derive from Available only (see Classify).
package catalog
