// Package dataset holds the immutable source collection of inventory records
// for a session, and the boundary code that gets records into it.
//
// A Dataset is populated once and never mutated. It is safe to share one
// Dataset between any number of readers (for example several independent
// view controllers) without synchronization.
//
// Catalog files are YAML documents (JSON is accepted too, being a YAML
// subset) with a single top-level "records" list. Decoding is strict:
// unknown fields are rejected so that a misspelled key fails loudly.
//
// Validate checks the record invariants against an embedded CUE schema.
// Loading never enforces those invariants; they are established by the
// catalog producer and only reported on request.
package dataset
