// Package store provides a SQLite snapshot of a catalog.
//
// A snapshot is an alternative to the YAML/JSON catalog file: the import
// command writes one, and every read command can load from it with --db.
// The browsing engine never touches the database; a snapshot is read once
// into memory and wrapped in a dataset.Dataset like any other catalog.
//
// # Tables
//
//   - records: one row per record, keyed by source position
//   - snapshot_meta: key/value metadata (source, record_count)
//
// # Conventions
//
//   - Records are read ORDER BY position ASC, reproducing catalog order.
//   - Money columns are decimal TEXT; sizes and colors are JSON arrays.
//   - SaveCatalog replaces the whole snapshot in a single transaction.
//
// # Database Configuration
//
//   - journal_mode=DELETE: the snapshot stays a single file
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - user_version: number of applied migrations; a newer snapshot is
//     refused with ErrNewerSchema
package store
