// Package storage provides SQLite-based persistence for scan results.
//
// The scan pipeline itself has no persistence dependency; this package is
// the record-store collaborator the CLI wires in. Each saved scan keeps
// the full result as JSON plus relational cookie, script, and finding
// rows keyed by the scan identifier, so results can be both replayed
// exactly and queried individually.
package storage
