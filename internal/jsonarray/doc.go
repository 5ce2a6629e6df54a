// Package jsonarray implements tierlog's durable tier: a single JSON-array
// document holding one encoded record per element, index 0 = newest.
//
// # Overview
//
// The file is always read and rewritten whole; there is no append-only byte
// path. That trade-off keeps the on-disk form a plain, human-readable JSON
// document at the cost of a full rewrite per flush cycle, which is acceptable
// for the small-to-medium stores this package targets.
//
// In memory-resident mode the decoded element sequence is mirrored in memory
// after the first read and refreshed on every successful write, so the file
// is never re-read while the process lives. Without residency every Load
// re-parses the file from disk.
//
// Element splitting is done with jsonparser to avoid materializing an
// intermediate tree; document assembly uses encoding/json with indentation.
//
// Callers own serialization: the store above this package holds its monitor
// lock across Load/mutate/Store cycles.
package jsonarray
