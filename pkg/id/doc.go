// Package id provides sortable record identifiers for tierlog stores.
//
// # Format
//
// An ID is 16 bytes big-endian: [8 bytes ms_timestamp][8 bytes sequence].
// Byte-wise comparison preserves chronological order, so IDs satisfy the
// store's contract that the id ordering be monotonic with insertion order.
// The canonical string form is 32 lowercase hex digits, which compares the
// same way lexically.
//
// # Monotonicity
//
// The Generator ensures per-process monotonicity:
//   - If the system clock regresses, it pins to the last seen millisecond and
//     increments the sequence to avoid going backwards.
//   - If the sequence would overflow within a millisecond, it waits for the
//     next millisecond before emitting the next ID.
//
// Usage
//
//	g := id.NewGenerator()
//	rid := g.Next()
//	s := rid.String()      // hex form, stored with the record
//	back, _ := id.Parse(s) // range bounds parsed from CLI flags
package id
