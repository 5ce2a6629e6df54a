// Package tieredlog implements a generic two-tier append log: recent records
// live in an in-memory buffer, older records in a durable JSON-array file,
// with threshold-driven promotion (flush) from buffer to file and eviction of
// the oldest file records once the file tier outgrows its maximum.
//
// # Overview
//
// Records flow in through Append and accumulate at the buffer tail. When the
// buffer reaches its maximum size, the oldest surplus is moved to the head of
// the file array (which is stored newest-first); when the file tier reaches
// its own maximum, the oldest file records are discarded. Both steps happen
// inside one flush cycle ending in a single whole-file rewrite. Flush cycles
// run either explicitly (FlushCache, StoreCache) or on a detached background
// task armed by Append and the threshold setters.
//
// The store is a monitor: one mutex serializes mutations and gives range
// queries a consistent buffer/file split. Append never blocks on I/O.
//
// # Ordering
//
// The logical order (oldest to newest) is the file array read tail to head,
// followed by the buffer read head to tail. Range queries over ids and
// timestamps require the caller-supplied ordering to be monotonic with
// insertion order; that contract is the caller's to keep, not the store's to
// enforce.
//
// API surface
//
//	l, _ := tieredlog.Open(path, strat, tieredlog.JSONCodec[Event]{}, tieredlog.DefaultOptions())
//	l.Append(ev)
//	_ = l.FlushCache(false)          // threshold-driven cycle
//	_ = l.StoreCache()               // flush everything buffered
//	all, _ := l.All()                // both tiers
//	latest, _ := l.Latest(10)        // newest first
//	rng, _ := l.ByID(&from, &to)     // id range, both tiers
//	removed, _ := l.Remove(5)        // oldest-first explicit delete
//	l.RegisterObserver(obs)          // added/flushed/removed events
//	woke := l.WaitForFlush(time.Second)
//	err := l.LastFlushErr()          // read-once background failure slot
package tieredlog
