package tieredlog

import (
	"time"
)

// Filter accepts or rejects a record during a query scan. A nil Filter
// accepts everything.
type Filter[T any] func(v T) bool

// All returns every record from both tiers.
func (l *Log[T, K]) All() ([]T, error) { return l.FilterAll(nil) }

// Latest returns up to n records, newest first.
func (l *Log[T, K]) Latest(n int) ([]T, error) { return l.FilterLatest(nil, n) }

// Ancient returns up to n records, oldest first.
func (l *Log[T, K]) Ancient(n int) ([]T, error) { return l.FilterAncient(nil, n) }

// ByID returns the records whose id falls within [from, to]. A nil bound is
// open.
func (l *Log[T, K]) ByID(from, to *K) ([]T, error) { return l.FilterByID(nil, from, to) }

// ByDate returns the records whose timestamp falls within [from, to]. A nil
// bound is open.
func (l *Log[T, K]) ByDate(from, to *time.Time) ([]T, error) { return l.FilterByDate(nil, from, to) }

// TryAll is FilterAll with storage faults swallowed into an empty result.
func (l *Log[T, K]) TryAll(filter Filter[T]) []T {
	out, err := l.FilterAll(filter)
	if err != nil {
		return []T{}
	}
	return out
}

// TryLatest is FilterLatest with storage faults swallowed.
func (l *Log[T, K]) TryLatest(filter Filter[T], n int) []T {
	out, err := l.FilterLatest(filter, n)
	if err != nil {
		return []T{}
	}
	return out
}

// TryAncient is FilterAncient with storage faults swallowed.
func (l *Log[T, K]) TryAncient(filter Filter[T], n int) []T {
	out, err := l.FilterAncient(filter, n)
	if err != nil {
		return []T{}
	}
	return out
}

// TryByID is FilterByID with storage faults swallowed.
func (l *Log[T, K]) TryByID(filter Filter[T], from, to *K) []T {
	out, err := l.FilterByID(filter, from, to)
	if err != nil {
		return []T{}
	}
	return out
}

// TryByDate is FilterByDate with storage faults swallowed.
func (l *Log[T, K]) TryByDate(filter Filter[T], from, to *time.Time) []T {
	out, err := l.FilterByDate(filter, from, to)
	if err != nil {
		return []T{}
	}
	return out
}

// FilterAll returns every accepted record. The corrected order is a single
// oldest-to-newest sequence across both tiers; with LegacyScanOrder the
// legacy ordering is reproduced instead (buffer matches reversed, then
// file matches newest-to-oldest).
func (l *Log[T, K]) FilterAll(filter Filter[T]) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.legacyScanOrder {
		out := l.scanBuffer(filter)
		reverse(out)
		fileOut, err := l.scanFileFront(filter)
		if err != nil {
			return nil, err
		}
		return append(out, fileOut...), nil
	}

	out, err := l.scanFileBack(filter)
	if err != nil {
		return nil, err
	}
	return append(out, l.scanBuffer(filter)...), nil
}

// FilterLatest returns up to n accepted records, newest first: buffer tail
// to head, then file head to tail for any remainder.
func (l *Log[T, K]) FilterLatest(filter Filter[T], n int) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := []T{}
	budget := n
	for i := len(l.buffer) - 1; i >= 0 && budget > 0; i-- {
		if l.legacyScanOrder {
			// legacy quirk: buffer-side budget paid per scanned
			// record, accepted or not
			budget--
		}
		if accepts(filter, l.buffer[i]) {
			out = append(out, l.buffer[i])
			if !l.legacyScanOrder {
				budget--
			}
		}
	}
	if len(out) >= n {
		return out, nil
	}

	remainder := n - len(out)
	elems, err := l.file.Load()
	if err != nil {
		return nil, l.storageErr("read", err)
	}
	for _, raw := range elems {
		v, err := l.decodeElem(raw)
		if err != nil {
			return nil, err
		}
		if accepts(filter, v) {
			out = append(out, v)
			if remainder--; remainder == 0 {
				break
			}
		}
	}
	return out, nil
}

// FilterAncient returns up to n accepted records, oldest first: file tail to
// head, then buffer head to tail for any remainder.
func (l *Log[T, K]) FilterAncient(filter Filter[T], n int) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := []T{}
	if n <= 0 {
		return out, nil
	}

	if l.fileCount > 0 {
		elems, err := l.file.Load()
		if err != nil {
			return nil, l.storageErr("read", err)
		}
		budget := n
		for i := len(elems) - 1; i >= 0; i-- {
			v, err := l.decodeElem(elems[i])
			if err != nil {
				return nil, err
			}
			if accepts(filter, v) {
				out = append(out, v)
				if budget--; budget == 0 {
					break
				}
			}
		}
	}
	if len(out) >= n {
		return out, nil
	}

	budget := n - len(out)
	for i := 0; i < len(l.buffer) && budget > 0; i++ {
		if l.legacyScanOrder {
			// legacy quirk: budget paid per scanned record
			budget--
		}
		if accepts(filter, l.buffer[i]) {
			out = append(out, l.buffer[i])
			if !l.legacyScanOrder {
				budget--
			}
		}
	}
	return out, nil
}

// FilterByID returns the accepted records whose id falls within [from, to].
// Scans rely on the id ordering being monotonic with insertion order.
func (l *Log[T, K]) FilterByID(filter Filter[T], from, to *K) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileCount+len(l.buffer) == 0 {
		return []T{}, nil
	}

	// whole range inside the buffer tier
	if from != nil && len(l.buffer) > 0 && l.strat.CompareIDs(l.strat.ID(l.buffer[0]), *from) <= 0 {
		return l.scanBufferByID(filter, from, to), nil
	}

	out, err := l.scanFileByID(filter, from, to)
	if err != nil {
		return nil, err
	}

	if l.legacyScanOrder {
		// legacy quirk: the upper-bound check reads the first buffered id
		if to == nil || (len(l.buffer) > 0 && l.strat.CompareIDs(l.strat.ID(l.buffer[0]), *to) < 0) {
			out = append(out, l.scanBufferByID(filter, from, to)...)
		}
		return out, nil
	}

	if len(l.buffer) > 0 && (to == nil || l.strat.CompareIDs(l.strat.ID(l.buffer[0]), *to) <= 0) {
		out = append(out, l.scanBufferByID(filter, from, to)...)
	}
	return out, nil
}

// FilterByDate returns the accepted records whose timestamp falls within
// [from, to]. The corrected order is oldest to newest across tiers; with
// LegacyScanOrder the buffer matches precede the file matches.
func (l *Log[T, K]) FilterByDate(filter Filter[T], from, to *time.Time) ([]T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.fileCount+len(l.buffer) == 0 {
		return []T{}, nil
	}

	fileOut, err := l.scanFileByDate(filter, from, to)
	if err != nil {
		return nil, err
	}
	bufOut := l.scanBufferByDate(filter, from, to)

	if l.legacyScanOrder {
		return append(bufOut, fileOut...), nil
	}
	return append(fileOut, bufOut...), nil
}

// scanBuffer collects accepted buffer records head to tail (oldest first).
func (l *Log[T, K]) scanBuffer(filter Filter[T]) []T {
	out := []T{}
	for _, v := range l.buffer {
		if accepts(filter, v) {
			out = append(out, v)
		}
	}
	return out
}

// scanFileFront collects accepted file records front to back (newest first).
func (l *Log[T, K]) scanFileFront(filter Filter[T]) ([]T, error) {
	elems, err := l.file.Load()
	if err != nil {
		return nil, l.storageErr("read", err)
	}
	out := []T{}
	for _, raw := range elems {
		v, err := l.decodeElem(raw)
		if err != nil {
			return nil, err
		}
		if accepts(filter, v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// scanFileBack collects accepted file records back to front (oldest first).
func (l *Log[T, K]) scanFileBack(filter Filter[T]) ([]T, error) {
	elems, err := l.file.Load()
	if err != nil {
		return nil, l.storageErr("read", err)
	}
	out := []T{}
	for i := len(elems) - 1; i >= 0; i-- {
		v, err := l.decodeElem(elems[i])
		if err != nil {
			return nil, err
		}
		if accepts(filter, v) {
			out = append(out, v)
		}
	}
	return out, nil
}

// scanBufferByID walks head to tail, starts collecting once an id reaches
// from, and stops past to.
func (l *Log[T, K]) scanBufferByID(filter Filter[T], from, to *K) []T {
	collect := from == nil
	out := []T{}
	for _, v := range l.buffer {
		id := l.strat.ID(v)
		if from != nil && l.strat.CompareIDs(id, *from) >= 0 {
			collect = true
		}
		if to != nil && l.strat.CompareIDs(id, *to) > 0 {
			break
		}
		if collect && accepts(filter, v) {
			out = append(out, v)
		}
	}
	return out
}

// scanFileByID walks front to back (newest first), starts collecting once an
// id drops to to, stops below from, and reverses into oldest-first order.
func (l *Log[T, K]) scanFileByID(filter Filter[T], from, to *K) ([]T, error) {
	elems, err := l.file.Load()
	if err != nil {
		return nil, l.storageErr("read", err)
	}
	collect := to == nil
	out := []T{}
	for _, raw := range elems {
		v, err := l.decodeElem(raw)
		if err != nil {
			return nil, err
		}
		id := l.strat.ID(v)
		if to != nil && l.strat.CompareIDs(id, *to) <= 0 {
			collect = true
		}
		if from != nil && l.strat.CompareIDs(id, *from) < 0 {
			break
		}
		if collect && accepts(filter, v) {
			out = append(out, v)
		}
	}
	reverse(out)
	return out, nil
}

func (l *Log[T, K]) scanBufferByDate(filter Filter[T], from, to *time.Time) []T {
	collect := from == nil
	out := []T{}
	for _, v := range l.buffer {
		ts := l.strat.Timestamp(v)
		if from != nil && ts.Compare(*from) >= 0 {
			collect = true
		}
		if to != nil && ts.Compare(*to) > 0 {
			break
		}
		if collect && accepts(filter, v) {
			out = append(out, v)
		}
	}
	return out
}

func (l *Log[T, K]) scanFileByDate(filter Filter[T], from, to *time.Time) ([]T, error) {
	elems, err := l.file.Load()
	if err != nil {
		return nil, l.storageErr("read", err)
	}
	collect := to == nil
	out := []T{}
	for _, raw := range elems {
		v, err := l.decodeElem(raw)
		if err != nil {
			return nil, err
		}
		ts := l.strat.Timestamp(v)
		if to != nil && ts.Compare(*to) <= 0 {
			collect = true
		}
		if from != nil && ts.Compare(*from) < 0 {
			break
		}
		if collect && accepts(filter, v) {
			out = append(out, v)
		}
	}
	reverse(out)
	return out, nil
}

func accepts[T any](filter Filter[T], v T) bool {
	return filter == nil || filter(v)
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
