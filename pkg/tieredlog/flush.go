package tieredlog

import (
	"time"

	logpkg "github.com/rzbill/tierlog/pkg/log"
)

// FlushCache runs one flush cycle. With force false the cycle is a no-op
// unless a tier sits at or over its maximum; with force true every buffered
// record is promoted. Either way the file is rewritten at most once, after
// both the promotion and the eviction step.
func (l *Log[T, K]) FlushCache(force bool) error {
	_, err := l.flushCache(force, false)
	return err
}

// StoreCache promotes every buffered record to the file tier. Equivalent to
// FlushCache(true).
func (l *Log[T, K]) StoreCache() error {
	_, err := l.flushCache(true, false)
	return err
}

// LastFlushErr returns the last background flush failure and clears the
// slot. Background failures are never thrown across goroutines; this is the
// only way a caller observes them.
func (l *Log[T, K]) LastFlushErr() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.lastFlushErr
	l.lastFlushErr = nil
	return err
}

// WaitForFlush blocks until a flush cycle completes (having moved, evicted,
// or failed) or timeout elapses. It returns true if woken by a cycle. A
// timeout of zero or less waits indefinitely.
func (l *Log[T, K]) WaitForFlush(timeout time.Duration) bool {
	l.mu.Lock()
	ch := l.flushDone
	l.mu.Unlock()
	if timeout <= 0 {
		<-ch
		return true
	}
	select {
	case <-ch:
		return true
	case <-time.After(timeout):
		return false
	}
}

// maybeAutoFlush arms the background flush task when auto-flush is enabled
// (release buffer size > 0) and a tier sits at or over its maximum. While a
// task is running further triggers are coalesced no-ops.
func (l *Log[T, K]) maybeAutoFlush() {
	l.mu.Lock()
	enabled := l.releaseBufferSize > 0
	pending := len(l.buffer) >= l.maxBufferSize || l.fileCount >= l.maxFileSize
	l.mu.Unlock()
	if !enabled || !pending {
		return
	}
	if !l.flushing.CompareAndSwap(false, true) {
		return
	}

	go func() {
		worked, err := l.flushCache(false, true)
		l.flushing.Store(false)
		if err != nil {
			l.mu.Lock()
			l.lastFlushErr = err
			l.mu.Unlock()
			l.logger.Warn("auto-flush failed", logpkg.Err(err))
			return
		}
		// a trigger that lost the CAS race while this cycle ran would
		// otherwise be dropped; re-evaluate before retiring. Only a
		// productive cycle re-arms, a no-op would re-arm forever.
		if worked {
			l.maybeAutoFlush()
		}
	}()
}

// flushCache is the single flush/eviction cycle shared by the explicit and
// background paths. auto marks the task context for event attribution. The
// bool reports whether the cycle moved or evicted anything.
func (l *Log[T, K]) flushCache(force, auto bool) (bool, error) {
	var flushed, evicted []T
	var obs []Observer[T]

	err := func() error {
		l.mu.Lock()
		defer l.mu.Unlock()

		if force && len(l.buffer) == 0 {
			return nil
		}
		if !force && len(l.buffer) < l.maxBufferSize && l.fileCount < l.maxFileSize {
			return nil
		}

		start := time.Now()
		var elems [][]byte
		loaded := false
		load := func() error {
			if loaded {
				return nil
			}
			e, err := l.file.Load()
			if err != nil {
				return l.storageErr("read", err)
			}
			elems = e
			loaded = true
			return nil
		}

		// promotion: move the oldest buffer surplus to the file head
		if force || len(l.buffer) >= l.maxBufferSize {
			toFlush := len(l.buffer)
			if !force {
				toFlush = len(l.buffer) - (l.maxBufferSize - l.releaseBufferSize)
			}
			if toFlush > 0 {
				if err := load(); err != nil {
					return err
				}
				encoded := make([][]byte, 0, toFlush)
				for _, v := range l.buffer[:toFlush] {
					raw, err := l.codec.Encode(v)
					if err != nil {
						return &StorageError{Op: "encode", Path: l.file.Path(), Err: err}
					}
					encoded = append(encoded, raw)
				}
				// each record is inserted at position 0 oldest-first, which
				// lands the block newest-first ahead of the existing content
				head := make([][]byte, 0, toFlush+len(elems))
				for i := toFlush - 1; i >= 0; i-- {
					head = append(head, encoded[i])
				}
				elems = append(head, elems...)
				flushed = append([]T(nil), l.buffer[:toFlush]...)
			}
		}

		// eviction: discard the oldest file surplus
		fileCount := l.fileCount
		if loaded {
			fileCount = len(elems)
		}
		if fileCount >= l.maxFileSize {
			toEvict := fileCount - (l.maxFileSize - l.releaseFileSize)
			if toEvict > 0 {
				if err := load(); err != nil {
					return err
				}
				if toEvict > len(elems) {
					toEvict = len(elems)
				}
				for i := len(elems) - 1; i >= len(elems)-toEvict; i-- {
					v, err := l.decodeElem(elems[i])
					if err != nil {
						return err
					}
					evicted = append(evicted, v)
				}
				elems = elems[:len(elems)-toEvict]
			}
		}

		if len(flushed) == 0 && len(evicted) == 0 {
			return nil
		}

		// exactly one whole-file rewrite per cycle
		if err := l.file.Store(elems); err != nil {
			flushed, evicted = nil, nil
			return l.storageErr("write", err)
		}
		l.buffer = append([]T(nil), l.buffer[len(flushed):]...)
		if err := l.recomputeFileEnds(elems); err != nil {
			return err
		}

		l.logger.Debug("flush cycle done",
			logpkg.Int("flushed", len(flushed)),
			logpkg.Int("evicted", len(evicted)),
			logpkg.Bool("auto", auto),
			logpkg.Duration("took", time.Since(start)))
		obs = l.observerSnapshot()
		return nil
	}()

	if err != nil {
		l.signalFlushDone()
		return false, err
	}
	if len(flushed) == 0 && len(evicted) == 0 {
		return false, nil
	}

	if len(flushed) > 0 {
		notifyFlushed(obs, flushed, auto)
	}
	if len(evicted) > 0 {
		notifyRemoved(obs, evicted, auto)
	}
	l.signalFlushDone()
	return true, nil
}

func (l *Log[T, K]) signalFlushDone() {
	l.mu.Lock()
	close(l.flushDone)
	l.flushDone = make(chan struct{})
	l.mu.Unlock()
}
