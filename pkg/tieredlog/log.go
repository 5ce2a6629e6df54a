package tieredlog

import (
	"sync"
	"sync/atomic"

	"github.com/rzbill/tierlog/internal/jsonarray"
	logpkg "github.com/rzbill/tierlog/pkg/log"
)

// Log is a two-tier append log over records of type T with ids of type K.
// It behaves as a monitor: one mutex serializes mutations and gives readers a
// consistent buffer/file split.
type Log[T, K any] struct {
	mu     sync.Mutex
	file   *jsonarray.File
	strat  Strategy[T, K]
	codec  Codec[T]
	logger logpkg.Logger

	// buffer tier: head = oldest buffered record, tail = newest overall
	buffer []T

	// cached file tier scalars, re-derived after every file mutation
	fileCount    int
	fileFirst    T
	fileLast     T
	hasFileFirst bool
	hasFileLast  bool

	maxBufferSize     int
	releaseBufferSize int
	maxFileSize       int
	releaseFileSize   int
	legacyScanOrder   bool

	observers []Observer[T]

	flushing     atomic.Bool
	lastFlushErr error
	flushDone    chan struct{}
}

// Open validates the configuration, reads the backing file once to derive
// the cached file-tier scalars, and returns the store. The path must be
// non-empty and not an existing directory. A nil codec takes JSONCodec.
func Open[T, K any](path string, strat Strategy[T, K], codec Codec[T], opts Options) (*Log[T, K], error) {
	if strat == nil {
		return nil, configErrf("strategy can not be nil")
	}
	if codec == nil {
		codec = JSONCodec[T]{}
	}
	opts.normalize()
	if err := validateThresholds(opts.MaxBufferSize, opts.ReleaseBufferSize, opts.MaxFileSize, opts.ReleaseFileSize); err != nil {
		return nil, err
	}

	logger := opts.Logger.WithComponent("tieredlog").With(logpkg.Str("file", path))
	file, err := jsonarray.Open(path, opts.KeepInMemory, opts.Logger)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}

	l := &Log[T, K]{
		file:              file,
		strat:             strat,
		codec:             codec,
		logger:            logger,
		maxBufferSize:     opts.MaxBufferSize,
		releaseBufferSize: opts.ReleaseBufferSize,
		maxFileSize:       opts.MaxFileSize,
		releaseFileSize:   opts.ReleaseFileSize,
		legacyScanOrder:   opts.LegacyScanOrder,
		flushDone:         make(chan struct{}),
	}

	elems, err := file.Load()
	if err != nil {
		return nil, l.storageErr("read", err)
	}
	if err := l.recomputeFileEnds(elems); err != nil {
		return nil, err
	}
	l.logger.Debug("store opened", logpkg.Int("fileCount", l.fileCount))
	return l, nil
}

// Append adds v at the buffer tail. It never blocks on I/O; at most it arms
// a detached background flush task.
func (l *Log[T, K]) Append(v T) {
	l.mu.Lock()
	l.buffer = append(l.buffer, v)
	obs := l.observerSnapshot()
	l.mu.Unlock()

	notifyAdded(obs, []T{v})
	l.maybeAutoFlush()
}

// Remove deletes up to n records oldest-first across both tiers and returns
// them. The file is rewritten once when its tier was touched.
func (l *Log[T, K]) Remove(n int) ([]T, error) {
	removed := []T{}
	l.mu.Lock()
	if n <= 0 {
		l.mu.Unlock()
		return removed, nil
	}

	if l.fileCount > 0 {
		elems, err := l.file.Load()
		if err != nil {
			l.mu.Unlock()
			return nil, l.storageErr("read", err)
		}
		take := n
		if take > len(elems) {
			take = len(elems)
		}
		// file is newest-first, so the oldest records sit at the tail
		for i := len(elems) - 1; i >= len(elems)-take; i-- {
			v, err := l.decodeElem(elems[i])
			if err != nil {
				l.mu.Unlock()
				return nil, err
			}
			removed = append(removed, v)
		}
		rest := elems[:len(elems)-take]
		if err := l.file.Store(rest); err != nil {
			l.mu.Unlock()
			return nil, l.storageErr("write", err)
		}
		if err := l.recomputeFileEnds(rest); err != nil {
			l.mu.Unlock()
			return nil, err
		}
		n -= take
	}

	if n > 0 && len(l.buffer) > 0 {
		take := n
		if take > len(l.buffer) {
			take = len(l.buffer)
		}
		removed = append(removed, l.buffer[:take]...)
		l.buffer = append([]T(nil), l.buffer[take:]...)
	}

	obs := l.observerSnapshot()
	l.mu.Unlock()

	if len(removed) > 0 {
		notifyRemoved(obs, removed, false)
	}
	return removed, nil
}

// Count returns the total number of records across both tiers.
func (l *Log[T, K]) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileCount + len(l.buffer)
}

// CountBuffered returns the number of buffered records.
func (l *Log[T, K]) CountBuffered() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buffer)
}

// CountFile returns the number of records in the file tier.
func (l *Log[T, K]) CountFile() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileCount
}

// First returns the oldest record in the store.
func (l *Log[T, K]) First() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.hasFileFirst {
		return l.fileFirst, true
	}
	return l.firstBufferedLocked()
}

// FirstBuffered returns the oldest buffered record.
func (l *Log[T, K]) FirstBuffered() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.firstBufferedLocked()
}

// FirstFile returns the oldest record in the file tier.
func (l *Log[T, K]) FirstFile() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileFirst, l.hasFileFirst
}

// Last returns the newest record in the store.
func (l *Log[T, K]) Last() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if v, ok := l.lastBufferedLocked(); ok {
		return v, true
	}
	return l.fileLast, l.hasFileLast
}

// LastBuffered returns the newest buffered record.
func (l *Log[T, K]) LastBuffered() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastBufferedLocked()
}

// LastFile returns the newest record in the file tier.
func (l *Log[T, K]) LastFile() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fileLast, l.hasFileLast
}

// Path returns the backing file path.
func (l *Log[T, K]) Path() string { return l.file.Path() }

func (l *Log[T, K]) firstBufferedLocked() (T, bool) {
	if len(l.buffer) > 0 {
		return l.buffer[0], true
	}
	var zero T
	return zero, false
}

func (l *Log[T, K]) lastBufferedLocked() (T, bool) {
	if len(l.buffer) > 0 {
		return l.buffer[len(l.buffer)-1], true
	}
	var zero T
	return zero, false
}

// recomputeFileEnds re-derives fileCount/fileFirst/fileLast from the element
// sequence. The file is newest-first: position 0 holds the newest record
// still on disk, the last position the oldest.
func (l *Log[T, K]) recomputeFileEnds(elems [][]byte) error {
	l.fileCount = len(elems)
	l.hasFileFirst = false
	l.hasFileLast = false
	var zero T
	l.fileFirst = zero
	l.fileLast = zero
	if len(elems) == 0 {
		return nil
	}

	first, err := l.decodeElem(elems[len(elems)-1])
	if err != nil {
		return err
	}
	last, err := l.decodeElem(elems[0])
	if err != nil {
		return err
	}
	l.fileFirst, l.hasFileFirst = first, true
	l.fileLast, l.hasFileLast = last, true
	return nil
}

func (l *Log[T, K]) decodeElem(raw []byte) (T, error) {
	v, err := l.codec.Decode(raw)
	if err != nil {
		var zero T
		return zero, &StorageError{Op: "decode", Path: l.file.Path(), Err: err}
	}
	return v, nil
}

func (l *Log[T, K]) storageErr(op string, err error) error {
	if se, ok := err.(*StorageError); ok {
		return se
	}
	return &StorageError{Op: op, Path: l.file.Path(), Err: err}
}
