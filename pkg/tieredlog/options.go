package tieredlog

import (
	logpkg "github.com/rzbill/tierlog/pkg/log"
)

// Built-in threshold defaults. Release sizes default to zero, which leaves
// auto-flush disabled until a caller opts in.
const (
	DefaultMaxBufferSize     = 1000
	DefaultReleaseBufferSize = 0
	DefaultMaxFileSize       = 10000
	DefaultReleaseFileSize   = 0
)

// Options configures a Log at construction. Zero max sizes take the
// defaults; a zero Logger discards everything.
type Options struct {
	MaxBufferSize     int
	ReleaseBufferSize int
	MaxFileSize       int
	ReleaseFileSize   int

	// KeepInMemory mirrors the decoded file array in memory so the file is
	// only ever re-written, never re-read.
	KeepInMemory bool

	// LegacyScanOrder reproduces the historical result ordering of All,
	// ByID and ByDate (buffered-then-reversed concatenated with file
	// front-to-back) instead of the corrected single oldest-to-newest merge.
	LegacyScanOrder bool

	Logger logpkg.Logger
}

// DefaultOptions returns the baseline options: default thresholds,
// memory-resident mirror on, corrected scan order.
func DefaultOptions() Options {
	return Options{
		MaxBufferSize:     DefaultMaxBufferSize,
		ReleaseBufferSize: DefaultReleaseBufferSize,
		MaxFileSize:       DefaultMaxFileSize,
		ReleaseFileSize:   DefaultReleaseFileSize,
		KeepInMemory:      true,
	}
}

func (o *Options) normalize() {
	if o.MaxBufferSize == 0 {
		o.MaxBufferSize = DefaultMaxBufferSize
	}
	if o.MaxFileSize == 0 {
		o.MaxFileSize = DefaultMaxFileSize
	}
	if o.Logger == nil {
		o.Logger = logpkg.NewNopLogger()
	}
}

func validateThresholds(maxBuffer, releaseBuffer, maxFile, releaseFile int) error {
	if releaseBuffer < 0 {
		return configErrf("param releaseBufferSize can not be negative")
	}
	if maxBuffer < releaseBuffer {
		return configErrf("param maxBufferSize can not be less than releaseBufferSize")
	}
	if releaseFile < 0 {
		return configErrf("param releaseFileSize can not be negative")
	}
	if maxFile < releaseFile {
		return configErrf("param maxFileSize can not be less than releaseFileSize")
	}
	return nil
}

// setThreshold applies one validated threshold mutation under the monitor,
// then re-evaluates pending flush/eviction work.
func (l *Log[T, K]) setThreshold(check func() error, apply func()) error {
	l.mu.Lock()
	if err := check(); err != nil {
		l.mu.Unlock()
		return err
	}
	apply()
	l.mu.Unlock()
	l.maybeAutoFlush()
	return nil
}

// MaxBufferSize returns the buffer tier maximum.
func (l *Log[T, K]) MaxBufferSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxBufferSize
}

// ReleaseBufferSize returns the buffer tier release target.
func (l *Log[T, K]) ReleaseBufferSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.releaseBufferSize
}

// MaxFileSize returns the file tier maximum.
func (l *Log[T, K]) MaxFileSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.maxFileSize
}

// ReleaseFileSize returns the file tier release target.
func (l *Log[T, K]) ReleaseFileSize() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.releaseFileSize
}

// SetMaxBufferSize updates the buffer tier maximum. The new value is checked
// against the current release size; pending flush work is re-evaluated.
func (l *Log[T, K]) SetMaxBufferSize(n int) error {
	return l.setThreshold(func() error {
		if n < 0 {
			return configErrf("param maxBufferSize can not be negative")
		}
		if n < l.releaseBufferSize {
			return configErrf("param maxBufferSize can not be less than releaseBufferSize")
		}
		return nil
	}, func() { l.maxBufferSize = n })
}

// SetReleaseBufferSize updates the buffer tier release target. A value
// greater than zero enables auto-flush.
func (l *Log[T, K]) SetReleaseBufferSize(n int) error {
	return l.setThreshold(func() error {
		if n < 0 {
			return configErrf("param releaseBufferSize can not be negative")
		}
		if n > l.maxBufferSize {
			return configErrf("param releaseBufferSize can not be greater than maxBufferSize")
		}
		return nil
	}, func() { l.releaseBufferSize = n })
}

// SetMaxFileSize updates the file tier maximum. Pending eviction work is
// re-evaluated.
func (l *Log[T, K]) SetMaxFileSize(n int) error {
	return l.setThreshold(func() error {
		if n < 0 {
			return configErrf("param maxFileSize can not be negative")
		}
		if n < l.releaseFileSize {
			return configErrf("param maxFileSize can not be less than releaseFileSize")
		}
		return nil
	}, func() { l.maxFileSize = n })
}

// SetReleaseFileSize updates the file tier release target.
func (l *Log[T, K]) SetReleaseFileSize(n int) error {
	return l.setThreshold(func() error {
		if n < 0 {
			return configErrf("param releaseFileSize can not be negative")
		}
		if n > l.maxFileSize {
			return configErrf("param releaseFileSize can not be greater than maxFileSize")
		}
		return nil
	}, func() { l.releaseFileSize = n })
}
