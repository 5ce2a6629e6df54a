package tieredlog

import "fmt"

// ConfigError reports invalid construction or setter arguments. It is always
// a caller bug: the store rejects the call before any state change.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "tieredlog: " + e.Reason }

func configErrf(format string, args ...interface{}) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

// StorageError reports a failed read, parse, decode, encode, or write of the
// durable tier. Explicit calls surface it to the caller; the background
// auto-flush path captures it into the read-once slot instead.
type StorageError struct {
	Op   string // "read", "decode", "encode", "write"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("tieredlog: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
