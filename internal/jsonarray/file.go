package jsonarray

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/buger/jsonparser"
	logpkg "github.com/rzbill/tierlog/pkg/log"
)

// ErrNotArray reports a file whose top-level JSON value is not an array.
var ErrNotArray = errors.New("file is not a JSON array")

// File owns a JSON-array document on disk, newest element first.
type File struct {
	path         string
	keepInMemory bool
	logger       logpkg.Logger

	// memory-resident mirror; valid only while loaded is true
	elems  [][]byte
	loaded bool
}

// Open validates the path and returns a File handle. The file itself may not
// exist yet; a missing or empty file reads as an empty array.
func Open(path string, keepInMemory bool, logger logpkg.Logger) (*File, error) {
	if path == "" {
		return nil, errors.New("file path can not be empty")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("file path %q is a directory", path)
	}
	if logger == nil {
		logger = logpkg.NewNopLogger()
	}
	return &File{path: path, keepInMemory: keepInMemory, logger: logger.WithComponent("jsonarray")}, nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Load returns the element sequence, newest first. In memory-resident mode
// the mirror is returned without touching the disk once populated. The
// returned slice is owned by the caller until the next Store.
func (f *File) Load() ([][]byte, error) {
	if f.keepInMemory && f.loaded {
		return f.elems, nil
	}

	start := time.Now()
	f.logger.Debug("reading json array file", logpkg.Str("path", f.path))

	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return f.cache(nil), nil
		}
		return nil, fmt.Errorf("reading file %q: %w", f.path, err)
	}

	elems, err := splitArray(data)
	if err != nil {
		return nil, fmt.Errorf("file %q: %w", f.path, err)
	}

	f.logger.Debug("json array file read",
		logpkg.Str("path", f.path),
		logpkg.Int("items", len(elems)),
		logpkg.Duration("took", time.Since(start)))
	return f.cache(elems), nil
}

// Store rewrites the whole document with the given elements. In
// memory-resident mode the mirror is replaced on success.
func (f *File) Store(elems [][]byte) error {
	start := time.Now()
	f.logger.Debug("writing json array file",
		logpkg.Str("path", f.path),
		logpkg.Int("items", len(elems)))

	doc := make([]json.RawMessage, len(elems))
	for i, e := range elems {
		doc[i] = json.RawMessage(e)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding file %q: %w", f.path, err)
	}
	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %q: %w", f.path, err)
	}

	f.cache(elems)
	f.logger.Debug("json array file written",
		logpkg.Str("path", f.path),
		logpkg.Int("items", len(elems)),
		logpkg.Duration("took", time.Since(start)))
	return nil
}

func (f *File) cache(elems [][]byte) [][]byte {
	if elems == nil {
		elems = [][]byte{}
	}
	if f.keepInMemory {
		f.elems = elems
		f.loaded = true
	} else {
		f.elems = nil
		f.loaded = false
	}
	return elems
}

// splitArray splits a JSON document into its top-level array elements, kept
// as raw JSON. An empty or whitespace-only document is an empty array.
func splitArray(data []byte) ([][]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] != '[' {
		return nil, ErrNotArray
	}

	var elems [][]byte
	var cbErr error
	_, err := jsonparser.ArrayEach(trimmed, func(value []byte, dt jsonparser.ValueType, _ int, valErr error) {
		if cbErr != nil {
			return
		}
		if valErr != nil {
			cbErr = valErr
			return
		}
		raw, rerr := rawElement(value, dt)
		if rerr != nil {
			cbErr = rerr
			return
		}
		elems = append(elems, raw)
	})
	if err != nil {
		return nil, fmt.Errorf("malformed JSON array: %w", err)
	}
	if cbErr != nil {
		return nil, fmt.Errorf("malformed JSON array element: %w", cbErr)
	}
	return elems, nil
}

// rawElement restores the raw JSON form of an element. jsonparser hands
// strings back unquoted and unescaped, so those are re-encoded.
func rawElement(value []byte, dt jsonparser.ValueType) ([]byte, error) {
	switch dt {
	case jsonparser.String:
		return json.Marshal(string(value))
	case jsonparser.Null:
		return []byte("null"), nil
	default:
		// jsonparser does not descend into objects and arrays, so an
		// element like {"2"} passes through ArrayEach intact
		if !json.Valid(value) {
			return nil, fmt.Errorf("invalid element %q", value)
		}
		out := make([]byte, len(value))
		copy(out, value)
		return out, nil
	}
}
