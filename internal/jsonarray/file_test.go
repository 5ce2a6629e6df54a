package jsonarray

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tmpFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	return path
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("", true, nil); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestOpenRejectsDirectory(t *testing.T) {
	if _, err := Open(t.TempDir(), true, nil); err == nil {
		t.Fatalf("expected error for directory path")
	}
}

func TestLoadMissingFile(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "absent.json"), true, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	elems, err := f.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(elems) != 0 {
		t.Fatalf("expected empty, got %d", len(elems))
	}
}

func TestLoadEmptyFileAndEmptyArray(t *testing.T) {
	for _, content := range []string{"", "[]", "  [ ]  "} {
		f, err := Open(tmpFile(t, content), true, nil)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		elems, err := f.Load()
		if err != nil {
			t.Fatalf("load %q: %v", content, err)
		}
		if len(elems) != 0 {
			t.Fatalf("load %q: expected empty, got %d", content, len(elems))
		}
	}
}

func TestLoadNotAnArray(t *testing.T) {
	f, err := Open(tmpFile(t, `{"a":1}`), true, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Load(); !errors.Is(err, ErrNotArray) {
		t.Fatalf("expected ErrNotArray, got %v", err)
	}
}

func TestLoadMalformedArray(t *testing.T) {
	for _, content := range []string{`["1",{"2"},"3"]`, `[[1,]]`, `[{"a":}]`} {
		f, err := Open(tmpFile(t, content), true, nil)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		if _, err := f.Load(); err == nil {
			t.Fatalf("load %q: expected error for malformed element", content)
		}
	}
}

func TestLoadSplitsElements(t *testing.T) {
	f, err := Open(tmpFile(t, `["a", 2, {"k":"v"}, null, [1,2]]`), true, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	elems, err := f.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := []string{`"a"`, `2`, `{"k":"v"}`, `null`, `[1,2]`}
	if len(elems) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(elems))
	}
	for i, w := range want {
		if string(elems[i]) != w {
			t.Fatalf("element %d: got %s want %s", i, elems[i], w)
		}
	}
}

func TestStoreRoundTrip(t *testing.T) {
	path := tmpFile(t, "")
	f, err := Open(path, false, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	in := [][]byte{[]byte(`"new"`), []byte(`{"id":1}`), []byte(`"old"`)}
	if err := f.Store(in); err != nil {
		t.Fatalf("store: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.HasPrefix(string(data), "[\n") {
		t.Fatalf("expected pretty-printed array, got %q", data)
	}

	out, err := f.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 3 || string(out[0]) != `"new"` || string(out[2]) != `"old"` {
		t.Fatalf("round trip mismatch: %q", out)
	}
}

func TestResidentMirrorSkipsDisk(t *testing.T) {
	path := tmpFile(t, `["a"]`)
	f, err := Open(path, true, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	// corrupt the file behind the mirror's back; resident reads must not see it
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("corrupt: %v", err)
	}
	elems, err := f.Load()
	if err != nil {
		t.Fatalf("resident load should use mirror: %v", err)
	}
	if len(elems) != 1 || string(elems[0]) != `"a"` {
		t.Fatalf("mirror content mismatch: %q", elems)
	}
}

func TestNonResidentRereadsDisk(t *testing.T) {
	path := tmpFile(t, `["a"]`)
	f, err := Open(path, false, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := os.WriteFile(path, []byte(`["a","b"]`), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	elems, err := f.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(elems) != 2 {
		t.Fatalf("expected re-read to see 2 elements, got %d", len(elems))
	}
}

func TestStoreRefreshesMirror(t *testing.T) {
	path := tmpFile(t, "")
	f, err := Open(path, true, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := f.Store([][]byte{[]byte(`1`)}); err != nil {
		t.Fatalf("store: %v", err)
	}
	// remove the file; the mirror must still serve the stored content
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}
	elems, err := f.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(elems) != 1 || string(elems[0]) != `1` {
		t.Fatalf("mirror after store mismatch: %q", elems)
	}
}
