package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultStorePathXDGOverride(t *testing.T) {
	originalXDG := os.Getenv("XDG_DATA_HOME")
	t.Cleanup(func() {
		if originalXDG != "" {
			os.Setenv("XDG_DATA_HOME", originalXDG)
		} else {
			os.Unsetenv("XDG_DATA_HOME")
		}
	})
	os.Setenv("XDG_DATA_HOME", "/custom/data")

	got := DefaultStorePath()
	if got != "/custom/data/tierlog/store.json" {
		t.Errorf("expected XDG path, got %s", got)
	}
}

func TestDefaultStorePathNoHome(t *testing.T) {
	originalHome := os.Getenv("HOME")
	originalXDG := os.Getenv("XDG_DATA_HOME")
	os.Unsetenv("HOME")
	os.Unsetenv("XDG_DATA_HOME")
	t.Cleanup(func() {
		if originalHome != "" {
			os.Setenv("HOME", originalHome)
		}
		if originalXDG != "" {
			os.Setenv("XDG_DATA_HOME", originalXDG)
		}
	})

	got := DefaultStorePath()
	if got == "" {
		t.Error("expected non-empty result even when HOME is not set")
	}
	if !strings.HasSuffix(got, "store.json") {
		t.Errorf("expected store.json file name, got %s", got)
	}
}

func TestDefaultStorePathShape(t *testing.T) {
	got := DefaultStorePath()
	if got == "" {
		t.Error("DefaultStorePath should not return empty string")
	}
	if !filepath.IsAbs(got) && !strings.HasPrefix(got, "./") {
		t.Errorf("expected absolute path or ./ prefix, got %s", got)
	}
	if !strings.Contains(strings.ToLower(got), "tierlog") {
		t.Errorf("expected 'tierlog' in the path, got %s", got)
	}
}

func TestIsDir(t *testing.T) {
	if !isDir(".") {
		t.Errorf("isDir(.) should be true")
	}
	if isDir("/non/existent/path/that/does/not/exist") {
		t.Errorf("isDir on missing path should be false")
	}
	file := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if isDir(file) {
		t.Errorf("isDir on a file should be false")
	}
}
