package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.KeepInMemory {
		t.Fatalf("default keepInMemory should be true")
	}
	if cfg.LegacyScanOrder {
		t.Fatalf("default legacyScanOrder should be false")
	}
	if cfg.Thresholds.MaxBufferSize != 1000 {
		t.Fatalf("maxBufferSize default")
	}
	if cfg.Thresholds.MaxFileSize != 10000 {
		t.Fatalf("maxFileSize default")
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("log defaults: %s/%s", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadJSON(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tierlog.json")
	data := []byte(`{"storePath":"/tmp/events.json","keepInMemory":false,"thresholds":{"maxBufferSize":50,"releaseBufferSize":10,"maxFileSize":500,"releaseFileSize":100}}`)
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StorePath != "/tmp/events.json" {
		t.Fatalf("storePath: %s", cfg.StorePath)
	}
	if cfg.KeepInMemory {
		t.Fatalf("expected keepInMemory false")
	}
	if cfg.Thresholds.MaxBufferSize != 50 || cfg.Thresholds.ReleaseBufferSize != 10 {
		t.Fatalf("buffer thresholds: %+v", cfg.Thresholds)
	}
	// unset fields keep their defaults
	if cfg.LogLevel != "info" {
		t.Fatalf("logLevel default lost: %s", cfg.LogLevel)
	}
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tierlog.yaml")
	data := []byte("storePath: /tmp/events.json\nlegacyScanOrder: true\nthresholds:\n  maxBufferSize: 20\n  releaseBufferSize: 5\nlogLevel: debug\n")
	if err := os.WriteFile(file, data, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.StorePath != "/tmp/events.json" {
		t.Fatalf("storePath: %s", cfg.StorePath)
	}
	if !cfg.LegacyScanOrder {
		t.Fatalf("expected legacyScanOrder true")
	}
	if cfg.Thresholds.MaxBufferSize != 20 || cfg.Thresholds.ReleaseBufferSize != 5 {
		t.Fatalf("thresholds: %+v", cfg.Thresholds)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("logLevel: %s", cfg.LogLevel)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Thresholds.MaxBufferSize != 1000 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadBadJSONFails(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "tierlog.json")
	if err := os.WriteFile(file, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(file); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestFromEnv(t *testing.T) {
	cfg := Default()
	os.Setenv("TIERLOG_STORE_PATH", "/tmp/env.json")
	os.Setenv("TIERLOG_KEEP_IN_MEMORY", "false")
	os.Setenv("TIERLOG_MAX_BUFFER_SIZE", "64")
	os.Setenv("TIERLOG_RELEASE_BUFFER_SIZE", "8")
	os.Setenv("TIERLOG_LEGACY_SCAN_ORDER", "true")
	os.Setenv("TIERLOG_LOG_LEVEL", "debug")
	t.Cleanup(func() {
		os.Unsetenv("TIERLOG_STORE_PATH")
		os.Unsetenv("TIERLOG_KEEP_IN_MEMORY")
		os.Unsetenv("TIERLOG_MAX_BUFFER_SIZE")
		os.Unsetenv("TIERLOG_RELEASE_BUFFER_SIZE")
		os.Unsetenv("TIERLOG_LEGACY_SCAN_ORDER")
		os.Unsetenv("TIERLOG_LOG_LEVEL")
	})
	FromEnv(&cfg)
	if cfg.StorePath != "/tmp/env.json" {
		t.Fatalf("env override storePath")
	}
	if cfg.KeepInMemory {
		t.Fatalf("env override keepInMemory")
	}
	if cfg.Thresholds.MaxBufferSize != 64 || cfg.Thresholds.ReleaseBufferSize != 8 {
		t.Fatalf("env override thresholds: %+v", cfg.Thresholds)
	}
	if !cfg.LegacyScanOrder {
		t.Fatalf("env override legacyScanOrder")
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("env override logLevel")
	}
}

func TestFromEnvIgnoresBadValues(t *testing.T) {
	cfg := Default()
	os.Setenv("TIERLOG_MAX_BUFFER_SIZE", "not-a-number")
	os.Setenv("TIERLOG_KEEP_IN_MEMORY", "not-a-bool")
	t.Cleanup(func() {
		os.Unsetenv("TIERLOG_MAX_BUFFER_SIZE")
		os.Unsetenv("TIERLOG_KEEP_IN_MEMORY")
	})
	FromEnv(&cfg)
	if cfg.Thresholds.MaxBufferSize != 1000 {
		t.Fatalf("bad int should be ignored: %d", cfg.Thresholds.MaxBufferSize)
	}
	if !cfg.KeepInMemory {
		t.Fatalf("bad bool should be ignored")
	}
}
