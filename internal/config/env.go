package config

import (
	"os"
	"strconv"
)

// FromEnv overlays TIERLOG_* environment variables onto cfg.
func FromEnv(cfg *Config) {
	if v := os.Getenv("TIERLOG_STORE_PATH"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("TIERLOG_KEEP_IN_MEMORY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.KeepInMemory = b
		}
	}
	if v := os.Getenv("TIERLOG_LEGACY_SCAN_ORDER"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LegacyScanOrder = b
		}
	}
	if v := os.Getenv("TIERLOG_MAX_BUFFER_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Thresholds.MaxBufferSize = n
		}
	}
	if v := os.Getenv("TIERLOG_RELEASE_BUFFER_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Thresholds.ReleaseBufferSize = n
		}
	}
	if v := os.Getenv("TIERLOG_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Thresholds.MaxFileSize = n
		}
	}
	if v := os.Getenv("TIERLOG_RELEASE_FILE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Thresholds.ReleaseFileSize = n
		}
	}
	if v := os.Getenv("TIERLOG_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TIERLOG_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
}
