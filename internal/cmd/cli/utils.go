package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rzbill/tierlog/internal/config"
	"github.com/rzbill/tierlog/pkg/id"
	logpkg "github.com/rzbill/tierlog/pkg/log"
	"github.com/rzbill/tierlog/pkg/tieredlog"
)

// resolveConfig builds the effective configuration for a command: file
// config, then TIERLOG_* env overlay, then explicitly set flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	config.FromEnv(&cfg)

	flags := cmd.Flags()
	if flags.Changed("store") {
		cfg.StorePath, _ = flags.GetString("store")
	}
	if flags.Changed("max-buffer") {
		cfg.Thresholds.MaxBufferSize, _ = flags.GetInt("max-buffer")
	}
	if flags.Changed("release-buffer") {
		cfg.Thresholds.ReleaseBufferSize, _ = flags.GetInt("release-buffer")
	}
	if flags.Changed("max-file") {
		cfg.Thresholds.MaxFileSize, _ = flags.GetInt("max-file")
	}
	if flags.Changed("release-file") {
		cfg.Thresholds.ReleaseFileSize, _ = flags.GetInt("release-file")
	}
	if flags.Changed("legacy-order") {
		cfg.LegacyScanOrder, _ = flags.GetBool("legacy-order")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, nil
}

func newLogger(cfg config.Config) logpkg.Logger {
	level, err := logpkg.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logpkg.InfoLevel
	}
	var formatter logpkg.Formatter = &logpkg.TextFormatter{}
	if cfg.LogFormat == "json" {
		formatter = &logpkg.JSONFormatter{}
	}
	return logpkg.NewLogger(
		logpkg.WithLevel(level),
		logpkg.WithFormatter(formatter),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)
}

// openStore opens the entry store named by the effective configuration.
func openStore(cmd *cobra.Command) (*tieredlog.Log[Entry, id.ID], error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, err
	}
	opts := tieredlog.Options{
		MaxBufferSize:     cfg.Thresholds.MaxBufferSize,
		ReleaseBufferSize: cfg.Thresholds.ReleaseBufferSize,
		MaxFileSize:       cfg.Thresholds.MaxFileSize,
		ReleaseFileSize:   cfg.Thresholds.ReleaseFileSize,
		KeepInMemory:      cfg.KeepInMemory,
		LegacyScanOrder:   cfg.LegacyScanOrder,
		Logger:            newLogger(cfg),
	}
	l, err := tieredlog.Open[Entry, id.ID](cfg.StorePath, EntryStrategy{}, nil, opts)
	if err != nil {
		return nil, fmt.Errorf("opening store %q: %w", cfg.StorePath, err)
	}
	return l, nil
}
