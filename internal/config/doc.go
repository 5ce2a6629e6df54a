// Package config provides loading and environment overlay for the tierlog
// CLI configuration. It exposes a Default() baseline, file loading for JSON
// and YAML, and a TIERLOG_* environment overlay.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("/etc/tierlog.yaml"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
package config
