// Package cli contains the Cobra commands for the tierlog CLI.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs the root command with the store-selection flags shared
// by every subcommand.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "tierlog",
		Short: "Tiered JSON append log CLI",
		Long:  "tierlog manages a two-tier append log: a small in-memory buffer backed by a JSON array file.",
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (JSON or YAML)")
	pf.String("store", "", "Store file path (overrides config)")
	pf.Int("max-buffer", 0, "Buffer tier maximum size")
	pf.Int("release-buffer", 0, "Buffer tier release size (>0 enables auto-flush)")
	pf.Int("max-file", 0, "File tier maximum size")
	pf.Int("release-file", 0, "File tier release size")
	pf.Bool("legacy-order", false, "Reproduce the legacy query result ordering")
	pf.String("log-level", "", "Log level: debug|info|warn|error")

	root.AddCommand(
		newStatCommand(),
		newAppendCommand(),
		newListCommand(),
		newFlushCommand(),
		newRemoveCommand(),
	)
	return root
}
