package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFlushCommand() *cobra.Command {
	flushCmd := &cobra.Command{
		Use:   "flush",
		Short: "Run one flush and eviction cycle",
		Long:  "Runs a flush cycle against the configured thresholds. Useful with --max-file/--release-file to trim an oversized store file. --force promotes every buffered record regardless of thresholds.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			l, err := openStore(cmd)
			if err != nil {
				return err
			}
			before := l.CountFile()
			if err := l.FlushCache(force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "file tier: %d -> %d records\n", before, l.CountFile())
			return nil
		},
	}
	flushCmd.Flags().Bool("force", false, "Promote every buffered record")
	return flushCmd
}
