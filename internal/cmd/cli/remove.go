package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRemoveCommand() *cobra.Command {
	removeCmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove the oldest records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			if count <= 0 {
				return fmt.Errorf("--count must be positive")
			}
			l, err := openStore(cmd)
			if err != nil {
				return err
			}
			removed, err := l.Remove(count)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d records\n", len(removed))
			return nil
		},
	}
	removeCmd.Flags().Int("count", 1, "Number of oldest records to remove")
	return removeCmd
}
