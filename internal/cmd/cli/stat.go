package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newStatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "Show store counts and boundary records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := openStore(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:     %s\n", l.Path())
			fmt.Fprintf(out, "count:    %d (buffered %d, file %d)\n", l.Count(), l.CountBuffered(), l.CountFile())
			if v, ok := l.First(); ok {
				fmt.Fprintf(out, "first:    %s at %s\n", v.ID, v.At.Format(time.RFC3339))
			}
			if v, ok := l.Last(); ok {
				fmt.Fprintf(out, "last:     %s at %s\n", v.ID, v.At.Format(time.RFC3339))
			}
			return nil
		},
	}
}
