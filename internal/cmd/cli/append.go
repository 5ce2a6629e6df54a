package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newAppendCommand() *cobra.Command {
	appendCmd := &cobra.Command{
		Use:   "append [json]",
		Short: "Append a JSON payload and persist it",
		Long:  "Appends one record with the given JSON payload. Pass the payload as an argument, via --data, or on stdin with '-'. The buffer is flushed before exit so the record survives the process.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, _ := cmd.Flags().GetString("data")
			if len(args) == 1 {
				data = args[0]
			}
			payload := []byte(data)
			if data == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				payload = b
			}
			if len(payload) == 0 {
				payload = []byte("null")
			}
			if !json.Valid(payload) {
				return fmt.Errorf("payload is not valid JSON")
			}

			l, err := openStore(cmd)
			if err != nil {
				return err
			}
			e := NewEntry(payload)
			l.Append(e)
			if err := l.StoreCache(); err != nil {
				return fmt.Errorf("persisting record: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.ID)
			return nil
		},
	}
	appendCmd.Flags().String("data", "", "JSON payload ('-' reads stdin)")
	return appendCmd
}
