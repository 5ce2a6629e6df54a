package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/spf13/cobra"

	"github.com/rzbill/tierlog/pkg/id"
)

func newListCommand() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List records",
		Long:  "Lists records oldest to newest. --latest and --ancient cap the result; --from-id/--to-id and --from-date/--to-date select a range. --field prints a single payload field instead of the whole record.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			latest, _ := cmd.Flags().GetInt("latest")
			ancient, _ := cmd.Flags().GetInt("ancient")
			fromIDs, _ := cmd.Flags().GetString("from-id")
			toIDs, _ := cmd.Flags().GetString("to-id")
			fromDates, _ := cmd.Flags().GetString("from-date")
			toDates, _ := cmd.Flags().GetString("to-date")
			field, _ := cmd.Flags().GetString("field")

			l, err := openStore(cmd)
			if err != nil {
				return err
			}

			var entries []Entry
			switch {
			case latest > 0:
				entries, err = l.Latest(latest)
			case ancient > 0:
				entries, err = l.Ancient(ancient)
			case fromIDs != "" || toIDs != "":
				var from, to *id.ID
				if from, err = parseIDBound(fromIDs); err != nil {
					return err
				}
				if to, err = parseIDBound(toIDs); err != nil {
					return err
				}
				entries, err = l.ByID(from, to)
			case fromDates != "" || toDates != "":
				var from, to *time.Time
				if from, err = parseDateBound(fromDates); err != nil {
					return err
				}
				if to, err = parseDateBound(toDates); err != nil {
					return err
				}
				entries, err = l.ByDate(from, to)
			default:
				entries, err = l.All()
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				if field != "" {
					if v, ok := extractField(e.Data, field); ok {
						fmt.Fprintln(out, v)
					}
					continue
				}
				line, err := json.Marshal(e)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(line))
			}
			return nil
		},
	}
	listCmd.Flags().Int("latest", 0, "Print the n newest records, newest first")
	listCmd.Flags().Int("ancient", 0, "Print the n oldest records, oldest first")
	listCmd.Flags().String("from-id", "", "Lower id bound (inclusive)")
	listCmd.Flags().String("to-id", "", "Upper id bound (inclusive)")
	listCmd.Flags().String("from-date", "", "Lower timestamp bound, RFC3339 (inclusive)")
	listCmd.Flags().String("to-date", "", "Upper timestamp bound, RFC3339 (inclusive)")
	listCmd.Flags().String("field", "", "Print only this payload field (dot path, e.g. user.name)")
	return listCmd
}

func parseIDBound(s string) (*id.ID, error) {
	if s == "" {
		return nil, nil
	}
	parsed, err := id.Parse(s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func parseDateBound(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q; expected RFC3339", s)
	}
	return &t, nil
}

// extractField pulls a dot-path field out of a JSON payload. String values
// come back unquoted, everything else verbatim.
func extractField(data []byte, path string) (string, bool) {
	if len(data) == 0 {
		return "", false
	}
	keys := strings.Split(path, ".")
	value, dt, _, err := jsonparser.Get(data, keys...)
	if err != nil || dt == jsonparser.NotExist {
		return "", false
	}
	return string(value), true
}
