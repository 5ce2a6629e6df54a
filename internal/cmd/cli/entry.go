package cli

import (
	"encoding/json"
	"time"

	"github.com/rzbill/tierlog/pkg/id"
)

// Entry is the record shape the CLI stores: a sortable id, the append
// timestamp, and the caller's JSON payload verbatim.
type Entry struct {
	ID   id.ID           `json:"id"`
	At   time.Time       `json:"at"`
	Data json.RawMessage `json:"data,omitempty"`
}

// EntryStrategy projects Entry for the store: id ordering follows the
// byte-wise ID comparison, which is monotonic with generation order.
type EntryStrategy struct{}

func (EntryStrategy) ID(e Entry) id.ID { return e.ID }

func (EntryStrategy) Timestamp(e Entry) time.Time { return e.At }

func (EntryStrategy) CompareIDs(a, b id.ID) int { return a.Compare(b) }

var generator = id.NewGenerator()

// NewEntry stamps a payload with a fresh id and the current time.
func NewEntry(data json.RawMessage) Entry {
	next := generator.Next()
	return Entry{ID: next, At: next.Time(), Data: data}
}
