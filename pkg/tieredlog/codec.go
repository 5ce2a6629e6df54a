package tieredlog

import (
	"encoding/json"
	"time"
)

// Codec converts a record to and from its durable element encoding.
type Codec[T any] interface {
	Encode(v T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// JSONCodec is the stock Codec, backed by encoding/json.
type JSONCodec[T any] struct{}

// Encode implements Codec.
func (JSONCodec[T]) Encode(v T) ([]byte, error) { return json.Marshal(v) }

// Decode implements Codec.
func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// Strategy supplies the record projections the store needs: an id, a
// timestamp, and an id ordering. The ordering must be monotonic with
// insertion order for id-range queries to be correct.
type Strategy[T, K any] interface {
	ID(v T) K
	Timestamp(v T) time.Time
	CompareIDs(a, b K) int
}
