package id

import (
	"encoding/json"
	"testing"
	"time"
)

func TestOrderingMonotonic(t *testing.T) {
	g := NewGenerator()
	NowMs = func() int64 { return 1000 }
	defer func() { NowMs = func() int64 { return time.Now().UnixMilli() } }()

	a := g.Next()
	b := g.Next()
	if a.Compare(b) >= 0 {
		t.Fatalf("expected a<b")
	}
}

func TestClockRegressionGuard(t *testing.T) {
	g := NewGenerator()
	seq := int64(1000)
	NowMs = func() int64 { return seq }
	defer func() { NowMs = func() int64 { return time.Now().UnixMilli() } }()

	a := g.Next() // uses 1000
	seq = 900     // clock went backwards
	b := g.Next() // should still be >= a
	if a.Compare(b) >= 0 {
		t.Fatalf("expected b>a despite clock regression")
	}
}

func TestStringParseRoundTrip(t *testing.T) {
	g := NewGenerator()
	a := g.Next()

	parsed, err := Parse(a.String())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if parsed.Compare(a) != 0 {
		t.Fatalf("round trip mismatch: %s vs %s", parsed, a)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse("not-hex"); err == nil {
		t.Fatalf("expected error for non-hex input")
	}
	if _, err := Parse("abcd"); err == nil {
		t.Fatalf("expected error for short input")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	g := NewGenerator()
	a := g.Next()
	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `"` + a.String() + `"`; string(data) != want {
		t.Fatalf("want %s, got %s", want, data)
	}
	var back ID
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != a {
		t.Fatalf("round trip mismatch: %s vs %s", back, a)
	}
}

func TestStringOrderMatchesByteOrder(t *testing.T) {
	g := NewGenerator()
	NowMs = func() int64 { return 5000 }
	defer func() { NowMs = func() int64 { return time.Now().UnixMilli() } }()

	a := g.Next()
	b := g.Next()
	if a.String() >= b.String() {
		t.Fatalf("hex form should sort like byte form: %s vs %s", a, b)
	}
}
