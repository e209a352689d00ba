package journal

import (
	"errors"
	"testing"
	"time"
)

func TestEntry_Line(t *testing.T) {
	e := Entry{
		Time:    time.Date(2025, 3, 9, 14, 5, 7, 0, time.Local),
		Message: "applying transform shift_x=1 shift_y=1",
	}
	want := "2025-03-09 14:05:07 - applying transform shift_x=1 shift_y=1"
	if got := e.Line(); got != want {
		t.Fatalf("Line() = %q, want %q", got, want)
	}
}

type captureSink struct {
	entries []Entry
	err     error
}

func (c *captureSink) Configure(any) error { return nil }
func (c *captureSink) Append(e Entry) error {
	if c.err != nil {
		return c.err
	}
	c.entries = append(c.entries, e)
	return nil
}
func (c *captureSink) Close() error { return nil }

func TestMulti_FanOut(t *testing.T) {
	a, b := &captureSink{}, &captureSink{}
	m := NewMulti(a, b)

	if err := m.Append(Now("cycle started")); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if len(a.entries) != 1 || len(b.entries) != 1 {
		t.Fatalf("expected entry in both sinks, got %d/%d", len(a.entries), len(b.entries))
	}
}

func TestMulti_StopsAtFirstFailure(t *testing.T) {
	bad := &captureSink{err: errors.New("disk full")}
	after := &captureSink{}
	m := NewMulti(bad, after)

	if err := m.Append(Now("resetting transform")); err == nil {
		t.Fatal("expected error from failing sink")
	}
	if len(after.entries) != 0 {
		t.Fatalf("sink after failure received %d entries", len(after.entries))
	}
}

func TestNewAdapter_Unknown(t *testing.T) {
	if _, err := NewAdapter("nope"); err == nil {
		t.Fatal("expected error for unknown sink")
	}
}
