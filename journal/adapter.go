// Package journal records phase transitions as append-only, human-readable
// lines. Entries state what the cycler is about to do, not what the display
// tool made of it; sinks must never reorder or drop accepted entries.
package journal

import (
	"fmt"
	"time"
)

// Entry is one journal line: a wall-clock timestamp plus a free-text message.
type Entry struct {
	Time    time.Time
	Message string
}

// Now builds an entry stamped with the current local time.
func Now(message string) Entry {
	return Entry{Time: time.Now(), Message: message}
}

// Line renders the on-disk form: "2006-01-02 15:04:05 - message".
func (e Entry) Line() string {
	return e.Time.Format("2006-01-02 15:04:05") + " - " + e.Message
}

// Adapter is the common behaviour every journal sink exposes.
type Adapter interface {
	Configure(any) error // driver-specific config ⇒ struct
	Append(Entry) error  // record one entry
	Close() error        // idempotent
}

/*──────── registry ───────*/

type factory = func() Adapter

var reg = map[string]factory{}

func Register(name string, f factory) { reg[name] = f }

func NewAdapter(name string) (Adapter, error) {
	if f, ok := reg[name]; ok {
		return f(), nil
	}
	return nil, fmt.Errorf("unknown journal sink %q", name)
}

/*──────── fan-out ───────*/

// Multi appends each entry to every sink in order, stopping at the first
// failure. Close closes every sink regardless of errors.
type Multi struct {
	sinks []Adapter
}

func NewMulti(sinks ...Adapter) *Multi { return &Multi{sinks: sinks} }

func (m *Multi) Configure(any) error { return nil }

func (m *Multi) Append(e Entry) error {
	for _, s := range m.sinks {
		if err := s.Append(e); err != nil {
			return err
		}
	}
	return nil
}

func (m *Multi) Close() error {
	var first error
	for _, s := range m.sinks {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
