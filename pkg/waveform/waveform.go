package waveform

import (
	"errors"

	"github.com/narecoronaa/goscope/pkg/hal"
)

// Store is an immutable table of 8-bit amplitude samples covering one
// waveform period, read through a cyclic cursor.
type Store struct {
	table  []uint8
	cursor int
}

// NewStore copies the table into a new Store with the cursor at zero.
func NewStore(table []uint8) (*Store, error) {
	if len(table) == 0 {
		return nil, errors.New("waveform: empty table")
	}
	t := make([]uint8, len(table))
	copy(t, table)
	return &Store{table: t}, nil
}

// Len returns the number of samples in one period.
func (s *Store) Len() int {
	return len(s.table)
}

// Cursor returns the current read position.
func (s *Store) Cursor() int {
	return s.cursor
}

// Next returns the sample at the cursor and advances it modulo Len.
// The cursor is owned by a single reader; Next is not safe for
// concurrent use.
func (s *Store) Next() uint8 {
	v := s.table[s.cursor]
	s.cursor = (s.cursor + 1) % len(s.table)
	return v
}

// Playback drives a Store out through an analog output, one sample per
// trigger firing. The read-write-advance runs entirely inside the firing
// context: the output write is a single bounded-time operation, so no
// handoff to another goroutine is needed to meet the period deadline.
type Playback struct {
	store *Store
	out   hal.AnalogOutput
}

// NewPlayback binds a store to an analog output.
func NewPlayback(store *Store, out hal.AnalogOutput) *Playback {
	return &Playback{store: store, out: out}
}

// Fire writes the next sample and advances the cursor. It never blocks.
func (p *Playback) Fire() {
	p.out.Write(p.store.Next())
}
