// Package cache implements the small tile-memory cache used while a stroke
// is being painted.
//
// The cache remembers the buffers of the most recently written tiles so
// that consecutive dabs landing on the same few tiles skip the round trip
// through the tile store. It is valid only between the begin and end of one
// atomic stroke scope; the owner must Reset it at both boundaries because
// the cached buffer references are borrowed from the store and must not
// outlive the scope.
package cache

import "github.com/gogpu/tilecanvas/internal/tile"

// Capacity is the number of tiles the cache can hold. Eight slots cover the
// working set of strokes whose dab radius is smaller than one tile, which
// touch at most a 2x2 tile neighborhood per dab.
const Capacity = 8

type entry struct {
	coord tile.Coord
	buf   []uint16
}

// Memory is a fixed-capacity FIFO tile cache.
//
// Insertion overwrites the oldest slot once the cache is full, tracked by a
// write cursor advancing modulo Capacity. This is deliberately not LRU: a
// rolling window of the last few written tiles is what small-radius strokes
// re-hit, and a plain ring needs no per-lookup bookkeeping.
//
// The zero value is an empty cache. Memory is not safe for concurrent use.
type Memory struct {
	entries [Capacity]entry
	valid   int
	write   int
}

// Lookup returns the cached buffer for c, or nil if c is not cached.
func (m *Memory) Lookup(c tile.Coord) []uint16 {
	for i := 0; i < m.valid; i++ {
		if m.entries[i].coord == c {
			return m.entries[i].buf
		}
	}
	return nil
}

// Insert records buf as the buffer for c, overwriting the oldest entry if
// the cache is full. The caller must ensure c is not already cached.
func (m *Memory) Insert(c tile.Coord, buf []uint16) {
	if m.valid < Capacity {
		m.valid++
	}
	m.entries[m.write] = entry{coord: c, buf: buf}
	m.write = (m.write + 1) % Capacity
}

// Len returns the number of valid entries.
func (m *Memory) Len() int {
	return m.valid
}

// Reset drops all entries and the buffer references they hold.
func (m *Memory) Reset() {
	for i := range m.entries {
		m.entries[i] = entry{}
	}
	m.valid = 0
	m.write = 0
}
