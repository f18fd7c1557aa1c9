package tilecanvas

import (
	"image"
	"sync"

	"github.com/gogpu/tilecanvas/internal/tile"
)

// transparentTile is the shared buffer handed out for read-only fetches of
// tiles that were never painted. It must never be mutated.
var transparentTile = make([]uint16, tile.BufLen)

// MemStore is an in-memory TileStore: a map from tile coordinate to tile
// buffer, allocating zeroed tiles on first writable fetch.
//
// A read-only fetch of a missing tile returns a shared all-transparent
// buffer instead of allocating, so sampling and display never grow the
// canvas. Freed buffers are recycled through a sync.Pool.
//
// The map is guarded by a mutex, so a display goroutine may fetch tiles
// while a painter allocates new ones. Pixel-level access to a buffer both
// sides hold is not synchronized; that is the caller's contract.
type MemStore struct {
	mu    sync.Mutex
	tiles map[tile.Coord][]uint16
	pool  sync.Pool
}

// NewMemStore creates an empty store.
func NewMemStore() *MemStore {
	s := &MemStore{tiles: make(map[tile.Coord][]uint16)}
	s.pool.New = func() any {
		buf := make([]uint16, tile.BufLen)
		return &buf
	}
	return s
}

// FetchTile implements TileStore. It never fails.
func (s *MemStore) FetchTile(tx, ty int, readonly bool) ([]uint16, error) {
	c := tile.Coord{TX: tx, TY: ty}

	s.mu.Lock()
	defer s.mu.Unlock()

	if buf, ok := s.tiles[c]; ok {
		return buf, nil
	}
	if readonly {
		return transparentTile, nil
	}

	buf := *s.pool.Get().(*[]uint16)
	clear(buf)
	s.tiles[c] = buf
	return buf, nil
}

// NumTiles returns the number of allocated tiles.
func (s *MemStore) NumTiles() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tiles)
}

// Bounds returns the world-space pixel bounding box of all allocated
// tiles. An empty store has empty bounds.
func (s *MemStore) Bounds() image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()

	var r image.Rectangle
	first := true
	for c := range s.tiles {
		x, y := c.Origin()
		tr := image.Rect(x, y, x+tile.Size, y+tile.Size)
		if first {
			r = tr
			first = false
		} else {
			r = r.Union(tr)
		}
	}
	return r
}

// ForEach calls fn for every allocated tile. The iteration order is
// unspecified. fn must not fetch or delete tiles.
func (s *MemStore) ForEach(fn func(tx, ty int, buf []uint16)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c, buf := range s.tiles {
		fn(c.TX, c.TY, buf)
	}
}

// Delete frees the tile at (tx, ty), returning its buffer to the pool.
// Deleting a missing tile is a no-op. The caller must ensure no borrowed
// reference to the buffer is still live.
func (s *MemStore) Delete(tx, ty int) {
	c := tile.Coord{TX: tx, TY: ty}

	s.mu.Lock()
	defer s.mu.Unlock()

	buf, ok := s.tiles[c]
	if !ok {
		return
	}
	delete(s.tiles, c)
	s.pool.Put(&buf)
}

// Reset frees all tiles. The same borrowing caveat as Delete applies.
func (s *MemStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for c, buf := range s.tiles {
		delete(s.tiles, c)
		b := buf
		s.pool.Put(&b)
	}
}
